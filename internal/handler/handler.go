package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/kisanmitra/cropadvisor/internal/recommend"
	"github.com/kisanmitra/cropadvisor/internal/registry"
	"github.com/kisanmitra/cropadvisor/internal/response"
	"github.com/kisanmitra/cropadvisor/internal/types"
)

type AdvisorHandler struct {
	recommendService *recommend.Service
}

func NewAdvisorHandler(recommendService *recommend.Service) *AdvisorHandler {
	return &AdvisorHandler{recommendService: recommendService}
}

// Health returns a simple health check response
func Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// GetRecommendation resolves the coordinate and returns the ranked crops.
func (h *AdvisorHandler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	var req types.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Validate required fields
	if req.Latitude == 0 && req.Longitude == 0 {
		response.ErrorJSON(w, http.StatusBadRequest, "latitude and longitude are required")
		return
	}
	if !validGoal(req.Goal) {
		response.ErrorJSON(w, http.StatusBadRequest, "goal must be one of: profit, soil-health, mixed")
		return
	}
	if !validRisk(req.RiskTolerance) {
		response.ErrorJSON(w, http.StatusBadRequest, "risk_tolerance must be one of: low, medium, high")
		return
	}

	start := time.Now()

	recommendation := h.recommendService.Recommend(r.Context(), req)

	// Add response time header
	w.Header().Set("X-Response-Time", time.Since(start).String())

	response.JSON(w, http.StatusOK, recommendation)
}

type regionSummary struct {
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	AnnualRainfallMM float64 `json:"annual_rainfall_mm"`
	CropCount        int     `json:"crop_count"`
}

// ListRegions returns a summary of every known region profile.
func (h *AdvisorHandler) ListRegions(w http.ResponseWriter, r *http.Request) {
	regions := registry.Regions()
	summaries := make([]regionSummary, 0, len(regions))
	for _, p := range regions {
		summaries = append(summaries, regionSummary{
			Name:             p.Name,
			Category:         p.Category,
			AnnualRainfallMM: p.AnnualRainfallMM,
			CropCount:        len(p.Crops),
		})
	}
	response.JSON(w, http.StatusOK, summaries)
}

// GetRegion returns one full region profile by name.
func (h *AdvisorHandler) GetRegion(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	profile, ok := registry.Region(name)
	if !ok {
		response.ErrorJSON(w, http.StatusNotFound, "region not found")
		return
	}
	response.JSON(w, http.StatusOK, profile)
}

func validGoal(g types.Goal) bool {
	switch g {
	case types.GoalProfit, types.GoalSoilHealth, types.GoalMixed:
		return true
	}
	return false
}

func validRisk(r types.RiskTolerance) bool {
	switch r {
	case types.RiskLow, types.RiskMedium, types.RiskHigh:
		return true
	}
	return false
}
