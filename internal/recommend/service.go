// Package recommend ranks a region's candidate crops against a soil
// reading and the farmer's preferences, and assembles the final
// recommendation payload.
package recommend

import (
	"context"
	"log/slog"

	"github.com/kisanmitra/cropadvisor/internal/geo"
	"github.com/kisanmitra/cropadvisor/internal/soil"
	"github.com/kisanmitra/cropadvisor/internal/types"
)

// SoilSource fetches a live soil measurement payload for a coordinate.
// Implemented by the soilgrid client; nil means no live source.
type SoilSource interface {
	Properties(ctx context.Context, lat, lon float64) ([]types.SoilProperty, error)
}

// Service runs the full location-to-recommendation pipeline.
type Service struct {
	soilSource SoilSource
}

// NewService creates the pipeline service. soilSource may be nil.
func NewService(soilSource SoilSource) *Service {
	return &Service{soilSource: soilSource}
}

// Recommend resolves the coordinate, obtains a soil reading and returns the
// ranked top crops. Every input yields a best-effort answer: a failed live
// fetch only logs and falls back to regional or synthetic soil values.
func (s *Service) Recommend(ctx context.Context, req types.RecommendationRequest) types.Recommendation {
	region := geo.Resolve(req.Latitude, req.Longitude)

	payload := req.SoilProperties
	if len(payload) == 0 && s.soilSource != nil {
		fetched, err := s.soilSource.Properties(ctx, req.Latitude, req.Longitude)
		if err != nil {
			slog.Warn("soil data fetch failed, using fallback reading",
				"region", region.Name, "error", err)
		} else {
			payload = fetched
		}
	}

	reading := soil.Provide(req.Latitude, req.Longitude, region, payload)

	scored := Score(region, reading, Preferences{Goal: req.Goal, Risk: req.RiskTolerance})
	top := Top(scored, topN)

	ranked := make([]string, 0, len(top))
	suitability := make(map[string]types.SuitabilityTier, len(top))
	for _, c := range top {
		ranked = append(ranked, c.Entry.Name)
		suitability[c.Entry.Name] = c.Entry.Tier
	}

	return types.Recommendation{
		RankedCrops: ranked,
		Suitability: suitability,
		Rationale:   Rationale(region, reading, top),
		Region:      region.Name,
		SoilSummary: types.SoilSummary{
			Acidity:       reading.PH,
			ClayPct:       reading.ClayPct,
			SandPct:       reading.SandPct,
			Nitrogen:      reading.Nitrogen,
			OrganicCarbon: reading.OrganicCarbon,
		},
	}
}
