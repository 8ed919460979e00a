package types

// Goal is the farmer's stated primary objective.
type Goal string

const (
	GoalProfit     Goal = "profit"
	GoalSoilHealth Goal = "soil-health"
	GoalMixed      Goal = "mixed"
)

// RiskTolerance is how much market/crop risk the farmer will accept.
type RiskTolerance string

const (
	RiskLow    RiskTolerance = "low"
	RiskMedium RiskTolerance = "medium"
	RiskHigh   RiskTolerance = "high"
)

// SuitabilityTier is the qualitative rating of a crop within a region.
type SuitabilityTier string

const (
	TierExcellent SuitabilityTier = "excellent"
	TierGood      SuitabilityTier = "good"
	TierModerate  SuitabilityTier = "moderate"
)

// Market-demand and water-need tiers share the same closed vocabulary.
const (
	LevelHigh   = "high"
	LevelMedium = "medium"
	LevelLow    = "low"
)

// Range is a (min, typical, max) triple for one soil-chemistry field.
type Range struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Typical float64 `json:"typical"`
}

// CropEntry is one crop's static agronomy record within a region.
type CropEntry struct {
	Name         string          `json:"name"`
	Tier         SuitabilityTier `json:"tier"`
	Season       string          `json:"season"`
	YieldRange   string          `json:"yield_range"`
	WaterNeed    string          `json:"water_need"`
	MarketDemand string          `json:"market_demand"`
}

// RegionProfile describes one administrative unit's typical soil and agronomy.
// Units: PH unitless, Clay/Sand/Silt in percent, OrganicCarbon and Nitrogen
// in g/kg, rainfall in mm/year.
type RegionProfile struct {
	Name             string      `json:"name"`
	Category         string      `json:"category"`
	PH               Range       `json:"ph"`
	Clay             Range       `json:"clay"`
	Sand             Range       `json:"sand"`
	Silt             Range       `json:"silt"`
	OrganicCarbon    Range       `json:"organic_carbon"`
	Nitrogen         Range       `json:"nitrogen"`
	AnnualRainfallMM float64     `json:"annual_rainfall_mm"`
	Crops            []CropEntry `json:"crops"`
}

// Centroid is one nearest-neighbor candidate. Name may be a sub-region;
// Region is the profile name it resolves to.
type Centroid struct {
	Name   string  `json:"name"`
	Region string  `json:"region"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}

// SoilReading is a concrete six-field soil-chemistry snapshot, in the same
// units as the RegionProfile ranges. Built fresh per request.
type SoilReading struct {
	PH            float64 `json:"ph"`
	ClayPct       float64 `json:"clay_pct"`
	SandPct       float64 `json:"sand_pct"`
	SiltPct       float64 `json:"silt_pct"`
	OrganicCarbon float64 `json:"organic_carbon"`
	Nitrogen      float64 `json:"nitrogen"`
}

// DepthBand is one depth-banded integer-encoded measurement. Mean is a
// pointer so a missing value can be told apart from zero.
type DepthBand struct {
	Label string `json:"label"`
	Mean  *int   `json:"mean"`
}

// SoilProperty is one named property of an external soil measurement payload.
type SoilProperty struct {
	Name   string      `json:"name"`
	Depths []DepthBand `json:"depths"`
}

// RecommendationRequest is the pipeline input as received from the form layer.
type RecommendationRequest struct {
	Latitude       float64        `json:"latitude"`
	Longitude      float64        `json:"longitude"`
	Goal           Goal           `json:"goal"`
	RiskTolerance  RiskTolerance  `json:"risk_tolerance"`
	SoilProperties []SoilProperty `json:"soil_properties,omitempty"`
}

// SoilSummary is the human-units soil snapshot echoed back to the caller.
type SoilSummary struct {
	Acidity       float64 `json:"acidity"`
	ClayPct       float64 `json:"clay_pct"`
	SandPct       float64 `json:"sand_pct"`
	Nitrogen      float64 `json:"nitrogen"`
	OrganicCarbon float64 `json:"organic_carbon"`
}

// Recommendation is the ranked pipeline output.
type Recommendation struct {
	RankedCrops []string                   `json:"ranked_crops"`
	Suitability map[string]SuitabilityTier `json:"suitability"`
	Rationale   string                     `json:"rationale"`
	Region      string                     `json:"region"`
	SoilSummary SoilSummary                `json:"soil_summary"`
}
