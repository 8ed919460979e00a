package recommend

import "strings"

// Scoring constants. The thresholds and deltas are empirically tuned
// configuration data; change them only as a deliberate recalibration.
const (
	baseScore = 100

	bonusTierExcellent = 40
	bonusTierGood      = 20
	bonusTierModerate  = 5

	acidicBelow   = 6.0
	alkalineAbove = 7.5

	bonusAcidTolerant        = 20
	penaltyAcidSensitive     = -30
	bonusAlkalineTolerant    = 15
	penaltyAlkalineSensitive = -25

	heavyClayAbove = 40.0
	sandyBelow     = 20.0

	bonusClayLoving      = 25
	bonusSandyTolerant   = 20
	penaltyClayRequiring = -20

	bonusHighDemand    = 30
	bonusNitrogenFixer = 40
	bonusStableCrop    = 15
	bonusCashCrop      = 20

	topN = 5
)

type cropSet map[string]struct{}

func newCropSet(names ...string) cropSet {
	s := make(cropSet, len(names))
	for _, n := range names {
		s[cropKey(n)] = struct{}{}
	}
	return s
}

func (s cropSet) has(name string) bool {
	_, ok := s[cropKey(name)]
	return ok
}

// cropKey normalizes a crop name into the canonical identifier used for
// rule membership, so display-name changes cannot silently break rules.
func cropKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Rule membership sets, keyed by canonical crop identifier.
var (
	acidTolerant = newCropSet(
		"tea", "coffee", "ginger", "turmeric", "finger millet",
		"potato", "tapioca", "pineapple",
	)
	acidSensitive = newCropSet(
		"wheat", "sugarcane", "sorghum", "mustard",
	)
	alkalineTolerant = newCropSet(
		"cotton", "sorghum", "pearl millet", "sunflower", "chilli",
	)
	alkalineSensitive = newCropSet(
		"tea", "coffee", "potato", "tapioca",
	)
	clayLoving = newCropSet(
		"paddy", "cotton", "sugarcane", "banana",
	)
	sandyTolerant = newCropSet(
		"groundnut", "coconut", "cashew", "watermelon", "carrot",
		"potato", "pearl millet",
	)
	clayRequiring = newCropSet(
		"paddy", "sugarcane", "banana",
	)
	nitrogenFixers = newCropSet(
		"black gram", "green gram", "red gram", "groundnut",
		"cowpea", "chickpea", "soybean",
	)
	stableCrops = newCropSet(
		"paddy", "sorghum", "maize", "pearl millet", "finger millet",
		"groundnut",
	)
	cashCrops = newCropSet(
		"cotton", "sugarcane", "turmeric", "banana", "tea", "coffee",
		"grapes",
	)
)
