package recommend

import (
	"sort"

	"github.com/kisanmitra/cropadvisor/internal/types"
)

// Preferences are the user-supplied scoring inputs.
type Preferences struct {
	Goal types.Goal
	Risk types.RiskTolerance
}

// ScoredCrop is a region crop entry with its computed score and the
// human-readable reasons for every rule that fired. Transient: built
// during a single scoring call and discarded after selection.
type ScoredCrop struct {
	Entry   types.CropEntry
	Score   int
	Reasons []string
}

// Score ranks the region's candidate crops against the reading and
// preferences. Additive point system on a base of 100; the returned slice
// is sorted descending by score, ties kept in registry order.
func Score(region types.RegionProfile, reading types.SoilReading, prefs Preferences) []ScoredCrop {
	scored := make([]ScoredCrop, 0, len(region.Crops))
	for _, entry := range region.Crops {
		scored = append(scored, scoreCrop(entry, reading, prefs))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// Top returns at most n of the highest-ranked candidates. Fewer candidates
// than n is not an error; everything available is returned.
func Top(scored []ScoredCrop, n int) []ScoredCrop {
	if len(scored) < n {
		n = len(scored)
	}
	return scored[:n]
}

func scoreCrop(entry types.CropEntry, reading types.SoilReading, prefs Preferences) ScoredCrop {
	c := ScoredCrop{Entry: entry, Score: baseScore}

	switch entry.Tier {
	case types.TierExcellent:
		c.add(bonusTierExcellent, "top-rated for this region")
	case types.TierGood:
		c.add(bonusTierGood, "well suited to this region")
	case types.TierModerate:
		c.add(bonusTierModerate, "workable option for this region")
	}

	name := entry.Name
	switch {
	case reading.PH < acidicBelow:
		if acidTolerant.has(name) {
			c.add(bonusAcidTolerant, "acidic soil lover")
		}
		if acidSensitive.has(name) {
			c.add(penaltyAcidSensitive, "struggles in acidic soil")
		}
	case reading.PH > alkalineAbove:
		if alkalineTolerant.has(name) {
			c.add(bonusAlkalineTolerant, "tolerates alkaline soil")
		}
		if alkalineSensitive.has(name) {
			c.add(penaltyAlkalineSensitive, "sensitive to alkaline soil")
		}
	}

	switch {
	case reading.ClayPct > heavyClayAbove:
		if clayLoving.has(name) {
			c.add(bonusClayLoving, "thrives in heavy clay")
		}
	case reading.ClayPct < sandyBelow:
		if sandyTolerant.has(name) {
			c.add(bonusSandyTolerant, "handles sandy soil")
		}
		if clayRequiring.has(name) {
			c.add(penaltyClayRequiring, "needs heavier soil")
		}
	}

	if prefs.Goal == types.GoalProfit && entry.MarketDemand == types.LevelHigh {
		c.add(bonusHighDemand, "strong market demand")
	}
	if prefs.Goal == types.GoalSoilHealth && nitrogenFixers.has(name) {
		c.add(bonusNitrogenFixer, "fixes nitrogen, builds soil")
	}

	if prefs.Risk == types.RiskLow && stableCrops.has(name) {
		c.add(bonusStableCrop, "dependable staple")
	}
	if prefs.Risk == types.RiskHigh && cashCrops.has(name) {
		c.add(bonusCashCrop, "high-value cash crop")
	}

	return c
}

func (c *ScoredCrop) add(delta int, reason string) {
	c.Score += delta
	c.Reasons = append(c.Reasons, reason)
}
