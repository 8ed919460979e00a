package registry

import (
	"testing"

	"github.com/kisanmitra/cropadvisor/internal/types"
)

func TestRegionLookup(t *testing.T) {
	p, ok := Region("Coimbatore")
	if !ok {
		t.Fatal("expected Coimbatore profile to exist")
	}
	if p.Name != "Coimbatore" {
		t.Errorf("expected name Coimbatore, got %s", p.Name)
	}

	if _, ok := Region("Atlantis"); ok {
		t.Error("expected unknown region lookup to report not found")
	}
}

func TestDefaultRegionExists(t *testing.T) {
	if _, ok := Region(DefaultRegion); !ok {
		t.Fatalf("default region %q has no profile", DefaultRegion)
	}
}

func TestEveryRegionHasCrops(t *testing.T) {
	for _, p := range Regions() {
		if len(p.Crops) == 0 {
			t.Errorf("region %s has no crop entries", p.Name)
		}
	}
}

func TestRangesAreOrdered(t *testing.T) {
	check := func(t *testing.T, region, field string, r types.Range) {
		t.Helper()
		if !(r.Min <= r.Typical && r.Typical <= r.Max) {
			t.Errorf("%s %s: want min <= typical <= max, got %+v", region, field, r)
		}
	}

	for _, p := range Regions() {
		check(t, p.Name, "ph", p.PH)
		check(t, p.Name, "clay", p.Clay)
		check(t, p.Name, "sand", p.Sand)
		check(t, p.Name, "silt", p.Silt)
		check(t, p.Name, "organic_carbon", p.OrganicCarbon)
		check(t, p.Name, "nitrogen", p.Nitrogen)
	}
}

func TestTiersUseClosedVocabulary(t *testing.T) {
	validTier := map[types.SuitabilityTier]bool{
		types.TierExcellent: true,
		types.TierGood:      true,
		types.TierModerate:  true,
	}
	validLevel := map[string]bool{
		types.LevelHigh:   true,
		types.LevelMedium: true,
		types.LevelLow:    true,
	}

	for _, p := range Regions() {
		for _, c := range p.Crops {
			if !validTier[c.Tier] {
				t.Errorf("%s/%s: invalid tier %q", p.Name, c.Name, c.Tier)
			}
			if !validLevel[c.WaterNeed] {
				t.Errorf("%s/%s: invalid water need %q", p.Name, c.Name, c.WaterNeed)
			}
			if !validLevel[c.MarketDemand] {
				t.Errorf("%s/%s: invalid market demand %q", p.Name, c.Name, c.MarketDemand)
			}
		}
	}
}

func TestEveryCentroidResolves(t *testing.T) {
	if len(Centroids()) == 0 {
		t.Fatal("centroid table is empty")
	}
	for _, c := range Centroids() {
		if _, ok := Region(c.Region); !ok {
			t.Errorf("centroid %s references unknown region %s", c.Name, c.Region)
		}
	}
}

func TestRegionNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Regions() {
		if seen[p.Name] {
			t.Errorf("duplicate region name %s", p.Name)
		}
		seen[p.Name] = true
	}
}
