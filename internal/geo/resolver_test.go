package geo

import (
	"testing"

	"github.com/kisanmitra/cropadvisor/internal/registry"
	"github.com/kisanmitra/cropadvisor/internal/types"
)

func TestResolveKnownBelts(t *testing.T) {
	tests := []struct {
		name   string
		lat    float64
		lon    float64
		region string
	}{
		{"black cotton belt", 11.02, 76.96, "Coimbatore"},
		{"coastal sandy belt", 13.08, 80.27, "Chennai"},
		{"delta", 10.79, 79.14, "Thanjavur"},
		{"upland via sub-region centroid", 11.35, 76.80, "The Nilgiris"},
		{"sub-region maps to parent profile", 10.96, 79.38, "Thanjavur"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.lat, tt.lon)
			if got.Name != tt.region {
				t.Errorf("Resolve(%v, %v) = %s, want %s", tt.lat, tt.lon, got.Name, tt.region)
			}
		})
	}
}

// Resolution must succeed everywhere inside (and by extension outside) the
// bounding box of the centroid table.
func TestResolveAlwaysSucceeds(t *testing.T) {
	for lat := 8.0; lat <= 13.5; lat += 0.25 {
		for lon := 76.0; lon <= 80.5; lon += 0.25 {
			got := Resolve(lat, lon)
			if got.Name == "" {
				t.Fatalf("Resolve(%v, %v) returned empty profile", lat, lon)
			}
			if len(got.Crops) == 0 {
				t.Fatalf("Resolve(%v, %v) returned profile without crops", lat, lon)
			}
		}
	}
}

func TestResolveFarOutsideCoverage(t *testing.T) {
	got := Resolve(52.52, 13.40)
	if got.Name == "" {
		t.Fatal("expected a nearest-match profile for a far-away coordinate")
	}
}

func TestNearestFirstMinimumWins(t *testing.T) {
	// Two centroids equidistant from the probe: the earlier table entry
	// must win.
	table := []types.Centroid{
		{Name: "West", Region: "West", Lat: 10, Lon: 76},
		{Name: "East", Region: "East", Lat: 10, Lon: 78},
	}
	got := Nearest(table, 10, 77)
	if got.Name != "West" {
		t.Errorf("tie should go to first table entry, got %s", got.Name)
	}
}

func TestNearestEmptyTable(t *testing.T) {
	got := Nearest(nil, 11, 77)
	if got != (types.Centroid{}) {
		t.Errorf("empty table should yield the zero centroid, got %+v", got)
	}

	if p := resolveIn(nil, 11, 77); p.Name != registry.DefaultRegion {
		t.Errorf("empty table should resolve to %s, got %s", registry.DefaultRegion, p.Name)
	}
}

func TestDanglingCentroidFallsBack(t *testing.T) {
	table := []types.Centroid{
		{Name: "Ghost", Region: "No Such Region", Lat: 11, Lon: 77},
	}
	got := resolveIn(table, 11, 77)
	if got.Name != registry.DefaultRegion {
		t.Errorf("dangling centroid should resolve to %s, got %s", registry.DefaultRegion, got.Name)
	}
}
