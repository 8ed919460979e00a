// Package registry holds the static agro-soil catalog: one profile per
// known region plus the centroid table used for nearest-neighbor lookup.
// The data is compiled in, indexed once, and never mutated.
package registry

import (
	"sync"

	"github.com/kisanmitra/cropadvisor/internal/types"
)

// DefaultRegion is returned when a centroid names a profile that does not
// exist. It always has a matching profile.
const DefaultRegion = "Coimbatore"

var (
	byName    map[string]types.RegionProfile
	indexOnce sync.Once
)

func buildIndex() {
	indexOnce.Do(func() {
		byName = make(map[string]types.RegionProfile, len(regionProfiles))
		for _, p := range regionProfiles {
			byName[p.Name] = p
		}
	})
}

// Region looks up a profile by exact name.
func Region(name string) (types.RegionProfile, bool) {
	buildIndex()
	p, ok := byName[name]
	return p, ok
}

// Regions returns all profiles in declaration order.
func Regions() []types.RegionProfile {
	return regionProfiles
}

// Centroids returns the full centroid table, coarse and sub-region entries
// alike, in declaration order.
func Centroids() []types.Centroid {
	return regionCentroids
}
