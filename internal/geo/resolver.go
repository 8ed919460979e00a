// Package geo maps arbitrary coordinates onto the known region profiles.
package geo

import (
	"github.com/kisanmitra/cropadvisor/internal/registry"
	"github.com/kisanmitra/cropadvisor/internal/types"
)

// Resolve returns the profile of the region whose centroid is nearest to
// (lat, lon). It always succeeds: the table is non-empty and a dangling
// centroid name falls back to the default region.
func Resolve(lat, lon float64) types.RegionProfile {
	return resolveIn(registry.Centroids(), lat, lon)
}

func resolveIn(centroids []types.Centroid, lat, lon float64) types.RegionProfile {
	nearest := Nearest(centroids, lat, lon)
	if p, ok := registry.Region(nearest.Region); ok {
		return p
	}
	p, _ := registry.Region(registry.DefaultRegion)
	return p
}

// Nearest scans the whole table and returns the centroid with the smallest
// squared planar distance to (lat, lon). No geodesic correction: at the
// scale of a single state the planar error never changes the winner. On an
// exact distance tie the first entry in table order wins, so the table
// order is part of the contract. An empty table yields the zero Centroid,
// which resolveIn maps to the default region.
func Nearest(centroids []types.Centroid, lat, lon float64) types.Centroid {
	if len(centroids) == 0 {
		return types.Centroid{}
	}
	best := centroids[0]
	bestDist := squaredDistance(lat, lon, best.Lat, best.Lon)
	for _, c := range centroids[1:] {
		if d := squaredDistance(lat, lon, c.Lat, c.Lon); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}

func squaredDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := lat1 - lat2
	dLon := lon1 - lon2
	return dLat*dLat + dLon*dLon
}
