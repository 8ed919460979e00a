// Package soil produces the six-field soil reading consumed by scoring.
// Strategy order: decode an external measurement payload where present,
// fill gaps from the resolved region's typical values, and synthesize a
// deterministic estimate when there is no payload at all.
package soil

import (
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/kisanmitra/cropadvisor/internal/types"
)

// SoilGrids-style property names carried by external payloads.
const (
	PropAcidity       = "phh2o"
	PropClay          = "clay"
	PropSand          = "sand"
	PropSilt          = "silt"
	PropNitrogen      = "nitrogen"
	PropOrganicCarbon = "soc"
)

// divisors converts encoded integers to physical units: pH is encoded as
// pH*10, the texture fractions as g/kg (10x percent), nitrogen as cg/kg
// and organic carbon as dg/kg. This encoding is a fixed external contract.
var divisors = map[string]float64{
	PropAcidity:       10,
	PropClay:          10,
	PropSand:          10,
	PropSilt:          10,
	PropNitrogen:      100,
	PropOrganicCarbon: 10,
}

// Provide returns a complete reading for the given coordinate. With no
// payload the reading is synthesized from the coordinate; otherwise each
// field comes from the payload when decodable and from the region's typical
// value when not. Every field is always set.
func Provide(lat, lon float64, region types.RegionProfile, payload []types.SoilProperty) types.SoilReading {
	if len(payload) == 0 {
		return Synthesize(lat, lon)
	}

	reading := Typical(region)
	decoded := decode(payload)
	if v, ok := decoded[PropAcidity]; ok {
		reading.PH = v
	}
	if v, ok := decoded[PropClay]; ok {
		reading.ClayPct = v
	}
	if v, ok := decoded[PropSand]; ok {
		reading.SandPct = v
	}
	if v, ok := decoded[PropSilt]; ok {
		reading.SiltPct = v
	}
	if v, ok := decoded[PropNitrogen]; ok {
		reading.Nitrogen = v
	}
	if v, ok := decoded[PropOrganicCarbon]; ok {
		reading.OrganicCarbon = v
	}
	return reading
}

// Typical builds a reading from the region's typical values.
func Typical(region types.RegionProfile) types.SoilReading {
	return types.SoilReading{
		PH:            region.PH.Typical,
		ClayPct:       region.Clay.Typical,
		SandPct:       region.Sand.Typical,
		SiltPct:       region.Silt.Typical,
		OrganicCarbon: region.OrganicCarbon.Typical,
		Nitrogen:      region.Nitrogen.Typical,
	}
}

// decode converts payload properties to physical units, keyed by property
// name. Unknown properties, properties without a usable depth band and
// bands without a mean are skipped; the caller falls back per field.
func decode(payload []types.SoilProperty) map[string]float64 {
	values := make(map[string]float64, len(payload))
	for _, prop := range payload {
		div, known := divisors[prop.Name]
		if !known {
			continue
		}
		band, ok := shallowestBand(prop.Depths)
		if !ok {
			continue
		}
		values[prop.Name] = float64(*band.Mean) / div
	}
	return values
}

// shallowestBand picks the depth band with the smallest top depth parsed
// from labels like "0-5cm". Bands with a missing mean are ignored; if no
// label parses, the first band with a mean is used.
func shallowestBand(bands []types.DepthBand) (types.DepthBand, bool) {
	best := types.DepthBand{}
	bestTop := math.MaxInt
	found := false
	for _, b := range bands {
		if b.Mean == nil {
			continue
		}
		top, ok := topDepth(b.Label)
		if !ok {
			if !found {
				best = b
				found = true
			}
			continue
		}
		if top < bestTop {
			best = b
			bestTop = top
			found = true
		}
	}
	return best, found
}

func topDepth(label string) (int, bool) {
	head, _, ok := strings.Cut(label, "-")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Synthetic-estimate parameters. The seed comes from a smooth trig hash of
// the coordinate so the same coordinate always yields the same reading;
// proximity to the east-coast longitude shifts texture toward sand.
const (
	seedK1      = 12.9898
	seedK2      = 78.233
	seedScale   = 43758.5453
	coastalLon  = 80.27
	coastalSpan = 3.5
)

// Synthesize derives a deterministic best-effort reading from the
// coordinate alone. Not scientifically accurate; it exists so the pipeline
// still answers when no measurement is available, and stays reproducible
// for caching.
func Synthesize(lat, lon float64) types.SoilReading {
	h := math.Sin(lat*seedK1+lon*seedK2) * seedScale
	frac := h - math.Floor(h)
	rng := rand.New(rand.NewSource(int64(frac * 1e9)))

	// 1 at the coastline reference longitude, fading to 0 inland.
	coastal := 1 - math.Min(math.Abs(lon-coastalLon)/coastalSpan, 1)

	return types.SoilReading{
		PH:            round1(6.6+coastal*0.6+jitter(rng, 0.4)),
		ClayPct:       round1(34-coastal*14+jitter(rng, 5)),
		SandPct:       round1(38+coastal*16+jitter(rng, 5)),
		SiltPct:       round1(24-coastal*3+jitter(rng, 4)),
		OrganicCarbon: round1(5.5-coastal*1.0+jitter(rng, 1.2)),
		Nitrogen:      round2(0.7-coastal*0.15+jitter(rng, 0.15)),
	}
}

// jitter returns a value in (-bound, bound) from the seeded generator.
func jitter(rng *rand.Rand, bound float64) float64 {
	return (rng.Float64()*2 - 1) * bound
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
