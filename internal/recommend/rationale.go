package recommend

import (
	"fmt"
	"strings"

	"github.com/kisanmitra/cropadvisor/internal/types"
)

const attribution = "These suggestions are based on regional soil profiles and agronomic suitability data. Please confirm with your local agricultural extension office before sowing."

// Rationale formats the multi-paragraph explanation shown to the farmer:
// the resolved region's soil numbers, one line per ranked crop, and a
// fixed closing attribution.
func Rationale(region types.RegionProfile, reading types.SoilReading, top []ScoredCrop) string {
	var b strings.Builder

	fmt.Fprintf(&b,
		"Your location falls in the %s region (%s belt). Soil here reads pH %.1f with %.0f%% clay, %.0f%% sand and %.0f%% silt, organic carbon %.1f g/kg and nitrogen %.2f g/kg, under roughly %.0f mm of rain a year.",
		region.Name, region.Category,
		reading.PH, reading.ClayPct, reading.SandPct, reading.SiltPct,
		reading.OrganicCarbon, reading.Nitrogen, region.AnnualRainfallMM,
	)

	for i, c := range top {
		b.WriteString("\n\n")
		fmt.Fprintf(&b,
			"%d. %s (%s) — season: %s; expected yield: %s; market demand: %s; water need: %s.",
			i+1, c.Entry.Name, c.Entry.Tier, c.Entry.Season,
			c.Entry.YieldRange, c.Entry.MarketDemand, c.Entry.WaterNeed,
		)
		if len(c.Reasons) > 0 {
			fmt.Fprintf(&b, " Why: %s.", strings.Join(c.Reasons, ", "))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(attribution)
	return b.String()
}
