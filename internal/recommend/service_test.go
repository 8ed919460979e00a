package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/kisanmitra/cropadvisor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSoilSource struct {
	payload []types.SoilProperty
	err     error
	calls   int
}

func (s *stubSoilSource) Properties(ctx context.Context, lat, lon float64) ([]types.SoilProperty, error) {
	s.calls++
	return s.payload, s.err
}

func TestRecommendBlackCottonBelt(t *testing.T) {
	svc := NewService(nil)
	req := types.RecommendationRequest{
		Latitude:      11.02,
		Longitude:     76.96,
		Goal:          types.GoalProfit,
		RiskTolerance: types.RiskMedium,
	}

	rec := svc.Recommend(context.Background(), req)

	assert.Equal(t, "Coimbatore", rec.Region)
	assert.Contains(t, rec.RankedCrops, "Cotton")
	assert.Contains(t, rec.RankedCrops, "Sorghum")
	assert.NotContains(t, rec.RankedCrops, "Tea", "upland crop must not appear in the western belt")
	assert.NotContains(t, rec.RankedCrops, "Cashew", "coastal crop must not appear in the western belt")

	require.NotEmpty(t, rec.RankedCrops)
	assert.LessOrEqual(t, len(rec.RankedCrops), 5)
	for _, name := range rec.RankedCrops {
		assert.Contains(t, rec.Suitability, name)
	}
	assert.Contains(t, rec.Rationale, "Coimbatore")
	assert.Contains(t, rec.Rationale, attribution)
	assert.Greater(t, rec.SoilSummary.Acidity, 0.0)
}

func TestRecommendIsLocationSensitive(t *testing.T) {
	svc := NewService(nil)
	base := types.RecommendationRequest{Goal: types.GoalProfit, RiskTolerance: types.RiskMedium}

	coastal := base
	coastal.Latitude, coastal.Longitude = 13.08, 80.27
	western := base
	western.Latitude, western.Longitude = 11.02, 76.96

	coastalRec := svc.Recommend(context.Background(), coastal)
	westernRec := svc.Recommend(context.Background(), western)

	assert.Equal(t, "Chennai", coastalRec.Region)
	assert.Equal(t, "Coimbatore", westernRec.Region)
	assert.NotEqual(t, coastalRec.Region, westernRec.Region)
	assert.NotEqual(t, coastalRec.RankedCrops, westernRec.RankedCrops)
}

func TestRecommendIsDeterministic(t *testing.T) {
	svc := NewService(nil)
	req := types.RecommendationRequest{
		Latitude:      11.02,
		Longitude:     76.96,
		Goal:          types.GoalSoilHealth,
		RiskTolerance: types.RiskLow,
	}

	first := svc.Recommend(context.Background(), req)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, svc.Recommend(context.Background(), req))
	}
}

func TestRecommendUsesInlinePayloadOverSource(t *testing.T) {
	src := &stubSoilSource{}
	svc := NewService(src)

	mean := 68
	req := types.RecommendationRequest{
		Latitude:      11.02,
		Longitude:     76.96,
		Goal:          types.GoalMixed,
		RiskTolerance: types.RiskMedium,
		SoilProperties: []types.SoilProperty{
			{Name: "phh2o", Depths: []types.DepthBand{{Label: "0-5cm", Mean: &mean}}},
		},
	}

	rec := svc.Recommend(context.Background(), req)

	assert.Equal(t, 0, src.calls, "inline payload should skip the live source")
	assert.Equal(t, 6.8, rec.SoilSummary.Acidity)
}

func TestRecommendSurvivesSoilSourceFailure(t *testing.T) {
	src := &stubSoilSource{err: errors.New("upstream down")}
	svc := NewService(src)

	req := types.RecommendationRequest{
		Latitude:      11.02,
		Longitude:     76.96,
		Goal:          types.GoalMixed,
		RiskTolerance: types.RiskMedium,
	}

	rec := svc.Recommend(context.Background(), req)

	assert.Equal(t, 1, src.calls)
	assert.NotEmpty(t, rec.RankedCrops, "fetch failure must still yield an answer")
	assert.Equal(t, "Coimbatore", rec.Region)
}

func TestRecommendUsesFetchedPayload(t *testing.T) {
	mean := 52
	src := &stubSoilSource{payload: []types.SoilProperty{
		{Name: "phh2o", Depths: []types.DepthBand{{Label: "0-5cm", Mean: &mean}}},
	}}
	svc := NewService(src)

	req := types.RecommendationRequest{
		Latitude:      11.02,
		Longitude:     76.96,
		Goal:          types.GoalMixed,
		RiskTolerance: types.RiskMedium,
	}

	rec := svc.Recommend(context.Background(), req)

	assert.Equal(t, 1, src.calls)
	assert.Equal(t, 5.2, rec.SoilSummary.Acidity)
}
