package forecast

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HashiniGamage/CareerNexusModel/internal/catalog"
)

func TestSynthesizeMonthly_Bounds(t *testing.T) {
	growth := catalog.GrowthFactors{Base: 0.20, Seasonal: 0.05, Trend: 0.15}

	// An extreme starting range still clamps into [30,100]
	demand := catalog.DemandRange{Min: 95, Max: 100}

	rng := rand.New(rand.NewSource(17))
	for run := 0; run < 50; run++ {
		points := synthesizeMonthly(growth, demand, rng)
		require.Len(t, points, 24)
		for i, p := range points {
			assert.GreaterOrEqual(t, p.DemandIndex, 30, "run %d month %d", run, i)
			assert.LessOrEqual(t, p.DemandIndex, 100, "run %d month %d", run, i)
		}
	}
}

func TestSynthesizeMonthly_Labels(t *testing.T) {
	growth := catalog.GrowthFactors{Base: 0.1, Seasonal: 0.0, Trend: 0.0}
	demand := catalog.DemandRange{Min: 50, Max: 60}

	points := synthesizeMonthly(growth, demand, rand.New(rand.NewSource(1)))

	// Month names repeat; the year suffix distinguishes the two cycles
	assert.Equal(t, "Jan Y1", points[0].Label)
	assert.Equal(t, "Jun Y1", points[5].Label)
	assert.Equal(t, "Jan Y2", points[12].Label)
	assert.Equal(t, "Dec Y2", points[23].Label)

	for i, p := range points {
		if i < 12 {
			assert.Equal(t, 1, p.YearIndex, "month %d", i)
		} else {
			assert.Equal(t, 2, p.YearIndex, "month %d", i)
		}
	}
}

func TestSynthesizeMonthly_Deterministic(t *testing.T) {
	growth := catalog.GrowthFactors{Base: 0.18, Seasonal: 0.03, Trend: 0.12}
	demand := catalog.DemandRange{Min: 70, Max: 88}

	first := synthesizeMonthly(growth, demand, rand.New(rand.NewSource(21)))
	second := synthesizeMonthly(growth, demand, rand.New(rand.NewSource(21)))

	assert.Equal(t, first, second)
}

func TestMeanDemand(t *testing.T) {
	growth := catalog.GrowthFactors{Base: 0.1, Seasonal: 0.0, Trend: 0.0}
	demand := catalog.DemandRange{Min: 50, Max: 50}

	points := synthesizeMonthly(growth, demand, rand.New(rand.NewSource(2)))
	mean := meanDemand(points)
	assert.GreaterOrEqual(t, mean, 30.0)
	assert.LessOrEqual(t, mean, 100.0)
}

func TestGrowthPct(t *testing.T) {
	assert.Equal(t, 10, growthPct(110, 100))
	assert.Equal(t, -25, growthPct(75, 100))
	assert.Equal(t, 0, growthPct(100, 100))

	// Rounds half away from zero
	assert.Equal(t, 13, growthPct(112.5, 100))
}

func TestGrowthPct_ZeroBaseline(t *testing.T) {
	assert.Equal(t, 0, growthPct(50, 0))
	assert.Equal(t, 0, growthPct(0, 0))
}
