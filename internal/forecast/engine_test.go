package forecast

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HashiniGamage/CareerNexusModel/internal/catalog"
	"github.com/HashiniGamage/CareerNexusModel/internal/types"
)

func seededEngine(seed int64) *Engine {
	return NewEngineWithRand(rand.New(rand.NewSource(seed)))
}

func TestPredict_UnsupportedIndustry(t *testing.T) {
	_, err := seededEngine(1).Predict("astrology", "entry")
	require.Error(t, err)

	var unsupported *ErrUnsupportedIndustry
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "astrology", unsupported.Industry)
	assert.Contains(t, err.Error(), "astrology")
}

func TestPredict_OneForecastPerJob(t *testing.T) {
	for _, ind := range catalog.Industries() {
		profile, ok := catalog.Lookup(ind)
		require.True(t, ok)

		forecasts, err := seededEngine(42).Predict(string(ind), "entry")
		require.NoError(t, err)
		assert.Len(t, forecasts, len(profile.Jobs), "industry %s", ind)

		// Every catalog job appears exactly once
		seen := make(map[string]bool)
		for _, f := range forecasts {
			seen[f.JobTitle] = true
		}
		for _, job := range profile.Jobs {
			assert.True(t, seen[job], "missing forecast for %s", job)
		}
	}
}

func TestPredict_MonthlyCurveShape(t *testing.T) {
	forecasts, err := seededEngine(7).Predict("technology", "mid")
	require.NoError(t, err)

	for _, f := range forecasts {
		require.Len(t, f.MonthlyPoints, 24, "job %s", f.JobTitle)

		for i, p := range f.MonthlyPoints {
			assert.GreaterOrEqual(t, p.DemandIndex, 30, "job %s month %d", f.JobTitle, i)
			assert.LessOrEqual(t, p.DemandIndex, 100, "job %s month %d", f.JobTitle, i)

			wantYear := 1
			if i >= 12 {
				wantYear = 2
			}
			assert.Equal(t, wantYear, p.YearIndex, "job %s month %d", f.JobTitle, i)
		}

		assert.Equal(t, "Jan Y1", f.MonthlyPoints[0].Label)
		assert.Equal(t, "Dec Y1", f.MonthlyPoints[11].Label)
		assert.Equal(t, "Jan Y2", f.MonthlyPoints[12].Label)
		assert.Equal(t, "Dec Y2", f.MonthlyPoints[23].Label)
	}
}

func TestPredict_SortedByTotalGrowth(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		forecasts, err := seededEngine(seed).Predict("finance", "senior")
		require.NoError(t, err)

		for i := 1; i < len(forecasts); i++ {
			assert.GreaterOrEqual(t, forecasts[i-1].TotalGrowthPct, forecasts[i].TotalGrowthPct,
				"seed %d position %d", seed, i)
		}
	}
}

func TestPredict_ConfidenceAndDemandBounds(t *testing.T) {
	forecasts, err := seededEngine(99).Predict("healthcare", "entry")
	require.NoError(t, err)

	profile, _ := catalog.Lookup(catalog.Healthcare)
	for _, f := range forecasts {
		assert.GreaterOrEqual(t, f.ConfidenceScore, 85, "job %s", f.JobTitle)
		assert.LessOrEqual(t, f.ConfidenceScore, 98, "job %s", f.JobTitle)
		assert.GreaterOrEqual(t, f.CurrentDemand, profile.Demand.Min, "job %s", f.JobTitle)
		assert.LessOrEqual(t, f.CurrentDemand, profile.Demand.Max, "job %s", f.JobTitle)
	}
}

func TestPredict_SkillsSampledFromCatalog(t *testing.T) {
	forecasts, err := seededEngine(3).Predict("retail", "mid")
	require.NoError(t, err)

	catalogSkills := make(map[string]bool)
	for _, s := range catalog.Skills(catalog.Retail) {
		catalogSkills[s] = true
	}

	for _, f := range forecasts {
		assert.GreaterOrEqual(t, len(f.RequiredSkills), 3, "job %s", f.JobTitle)
		assert.LessOrEqual(t, len(f.RequiredSkills), 6, "job %s", f.JobTitle)

		seen := make(map[string]bool)
		for _, s := range f.RequiredSkills {
			assert.True(t, catalogSkills[s], "job %s has unknown skill %q", f.JobTitle, s)
			assert.False(t, seen[s], "job %s has duplicate skill %q", f.JobTitle, s)
			seen[s] = true
		}
	}
}

func TestPredict_SalaryByExperience(t *testing.T) {
	forecasts, err := seededEngine(5).Predict("technology", "entry")
	require.NoError(t, err)
	for _, f := range forecasts {
		assert.Equal(t, "LKR 80,000 - 150,000", f.SalaryRange)
	}
}

func TestPredict_UnknownExperienceDegradesSalary(t *testing.T) {
	// Unknown experience is not an error; salary degrades to the sentinel
	forecasts, err := seededEngine(5).Predict("technology", "intern")
	require.NoError(t, err)
	require.NotEmpty(t, forecasts)
	for _, f := range forecasts {
		assert.Equal(t, catalog.SalaryNotAvailable, f.SalaryRange)
	}
}

func TestPredict_EducationPathwaysPresent(t *testing.T) {
	forecasts, err := seededEngine(11).Predict("construction", "senior")
	require.NoError(t, err)

	for _, f := range forecasts {
		require.NotEmpty(t, f.EducationPathways, "job %s", f.JobTitle)
		for _, p := range f.EducationPathways {
			assert.NotEmpty(t, p.Title)
			assert.GreaterOrEqual(t, p.AlignmentPct, 0)
			assert.LessOrEqual(t, p.AlignmentPct, 100)
		}
	}
}

func TestPredict_DeterministicWithFixedSeed(t *testing.T) {
	first, err := seededEngine(1234).Predict("education", "mid")
	require.NoError(t, err)

	second, err := seededEngine(1234).Predict("education", "mid")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPredict_GrowthIdentity(t *testing.T) {
	// Total growth is measured from the first point to the year-two average,
	// while the two yearly figures chain through the year-one average. The
	// three are therefore related but not additive.
	forecasts, err := seededEngine(8).Predict("manufacturing", "entry")
	require.NoError(t, err)

	for _, f := range forecasts {
		first := float64(f.MonthlyPoints[0].DemandIndex)
		year1Avg := meanDemand(f.MonthlyPoints[:12])
		year2Avg := meanDemand(f.MonthlyPoints[12:])

		assert.Equal(t, growthPct(year1Avg, first), f.Year1GrowthPct, "job %s", f.JobTitle)
		assert.Equal(t, growthPct(year2Avg, year1Avg), f.Year2GrowthPct, "job %s", f.JobTitle)
		assert.Equal(t, growthPct(year2Avg, first), f.TotalGrowthPct, "job %s", f.JobTitle)
	}
}

func TestSampleSkills_CappedAtListSize(t *testing.T) {
	e := seededEngine(1)
	short := []string{"A", "B"}

	for i := 0; i < 20; i++ {
		picked := e.sampleSkills(short)
		assert.LessOrEqual(t, len(picked), 2)
		assert.NotEmpty(t, picked)
	}
}

var benchForecasts []types.JobForecast

func BenchmarkPredict(b *testing.B) {
	e := seededEngine(1)
	for i := 0; i < b.N; i++ {
		forecasts, err := e.Predict("technology", "mid")
		if err != nil {
			b.Fatal(err)
		}
		benchForecasts = forecasts
	}
}
