package forecast

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/HashiniGamage/CareerNexusModel/internal/catalog"
	"github.com/HashiniGamage/CareerNexusModel/internal/education"
	"github.com/HashiniGamage/CareerNexusModel/internal/types"
)

// Engine produces ranked job demand forecasts. It is not safe for concurrent
// use; each Predict call is a single synchronous computation, which matches
// the one-request-at-a-time UI that drives it.
type Engine struct {
	rng *rand.Rand
}

// NewEngine creates an engine seeded from the wall clock.
func NewEngine() *Engine {
	return NewEngineWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewEngineWithRand creates an engine with an explicit random source.
// Tests use a fixed seed to assert exact numeric outcomes.
func NewEngineWithRand(rng *rand.Rand) *Engine {
	return &Engine{rng: rng}
}

// Predict synthesizes a forecast for every job in the industry and returns
// them sorted descending by total growth, with catalog order preserved for
// ties. An unknown industry fails; an unknown experience level degrades the
// salary lookup to the "Not available" sentinel instead of failing.
func (e *Engine) Predict(industry, experience string) ([]types.JobForecast, error) {
	ind, ok := catalog.ParseIndustry(industry)
	if !ok {
		return nil, &ErrUnsupportedIndustry{Industry: industry}
	}
	profile, _ := catalog.Lookup(ind)
	skills := catalog.Skills(ind)
	exp := catalog.Experience(experience)

	forecasts := make([]types.JobForecast, 0, len(profile.Jobs))
	for _, job := range profile.Jobs {
		points := synthesizeMonthly(profile.Growth, profile.Demand, e.rng)

		first := float64(points[0].DemandIndex)
		year1Avg := meanDemand(points[:12])
		year2Avg := meanDemand(points[12:])

		forecasts = append(forecasts, types.JobForecast{
			JobTitle:       job,
			CurrentDemand:  e.rollCurrentDemand(profile.Demand),
			Year1GrowthPct: growthPct(year1Avg, first),
			Year2GrowthPct: growthPct(year2Avg, year1Avg),
			TotalGrowthPct: growthPct(year2Avg, first),
			// 85-98%
			ConfidenceScore:   int(math.Round(85 + e.rng.Float64()*13)),
			SalaryRange:       catalog.SalaryRange(exp, ind),
			RequiredSkills:    e.sampleSkills(skills),
			EducationPathways: education.Recommend(job, ind, exp),
			MonthlyPoints:     points,
		})
	}

	sort.SliceStable(forecasts, func(i, j int) bool {
		return forecasts[i].TotalGrowthPct > forecasts[j].TotalGrowthPct
	})

	return forecasts, nil
}

// rollCurrentDemand draws the headline demand figure for a forecast.
//
// This is a second, independent draw from the industry's demand range. It is
// NOT forced to equal the first monthly point, so the displayed current
// demand and the first point of the trend chart can disagree. Unifying the
// two values would change the published output shape, so keep them separate.
func (e *Engine) rollCurrentDemand(demand catalog.DemandRange) int {
	return int(math.Round(float64(demand.Min) + e.rng.Float64()*float64(demand.Max-demand.Min)))
}

// sampleSkills draws 3-6 skills without replacement, shuffled, capped at the
// size of the industry's skill list.
func (e *Engine) sampleSkills(skills []string) []string {
	count := 3 + e.rng.Intn(4)
	if count > len(skills) {
		count = len(skills)
	}

	picked := make([]string, 0, count)
	for _, idx := range e.rng.Perm(len(skills))[:count] {
		picked = append(picked, skills[idx])
	}
	return picked
}
