package forecast

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/HashiniGamage/CareerNexusModel/internal/catalog"
	"github.com/HashiniGamage/CareerNexusModel/internal/types"
)

const (
	// forecastMonths is the fixed length of every synthesized curve.
	forecastMonths = 24

	// minDemandIndex and maxDemandIndex bound the demand index regardless of
	// trajectory.
	minDemandIndex = 30
	maxDemandIndex = 100
)

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// synthesizeMonthly generates the 24-point demand curve for one job.
//
// This is a first-order recurrence: each month's demand depends only on the
// previous month's unrounded value, the static industry factors, and fresh
// noise. The term order (growth, seasonal, trend, then noise, then clamp)
// is load-bearing for the statistical shape of the curve.
func synthesizeMonthly(growth catalog.GrowthFactors, demand catalog.DemandRange, rng *rand.Rand) []types.MonthlyPoint {
	points := make([]types.MonthlyPoint, 0, forecastMonths)

	current := float64(demand.Min) + rng.Float64()*float64(demand.Max-demand.Min)

	for month := 0; month < forecastMonths; month++ {
		yearIndex := 1
		if month >= 12 {
			yearIndex = 2
		}

		monthlyGrowth := growth.Base / 12
		seasonalMultiplier := 1 + growth.Seasonal*math.Sin(2*math.Pi*float64(month)/12)
		trendMultiplier := 1 + growth.Trend*float64(month)/forecastMonths

		current = current * (1 + monthlyGrowth) * seasonalMultiplier * trendMultiplier
		current += (rng.Float64() - 0.5) * 5
		current = math.Max(minDemandIndex, math.Min(maxDemandIndex, current))

		points = append(points, types.MonthlyPoint{
			Label:       monthNames[month%12] + " Y" + strconv.Itoa(yearIndex),
			DemandIndex: int(math.Round(current)),
			YearIndex:   yearIndex,
		})
	}

	return points
}

// meanDemand averages the demand index over a slice of points.
func meanDemand(points []types.MonthlyPoint) float64 {
	sum := 0
	for _, p := range points {
		sum += p.DemandIndex
	}
	return float64(sum) / float64(len(points))
}

// growthPct computes the rounded percentage change from a baseline.
// Returns 0 when the baseline is zero; the demand floor keeps that case out
// of normal operation, but division by zero must never panic.
func growthPct(value, baseline float64) int {
	if baseline == 0 {
		return 0
	}
	return int(math.Round((value - baseline) / baseline * 100))
}
