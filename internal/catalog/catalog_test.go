package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndustries_StableOrder(t *testing.T) {
	industries := Industries()

	require.Len(t, industries, 8)
	assert.Equal(t, Technology, industries[0])
	assert.Equal(t, Construction, industries[7])

	// Callers get a copy, not the package table
	industries[0] = Industry("mutated")
	assert.Equal(t, Technology, Industries()[0])
}

func TestExperienceLevels_StableOrder(t *testing.T) {
	levels := ExperienceLevels()

	require.Len(t, levels, 4)
	assert.Equal(t, []Experience{EntryLevel, MidLevel, SeniorLevel, ExecutiveLevel}, levels)
}

func TestParseIndustry(t *testing.T) {
	for _, ind := range Industries() {
		parsed, ok := ParseIndustry(string(ind))
		assert.True(t, ok, "expected %s to parse", ind)
		assert.Equal(t, ind, parsed)
	}

	_, ok := ParseIndustry("astrology")
	assert.False(t, ok)

	// Keys are case-sensitive
	_, ok = ParseIndustry("Technology")
	assert.False(t, ok)
}

func TestParseExperience(t *testing.T) {
	for _, exp := range ExperienceLevels() {
		parsed, ok := ParseExperience(string(exp))
		assert.True(t, ok, "expected %s to parse", exp)
		assert.Equal(t, exp, parsed)
	}

	_, ok := ParseExperience("intern")
	assert.False(t, ok)
}

func TestLookup_AllIndustriesComplete(t *testing.T) {
	for _, ind := range Industries() {
		profile, ok := Lookup(ind)
		require.True(t, ok, "missing profile for %s", ind)

		assert.Len(t, profile.Jobs, 8, "industry %s", ind)
		assert.Greater(t, profile.Growth.Base, 0.0, "industry %s", ind)
		assert.Greater(t, profile.Demand.Max, profile.Demand.Min, "industry %s", ind)
		assert.GreaterOrEqual(t, profile.Demand.Min, 30, "industry %s", ind)
		assert.LessOrEqual(t, profile.Demand.Max, 100, "industry %s", ind)
	}
}

func TestLookup_UnknownIndustry(t *testing.T) {
	_, ok := Lookup(Industry("astrology"))
	assert.False(t, ok)
}

func TestSkills(t *testing.T) {
	for _, ind := range Industries() {
		skills := Skills(ind)
		assert.GreaterOrEqual(t, len(skills), 6, "industry %s", ind)

		seen := make(map[string]bool)
		for _, s := range skills {
			assert.False(t, seen[s], "duplicate skill %q in %s", s, ind)
			seen[s] = true
		}
	}

	assert.Empty(t, Skills(Industry("astrology")))

	// Callers get a copy
	skills := Skills(Technology)
	skills[0] = "mutated"
	assert.Equal(t, "Python", Skills(Technology)[0])
}

func TestSalaryRange(t *testing.T) {
	assert.Equal(t, "LKR 80,000 - 150,000", SalaryRange(EntryLevel, Technology))
	assert.Equal(t, "LKR 650,000 - 1,500,000", SalaryRange(ExecutiveLevel, Finance))

	// Every (experience, industry) pair has an entry
	for _, exp := range ExperienceLevels() {
		for _, ind := range Industries() {
			salary := SalaryRange(exp, ind)
			assert.NotEqual(t, SalaryNotAvailable, salary, "%s/%s", exp, ind)
			assert.Contains(t, salary, "LKR", "%s/%s", exp, ind)
		}
	}
}

func TestSalaryRange_UnknownKeys(t *testing.T) {
	// Unknown experience degrades to the sentinel, never an error
	assert.Equal(t, SalaryNotAvailable, SalaryRange(Experience("intern"), Technology))
	assert.Equal(t, SalaryNotAvailable, SalaryRange(EntryLevel, Industry("astrology")))
}
