// Package catalog provides the static industry, skills, and compensation
// reference data used by the forecast engine. All tables are built once at
// package init and are never mutated.
package catalog

// Industry is a supported industry key.
type Industry string

// Supported industries.
const (
	Technology    Industry = "technology"
	Healthcare    Industry = "healthcare"
	Finance       Industry = "finance"
	Education     Industry = "education"
	Manufacturing Industry = "manufacturing"
	Retail        Industry = "retail"
	Consulting    Industry = "consulting"
	Construction  Industry = "construction"
)

// Experience is a supported experience-level key.
type Experience string

// Supported experience levels.
const (
	EntryLevel     Experience = "entry"
	MidLevel       Experience = "mid"
	SeniorLevel    Experience = "senior"
	ExecutiveLevel Experience = "executive"
)

// industryOrder fixes the presentation order of industries.
var industryOrder = []Industry{
	Technology,
	Healthcare,
	Finance,
	Education,
	Manufacturing,
	Retail,
	Consulting,
	Construction,
}

// experienceOrder fixes the presentation order of experience levels.
var experienceOrder = []Experience{
	EntryLevel,
	MidLevel,
	SeniorLevel,
	ExecutiveLevel,
}

// Industries returns the supported industry keys in stable order.
func Industries() []Industry {
	out := make([]Industry, len(industryOrder))
	copy(out, industryOrder)
	return out
}

// ExperienceLevels returns the supported experience-level keys in stable order.
func ExperienceLevels() []Experience {
	out := make([]Experience, len(experienceOrder))
	copy(out, experienceOrder)
	return out
}

// ParseIndustry reports whether key names a supported industry.
func ParseIndustry(key string) (Industry, bool) {
	ind := Industry(key)
	_, ok := industryProfiles[ind]
	return ind, ok
}

// ParseExperience reports whether key names a supported experience level.
func ParseExperience(key string) (Experience, bool) {
	exp := Experience(key)
	_, ok := salaryRanges[exp]
	return exp, ok
}
