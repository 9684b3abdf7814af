// Package types provides type definitions for structured data used throughout the career forecaster.
package types

// PathwayKind classifies an education pathway.
type PathwayKind string

// Pathway kinds. The JSON values match the wire contract consumed by the
// dashboard, including the space in "Online Course".
const (
	PathwayDegree        PathwayKind = "Degree"
	PathwayCertification PathwayKind = "Certification"
	PathwayBootcamp      PathwayKind = "Bootcamp"
	PathwayOnlineCourse  PathwayKind = "Online Course"
)

// EducationPathway describes one recommended route into a role.
type EducationPathway struct {
	Title        string      `json:"title"`
	Institution  string      `json:"institution"`
	Duration     string      `json:"duration"`
	Cost         string      `json:"cost"`
	AlignmentPct int         `json:"alignment"` // 0-100
	Kind         PathwayKind `json:"type"`
}

// MonthlyPoint is one month of the synthesized demand curve.
type MonthlyPoint struct {
	Label       string `json:"month"`  // e.g. "Mar Y1"
	DemandIndex int    `json:"demand"` // clamped to [30,100]
	YearIndex   int    `json:"year"`   // 1 or 2
}

// JobForecast is the full 24-month outlook for one job title. It is created
// fresh on every predict call and never mutated afterwards.
type JobForecast struct {
	JobTitle          string             `json:"jobTitle"`
	CurrentDemand     int                `json:"currentDemand"`
	Year1GrowthPct    int                `json:"year1Growth"`
	Year2GrowthPct    int                `json:"year2Growth"`
	TotalGrowthPct    int                `json:"totalGrowth"`
	ConfidenceScore   int                `json:"confidenceScore"` // 85-98
	SalaryRange       string             `json:"salaryRange"`
	RequiredSkills    []string           `json:"skillsRequired"` // 3-6 entries, no duplicates
	EducationPathways []EducationPathway `json:"educationPathways"`
	MonthlyPoints     []MonthlyPoint     `json:"monthlyPredictions"` // exactly 24
}
