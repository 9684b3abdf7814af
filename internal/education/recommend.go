// Package education maps job titles to recommended education pathways.
package education

import (
	"strings"

	"github.com/HashiniGamage/CareerNexusModel/internal/catalog"
	"github.com/HashiniGamage/CareerNexusModel/internal/types"
)

// curatedPathways covers a handful of well-known titles with hand-picked
// entries. Every other title falls through to the generic industry pathways,
// which is the common case.
var curatedPathways = map[string][]types.EducationPathway{
	"Senior Software Engineer": {
		{
			Title:        "BSc Computer Science",
			Institution:  "University of Colombo",
			Duration:     "4 years",
			Cost:         "LKR 800,000 - 1,200,000",
			AlignmentPct: 95,
			Kind:         types.PathwayDegree,
		},
		{
			Title:        "Advanced Software Engineering",
			Institution:  "SLIIT",
			Duration:     "6-12 months",
			Cost:         "LKR 150,000 - 300,000",
			AlignmentPct: 88,
			Kind:         types.PathwayCertification,
		},
	},
	"Data Scientist": {
		{
			Title:        "MSc Data Science",
			Institution:  "University of Moratuwa",
			Duration:     "2 years",
			Cost:         "LKR 600,000 - 1,000,000",
			AlignmentPct: 96,
			Kind:         types.PathwayDegree,
		},
		{
			Title:        "Data Science Bootcamp",
			Institution:  "NSBM Green University",
			Duration:     "6 months",
			Cost:         "LKR 200,000 - 350,000",
			AlignmentPct: 90,
			Kind:         types.PathwayBootcamp,
		},
	},
	"DevOps Engineer": {
		{
			Title:        "AWS Solutions Architect",
			Institution:  "Amazon Web Services",
			Duration:     "3-6 months",
			Cost:         "LKR 100,000 - 200,000",
			AlignmentPct: 92,
			Kind:         types.PathwayCertification,
		},
	},
}

// Recommend returns the education pathways for a job title. Titles outside
// the curated table get two generic entries parameterized by the industry.
// The experience level is part of the contract for future differentiation
// but does not currently alter the generic entries.
func Recommend(jobTitle string, industry catalog.Industry, _ catalog.Experience) []types.EducationPathway {
	if pathways, ok := curatedPathways[jobTitle]; ok {
		out := make([]types.EducationPathway, len(pathways))
		copy(out, pathways)
		return out
	}
	return genericPathways(industry)
}

// genericPathways synthesizes the two-entry fallback for an industry.
func genericPathways(industry catalog.Industry) []types.EducationPathway {
	name := titleCase(string(industry))
	return []types.EducationPathway{
		{
			Title:        name + " Professional Certificate",
			Institution:  "University of Colombo",
			Duration:     "6-12 months",
			Cost:         "LKR 150,000 - 300,000",
			AlignmentPct: 85,
			Kind:         types.PathwayCertification,
		},
		{
			Title:        "Advanced " + name + " Specialization",
			Institution:  "SLIIT",
			Duration:     "1-2 years",
			Cost:         "LKR 400,000 - 800,000",
			AlignmentPct: 80,
			Kind:         types.PathwayDegree,
		},
	}
}

// titleCase upper-cases the first letter only, leaving the rest untouched.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
