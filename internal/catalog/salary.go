package catalog

// SalaryNotAvailable is the sentinel returned when no compensation entry
// exists for an (experience, industry) pair. Callers must not treat a missing
// entry as an error.
const SalaryNotAvailable = "Not available"

var salaryRanges = map[Experience]map[Industry]string{
	EntryLevel: {
		Technology:    "LKR 80,000 - 150,000",
		Healthcare:    "LKR 70,000 - 120,000",
		Finance:       "LKR 85,000 - 160,000",
		Education:     "LKR 60,000 - 100,000",
		Manufacturing: "LKR 65,000 - 110,000",
		Retail:        "LKR 55,000 - 95,000",
		Consulting:    "LKR 75,000 - 140,000",
		Construction:  "LKR 60,000 - 105,000",
	},
	MidLevel: {
		Technology:    "LKR 150,000 - 300,000",
		Healthcare:    "LKR 120,000 - 220,000",
		Finance:       "LKR 160,000 - 320,000",
		Education:     "LKR 100,000 - 180,000",
		Manufacturing: "LKR 110,000 - 200,000",
		Retail:        "LKR 95,000 - 170,000",
		Consulting:    "LKR 140,000 - 280,000",
		Construction:  "LKR 105,000 - 190,000",
	},
	SeniorLevel: {
		Technology:    "LKR 300,000 - 600,000",
		Healthcare:    "LKR 220,000 - 400,000",
		Finance:       "LKR 320,000 - 650,000",
		Education:     "LKR 180,000 - 320,000",
		Manufacturing: "LKR 200,000 - 380,000",
		Retail:        "LKR 170,000 - 310,000",
		Consulting:    "LKR 280,000 - 550,000",
		Construction:  "LKR 190,000 - 350,000",
	},
	ExecutiveLevel: {
		Technology:    "LKR 600,000 - 1,200,000",
		Healthcare:    "LKR 400,000 - 800,000",
		Finance:       "LKR 650,000 - 1,500,000",
		Education:     "LKR 320,000 - 600,000",
		Manufacturing: "LKR 380,000 - 750,000",
		Retail:        "LKR 310,000 - 620,000",
		Consulting:    "LKR 550,000 - 1,100,000",
		Construction:  "LKR 350,000 - 700,000",
	},
}

// SalaryRange returns the human-readable compensation range for an
// (experience, industry) pair, or SalaryNotAvailable when either key has no
// entry. An unknown experience level is not an error.
func SalaryRange(experience Experience, industry Industry) string {
	byIndustry, ok := salaryRanges[experience]
	if !ok {
		return SalaryNotAvailable
	}
	salary, ok := byIndustry[industry]
	if !ok {
		return SalaryNotAvailable
	}
	return salary
}
