package catalog

// GrowthFactors are the fractional multipliers that drive the monthly demand
// recurrence for an industry.
type GrowthFactors struct {
	Base     float64 `json:"base"`
	Seasonal float64 `json:"seasonal"`
	Trend    float64 `json:"trend"`
}

// DemandRange bounds the demand index an industry's jobs start from.
type DemandRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// IndustryProfile holds the per-industry reference data: the job titles in
// catalog order, the growth factors, and the starting demand range.
type IndustryProfile struct {
	Jobs   []string      `json:"jobs"`
	Growth GrowthFactors `json:"growth_factors"`
	Demand DemandRange   `json:"demand_range"`
}

var industryProfiles = map[Industry]IndustryProfile{
	Technology: {
		Jobs: []string{
			"Senior Software Engineer",
			"Data Scientist",
			"DevOps Engineer",
			"Product Manager",
			"Full Stack Developer",
			"Machine Learning Engineer",
			"Cloud Architect",
			"Cybersecurity Specialist",
		},
		Growth: GrowthFactors{Base: 0.20, Seasonal: 0.05, Trend: 0.15},
		Demand: DemandRange{Min: 75, Max: 95},
	},
	Healthcare: {
		Jobs: []string{
			"Healthcare Data Analyst",
			"Telemedicine Specialist",
			"Health Informatics Specialist",
			"Digital Health Manager",
			"Medical Software Developer",
			"Healthcare AI Specialist",
			"Clinical Data Manager",
			"Health Technology Consultant",
		},
		Growth: GrowthFactors{Base: 0.18, Seasonal: 0.03, Trend: 0.12},
		Demand: DemandRange{Min: 70, Max: 88},
	},
	Finance: {
		Jobs: []string{
			"FinTech Product Manager",
			"Digital Banking Specialist",
			"Quantitative Analyst",
			"Blockchain Developer",
			"Risk Data Scientist",
			"Financial Software Engineer",
			"Regulatory Technology Specialist",
			"Investment Technology Analyst",
		},
		Growth: GrowthFactors{Base: 0.22, Seasonal: 0.07, Trend: 0.18},
		Demand: DemandRange{Min: 78, Max: 92},
	},
	Education: {
		Jobs: []string{
			"EdTech Product Manager",
			"Learning Experience Designer",
			"Educational Data Analyst",
			"Online Learning Specialist",
			"Educational Technology Consultant",
			"Digital Curriculum Developer",
			"Learning Management System Administrator",
			"Educational Software Developer",
		},
		Growth: GrowthFactors{Base: 0.16, Seasonal: 0.04, Trend: 0.10},
		Demand: DemandRange{Min: 65, Max: 82},
	},
	Manufacturing: {
		Jobs: []string{
			"Industrial IoT Engineer",
			"Manufacturing Data Scientist",
			"Automation Specialist",
			"Supply Chain Analyst",
			"Quality Assurance Engineer",
			"Manufacturing Systems Manager",
			"Process Optimization Specialist",
			"Smart Factory Consultant",
		},
		Growth: GrowthFactors{Base: 0.14, Seasonal: 0.06, Trend: 0.08},
		Demand: DemandRange{Min: 60, Max: 78},
	},
	Retail: {
		Jobs: []string{
			"E-commerce Manager",
			"Digital Marketing Specialist",
			"Customer Experience Analyst",
			"Retail Data Scientist",
			"Omnichannel Specialist",
			"Inventory Optimization Analyst",
			"Retail Technology Consultant",
			"Customer Success Manager",
		},
		Growth: GrowthFactors{Base: 0.15, Seasonal: 0.08, Trend: 0.12},
		Demand: DemandRange{Min: 68, Max: 85},
	},
	Consulting: {
		Jobs: []string{
			"Digital Transformation Consultant",
			"Management Consultant",
			"Technology Consultant",
			"Business Analyst",
			"Strategy Consultant",
			"Process Improvement Specialist",
			"Change Management Consultant",
			"Data Strategy Consultant",
		},
		Growth: GrowthFactors{Base: 0.17, Seasonal: 0.05, Trend: 0.13},
		Demand: DemandRange{Min: 72, Max: 88},
	},
	Construction: {
		Jobs: []string{
			"Construction Technology Manager",
			"BIM Specialist",
			"Smart Building Consultant",
			"Construction Data Analyst",
			"Project Management Software Specialist",
			"Sustainable Construction Consultant",
			"Construction Safety Technology Specialist",
			"Infrastructure Technology Manager",
		},
		Growth: GrowthFactors{Base: 0.12, Seasonal: 0.04, Trend: 0.09},
		Demand: DemandRange{Min: 58, Max: 75},
	},
}

// Lookup returns the profile for an industry key.
// The second return value is false when the industry is not supported.
func Lookup(industry Industry) (IndustryProfile, bool) {
	profile, ok := industryProfiles[industry]
	return profile, ok
}
