package catalog

var skillsByIndustry = map[Industry][]string{
	Technology: {
		"Python", "JavaScript", "React", "AWS", "Machine Learning",
		"Docker", "Kubernetes", "SQL", "Node.js", "Git",
	},
	Healthcare: {
		"Healthcare Analytics", "Medical Data Management", "HIPAA Compliance",
		"Telemedicine", "Electronic Health Records", "Clinical Research",
		"Healthcare AI",
	},
	Finance: {
		"FinTech", "Blockchain", "Financial Modeling", "Risk Management",
		"Regulatory Compliance", "Digital Banking", "Cryptocurrency",
		"Algorithmic Trading",
	},
	Education: {
		"Learning Management Systems", "Educational Technology",
		"Curriculum Development", "Online Learning", "Assessment Design",
		"Student Analytics",
	},
	Manufacturing: {
		"Industrial IoT", "Automation", "Supply Chain Management",
		"Quality Control", "Lean Manufacturing", "Process Optimization",
		"CAD/CAM",
	},
	Retail: {
		"E-commerce", "Digital Marketing", "Customer Analytics",
		"Inventory Management", "Omnichannel", "Point of Sale Systems",
		"Customer Experience",
	},
	Consulting: {
		"Business Analysis", "Strategy Development", "Process Improvement",
		"Change Management", "Project Management", "Data Analysis",
		"Client Relations",
	},
	Construction: {
		"Building Information Modeling", "Project Management",
		"Construction Technology", "Safety Management",
		"Sustainable Construction", "Cost Estimation",
	},
}

// Skills returns the candidate skill names for an industry, in catalog order.
// Returns an empty slice for an unsupported industry.
func Skills(industry Industry) []string {
	skills := skillsByIndustry[industry]
	out := make([]string, len(skills))
	copy(out, skills)
	return out
}
