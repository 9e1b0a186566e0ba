package model

// CareerDomain is one entry of the static career taxonomy.
type CareerDomain struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// CareerDomains returns the taxonomy keyed by domain slug.
func CareerDomains() map[string]CareerDomain {
	return map[string]CareerDomain{
		"engineering": {
			Name:   "Engineering & Technology",
			Fields: []string{"Computer Science", "Electronics", "Mechanical", "Civil", "Chemical", "Aerospace", "Biotechnology"},
		},
		"medical": {
			Name:   "Medical & Healthcare",
			Fields: []string{"MBBS", "BDS", "Nursing", "Pharmacy", "Physiotherapy", "Veterinary", "Public Health"},
		},
		"commerce": {
			Name:   "Commerce & Finance",
			Fields: []string{"Chartered Accountancy", "Company Secretary", "Banking", "Investment Banking", "Financial Analysis", "Actuarial Science"},
		},
		"arts": {
			Name:   "Arts & Humanities",
			Fields: []string{"Psychology", "Journalism", "Literature", "History", "Political Science", "Sociology", "Fine Arts"},
		},
		"science": {
			Name:   "Pure Sciences",
			Fields: []string{"Physics", "Chemistry", "Mathematics", "Biology", "Environmental Science", "Research"},
		},
		"government": {
			Name:   "Government & Services",
			Fields: []string{"IAS", "IPS", "IFS", "Defense", "Teaching", "Banking", "Railways"},
		},
	}
}
