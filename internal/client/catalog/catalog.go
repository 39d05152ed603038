// Package catalog holds the fixed option trees rendered by the skills and
// career-pathways steps. The data is reference-only: forms copy it into
// mutable selection state, screens render it in the declared order.
package catalog

// Group is one named list of selectable options. Order is significant:
// serialization walks options in the order declared here.
type Group struct {
	Name    string
	Options []string
}

// SkillGroups are the three checkbox categories of the skills step.
// Each category additionally carries an "Others" free-text field, which is
// handled by the form state, not listed here.
var SkillGroups = []Group{
	{
		Name: "employability",
		Options: []string{
			"Communication",
			"Teamwork",
			"Reliability",
			"Problem-solving",
			"Organize",
			"Initiative",
			"Self-Management",
			"Leadership",
			"Self-Learning",
			"Technological Knowledge",
		},
	},
	{
		Name: "soft",
		Options: []string{
			"Dependability",
			"Empathy",
			"Patience",
			"Negotiation",
			"Integrity",
			"Time management",
			"Resourcefulness",
			"Stress management",
			"Conflict management",
			"Creativity",
		},
	},
	{
		Name: "technical",
		Options: []string{
			"SEO",
			"Data Analysis",
			"Programming",
			"Digital Design",
			"Technical Writing",
			"Social Media",
			"Video Creation",
			"Operating Systems",
			"Project Management",
			"Computer Literacy",
		},
	},
}

// CareerPathways is the national career-cluster tree shown on the
// career-pathways step.
var CareerPathways = []Group{
	{
		Name: "Agriculture, Food, and Natural Resources",
		Options: []string{
			"Agribusiness Systems",
			"Animal Systems",
			"Environmental Service Systems",
			"Food Products and Processing Systems",
			"Natural Resources Systems",
			"Plant Systems",
			"Power, Structural and Technical Systems",
		},
	},
	{
		Name: "Architecture and Construction",
		Options: []string{
			"Construction",
			"Design/Pre-Construction",
			"Maintenance/Operations",
		},
	},
	{
		Name: "Arts, A/V Technology, and Communications",
		Options: []string{
			"Audio and Video Technology and Film",
			"Journalism and Broadcasting",
			"Performing Arts",
			"Printing Technology",
			"Telecommunications",
			"Visual Arts",
		},
	},
	{
		Name: "Business Management and Administration",
		Options: []string{
			"General Management",
			"Administrative Support",
			"Human Resources Management",
			"Business Information Management",
			"Operations Management",
		},
	},
	{
		Name: "Education and Training",
		Options: []string{
			"Administration and Administrative Support",
			"Professional Support Services",
			"Teaching/Training",
		},
	},
	{
		Name: "Finance",
		Options: []string{
			"Banking Services",
			"Business Finance",
			"Insurance",
			"Securities and Investments",
		},
	},
	{
		Name: "Government and Public Administration",
		Options: []string{
			"Foreign Service",
			"Governance",
			"National Security",
			"Planning",
			"Public Management and Administration",
			"Regulation",
			"Revenue and Taxation",
		},
	},
	{
		Name: "Health Science",
		Options: []string{
			"Biotechnology Research and Development",
			"Diagnostic Services",
			"Health Informatics",
			"Support Services",
			"Therapeutic Services",
		},
	},
	{
		Name: "Hospitality and Tourism",
		Options: []string{
			"Lodging",
			"Recreation, Amusements and Attractions",
			"Restaurants and Food and Beverage Services",
			"Travel and Tourism",
		},
	},
	{
		Name: "Human Services",
		Options: []string{
			"Consumer Services",
			"Counseling and Mental Health Services",
			"Early Childhood Development and Services",
			"Family and Community Services",
			"Personal Care Services",
		},
	},
	{
		Name: "Information Technology",
		Options: []string{
			"Information Support and Services",
			"Network Systems",
			"Programming and Software Development",
			"Web and Digital Communications",
		},
	},
	{
		Name: "Law, Public Safety, Corrections, and Security",
		Options: []string{
			"Corrections Services",
			"Emergency and Fire Management Services",
			"Law Enforcement Services",
			"Legal Services",
			"Security and Protective Services",
		},
	},
	{
		Name: "Manufacturing",
		Options: []string{
			"Health, Safety and Environmental Assurance",
			"Logistics and Inventory Control",
			"Maintenance, Installation and Repair",
			"Manufacturing Production Process Development",
			"Production",
			"Quality Assurance",
		},
	},
	{
		Name: "Marketing",
		Options: []string{
			"Marketing Communications",
			"Marketing Management",
			"Market Research",
			"Merchandising",
			"Professional Sales",
		},
	},
	{
		Name: "Science, Technology, Engineering, and Mathematics",
		Options: []string{
			"Engineering and Technology",
			"Science and Math",
		},
	},
	{
		Name: "Transportation, Distribution, and Logistics",
		Options: []string{
			"Facility and Mobile Equipment Maintenance",
			"Health, Safety and Environmental Management",
			"Logistics Planning and Management Services",
			"Sales and Service",
			"Transportation Operations",
			"Transportation Systems/Infrastructure",
			"Warehousing and Distribution Center Operations",
		},
	},
}
