// internal/service/seed.go
package service

import "github.com/nimbushr/catalog/internal/model"

type seedItem struct {
	Name        string
	Description string
	Color       string
}

// defaultSeedItems holds the reference data installed the first time a scope
// is used. Types absent from the map seed as empty catalogs that admins fill
// in themselves.
var defaultSeedItems = map[model.ConfigType][]seedItem{
	model.ConfigDepartments: {
		{"Engineering", "Software development and technical operations", "#3B82F6"},
		{"Human Resources", "People operations, hiring and employee relations", "#10B981"},
		{"Sales", "Revenue generation and client acquisition", "#F59E0B"},
		{"Marketing", "Brand, campaigns and market outreach", "#EC4899"},
		{"Finance", "Accounting, budgeting and payroll", "#6366F1"},
		{"Operations", "Business processes and logistics", "#14B8A6"},
		{"Support", "Customer service and issue resolution", "#8B5CF6"},
		{"Administration", "Office management and internal services", "#64748B"},
	},
	model.ConfigRoles: {
		{"Admin", "Full system administration access", "#EF4444"},
		{"HR", "Human resources staff", "#10B981"},
		{"Manager", "Department or team manager", "#F59E0B"},
		{"Team Lead", "Leads a team within a department", "#3B82F6"},
		{"Senior Developer", "Senior software engineer", "#6366F1"},
		{"Developer", "Software engineer", "#0EA5E9"},
		{"Junior Developer", "Early-career software engineer", "#38BDF8"},
		{"Designer", "Product and visual design", "#EC4899"},
		{"Sales Executive", "Sales and account management", "#F97316"},
		{"Marketing Specialist", "Marketing campaigns and content", "#D946EF"},
		{"Support Specialist", "Customer support agent", "#8B5CF6"},
		{"Analyst", "Data and business analysis", "#14B8A6"},
		{"Intern", "Temporary trainee position", "#94A3B8"},
	},
}
