package dashboard

// ========================================
// DASHBOARD DTOs
// ========================================

// Stats is the landing-page counter set: headcount, today's activity
// and the running payroll cost of the current week.
type Stats struct {
	TotalEmployees      int     `json:"total_employees"`
	ProductionEmployees int     `json:"production_employees"`
	AlDiaEmployees      int     `json:"aldia_employees"`
	PresentToday        int     `json:"present_today"`
	CompletedToday      int     `json:"completed_today"`
	WeekPayroll         float64 `json:"week_payroll"`
}
