package models

// Scope identifies the authenticated operator and the company/sector they act in
type Scope struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	CompanyID string `json:"company_id"`
	SectorID  string `json:"sector_id"`
	Role      string `json:"role"`
}
