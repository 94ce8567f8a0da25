package dto

// TechnicianSaveRequest creates or updates a roster entry.
type TechnicianSaveRequest struct {
	Name       string `json:"name"       binding:"required,min=2,max=100"`
	Discipline string `json:"discipline" binding:"required"`
	Shift      string `json:"shift"      binding:"required"`
	IsLeader   bool   `json:"is_leader"`
}

// TechnicianListRequest filters the roster listing.
type TechnicianListRequest struct {
	Discipline string `form:"discipline"`
	Shift      string `form:"shift"`
}
