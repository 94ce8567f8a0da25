package dto

// ShutdownSaveRequest creates or updates a machine-down maintenance window.
type ShutdownSaveRequest struct {
	Machine          string   `json:"machine"    binding:"required,max=100"`
	Date             string   `json:"date"       binding:"required,datetime=2006-01-02"`
	StartTime        string   `json:"start_time" binding:"required,datetime=15:04"`
	Duration         float64  `json:"duration"   binding:"required,gt=0"`
	Service          string   `json:"service"`
	Impact           string   `json:"impact"`
	Status           string   `json:"status"     binding:"required"`
	RealizedDuration *float64 `json:"realized_duration" binding:"omitempty,gte=0"`
}
