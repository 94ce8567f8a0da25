package model

import "time"

// Shutdown is a planned machine-down maintenance window, tracked separately
// from individual orders.
type Shutdown struct {
	ShutdownID       string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"shutdown_id"`
	Machine          string         `gorm:"type:varchar(100);not null"                     json:"machine"`
	Date             time.Time      `gorm:"type:date;not null"                             json:"date"`
	StartTime        string         `gorm:"type:varchar(5);not null"                       json:"start_time"` // "HH:MM"
	Duration         float64        `gorm:"not null"                                       json:"duration"`   // planned hours
	Service          string         `gorm:"type:text;not null;default:''"                  json:"service"`
	Impact           string         `gorm:"type:text;not null;default:''"                  json:"impact"`
	Status           ShutdownStatus `gorm:"type:varchar(20);not null"                      json:"status"`
	RealizedDuration *float64       `json:"realized_duration,omitempty"` // actual hours, distinct from planned
	BaseModel
}

func (Shutdown) TableName() string { return "shutdowns" }
