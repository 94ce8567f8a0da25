package model

// Technician is a staff member assignable as primary or collaborator on an
// order. Deleting a technician does not cascade: orders keep the dangling id
// and resolve to an empty name at read time.
type Technician struct {
	TechnicianID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"technician_id"`
	Name         string     `gorm:"type:varchar(100);not null"                     json:"name"`
	Discipline   Discipline `gorm:"type:varchar(30);not null"                      json:"discipline"`
	Shift        Shift      `gorm:"type:varchar(20);not null"                      json:"shift"`
	IsLeader     bool       `gorm:"not null;default:false"                         json:"is_leader"`
	BaseModel
}

func (Technician) TableName() string { return "technicians" }
