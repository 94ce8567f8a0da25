package model

import "time"

// Order is a maintenance work order, the unit of schedulable work.
type Order struct {
	OrderID             string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"order_id"`
	OSNumber            string      `gorm:"column:os_number;type:varchar(50);not null"     json:"os_number"`
	Type                OrderType   `gorm:"type:varchar(20);not null"                      json:"type"`
	Area                string      `gorm:"type:varchar(100);not null;default:''"          json:"area"`
	Tag                 string      `gorm:"type:varchar(100);not null;default:''"          json:"tag"`
	Description         string      `gorm:"type:text;not null;default:''"                  json:"description"`
	Discipline          Discipline  `gorm:"type:varchar(30);not null"                      json:"discipline"`
	Priority            Priority    `gorm:"type:varchar(20);not null"                      json:"priority"`
	EstimatedHours      float64     `gorm:"not null"                                       json:"estimated_hours"`
	OperationalShutdown bool        `gorm:"not null;default:false"                         json:"operational_shutdown"`
	Status              OrderStatus `gorm:"type:varchar(20);not null"                      json:"status"`
	TechnicianID        *string     `gorm:"type:uuid"                                      json:"technician_id,omitempty"`
	CollaboratorID      *string     `gorm:"type:uuid"                                      json:"collaborator_id,omitempty"`
	ScheduledDay        string      `gorm:"type:varchar(10);not null;default:'Segunda'"    json:"scheduled_day"`
	ScheduledDate       *time.Time  `gorm:"type:date"                                      json:"scheduled_date,omitempty"`
	ReprogrammingReason *string     `gorm:"type:text"                                      json:"reprogramming_reason,omitempty"`
	Attachments         StringArray `gorm:"type:text[]"                                    json:"attachments,omitempty"`
	BaseModel

	Logs []OrderLog `gorm:"foreignKey:OrderID" json:"logs,omitempty"`
}

func (Order) TableName() string { return "orders" }

// AssignedTo reports whether the technician is the primary assignee or the
// collaborator on this order. An order where both fields carry the same id
// still matches once: load aggregation is a membership test, not a per-field
// sum.
func (o *Order) AssignedTo(techID string) bool {
	if o.TechnicianID != nil && *o.TechnicianID == techID {
		return true
	}
	if o.CollaboratorID != nil && *o.CollaboratorID == techID {
		return true
	}
	return false
}

// OrderLog is one append-only change-log entry. Entries are created exactly
// once per watched field transition plus one creation entry, and are never
// updated or deleted individually.
type OrderLog struct {
	LogID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"log_id"`
	OrderID   string    `gorm:"type:uuid;not null"                             json:"order_id"`
	Timestamp time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"timestamp"`
	UserName  string    `gorm:"type:varchar(100);not null"                     json:"user_name"`
	Action    string    `gorm:"type:varchar(100);not null"                     json:"action"`
	Field     *string   `gorm:"type:varchar(50)"                               json:"field,omitempty"`
	OldValue  *string   `gorm:"type:text"                                      json:"old_value,omitempty"`
	NewValue  *string   `gorm:"type:text"                                      json:"new_value,omitempty"`
}

func (OrderLog) TableName() string { return "order_logs" }

// Change-log action labels. The Reprogrammed transition gets its own label;
// every other status change shares the generic one.
const (
	LogActionCreated        = "Criação da OS"
	LogActionImported       = "Importação via Planilha"
	LogActionStatusChange   = "Alteração de status"
	LogActionReprogrammed   = "Reprogramação de OS"
	LogActionPriorityChange = "Alteração de prioridade"

	LogFieldStatus   = "status"
	LogFieldPriority = "prioridade"
)
