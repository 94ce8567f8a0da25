package model

// Account roles.
const (
	RoleAdmin   = "admin"
	RolePlanner = "planner"
)

// User is an authentication account for the planning interface.
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'planner'"    json:"role"` // admin | planner
	BaseModel
}

func (User) TableName() string { return "users" }
