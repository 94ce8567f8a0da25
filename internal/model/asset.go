package model

// Asset is an industrial asset tracked by tag.
type Asset struct {
	AssetID     string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"asset_id"`
	Tag         string      `gorm:"type:varchar(100);not null"                     json:"tag"`
	Description string      `gorm:"type:text;not null;default:''"                  json:"description"`
	Area        string      `gorm:"type:varchar(100);not null;default:''"          json:"area"`
	Status      AssetStatus `gorm:"type:varchar(20);not null"                      json:"status"`
	Criticality string      `gorm:"type:char(1);not null"                          json:"criticality"` // A | B | C
	BaseModel
}

func (Asset) TableName() string { return "assets" }
