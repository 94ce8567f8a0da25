package dto

// AssetSaveRequest creates or updates an asset record.
type AssetSaveRequest struct {
	Tag         string `json:"tag"         binding:"required,max=100"`
	Description string `json:"description" binding:"required"`
	Area        string `json:"area"        binding:"max=100"`
	Criticality string `json:"criticality" binding:"required,oneof=A B C"`
	Status      string `json:"status"      binding:"required"`
}

// AssetListRequest filters the asset listing.
type AssetListRequest struct {
	Area        string `form:"area"`
	Criticality string `form:"criticality" binding:"omitempty,oneof=A B C"`
	Status      string `form:"status"`
}
