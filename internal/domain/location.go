package domain

// Location is a physical site belonging to a company.
type Location struct {
	BaseModel
	Name      string `gorm:"size:255;not null" json:"name,omitempty"`
	Code      string `gorm:"size:64;uniqueIndex" json:"code,omitempty"`
	CompanyID uint   `gorm:"column:company_id;index" json:"company_id,omitempty"`
	Address   string `gorm:"size:500" json:"address,omitempty"`
	IsActive  bool   `gorm:"default:true" json:"is_active"`
}

// TableName overrides the default table name.
func (Location) TableName() string { return "locations" }
