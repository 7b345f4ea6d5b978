package domain

// Company is a vendor or customer organization.
type Company struct {
	BaseModel
	Name     string `gorm:"size:255;not null" json:"name,omitempty"`
	TaxID    string `gorm:"column:tax_id;size:64;uniqueIndex" json:"tax_id,omitempty"`
	Email    string `gorm:"size:255" json:"email,omitempty"`
	Phone    string `gorm:"size:64" json:"phone,omitempty"`
	Address  string `gorm:"size:500" json:"address,omitempty"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

// TableName overrides the default table name.
func (Company) TableName() string { return "companies" }
