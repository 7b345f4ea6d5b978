package domain

// Roles recognized by the access policy. Unknown roles degrade to RolePublic.
const (
	RolePublic = "public"
	RoleUser   = "user"
	RoleAdmin  = "admin"
)

// User represents an authenticated account.
type User struct {
	BaseModel
	Name         string `gorm:"size:100;not null" json:"name,omitempty"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email,omitempty"`
	PasswordHash string `gorm:"size:255" json:"-"`
	Role         string `gorm:"size:32;default:user" json:"role,omitempty"`
}

// TableName overrides the default table name.
func (User) TableName() string { return "users" }
