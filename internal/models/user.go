package models

// User represents a marketplace account. PasswordHash never leaves the
// server; OwnerColumns is the projection handlers attach to items and
// conversations instead of the full record.
type User struct {
	Base
	DisplayName  string `json:"display_name" gorm:"not null"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
	Location     string `json:"location"`
	Bio          string `json:"bio"`
	IsAdmin      bool   `json:"-" gorm:"default:false"`

	Items []Item `json:"items,omitempty" gorm:"foreignKey:OwnerID"`
}

// OwnerColumns is the contact-safe projection of a related owner: name and
// public profile fields only, never credentials.
var OwnerColumns = []string{"id", "display_name", "location", "bio", "created_at"}
