package entity

import (
	"time"

	"gorm.io/gorm"
)

// User is the platform profile: role, organization and account status.
// Credentials live on IdentityAccount, linked through IdentityID once the
// account is materialized.
type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	FullName     string `json:"fullName"`
	Role         string `gorm:"not null;default:customer" json:"role"`
	Organization string `gorm:"index" json:"organization"`

	// pending / approved / declined / active
	Status string `gorm:"not null;default:pending" json:"status"`

	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
	HeaderImageURL    string `json:"headerImageUrl,omitempty"`
	Phone             string `json:"phone,omitempty"`
	DeliveryAddress   string `json:"deliveryAddress,omitempty"`

	// single-use setup credential; both cleared together on consumption
	InviteToken        *string    `gorm:"uniqueIndex" json:"-"`
	InviteTokenExpires *time.Time `json:"-"`

	IdentityID string `gorm:"index" json:"-"`

	// preload only when needed
	VendorProfile *Vendor `gorm:"foreignKey:UserID" json:"-"`
	Orders        []Order `gorm:"foreignKey:DelivererID" json:"-"`
}
