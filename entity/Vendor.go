package entity

import (
	"gorm.io/gorm"
)

// Vendor is created when an approved vendor completes account setup,
// never at approval time.
type Vendor struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `json:"-"`

	BusinessName    string `gorm:"not null" json:"businessName"`
	BusinessAddress string `json:"businessAddress"`
	MenuSummary     string `json:"menuSummary"`
	IsActive        bool   `gorm:"not null;default:true" json:"isActive"`
}
