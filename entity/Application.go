package entity

import (
	"time"

	"gorm.io/gorm"
)

// Application is a join request from a prospective admin, vendor or
// deliverer. No profile or vendor record exists until it is approved.
type Application struct {
	gorm.Model
	FullName     string `gorm:"not null" json:"fullName"`
	Email        string `gorm:"not null;index" json:"email"`
	Role         string `gorm:"not null" json:"role"` // admin / vendor / deliverer
	Organization string `json:"organization"`

	// vendor fields
	BusinessName    string `json:"businessName,omitempty"`
	BusinessAddress string `json:"businessAddress,omitempty"`
	MenuSummary     string `json:"menuSummary,omitempty"`

	// deliverer fields
	VehicleType  string `json:"vehicleType,omitempty"`
	Availability string `json:"availability,omitempty"`

	Notes string `json:"notes,omitempty"`

	// pending / approved / declined, one-way out of pending
	Status string `gorm:"not null;default:pending" json:"status"`

	ReviewedAt *time.Time `json:"reviewedAt,omitempty"`
	ReviewedBy *uint      `json:"reviewedBy,omitempty"`
	UserID     *uint      `json:"userId,omitempty"` // profile created at approval

	Documents []ApplicationDocument `gorm:"foreignKey:ApplicationID" json:"documents"`
}
