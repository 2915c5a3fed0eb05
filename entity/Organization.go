package entity

import (
	"gorm.io/gorm"
)

// Organization is a school tenant. EmailDomain lets admin approvals
// resolve the organization from the applicant's email address.
type Organization struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	EmailDomain string `gorm:"index" json:"emailDomain"`
}
