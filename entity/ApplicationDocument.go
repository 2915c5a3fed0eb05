package entity

import (
	"gorm.io/gorm"
)

// ApplicationDocument keeps the applicant's uploaded document URLs in
// submission order.
type ApplicationDocument struct {
	gorm.Model
	ApplicationID uint   `gorm:"index;not null" json:"applicationId"`
	Position      int    `gorm:"not null" json:"position"`
	URL           string `gorm:"not null" json:"url"`
}
