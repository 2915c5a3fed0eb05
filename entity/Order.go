package entity

import (
	"time"

	"gorm.io/gorm"
)

// Order is a read model for deliverer statistics. Rows are written by the
// ordering subsystem, never by this service.
type Order struct {
	gorm.Model
	DelivererID *uint      `gorm:"index" json:"delivererId,omitempty"`
	CustomerID  uint       `json:"customerId"`
	VendorID    uint       `json:"vendorId"`
	Status      string     `gorm:"not null" json:"status"` // pending / delivering / delivered / cancelled
	Total       float64    `json:"total"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
}
