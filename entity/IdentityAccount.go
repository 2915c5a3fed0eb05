package entity

import (
	"time"
)

// IdentityAccount is the credential record managed through pkg/identity.
// Handlers never touch it directly; profile status and ban state are
// mirrored onto it and may drift if a mirror call fails.
type IdentityAccount struct {
	ID           string `gorm:"primaryKey"` // uuid
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string
	BannedUntil  *time.Time
	Metadata     string `gorm:"type:text"` // JSON: role, organization, business fields
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
