package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewInviteToken returns a 64-char hex token for single-use invites.
func NewInviteToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
