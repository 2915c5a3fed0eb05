// Package identity wraps the authentication backend. Callers treat it as an
// opaque service: accounts, credentials, bans and session tokens live behind
// the Service interface, never in handler code.
package identity

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("identity: account not found")
	ErrBanned   = errors.New("identity: account disabled")
	ErrBadLogin = errors.New("identity: invalid credentials")
)

// Account is the service's view of a user.
type Account struct {
	ID          string
	Email       string
	Metadata    map[string]any
	BannedUntil *time.Time
}

// TokenPair is a session issued out-of-band (magic link, accept-invite).
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Service interface {
	// CreateUser registers a passwordless account carrying metadata.
	// Returns the existing account unchanged if the email is taken.
	CreateUser(email string, metadata map[string]any) (*Account, error)

	// GetByEmail looks an account up.
	GetByEmail(email string) (*Account, error)

	// SetPassword creates the account if missing, otherwise replaces its
	// credentials.
	SetPassword(email, password string) (*Account, error)

	// VerifyPassword checks credentials and the ban window.
	VerifyPassword(email, password string) (*Account, error)

	// IssueTokens mints an access/refresh pair for the account.
	IssueTokens(email string) (TokenPair, error)

	// MagicLink builds a one-shot sign-in URL embedding a token pair.
	MagicLink(email string) (string, error)

	// Ban disables sign-in until the given time; Unban clears it.
	Ban(id string, until time.Time) error
	Unban(id string) error
}
