package services

import "errors"

var (
	ErrNotPending    = errors.New("application is not pending")
	ErrForbidden     = errors.New("forbidden")
	ErrInvalidInvite = errors.New("invalid or expired invite token")
	ErrBadAction     = errors.New("action must be deactivate or reactivate")
)
