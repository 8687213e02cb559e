// Package common defines shared constants and sentinel errors used across
// WillKeeper components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound       = errors.New("will not found")
	ErrStatusConflict = errors.New("status conflict")
	ErrStore          = errors.New("store unavailable")

	// Engine-level errors.
	ErrValidation     = errors.New("validation error")
	ErrInvalidState   = errors.New("operation not legal in current state")
	ErrUnauthorized   = errors.New("claimant is not a beneficiary")
	ErrAlreadyClaimed = errors.New("already claimed")
	ErrScheduling     = errors.New("scheduling failed")
	ErrTransferFailed = errors.New("asset transfer failed")

	// Transport-level errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
