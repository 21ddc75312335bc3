package errors

import (
	"errors"
	"fmt"
)

// Common error types for the backend
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidCookie   = errors.New("invalid session cookie")

	// OAuth handshake errors
	ErrInvalidState   = errors.New("invalid state parameter")
	ErrStateNotFound  = errors.New("state not found")
	ErrExchangeFailed = errors.New("code exchange failed")
	ErrProfileFetch   = errors.New("profile fetch failed")
	ErrMissingToken   = errors.New("missing access token")
	ErrInvalidCSRF    = errors.New("invalid csrf token")

	// Submission errors
	ErrEmptySubmission = errors.New("empty submission")
	ErrIssueCreate     = errors.New("issue creation failed")

	// General errors
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}
