// Package apperrors defines the expected-failure vocabulary of the API.
// Handlers match these sentinels to pick a status code; anything else is
// an internal fault and surfaces as an opaque 500.
package apperrors

import "errors"

var (
	// ErrUnauthorized covers bad credentials and missing/invalid/expired
	// tokens alike; callers never learn which.
	ErrUnauthorized = errors.New("Unauthorized")

	// ErrAlreadyExists is returned when registering a duplicate email.
	ErrAlreadyExists = errors.New("Already exist")

	ErrMissingEmail    = errors.New("Missing email")
	ErrMissingPassword = errors.New("Missing password")

	ErrMissingName    = errors.New("Missing name")
	ErrMissingType    = errors.New("Missing type")
	ErrMissingData    = errors.New("Missing data")
	ErrParentNotFound = errors.New("Parent not found")

	// ErrTooManyRequests is returned when the login rate limit trips.
	ErrTooManyRequests = errors.New("Too many requests")
)

// IsValidation reports whether err is expected client-fault control flow
// (HTTP 400) rather than a server fault.
func IsValidation(err error) bool {
	for _, e := range []error{
		ErrAlreadyExists,
		ErrMissingEmail,
		ErrMissingPassword,
		ErrMissingName,
		ErrMissingType,
		ErrMissingData,
		ErrParentNotFound,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
