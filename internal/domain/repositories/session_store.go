package repositories

import (
	"context"
	"time"
)

// SessionStore maps opaque bearer tokens to user ids for a bounded
// lifetime. Expiry is enforced by the store itself: an expired token is
// indistinguishable from one that was never issued.
type SessionStore interface {
	// Put stores token -> userID for ttl.
	Put(ctx context.Context, token, userID string, ttl time.Duration) error
	// Get returns the user id for token, or "" when the token is absent
	// or expired. Absence is not an error.
	Get(ctx context.Context, token string) (string, error)
	// Delete removes token and reports whether a mapping existed.
	Delete(ctx context.Context, token string) (bool, error)
	// IsAlive probes the underlying connection. Health reporting only.
	IsAlive(ctx context.Context) bool
}
