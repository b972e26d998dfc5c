package ports

import "context"

// LoginThrottle guards Authenticate against credential-stuffing bursts by
// counting failed attempts per email inside a TTL window (Redis-backed in
// production).
type LoginThrottle interface {
	// Locked reports whether the email has exceeded the failure budget.
	Locked(ctx context.Context, email string) (bool, error)
	// RecordFailure adds one failed attempt for the email.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the failure counter after a successful login.
	Reset(ctx context.Context, email string) error
}
