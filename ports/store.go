package ports

import (
	"context"
	"time"

	"github.com/obolus/obolus"
)

// ChallengeStore tracks issued challenges and which ids have been
// consumed. The protocol core is stateless; one-time-use semantics
// live entirely behind this interface.
type ChallengeStore interface {
	// Save records an issued challenge until its expiry
	Save(ctx context.Context, challenge *obolus.Challenge) error

	// Get retrieves an issued challenge by id
	Get(ctx context.Context, id string) (*obolus.Challenge, error)

	// MarkConsumed records that a challenge id has been used,
	// keeping the record for the given duration
	MarkConsumed(ctx context.Context, id string, status obolus.Status, ttl time.Duration) error

	// IsConsumed reports whether a challenge id has already been used
	IsConsumed(ctx context.Context, id string) (bool, error)
}
