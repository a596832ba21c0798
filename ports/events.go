package ports

import (
	"context"

	"github.com/obolus/obolus"
)

// EventPublisher publishes audit events for the challenge lifecycle
type EventPublisher interface {
	PublishChallengeIssued(ctx context.Context, challenge *obolus.Challenge) error
	PublishVerdict(ctx context.Context, challengeID string, verified bool, status obolus.Status) error
}
