package service

import (
	"context"
	"fmt"
	"time"

	"github.com/obolus/obolus"
	"github.com/obolus/obolus/ports"
)

// DefaultValidity is the challenge validity window used when the caller
// does not specify one.
const DefaultValidity = 60 * time.Second

// consumedGrace keeps consumed markers around past the challenge expiry
// to absorb clock skew between instances.
const consumedGrace = time.Hour

// ChallengeService issues challenges, tracks their lifecycle through a
// ChallengeStore, and verifies responses with one-time-use semantics.
// The protocol core stays stateless; this service is the collaborator
// that owns challenge state.
type ChallengeService struct {
	store    ports.ChallengeStore
	eventPub ports.EventPublisher
	key      obolus.KeyMaterial

	validity time.Duration
}

// NewChallengeService creates a new challenge service verifying
// responses under the given verification key. eventPub may be nil, in
// which case no audit events are published.
func NewChallengeService(store ports.ChallengeStore, eventPub ports.EventPublisher, key obolus.KeyMaterial) (*ChallengeService, error) {
	if key.Role() != obolus.RoleVerification {
		return nil, fmt.Errorf("service requires a verification key: %w", obolus.ErrKeyLoad)
	}
	return &ChallengeService{
		store:    store,
		eventPub: eventPub,
		key:      key,
		validity: DefaultValidity,
	}, nil
}

// Issue creates a challenge for the given action, records it in the
// store, and publishes an audit event. A non-positive validity falls
// back to the service default.
func (s *ChallengeService) Issue(ctx context.Context, action string, validity time.Duration) (*obolus.Challenge, error) {
	if validity <= 0 {
		validity = s.validity
	}

	challenge, err := obolus.NewChallenge(action, validity)
	if err != nil {
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}

	if err := s.store.Save(ctx, challenge); err != nil {
		return nil, fmt.Errorf("failed to save challenge: %w", err)
	}

	if s.eventPub != nil {
		if err := s.eventPub.PublishChallengeIssued(ctx, challenge); err != nil {
			// Audit publishing is best-effort; the challenge is already issued
			fmt.Printf("Warning: failed to publish challenge event: %v\n", err)
		}
	}

	return challenge, nil
}

// VerifyResponse looks up the challenge referenced by the response,
// rejects replayed ids, runs the core verifier, and on a positive
// verdict marks the id consumed for the remainder of its lifetime.
func (s *ChallengeService) VerifyResponse(ctx context.Context, response *obolus.Response) (bool, obolus.Status, error) {
	consumed, err := s.store.IsConsumed(ctx, response.ID)
	if err != nil {
		return false, "", fmt.Errorf("failed to check consumed marker: %w", err)
	}
	if consumed {
		return false, "", obolus.ErrChallengeConsumed
	}

	challenge, err := s.store.Get(ctx, response.ID)
	if err != nil {
		return false, "", err
	}

	verified, status, err := obolus.Verify(challenge, response, s.key)
	if err != nil {
		return false, "", err
	}

	if verified {
		ttl := challenge.Remaining() + consumedGrace
		if err := s.store.MarkConsumed(ctx, challenge.ID, status, ttl); err != nil {
			// Refuse the verdict rather than risk accepting a replay
			return false, "", fmt.Errorf("failed to mark challenge consumed: %w", err)
		}
	}

	if s.eventPub != nil {
		if err := s.eventPub.PublishVerdict(ctx, challenge.ID, verified, status); err != nil {
			fmt.Printf("Warning: failed to publish verdict event: %v\n", err)
		}
	}

	return verified, status, nil
}
