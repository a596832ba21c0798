package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/obolus/obolus"
	"github.com/obolus/obolus/ports"
)

const (
	// TopicChallengeIssued receives an event for every issued challenge
	TopicChallengeIssued = "obolus.challenge.issued"

	// TopicVerdict receives an event for every verification outcome
	TopicVerdict = "obolus.verdict"
)

// ChallengeIssuedEvent is the audit record for an issued challenge
type ChallengeIssuedEvent struct {
	ChallengeID string    `json:"challenge_id"`
	Action      string    `json:"action"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// VerdictEvent is the audit record for a verification outcome
type VerdictEvent struct {
	ChallengeID string        `json:"challenge_id"`
	Verified    bool          `json:"verified"`
	Status      obolus.Status `json:"status"`
	Timestamp   time.Time     `json:"timestamp"`
}

// WatermillPublisher implements the EventPublisher interface using Watermill
type WatermillPublisher struct {
	publisher message.Publisher
}

// NewWatermillPublisher creates a new Watermill publisher
func NewWatermillPublisher(publisher message.Publisher) ports.EventPublisher {
	return &WatermillPublisher{publisher: publisher}
}

// PublishChallengeIssued publishes an audit event for an issued challenge
func (p *WatermillPublisher) PublishChallengeIssued(ctx context.Context, challenge *obolus.Challenge) error {
	event := ChallengeIssuedEvent{
		ChallengeID: challenge.ID,
		Action:      challenge.Action,
		ExpiresAt:   challenge.ExpiresAt,
	}
	return p.publish(TopicChallengeIssued, challenge.ID, event)
}

// PublishVerdict publishes an audit event for a verification outcome
func (p *WatermillPublisher) PublishVerdict(ctx context.Context, challengeID string, verified bool, status obolus.Status) error {
	event := VerdictEvent{
		ChallengeID: challengeID,
		Verified:    verified,
		Status:      status,
		Timestamp:   time.Now().UTC(),
	}
	return p.publish(TopicVerdict, challengeID, event)
}

func (p *WatermillPublisher) publish(topic, id string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(id, payload)
	if err := p.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}
