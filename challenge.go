package obolus

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NonceSize is the number of random bytes in a challenge nonce.
const NonceSize = 16

// Challenge is a request for signed intent over a named action. It is
// immutable once created and carries everything the signer needs to
// produce a verifiable response.
type Challenge struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	Nonce     string    `json:"nonce"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Response is a signed decision referencing a Challenge by id.
type Response struct {
	ID        string    `json:"id"`
	Response  Decision  `json:"response"`
	Timestamp time.Time `json:"timestamp"`
	Signature string    `json:"signature"`
}

// NewChallenge creates a challenge for the given action with a fresh
// random nonce and the given validity window. The action string is
// carried verbatim; callers own its content. The challenge is not
// persisted or registered anywhere.
func NewChallenge(action string, validity time.Duration) (*Challenge, error) {
	if validity <= 0 {
		return nil, ErrInvalidValidity
	}

	nonce, err := generateNonce(NonceSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	now := time.Now().UTC()
	return &Challenge{
		ID:        uuid.New().String(),
		Action:    action,
		Timestamp: now,
		Nonce:     nonce,
		ExpiresAt: now.Add(validity),
	}, nil
}

// Expired reports whether the challenge expiry has passed at the given instant.
func (c *Challenge) Expired(at time.Time) bool {
	return !at.Before(c.ExpiresAt)
}

// Remaining returns the time left until the challenge expires.
// The result is negative once the challenge has expired.
func (c *Challenge) Remaining() time.Duration {
	return time.Until(c.ExpiresAt)
}

// generateNonce generates a secure random nonce of the specified length
func generateNonce(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bytes), nil
}
