package store

import (
	"context"
	"sync"
	"time"

	"github.com/obolus/obolus"
	"github.com/obolus/obolus/ports"
)

type challengeRecord struct {
	challenge *obolus.Challenge
	expiresAt time.Time
}

type consumedRecord struct {
	status    obolus.Status
	expiresAt time.Time
}

// MemoryStore is an in-memory implementation of the ChallengeStore
// interface. Expired records are dropped lazily on read.
type MemoryStore struct {
	challenges map[string]challengeRecord
	consumed   map[string]consumedRecord
	mu         sync.RWMutex
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		challenges: make(map[string]challengeRecord),
		consumed:   make(map[string]consumedRecord),
	}
}

// Save records an issued challenge until its expiry
func (s *MemoryStore) Save(ctx context.Context, challenge *obolus.Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.challenges[challenge.ID] = challengeRecord{
		challenge: challenge,
		expiresAt: challenge.ExpiresAt,
	}
	return nil
}

// Get retrieves an issued challenge by id. Expired challenges are still
// returned so the verifier can report StatusExpired rather than not-found.
func (s *MemoryStore) Get(ctx context.Context, id string) (*obolus.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.challenges[id]
	if !ok {
		return nil, obolus.ErrChallengeNotFound
	}
	return record.challenge, nil
}

// MarkConsumed records that a challenge id has been used
func (s *MemoryStore) MarkConsumed(ctx context.Context, id string, status obolus.Status, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.consumed[id] = consumedRecord{
		status:    status,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// IsConsumed reports whether a challenge id has already been used
func (s *MemoryStore) IsConsumed(ctx context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.consumed[id]
	if !ok {
		return false, nil
	}

	// Consumed markers only need to outlive the challenge expiry
	if time.Now().After(record.expiresAt) {
		return false, nil
	}

	return true, nil
}

// Clear removes all data from the store. Useful in tests.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.challenges = make(map[string]challengeRecord)
	s.consumed = make(map[string]consumedRecord)
}

var _ ports.ChallengeStore = (*MemoryStore)(nil)
