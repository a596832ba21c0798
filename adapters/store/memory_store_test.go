package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obolus/obolus"
)

func TestMemoryStoreSaveGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	challenge, err := obolus.NewChallenge("login", time.Minute)
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, challenge))

	got, err := s.Get(ctx, challenge.ID)
	require.NoError(t, err)
	assert.Equal(t, challenge, got)
}

func TestMemoryStoreGetUnknown(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, obolus.ErrChallengeNotFound)
}

func TestMemoryStoreConsumed(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	consumed, err := s.IsConsumed(ctx, "c1")
	require.NoError(t, err)
	assert.False(t, consumed)

	require.NoError(t, s.MarkConsumed(ctx, "c1", obolus.StatusApproved, time.Minute))

	consumed, err = s.IsConsumed(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, consumed)
}

func TestMemoryStoreConsumedTTL(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	// A marker whose TTL has already elapsed no longer counts
	require.NoError(t, s.MarkConsumed(ctx, "c1", obolus.StatusApproved, -time.Second))

	consumed, err := s.IsConsumed(ctx, "c1")
	require.NoError(t, err)
	assert.False(t, consumed)
}

func TestMemoryStoreClear(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	challenge, err := obolus.NewChallenge("login", time.Minute)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, challenge))
	require.NoError(t, s.MarkConsumed(ctx, challenge.ID, obolus.StatusApproved, time.Minute))

	s.Clear()

	_, err = s.Get(ctx, challenge.ID)
	assert.ErrorIs(t, err, obolus.ErrChallengeNotFound)

	consumed, err := s.IsConsumed(ctx, challenge.ID)
	require.NoError(t, err)
	assert.False(t, consumed)
}
