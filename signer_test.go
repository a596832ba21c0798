package obolus

import (
	"crypto/ed25519"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSign(t *testing.T) {
	signing, _, err := GenerateKeyPair()
	require.NoError(t, err)

	challenge, err := NewChallenge("login_request", time.Minute)
	require.NoError(t, err)

	response, err := Sign(challenge, DecisionApproved, signing)
	require.NoError(t, err)

	assert.Equal(t, challenge.ID, response.ID)
	assert.Equal(t, DecisionApproved, response.Response)
	assert.False(t, response.Timestamp.IsZero())

	sig, err := base64.StdEncoding.DecodeString(response.Signature)
	require.NoError(t, err)
	assert.Len(t, sig, ed25519.SignatureSize)
}

func TestSignDoesNotMutateChallenge(t *testing.T) {
	signing, _, err := GenerateKeyPair()
	require.NoError(t, err)

	challenge, err := NewChallenge("login_request", time.Minute)
	require.NoError(t, err)
	before := *challenge

	_, err = Sign(challenge, DecisionRejected, signing)
	require.NoError(t, err)
	assert.Equal(t, before, *challenge)

	// Signing the same challenge again is valid at this layer
	_, err = Sign(challenge, DecisionApproved, signing)
	assert.NoError(t, err)
}

func TestSignWithVerificationKey(t *testing.T) {
	_, verification, err := GenerateKeyPair()
	require.NoError(t, err)

	challenge, err := NewChallenge("login_request", time.Minute)
	require.NoError(t, err)

	_, err = Sign(challenge, DecisionApproved, verification)
	assert.ErrorIs(t, err, ErrKeyLoad)
}

func TestSignInvalidDecision(t *testing.T) {
	signing, _, err := GenerateKeyPair()
	require.NoError(t, err)

	challenge, err := NewChallenge("login_request", time.Minute)
	require.NoError(t, err)

	_, err = Sign(challenge, Decision("maybe"), signing)
	assert.ErrorIs(t, err, ErrInvalidDecision)
}
