package obolus

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChallengeRoundTrip(t *testing.T) {
	challenge, err := NewChallenge("login_request", time.Minute)
	require.NoError(t, err)

	payload, err := json.Marshal(challenge)
	require.NoError(t, err)

	parsed, err := ParseChallenge(payload)
	require.NoError(t, err)
	assert.Equal(t, challenge.ID, parsed.ID)
	assert.Equal(t, challenge.Action, parsed.Action)
	assert.Equal(t, challenge.Nonce, parsed.Nonce)
	assert.True(t, challenge.ExpiresAt.Equal(parsed.ExpiresAt))
}

func TestParseChallengeMalformed(t *testing.T) {
	cases := map[string]string{
		"invalid JSON":   `{not json`,
		"missing id":     `{"action":"a","timestamp":"2026-01-01T00:00:00Z","nonce":"bm9uY2U=","expires_at":"2026-01-01T00:01:00Z"}`,
		"missing action": `{"id":"c1","timestamp":"2026-01-01T00:00:00Z","nonce":"bm9uY2U=","expires_at":"2026-01-01T00:01:00Z"}`,
		"missing nonce":  `{"id":"c1","action":"a","timestamp":"2026-01-01T00:00:00Z","expires_at":"2026-01-01T00:01:00Z"}`,
		"no timestamps":  `{"id":"c1","action":"a","nonce":"bm9uY2U="}`,
		"expiry before creation": `{"id":"c1","action":"a","timestamp":"2026-01-01T00:01:00Z",` +
			`"nonce":"bm9uY2U=","expires_at":"2026-01-01T00:00:00Z"}`,
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseChallenge([]byte(payload))
			assert.ErrorIs(t, err, ErrMalformedChallenge)
		})
	}
}

func TestParseResponseRoundTrip(t *testing.T) {
	signing, _, err := GenerateKeyPair()
	require.NoError(t, err)

	challenge, err := NewChallenge("login_request", time.Minute)
	require.NoError(t, err)

	response, err := Sign(challenge, DecisionApproved, signing)
	require.NoError(t, err)

	payload, err := json.Marshal(response)
	require.NoError(t, err)

	parsed, err := ParseResponse(payload)
	require.NoError(t, err)
	assert.Equal(t, response.ID, parsed.ID)
	assert.Equal(t, response.Response, parsed.Response)
	assert.Equal(t, response.Signature, parsed.Signature)
}

func TestParseResponseMalformed(t *testing.T) {
	cases := map[string]string{
		"invalid JSON":      `{not json`,
		"missing id":        `{"response":"approved","timestamp":"2026-01-01T00:00:00Z","signature":"c2ln"}`,
		"invalid decision":  `{"id":"c1","response":"maybe","timestamp":"2026-01-01T00:00:00Z","signature":"c2ln"}`,
		"missing signature": `{"id":"c1","response":"approved","timestamp":"2026-01-01T00:00:00Z"}`,
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseResponse([]byte(payload))
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestParseDecision(t *testing.T) {
	approved, err := ParseDecision("approved")
	require.NoError(t, err)
	assert.Equal(t, DecisionApproved, approved)

	rejected, err := ParseDecision("rejected")
	require.NoError(t, err)
	assert.Equal(t, DecisionRejected, rejected)

	_, err = ParseDecision("APPROVED")
	assert.ErrorIs(t, err, ErrInvalidDecision)

	_, err = ParseDecision("")
	assert.ErrorIs(t, err, ErrInvalidDecision)
}
