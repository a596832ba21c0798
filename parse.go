package obolus

import (
	"encoding/json"
	"fmt"
)

// ParseChallenge decodes and validates a challenge document. Schema
// violations fail with ErrMalformedChallenge before any cryptographic
// work is attempted.
func ParseChallenge(data []byte) (*Challenge, error) {
	var challenge Challenge
	if err := json.Unmarshal(data, &challenge); err != nil {
		return nil, fmt.Errorf("invalid challenge JSON: %w", ErrMalformedChallenge)
	}

	if challenge.ID == "" {
		return nil, fmt.Errorf("challenge missing id: %w", ErrMalformedChallenge)
	}
	if challenge.Action == "" {
		return nil, fmt.Errorf("challenge missing action: %w", ErrMalformedChallenge)
	}
	if challenge.Nonce == "" {
		return nil, fmt.Errorf("challenge missing nonce: %w", ErrMalformedChallenge)
	}
	if challenge.Timestamp.IsZero() || challenge.ExpiresAt.IsZero() {
		return nil, fmt.Errorf("challenge missing timestamps: %w", ErrMalformedChallenge)
	}
	if !challenge.ExpiresAt.After(challenge.Timestamp) {
		return nil, fmt.Errorf("challenge expires before creation: %w", ErrMalformedChallenge)
	}

	return &challenge, nil
}

// ParseResponse decodes and validates a response document. Schema
// violations fail with ErrMalformedResponse before any cryptographic
// work is attempted.
func ParseResponse(data []byte) (*Response, error) {
	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("invalid response JSON: %w", ErrMalformedResponse)
	}

	if response.ID == "" {
		return nil, fmt.Errorf("response missing id: %w", ErrMalformedResponse)
	}
	if _, err := ParseDecision(string(response.Response)); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrMalformedResponse)
	}
	if response.Signature == "" {
		return nil, fmt.Errorf("response missing signature: %w", ErrMalformedResponse)
	}

	return &response, nil
}
