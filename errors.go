package obolus

import (
	"errors"
)

var (
	// ErrKeyLoad is returned when key material is unreadable, malformed,
	// or used in the wrong role
	ErrKeyLoad = errors.New("failed to load key material")

	// ErrMalformedChallenge is returned when challenge data violates the schema
	ErrMalformedChallenge = errors.New("malformed challenge")

	// ErrMalformedResponse is returned when response data violates the schema
	ErrMalformedResponse = errors.New("malformed response")

	// ErrInvalidDecision is returned when a decision value is not approved or rejected
	ErrInvalidDecision = errors.New("decision must be approved or rejected")

	// ErrInvalidValidity is returned when a challenge validity window is not positive
	ErrInvalidValidity = errors.New("validity window must be positive")

	// ErrChallengeNotFound is returned when no stored challenge matches a response id
	ErrChallengeNotFound = errors.New("challenge not found")

	// ErrChallengeConsumed is returned when a challenge id has already been used
	ErrChallengeConsumed = errors.New("challenge has already been consumed")

	// ErrStoreOperationFailed is returned when a store operation fails
	ErrStoreOperationFailed = errors.New("store operation failed")
)
