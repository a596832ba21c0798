package obolus

import (
	"crypto/ed25519"
	"encoding/base64"
	"fmt"
	"time"
)

// Sign answers a challenge with the given decision. It builds the
// canonical message for the challenge and decision, signs it with the
// Ed25519 signing key, and returns the response. The challenge itself
// is neither mutated nor consumed; signing the same challenge twice is
// valid at this layer.
//
// The key role is checked before any cryptographic work: signing with
// verification material fails with ErrKeyLoad.
func Sign(challenge *Challenge, decision Decision, key KeyMaterial) (*Response, error) {
	if _, err := ParseDecision(string(decision)); err != nil {
		return nil, err
	}
	if key.role != RoleSigning {
		return nil, fmt.Errorf("cannot sign with %s key: %w", key.role, ErrKeyLoad)
	}

	message := CanonicalMessage(challenge.ID, challenge.Action, challenge.Nonce, decision)
	signature := ed25519.Sign(key.priv, message)

	return &Response{
		ID:        challenge.ID,
		Response:  decision,
		Timestamp: time.Now().UTC(),
		Signature: base64.StdEncoding.EncodeToString(signature),
	}, nil
}
