package obolus

import (
	"crypto/ed25519"
	"encoding/base64"
	"time"
)

// Verify validates a response against its originating challenge under
// the given verification key. Checks run in a fixed order and
// short-circuit on the first failure:
//
//  1. the response id must reference the challenge (StatusIDMismatch)
//  2. the challenge must not have expired (StatusExpired)
//  3. the Ed25519 signature over the rebuilt canonical message must
//     verify (StatusInvalidSignature)
//
// On success the status is the signer's decision, StatusApproved or
// StatusRejected, not a generic ok.
//
// Expiry is checked before any cryptographic work: a valid signature on
// an expired challenge must never count as authorization, and stale
// material gets no signature check at all.
//
// The key role is checked first; verifying with signing material fails
// with ErrKeyLoad.
func Verify(challenge *Challenge, response *Response, key KeyMaterial) (bool, Status, error) {
	if key.role != RoleVerification {
		return false, "", ErrKeyLoad
	}

	if response.ID != challenge.ID {
		return false, StatusIDMismatch, nil
	}

	if challenge.Expired(time.Now().UTC()) {
		return false, StatusExpired, nil
	}

	signature, err := base64.StdEncoding.DecodeString(response.Signature)
	if err != nil {
		return false, StatusInvalidSignature, nil
	}

	message := CanonicalMessage(challenge.ID, challenge.Action, challenge.Nonce, response.Response)
	if !ed25519.Verify(key.pub, message, signature) {
		return false, StatusInvalidSignature, nil
	}

	return true, response.Response.Status(), nil
}
