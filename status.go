package obolus

// Status is the outcome of verifying a Response against a Challenge.
// Verification outcomes are ordinary values, not errors: a failed
// signature check is an expected result that callers branch on.
type Status string

const (
	// StatusApproved means the signature is valid and the signer approved the action
	StatusApproved Status = "approved"

	// StatusRejected means the signature is valid and the signer rejected the action
	StatusRejected Status = "rejected"

	// StatusIDMismatch means the response does not reference the challenge
	StatusIDMismatch Status = "id_mismatch"

	// StatusExpired means the challenge expired before verification
	StatusExpired Status = "expired"

	// StatusInvalidSignature means the signature does not verify under the public key
	StatusInvalidSignature Status = "invalid_signature"
)

// Decision is the value a signer commits to when answering a challenge.
type Decision string

const (
	// DecisionApproved authorizes the challenged action
	DecisionApproved Decision = "approved"

	// DecisionRejected refuses the challenged action
	DecisionRejected Decision = "rejected"
)

// ParseDecision validates a decision string received from a caller.
func ParseDecision(s string) (Decision, error) {
	switch Decision(s) {
	case DecisionApproved, DecisionRejected:
		return Decision(s), nil
	default:
		return "", ErrInvalidDecision
	}
}

// Status converts a decision into its corresponding verification status.
func (d Decision) Status() Status {
	return Status(d)
}
