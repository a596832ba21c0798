package obolus

import (
	"fmt"
)

// CanonicalMessage builds the exact byte sequence that is signed and
// re-derived for verification:
//
//	"{id}:{action}:{nonce}:{decision}"
//
// encoded as UTF-8 with literal colon separators. This is the single
// definition of what gets signed; the signing and verifying sides must
// rebuild the identical bytes from the same source fields.
//
// Colons inside action are not escaped. The message is never re-parsed
// into its parts, so verification is unaffected, but the encoding is
// ambiguous to split if action contains a colon.
func CanonicalMessage(challengeID, action, nonce string, decision Decision) []byte {
	return fmt.Appendf(nil, "%s:%s:%s:%s", challengeID, action, nonce, decision)
}
