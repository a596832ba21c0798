package obolus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalMessage(t *testing.T) {
	msg := CanonicalMessage("c1", "login_request", "AAECAwQFBgcICQoLDA0ODw==", DecisionApproved)
	assert.Equal(t, []byte("c1:login_request:AAECAwQFBgcICQoLDA0ODw==:approved"), msg)
}

func TestCanonicalMessageRejected(t *testing.T) {
	msg := CanonicalMessage("c1", "login_request", "bm9uY2U=", DecisionRejected)
	assert.Equal(t, []byte("c1:login_request:bm9uY2U=:rejected"), msg)
}

func TestCanonicalMessageColonInAction(t *testing.T) {
	// Colons in the action are not escaped; both sides rebuild the same
	// bytes from the same source fields, so signing still agrees.
	msg := CanonicalMessage("c1", "db:drop", "bm9uY2U=", DecisionApproved)
	assert.Equal(t, []byte("c1:db:drop:bm9uY2U=:approved"), msg)
}
