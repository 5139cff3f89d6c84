package callstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegalTransitions(t *testing.T) {
	legal := []struct{ from, to State }{
		{StateReceived, StateQueued},
		{StateQueued, StateRouting},
		{StateQueued, StateFailed},
		{StateRouting, StateConnecting},
		{StateRouting, StateFailed},
		{StateRouting, StateNoAnswer},
		{StateConnecting, StateConnected},
		{StateConnecting, StateBusy},
		{StateConnecting, StateFailed},
		{StateConnecting, StateNoAnswer},
		{StateConnected, StateCompleted},
		{StateConnected, StateFailed},
	}
	for _, tt := range legal {
		assert.True(t, CanTransition(tt.from, tt.to), "%s → %s should be legal", tt.from, tt.to)
	}

	illegal := []struct{ from, to State }{
		{StateReceived, StateConnected},
		{StateReceived, StateCompleted},
		{StateQueued, StateConnected},
		{StateRouting, StateCompleted},
		{StateConnecting, StateCompleted},
		{StateConnected, StateBusy},
		{StateConnected, StateNoAnswer},
	}
	for _, tt := range illegal {
		assert.False(t, CanTransition(tt.from, tt.to), "%s → %s should be illegal", tt.from, tt.to)
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	terminals := []State{StateCompleted, StateBusy, StateFailed, StateNoAnswer}
	all := []State{
		StateReceived, StateQueued, StateRouting, StateConnecting,
		StateConnected, StateCompleted, StateBusy, StateFailed, StateNoAnswer,
	}
	for _, from := range terminals {
		assert.True(t, from.IsTerminal())
		for _, to := range all {
			assert.False(t, CanTransition(from, to), "terminal %s must not allow → %s", from, to)
		}
	}
}

func TestMapCarrierStatus(t *testing.T) {
	tests := map[string]State{
		"ringing":    StateConnecting,
		"connected":  StateConnecting, // media setup, NOT answer — see states.go
		"processing": StateRouting,
		"answer":     StateConnected,
		"noanswer":   StateNoAnswer,
		"busy":       StateBusy,
		"nocredit":   StateFailed,
		"cancel":     StateFailed,
		"external":   StateConnecting,
		"error":      StateFailed,
		"completed":  StateCompleted,
		"failed":     StateFailed,
	}
	for status, want := range tests {
		assert.Equal(t, want, MapCarrierStatus(status), "status %q", status)
	}

	// Unrecognized statuses fall back to connecting.
	assert.Equal(t, StateConnecting, MapCarrierStatus("some-new-status"))
	assert.Equal(t, StateConnecting, MapCarrierStatus(""))

	// The exported table matches the mapper.
	for status, want := range CarrierStatuses() {
		assert.Equal(t, want, MapCarrierStatus(status))
	}
}

func TestInvalidTransitionError(t *testing.T) {
	err := &InvalidTransitionError{From: StateReceived, To: StateCompleted}
	assert.Contains(t, err.Error(), "received")
	assert.Contains(t, err.Error(), "completed")
}
