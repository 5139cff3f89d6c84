// Package callstate implements the authoritative per-session call lifecycle:
// state definitions, transition validation, carrier status mapping, and the
// persisted transition history.
package callstate

import "fmt"

// State is a call session lifecycle state.
type State string

const (
	StateReceived   State = "received"
	StateQueued     State = "queued"
	StateRouting    State = "routing"
	StateConnecting State = "connecting"
	StateConnected  State = "connected"
	StateCompleted  State = "completed"
	StateBusy       State = "busy"
	StateFailed     State = "failed"
	StateNoAnswer   State = "no_answer"
)

// Initial is the state of every newly created session.
const Initial = StateReceived

// legalTransitions is the full transition table. Terminal states have no
// entry: nothing leaves them.
var legalTransitions = map[State][]State{
	StateReceived:   {StateQueued},
	StateQueued:     {StateRouting, StateFailed},
	StateRouting:    {StateConnecting, StateFailed, StateNoAnswer},
	StateConnecting: {StateConnected, StateBusy, StateFailed, StateNoAnswer},
	StateConnected:  {StateCompleted, StateFailed},
}

// IsTerminal reports whether no transition may leave the state.
func (s State) IsTerminal() bool {
	switch s {
	case StateCompleted, StateBusy, StateFailed, StateNoAnswer:
		return true
	}
	return false
}

// Valid reports whether s is a known state.
func (s State) Valid() bool {
	switch s {
	case StateReceived, StateQueued, StateRouting, StateConnecting,
		StateConnected, StateCompleted, StateBusy, StateFailed, StateNoAnswer:
		return true
	}
	return false
}

// CanTransition reports whether from → to is a legal transition.
func CanTransition(from, to State) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// InvalidTransitionError is returned when a transition is rejected. The
// session is left unchanged.
type InvalidTransitionError struct {
	From State
	To   State
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition %s → %s", e.From, e.To)
}

// carrierStatusMap projects the carrier's free-form status strings onto
// lifecycle states. This table is authoritative.
//
// Two mappings look wrong but are deliberate and must not be "fixed":
// the carrier's "connected" means media setup, not answer, so it maps to
// connecting; "answer" is the real answer signal and maps to connected.
// Changing either silently alters recorded durations.
var carrierStatusMap = map[string]State{
	"ringing":    StateConnecting,
	"connected":  StateConnecting,
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

// MapCarrierStatus projects a carrier status onto a state. Unrecognized
// statuses map to connecting, a non-terminal safe default that keeps the
// session observable while engineers triage.
func MapCarrierStatus(status string) State {
	if s, ok := carrierStatusMap[status]; ok {
		return s
	}
	return StateConnecting
}

// CarrierStatuses returns the recognized carrier statuses and their states.
// Shared with the test suite so the mapping stays authoritative in one place.
func CarrierStatuses() map[string]State {
	out := make(map[string]State, len(carrierStatusMap))
	for k, v := range carrierStatusMap {
		out[k] = v
	}
	return out
}
