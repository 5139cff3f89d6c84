package callstate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/voxroute/voxroute/ent"
	"github.com/voxroute/voxroute/ent/callsession"
	"github.com/voxroute/voxroute/pkg/store"
)

// cacheTTL is how long the session-state hash lives in the store.
const cacheTTL = 24 * time.Hour

// HistoryEntry is one committed transition.
type HistoryEntry struct {
	From     State          `json:"from"`
	To       State          `json:"to"`
	At       time.Time      `json:"at"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Machine commits validated transitions against the relational session row
// and mirrors current state into the shared store for cheap reads.
type Machine struct {
	client *ent.Client
	store  *store.Store
}

// NewMachine creates a Machine. The store may be nil in tests that only
// exercise relational persistence.
func NewMachine(client *ent.Client, st *store.Store) *Machine {
	return &Machine{client: client, store: st}
}

// CacheKey returns the session-state hash key for a session token.
func CacheKey(tenantID, token string) string {
	return fmt.Sprintf("tenant:%s:session:%s:state", tenantID, token)
}

// Transition commits an atomic (state, history-append) update, or fails with
// *InvalidTransitionError leaving the session unchanged. The returned session
// reflects the committed state.
func (m *Machine) Transition(ctx context.Context, sess *ent.CallSession, to State, metadata map[string]any) (*ent.CallSession, error) {
	from := State(sess.State)
	if !to.Valid() {
		return nil, fmt.Errorf("unknown state %q", to)
	}
	if !CanTransition(from, to) {
		return nil, &InvalidTransitionError{From: from, To: to}
	}

	now := time.Now().UTC()
	entry := map[string]any{
		"from": string(from),
		"to":   string(to),
		"at":   now.Format(time.RFC3339Nano),
	}
	if len(metadata) > 0 {
		entry["metadata"] = metadata
	}
	history := append(append([]map[string]any{}, sess.History...), entry)

	upd := m.client.CallSession.Update().
		Where(
			callsession.ID(sess.ID),
			callsession.StateEQ(callsession.State(from)),
		).
		SetState(callsession.State(to)).
		SetHistory(history).
		SetUpdatedAt(now)

	if to == StateConnected && sess.AnsweredAt == nil {
		upd.SetAnsweredAt(now)
	}
	if to.IsTerminal() {
		upd.SetEndedAt(now)
		if sess.AnsweredAt != nil {
			upd.SetDurationSeconds(int(now.Sub(*sess.AnsweredAt).Seconds()))
		}
	}

	// The state predicate makes the update conditional: a concurrent
	// transition that already moved the session off `from` turns this into
	// a zero-row update, which we reject the same as an illegal transition.
	n, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to commit transition: %w", err)
	}
	if n == 0 {
		return nil, &InvalidTransitionError{From: from, To: to}
	}

	updated, err := m.client.CallSession.Get(ctx, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload session: %w", err)
	}

	m.mirror(ctx, updated)
	return updated, nil
}

// CachedState is the compact store copy of a session's lifecycle.
type CachedState struct {
	State   State
	History []HistoryEntry
}

// Load returns the session's lifecycle state, consulting the store first and
// rebuilding the cache from the relational row on miss.
func (m *Machine) Load(ctx context.Context, tenantID, token string) (*CachedState, error) {
	if m.store != nil {
		fields, err := m.store.HGetAll(ctx, CacheKey(tenantID, token))
		if err == nil {
			cs := &CachedState{State: State(fields["state"])}
			if raw := fields["history"]; raw != "" {
				if err := json.Unmarshal([]byte(raw), &cs.History); err == nil {
					return cs, nil
				}
			} else {
				return cs, nil
			}
		} else if err != store.ErrNotFound {
			slog.Error("Session-state cache read failed, falling back to database",
				"tenant_id", tenantID, "session_token", token, "error", err)
		}
	}

	sess, err := m.client.CallSession.Query().
		Where(
			callsession.TenantID(tenantID),
			callsession.SessionToken(token),
		).
		Only(ctx)
	if err != nil {
		return nil, err
	}

	m.mirror(ctx, sess)
	return &CachedState{State: State(sess.State), History: decodeHistory(sess.History)}, nil
}

// VerifyIntegrity checks that the current state equals the last history
// entry's to-state.
func VerifyIntegrity(sess *ent.CallSession) error {
	if len(sess.History) == 0 {
		if State(sess.State) != Initial {
			return fmt.Errorf("session %s in state %s with empty history", sess.ID, sess.State)
		}
		return nil
	}
	last := sess.History[len(sess.History)-1]
	to, _ := last["to"].(string)
	if to != string(sess.State) {
		return fmt.Errorf("session %s state %s does not match last history entry %q", sess.ID, sess.State, to)
	}
	return nil
}

// mirror writes the compact state copy into the store. Best-effort: cache
// failures never fail a committed transition.
func (m *Machine) mirror(ctx context.Context, sess *ent.CallSession) {
	if m.store == nil {
		return
	}
	historyJSON, err := json.Marshal(decodeHistory(sess.History))
	if err != nil {
		historyJSON = []byte("[]")
	}
	err = m.store.HSet(ctx, CacheKey(sess.TenantID, sess.SessionToken), map[string]string{
		"state":   string(sess.State),
		"history": string(historyJSON),
	}, cacheTTL)
	if err != nil {
		slog.Warn("Failed to mirror session state to store",
			"tenant_id", sess.TenantID, "session_token", sess.SessionToken, "error", err)
	}
}

func decodeHistory(raw []map[string]any) []HistoryEntry {
	entries := make([]HistoryEntry, 0, len(raw))
	for _, e := range raw {
		entry := HistoryEntry{}
		if v, ok := e["from"].(string); ok {
			entry.From = State(v)
		}
		if v, ok := e["to"].(string); ok {
			entry.To = State(v)
		}
		if v, ok := e["at"].(string); ok {
			if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
				entry.At = t
			}
		}
		if v, ok := e["metadata"].(map[string]any); ok {
			entry.Metadata = v
		}
		entries = append(entries, entry)
	}
	return entries
}
