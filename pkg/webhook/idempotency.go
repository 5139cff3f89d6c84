package webhook

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/voxroute/voxroute/pkg/store"
)

// Event kinds as they appear in idempotency keys.
const (
	KindApplication   = "application"
	KindSessionUpdate = "update"
	KindCdr           = "cdr"
)

const (
	idemTTL = 24 * time.Hour

	stateInProgress = "in-progress"
	stateCompleted  = "completed"
)

// Ledger provides at-most-once execution per webhook event. Keys live in the
// shared store under a 24 h TTL; the carrier does not retry beyond that
// horizon.
//
// When the store is unreachable the ledger degrades to best-effort: the
// handler runs unguarded and the failure is logged at error. A duplicate
// side effect is preferable to dropping the call.
type Ledger struct {
	store *store.Store
}

// NewLedger creates a new Ledger.
func NewLedger(st *store.Store) *Ledger {
	return &Ledger{store: st}
}

// Key builds the idempotency key for one event.
func (l *Ledger) Key(tenantID, kind, token, eventID string) string {
	return fmt.Sprintf("tenant:%s:webhook:idem:%s:%s:%s", tenantID, kind, token, eventID)
}

// fallbackEventID derives an event id when the carrier supplies no natural
// one: a SHA-256 over the canonical JSON of the event kind plus its
// identifying field subset. encoding/json sorts map keys, so equal subsets
// hash equally regardless of field order.
func fallbackEventID(kind string, fields map[string]interface{}) string {
	subset := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		subset[k] = v
	}
	subset["kind"] = kind
	canonical, err := json.Marshal(subset)
	if err != nil {
		return "unhashable"
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}

// ExecuteOnce runs fn at most once per (tenant, kind, token, eventID).
// Returns skipped=true when the event was already seen; fn is not run.
//
// On fn error or request cancellation the key is deleted so the carrier's
// retry can run fn again. On success the key is marked completed for the TTL.
func (l *Ledger) ExecuteOnce(ctx context.Context, tenantID, kind, token, eventID string, fn func(context.Context) error) (skipped bool, err error) {
	key := l.Key(tenantID, kind, token, eventID)

	acquired, setErr := l.store.SetNX(ctx, key, stateInProgress, idemTTL)
	if setErr != nil {
		slog.Error("Idempotency ledger unavailable, executing unguarded",
			"key", key, "error", setErr)
		return false, fn(ctx)
	}
	if !acquired {
		slog.Info("Duplicate webhook event skipped", "key", key)
		return true, nil
	}

	err = fn(ctx)
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	if err != nil {
		// Free the key so the retry is not treated as a duplicate. Deletion
		// is best-effort; a leftover in-progress key expires with the TTL.
		delCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer cancel()
		if delErr := l.store.Del(delCtx, key); delErr != nil {
			slog.Error("Failed to release idempotency key", "key", key, "error", delErr)
		}
		return false, err
	}

	if markErr := l.store.Set(ctx, key, stateCompleted, idemTTL); markErr != nil {
		slog.Error("Failed to mark idempotency key completed", "key", key, "error", markErr)
	}
	return false, nil
}
