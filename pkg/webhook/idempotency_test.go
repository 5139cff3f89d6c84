package webhook

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxroute/voxroute/pkg/store"
)

func newTestLedger(t *testing.T) (*Ledger, *store.Store) {
	t.Helper()
	mr := miniredis.RunT(t)
	s := store.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = s.Close() })
	return NewLedger(s), s
}

func TestExecuteOnceRunsOnce(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	runs := 0
	fn := func(context.Context) error { runs++; return nil }

	skipped, err := l.ExecuteOnce(ctx, "t1", KindApplication, "tok", "e1", fn)
	require.NoError(t, err)
	assert.False(t, skipped)

	skipped, err = l.ExecuteOnce(ctx, "t1", KindApplication, "tok", "e1", fn)
	require.NoError(t, err)
	assert.True(t, skipped)
	assert.Equal(t, 1, runs)
}

func TestExecuteOnceMarksKeyCompleted(t *testing.T) {
	l, st := newTestLedger(t)
	ctx := context.Background()

	_, err := l.ExecuteOnce(ctx, "t1", KindApplication, "tok", "e1",
		func(context.Context) error { return nil })
	require.NoError(t, err)

	val, err := st.Get(ctx, l.Key("t1", KindApplication, "tok", "e1"))
	require.NoError(t, err)
	assert.Equal(t, "completed", val)
}

func TestExecuteOnceDistinctEventsBothRun(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	runs := 0
	fn := func(context.Context) error { runs++; return nil }

	_, err := l.ExecuteOnce(ctx, "t1", KindSessionUpdate, "tok", "e1", fn)
	require.NoError(t, err)
	_, err = l.ExecuteOnce(ctx, "t1", KindSessionUpdate, "tok", "e2", fn)
	require.NoError(t, err)
	assert.Equal(t, 2, runs)
}

func TestExecuteOnceTenantScoped(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	runs := 0
	fn := func(context.Context) error { runs++; return nil }

	_, err := l.ExecuteOnce(ctx, "t1", KindCdr, "tok", "e1", fn)
	require.NoError(t, err)
	_, err = l.ExecuteOnce(ctx, "t2", KindCdr, "tok", "e1", fn)
	require.NoError(t, err)
	assert.Equal(t, 2, runs)
}

func TestExecuteOnceReleasesKeyOnError(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	boom := errors.New("db down")
	_, err := l.ExecuteOnce(ctx, "t1", KindApplication, "tok", "e1",
		func(context.Context) error { return boom })
	require.ErrorIs(t, err, boom)

	// The retry is not a duplicate.
	runs := 0
	skipped, err := l.ExecuteOnce(ctx, "t1", KindApplication, "tok", "e1",
		func(context.Context) error { runs++; return nil })
	require.NoError(t, err)
	assert.False(t, skipped)
	assert.Equal(t, 1, runs)
}

func TestExecuteOnceReleasesKeyOnCancellation(t *testing.T) {
	l, st := newTestLedger(t)

	ctx, cancel := context.WithCancel(context.Background())
	_, err := l.ExecuteOnce(ctx, "t1", KindApplication, "tok", "e1",
		func(context.Context) error {
			cancel()
			return nil
		})
	require.ErrorIs(t, err, context.Canceled)

	// The in-progress key must not linger after a cancelled request.
	_, err = st.Get(context.Background(), l.Key("t1", KindApplication, "tok", "e1"))
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestExecuteOnceKeyExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	s := store.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = s.Close() })
	l := NewLedger(s)
	ctx := context.Background()

	runs := 0
	fn := func(context.Context) error { runs++; return nil }

	_, err := l.ExecuteOnce(ctx, "t1", KindCdr, "tok", "e1", fn)
	require.NoError(t, err)

	mr.FastForward(idemTTL + time.Minute)

	skipped, err := l.ExecuteOnce(ctx, "t1", KindCdr, "tok", "e1", fn)
	require.NoError(t, err)
	assert.False(t, skipped)
	assert.Equal(t, 2, runs)
}

func TestExecuteOnceDegradesWhenStoreDown(t *testing.T) {
	l, st := newTestLedger(t)
	require.NoError(t, st.Close())

	runs := 0
	skipped, err := l.ExecuteOnce(context.Background(), "t1", KindApplication, "tok", "e1",
		func(context.Context) error { runs++; return nil })
	require.NoError(t, err)
	assert.False(t, skipped)
	assert.Equal(t, 1, runs, "ledger outage must not drop the event")
}

func TestFallbackEventIDStable(t *testing.T) {
	a := fallbackEventID(KindSessionUpdate, map[string]interface{}{"token": "s1", "status": "answer"})
	b := fallbackEventID(KindSessionUpdate, map[string]interface{}{"status": "answer", "token": "s1"})
	assert.Equal(t, a, b, "field order must not change the id")

	c := fallbackEventID(KindSessionUpdate, map[string]interface{}{"token": "s1", "status": "busy"})
	assert.NotEqual(t, a, c)
	// Same subset under another kind is a distinct event.
	d := fallbackEventID(KindCdr, map[string]interface{}{"token": "s1", "status": "answer"})
	assert.NotEqual(t, a, d)
	assert.Len(t, a, 64)
}

func TestEventIDFallsBackWithoutNaturalID(t *testing.T) {
	app := &ApplicationRequest{From: "+1999", To: "+1234567890", Session: "s1"}
	assert.Len(t, app.EventID(), 64)
	withSid := &ApplicationRequest{CallSid: "c1", From: "+1999", To: "+1234567890", Session: "s1"}
	assert.Equal(t, "c1", withSid.EventID())

	upd := &SessionUpdate{Token: "s1", Status: "answer", ModifiedAt: 1700000000000}
	assert.Len(t, upd.EventID(), 64)
	// Retries of the same update hash to the same id; a later status does not.
	again := &SessionUpdate{Token: "s1", Status: "answer", ModifiedAt: 1700000000000}
	assert.Equal(t, upd.EventID(), again.EventID())
	later := &SessionUpdate{Token: "s1", Status: "completed", ModifiedAt: 1700000009000}
	assert.NotEqual(t, upd.EventID(), later.EventID())

	cdr := &CdrCallback{Session: &CdrSession{Token: "s1", CallStartTime: 1700000000000, EndTime: 1700000060000}}
	assert.Len(t, cdr.EventID(), 64)
	withCallID := &CdrCallback{CallID: "uuid-1"}
	assert.Equal(t, "uuid-1", withCallID.EventID())
}

func TestKeyShape(t *testing.T) {
	l, _ := newTestLedger(t)
	assert.Equal(t,
		"tenant:t1:webhook:idem:update:tok:e1",
		l.Key("t1", KindSessionUpdate, "tok", "e1"))
}
