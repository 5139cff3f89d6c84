package callstate

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxroute/voxroute/ent"
	"github.com/voxroute/voxroute/ent/callsession"
	"github.com/voxroute/voxroute/pkg/store"
	testdb "github.com/voxroute/voxroute/test/database"
)

func newTestMachine(t *testing.T) (*Machine, *ent.Client, *store.Store, *miniredis.Miniredis) {
	t.Helper()
	client := testdb.NewTestClient(t)
	mr := miniredis.RunT(t)
	st := store.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = st.Close() })
	return NewMachine(client.Client, st), client.Client, st, mr
}

func createMachineTenant(t *testing.T, client *ent.Client) *ent.Tenant {
	t.Helper()
	tenant, err := client.Tenant.Create().
		SetID(uuid.NewString()).
		SetName("Acme Voice").
		SetDomain("acme-" + uuid.NewString() + ".example.com").
		SetAPIKey("key-" + uuid.NewString()).
		Save(context.Background())
	require.NoError(t, err)
	return tenant
}

func createMachineSession(t *testing.T, client *ent.Client, tenantID, token string) *ent.CallSession {
	t.Helper()
	sess, err := client.CallSession.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenantID).
		SetSessionToken(token).
		Save(context.Background())
	require.NoError(t, err)
	return sess
}

func TestMachineTransitionCommitsStateAndHistory(t *testing.T) {
	m, client, st, _ := newTestMachine(t)
	ctx := context.Background()

	tenant := createMachineTenant(t, client)
	sess := createMachineSession(t, client, tenant.ID, "tok-commit")

	sess, err := m.Transition(ctx, sess, StateQueued, nil)
	require.NoError(t, err)
	assert.Equal(t, callsession.StateQueued, sess.State)
	require.Len(t, sess.History, 1)
	assert.Equal(t, "received", sess.History[0]["from"])
	assert.Equal(t, "queued", sess.History[0]["to"])
	require.NoError(t, VerifyIntegrity(sess))

	sess, err = m.Transition(ctx, sess, StateRouting, nil)
	require.NoError(t, err)
	sess, err = m.Transition(ctx, sess, StateConnecting, map[string]any{"target_id": "agent-1"})
	require.NoError(t, err)
	sess, err = m.Transition(ctx, sess, StateConnected, nil)
	require.NoError(t, err)
	require.NotNil(t, sess.AnsweredAt, "answer must be timestamped")

	sess, err = m.Transition(ctx, sess, StateCompleted, nil)
	require.NoError(t, err)
	require.NotNil(t, sess.EndedAt)
	assert.GreaterOrEqual(t, sess.DurationSeconds, 0)
	require.Len(t, sess.History, 5)
	require.NoError(t, VerifyIntegrity(sess))

	// The committed state is mirrored into the store hash.
	fields, err := st.HGetAll(ctx, CacheKey(tenant.ID, "tok-commit"))
	require.NoError(t, err)
	assert.Equal(t, "completed", fields["state"])
}

func TestMachineTransitionRejectsIllegal(t *testing.T) {
	m, client, _, _ := newTestMachine(t)
	ctx := context.Background()

	tenant := createMachineTenant(t, client)
	sess := createMachineSession(t, client, tenant.ID, "tok-illegal")

	_, err := m.Transition(ctx, sess, StateCompleted, nil)
	var ite *InvalidTransitionError
	require.ErrorAs(t, err, &ite)
	assert.Equal(t, StateReceived, ite.From)
	assert.Equal(t, StateCompleted, ite.To)

	// The rejection leaves the row untouched.
	reloaded, err := client.CallSession.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, callsession.StateReceived, reloaded.State)
	assert.Empty(t, reloaded.History)
	require.NoError(t, VerifyIntegrity(reloaded))
}

func TestMachineTransitionRejectsStaleCopy(t *testing.T) {
	m, client, _, _ := newTestMachine(t)
	ctx := context.Background()

	tenant := createMachineTenant(t, client)
	sess := createMachineSession(t, client, tenant.ID, "tok-stale")

	_, err := m.Transition(ctx, sess, StateQueued, nil)
	require.NoError(t, err)

	// A second worker holding the pre-transition copy loses the conditional
	// update: zero rows match the state predicate.
	_, err = m.Transition(ctx, sess, StateQueued, nil)
	var ite *InvalidTransitionError
	require.ErrorAs(t, err, &ite)

	reloaded, err := client.CallSession.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, callsession.StateQueued, reloaded.State)
	require.Len(t, reloaded.History, 1, "the losing writer must not append history")
	require.NoError(t, VerifyIntegrity(reloaded))
}

func TestMachineLoadRebuildsCache(t *testing.T) {
	m, client, st, mr := newTestMachine(t)
	ctx := context.Background()

	tenant := createMachineTenant(t, client)
	sess := createMachineSession(t, client, tenant.ID, "tok-rebuild")
	_, err := m.Transition(ctx, sess, StateQueued, nil)
	require.NoError(t, err)

	mr.FlushAll()

	cs, err := m.Load(ctx, tenant.ID, "tok-rebuild")
	require.NoError(t, err)
	assert.Equal(t, StateQueued, cs.State)
	require.Len(t, cs.History, 1)
	assert.Equal(t, StateReceived, cs.History[0].From)
	assert.Equal(t, StateQueued, cs.History[0].To)

	// The miss repopulated the cache.
	fields, err := st.HGetAll(ctx, CacheKey(tenant.ID, "tok-rebuild"))
	require.NoError(t, err)
	assert.Equal(t, "queued", fields["state"])
}

func TestVerifyIntegrity(t *testing.T) {
	ok := &ent.CallSession{ID: "s1", State: callsession.StateQueued,
		History: []map[string]interface{}{{"from": "received", "to": "queued"}}}
	assert.NoError(t, VerifyIntegrity(ok))

	fresh := &ent.CallSession{ID: "s2", State: callsession.StateReceived}
	assert.NoError(t, VerifyIntegrity(fresh))

	drifted := &ent.CallSession{ID: "s3", State: callsession.StateConnected,
		History: []map[string]interface{}{{"from": "received", "to": "queued"}}}
	assert.Error(t, VerifyIntegrity(drifted))

	noHistory := &ent.CallSession{ID: "s4", State: callsession.StateQueued}
	assert.Error(t, VerifyIntegrity(noHistory))
}
