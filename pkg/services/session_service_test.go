package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxroute/voxroute/ent/callsession"
	testdb "github.com/voxroute/voxroute/test/database"
)

func TestSessionService_UpsertByToken(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client)

	t.Run("creates session in received state", func(t *testing.T) {
		started := time.Now().Add(-time.Minute).UTC().Truncate(time.Millisecond)
		sess, err := service.UpsertByToken(ctx, tenant.ID, "tok-create", SessionAttrs{
			CallSid:     "CA100",
			Direction:   "inbound",
			CallerID:    "+15550001111",
			Destination: "+15550002222",
			StartedAt:   &started,
		})
		require.NoError(t, err)
		assert.Equal(t, callsession.StateReceived, sess.State)
		assert.Equal(t, "CA100", sess.CallSid)
		assert.Equal(t, callsession.DirectionInbound, sess.Direction)
		assert.Equal(t, "+15550001111", sess.CallerID)
		assert.Equal(t, "+15550002222", sess.Destination)
	})

	t.Run("second upsert returns the existing session", func(t *testing.T) {
		first, err := service.UpsertByToken(ctx, tenant.ID, "tok-idem", SessionAttrs{CallSid: "CA200"})
		require.NoError(t, err)

		second, err := service.UpsertByToken(ctx, tenant.ID, "tok-idem", SessionAttrs{})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		count, err := client.CallSession.Query().
			Where(callsession.TenantID(tenant.ID), callsession.SessionToken("tok-idem")).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("sparse upsert never blanks richer fields", func(t *testing.T) {
		_, err := service.UpsertByToken(ctx, tenant.ID, "tok-sparse", SessionAttrs{
			CallSid:  "CA300",
			CallerID: "+15550003333",
		})
		require.NoError(t, err)

		sess, err := service.UpsertByToken(ctx, tenant.ID, "tok-sparse", SessionAttrs{
			Destination: "+15550004444",
		})
		require.NoError(t, err)
		assert.Equal(t, "CA300", sess.CallSid)
		assert.Equal(t, "+15550003333", sess.CallerID)
		assert.Equal(t, "+15550004444", sess.Destination)
	})

	t.Run("validates inputs", func(t *testing.T) {
		_, err := service.UpsertByToken(ctx, "", "tok", SessionAttrs{})
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)

		_, err = service.UpsertByToken(ctx, tenant.ID, "", SessionAttrs{})
		assert.ErrorAs(t, err, &verr)
	})
}

func TestSessionService_TenantGuard(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	owner := createTestTenant(t, client.Client)
	other := createTestTenant(t, client.Client)
	sess := createTestSession(t, client.Client, owner.ID, "tok-guard")

	t.Run("owner reads by token", func(t *testing.T) {
		got, err := service.GetByToken(ctx, owner.ID, "tok-guard")
		require.NoError(t, err)
		assert.Equal(t, sess.ID, got.ID)
	})

	t.Run("other tenant cannot read by token", func(t *testing.T) {
		_, err := service.GetByToken(ctx, other.ID, "tok-guard")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("other tenant cannot read by id", func(t *testing.T) {
		_, err := service.Get(ctx, other.ID, sess.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSessionService_AssignTarget(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client)
	sess := createTestSession(t, client.Client, tenant.ID, "tok-assign")

	updated, err := service.AssignTarget(ctx, tenant.ID, sess, "agent-1", "group-1")
	require.NoError(t, err)
	require.NotNil(t, updated.AgentID)
	require.NotNil(t, updated.GroupID)
	assert.Equal(t, "agent-1", *updated.AgentID)
	assert.Equal(t, "group-1", *updated.GroupID)

	// Direct agent routing leaves the group unset.
	sess2 := createTestSession(t, client.Client, tenant.ID, "tok-assign-2")
	updated, err = service.AssignTarget(ctx, tenant.ID, sess2, "agent-2", "")
	require.NoError(t, err)
	require.NotNil(t, updated.AgentID)
	assert.Equal(t, "agent-2", *updated.AgentID)
	assert.Nil(t, updated.GroupID)

	t.Run("cross-tenant write is refused", func(t *testing.T) {
		other := createTestTenant(t, client.Client)
		_, err := service.AssignTarget(ctx, other.ID, sess, "agent-x", "")
		assert.ErrorIs(t, err, ErrTenantIsolation)
	})
}
