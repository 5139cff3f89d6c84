package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxroute/voxroute/ent/callrecord"
	testdb "github.com/voxroute/voxroute/test/database"
)

func TestRecordService_UpsertFromCDR(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRecordService(client.Client)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client)

	t.Run("creates record linked to session", func(t *testing.T) {
		sess := createTestSession(t, client.Client, tenant.ID, "tok-cdr")
		start := time.Now().Add(-2 * time.Minute).UTC().Truncate(time.Millisecond)
		end := time.Now().UTC().Truncate(time.Millisecond)

		rec, err := service.UpsertFromCDR(ctx, tenant.ID, CDR{
			CallID:        "CA500",
			SessionToken:  "tok-cdr",
			From:          "+15550001111",
			To:            "+15550002222",
			Direction:     "inbound",
			Disposition:   "ANSWER",
			CallStartTime: &start,
			EndTime:       &end,
			Duration:      118,
			BilledSeconds: 120,
			RawPayload:    map[string]interface{}{"callId": "CA500", "disposition": "ANSWERED"},
		}, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, "ANSWER", rec.Disposition)
		assert.Equal(t, 118, rec.DurationSeconds)
		assert.Equal(t, 120, rec.BilledSeconds)
		assert.Equal(t, "ANSWERED", rec.RawPayload["disposition"])

		linked, err := client.CallSession.QueryRecord(sess).Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, rec.ID, linked.ID)
	})

	t.Run("replayed callback overwrites in place", func(t *testing.T) {
		first, err := service.UpsertFromCDR(ctx, tenant.ID, CDR{
			CallID:      "CA600",
			Disposition: "NOANSWER",
			RawPayload:  map[string]interface{}{"attempt": float64(1)},
		}, "")
		require.NoError(t, err)

		second, err := service.UpsertFromCDR(ctx, tenant.ID, CDR{
			CallID:        "CA600",
			Disposition:   "ANSWER",
			Duration:      30,
			BilledSeconds: 30,
			RawPayload:    map[string]interface{}{"attempt": float64(2)},
		}, "")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "ANSWER", second.Disposition)
		assert.Equal(t, float64(2), second.RawPayload["attempt"])

		count, err := client.CallRecord.Query().
			Where(callrecord.TenantID(tenant.ID), callrecord.CallID("CA600")).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("validates inputs", func(t *testing.T) {
		var verr *ValidationError
		_, err := service.UpsertFromCDR(ctx, "", CDR{CallID: "CA1"}, "")
		assert.ErrorAs(t, err, &verr)

		_, err = service.UpsertFromCDR(ctx, tenant.ID, CDR{}, "")
		assert.ErrorAs(t, err, &verr)
	})
}

func TestRecordService_Get(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRecordService(client.Client)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client)
	other := createTestTenant(t, client.Client)

	_, err := service.UpsertFromCDR(ctx, tenant.ID, CDR{CallID: "CA700", Disposition: "BUSY"}, "")
	require.NoError(t, err)

	rec, err := service.Get(ctx, tenant.ID, "CA700")
	require.NoError(t, err)
	assert.Equal(t, "BUSY", rec.Disposition)

	_, err = service.Get(ctx, other.ID, "CA700")
	assert.ErrorIs(t, err, ErrNotFound)
}
