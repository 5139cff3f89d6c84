package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/voxroute/voxroute/test/database"
)

func TestEventService_AppendAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client)
	sess := createTestSession(t, client.Client, tenant.ID, "tok-events")

	service.Append(ctx, sess.ID, EventKindApplicationRequest,
		map[string]interface{}{"CallSid": "CA1"},
		map[string]string{"X-CX-Domain": tenant.Domain},
		OutcomeProcessed)
	service.Append(ctx, sess.ID, EventKindSessionUpdate,
		map[string]interface{}{"status": "answer"},
		map[string]string{"X-CX-Domain": tenant.Domain},
		OutcomeProcessed)
	service.Append(ctx, sess.ID, EventKindSessionUpdate,
		map[string]interface{}{"status": "ringing"},
		map[string]string{"X-CX-Domain": tenant.Domain},
		OutcomeRejected)

	events, err := service.List(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, EventKindApplicationRequest, events[0].EventKind)
	assert.Equal(t, OutcomeProcessed, events[0].Outcome)
	assert.Equal(t, "CA1", events[0].Payload["CallSid"])
	assert.Equal(t, OutcomeRejected, events[2].Outcome)
}

func TestEventService_AppendBestEffort(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	// A dangling session id violates the FK; Append logs and carries on.
	service.Append(ctx, "no-such-session", EventKindCdrCallback, nil, nil, OutcomeProcessed)

	events, err := service.List(ctx, "no-such-session")
	require.NoError(t, err)
	assert.Empty(t, events)
}
