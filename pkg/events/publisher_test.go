package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxroute/voxroute/pkg/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	mr := miniredis.RunT(t)
	s := store.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestChannelNames(t *testing.T) {
	assert.Equal(t, "tenant.t1.calls", CallsChannel("t1"))
	assert.Equal(t, "tenant.t1.agents", AgentsChannel("t1"))
	assert.Equal(t, "tenant.t1.analytics", AnalyticsChannel("t1"))
}

func TestPublishCallUpdatedShape(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	sub := st.Subscribe(ctx, CallsChannel("t1"))
	t.Cleanup(func() { _ = sub.Close() })
	// Wait for the subscription before publishing.
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	p := NewPublisher(st)
	p.PublishCallUpdated(ctx, "t1", CallData{
		SessionID:    "sess-1",
		SessionToken: "tok-1",
		TenantID:     "t1",
		State:        "connected",
	})

	select {
	case msg := <-sub.Channel():
		var got Message
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, TypeCallUpdated, got.Type)
		assert.False(t, got.Timestamp.IsZero())
		data, ok := got.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "sess-1", data["session_id"])
		assert.Equal(t, "connected", data["state"])
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
	}
}

func TestPublishFailureIsSwallowed(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Close())

	// Closed store: publish must not panic or surface the error.
	p := NewPublisher(st)
	p.PublishCallCreated(context.Background(), "t1", CallData{SessionID: "s"})
}
