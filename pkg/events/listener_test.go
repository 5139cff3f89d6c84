package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingBroadcaster collects relayed payloads per channel.
type recordingBroadcaster struct {
	mu   sync.Mutex
	seen map[string][][]byte
}

func newRecordingBroadcaster() *recordingBroadcaster {
	return &recordingBroadcaster{seen: map[string][][]byte{}}
}

func (b *recordingBroadcaster) Broadcast(channel string, payload []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seen[channel] = append(b.seen[channel], payload)
}

func (b *recordingBroadcaster) count(channel string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.seen[channel])
}

func TestListenerRelaysSubscribedChannels(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	bc := newRecordingBroadcaster()
	l := NewListener(st, bc)
	require.NoError(t, l.Start(ctx))
	t.Cleanup(l.Stop)

	require.NoError(t, l.Subscribe(ctx, "tenant.t1.calls"))

	require.NoError(t, st.Publish(ctx, "tenant.t1.calls", []byte(`{"type":"call.updated"}`)))
	require.NoError(t, st.Publish(ctx, "tenant.t2.calls", []byte(`{"type":"call.updated"}`)))

	require.Eventually(t, func() bool {
		return bc.count("tenant.t1.calls") == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Zero(t, bc.count("tenant.t2.calls"), "unsubscribed channel must not relay")
}

func TestListenerUnsubscribeStopsRelay(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	bc := newRecordingBroadcaster()
	l := NewListener(st, bc)
	require.NoError(t, l.Start(ctx))
	t.Cleanup(l.Stop)

	require.NoError(t, l.Subscribe(ctx, "tenant.t1.calls"))
	require.NoError(t, st.Publish(ctx, "tenant.t1.calls", []byte(`a`)))
	require.Eventually(t, func() bool {
		return bc.count("tenant.t1.calls") == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, l.Unsubscribe(ctx, "tenant.t1.calls"))
	require.NoError(t, st.Publish(ctx, "tenant.t1.calls", []byte(`b`)))

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, bc.count("tenant.t1.calls"))
}

func TestListenerSubscribeBeforeStart(t *testing.T) {
	st := newTestStore(t)
	l := NewListener(st, newRecordingBroadcaster())
	assert.Error(t, l.Subscribe(context.Background(), "tenant.t1.calls"))
}
