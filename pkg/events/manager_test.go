package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeListener records relay subscriptions and can be told to fail.
type fakeListener struct {
	mu     sync.Mutex
	subs   map[string]bool
	failOn string
}

func newFakeListener() *fakeListener {
	return &fakeListener{subs: map[string]bool{}}
}

func (l *fakeListener) Subscribe(_ context.Context, channel string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if channel == l.failOn {
		return errors.New("relay down")
	}
	l.subs[channel] = true
	return nil
}

func (l *fakeListener) Unsubscribe(_ context.Context, channel string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.subs, channel)
	return nil
}

func (l *fakeListener) subscribed(channel string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.subs[channel]
}

func testConnection(id, tenantID string) *Connection {
	ctx, cancel := context.WithCancel(context.Background())
	return &Connection{
		ID:            id,
		TenantID:      tenantID,
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
	}
}

func TestChannelBelongsToTenant(t *testing.T) {
	assert.True(t, channelBelongsToTenant("tenant.t1.calls", "t1"))
	assert.False(t, channelBelongsToTenant("tenant.t2.calls", "t1"))
	assert.False(t, channelBelongsToTenant("tenant.t11.calls", "t1"))
	assert.False(t, channelBelongsToTenant("calls", "t1"))
}

func TestSubscribeStartsRelayOnce(t *testing.T) {
	m := NewConnectionManager(time.Second)
	l := newFakeListener()
	m.SetListener(l)

	c1 := testConnection("c1", "t1")
	c2 := testConnection("c2", "t1")
	m.registerConnection(c1)
	m.registerConnection(c2)

	require.NoError(t, m.subscribe(c1, "tenant.t1.calls"))
	require.NoError(t, m.subscribe(c2, "tenant.t1.calls"))

	assert.True(t, l.subscribed("tenant.t1.calls"))
	assert.Equal(t, 2, m.subscriberCount("tenant.t1.calls"))
}

func TestUnsubscribeDropsRelayWhenLastLeaves(t *testing.T) {
	m := NewConnectionManager(time.Second)
	l := newFakeListener()
	m.SetListener(l)

	c := testConnection("c1", "t1")
	m.registerConnection(c)
	require.NoError(t, m.subscribe(c, "tenant.t1.calls"))

	m.unsubscribe(c, "tenant.t1.calls")
	assert.Zero(t, m.subscriberCount("tenant.t1.calls"))
	require.Eventually(t, func() bool {
		return !l.subscribed("tenant.t1.calls")
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSubscribeRelayFailureCleansUp(t *testing.T) {
	m := NewConnectionManager(time.Second)
	l := newFakeListener()
	l.failOn = "tenant.t1.calls"
	m.SetListener(l)

	c := testConnection("c1", "t1")
	m.registerConnection(c)

	assert.Error(t, m.subscribe(c, "tenant.t1.calls"))
	assert.Zero(t, m.subscriberCount("tenant.t1.calls"))
	assert.False(t, c.subscriptions["tenant.t1.calls"])
}
