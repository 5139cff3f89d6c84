package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/redis/go-redis/v9"

	"github.com/voxroute/voxroute/pkg/store"
)

// Broadcaster receives relayed channel payloads. Implemented by
// ConnectionManager.
type Broadcaster interface {
	Broadcast(channel string, payload []byte)
}

// Listener relays shared-store pub/sub messages to the local
// ConnectionManager. Each process holds one subscription connection; channels
// are added and removed as WebSocket clients subscribe.
type Listener struct {
	store   *store.Store
	manager Broadcaster

	pubsub   *redis.PubSub
	pubsubMu sync.Mutex

	channels   map[string]bool
	channelsMu sync.RWMutex

	running  atomic.Bool
	loopDone chan struct{}
}

// NewListener creates a new Listener.
func NewListener(st *store.Store, manager Broadcaster) *Listener {
	return &Listener{
		store:    st,
		manager:  manager,
		channels: make(map[string]bool),
	}
}

// Start opens the subscription connection and begins relaying messages.
// The connection starts with no channels; Subscribe adds them.
func (l *Listener) Start(ctx context.Context) error {
	l.pubsubMu.Lock()
	l.pubsub = l.store.Subscribe(ctx)
	l.pubsubMu.Unlock()

	l.running.Store(true)
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop()
	}()

	slog.Info("Event listener started")
	return nil
}

// Subscribe adds a channel to the relay. Safe to call while the receive loop
// is running; the client library serializes the subscription change.
func (l *Listener) Subscribe(ctx context.Context, channel string) error {
	l.channelsMu.Lock()
	if l.channels[channel] {
		l.channelsMu.Unlock()
		return nil
	}
	l.channelsMu.Unlock()

	if !l.running.Load() {
		return fmt.Errorf("event listener not started")
	}

	l.pubsubMu.Lock()
	err := l.pubsub.Subscribe(ctx, channel)
	l.pubsubMu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}

	l.channelsMu.Lock()
	l.channels[channel] = true
	l.channelsMu.Unlock()
	slog.Debug("Subscribed to event channel", "channel", channel)
	return nil
}

// Unsubscribe removes a channel from the relay.
func (l *Listener) Unsubscribe(ctx context.Context, channel string) error {
	l.channelsMu.Lock()
	if !l.channels[channel] {
		l.channelsMu.Unlock()
		return nil
	}
	delete(l.channels, channel)
	l.channelsMu.Unlock()

	if !l.running.Load() {
		return nil
	}

	l.pubsubMu.Lock()
	err := l.pubsub.Unsubscribe(ctx, channel)
	l.pubsubMu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to unsubscribe from %s: %w", channel, err)
	}
	return nil
}

// receiveLoop dispatches relayed messages until the subscription closes.
// The client library reconnects and re-subscribes on its own, so no
// reconnect handling is needed here.
func (l *Listener) receiveLoop() {
	ch := l.pubsub.Channel()
	for msg := range ch {
		l.manager.Broadcast(msg.Channel, []byte(msg.Payload))
	}
}

// Stop closes the subscription connection and waits for the relay to drain.
func (l *Listener) Stop() {
	l.running.Store(false)

	l.pubsubMu.Lock()
	if l.pubsub != nil {
		_ = l.pubsub.Close()
	}
	l.pubsubMu.Unlock()

	if l.loopDone != nil {
		<-l.loopDone
	}
}
