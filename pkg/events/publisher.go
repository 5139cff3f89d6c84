package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/voxroute/voxroute/pkg/store"
)

// Publisher broadcasts lifecycle events on tenant-scoped channels.
//
// Publication is fire-and-forget: a dashboard that misses an event reloads
// over REST, so a publish failure is logged at warn and never surfaced to
// webhook processing.
//
// Each public method accepts a specific typed payload struct from types.go.
type Publisher struct {
	store *store.Store
}

// NewPublisher creates a new Publisher.
func NewPublisher(st *store.Store) *Publisher {
	return &Publisher{store: st}
}

// PublishCallCreated broadcasts call.created on the tenant's calls channel.
func (p *Publisher) PublishCallCreated(ctx context.Context, tenantID string, data CallData) {
	p.publish(ctx, CallsChannel(tenantID), TypeCallCreated, data)
}

// PublishCallUpdated broadcasts call.updated on the tenant's calls channel.
func (p *Publisher) PublishCallUpdated(ctx context.Context, tenantID string, data CallData) {
	p.publish(ctx, CallsChannel(tenantID), TypeCallUpdated, data)
}

// PublishAgentStatusUpdated broadcasts agent.status.updated on the tenant's
// agents channel.
func (p *Publisher) PublishAgentStatusUpdated(ctx context.Context, tenantID string, data AgentStatusData) {
	p.publish(ctx, AgentsChannel(tenantID), TypeAgentStatusUpdated, data)
}

// PublishAnalyticsUpdated broadcasts analytics.updated on the tenant's
// analytics channel.
func (p *Publisher) PublishAnalyticsUpdated(ctx context.Context, tenantID string, data AnalyticsData) {
	p.publish(ctx, AnalyticsChannel(tenantID), TypeAnalyticsUpdated, data)
}

func (p *Publisher) publish(ctx context.Context, channel, eventType string, data interface{}) {
	msg := Message{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		slog.Warn("Failed to marshal event", "type", eventType, "error", err)
		return
	}
	if err := p.store.Publish(ctx, channel, payload); err != nil {
		slog.Warn("Failed to publish event",
			"type", eventType, "channel", channel, "error", err)
	}
}
