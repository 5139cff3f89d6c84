package events

import (
	"fmt"
	"time"
)

// Event types published on tenant channels. Names are stable identifiers;
// message-shape changes must be additive.
const (
	TypeCallCreated        = "call.created"
	TypeCallUpdated        = "call.updated"
	TypeAgentStatusUpdated = "agent.status.updated"
	TypeAnalyticsUpdated   = "analytics.updated"
)

// Message is the wire shape of every published event.
type Message struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// CallData is the payload of call.created and call.updated.
type CallData struct {
	SessionID    string `json:"session_id"`
	SessionToken string `json:"session_token"`
	TenantID     string `json:"tenant_id"`
	State        string `json:"state"`
	Direction    string `json:"direction,omitempty"`
	CallerID     string `json:"caller_id,omitempty"`
	Destination  string `json:"destination,omitempty"`
	AgentID      string `json:"agent_id,omitempty"`
	GroupID      string `json:"group_id,omitempty"`
	Duration     int    `json:"duration_seconds,omitempty"`
}

// AgentStatusData is the payload of agent.status.updated.
type AgentStatusData struct {
	AgentID  string `json:"agent_id"`
	TenantID string `json:"tenant_id"`
	Status   string `json:"status"`
}

// AnalyticsData is the payload of analytics.updated.
type AnalyticsData struct {
	TenantID    string `json:"tenant_id"`
	CallID      string `json:"call_id"`
	Disposition string `json:"disposition"`
	Duration    int    `json:"duration_seconds"`
	Billed      int    `json:"billed_seconds"`
}

// CallsChannel returns the tenant's call-lifecycle channel name.
func CallsChannel(tenantID string) string {
	return fmt.Sprintf("tenant.%s.calls", tenantID)
}

// AgentsChannel returns the tenant's agent-status channel name.
func AgentsChannel(tenantID string) string {
	return fmt.Sprintf("tenant.%s.agents", tenantID)
}

// AnalyticsChannel returns the tenant's analytics channel name.
func AnalyticsChannel(tenantID string) string {
	return fmt.Sprintf("tenant.%s.analytics", tenantID)
}

// ClientMessage is a command from a WebSocket client.
type ClientMessage struct {
	Action  string `json:"action"`  // subscribe, unsubscribe, ping
	Channel string `json:"channel"` // required for subscribe and unsubscribe
}
