package routing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/voxroute/voxroute/pkg/ccml"
	"github.com/voxroute/voxroute/pkg/store"
)

// routingLockTTL bounds how long a crashed worker can hold a session's
// routing lock.
const routingLockTTL = 30 * time.Second

// Kind classifies what a routing decision resolved to.
type Kind string

const (
	KindVoiceAgent   Kind = "voice_agent"
	KindAgentGroup   Kind = "agent_group"
	KindOutboundRule Kind = "outbound_rule"
	KindDefaultTrunk Kind = "default_trunk"
	KindHangup       Kind = "hangup"
)

// Decision is the result of routing one call. CCML is always set — hangup
// decisions carry the hangup document.
type Decision struct {
	Success       bool
	CCML          string
	Kind          Kind
	TargetID      string
	SelectedAgent *Agent
	SelectedTrunk *Trunk
	Reason        string
	Metadata      map[string]any
}

// Directory loads routing configuration for a tenant. Every method is
// parameterized by tenant, so the engine cannot perform a cross-tenant read
// by construction. Implemented by services.DirectoryService.
type Directory interface {
	InboundRules(ctx context.Context, tenantID string) ([]InboundRule, error)
	OutboundRules(ctx context.Context, tenantID string) ([]OutboundRule, error)
	Agent(ctx context.Context, tenantID, agentID string) (*Agent, error)
	Group(ctx context.Context, tenantID, groupID string) (*Group, error)
	Trunks(ctx context.Context, tenantID string, ids []string) ([]Trunk, error)
	DefaultTrunk(ctx context.Context, tenantID string) (*Trunk, error)
}

// Call identifies the call being routed.
type Call struct {
	TenantID     string
	SessionToken string
	CallerID     string
	Destination  string
}

// Engine combines the pattern matcher with the distribution strategies and
// produces the CCML answer for an incoming call.
type Engine struct {
	dir   Directory
	store *store.Store
}

// NewEngine creates an Engine.
func NewEngine(dir Directory, st *store.Store) *Engine {
	return &Engine{dir: dir, store: st}
}

func routingLockKey(tenantID, token string) string {
	return fmt.Sprintf("tenant:%s:routing:lock:%s", tenantID, token)
}

// Route decides how to bridge a call. It never returns an error: any failure
// is logged with the session token as correlation id and collapses into a
// hangup decision, because the call must never hang on an engine error.
func (e *Engine) Route(ctx context.Context, call Call) (d *Decision) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Routing panicked",
				"tenant_id", call.TenantID, "session_token", call.SessionToken, "panic", r)
			d = hangup("internal error")
		}
	}()

	// Serialize routing decisions per session. A held or unreachable lock is
	// not fatal — the idempotency ledger already deduplicates retries — but
	// under normal operation only one worker routes a given session.
	if owner, err := e.store.AcquireLock(ctx, routingLockKey(call.TenantID, call.SessionToken), routingLockTTL); err != nil {
		slog.Error("Routing lock unavailable, proceeding without it",
			"tenant_id", call.TenantID, "session_token", call.SessionToken, "error", err)
	} else if owner != "" {
		defer func() {
			if err := e.store.ReleaseLock(ctx, routingLockKey(call.TenantID, call.SessionToken), owner); err != nil {
				slog.Warn("Failed to release routing lock",
					"session_token", call.SessionToken, "error", err)
			}
		}()
	}

	outRules, err := e.dir.OutboundRules(ctx, call.TenantID)
	if err != nil {
		slog.Error("Failed to load outbound rules",
			"tenant_id", call.TenantID, "session_token", call.SessionToken, "error", err)
		return hangup("failed to load outbound rules")
	}

	if IsOutbound(outRules, call.CallerID) {
		return e.routeOutbound(ctx, call, outRules)
	}
	return e.routeInbound(ctx, call)
}

func (e *Engine) routeInbound(ctx context.Context, call Call) *Decision {
	rules, err := e.dir.InboundRules(ctx, call.TenantID)
	if err != nil {
		slog.Error("Failed to load inbound rules",
			"tenant_id", call.TenantID, "session_token", call.SessionToken, "error", err)
		return hangup("failed to load inbound rules")
	}

	rule := MatchInbound(rules, call.Destination)
	if rule == nil {
		return hangup("no matching inbound rule")
	}

	switch rule.TargetKind {
	case TargetAgent:
		return e.routeToAgent(ctx, call, rule)
	case TargetGroup:
		return e.routeToGroup(ctx, call, rule)
	default:
		slog.Error("Inbound rule has unknown target kind",
			"rule_id", rule.ID, "target_kind", rule.TargetKind)
		return hangup("unknown rule target kind")
	}
}

func (e *Engine) routeToAgent(ctx context.Context, call Call, rule *InboundRule) *Decision {
	agent, err := e.dir.Agent(ctx, call.TenantID, rule.TargetID)
	if err != nil {
		slog.Error("Failed to load rule target agent",
			"tenant_id", call.TenantID, "rule_id", rule.ID, "agent_id", rule.TargetID, "error", err)
		return hangup("target agent not found")
	}
	if !agent.Enabled {
		return hangup("target agent disabled")
	}

	return &Decision{
		Success:       true,
		CCML:          ccml.DialVoiceAgent(agent.Endpoint(), call.CallerID),
		Kind:          KindVoiceAgent,
		TargetID:      agent.ID,
		SelectedAgent: agent,
		Metadata:      map[string]any{"rule_id": rule.ID},
	}
}

func (e *Engine) routeToGroup(ctx context.Context, call Call, rule *InboundRule) *Decision {
	group, err := e.dir.Group(ctx, call.TenantID, rule.TargetID)
	if err != nil {
		slog.Error("Failed to load rule target group",
			"tenant_id", call.TenantID, "rule_id", rule.ID, "group_id", rule.TargetID, "error", err)
		return hangup("target group not found")
	}
	if !group.CanRoute() {
		return hangup("target group cannot route")
	}

	strategy, err := NewStrategy(group.Strategy, e.store)
	if err != nil {
		slog.Error("Group has unknown strategy",
			"group_id", group.ID, "strategy", group.Strategy, "error", err)
		return hangup("unknown strategy")
	}

	selected, err := strategy.Select(ctx, group)
	if err != nil {
		// Degraded path: the store is unreachable, fall back to a random
		// enabled member rather than dropping the call.
		slog.Error("Strategy selection failed, falling back to random pick",
			"group_id", group.ID, "strategy", group.Strategy,
			"session_token", call.SessionToken, "error", err)
		selected = RandomPick(group)
	}
	if selected == nil {
		return hangup("no selectable member in group")
	}

	doc := ccml.DialGroup(selected.Endpoint(), call.CallerID)

	// Record only after successful synthesis, so a failed response never
	// counts against the agent's window or rotation.
	if err := strategy.Record(ctx, group, selected); err != nil {
		slog.Warn("Failed to record strategy selection",
			"group_id", group.ID, "agent_id", selected.ID, "error", err)
	}

	return &Decision{
		Success:       true,
		CCML:          doc,
		Kind:          KindAgentGroup,
		TargetID:      group.ID,
		SelectedAgent: selected,
		Metadata:      map[string]any{"rule_id": rule.ID, "strategy": group.Strategy},
	}
}

func (e *Engine) routeOutbound(ctx context.Context, call Call, rules []OutboundRule) *Decision {
	rule := MatchOutbound(rules, call.CallerID, call.Destination)
	if rule == nil {
		return hangup("no matching outbound rule")
	}

	trunkDial := &ccml.TrunkDial{
		RingTimeout: rule.TrunkConfig.RingTimeout,
		MaxDuration: rule.TrunkConfig.MaxDuration,
	}

	if len(rule.TrunkConfig.TrunkIDs) > 0 {
		trunks, err := e.dir.Trunks(ctx, call.TenantID, rule.TrunkConfig.TrunkIDs)
		if err != nil {
			slog.Error("Failed to load rule trunks",
				"tenant_id", call.TenantID, "rule_id", rule.ID, "error", err)
			return hangup("failed to load trunks")
		}
		for i := range trunks {
			if trunks[i].Enabled {
				trunkDial.TrunkIDs = []string{trunks[i].CarrierTrunkID}
				return &Decision{
					Success:       true,
					CCML:          ccml.DialTrunk(call.Destination, trunkDial, call.CallerID),
					Kind:          KindOutboundRule,
					TargetID:      rule.ID,
					SelectedTrunk: &trunks[i],
					Metadata:      map[string]any{"rule_id": rule.ID},
				}
			}
		}
	}

	// No usable trunk on the rule — fall back to the tenant default.
	fallback, err := e.dir.DefaultTrunk(ctx, call.TenantID)
	if err != nil || fallback == nil {
		if err != nil {
			slog.Error("Failed to load default trunk",
				"tenant_id", call.TenantID, "error", err)
		}
		return hangup("no usable trunk")
	}
	trunkDial.TrunkIDs = []string{fallback.CarrierTrunkID}
	return &Decision{
		Success:       true,
		CCML:          ccml.DialTrunk(call.Destination, trunkDial, call.CallerID),
		Kind:          KindDefaultTrunk,
		TargetID:      fallback.ID,
		SelectedTrunk: fallback,
		Metadata:      map[string]any{"rule_id": rule.ID},
	}
}

func hangup(reason string) *Decision {
	return &Decision{
		Success: false,
		CCML:    ccml.Hangup(),
		Kind:    KindHangup,
		Reason:  reason,
	}
}
