// Package routing implements the routing decision engine: pattern-matched
// rule evaluation plus distribution-strategy selection of a concrete agent.
package routing

import (
	"github.com/voxroute/voxroute/pkg/ccml"
)

// Agent is the routing view of a voice agent. Credentials are already
// decrypted by the directory; they exist only to be handed to the CCML
// synthesizer and are never logged.
type Agent struct {
	ID           string
	Name         string
	Provider     string
	ServiceValue string
	Username     string
	Password     string
	Enabled      bool
}

// Endpoint converts the agent into the synthesizer's input.
func (a *Agent) Endpoint() ccml.AgentEndpoint {
	return ccml.AgentEndpoint{
		Provider:     a.Provider,
		ServiceValue: a.ServiceValue,
		Username:     a.Username,
		Password:     a.Password,
	}
}

// Member is a group membership: the relation between a group and an agent.
// Capacity nil means unlimited.
type Member struct {
	Agent    *Agent
	Priority int
	Capacity *int
}

// Weight is the member's share in a weighted round-robin cycle.
// Capacity nil defaults to 1; capacity 0 is rejected at configuration time.
func (m *Member) Weight() int {
	if m.Capacity == nil {
		return 1
	}
	return *m.Capacity
}

// StrategySettings are the per-strategy knobs stored on the group.
type StrategySettings struct {
	WindowHours            int  // load_balanced: rolling window, default 1h
	MaxCallsPerAgent       int  // load_balanced: 0 = unlimited
	RoundRobinSamePriority bool // priority: rotate among equal priorities
	WeightedByCapacity     bool // round_robin: weight slots by capacity
}

// Strategy tags, matching the agent_groups.strategy enum.
const (
	StrategyLoadBalanced = "load_balanced"
	StrategyPriority     = "priority"
	StrategyRoundRobin   = "round_robin"
)

// Group is the routing view of an agent group with its members loaded.
// Members are in insertion order.
type Group struct {
	ID       string
	TenantID string
	Name     string
	Strategy string
	Settings StrategySettings
	Enabled  bool
	Members  []Member
}

// EnabledMembers returns the members whose agents are enabled, preserving
// insertion order.
func (g *Group) EnabledMembers() []Member {
	out := make([]Member, 0, len(g.Members))
	for _, m := range g.Members {
		if m.Agent != nil && m.Agent.Enabled {
			out = append(out, m)
		}
	}
	return out
}

// CanRoute reports whether the group may take calls: enabled with at least
// one enabled member.
func (g *Group) CanRoute() bool {
	return g.Enabled && len(g.EnabledMembers()) > 0
}

// TargetKind discriminates an inbound rule's target.
type TargetKind string

const (
	TargetAgent TargetKind = "agent"
	TargetGroup TargetKind = "group"
)

// InboundRule is the routing view of an inbound rule.
type InboundRule struct {
	ID         string
	Pattern    string
	TargetKind TargetKind
	TargetID   string
	Priority   int
	Enabled    bool
}

// TrunkConfig is the outbound rule's trunk selection block.
type TrunkConfig struct {
	TrunkIDs    []string
	RingTimeout int
	MaxDuration int
	Priority    int
}

// OutboundRule is the routing view of an outbound rule.
type OutboundRule struct {
	ID                 string
	CallerID           string
	DestinationPattern string
	TrunkConfig        TrunkConfig
	Priority           int
	Enabled            bool
}

// Trunk is the routing view of an outbound trunk.
type Trunk struct {
	ID             string
	CarrierTrunkID string
	Priority       int
	Enabled        bool
	IsDefault      bool
}
