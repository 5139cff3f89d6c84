package routing

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/voxroute/voxroute/pkg/store"
)

// Strategy picks one member of a group for a call. Implementations must be
// safe under concurrent calls from parallel webhook workers: all shared
// state lives in the store and is mutated atomically, never via read-then-
// write. Select returns (nil, nil) iff the group has no usable member.
type Strategy interface {
	// Name returns the strategy tag.
	Name() string
	// Select picks an agent for the next call.
	Select(ctx context.Context, g *Group) (*Agent, error)
	// Record notes that a call was routed to the agent. Called after the
	// CCML response was successfully synthesized.
	Record(ctx context.Context, g *Group, agent *Agent) error
}

// NewStrategy returns the strategy for a group's tag.
func NewStrategy(tag string, st *store.Store) (Strategy, error) {
	switch tag {
	case StrategyLoadBalanced:
		return &loadBalanced{store: st}, nil
	case StrategyPriority:
		return &priority{store: st}, nil
	case StrategyRoundRobin:
		return &roundRobin{store: st}, nil
	default:
		return nil, fmt.Errorf("unknown distribution strategy %q", tag)
	}
}

// RandomPick is the degraded-mode fallback when the store is unavailable:
// a uniform choice from the enabled members. Worse distribution beats a
// dropped call.
func RandomPick(g *Group) *Agent {
	members := g.EnabledMembers()
	if len(members) == 0 {
		return nil
	}
	return members[rand.IntN(len(members))].Agent
}

// Store key shapes. All strategy state is tenant-scoped.

func lbCallsKey(tenantID, groupID, agentID string) string {
	return fmt.Sprintf("tenant:%s:group:%s:load_balanced:calls:%s", tenantID, groupID, agentID)
}

func rrPointerKey(tenantID, groupID string) string {
	return fmt.Sprintf("tenant:%s:group:%s:round_robin:pointer", tenantID, groupID)
}

func rrWeightedPosKey(tenantID, groupID string) string {
	return fmt.Sprintf("tenant:%s:group:%s:round_robin:weighted_pos", tenantID, groupID)
}

func rrAgentsKey(tenantID, groupID string) string {
	return fmt.Sprintf("tenant:%s:group:%s:round_robin:agents", tenantID, groupID)
}

func prioPointerKey(tenantID, groupID string, priority int) string {
	return fmt.Sprintf("tenant:%s:group:%s:priority:%d:pointer", tenantID, groupID, priority)
}
