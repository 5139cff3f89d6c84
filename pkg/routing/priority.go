package routing

import (
	"context"
	"sort"

	"github.com/voxroute/voxroute/pkg/store"
)

// priority selects the enabled member with the highest priority. Failover is
// implicit: disabled members are filtered out before selection, so the next
// priority tier is tried automatically. Ties within a tier rotate through a
// store pointer when round_robin_same_priority is set, otherwise insertion
// order wins.
type priority struct {
	store *store.Store
}

func (s *priority) Name() string { return StrategyPriority }

func (s *priority) Select(ctx context.Context, g *Group) (*Agent, error) {
	members := g.EnabledMembers()
	if len(members) == 0 {
		return nil, nil
	}

	// Stable sort keeps insertion order within a tier.
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Priority > members[j].Priority
	})

	top := members[0].Priority
	tier := members[:0:0]
	for _, m := range members {
		if m.Priority == top {
			tier = append(tier, m)
		}
	}

	if len(tier) == 1 || !g.Settings.RoundRobinSamePriority {
		return tier[0].Agent, nil
	}

	n, err := s.store.Incr(ctx, prioPointerKey(g.TenantID, g.ID, top))
	if err != nil {
		return nil, err
	}
	return tier[(n-1)%int64(len(tier))].Agent, nil
}

func (s *priority) Record(ctx context.Context, g *Group, agent *Agent) error {
	// Selection state advances in Select; nothing to record.
	return nil
}
