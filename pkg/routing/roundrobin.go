package routing

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/voxroute/voxroute/pkg/store"
)

// roundRobin cycles through the group's enabled members with a monotonic
// pointer in the store. The pointer advances via atomic fetch-and-increment
// so concurrent webhooks never skip a slot (two concurrent selections get
// distinct slots; a slot is never lost).
//
// When weighted_by_capacity is set, the pointer walks a weighted cycle of
// Σ capacities slots, capacity nil counting as 1.
//
// A change-detection key holds the sorted member ids; when the membership
// changes the pointers are reset to zero via compare-and-swap, so only one
// worker performs the reset.
type roundRobin struct {
	store *store.Store
}

func (s *roundRobin) Name() string { return StrategyRoundRobin }

func (s *roundRobin) Select(ctx context.Context, g *Group) (*Agent, error) {
	members := g.EnabledMembers()
	if len(members) == 0 {
		return nil, nil
	}

	if err := s.resetOnMembershipChange(ctx, g, members); err != nil {
		return nil, err
	}

	if g.Settings.WeightedByCapacity {
		return s.selectWeighted(ctx, g, members)
	}

	n, err := s.store.Incr(ctx, rrPointerKey(g.TenantID, g.ID))
	if err != nil {
		return nil, err
	}
	return members[(n-1)%int64(len(members))].Agent, nil
}

func (s *roundRobin) selectWeighted(ctx context.Context, g *Group, members []Member) (*Agent, error) {
	total := 0
	for _, m := range members {
		w := m.Weight()
		if w <= 0 {
			// Capacity 0 under weighting is a configuration error the
			// operator API must reject; refuse rather than divide by zero.
			return nil, fmt.Errorf("member %s has zero capacity under weighted rotation", m.Agent.ID)
		}
		total += w
	}

	n, err := s.store.Incr(ctx, rrWeightedPosKey(g.TenantID, g.ID))
	if err != nil {
		return nil, err
	}
	pos := (n - 1) % int64(total)

	cum := int64(0)
	for _, m := range members {
		cum += int64(m.Weight())
		if pos < cum {
			return m.Agent, nil
		}
	}
	// Unreachable: pos < total == cum after the loop.
	return members[len(members)-1].Agent, nil
}

// resetOnMembershipChange compares the current sorted member-id list with
// the stored one and resets both pointers when they differ. The CAS ensures
// a single resetter under concurrency; losing the race means the winner
// already reset.
func (s *roundRobin) resetOnMembershipChange(ctx context.Context, g *Group, members []Member) error {
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.Agent.ID
	}
	sort.Strings(ids)
	current := strings.Join(ids, ",")

	stored, err := s.store.Get(ctx, rrAgentsKey(g.TenantID, g.ID))
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	if stored == current {
		return nil
	}

	swapped, err := s.store.CompareAndSwap(ctx, rrAgentsKey(g.TenantID, g.ID), stored, current)
	if err != nil {
		return err
	}
	if swapped {
		if err := s.store.Del(ctx, rrPointerKey(g.TenantID, g.ID), rrWeightedPosKey(g.TenantID, g.ID)); err != nil {
			return err
		}
	}
	return nil
}

func (s *roundRobin) Record(ctx context.Context, g *Group, agent *Agent) error {
	// The pointer advanced atomically in Select; nothing to record.
	return nil
}
