package routing

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/voxroute/voxroute/pkg/store"
)

// defaultWindowHours is the rolling window when the group doesn't set one.
const defaultWindowHours = 1

// loadBalanced selects the agent with the fewest calls in the rolling
// window. Per-agent call timestamps live in a sorted set; counts read under
// concurrent updates may be slightly stale. Exceeding max_calls_per_agent
// is never acceptable, staleness in the ordering is.
type loadBalanced struct {
	store *store.Store
}

func (s *loadBalanced) Name() string { return StrategyLoadBalanced }

func (s *loadBalanced) window(g *Group) time.Duration {
	hours := g.Settings.WindowHours
	if hours <= 0 {
		hours = defaultWindowHours
	}
	return time.Duration(hours) * time.Hour
}

func (s *loadBalanced) Select(ctx context.Context, g *Group) (*Agent, error) {
	members := g.EnabledMembers()
	if len(members) == 0 {
		return nil, nil
	}

	now := time.Now()
	min := float64(now.Add(-s.window(g)).Unix())

	best := int64(math.MaxInt64)
	var candidates []*Agent
	for _, m := range members {
		count, err := s.store.ZCount(ctx,
			lbCallsKey(g.TenantID, g.ID, m.Agent.ID), min, math.MaxFloat64)
		if err != nil {
			return nil, fmt.Errorf("failed to read call window for agent %s: %w", m.Agent.ID, err)
		}
		if g.Settings.MaxCallsPerAgent > 0 && count >= int64(g.Settings.MaxCallsPerAgent) {
			// At capacity, unavailable for this window.
			continue
		}
		switch {
		case count < best:
			best = count
			candidates = []*Agent{m.Agent}
		case count == best:
			candidates = append(candidates, m.Agent)
		}
	}

	if len(candidates) == 0 {
		return nil, nil
	}
	// Ties broken uniformly at random.
	return candidates[rand.IntN(len(candidates))], nil
}

func (s *loadBalanced) Record(ctx context.Context, g *Group, agent *Agent) error {
	now := time.Now()
	key := lbCallsKey(g.TenantID, g.ID, agent.ID)
	if err := s.store.ZAdd(ctx, key, float64(now.Unix()), uuid.New().String()); err != nil {
		return fmt.Errorf("failed to record call: %w", err)
	}
	window := s.window(g)
	if err := s.store.ZRemRangeByScore(ctx, key, 0, float64(now.Add(-window).Unix())); err != nil {
		return fmt.Errorf("failed to trim call window: %w", err)
	}
	return s.store.Expire(ctx, key, window+time.Hour)
}
