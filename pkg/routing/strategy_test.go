package routing

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxroute/voxroute/pkg/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	mr := miniredis.RunT(t)
	s := store.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func intp(v int) *int { return &v }

func testGroup(strategy string, settings StrategySettings, members ...Member) *Group {
	return &Group{
		ID:       "g1",
		TenantID: "t1",
		Name:     "support",
		Strategy: strategy,
		Settings: settings,
		Enabled:  true,
		Members:  members,
	}
}

func member(id string, priority int, capacity *int) Member {
	return Member{
		Agent: &Agent{
			ID: id, Name: id, Provider: "vapi", ServiceValue: "asst_" + id, Enabled: true,
		},
		Priority: priority,
		Capacity: capacity,
	}
}

func TestNewStrategy(t *testing.T) {
	st := newTestStore(t)
	for _, tag := range []string{StrategyLoadBalanced, StrategyPriority, StrategyRoundRobin} {
		s, err := NewStrategy(tag, st)
		require.NoError(t, err)
		assert.Equal(t, tag, s.Name())
	}
	_, err := NewStrategy("bogus", st)
	assert.Error(t, err)
}

func TestSelectReturnsNilWithoutEnabledMembers(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	disabled := member("a1", 50, nil)
	disabled.Agent.Enabled = false

	for _, tag := range []string{StrategyLoadBalanced, StrategyPriority, StrategyRoundRobin} {
		s, err := NewStrategy(tag, st)
		require.NoError(t, err)

		got, err := s.Select(ctx, testGroup(tag, StrategySettings{}))
		require.NoError(t, err)
		assert.Nil(t, got, "%s: empty group", tag)

		got, err = s.Select(ctx, testGroup(tag, StrategySettings{}, disabled))
		require.NoError(t, err)
		assert.Nil(t, got, "%s: all members disabled", tag)
	}
}

func TestRoundRobinCycles(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	s, err := NewStrategy(StrategyRoundRobin, st)
	require.NoError(t, err)

	g := testGroup(StrategyRoundRobin, StrategySettings{},
		member("a1", 50, nil), member("a2", 50, nil), member("a3", 50, nil))

	// Exactly N selections per agent over 3·N rounds, in insertion order.
	counts := map[string]int{}
	var order []string
	for i := 0; i < 9; i++ {
		got, err := s.Select(ctx, g)
		require.NoError(t, err)
		require.NotNil(t, got)
		counts[got.ID]++
		order = append(order, got.ID)
	}
	assert.Equal(t, map[string]int{"a1": 3, "a2": 3, "a3": 3}, counts)
	assert.Equal(t, []string{"a1", "a2", "a3"}, order[:3])
}

func TestRoundRobinResetsOnMembershipChange(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	s, err := NewStrategy(StrategyRoundRobin, st)
	require.NoError(t, err)

	g := testGroup(StrategyRoundRobin, StrategySettings{},
		member("a1", 50, nil), member("a2", 50, nil))

	got, err := s.Select(ctx, g)
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)
	got, err = s.Select(ctx, g)
	require.NoError(t, err)
	assert.Equal(t, "a2", got.ID)

	// New member — the pointer resets and the cycle restarts.
	g.Members = append(g.Members, member("a3", 50, nil))
	got, err = s.Select(ctx, g)
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)
}

func TestRoundRobinWeighted(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	s, err := NewStrategy(StrategyRoundRobin, st)
	require.NoError(t, err)

	g := testGroup(StrategyRoundRobin, StrategySettings{WeightedByCapacity: true},
		member("a1", 50, intp(2)), member("a2", 50, intp(1)))

	counts := map[string]int{}
	for i := 0; i < 9; i++ {
		got, err := s.Select(ctx, g)
		require.NoError(t, err)
		counts[got.ID]++
	}
	// Weights 2:1 over 3 full cycles.
	assert.Equal(t, 6, counts["a1"])
	assert.Equal(t, 3, counts["a2"])
}

func TestRoundRobinWeightedNilCapacityDefaultsToOne(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	s, err := NewStrategy(StrategyRoundRobin, st)
	require.NoError(t, err)

	g := testGroup(StrategyRoundRobin, StrategySettings{WeightedByCapacity: true},
		member("a1", 50, intp(3)), member("a2", 50, nil))

	counts := map[string]int{}
	for i := 0; i < 8; i++ {
		got, err := s.Select(ctx, g)
		require.NoError(t, err)
		counts[got.ID]++
	}
	assert.Equal(t, 6, counts["a1"])
	assert.Equal(t, 2, counts["a2"])
}

func TestPrioritySelectsHighest(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	s, err := NewStrategy(StrategyPriority, st)
	require.NoError(t, err)

	g := testGroup(StrategyPriority, StrategySettings{},
		member("low", 10, nil), member("high", 100, nil), member("mid", 50, nil))

	got, err := s.Select(ctx, g)
	require.NoError(t, err)
	assert.Equal(t, "high", got.ID)
}

func TestPriorityFailover(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	s, err := NewStrategy(StrategyPriority, st)
	require.NoError(t, err)

	top := member("a", 100, nil)
	top.Agent.Enabled = false
	g := testGroup(StrategyPriority, StrategySettings{}, top, member("b", 50, nil))

	got, err := s.Select(ctx, g)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "b", got.ID)
}

func TestPriorityTieInsertionOrder(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	s, err := NewStrategy(StrategyPriority, st)
	require.NoError(t, err)

	g := testGroup(StrategyPriority, StrategySettings{},
		member("first", 80, nil), member("second", 80, nil))

	for i := 0; i < 3; i++ {
		got, err := s.Select(ctx, g)
		require.NoError(t, err)
		assert.Equal(t, "first", got.ID)
	}
}

func TestPriorityTieRotation(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	s, err := NewStrategy(StrategyPriority, st)
	require.NoError(t, err)

	g := testGroup(StrategyPriority, StrategySettings{RoundRobinSamePriority: true},
		member("first", 80, nil), member("second", 80, nil), member("low", 10, nil))

	var order []string
	for i := 0; i < 4; i++ {
		got, err := s.Select(ctx, g)
		require.NoError(t, err)
		order = append(order, got.ID)
	}
	assert.Equal(t, []string{"first", "second", "first", "second"}, order)
}

func TestLoadBalancedPicksLeastLoaded(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	s, err := NewStrategy(StrategyLoadBalanced, st)
	require.NoError(t, err)

	g := testGroup(StrategyLoadBalanced, StrategySettings{WindowHours: 1},
		member("busy", 50, nil), member("idle", 50, nil))

	busy := g.Members[0].Agent
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(ctx, g, busy))
	}

	for i := 0; i < 3; i++ {
		got, err := s.Select(ctx, g)
		require.NoError(t, err)
		assert.Equal(t, "idle", got.ID)
	}
}

func TestLoadBalancedRespectsMaxCalls(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	s, err := NewStrategy(StrategyLoadBalanced, st)
	require.NoError(t, err)

	g := testGroup(StrategyLoadBalanced, StrategySettings{WindowHours: 1, MaxCallsPerAgent: 2},
		member("a1", 50, nil), member("a2", 50, nil))

	// Saturate both agents.
	for _, m := range g.Members {
		require.NoError(t, s.Record(ctx, g, m.Agent))
		require.NoError(t, s.Record(ctx, g, m.Agent))
	}

	got, err := s.Select(ctx, g)
	require.NoError(t, err)
	assert.Nil(t, got, "all agents at capacity must yield no selection")
}

func TestLoadBalancedConverges(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	s, err := NewStrategy(StrategyLoadBalanced, st)
	require.NoError(t, err)

	g := testGroup(StrategyLoadBalanced, StrategySettings{WindowHours: 1},
		member("a1", 50, nil), member("a2", 50, nil), member("a3", 50, nil))

	const rounds = 300
	counts := map[string]int{}
	for i := 0; i < rounds; i++ {
		got, err := s.Select(ctx, g)
		require.NoError(t, err)
		require.NotNil(t, got)
		counts[got.ID]++
		require.NoError(t, s.Record(ctx, g, got))
	}

	// Select-then-record keeps loads within one call of each other, so each
	// share stays close to 1/3.
	for id, n := range counts {
		assert.InDelta(t, rounds/3, n, 2, "agent %s share drifted", id)
	}
}

func TestRandomPick(t *testing.T) {
	g := testGroup(StrategyRoundRobin, StrategySettings{},
		member("a1", 50, nil), member("a2", 50, nil))
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		a := RandomPick(g)
		require.NotNil(t, a)
		seen[a.ID] = true
	}
	assert.True(t, seen["a1"] || seen["a2"])

	empty := testGroup(StrategyRoundRobin, StrategySettings{})
	assert.Nil(t, RandomPick(empty))
}
