package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxroute/voxroute/ent"
	"github.com/voxroute/voxroute/ent/agentgroup"
	"github.com/voxroute/voxroute/ent/inboundrule"
	"github.com/voxroute/voxroute/pkg/routing"
	testdb "github.com/voxroute/voxroute/test/database"
)

func TestDirectoryService_InboundRules(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDirectoryService(client.Client, staticEncryptor{})
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client)
	other := createTestTenant(t, client.Client)

	mkRule := func(tenantID, pattern string, priority int) *ent.InboundRule {
		r, err := client.InboundRule.Create().
			SetID(uuid.NewString()).
			SetTenantID(tenantID).
			SetPattern(pattern).
			SetTargetKind(inboundrule.TargetKindAgent).
			SetTargetID("agent-1").
			SetPriority(priority).
			Save(ctx)
		require.NoError(t, err)
		return r
	}

	low := mkRule(tenant.ID, "+1555", 10)
	high := mkRule(tenant.ID, "+15550001111", 100)
	mkRule(other.ID, "+1555", 999)

	rules, err := service.InboundRules(ctx, tenant.ID)
	require.NoError(t, err)
	require.Len(t, rules, 2)

	// Priority descending; the other tenant's rule never leaks in.
	assert.Equal(t, high.ID, rules[0].ID)
	assert.Equal(t, low.ID, rules[1].ID)
	assert.Equal(t, routing.TargetAgent, rules[0].TargetKind)
}

func TestDirectoryService_AgentDecryptsCredentials(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDirectoryService(client.Client, staticEncryptor{})
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client)
	row, err := client.VoiceAgent.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenant.ID).
		SetName("support-line").
		SetProvider("sip").
		SetServiceValue("sip:support@pbx.example.com").
		SetUsernameCipher("enc:support").
		SetPasswordCipher("enc:s3cret").
		Save(ctx)
	require.NoError(t, err)

	agent, err := service.Agent(ctx, tenant.ID, row.ID)
	require.NoError(t, err)
	assert.Equal(t, "support", agent.Username)
	assert.Equal(t, "s3cret", agent.Password)

	t.Run("tenant guard", func(t *testing.T) {
		other := createTestTenant(t, client.Client)
		_, err := service.Agent(ctx, other.ID, row.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDirectoryService_Group(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDirectoryService(client.Client, staticEncryptor{})
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client)
	a1 := createTestAgent(t, client.Client, tenant.ID, "alpha")
	a2 := createTestAgent(t, client.Client, tenant.ID, "bravo")

	group, err := client.AgentGroup.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenant.ID).
		SetName("after-hours").
		SetStrategy(agentgroup.StrategyLoadBalanced).
		SetStrategySettings(map[string]interface{}{
			"window_hours":         float64(4),
			"max_calls_per_agent":  float64(20),
			"weighted_by_capacity": true,
		}).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.GroupMember.Create().
		SetID(uuid.NewString()).
		SetGroupID(group.ID).
		SetAgentID(a1.ID).
		SetPriority(80).
		SetCapacity(5).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.GroupMember.Create().
		SetID(uuid.NewString()).
		SetGroupID(group.ID).
		SetAgentID(a2.ID).
		SetPriority(40).
		Save(ctx)
	require.NoError(t, err)

	g, err := service.Group(ctx, tenant.ID, group.ID)
	require.NoError(t, err)
	assert.Equal(t, "load_balanced", g.Strategy)
	assert.Equal(t, 4, g.Settings.WindowHours)
	assert.Equal(t, 20, g.Settings.MaxCallsPerAgent)
	assert.True(t, g.Settings.WeightedByCapacity)

	require.Len(t, g.Members, 2)
	assert.Equal(t, a1.ID, g.Members[0].Agent.ID)
	assert.Equal(t, 80, g.Members[0].Priority)
	require.NotNil(t, g.Members[0].Capacity)
	assert.Equal(t, 5, *g.Members[0].Capacity)
	assert.Nil(t, g.Members[1].Capacity)
}

func TestDirectoryService_Trunks(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDirectoryService(client.Client, staticEncryptor{})
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client)

	mkTrunk := func(carrierID string, priority int, isDefault, enabled bool) *ent.Trunk {
		tr, err := client.Trunk.Create().
			SetID(uuid.NewString()).
			SetTenantID(tenant.ID).
			SetCarrierTrunkID(carrierID).
			SetPriority(priority).
			SetIsDefault(isDefault).
			SetEnabled(enabled).
			Save(ctx)
		require.NoError(t, err)
		return tr
	}

	t1 := mkTrunk("trk-east", 10, false, true)
	t2 := mkTrunk("trk-west", 20, false, true)

	t.Run("preserves the requested order", func(t *testing.T) {
		trunks, err := service.Trunks(ctx, tenant.ID, []string{t2.ID, t1.ID, "missing"})
		require.NoError(t, err)
		require.Len(t, trunks, 2)
		assert.Equal(t, "trk-west", trunks[0].CarrierTrunkID)
		assert.Equal(t, "trk-east", trunks[1].CarrierTrunkID)
	})

	t.Run("no default trunk", func(t *testing.T) {
		trunk, err := service.DefaultTrunk(ctx, tenant.ID)
		require.NoError(t, err)
		assert.Nil(t, trunk)
	})

	t.Run("highest priority default wins", func(t *testing.T) {
		mkTrunk("trk-default-low", 1, true, true)
		mkTrunk("trk-default-high", 5, true, true)
		mkTrunk("trk-default-disabled", 99, true, false)

		trunk, err := service.DefaultTrunk(ctx, tenant.ID)
		require.NoError(t, err)
		require.NotNil(t, trunk)
		assert.Equal(t, "trk-default-high", trunk.CarrierTrunkID)
	})
}
