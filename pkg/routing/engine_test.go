package routing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxroute/voxroute/pkg/ccml"
)

// fakeDirectory serves canned routing configuration for tenant t1.
type fakeDirectory struct {
	inbound  []InboundRule
	outbound []OutboundRule
	agents   map[string]*Agent
	groups   map[string]*Group
	trunks   map[string]Trunk
	dflt     *Trunk
	err      error
}

func (d *fakeDirectory) InboundRules(_ context.Context, _ string) ([]InboundRule, error) {
	return d.inbound, d.err
}

func (d *fakeDirectory) OutboundRules(_ context.Context, _ string) ([]OutboundRule, error) {
	return d.outbound, d.err
}

func (d *fakeDirectory) Agent(_ context.Context, _, id string) (*Agent, error) {
	a, ok := d.agents[id]
	if !ok {
		return nil, errors.New("agent not found")
	}
	return a, nil
}

func (d *fakeDirectory) Group(_ context.Context, _, id string) (*Group, error) {
	g, ok := d.groups[id]
	if !ok {
		return nil, errors.New("group not found")
	}
	return g, nil
}

func (d *fakeDirectory) Trunks(_ context.Context, _ string, ids []string) ([]Trunk, error) {
	out := make([]Trunk, 0, len(ids))
	for _, id := range ids {
		if tk, ok := d.trunks[id]; ok {
			out = append(out, tk)
		}
	}
	return out, nil
}

func (d *fakeDirectory) DefaultTrunk(_ context.Context, _ string) (*Trunk, error) {
	return d.dflt, nil
}

func testCall() Call {
	return Call{
		TenantID:     "t1",
		SessionToken: "s1",
		CallerID:     "+1999",
		Destination:  "+1234567890",
	}
}

func TestRouteToAgent(t *testing.T) {
	dir := &fakeDirectory{
		inbound: []InboundRule{
			{ID: "r1", Pattern: "+1234567890", TargetKind: TargetAgent, TargetID: "a1", Priority: 1, Enabled: true},
		},
		agents: map[string]*Agent{
			"a1": {ID: "a1", Provider: "vapi", ServiceValue: "asst_1", Enabled: true},
		},
	}
	e := NewEngine(dir, newTestStore(t))

	d := e.Route(context.Background(), testCall())
	require.True(t, d.Success)
	assert.Equal(t, KindVoiceAgent, d.Kind)
	assert.Contains(t, d.CCML, `<Service provider="vapi">asst_1</Service>`)
	assert.Contains(t, d.CCML, `callerId="+1999"`)
	require.NoError(t, ccml.Validate(d.CCML))
}

func TestRouteToDisabledAgentHangsUp(t *testing.T) {
	dir := &fakeDirectory{
		inbound: []InboundRule{
			{ID: "r1", Pattern: "+1234567890", TargetKind: TargetAgent, TargetID: "a1", Priority: 1, Enabled: true},
		},
		agents: map[string]*Agent{
			"a1": {ID: "a1", Provider: "vapi", ServiceValue: "asst_1", Enabled: false},
		},
	}
	e := NewEngine(dir, newTestStore(t))

	d := e.Route(context.Background(), testCall())
	assert.False(t, d.Success)
	assert.Equal(t, KindHangup, d.Kind)
	assert.Equal(t, ccml.Hangup(), d.CCML)
}

func TestRouteGroupRoundRobinOrder(t *testing.T) {
	g := testGroup(StrategyRoundRobin, StrategySettings{},
		member("a1", 50, nil), member("a2", 50, nil), member("a3", 50, nil))
	dir := &fakeDirectory{
		inbound: []InboundRule{
			{ID: "r1", Pattern: "+1234567890", TargetKind: TargetGroup, TargetID: "g1", Priority: 1, Enabled: true},
		},
		groups: map[string]*Group{"g1": g},
	}
	e := NewEngine(dir, newTestStore(t))

	// Three sequential calls with distinct sessions route in insertion order.
	var selected []string
	for i, token := range []string{"s1", "s2", "s3"} {
		call := testCall()
		call.SessionToken = token
		d := e.Route(context.Background(), call)
		require.True(t, d.Success, "call %d", i)
		assert.Equal(t, KindAgentGroup, d.Kind)
		selected = append(selected, d.SelectedAgent.ID)
	}
	assert.Equal(t, []string{"a1", "a2", "a3"}, selected)
}

func TestRouteGroupPriorityFailover(t *testing.T) {
	top := member("a", 100, nil)
	top.Agent.Enabled = false
	top.Agent.ServiceValue = "asst_a"
	b := member("b", 50, nil)
	b.Agent.ServiceValue = "asst_b"

	g := testGroup(StrategyPriority, StrategySettings{}, top, b)
	dir := &fakeDirectory{
		inbound: []InboundRule{
			{ID: "r1", Pattern: "+1234567890", TargetKind: TargetGroup, TargetID: "g1", Priority: 1, Enabled: true},
		},
		groups: map[string]*Group{"g1": g},
	}
	e := NewEngine(dir, newTestStore(t))

	d := e.Route(context.Background(), testCall())
	require.True(t, d.Success)
	assert.Equal(t, "b", d.SelectedAgent.ID)
	assert.Contains(t, d.CCML, "asst_b")
}

func TestRouteNoMatchHangsUp(t *testing.T) {
	e := NewEngine(&fakeDirectory{}, newTestStore(t))
	d := e.Route(context.Background(), testCall())
	assert.False(t, d.Success)
	assert.Equal(t, KindHangup, d.Kind)
	assert.Equal(t, `<?xml version="1.0" encoding="UTF-8"?><Response><Hangup/></Response>`, d.CCML)
}

func TestRouteDisabledGroupHangsUp(t *testing.T) {
	g := testGroup(StrategyRoundRobin, StrategySettings{}, member("a1", 50, nil))
	g.Enabled = false
	dir := &fakeDirectory{
		inbound: []InboundRule{
			{ID: "r1", Pattern: "+1234567890", TargetKind: TargetGroup, TargetID: "g1", Priority: 1, Enabled: true},
		},
		groups: map[string]*Group{"g1": g},
	}
	e := NewEngine(dir, newTestStore(t))

	d := e.Route(context.Background(), testCall())
	assert.Equal(t, KindHangup, d.Kind)
}

func TestRouteOutboundRuleTrunk(t *testing.T) {
	dir := &fakeDirectory{
		outbound: []OutboundRule{
			{
				ID: "o1", CallerID: "+1999", DestinationPattern: "49", Enabled: true,
				TrunkConfig: TrunkConfig{TrunkIDs: []string{"tk-dead", "tk-live"}, RingTimeout: 25},
			},
		},
		trunks: map[string]Trunk{
			"tk-dead": {ID: "tk-dead", CarrierTrunkID: "ct-dead", Enabled: false},
			"tk-live": {ID: "tk-live", CarrierTrunkID: "ct-live", Enabled: true},
		},
	}
	e := NewEngine(dir, newTestStore(t))

	call := testCall()
	call.Destination = "+4930123456"
	d := e.Route(context.Background(), call)
	require.True(t, d.Success)
	assert.Equal(t, KindOutboundRule, d.Kind)
	assert.Equal(t, "tk-live", d.SelectedTrunk.ID)
	assert.Contains(t, d.CCML, `trunks="ct-live"`)
	assert.Contains(t, d.CCML, `timeout="25"`)
	assert.Contains(t, d.CCML, `<Number>+4930123456</Number>`)
	require.NoError(t, ccml.Validate(d.CCML))
}

func TestRouteOutboundDefaultTrunkFallback(t *testing.T) {
	dir := &fakeDirectory{
		outbound: []OutboundRule{
			{ID: "o1", CallerID: "+1999", DestinationPattern: "49", Enabled: true},
		},
		dflt: &Trunk{ID: "tk-def", CarrierTrunkID: "ct-def", Enabled: true, IsDefault: true},
	}
	e := NewEngine(dir, newTestStore(t))

	call := testCall()
	call.Destination = "+4930123456"
	d := e.Route(context.Background(), call)
	require.True(t, d.Success)
	assert.Equal(t, KindDefaultTrunk, d.Kind)
	assert.Contains(t, d.CCML, `trunks="ct-def"`)
}

func TestRouteOutboundNoTrunkHangsUp(t *testing.T) {
	dir := &fakeDirectory{
		outbound: []OutboundRule{
			{ID: "o1", CallerID: "+1999", DestinationPattern: "49", Enabled: true},
		},
	}
	e := NewEngine(dir, newTestStore(t))

	call := testCall()
	call.Destination = "+4930123456"
	d := e.Route(context.Background(), call)
	assert.Equal(t, KindHangup, d.Kind)
}

func TestRouteDirectoryErrorHangsUp(t *testing.T) {
	e := NewEngine(&fakeDirectory{err: errors.New("db down")}, newTestStore(t))
	d := e.Route(context.Background(), testCall())
	assert.False(t, d.Success)
	assert.Equal(t, KindHangup, d.Kind)
	require.NoError(t, ccml.Validate(d.CCML))
}
