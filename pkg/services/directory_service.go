package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/voxroute/voxroute/ent"
	"github.com/voxroute/voxroute/ent/agentgroup"
	"github.com/voxroute/voxroute/ent/groupmember"
	"github.com/voxroute/voxroute/ent/inboundrule"
	"github.com/voxroute/voxroute/ent/outboundrule"
	"github.com/voxroute/voxroute/ent/trunk"
	"github.com/voxroute/voxroute/ent/voiceagent"
	"github.com/voxroute/voxroute/pkg/routing"
)

// Encryptor is the external credential-encryption collaborator. The engine
// never persists cleartext and never logs credentials.
type Encryptor interface {
	Encrypt(plain string) (string, error)
	Decrypt(cipher string) (string, error)
}

// DirectoryService loads routing configuration for the decision engine.
// Implements routing.Directory: every query is parameterized by tenant, so
// cross-tenant reads are impossible by construction.
type DirectoryService struct {
	client    *ent.Client
	encryptor Encryptor
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(client *ent.Client, encryptor Encryptor) *DirectoryService {
	return &DirectoryService{client: client, encryptor: encryptor}
}

// InboundRules returns the tenant's inbound rules ordered by priority
// descending, ties by id ascending.
func (s *DirectoryService) InboundRules(ctx context.Context, tenantID string) ([]routing.InboundRule, error) {
	rows, err := s.client.InboundRule.Query().
		Where(inboundrule.TenantID(tenantID)).
		Order(ent.Desc(inboundrule.FieldPriority), ent.Asc(inboundrule.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inbound rules: %w", err)
	}

	rules := make([]routing.InboundRule, 0, len(rows))
	for _, r := range rows {
		rules = append(rules, routing.InboundRule{
			ID:         r.ID,
			Pattern:    r.Pattern,
			TargetKind: routing.TargetKind(r.TargetKind),
			TargetID:   r.TargetID,
			Priority:   r.Priority,
			Enabled:    r.Enabled,
		})
	}
	return rules, nil
}

// OutboundRules returns the tenant's outbound rules ordered by priority
// descending, ties by id ascending.
func (s *DirectoryService) OutboundRules(ctx context.Context, tenantID string) ([]routing.OutboundRule, error) {
	rows, err := s.client.OutboundRule.Query().
		Where(outboundrule.TenantID(tenantID)).
		Order(ent.Desc(outboundrule.FieldPriority), ent.Asc(outboundrule.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load outbound rules: %w", err)
	}

	rules := make([]routing.OutboundRule, 0, len(rows))
	for _, r := range rows {
		rules = append(rules, routing.OutboundRule{
			ID:                 r.ID,
			CallerID:           r.CallerID,
			DestinationPattern: r.DestinationPattern,
			TrunkConfig:        decodeTrunkConfig(r.TrunkConfig),
			Priority:           r.Priority,
			Enabled:            r.Enabled,
		})
	}
	return rules, nil
}

// Agent returns one agent of the tenant with credentials decrypted.
func (s *DirectoryService) Agent(ctx context.Context, tenantID, agentID string) (*routing.Agent, error) {
	row, err := s.client.VoiceAgent.Query().
		Where(voiceagent.ID(agentID), voiceagent.TenantID(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load agent: %w", err)
	}
	return s.toRoutingAgent(row)
}

// Group returns one group of the tenant with its members and their agents
// loaded in insertion order.
func (s *DirectoryService) Group(ctx context.Context, tenantID, groupID string) (*routing.Group, error) {
	row, err := s.client.AgentGroup.Query().
		Where(agentgroup.ID(groupID), agentgroup.TenantID(tenantID)).
		WithMembers(func(q *ent.GroupMemberQuery) {
			q.Order(ent.Asc(groupmember.FieldID)).WithAgent()
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load group: %w", err)
	}

	g := &routing.Group{
		ID:       row.ID,
		TenantID: row.TenantID,
		Name:     row.Name,
		Strategy: string(row.Strategy),
		Settings: decodeStrategySettings(row.StrategySettings),
		Enabled:  row.Enabled,
	}
	for _, m := range row.Edges.Members {
		if m.Edges.Agent == nil {
			continue
		}
		agent, err := s.toRoutingAgent(m.Edges.Agent)
		if err != nil {
			return nil, err
		}
		g.Members = append(g.Members, routing.Member{
			Agent:    agent,
			Priority: m.Priority,
			Capacity: m.Capacity,
		})
	}
	return g, nil
}

// Trunks returns the tenant's trunks matching the given ids, in the order of
// the ids slice (the outbound rule's preference order).
func (s *DirectoryService) Trunks(ctx context.Context, tenantID string, ids []string) ([]routing.Trunk, error) {
	rows, err := s.client.Trunk.Query().
		Where(trunk.TenantID(tenantID), trunk.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load trunks: %w", err)
	}

	byID := make(map[string]*ent.Trunk, len(rows))
	for _, t := range rows {
		byID[t.ID] = t
	}
	out := make([]routing.Trunk, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			out = append(out, toRoutingTrunk(t))
		}
	}
	return out, nil
}

// DefaultTrunk returns the tenant's default trunk, or nil when none exists.
// The source tolerates multiple defaults; priority descending then id
// ascending wins.
func (s *DirectoryService) DefaultTrunk(ctx context.Context, tenantID string) (*routing.Trunk, error) {
	row, err := s.client.Trunk.Query().
		Where(
			trunk.TenantID(tenantID),
			trunk.IsDefault(true),
			trunk.Enabled(true),
		).
		Order(ent.Desc(trunk.FieldPriority), ent.Asc(trunk.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load default trunk: %w", err)
	}
	t := toRoutingTrunk(row)
	return &t, nil
}

func (s *DirectoryService) toRoutingAgent(row *ent.VoiceAgent) (*routing.Agent, error) {
	a := &routing.Agent{
		ID:           row.ID,
		Name:         row.Name,
		Provider:     row.Provider,
		ServiceValue: row.ServiceValue,
		Enabled:      row.Enabled,
	}
	if row.UsernameCipher != nil && *row.UsernameCipher != "" {
		plain, err := s.encryptor.Decrypt(*row.UsernameCipher)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt credentials for agent %s: %w", row.ID, err)
		}
		a.Username = plain
	}
	if row.PasswordCipher != nil && *row.PasswordCipher != "" {
		plain, err := s.encryptor.Decrypt(*row.PasswordCipher)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt credentials for agent %s: %w", row.ID, err)
		}
		a.Password = plain
	}
	return a, nil
}

func toRoutingTrunk(row *ent.Trunk) routing.Trunk {
	return routing.Trunk{
		ID:             row.ID,
		CarrierTrunkID: row.CarrierTrunkID,
		Priority:       row.Priority,
		Enabled:        row.Enabled,
		IsDefault:      row.IsDefault,
	}
}

// decodeStrategySettings reads the group's JSON settings blob. Unknown keys
// are ignored; malformed values are logged and fall back to defaults.
func decodeStrategySettings(raw map[string]interface{}) routing.StrategySettings {
	var s routing.StrategySettings
	s.WindowHours = intSetting(raw, "window_hours")
	s.MaxCallsPerAgent = intSetting(raw, "max_calls_per_agent")
	s.RoundRobinSamePriority = boolSetting(raw, "round_robin_same_priority")
	s.WeightedByCapacity = boolSetting(raw, "weighted_by_capacity")
	return s
}

func decodeTrunkConfig(raw map[string]interface{}) routing.TrunkConfig {
	var c routing.TrunkConfig
	if ids, ok := raw["trunk_ids"].([]interface{}); ok {
		for _, id := range ids {
			if s, ok := id.(string); ok {
				c.TrunkIDs = append(c.TrunkIDs, s)
			}
		}
	}
	c.RingTimeout = intSetting(raw, "ring_timeout")
	c.MaxDuration = intSetting(raw, "max_duration")
	c.Priority = intSetting(raw, "priority")
	return c
}

func intSetting(raw map[string]interface{}, key string) int {
	v, ok := raw[key]
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		slog.Warn("Ignoring malformed numeric setting", "key", key, "value", v)
		return 0
	}
}

func boolSetting(raw map[string]interface{}, key string) bool {
	b, _ := raw[key].(bool)
	return b
}
