package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/voxroute/voxroute/ent"
	"github.com/voxroute/voxroute/ent/callsession"
)

// SessionService manages call session persistence. Sessions are keyed by
// (tenant, session token); the token is carrier-issued and stable across
// webhooks for the same call.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// SessionAttrs carries the mutable attributes applied on upsert. Zero values
// are skipped so a sparse webhook never blanks fields a richer one set.
type SessionAttrs struct {
	CallSid     string
	Direction   string
	CallerID    string
	Destination string
	StartedAt   *time.Time
}

// UpsertByToken returns the session for the token, creating it in the
// received state when the token is new. Concurrent first-webhook races
// resolve through the unique (tenant, token) index: the loser re-reads.
func (s *SessionService) UpsertByToken(ctx context.Context, tenantID, token string, attrs SessionAttrs) (*ent.CallSession, error) {
	if tenantID == "" {
		return nil, NewValidationError("tenant_id", "required")
	}
	if token == "" {
		return nil, NewValidationError("session_token", "required")
	}

	sess, err := s.GetByToken(ctx, tenantID, token)
	if err == nil {
		return s.applyAttrs(ctx, sess, attrs)
	}
	if err != ErrNotFound {
		return nil, err
	}

	create := s.client.CallSession.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenantID).
		SetSessionToken(token)
	if attrs.CallSid != "" {
		create = create.SetCallSid(attrs.CallSid)
	}
	if attrs.Direction != "" {
		create = create.SetDirection(callsession.Direction(attrs.Direction))
	}
	if attrs.CallerID != "" {
		create = create.SetCallerID(attrs.CallerID)
	}
	if attrs.Destination != "" {
		create = create.SetDestination(attrs.Destination)
	}
	if attrs.StartedAt != nil {
		create = create.SetStartedAt(*attrs.StartedAt)
	}

	sess, err = create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the creation race; the other writer's row wins.
			return s.GetByToken(ctx, tenantID, token)
		}
		return nil, fmt.Errorf("failed to create call session: %w", err)
	}
	return sess, nil
}

// GetByToken returns the tenant's session for a carrier token.
func (s *SessionService) GetByToken(ctx context.Context, tenantID, token string) (*ent.CallSession, error) {
	sess, err := s.client.CallSession.Query().
		Where(
			callsession.TenantID(tenantID),
			callsession.SessionToken(token),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get call session: %w", err)
	}
	return sess, nil
}

// Get returns a session by id, guarded by tenant.
func (s *SessionService) Get(ctx context.Context, tenantID, sessionID string) (*ent.CallSession, error) {
	sess, err := s.client.CallSession.Query().
		Where(
			callsession.ID(sessionID),
			callsession.TenantID(tenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get call session: %w", err)
	}
	return sess, nil
}

// AssignTarget records the routing outcome on the session. groupID is empty
// when the decision targeted an agent directly. Unlike the id-keyed methods,
// this one writes through an entity the caller holds, so the tenant guard is
// explicit.
func (s *SessionService) AssignTarget(ctx context.Context, tenantID string, sess *ent.CallSession, agentID, groupID string) (*ent.CallSession, error) {
	if err := RequireTenant(sess.TenantID, tenantID); err != nil {
		return nil, err
	}
	upd := sess.Update()
	if agentID != "" {
		upd = upd.SetAgentID(agentID)
	}
	if groupID != "" {
		upd = upd.SetGroupID(groupID)
	}
	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to assign routing target: %w", err)
	}
	return updated, nil
}

func (s *SessionService) applyAttrs(ctx context.Context, sess *ent.CallSession, attrs SessionAttrs) (*ent.CallSession, error) {
	upd := sess.Update()
	dirty := false
	if attrs.CallSid != "" && sess.CallSid != attrs.CallSid {
		upd = upd.SetCallSid(attrs.CallSid)
		dirty = true
	}
	if attrs.CallerID != "" && sess.CallerID != attrs.CallerID {
		upd = upd.SetCallerID(attrs.CallerID)
		dirty = true
	}
	if attrs.Destination != "" && sess.Destination != attrs.Destination {
		upd = upd.SetDestination(attrs.Destination)
		dirty = true
	}
	if attrs.Direction != "" && string(sess.Direction) != attrs.Direction {
		upd = upd.SetDirection(callsession.Direction(attrs.Direction))
		dirty = true
	}
	if attrs.StartedAt != nil && !sess.StartedAt.Equal(*attrs.StartedAt) {
		upd = upd.SetStartedAt(*attrs.StartedAt)
		dirty = true
	}
	if !dirty {
		return sess, nil
	}
	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update call session: %w", err)
	}
	return updated, nil
}
