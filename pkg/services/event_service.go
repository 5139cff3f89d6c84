package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/voxroute/voxroute/ent"
	"github.com/voxroute/voxroute/ent/callevent"
)

// Event kinds recorded against a session.
const (
	EventKindApplicationRequest = "application_request"
	EventKindSessionUpdate      = "session_update"
	EventKindCdrCallback        = "cdr_callback"
)

// Event outcomes.
const (
	OutcomeProcessed = "processed"
	OutcomeSkipped   = "skipped"
	OutcomeRejected  = "rejected"
)

// EventService appends webhook events to a session's audit trail.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// Append records one webhook against a session. The audit trail is
// best-effort: a failed append is logged, never surfaced to the caller,
// because losing an audit row must not fail call processing.
func (s *EventService) Append(ctx context.Context, sessionID, kind string, payload map[string]interface{}, headers map[string]string, outcome string) {
	_, err := s.client.CallEvent.Create().
		SetID(uuid.NewString()).
		SetSessionID(sessionID).
		SetEventKind(kind).
		SetPayload(payload).
		SetHeaders(headers).
		SetOutcome(outcome).
		Save(ctx)
	if err != nil {
		slog.Warn("Failed to append call event",
			"session_id", sessionID,
			"kind", kind,
			"error", err)
	}
}

// List returns a session's events in arrival order.
func (s *EventService) List(ctx context.Context, sessionID string) ([]*ent.CallEvent, error) {
	events, err := s.client.CallEvent.Query().
		Where(callevent.SessionID(sessionID)).
		Order(ent.Asc(callevent.FieldOccurredAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list call events: %w", err)
	}
	return events, nil
}
