package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/voxroute/voxroute/ent"
	"github.com/voxroute/voxroute/ent/callrecord"
)

// RecordService finalizes call detail records. One record per
// (tenant, call id); a replayed CDR callback overwrites in place, so the
// carrier's last word wins without duplicating rows.
type RecordService struct {
	client *ent.Client
}

// NewRecordService creates a new RecordService
func NewRecordService(client *ent.Client) *RecordService {
	return &RecordService{client: client}
}

// CDR carries the normalized fields of a carrier CDR callback. RawPayload is
// the callback body verbatim, preserved for audit and re-rating.
type CDR struct {
	CallID        string
	SessionToken  string
	From          string
	To            string
	Direction     string
	Disposition   string
	CallStartTime *time.Time
	AnswerTime    *time.Time
	EndTime       *time.Time
	Duration      int
	BilledSeconds int
	RawPayload    map[string]interface{}
}

// UpsertFromCDR writes the finalized record for a call, creating or
// overwriting as needed, and links it to the session when one exists.
func (s *RecordService) UpsertFromCDR(ctx context.Context, tenantID string, cdr CDR, sessionID string) (*ent.CallRecord, error) {
	if tenantID == "" {
		return nil, NewValidationError("tenant_id", "required")
	}
	if cdr.CallID == "" {
		return nil, NewValidationError("call_id", "required")
	}

	existing, err := s.client.CallRecord.Query().
		Where(
			callrecord.TenantID(tenantID),
			callrecord.CallID(cdr.CallID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query call record: %w", err)
	}

	if existing != nil {
		upd := existing.Update().
			SetDisposition(cdr.Disposition).
			SetDurationSeconds(cdr.Duration).
			SetBilledSeconds(cdr.BilledSeconds).
			SetRawPayload(cdr.RawPayload)
		applyRecordTimes(upd.Mutation(), cdr)
		if cdr.SessionToken != "" {
			upd = upd.SetSessionToken(cdr.SessionToken)
		}
		updated, err := upd.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update call record: %w", err)
		}
		return updated, nil
	}

	create := s.client.CallRecord.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenantID).
		SetCallID(cdr.CallID).
		SetDisposition(cdr.Disposition).
		SetDurationSeconds(cdr.Duration).
		SetBilledSeconds(cdr.BilledSeconds).
		SetRawPayload(cdr.RawPayload)
	if cdr.SessionToken != "" {
		create = create.SetSessionToken(cdr.SessionToken)
	}
	if cdr.From != "" {
		create = create.SetFromNumber(cdr.From)
	}
	if cdr.To != "" {
		create = create.SetToNumber(cdr.To)
	}
	if cdr.Direction != "" {
		create = create.SetDirection(cdr.Direction)
	}
	if cdr.CallStartTime != nil {
		create = create.SetCallStartTime(*cdr.CallStartTime)
	}
	if cdr.AnswerTime != nil {
		create = create.SetAnswerTime(*cdr.AnswerTime)
	}
	if cdr.EndTime != nil {
		create = create.SetEndTime(*cdr.EndTime)
	}
	if sessionID != "" {
		create = create.SetSessionID(sessionID)
	}

	rec, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Concurrent duplicate callback; retry as an update.
			return s.UpsertFromCDR(ctx, tenantID, cdr, sessionID)
		}
		return nil, fmt.Errorf("failed to create call record: %w", err)
	}
	return rec, nil
}

// Get returns a record by call id, guarded by tenant.
func (s *RecordService) Get(ctx context.Context, tenantID, callID string) (*ent.CallRecord, error) {
	rec, err := s.client.CallRecord.Query().
		Where(
			callrecord.TenantID(tenantID),
			callrecord.CallID(callID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get call record: %w", err)
	}
	return rec, nil
}

func applyRecordTimes(m *ent.CallRecordMutation, cdr CDR) {
	if cdr.CallStartTime != nil {
		m.SetCallStartTime(*cdr.CallStartTime)
	}
	if cdr.AnswerTime != nil {
		m.SetAnswerTime(*cdr.AnswerTime)
	}
	if cdr.EndTime != nil {
		m.SetEndTime(*cdr.EndTime)
	}
}
