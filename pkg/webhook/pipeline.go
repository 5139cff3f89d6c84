package webhook

import (
	"context"
	"errors"
	"log/slog"

	"github.com/voxroute/voxroute/ent"
	"github.com/voxroute/voxroute/pkg/callstate"
	"github.com/voxroute/voxroute/pkg/ccml"
	"github.com/voxroute/voxroute/pkg/events"
	"github.com/voxroute/voxroute/pkg/masking"
	"github.com/voxroute/voxroute/pkg/routing"
	"github.com/voxroute/voxroute/pkg/services"
)

// Pipeline processes the three carrier webhook kinds end to end: tenant
// resolution, authentication, idempotency, session lifecycle, routing, and
// event publication. Each handler runs to completion on its own goroutine;
// nothing here assumes single-threaded execution.
type Pipeline struct {
	tenants   *services.TenantService
	sessions  *services.SessionService
	records   *services.RecordService
	audit     *services.EventService
	engine    *routing.Engine
	machine   *callstate.Machine
	ledger    *Ledger
	publisher *events.Publisher
	masker    *masking.Service
}

// NewPipeline creates a new Pipeline.
func NewPipeline(
	tenants *services.TenantService,
	sessions *services.SessionService,
	records *services.RecordService,
	audit *services.EventService,
	engine *routing.Engine,
	machine *callstate.Machine,
	ledger *Ledger,
	publisher *events.Publisher,
	masker *masking.Service,
) *Pipeline {
	return &Pipeline{
		tenants:   tenants,
		sessions:  sessions,
		records:   records,
		audit:     audit,
		engine:    engine,
		machine:   machine,
		ledger:    ledger,
		publisher: publisher,
		masker:    masker,
	}
}

// auditHeaders is what gets stored with each call event. The API key is
// deliberately absent: credentials never reach the audit trail.
func auditHeaders(hdr Headers) map[string]string {
	return map[string]string{"X-CX-Domain": hdr.Domain}
}

// HandleApplication answers the initial call request with a CCML document.
// It never fails outward: any error collapses to a hangup response, because
// the carrier needs valid CCML either way.
func (p *Pipeline) HandleApplication(ctx context.Context, domain string, hdr Headers, req *ApplicationRequest, raw map[string]interface{}) string {
	t, err := p.authenticate(ctx, domain, hdr)
	if err != nil {
		slog.Warn("Rejected application request", "domain", domain, "error", err)
		return ccml.Hangup()
	}
	if err := req.Validate(); err != nil {
		slog.Warn("Invalid application request", "tenant_id", t.ID, "error", err)
		return ccml.Hangup()
	}

	var response string
	skipped, err := p.ledger.ExecuteOnce(ctx, t.ID, KindApplication, req.Session, req.EventID(),
		func(ctx context.Context) error {
			var runErr error
			response, runErr = p.processApplication(ctx, t, hdr, req, raw)
			return runErr
		})
	if err != nil {
		slog.Error("Application request failed",
			"tenant_id", t.ID, "session_token", req.Session, "error", err)
		return ccml.Hangup()
	}
	if skipped {
		// The original request already instructed the carrier; a duplicate
		// setup for the same call gets a clean close.
		return ccml.Hangup()
	}
	return response
}

func (p *Pipeline) processApplication(ctx context.Context, t *ent.Tenant, hdr Headers, req *ApplicationRequest, raw map[string]interface{}) (string, error) {
	sess, err := p.sessions.UpsertByToken(ctx, t.ID, req.Session, services.SessionAttrs{
		CallSid:     req.CallSid,
		Direction:   req.normalizedDirection(),
		CallerID:    req.From,
		Destination: req.To,
	})
	if err != nil {
		return "", err
	}

	sess, err = p.machine.Transition(ctx, sess, callstate.StateQueued, nil)
	if err != nil {
		return "", err
	}

	p.publisher.PublishCallCreated(ctx, t.ID, callData(sess))

	sess, err = p.machine.Transition(ctx, sess, callstate.StateRouting, nil)
	if err != nil {
		return "", err
	}

	d := p.engine.Route(ctx, routing.Call{
		TenantID:     t.ID,
		SessionToken: req.Session,
		CallerID:     req.From,
		Destination:  req.To,
	})

	if d.Success {
		agentID := ""
		if d.SelectedAgent != nil {
			agentID = d.SelectedAgent.ID
		}
		groupID := ""
		if d.Kind == routing.KindAgentGroup {
			groupID = d.TargetID
		}
		if agentID != "" || groupID != "" {
			if sess, err = p.sessions.AssignTarget(ctx, t.ID, sess, agentID, groupID); err != nil {
				return "", err
			}
		}
		if sess, err = p.machine.Transition(ctx, sess, callstate.StateConnecting,
			map[string]any{"kind": string(d.Kind), "target_id": d.TargetID}); err != nil {
			return "", err
		}
	} else {
		// No route: the carrier is told to hang up and the session ends.
		if sess, err = p.machine.Transition(ctx, sess, callstate.StateFailed,
			map[string]any{"reason": d.Reason}); err != nil {
			return "", err
		}
	}

	p.audit.Append(ctx, sess.ID, services.EventKindApplicationRequest, p.masker.MaskMap(raw), auditHeaders(hdr), services.OutcomeProcessed)
	p.publisher.PublishCallUpdated(ctx, t.ID, callData(sess))

	return d.CCML, nil
}

// HandleSessionUpdate applies a carrier lifecycle update. Errors are returned
// for logging only; the HTTP layer answers 200 regardless, because the
// carrier treats non-2xx as retryable and a rejected update must not retry.
func (p *Pipeline) HandleSessionUpdate(ctx context.Context, domain string, hdr Headers, upd *SessionUpdate, raw map[string]interface{}) error {
	t, err := p.authenticate(ctx, domain, hdr)
	if err != nil {
		return err
	}
	if err := upd.Validate(); err != nil {
		return err
	}

	_, err = p.ledger.ExecuteOnce(ctx, t.ID, KindSessionUpdate, upd.Token, upd.EventID(),
		func(ctx context.Context) error {
			return p.processSessionUpdate(ctx, t, hdr, upd, raw)
		})
	return err
}

func (p *Pipeline) processSessionUpdate(ctx context.Context, t *ent.Tenant, hdr Headers, upd *SessionUpdate, raw map[string]interface{}) error {
	sess, err := p.sessions.UpsertByToken(ctx, t.ID, upd.Token, services.SessionAttrs{
		CallerID:    upd.CallerID,
		Destination: upd.Destination,
		Direction:   upd.Direction,
		StartedAt:   msTime(upd.CallStartTime),
	})
	if err != nil {
		return err
	}

	if d := upd.durationSeconds(); d > 0 && d != sess.DurationSeconds {
		if sess, err = sess.Update().SetDurationSeconds(d).Save(ctx); err != nil {
			return err
		}
	}

	to := callstate.MapCarrierStatus(upd.Status)
	updated, err := p.machine.Transition(ctx, sess, to, map[string]any{"status": upd.Status})
	if err != nil {
		var ite *callstate.InvalidTransitionError
		if errors.As(err, &ite) {
			// Out-of-order or stale update. The session keeps its state and
			// the carrier gets a 200 so it does not retry.
			slog.Warn("Rejected stale session update",
				"tenant_id", t.ID,
				"session_token", upd.Token,
				"status", upd.Status,
				"from", ite.From,
				"to", ite.To)
			p.audit.Append(ctx, sess.ID, services.EventKindSessionUpdate, p.masker.MaskMap(raw), auditHeaders(hdr), services.OutcomeRejected)
			return nil
		}
		return err
	}

	p.audit.Append(ctx, updated.ID, services.EventKindSessionUpdate, p.masker.MaskMap(raw), auditHeaders(hdr), services.OutcomeProcessed)
	p.publisher.PublishCallUpdated(ctx, t.ID, callData(updated))
	p.publishAgentStatus(ctx, t.ID, updated)
	return nil
}

// publishAgentStatus mirrors the session state onto the agents channel when
// the call has a routed agent: on_call while connected, available once the
// session reaches a terminal state.
func (p *Pipeline) publishAgentStatus(ctx context.Context, tenantID string, sess *ent.CallSession) {
	if sess.AgentID == nil {
		return
	}
	var status string
	switch state := callstate.State(sess.State); {
	case state == callstate.StateConnected:
		status = "on_call"
	case state.IsTerminal():
		status = "available"
	default:
		return
	}
	p.publisher.PublishAgentStatusUpdated(ctx, tenantID, events.AgentStatusData{
		AgentID:  *sess.AgentID,
		TenantID: tenantID,
		Status:   status,
	})
}

// HandleCdr finalizes a call record from the carrier's CDR callback.
func (p *Pipeline) HandleCdr(ctx context.Context, domain string, hdr Headers, cdr *CdrCallback, raw map[string]interface{}) error {
	t, err := p.authenticate(ctx, domain, hdr)
	if err != nil {
		return err
	}
	if err := cdr.Validate(); err != nil {
		return err
	}

	token := cdr.sessionToken()
	idemToken := token
	if idemToken == "" {
		idemToken = cdr.CallID
	}

	_, err = p.ledger.ExecuteOnce(ctx, t.ID, KindCdr, idemToken, cdr.EventID(),
		func(ctx context.Context) error {
			return p.processCdr(ctx, t, hdr, cdr, token, raw)
		})
	return err
}

func (p *Pipeline) processCdr(ctx context.Context, t *ent.Tenant, hdr Headers, cdr *CdrCallback, token string, raw map[string]interface{}) error {
	sessionID := ""
	if token != "" {
		sess, err := p.sessions.GetByToken(ctx, t.ID, token)
		switch {
		case err == nil:
			sessionID = sess.ID
		case errors.Is(err, services.ErrNotFound):
			// CDR for a session this engine never saw; record it anyway.
		default:
			return err
		}
	}

	record := services.CDR{
		CallID:        cdr.CallID,
		SessionToken:  token,
		From:          cdr.From,
		To:            cdr.To,
		Disposition:   MapDisposition(cdr.Disposition),
		Duration:      cdr.Duration,
		BilledSeconds: cdr.Billsec,
		RawPayload:    raw,
	}
	if cdr.Session != nil {
		record.Direction = cdr.Session.Direction
		record.CallStartTime = msTime(cdr.Session.CallStartTime)
		record.AnswerTime = msTime(cdr.Session.AnswerTime)
		record.EndTime = msTime(cdr.Session.EndTime)
	}

	rec, err := p.records.UpsertFromCDR(ctx, t.ID, record, sessionID)
	if err != nil {
		return err
	}

	if sessionID != "" {
		p.audit.Append(ctx, sessionID, services.EventKindCdrCallback, p.masker.MaskMap(raw), auditHeaders(hdr), services.OutcomeProcessed)
	}
	p.publisher.PublishAnalyticsUpdated(ctx, t.ID, events.AnalyticsData{
		TenantID:    t.ID,
		CallID:      rec.CallID,
		Disposition: rec.Disposition,
		Duration:    rec.DurationSeconds,
		Billed:      rec.BilledSeconds,
	})
	return nil
}

func (p *Pipeline) authenticate(ctx context.Context, domain string, hdr Headers) (*ent.Tenant, error) {
	t, err := p.tenants.ResolveByDomain(ctx, domain)
	if err != nil {
		return nil, err
	}
	if err := p.tenants.Authenticate(t, hdr.Domain, hdr.APIKey); err != nil {
		return nil, err
	}
	return t, nil
}

func callData(sess *ent.CallSession) events.CallData {
	d := events.CallData{
		SessionID:    sess.ID,
		SessionToken: sess.SessionToken,
		TenantID:     sess.TenantID,
		State:        string(sess.State),
		Direction:    string(sess.Direction),
		CallerID:     sess.CallerID,
		Destination:  sess.Destination,
		Duration:     sess.DurationSeconds,
	}
	if sess.AgentID != nil {
		d.AgentID = *sess.AgentID
	}
	if sess.GroupID != nil {
		d.GroupID = *sess.GroupID
	}
	return d
}
