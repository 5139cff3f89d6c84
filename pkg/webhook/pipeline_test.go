package webhook

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxroute/voxroute/ent"
	"github.com/voxroute/voxroute/ent/callsession"
	"github.com/voxroute/voxroute/ent/inboundrule"
	"github.com/voxroute/voxroute/pkg/callstate"
	"github.com/voxroute/voxroute/pkg/ccml"
	"github.com/voxroute/voxroute/pkg/database"
	"github.com/voxroute/voxroute/pkg/events"
	"github.com/voxroute/voxroute/pkg/masking"
	"github.com/voxroute/voxroute/pkg/routing"
	"github.com/voxroute/voxroute/pkg/services"
	"github.com/voxroute/voxroute/pkg/store"
	testdb "github.com/voxroute/voxroute/test/database"
)

// staticEncryptor is a reversible stand-in for the production AES encryptor.
type staticEncryptor struct{}

func (staticEncryptor) Encrypt(plain string) (string, error) { return "enc:" + plain, nil }

func (staticEncryptor) Decrypt(cipher string) (string, error) {
	return strings.TrimPrefix(cipher, "enc:"), nil
}

// pipelineHarness wires a Pipeline against a real database schema and an
// in-process Redis, the same shape main assembles in production.
type pipelineHarness struct {
	*Pipeline
	client *database.Client
	store  *store.Store
	audit  *services.EventService
}

func newPipelineHarness(t *testing.T) *pipelineHarness {
	t.Helper()
	client := testdb.NewTestClient(t)
	mr := miniredis.RunT(t)
	st := store.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = st.Close() })

	tenants := services.NewTenantService(client.Client)
	sessions := services.NewSessionService(client.Client)
	records := services.NewRecordService(client.Client)
	audit := services.NewEventService(client.Client)
	dir := services.NewDirectoryService(client.Client, staticEncryptor{})

	p := NewPipeline(
		tenants,
		sessions,
		records,
		audit,
		routing.NewEngine(dir, st),
		callstate.NewMachine(client.Client, st),
		NewLedger(st),
		events.NewPublisher(st),
		masking.NewService(),
	)
	return &pipelineHarness{Pipeline: p, client: client, store: st, audit: audit}
}

func createPipelineTenant(t *testing.T, client *ent.Client) *ent.Tenant {
	t.Helper()
	tenant, err := client.Tenant.Create().
		SetID(uuid.NewString()).
		SetName("Acme Voice").
		SetDomain("acme-" + uuid.NewString() + ".example.com").
		SetAPIKey("key-" + uuid.NewString()).
		Save(context.Background())
	require.NoError(t, err)
	return tenant
}

func createPipelineAgent(t *testing.T, client *ent.Client, tenantID, provider, serviceValue string) *ent.VoiceAgent {
	t.Helper()
	agent, err := client.VoiceAgent.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenantID).
		SetName("agent-" + uuid.NewString()).
		SetProvider(provider).
		SetServiceValue(serviceValue).
		Save(context.Background())
	require.NoError(t, err)
	return agent
}

func createPipelineRule(t *testing.T, client *ent.Client, tenantID, pattern string, kind inboundrule.TargetKind, targetID string, prio int) *ent.InboundRule {
	t.Helper()
	rule, err := client.InboundRule.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenantID).
		SetPattern(pattern).
		SetTargetKind(kind).
		SetTargetID(targetID).
		SetPriority(prio).
		Save(context.Background())
	require.NoError(t, err)
	return rule
}

func createPipelineSession(t *testing.T, client *ent.Client, tenantID, token string, state callsession.State) *ent.CallSession {
	t.Helper()
	sess, err := client.CallSession.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenantID).
		SetSessionToken(token).
		SetState(state).
		Save(context.Background())
	require.NoError(t, err)
	return sess
}

// subscribeCalls opens a live subscription on the tenant's calls channel.
// The confirmation is consumed so publishes after the return are captured.
func subscribeCalls(t *testing.T, st *store.Store, tenantID string) *redis.PubSub {
	t.Helper()
	sub := st.Subscribe(context.Background(), events.CallsChannel(tenantID))
	t.Cleanup(func() { _ = sub.Close() })
	_, err := sub.Receive(context.Background())
	require.NoError(t, err)
	return sub
}

func drainMessages(sub *redis.PubSub, wait time.Duration) []*redis.Message {
	var msgs []*redis.Message
	deadline := time.After(wait)
	for {
		select {
		case m := <-sub.Channel():
			msgs = append(msgs, m)
		case <-deadline:
			return msgs
		}
	}
}

func TestPipelineApplicationRoutesToAgent(t *testing.T) {
	h := newPipelineHarness(t)
	ctx := context.Background()

	tenant := createPipelineTenant(t, h.client.Client)
	agent := createPipelineAgent(t, h.client.Client, tenant.ID, "vapi", "asst_1")
	createPipelineRule(t, h.client.Client, tenant.ID, "+1234567890", inboundrule.TargetKindAgent, agent.ID, 1)

	hdr := Headers{Domain: tenant.Domain, APIKey: tenant.APIKey}
	req := &ApplicationRequest{CallSid: "c1", From: "+1999", To: "+1234567890", Direction: "inbound", Session: "s1"}
	raw := map[string]interface{}{"CallSid": "c1", "From": "+1999", "To": "+1234567890", "Session": "s1"}

	body := h.HandleApplication(ctx, tenant.Domain, hdr, req, raw)
	assert.Contains(t, body, `<Service provider="vapi">asst_1</Service>`)
	assert.Contains(t, body, `callerId="+1999"`)

	sess, err := h.client.CallSession.Query().
		Where(callsession.TenantID(tenant.ID), callsession.SessionToken("s1")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, callsession.StateConnecting, sess.State)
	require.NoError(t, callstate.VerifyIntegrity(sess))
	require.NotNil(t, sess.AgentID)
	assert.Equal(t, agent.ID, *sess.AgentID)

	evts, err := h.audit.List(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, evts, 1)
	assert.Equal(t, services.EventKindApplicationRequest, evts[0].EventKind)
	assert.Equal(t, services.OutcomeProcessed, evts[0].Outcome)
}

func TestPipelineApplicationHangsUpOnNoMatch(t *testing.T) {
	h := newPipelineHarness(t)
	ctx := context.Background()

	tenant := createPipelineTenant(t, h.client.Client)

	hdr := Headers{Domain: tenant.Domain, APIKey: tenant.APIKey}
	req := &ApplicationRequest{CallSid: "c2", From: "+1999", To: "+1555000", Direction: "inbound", Session: "s2"}
	raw := map[string]interface{}{"CallSid": "c2"}

	body := h.HandleApplication(ctx, tenant.Domain, hdr, req, raw)
	assert.Equal(t, `<?xml version="1.0" encoding="UTF-8"?><Response><Hangup/></Response>`, body)

	sess, err := h.client.CallSession.Query().
		Where(callsession.TenantID(tenant.ID), callsession.SessionToken("s2")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, callsession.StateFailed, sess.State)
	require.NoError(t, callstate.VerifyIntegrity(sess))
}

func TestPipelineApplicationRejectsBadCredentials(t *testing.T) {
	h := newPipelineHarness(t)
	tenant := createPipelineTenant(t, h.client.Client)

	hdr := Headers{Domain: tenant.Domain, APIKey: "wrong-key"}
	req := &ApplicationRequest{CallSid: "c3", From: "+1999", To: "+1555000", Direction: "inbound", Session: "s3"}

	body := h.HandleApplication(context.Background(), tenant.Domain, hdr, req, nil)
	assert.Equal(t, ccml.Hangup(), body)

	// No session is created for an unauthenticated request.
	count, err := h.client.CallSession.Query().
		Where(callsession.TenantID(tenant.ID)).
		Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPipelineSessionUpdateIdempotent(t *testing.T) {
	h := newPipelineHarness(t)
	ctx := context.Background()

	tenant := createPipelineTenant(t, h.client.Client)
	createPipelineSession(t, h.client.Client, tenant.ID, "s1", callsession.StateConnecting)
	sub := subscribeCalls(t, h.store, tenant.ID)

	hdr := Headers{Domain: tenant.Domain, APIKey: tenant.APIKey}
	upd := &SessionUpdate{
		ID:            "u1",
		Token:         "s1",
		Domain:        tenant.Domain,
		CallerID:      "+1999",
		Destination:   "+1234567890",
		Status:        "answer",
		CallStartTime: 1700000000000,
		AnswerTime:    1700000005000,
		ModifiedAt:    1700000010000,
	}
	raw := map[string]interface{}{"token": "s1", "status": "answer"}

	require.NoError(t, h.HandleSessionUpdate(ctx, tenant.Domain, hdr, upd, raw))
	require.NoError(t, h.HandleSessionUpdate(ctx, tenant.Domain, hdr, upd, raw))

	sess, err := h.client.CallSession.Query().
		Where(callsession.TenantID(tenant.ID), callsession.SessionToken("s1")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, callsession.StateConnected, sess.State)
	require.Len(t, sess.History, 1, "the duplicate must not transition again")
	require.NoError(t, callstate.VerifyIntegrity(sess))
	require.NotNil(t, sess.AnsweredAt)

	evts, err := h.audit.List(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, evts, 1, "the duplicate must not append a second audit row")
	assert.Equal(t, services.OutcomeProcessed, evts[0].Outcome)

	msgs := drainMessages(sub, 250*time.Millisecond)
	assert.Len(t, msgs, 1, "the duplicate must not publish a second event")
}

func TestPipelineSessionUpdateIllegalTransition(t *testing.T) {
	h := newPipelineHarness(t)
	ctx := context.Background()

	tenant := createPipelineTenant(t, h.client.Client)
	createPipelineSession(t, h.client.Client, tenant.ID, "s1", callsession.StateReceived)
	sub := subscribeCalls(t, h.store, tenant.ID)

	hdr := Headers{Domain: tenant.Domain, APIKey: tenant.APIKey}
	upd := &SessionUpdate{
		ID:            "u2",
		Token:         "s1",
		Domain:        tenant.Domain,
		CallerID:      "+1999",
		Destination:   "+1234567890",
		Status:        "completed",
		CallStartTime: 1700000000000,
		ModifiedAt:    1700000010000,
	}
	raw := map[string]interface{}{"token": "s1", "status": "completed"}

	// The carrier still gets a 200: the handler swallows the rejection.
	require.NoError(t, h.HandleSessionUpdate(ctx, tenant.Domain, hdr, upd, raw))

	sess, err := h.client.CallSession.Query().
		Where(callsession.TenantID(tenant.ID), callsession.SessionToken("s1")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, callsession.StateReceived, sess.State, "a rejected update leaves the state unchanged")
	assert.Empty(t, sess.History)

	evts, err := h.audit.List(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, evts, 1)
	assert.Equal(t, services.OutcomeRejected, evts[0].Outcome)

	msgs := drainMessages(sub, 250*time.Millisecond)
	assert.Empty(t, msgs, "a rejected update must not publish")
}

func TestPipelineCdrFinalizesRecord(t *testing.T) {
	h := newPipelineHarness(t)
	ctx := context.Background()

	tenant := createPipelineTenant(t, h.client.Client)
	sess := createPipelineSession(t, h.client.Client, tenant.ID, "s1", callsession.StateCompleted)

	hdr := Headers{Domain: tenant.Domain, APIKey: tenant.APIKey}
	cdr := &CdrCallback{
		CallID:      "call-1",
		From:        "+1999",
		To:          "+1234567890",
		Domain:      tenant.Domain,
		Disposition: "ANSWERED",
		Duration:    65,
		Billsec:     60,
		Session:     &CdrSession{Token: "s1", CallStartTime: 1700000000000, EndTime: 1700000065000},
	}
	raw := map[string]interface{}{"call_id": "call-1", "disposition": "ANSWERED"}

	require.NoError(t, h.HandleCdr(ctx, tenant.Domain, hdr, cdr, raw))
	// The retry is absorbed by the ledger.
	require.NoError(t, h.HandleCdr(ctx, tenant.Domain, hdr, cdr, raw))

	rec, err := h.client.CallRecord.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "call-1", rec.CallID)
	assert.Equal(t, "ANSWER", rec.Disposition)
	assert.Equal(t, 65, rec.DurationSeconds)
	assert.Equal(t, 60, rec.BilledSeconds)

	// The record is linked to the session it belongs to.
	linked, err := h.client.CallSession.QueryRecord(sess).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, linked.ID)
}
