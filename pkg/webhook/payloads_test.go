package webhook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxroute/voxroute/pkg/services"
)

func validApplicationRequest() *ApplicationRequest {
	return &ApplicationRequest{
		CallSid:   "CA123",
		From:      "+1999",
		To:        "+1234567890",
		Direction: "inbound",
		Session:   "tok-1",
	}
}

func TestApplicationRequestValidate(t *testing.T) {
	require.NoError(t, validApplicationRequest().Validate())

	tests := []struct {
		name   string
		mutate func(*ApplicationRequest)
	}{
		{"missing CallSid", func(r *ApplicationRequest) { r.CallSid = "" }},
		{"missing From", func(r *ApplicationRequest) { r.From = "" }},
		{"missing To", func(r *ApplicationRequest) { r.To = "" }},
		{"missing Session", func(r *ApplicationRequest) { r.Session = "" }},
		{"bad direction", func(r *ApplicationRequest) { r.Direction = "sideways" }},
		{"empty direction", func(r *ApplicationRequest) { r.Direction = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validApplicationRequest()
			tt.mutate(r)
			err := r.Validate()
			require.Error(t, err)
			assert.True(t, services.IsValidationError(err))
		})
	}
}

func TestApplicationRequestDirections(t *testing.T) {
	for _, dir := range []string{"inbound", "outbound-api", "subscriber"} {
		r := validApplicationRequest()
		r.Direction = dir
		assert.NoError(t, r.Validate(), dir)
	}

	r := validApplicationRequest()
	r.Direction = "outbound-api"
	assert.Equal(t, "outbound", r.normalizedDirection())
	r.Direction = "subscriber"
	assert.Equal(t, "subscriber", r.normalizedDirection())
}

func validSessionUpdate() *SessionUpdate {
	return &SessionUpdate{
		ID:            "u1",
		Token:         "tok-1",
		Domain:        "acme.example.com",
		CallerID:      "+1999",
		Destination:   "+1234567890",
		Status:        "answer",
		CallStartTime: 1700000000000,
		ModifiedAt:    1700000030000,
	}
}

func TestSessionUpdateValidate(t *testing.T) {
	require.NoError(t, validSessionUpdate().Validate())

	u := validSessionUpdate()
	u.Token = ""
	assert.Error(t, u.Validate())

	u = validSessionUpdate()
	u.CallStartTime = 0
	assert.Error(t, u.Validate())

	u = validSessionUpdate()
	u.ModifiedAt = 0
	assert.Error(t, u.Validate())
}

func TestSessionUpdateDuration(t *testing.T) {
	u := validSessionUpdate()
	u.AnswerTime = 1700000010000 // answered 10s in, modified 30s in
	assert.Equal(t, 20, u.durationSeconds())

	u.AnswerTime = 0
	assert.Zero(t, u.durationSeconds(), "no answer time, no duration")

	u = validSessionUpdate()
	u.AnswerTime = u.ModifiedAt + 1000
	assert.Zero(t, u.durationSeconds(), "answer after modification is ignored")
}

func TestSessionUpdateEventIDDistinguishesUpdates(t *testing.T) {
	a := validSessionUpdate()
	b := validSessionUpdate()
	assert.Equal(t, a.EventID(), b.EventID(), "a retry carries the same id")

	b.ModifiedAt++
	assert.NotEqual(t, a.EventID(), b.EventID())
}

func TestCdrCallbackValidate(t *testing.T) {
	cdr := &CdrCallback{
		CallID:      "call-1",
		From:        "+1999",
		To:          "+1234567890",
		Domain:      "acme.example.com",
		Disposition: "ANSWERED",
		Duration:    42,
	}
	require.NoError(t, cdr.Validate())

	cdr.CallID = ""
	assert.Error(t, cdr.Validate())
}

func TestMapDisposition(t *testing.T) {
	tests := map[string]string{
		"CONNECTED": "ANSWER",
		"ANSWERED":  "ANSWER",
		"ANSWER":    "ANSWER",
		"answered":  "ANSWER",
		"Busy":      "BUSY",
		"CANCEL":    "CANCEL",
		"CONGESTION": "CONGESTION",
		"NOANSWER":   "NOANSWER",
		"NO ANSWER":  "NOANSWER",
		"no answer":  "NOANSWER",
		"FAILED":     "FAILED",
		"gibberish":  "FAILED",
		"":           "FAILED",
	}
	for raw, want := range tests {
		assert.Equal(t, want, MapDisposition(raw), "raw=%q", raw)
	}
}

func TestMsTime(t *testing.T) {
	assert.Nil(t, msTime(0))
	assert.Nil(t, msTime(-1))

	got := msTime(1700000000000)
	require.NotNil(t, got)
	assert.Equal(t, time.UnixMilli(1700000000000).UTC(), *got)
}
