package webhook

import (
	"fmt"
	"strings"
	"time"

	"github.com/voxroute/voxroute/pkg/services"
)

// Headers carries the carrier's tenant-identifying headers.
type Headers struct {
	APIKey string // X-CX-APIKey
	Domain string // X-CX-Domain
}

// Carrier call directions on the initial application request.
const (
	DirectionInbound     = "inbound"
	DirectionOutboundAPI = "outbound-api"
	DirectionSubscriber  = "subscriber"
)

// ApplicationRequest is the carrier's initial call-setup payload. Field names
// follow the carrier's casing; both JSON and form bodies bind to the same
// struct. Fields beyond these are kept in the raw payload for audit.
type ApplicationRequest struct {
	CallSid   string `json:"CallSid" form:"CallSid"`
	From      string `json:"From" form:"From"`
	To        string `json:"To" form:"To"`
	Direction string `json:"Direction" form:"Direction"`
	Session   string `json:"Session" form:"Session"`
}

// Validate checks the required fields of an application request.
func (r *ApplicationRequest) Validate() error {
	if r.CallSid == "" {
		return services.NewValidationError("CallSid", "required")
	}
	if r.From == "" {
		return services.NewValidationError("From", "required")
	}
	if r.To == "" {
		return services.NewValidationError("To", "required")
	}
	if r.Session == "" {
		return services.NewValidationError("Session", "required")
	}
	switch r.Direction {
	case DirectionInbound, DirectionOutboundAPI, DirectionSubscriber:
	default:
		return services.NewValidationError("Direction", "must be one of inbound, outbound-api, subscriber")
	}
	return nil
}

// EventID returns the natural idempotency id of the request, falling back to
// a hash of the identifying fields when the carrier omits the call id.
func (r *ApplicationRequest) EventID() string {
	if r.CallSid != "" {
		return r.CallSid
	}
	return fallbackEventID(KindApplication, map[string]interface{}{
		"session": r.Session,
		"from":    r.From,
		"to":      r.To,
	})
}

// normalizedDirection maps the carrier direction onto the session's
// direction enum. outbound-api collapses to outbound.
func (r *ApplicationRequest) normalizedDirection() string {
	if r.Direction == DirectionOutboundAPI {
		return "outbound"
	}
	return r.Direction
}

// SessionUpdate is the carrier's lifecycle-status payload. Timestamps are
// epoch milliseconds.
type SessionUpdate struct {
	ID            string `json:"id" form:"id"`
	Token         string `json:"token" form:"token"`
	Domain        string `json:"domain" form:"domain"`
	CallerID      string `json:"callerId" form:"callerId"`
	Destination   string `json:"destination" form:"destination"`
	Status        string `json:"status" form:"status"`
	CallStartTime int64  `json:"callStartTime" form:"callStartTime"`
	ModifiedAt    int64  `json:"modifiedAt" form:"modifiedAt"`
	AnswerTime    int64  `json:"answerTime,omitempty" form:"answerTime"`
	VappServer    string `json:"vappServer,omitempty" form:"vappServer"`
	Direction     string `json:"direction,omitempty" form:"direction"`
	CreatedAt     int64  `json:"createdAt,omitempty" form:"createdAt"`
}

// Validate checks the required fields of a session update.
func (u *SessionUpdate) Validate() error {
	if u.ID == "" {
		return services.NewValidationError("id", "required")
	}
	if u.Token == "" {
		return services.NewValidationError("token", "required")
	}
	if u.Domain == "" {
		return services.NewValidationError("domain", "required")
	}
	if u.CallerID == "" {
		return services.NewValidationError("callerId", "required")
	}
	if u.Destination == "" {
		return services.NewValidationError("destination", "required")
	}
	if u.Status == "" {
		return services.NewValidationError("status", "required")
	}
	if u.CallStartTime <= 0 {
		return services.NewValidationError("callStartTime", "required")
	}
	if u.ModifiedAt <= 0 {
		return services.NewValidationError("modifiedAt", "required")
	}
	return nil
}

// EventID distinguishes retries (same id) from distinct updates for the
// same session. Without a carrier id the token, timestamp and status are
// hashed instead.
func (u *SessionUpdate) EventID() string {
	if u.ID == "" {
		return fallbackEventID(KindSessionUpdate, map[string]interface{}{
			"token":      u.Token,
			"modifiedAt": u.ModifiedAt,
			"status":     u.Status,
		})
	}
	return fmt.Sprintf("%s:%d:%s", u.ID, u.ModifiedAt, u.Status)
}

// durationSeconds computes the answered duration when both the call-start
// and answer timestamps are present, measured up to modifiedAt.
func (u *SessionUpdate) durationSeconds() int {
	if u.CallStartTime <= 0 || u.AnswerTime <= 0 || u.ModifiedAt <= u.AnswerTime {
		return 0
	}
	return int((u.ModifiedAt - u.AnswerTime) / 1000)
}

// CdrSession is the optional timing sub-object of a CDR callback.
type CdrSession struct {
	Token         string `json:"token,omitempty" form:"-"`
	CallStartTime int64  `json:"callStartTime,omitempty" form:"-"`
	AnswerTime    int64  `json:"answerTime,omitempty" form:"-"`
	EndTime       int64  `json:"endTime,omitempty" form:"-"`
	Direction     string `json:"direction,omitempty" form:"-"`
}

// CdrCallback is the carrier's final call-detail payload.
type CdrCallback struct {
	CallID      string      `json:"call_id" form:"call_id"`
	From        string      `json:"from" form:"from"`
	To          string      `json:"to" form:"to"`
	Domain      string      `json:"domain" form:"domain"`
	Disposition string      `json:"disposition" form:"disposition"`
	Duration    int         `json:"duration" form:"duration"`
	Billsec     int         `json:"billsec,omitempty" form:"billsec"`
	Subscriber  string      `json:"subscriber,omitempty" form:"subscriber"`
	CxTrunkID   string      `json:"cx_trunk_id,omitempty" form:"cx_trunk_id"`
	Application string      `json:"application,omitempty" form:"application"`
	Route       string      `json:"route,omitempty" form:"route"`
	VappServer  string      `json:"vapp_server,omitempty" form:"vapp_server"`
	Session     *CdrSession `json:"session,omitempty" form:"-"`
}

// Validate checks the required fields of a CDR callback.
func (c *CdrCallback) Validate() error {
	if c.CallID == "" {
		return services.NewValidationError("call_id", "required")
	}
	if c.From == "" {
		return services.NewValidationError("from", "required")
	}
	if c.To == "" {
		return services.NewValidationError("to", "required")
	}
	if c.Domain == "" {
		return services.NewValidationError("domain", "required")
	}
	if c.Disposition == "" {
		return services.NewValidationError("disposition", "required")
	}
	return nil
}

// EventID returns the natural idempotency id of the callback, falling back
// to a hash of the session token and call timestamps when the carrier omits
// the call id.
func (c *CdrCallback) EventID() string {
	if c.CallID != "" {
		return c.CallID
	}
	fields := map[string]interface{}{"token": c.sessionToken()}
	if c.Session != nil {
		fields["callStartTime"] = c.Session.CallStartTime
		fields["endTime"] = c.Session.EndTime
	}
	return fallbackEventID(KindCdr, fields)
}

// sessionToken returns the session token of the callback, when present.
func (c *CdrCallback) sessionToken() string {
	if c.Session == nil {
		return ""
	}
	return c.Session.Token
}

// MapDisposition normalizes a carrier disposition string to the stored set.
// Comparison is case-insensitive; anything unrecognized is FAILED.
func MapDisposition(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "CONNECTED", "ANSWERED", "ANSWER":
		return "ANSWER"
	case "BUSY":
		return "BUSY"
	case "CANCEL":
		return "CANCEL"
	case "CONGESTION":
		return "CONGESTION"
	case "NOANSWER", "NO ANSWER":
		return "NOANSWER"
	case "FAILED":
		return "FAILED"
	default:
		return "FAILED"
	}
}

// msTime converts epoch milliseconds to a *time.Time, nil when unset.
func msTime(ms int64) *time.Time {
	if ms <= 0 {
		return nil
	}
	t := time.UnixMilli(ms).UTC()
	return &t
}
