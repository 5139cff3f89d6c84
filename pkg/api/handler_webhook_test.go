package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxroute/voxroute/pkg/webhook"
)

func TestDecodePayloadJSON(t *testing.T) {
	e := echo.New()
	body := `{"CallSid":"CA1","From":"+1999","To":"+1234567890","Direction":"inbound","Session":"tok-1","Extra":"kept"}`
	req := httptest.NewRequest(http.MethodPost, "/voice/application/acme", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var parsed webhook.ApplicationRequest
	raw, err := decodePayload(c, &parsed)
	require.NoError(t, err)

	assert.Equal(t, "CA1", parsed.CallSid)
	assert.Equal(t, "tok-1", parsed.Session)
	// Fields beyond the typed struct survive in the raw map.
	assert.Equal(t, "kept", raw["Extra"])
	assert.Equal(t, "+1999", raw["From"])
}

func TestDecodePayloadForm(t *testing.T) {
	e := echo.New()
	form := url.Values{
		"CallSid":   {"CA1"},
		"From":      {"+1999"},
		"To":        {"+1234567890"},
		"Direction": {"inbound"},
		"Session":   {"tok-1"},
	}
	req := httptest.NewRequest(http.MethodPost, "/voice/application/acme", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var parsed webhook.ApplicationRequest
	raw, err := decodePayload(c, &parsed)
	require.NoError(t, err)

	assert.Equal(t, "CA1", parsed.CallSid)
	assert.Equal(t, "inbound", parsed.Direction)
	assert.Equal(t, "tok-1", raw["Session"])
}

func TestDecodePayloadRejectsBadJSON(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/voice/application/acme", strings.NewReader(`{not json`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var parsed webhook.ApplicationRequest
	_, err := decodePayload(c, &parsed)
	assert.Error(t, err)
}

func TestCarrierHeaders(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("X-CX-APIKey", "secret")
	req.Header.Set("X-CX-Domain", "acme.example.com")
	c := e.NewContext(req, httptest.NewRecorder())

	hdr := carrierHeaders(c)
	assert.Equal(t, "secret", hdr.APIKey)
	assert.Equal(t, "acme.example.com", hdr.Domain)
}

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := securityHeaders()
	handler := mw(func(c *echo.Context) error { return c.String(http.StatusOK, "ok") })
	require.NoError(t, handler(c))

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
