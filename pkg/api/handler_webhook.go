package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/voxroute/voxroute/pkg/ccml"
	"github.com/voxroute/voxroute/pkg/webhook"
)

// maxWebhookBody caps carrier payloads. CDRs with full session sub-objects
// stay well under this.
const maxWebhookBody = 1 << 20

// applicationHandler handles POST /voice/application/:domain.
// The carrier needs valid CCML no matter what: every failure collapses to a
// hangup document with a 200.
func (s *Server) applicationHandler(c *echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), s.cfg.WebhookTimeout)
	defer cancel()

	domain := c.Param("domain")

	var req webhook.ApplicationRequest
	raw, err := decodePayload(c, &req)
	if err != nil {
		slog.Warn("Malformed application request", "domain", domain, "error", err)
		return respondCCML(c, ccml.Hangup())
	}

	doc := s.pipeline.HandleApplication(ctx, domain, carrierHeaders(c), &req, raw)
	return respondCCML(c, doc)
}

// sessionUpdateHandler handles POST /voice/session/update/:domain.
// Always answers 200 "OK": the carrier retries non-2xx, and a rejected
// update must not come back.
func (s *Server) sessionUpdateHandler(c *echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), s.cfg.WebhookTimeout)
	defer cancel()

	domain := c.Param("domain")

	var upd webhook.SessionUpdate
	raw, err := decodePayload(c, &upd)
	if err != nil {
		slog.Warn("Malformed session update", "domain", domain, "error", err)
		return c.String(http.StatusOK, "OK")
	}

	if err := s.pipeline.HandleSessionUpdate(ctx, domain, carrierHeaders(c), &upd, raw); err != nil {
		slog.Warn("Session update failed",
			"domain", domain, "token", upd.Token, "error", err)
	}
	return c.String(http.StatusOK, "OK")
}

// cdrHandler handles POST /voice/session/cdr/:domain.
func (s *Server) cdrHandler(c *echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), s.cfg.WebhookTimeout)
	defer cancel()

	domain := c.Param("domain")

	var cdr webhook.CdrCallback
	raw, err := decodePayload(c, &cdr)
	if err != nil {
		slog.Warn("Malformed CDR callback", "domain", domain, "error", err)
		return c.String(http.StatusOK, "OK")
	}

	if err := s.pipeline.HandleCdr(ctx, domain, carrierHeaders(c), &cdr, raw); err != nil {
		slog.Warn("CDR callback failed",
			"domain", domain, "call_id", cdr.CallID, "error", err)
	}
	return c.String(http.StatusOK, "OK")
}

func respondCCML(c *echo.Context, doc string) error {
	return c.Blob(http.StatusOK, "application/xml", []byte(doc))
}

// decodePayload reads the request body once and produces both the typed
// payload and the raw map kept for audit and idempotency hashing. The
// carrier posts either JSON or form-encoded bodies.
func decodePayload(c *echo.Context, v interface{}) (map[string]interface{}, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return nil, err
	}
	// Restore the body so echo's binder can read it too.
	c.Request().Body = io.NopCloser(bytes.NewReader(body))

	if err := c.Bind(v); err != nil {
		return nil, err
	}

	raw := make(map[string]interface{})
	ctype := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
		if err := json.Unmarshal(body, &raw); err != nil {
			return nil, err
		}
		return raw, nil
	}

	values, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, err
	}
	for k := range values {
		raw[k] = values.Get(k)
	}
	return raw, nil
}
