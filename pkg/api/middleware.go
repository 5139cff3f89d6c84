package api

import (
	echo "github.com/labstack/echo/v5"

	"github.com/voxroute/voxroute/pkg/webhook"
)

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			return next(c)
		}
	}
}

// carrierHeaders extracts the carrier's tenant-identifying headers.
func carrierHeaders(c *echo.Context) webhook.Headers {
	return webhook.Headers{
		APIKey: c.Request().Header.Get("X-CX-APIKey"),
		Domain: c.Request().Header.Get("X-CX-Domain"),
	}
}
