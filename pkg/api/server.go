package api

import (
	"context"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/voxroute/voxroute/pkg/config"
	"github.com/voxroute/voxroute/pkg/database"
	"github.com/voxroute/voxroute/pkg/events"
	"github.com/voxroute/voxroute/pkg/services"
	"github.com/voxroute/voxroute/pkg/store"
	"github.com/voxroute/voxroute/pkg/webhook"
)

// Server is the HTTP surface of the engine: the three carrier webhook
// endpoints, the dashboard WebSocket, and health.
type Server struct {
	cfg         *config.Config
	dbClient    *database.Client
	store       *store.Store
	pipeline    *webhook.Pipeline
	tenants     *services.TenantService
	connManager *events.ConnectionManager

	echo       *echo.Echo
	httpServer *http.Server
}

// NewServer creates a new Server and registers its routes.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	st *store.Store,
	pipeline *webhook.Pipeline,
	tenants *services.TenantService,
	connManager *events.ConnectionManager,
) *Server {
	s := &Server{
		cfg:         cfg,
		dbClient:    dbClient,
		store:       st,
		pipeline:    pipeline,
		tenants:     tenants,
		connManager: connManager,
	}

	e := echo.New()
	e.Use(securityHeaders())

	e.POST("/voice/application/:domain", s.applicationHandler)
	e.POST("/voice/session/update/:domain", s.sessionUpdateHandler)
	e.POST("/voice/session/cdr/:domain", s.cdrHandler)
	e.GET("/health", s.healthHandler)
	e.GET("/ws", s.wsHandler)

	s.echo = e
	return s
}

// Start listens on addr and serves until Shutdown. Blocks.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.echo,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests within the context's deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
