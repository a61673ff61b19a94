// Package keepalive runs the small HTTP server hosting platforms ping to
// keep the bot process alive. The Ganttify CRUD API itself lives elsewhere;
// this server only answers the probe routes.
package keepalive

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Server answers keepalive and health probes.
type Server struct {
	engine *gin.Engine
	logger *slog.Logger
}

// New builds the probe server.
func New(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	srv := &Server{engine: router, logger: logger}

	router.GET("/", srv.handleRoot)
	router.HEAD("/", srv.handleRoot)
	router.GET("/healthz", srv.handleHealth)

	return srv
}

// Engine exposes the underlying gin engine for http.Server wiring.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) handleRoot(c *gin.Context) {
	c.String(http.StatusOK, "Result: [OK]")
}

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
