// Package ui exposes the report pipeline over HTTP for interactive use:
// dataset upload, overview, imputation, on-screen statistics and charts,
// and full document generation.
package ui

import (
	"datareport/app"
	"datareport/internal"
	"datareport/internal/config"
	"datareport/ports"

	"github.com/gin-gonic/gin"
)

// Server represents the web server for the report generator UI
type Server struct {
	router   *gin.Engine
	store    *DatasetStore
	service  *app.ReportService
	analyzer ports.Analyzer
	charts   ports.ChartRenderer
	renderer ports.DocumentRenderer
	cfg      *config.Config
	log      *internal.Logger
}

// NewServer creates a new web server instance. The analyzer and chart
// renderer back the on-screen statistics and chart endpoints, independent
// of full document generation.
func NewServer(cfg *config.Config, service *app.ReportService, analyzer ports.Analyzer, charts ports.ChartRenderer, renderer ports.DocumentRenderer) *Server {
	gin.SetMode(cfg.Server.GinMode)
	s := &Server{
		router:   gin.Default(),
		store:    NewDatasetStore(),
		service:  service,
		analyzer: analyzer,
		charts:   charts,
		renderer: renderer,
		cfg:      cfg,
		log:      internal.NewComponentLogger("ui"),
	}
	s.router.MaxMultipartMemory = cfg.Upload.MaxBytes
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.router.Group("/api")
	{
		api.POST("/datasets", s.handleUpload)
		api.GET("/datasets/:id", s.handleOverview)
		api.POST("/datasets/:id/impute", s.handleImpute)
		api.GET("/datasets/:id/stats", s.handleStats)
		api.GET("/datasets/:id/charts/:kind", s.handleChart)
		api.POST("/datasets/:id/report", s.handleReport)
		api.DELETE("/datasets/:id", s.handleDelete)
	}
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}

// Router exposes the gin engine, primarily for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server and blocks until it exits.
func (s *Server) Run() error {
	addr := ":" + s.cfg.Server.Port
	s.log.Info("listening on %s", addr)
	return s.router.Run(addr)
}
