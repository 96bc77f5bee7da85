// Package ui is the JSON transport boundary. It exposes the upload
// registry and the analysis report over HTTP; all rendering belongs to
// the consumers of these endpoints.
package ui

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"complaintscope/app"
	"complaintscope/internal/config"
	apperrors "complaintscope/internal/errors"
)

// Server wraps the gin engine around one session's analysis service.
type Server struct {
	router  *gin.Engine
	service *app.AnalysisService
	cfg     *config.Config

	// The operator model is single-session; the mutex only serializes
	// overlapping HTTP requests hitting the one shared registry.
	mu sync.Mutex
}

// NewServer creates the server and registers routes.
func NewServer(service *app.AnalysisService, cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Server{
		router:  gin.Default(),
		service: service,
		cfg:     cfg,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.router.Group("/api")
	api.POST("/uploads", s.handleUpload)
	api.GET("/uploads", s.handleListUploads)
	api.POST("/uploads/:index/select", s.handleSelectUpload)
	api.DELETE("/uploads/:index", s.handleRemoveUpload)
	api.DELETE("/uploads", s.handleClearUploads)
	api.GET("/report", s.handleReport)
}

// Router returns the underlying handler, used by tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run starts serving on addr.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// statusForError maps error codes to HTTP statuses. Ingestion-shape errors
// are client errors; OUT_OF_RANGE means the caller named a nonexistent
// registry entry.
func statusForError(err error) int {
	switch apperrors.GetCode(err) {
	case apperrors.CodeOutOfRange, apperrors.CodeNoUpload, apperrors.CodeSheetNotFound:
		return http.StatusNotFound
	case apperrors.CodeUnreadableWorkbook, apperrors.CodeNoSheets, apperrors.CodeEmptySelection:
		return http.StatusUnprocessableEntity
	case apperrors.CodeInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{
		"error": err.Error(),
		"code":  apperrors.GetCode(err),
	})
}
