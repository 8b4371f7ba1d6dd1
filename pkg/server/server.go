package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/yurifrl/cockpit/pkg/config"
	"github.com/yurifrl/cockpit/pkg/export"
	"github.com/yurifrl/cockpit/pkg/labels"
	"github.com/yurifrl/cockpit/pkg/models"
	"github.com/yurifrl/cockpit/pkg/parser"
	"github.com/yurifrl/cockpit/pkg/service"
	"github.com/yurifrl/cockpit/pkg/summary"
)

// Server exposes the operation formatter over HTTP.
type Server struct {
	config    *config.Config
	logger    *log.Logger
	router    chi.Router
	labels    *labels.Labels
	processor *service.Processor
	results   *cache.Cache
	limiter   *rate.Limiter
}

// Result is a formatted batch, kept around so it can be exported later.
type Result struct {
	ID      string                `json:"id"`
	Rows    []models.FormattedRow `json:"rows"`
	Summary *summary.Summary      `json:"summary"`
}

// New creates a new HTTP server
func New(cfg *config.Config, l *labels.Labels, logger *log.Logger) *Server {
	s := &Server{
		config:    cfg,
		logger:    logger,
		router:    chi.NewRouter(),
		labels:    l,
		processor: service.NewProcessor(cfg, logger),
		results:   cache.New(cfg.Server.CacheTTL, 2*cfg.Server.CacheTTL),
		limiter:   rate.NewLimiter(rate.Limit(cfg.Server.RateLimit), cfg.Server.RateBurst),
	}
	s.setupRoutes()
	return s
}

// Handler returns the routed handler, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on addr until the server fails.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) setupRoutes() {
	s.router.Use(s.withLogging)
	s.router.Use(s.withRateLimit)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/labels", s.handleLabels)
		r.Post("/operations/format", s.handleFormat)
		r.Post("/operations/upload", s.handleUpload)
		r.Get("/operations/{id}", s.handleResult)
		r.Get("/exports/{file}", s.handleExport)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	if err := s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

func (s *Server) handleLabels(w http.ResponseWriter, _ *http.Request) {
	if err := s.writeJSON(w, http.StatusOK, s.labels.Spec()); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

// handleFormat accepts a JSON body, either an array of operations or an
// object with an "operations" array.
func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, s.config.Server.MaxUploadBytes)
	data, err := io.ReadAll(body)
	if err != nil {
		status := http.StatusBadRequest
		if errors.As(err, new(*http.MaxBytesError)) {
			status = http.StatusRequestEntityTooLarge
		}
		s.respondError(w, r, status, "failed to read body", err)
		return
	}
	s.format(w, r, data, "body.json")
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.config.Server.MaxUploadBytes); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "failed to read form", err)
		return
	}

	file, header, err := r.FormFile("operations")
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "operations file required", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to read file", err)
		return
	}
	s.format(w, r, data, header.Filename)
}

func (s *Server) format(w http.ResponseWriter, r *http.Request, data []byte, filename string) {
	rows, err := s.processor.Format(data, filename)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, parser.ErrUnknownFileType) {
			status = http.StatusUnsupportedMediaType
		}
		s.respondError(w, r, status, "failed to process operations", err)
		return
	}

	result := &Result{
		ID:      uuid.NewString(),
		Rows:    rows,
		Summary: summary.Build(rows),
	}
	s.results.Set(result.ID, result, cache.DefaultExpiration)
	s.logger.Info("formatted operations", "id", result.ID, "file", filename, "rows", len(rows))

	if err := s.writeJSON(w, http.StatusOK, result); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request, id string) (*Result, bool) {
	if _, err := uuid.Parse(id); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid result id", err)
		return nil, false
	}

	value, ok := s.results.Get(id)
	if !ok {
		s.respondError(w, r, http.StatusNotFound, "result not found", nil)
		return nil, false
	}
	result, ok := value.(*Result)
	if !ok {
		s.respondError(w, r, http.StatusInternalServerError, "internal type assertion error", nil)
		return nil, false
	}
	return result, true
}

func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	result, ok := s.lookup(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	if err := s.writeJSON(w, http.StatusOK, result); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

// handleExport serves /api/exports/<id>.<csv|xlsx>.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	id, ext, _ := strings.Cut(chi.URLParam(r, "file"), ".")
	format, err := export.ParseFormat(ext)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "unsupported export format", err)
		return
	}
	result, ok := s.lookup(w, r, id)
	if !ok {
		return
	}

	data, err := export.Write(format, result.Rows, nil)
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to export", err)
		return
	}

	filename := fmt.Sprintf("operations-%s.%s", result.ID, format)
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	if _, err := w.Write(data); err != nil {
		s.logger.Warn("failed to write export response", "err", err)
	}
}

// --- helpers ---

// writeJSON encodes v as JSON with the given status and writes headers.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// respondError logs the error and returns a minimal JSON error body.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		s.logger.Warn("request error", "status", status, "msg", message, "err", err, "method", r.Method, "path", r.URL.Path)
	} else {
		s.logger.Warn("request error", "status", status, "msg", message, "method", r.Method, "path", r.URL.Path)
	}
	_ = s.writeJSON(w, status, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// withLogging logs every request and recovers panics.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		s.logger.Debug("http request", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic recovered", "panic", rec, "method", r.Method, "path", r.URL.Path)
				s.respondError(w, r, http.StatusInternalServerError, "internal server error", fmt.Errorf("panic: %v", rec))
				return
			}
			s.logger.Debug("http response", "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			s.respondError(w, r, http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests), nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
