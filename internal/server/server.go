// Package server provides the HTTP API for scoring quizzes, generating plans and rendering reports.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/TheABX/runmvmtquiz-sub001/internal/config"
	"github.com/TheABX/runmvmtquiz-sub001/internal/logging"
	"github.com/TheABX/runmvmtquiz-sub001/internal/report"
	"github.com/TheABX/runmvmtquiz-sub001/internal/server/middleware"
	"github.com/TheABX/runmvmtquiz-sub001/internal/server/ratelimit"
)

// PDFPrinter turns rendered HTML into a PDF document.
type PDFPrinter interface {
	Print(ctx context.Context, html string) ([]byte, error)
}

// Options holds the collaborators of a Server. A nil Store disables persistence.
type Options struct {
	Store   Store
	Logger  *logging.Logger
	Printer PDFPrinter
	Limiter *ratelimit.Limiter
}

// Server represents the HTTP server
type Server struct {
	cfg         config.Config
	httpServer  *http.Server
	store       Store
	logger      *logging.Logger
	printer     PDFPrinter
	rateLimiter *ratelimit.Limiter
	validator   *validator.Validate
}

// New creates a new server instance. Missing options fall back to a no-op logger,
// headless Chrome PDF printing and the env-configured rate limiter.
func New(cfg config.Config, opts Options) *Server {
	s := &Server{
		cfg:         cfg,
		store:       opts.Store,
		logger:      opts.Logger,
		printer:     opts.Printer,
		rateLimiter: opts.Limiter,
		validator:   validator.New(),
	}
	if s.logger == nil {
		s.logger = logging.Nop()
	}
	if s.printer == nil {
		s.printer = report.PDFPrinter{ChromePath: cfg.ChromePath, Timeout: cfg.ReportTimeoutDuration()}
	}
	if s.rateLimiter == nil {
		s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())
	}

	port := cfg.Port
	if port == 0 {
		port = config.DefaultPort
	}
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.ReportTimeoutDuration() + 15*time.Second, // PDF reports wait on Chrome
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the routed handler with the middleware chain applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Scoring and plan generation
	mux.HandleFunc("POST /quiz/dating/score", s.handleDatingScore)
	mux.HandleFunc("POST /quiz/run/plan", s.handleRunPlan)
	mux.HandleFunc("POST /nutrition/plan", s.handleNutritionPlan)
	mux.HandleFunc("POST /screening/score", s.handleScreeningScore)
	mux.HandleFunc("POST /journey", s.handleJourney)

	// Stored results
	mux.HandleFunc("GET /users/{id}/results", s.handleListResults)
	mux.HandleFunc("GET /users/{id}/results/{quiz}", s.handleGetResult)
	mux.HandleFunc("DELETE /users/{id}/results", s.handleDeleteResults)

	mux.HandleFunc("POST /reports/{kind}", s.handleReport)

	return middleware.RequestID(s.withRateLimit(s.withLogging(s.withCORS(middleware.UserID(mux)))))
}

// Start listens until ctx is cancelled or the process receives SIGINT/SIGTERM,
// then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", s.httpServer.Addr, "persistence", s.store != nil)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			s.rateLimiter.Stop()
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}
	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	s.rateLimiter.Stop()

	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers. An empty AllowedOrigins list allows any origin.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(s.cfg.AllowedOrigins) == 0 {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		} else if origin := r.Header.Get("Origin"); slices.Contains(s.cfg.AllowedOrigins, origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+middleware.UserIDHeader+", "+middleware.RequestIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging logs every request once it completes.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetRequestID(r),
		)
	})
}

// pinger is implemented by stores that can check their connection.
type pinger interface {
	Ping(ctx context.Context) error
}

// handleHealth returns server health status. A store that fails its ping turns the response into a 503.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{
		"status":      "ok",
		"persistence": s.store != nil,
	}
	if p, ok := s.store.(pinger); ok {
		if err := p.Ping(r.Context()); err != nil {
			s.logger.Warn("health check ping failed", "error", err)
			body["status"] = "degraded"
			s.jsonResponse(w, http.StatusServiceUnavailable, body)
			return
		}
	}
	s.jsonResponse(w, http.StatusOK, body)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", "error", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID returns the client IP from RemoteAddr.
// X-Forwarded-For is ignored until a trusted proxy list exists.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
	}
	if !info.ResetTime.IsZero() {
		response["reset_at"] = info.ResetTime.Format(time.RFC3339)
	}
	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Seconds()) + 1
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	s.logger.Warn("rate limit exceeded", "path", r.URL.Path, "limit", info.Limit, "client", s.extractClientID(r))
	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
