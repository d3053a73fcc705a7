package http

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Yesho700/url-shortner/internal/metrics"
	"github.com/Yesho700/url-shortner/internal/ratelimit"
	"github.com/Yesho700/url-shortner/internal/service"
)

// Server represents the HTTP server
type Server struct {
	handler *Handler
	server  *http.Server
	port    string
}

// NewServer creates a new HTTP server. Every route except the
// operational endpoints passes through the rate limiter.
func NewServer(shortener service.URLShortener, limiter *ratelimit.Limiter, port, serverURL string, verbose bool) *Server {
	handler := NewHandler(shortener, serverURL)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /shorten", handler.Shorten)
	mux.HandleFunc("GET /clicks/long/{longUrl...}", handler.ClicksForLongURL)
	mux.HandleFunc("GET /clicks/short/{shortCode}", handler.ClicksForShortCode)
	mux.HandleFunc("GET /clicks/total", handler.TotalClicks)
	mux.HandleFunc("GET /healthz", handler.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Redirect endpoint (single path segment)
	mux.HandleFunc("GET /{code}", handler.Redirect)

	// Middleware chain, innermost first: rate limiting, metrics, logging
	rateLimitMiddleware := ratelimit.NewMiddleware(limiter, metrics.RateLimitedTotal.Inc, "/metrics", "/healthz")
	var finalHandler http.Handler = rateLimitMiddleware.Middleware(mux)

	finalHandler = NewMetricsMiddleware().Middleware(finalHandler)
	finalHandler = NewLoggingMiddleware(verbose).Middleware(finalHandler)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      finalHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		handler: handler,
		server:  server,
		port:    port,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	log.Printf("Server starting on port %s", s.port)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Server shutting down...")
	return s.server.Shutdown(ctx)
}

// Port returns the server port
func (s *Server) Port() string {
	return s.port
}

// Handler returns the server handler (useful for testing)
func (s *Server) Handler() *Handler {
	return s.handler
}
