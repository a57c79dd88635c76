package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/dealscout"
	"github.com/fwojciec/dealscout/analyze"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// ShutdownTimeout is the time given for outstanding requests to finish
// before the server is forcibly closed.
const ShutdownTimeout = 10 * time.Second

// DefaultSearchLimit is the number of searches returned by
// /recent-searches when no limit is given.
const DefaultSearchLimit = 10

// Status messages returned by the API.
const (
	MsgRunning        = "Fashion Deal Recommender Backend is running."
	MsgNoURL          = "No URL provided"
	MsgInvalidLimit   = "Invalid limit"
	MsgHistoryCleared = "Search history cleared"
)

// Server exposes product analysis and search history over HTTP.
type Server struct {
	ln     net.Listener
	server *http.Server
	router chi.Router

	// Bind address for the server's listener.
	Addr string

	// Services used by the handlers.
	Analyzer      dealscout.Analyzer
	SearchService dealscout.SearchService

	Logger *slog.Logger
}

// NewServer returns a Server with its routes registered. Services must be
// assigned before the server handles requests.
func NewServer() *Server {
	s := &Server{
		server: &http.Server{
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		router: chi.NewRouter(),
		Logger: slog.New(slog.DiscardHandler),
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.logRequests)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	s.router.Get("/", s.handleIndex)
	s.router.Get("/health", s.handleHealth)
	s.router.Post("/analyze-product", s.handleAnalyzeProduct)
	s.router.Get("/recent-searches", s.handleRecentSearches)
	s.router.Post("/clear-history", s.handleClearHistory)

	s.server.Handler = s.router
	return s
}

// Handler returns the root handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Open binds the listener and starts serving in a background goroutine.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Logger.Error("server stopped", "err", err)
		}
	}()
	return nil
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

type analyzeRequest struct {
	URL string `json:"url"`
}

type searchesResponse struct {
	Searches []*dealscout.SearchRecord `json:"searches"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(MsgRunning))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAnalyzeProduct(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		s.respondError(w, http.StatusBadRequest, MsgNoURL)
		return
	}

	result, err := s.Analyzer.Analyze(r.Context(), req.URL)
	if err != nil {
		s.Logger.Error("analyze failed", "url", req.URL, "err", err)
		s.respondError(w, http.StatusInternalServerError, dealscout.ErrorMessage(err))
		return
	}

	if !result.Failed() {
		s.recordSearch(r.Context(), req.URL, result)
	}

	s.respondJSON(w, http.StatusOK, result)
}

// recordSearch stores a successful analysis. Failures are logged only.
func (s *Server) recordSearch(ctx context.Context, url string, result *dealscout.AnalysisResult) {
	if s.SearchService == nil {
		return
	}
	rec := &dealscout.SearchRecord{
		URL:         url,
		ProductInfo: result.ProductInfo,
		Fingerprint: analyze.Fingerprint(result),
	}
	if err := s.SearchService.CreateSearch(ctx, rec); err != nil {
		s.Logger.Error("failed to record search", "url", url, "err", err)
	}
}

func (s *Server) handleRecentSearches(w http.ResponseWriter, r *http.Request) {
	limit := DefaultSearchLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			s.respondError(w, http.StatusBadRequest, MsgInvalidLimit)
			return
		}
		limit = n
	}

	searches, err := s.SearchService.FindSearches(r.Context(), dealscout.SearchFilter{Limit: limit})
	if err != nil {
		s.Logger.Error("failed to list searches", "err", err)
		s.respondError(w, http.StatusInternalServerError, dealscout.ErrorMessage(err))
		return
	}
	if searches == nil {
		searches = []*dealscout.SearchRecord{}
	}

	s.respondJSON(w, http.StatusOK, searchesResponse{Searches: searches})
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	n, err := s.SearchService.DeleteSearches(r.Context())
	if err != nil {
		s.Logger.Error("failed to clear history", "err", err)
		s.respondError(w, http.StatusInternalServerError, dealscout.ErrorMessage(err))
		return
	}
	s.Logger.Info("history cleared", "deleted", n)
	s.respondJSON(w, http.StatusOK, map[string]string{"message": MsgHistoryCleared})
}

// logRequests logs one line per request once the response is written.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func(begin time.Time) {
			s.Logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"request_id", middleware.GetReqID(r.Context()),
				"duration", time.Since(begin),
			)
		}(time.Now())
		next.ServeHTTP(ww, r)
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.Logger.Error("failed to encode response", "err", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
