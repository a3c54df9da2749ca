package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/omarshaarawi/leaguedash/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Reports is what the API serves; *service.FantasyService satisfies it.
type Reports interface {
	WeeklyAwards(ctx context.Context, year, week int) (models.WeekAwards, error)
	Luck(ctx context.Context, year int) ([]models.TeamLuck, error)
	PowerRatings(ctx context.Context, year int) ([]models.PowerRating, error)
	CoachRatings(ctx context.Context, year int) ([]models.CoachRating, error)
	TeamPerformance(ctx context.Context, year int) ([]models.TeamPerformance, error)
	Standings(ctx context.Context, year int) ([]models.TeamStanding, error)
	OptimalLineup(ctx context.Context, year int, teamName string, week int) (models.TeamLineup, error)
}

type Server struct {
	router  *mux.Router
	server  *http.Server
	reports Reports
	timeout time.Duration
}

type ctxKey string

const requestIDKey ctxKey = "request_id"

func New(addr string, reports Reports, gatherer prometheus.Gatherer) *Server {
	s := &Server{
		router:  mux.NewRouter(),
		reports: reports,
		timeout: 30 * time.Second,
	}
	s.setupRoutes(gatherer)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) setupRoutes(gatherer prometheus.Gatherer) {
	s.router.Use(s.requestIDMiddleware)
	s.router.Use(s.requestLoggingMiddleware)

	s.router.HandleFunc("/healthz", s.health).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api/seasons/{year:[0-9]{4}}").Subrouter()
	api.Use(s.timeoutMiddleware)
	api.HandleFunc("/awards/{week:[0-9]+}", s.awards).Methods(http.MethodGet)
	api.HandleFunc("/luck", s.luck).Methods(http.MethodGet)
	api.HandleFunc("/power", s.power).Methods(http.MethodGet)
	api.HandleFunc("/coach", s.coach).Methods(http.MethodGet)
	api.HandleFunc("/performance", s.performance).Methods(http.MethodGet)
	api.HandleFunc("/standings", s.standings).Methods(http.MethodGet)
	api.HandleFunc("/teams/{team}/lineup/{week:[0-9]+}", s.lineup).Methods(http.MethodGet)

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	slog.Info("Starting HTTP server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()[:8]
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) requestLoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r)

		slog.Info("Request",
			"request_id", r.Context().Value(requestIDKey),
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapper.statusCode,
			"duration", time.Since(start),
		)
	})
}

func (s *Server) timeoutMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
