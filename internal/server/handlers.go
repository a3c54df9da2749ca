package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/omarshaarawi/leaguedash/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// respond maps service errors onto status codes. Anything that is not the
// caller's fault is treated as an upstream failure.
func respond(w http.ResponseWriter, r *http.Request, v interface{}, err error) {
	if err == nil {
		writeJSON(w, http.StatusOK, v)
		return
	}

	if errors.Is(err, service.ErrTeamNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	slog.Error("Failed to build report", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusBadGateway, "upstream league data unavailable")
}

func intVar(r *http.Request, name string) (int, error) {
	return strconv.Atoi(mux.Vars(r)[name])
}

// pathInts parses the named route variables, writing a 400 on the first bad one.
func pathInts(w http.ResponseWriter, r *http.Request, names ...string) ([]int, bool) {
	out := make([]int, len(names))
	for i, name := range names {
		v, err := intVar(r, name)
		if err != nil || v <= 0 {
			writeError(w, http.StatusBadRequest, "invalid "+name)
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) awards(w http.ResponseWriter, r *http.Request) {
	v, ok := pathInts(w, r, "year", "week")
	if !ok {
		return
	}
	awards, err := s.reports.WeeklyAwards(r.Context(), v[0], v[1])
	respond(w, r, awards, err)
}

func (s *Server) luck(w http.ResponseWriter, r *http.Request) {
	v, ok := pathInts(w, r, "year")
	if !ok {
		return
	}
	luck, err := s.reports.Luck(r.Context(), v[0])
	respond(w, r, luck, err)
}

func (s *Server) power(w http.ResponseWriter, r *http.Request) {
	v, ok := pathInts(w, r, "year")
	if !ok {
		return
	}
	power, err := s.reports.PowerRatings(r.Context(), v[0])
	respond(w, r, power, err)
}

func (s *Server) coach(w http.ResponseWriter, r *http.Request) {
	v, ok := pathInts(w, r, "year")
	if !ok {
		return
	}
	coach, err := s.reports.CoachRatings(r.Context(), v[0])
	respond(w, r, coach, err)
}

func (s *Server) performance(w http.ResponseWriter, r *http.Request) {
	v, ok := pathInts(w, r, "year")
	if !ok {
		return
	}
	perf, err := s.reports.TeamPerformance(r.Context(), v[0])
	respond(w, r, perf, err)
}

func (s *Server) standings(w http.ResponseWriter, r *http.Request) {
	v, ok := pathInts(w, r, "year")
	if !ok {
		return
	}
	standings, err := s.reports.Standings(r.Context(), v[0])
	respond(w, r, standings, err)
}

func (s *Server) lineup(w http.ResponseWriter, r *http.Request) {
	v, ok := pathInts(w, r, "year", "week")
	if !ok {
		return
	}
	lineup, err := s.reports.OptimalLineup(r.Context(), v[0], mux.Vars(r)["team"], v[1])
	respond(w, r, lineup, err)
}
