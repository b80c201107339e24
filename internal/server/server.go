// Package server exposes an orbital system over HTTP: time-domain state
// queries, static statistics, orbit trails and a live WebSocket stream.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/time/rate"

	"orbital.space/internal/catalog"
	"orbital.space/pkg/cartesian"
	"orbital.space/pkg/orbit"
)

// Server answers queries about one orbital system. The system tree is
// immutable; every request derives fresh values from it, so handlers need
// no locking.
type Server struct {
	system      *orbit.System
	description catalog.System
	stats       orbit.SystemStats
	logger      *slog.Logger
	metrics     *MetricsCollector
	limiter     *IPRateLimiter
	tick        time.Duration
	started     time.Time
}

// New returns a server over the given system description. Stats never
// change for a given tree, so they are computed here once and served from
// cache. The tick is the simulated time between two frames of the live
// stream at scale one.
func New(description catalog.System, logger *slog.Logger, tick time.Duration) (*Server, error) {
	system, err := description.Build()
	if err != nil {
		return nil, err
	}

	return &Server{
		system:      system,
		description: description,
		stats:       system.Stats(),
		logger:      logger,
		metrics:     NewMetricsCollector(),
		limiter:     NewIPRateLimiter(rate.Limit(50), 100),
		tick:        tick,
		started:     time.Now(),
	}, nil
}

// Handler returns the routed and rate-limited HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/state", s.handleState)
	mux.HandleFunc("/api/v1/state/", s.handleStateDetail)
	mux.HandleFunc("/api/v1/stats", s.handleStats)
	mux.HandleFunc("/api/v1/stats/", s.handleStatsDetail)
	mux.HandleFunc("/api/v1/system", s.handleSystem)
	mux.HandleFunc("/api/v1/trail/", s.handleTrail)
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/ws", s.handleStream)
	mux.Handle("/metrics", s.metrics.Handler())

	return s.limiter.Middleware(mux)
}

// stateDTO mirrors orbit.SystemState at the wire boundary: kilometers,
// radians and meters per second.
type stateDTO struct {
	Name      string           `json:"name"`
	Position  cartesian.Coords `json:"position_km"`
	Rotation  float64          `json:"rotation_rads"`
	Theta     float64          `json:"theta_rads"`
	Velocity  float64          `json:"velocity_ms"`
	Secondary []stateDTO       `json:"secondary,omitempty"`
}

func newStateDTO(state orbit.SystemState) stateDTO {
	dto := stateDTO{
		Name:     state.Name,
		Position: state.Position,
		Rotation: state.Rotation.Radians(),
		Theta:    state.Theta.Radians(),
		Velocity: state.Velocity.MetersPerSecond(),
	}

	for _, child := range state.Secondary {
		dto.Secondary = append(dto.Secondary, newStateDTO(child))
	}

	return dto
}

// statsDTO mirrors orbit.SystemStats at the wire boundary.
type statsDTO struct {
	Name          string     `json:"name"`
	RadiusKm      float64    `json:"radius_km"`
	PerimeterKm   float64    `json:"perimeter_km"`
	PeriodSeconds float64    `json:"period_seconds"`
	MinVelocityMs float64    `json:"min_velocity_ms"`
	MaxVelocityMs float64    `json:"max_velocity_ms"`
	HZInnerKm     float64    `json:"habitable_zone_inner_km"`
	HZOuterKm     float64    `json:"habitable_zone_outer_km"`
	Secondary     []statsDTO `json:"secondary,omitempty"`
}

func newStatsDTO(stats orbit.SystemStats) statsDTO {
	dto := statsDTO{
		Name:          stats.Name,
		RadiusKm:      stats.Radius.Kilometers(),
		PerimeterKm:   stats.Perimeter.Kilometers(),
		PeriodSeconds: stats.Period.Seconds(),
		MinVelocityMs: stats.MinVelocity.MetersPerSecond(),
		MaxVelocityMs: stats.MaxVelocity.MetersPerSecond(),
		HZInnerKm:     stats.HabitableZone.Inner.Kilometers(),
		HZOuterKm:     stats.HabitableZone.Outer.Kilometers(),
	}

	for _, child := range stats.Secondary {
		dto.Secondary = append(dto.Secondary, newStatsDTO(child))
	}

	return dto
}

// timeParam reads the t query parameter as seconds since epoch. Absent
// means epoch itself; negative values are allowed and play the system
// backwards.
func timeParam(r *http.Request) (time.Duration, error) {
	raw := r.URL.Query().Get("t")
	if raw == "" {
		return 0, nil
	}

	seconds, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}

	return time.Duration(seconds * float64(time.Second)), nil
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	at, err := timeParam(r)
	if err != nil {
		s.reject(w, "state", "invalid t parameter", http.StatusBadRequest)
		return
	}

	start := time.Now()
	state := s.system.StateAt(at)
	s.metrics.RecordStateComputation("state", time.Since(start))

	s.respond(w, "state", newStateDTO(state))
}

func (s *Server) handleStateDetail(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/api/v1/state/")

	at, err := timeParam(r)
	if err != nil {
		s.reject(w, "state", "invalid t parameter", http.StatusBadRequest)
		return
	}

	start := time.Now()
	state := s.system.StateAt(at)
	s.metrics.RecordStateComputation("state", time.Since(start))

	found := state.State(name)
	if found == nil {
		s.reject(w, "state", "unknown body", http.StatusNotFound)
		return
	}

	s.respond(w, "state", newStateDTO(*found))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.respond(w, "stats", newStatsDTO(s.stats))
}

func (s *Server) handleStatsDetail(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/api/v1/stats/")

	found := s.stats.Stats(name)
	if found == nil {
		s.reject(w, "stats", "unknown body", http.StatusNotFound)
		return
	}

	s.respond(w, "stats", newStatsDTO(*found))
}

func (s *Server) handleSystem(w http.ResponseWriter, r *http.Request) {
	s.respond(w, "system", s.description)
}

// handleTrail samples the named body's orbit into a discrete point
// sequence, for rendering the path itself rather than the body's motion.
func (s *Server) handleTrail(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/api/v1/trail/")

	node := s.system.System(name)
	if node == nil {
		s.reject(w, "trail", "unknown body", http.StatusNotFound)
		return
	}
	if node.Orbit == nil {
		s.reject(w, "trail", "body has no orbit", http.StatusBadRequest)
		return
	}

	segments := 360
	if raw := r.URL.Query().Get("segments"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 100000 {
			s.reject(w, "trail", "invalid segments parameter", http.StatusBadRequest)
			return
		}

		segments = parsed
	}

	sampler, ok := node.Orbit.(cartesian.Sampler)
	if !ok {
		s.reject(w, "trail", "orbit cannot be sampled", http.StatusBadRequest)
		return
	}

	s.respond(w, "trail", struct {
		Name   string             `json:"name"`
		Points []cartesian.Coords `json:"points_km"`
	}{Name: name, Points: sampler.Sample(segments).Points})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.respond(w, "status", struct {
		Root    string `json:"root"`
		Bodies  int    `json:"bodies"`
		Extent  string `json:"extent"`
		Started string `json:"started"`
		TickMs  int64  `json:"tick_ms"`
	}{
		Root:    s.system.Primary.Name,
		Bodies:  countBodies(s.system),
		Extent:  humanize.SIWithDigits(s.system.Radius().Meters(), 2, "m"),
		Started: humanize.Time(s.started),
		TickMs:  s.tick.Milliseconds(),
	})
}

func countBodies(system *orbit.System) int {
	total := 1
	for index := range system.Secondary {
		total += countBodies(&system.Secondary[index])
	}

	return total
}

func (s *Server) respond(w http.ResponseWriter, endpoint string, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response encoding failed", "endpoint", endpoint, "error", err)
		return
	}

	s.metrics.RecordRequest(endpoint, http.StatusOK)
}

func (s *Server) reject(w http.ResponseWriter, endpoint, message string, status int) {
	http.Error(w, message, status)
	s.metrics.RecordRequest(endpoint, status)
}
