package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"orbital.space/pkg/orbit"
)

// Upgrader with a permissive origin check, since the stream is read-only
// and carries no credentials.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// streamControl is the only message a client may send: a time-scale
// multiplier applied to the simulated step of every following frame. A
// negative scale plays the system backwards, zero pauses it.
type streamControl struct {
	Scale float64 `json:"scale"`
}

// handleStream pushes one system state per tick over a WebSocket, with the
// simulated clock advancing tick·scale per frame. Each session owns its
// generator, so two clients can watch the same system at different speeds.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("stream upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	session := uuid.NewString()
	logger := s.logger.With("session", session, "remote", r.RemoteAddr)
	logger.Info("stream opened")

	s.metrics.StreamOpened()
	defer s.metrics.StreamClosed()

	done := make(chan struct{})
	defer close(done)

	controls := make(chan streamControl)
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			var control streamControl
			if err := conn.ReadJSON(&control); err != nil {
				return
			}

			select {
			case controls <- control:
			case <-done:
				return
			}
		}
	}()

	generator := orbit.NewStateGenerator(s.system, s.tick)
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			logger.Info("stream closed", "elapsed", generator.Elapsed())
			return

		case control := <-controls:
			generator.SetStep(time.Duration(control.Scale * float64(s.tick)))
			logger.Info("stream scale changed", "scale", control.Scale)

		case <-ticker.C:
			if err := conn.WriteJSON(newStateDTO(generator.Next())); err != nil {
				logger.Warn("stream write failed", "error", err)
				return
			}

			s.metrics.RecordStreamedState()
		}
	}
}
