package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"orbital.space/internal/catalog"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	srv, err := New(catalog.SolarSystem(), slog.New(slog.NewTextHandler(io.Discard, nil)), 20*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}

	return srv
}

func getJSON(t *testing.T, handler http.Handler, url string, into any) *httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, url, nil))

	if into != nil && recorder.Code == http.StatusOK {
		if err := json.Unmarshal(recorder.Body.Bytes(), into); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}

	return recorder
}

func TestHandleState(t *testing.T) {
	handler := testServer(t).Handler()

	var state stateDTO
	if recorder := getJSON(t, handler, "/api/v1/state", &state); recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}

	if state.Name != "Sun" {
		t.Errorf("root = %q, want Sun", state.Name)
	}
	if state.Position.Magnitude() != 0 {
		t.Errorf("root at epoch away from the origin: %+v", state.Position)
	}
	if len(state.Secondary) != 8 {
		t.Errorf("got %d planets, want 8", len(state.Secondary))
	}

	// Advancing time moves the planets.
	var later stateDTO
	getJSON(t, handler, "/api/v1/state?t=864000", &later)
	if state.Secondary[0].Position == later.Secondary[0].Position {
		t.Error("state did not change after ten days")
	}
}

func TestHandleStateDetail(t *testing.T) {
	handler := testServer(t).Handler()

	var moon stateDTO
	if recorder := getJSON(t, handler, "/api/v1/state/Moon?t=3600", &moon); recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}
	if moon.Name != "Moon" || len(moon.Secondary) != 0 {
		t.Errorf("got %+v, want the childless Moon", moon)
	}

	if recorder := getJSON(t, handler, "/api/v1/state/Vulcan", nil); recorder.Code != http.StatusNotFound {
		t.Errorf("unknown body status = %d, want 404", recorder.Code)
	}
	if recorder := getJSON(t, handler, "/api/v1/state?t=soon", nil); recorder.Code != http.StatusBadRequest {
		t.Errorf("invalid t status = %d, want 400", recorder.Code)
	}
}

func TestHandleStats(t *testing.T) {
	handler := testServer(t).Handler()

	var stats statsDTO
	if recorder := getJSON(t, handler, "/api/v1/stats", &stats); recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}

	if stats.PeriodSeconds != 0 {
		t.Errorf("root carries an orbital period: %v", stats.PeriodSeconds)
	}
	if stats.HZInnerKm <= 0 || stats.HZOuterKm <= stats.HZInnerKm {
		t.Errorf("solar habitable zone = [%v, %v] km", stats.HZInnerKm, stats.HZOuterKm)
	}

	var earth statsDTO
	getJSON(t, handler, "/api/v1/stats/Earth", &earth)
	if earth.PeriodSeconds < 3.1e7 || earth.PeriodSeconds > 3.2e7 {
		t.Errorf("Earth period = %v s, want about a year", earth.PeriodSeconds)
	}
	if earth.MinVelocityMs >= earth.MaxVelocityMs {
		t.Errorf("Earth min velocity %v not below max %v", earth.MinVelocityMs, earth.MaxVelocityMs)
	}
}

func TestHandleTrail(t *testing.T) {
	handler := testServer(t).Handler()

	var trail struct {
		Name   string `json:"name"`
		Points []struct {
			X float64 `json:"x"`
			Y float64 `json:"y"`
		} `json:"points_km"`
	}
	if recorder := getJSON(t, handler, "/api/v1/trail/Mars?segments=90", &trail); recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}
	if len(trail.Points) != 90 {
		t.Errorf("got %d points, want 90", len(trail.Points))
	}

	if recorder := getJSON(t, handler, "/api/v1/trail/Sun", nil); recorder.Code != http.StatusBadRequest {
		t.Errorf("orbitless root status = %d, want 400", recorder.Code)
	}
	if recorder := getJSON(t, handler, "/api/v1/trail/Mars?segments=-1", nil); recorder.Code != http.StatusBadRequest {
		t.Errorf("invalid segments status = %d, want 400", recorder.Code)
	}
}

func TestHandleSystemAndStatus(t *testing.T) {
	handler := testServer(t).Handler()

	var description catalog.System
	if recorder := getJSON(t, handler, "/api/v1/system", &description); recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}
	if description.Body.Name != "Sun" {
		t.Errorf("description root = %q, want Sun", description.Body.Name)
	}

	var status struct {
		Bodies int    `json:"bodies"`
		Extent string `json:"extent"`
	}
	getJSON(t, handler, "/api/v1/status", &status)
	if status.Bodies != 10 {
		t.Errorf("bodies = %d, want 10", status.Bodies)
	}
	if status.Extent == "" {
		t.Error("empty extent")
	}
}

func TestRateLimiting(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(1), 2)
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/api/v1/state", nil)
		request.RemoteAddr = "10.0.0.1:4242"
		handler.ServeHTTP(recorder, request)
		codes = append(codes, recorder.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("codes = %v, want burst of 2 then 429", codes)
	}

	// Another address owns a fresh bucket.
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/state", nil)
	request.RemoteAddr = "10.0.0.2:4242"
	handler.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusOK {
		t.Errorf("fresh address status = %d, want 200", recorder.Code)
	}
}

func TestStreamPushesStates(t *testing.T) {
	srv := testServer(t)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var first, second stateDTO
	if err := conn.ReadJSON(&first); err != nil {
		t.Fatal(err)
	}
	if err := conn.ReadJSON(&second); err != nil {
		t.Fatal(err)
	}

	if first.Name != "Sun" {
		t.Errorf("streamed root = %q, want Sun", first.Name)
	}
	if first.Secondary[0].Position == second.Secondary[0].Position {
		t.Error("consecutive frames did not advance")
	}

	// Pausing stops the simulated clock while frames keep flowing.
	if err := conn.WriteJSON(streamControl{Scale: 0}); err != nil {
		t.Fatal(err)
	}
}
