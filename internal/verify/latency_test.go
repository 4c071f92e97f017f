package verify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI is a minimal stand-in for the real service: it answers every probe
// endpoint with the right status and an optional artificial delay.
func fakeAPI(delay time.Duration) *httptest.Server {
	mux := http.NewServeMux()
	respond := func(w http.ResponseWriter, status int, body any) {
		time.Sleep(delay)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, map[string]string{"status": "healthy"})
	})
	mux.HandleFunc("GET /inventory", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, []any{})
	})
	mux.HandleFunc("POST /inventory", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusCreated, map[string]any{"id": 1})
	})
	mux.HandleFunc("POST /move", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, map[string]any{"message": "ok"})
	})
	return httptest.NewServer(mux)
}

func testSLA(budget time.Duration) SLA {
	return SLA{Health: budget, GetInventory: budget, PostInventory: budget, PostMove: budget}
}

func TestLatencyProbe_FastServerPasses(t *testing.T) {
	srv := fakeAPI(0)
	defer srv.Close()

	probe := NewLatencyProbe(srv.URL, testSLA(2*time.Second), srv.Client())
	checks := probe.Run(context.Background())

	require.NotEmpty(t, checks)
	for _, c := range checks {
		assert.True(t, c.Passed, "%s: %s", c.Name, c.Detail)
	}
}

func TestLatencyProbe_SlowServerFailsEveryMeasurement(t *testing.T) {
	srv := fakeAPI(30 * time.Millisecond)
	defer srv.Close()

	probe := NewLatencyProbe(srv.URL, testSLA(time.Millisecond), srv.Client())
	checks := probe.Run(context.Background())

	require.NotEmpty(t, checks)
	for _, c := range checks {
		assert.False(t, c.Passed, "%s should exceed a 1ms budget", c.Name)
		assert.Contains(t, c.Detail, "limit")
	}
}

func TestLatencyProbe_WrongStatusFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	probe := NewLatencyProbe(srv.URL, testSLA(time.Second), srv.Client())
	checks := probe.Run(context.Background())

	report := Report{}
	for _, c := range checks {
		report.Add(c)
	}
	assert.False(t, report.OK(), "a 500 on every endpoint must fail the suite")
	assert.Equal(t, len(checks), report.Failed())
}

func TestLatencyProbe_UnreachableServer(t *testing.T) {
	probe := NewLatencyProbe("http://127.0.0.1:1", testSLA(time.Second), &http.Client{Timeout: time.Second})
	checks := probe.Run(context.Background())

	require.NotEmpty(t, checks)
	for _, c := range checks {
		assert.False(t, c.Passed)
	}
}

func TestDefaultSLA(t *testing.T) {
	sla := DefaultSLA()
	assert.Equal(t, 100*time.Millisecond, sla.Health)
	assert.Equal(t, 200*time.Millisecond, sla.GetInventory)
	assert.Equal(t, 300*time.Millisecond, sla.PostInventory)
	assert.Equal(t, 300*time.Millisecond, sla.PostMove)
}
