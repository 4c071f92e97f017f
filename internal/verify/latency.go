package verify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// SLA is the per-endpoint response-time budget. A single measurement over
// budget fails the run; there are no retries.
type SLA struct {
	Health        time.Duration
	GetInventory  time.Duration
	PostInventory time.Duration
	PostMove      time.Duration
}

// DefaultSLA thresholds carried over from the service's latency contract.
func DefaultSLA() SLA {
	return SLA{
		Health:        100 * time.Millisecond,
		GetInventory:  200 * time.Millisecond,
		PostInventory: 300 * time.Millisecond,
		PostMove:      300 * time.Millisecond,
	}
}

const latencySuite = "latency"

// LatencyProbe issues timed HTTP calls against the running API and fails any
// call whose wall-clock latency exceeds its SLA threshold.
type LatencyProbe struct {
	baseURL string
	client  *http.Client
	sla     SLA
}

// NewLatencyProbe builds the probe. A nil client gets a default with a
// generous transport timeout so slow responses are measured, not aborted.
func NewLatencyProbe(baseURL string, sla SLA, client *http.Client) *LatencyProbe {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &LatencyProbe{baseURL: baseURL, client: client, sla: sla}
}

// Run executes every latency check and returns one Check per measurement.
func (p *LatencyProbe) Run(ctx context.Context) []Check {
	var checks []Check
	checks = append(checks, p.checkEndpoint(ctx, "health", http.MethodGet, "/health", nil, http.StatusOK, p.sla.Health))
	checks = append(checks, p.checkEndpoint(ctx, "get_inventory", http.MethodGet, "/inventory", nil, http.StatusOK, p.sla.GetInventory))
	checks = append(checks, p.checkPostInventory(ctx))
	checks = append(checks, p.checkPostMove(ctx)...)
	checks = append(checks, p.checkConsistency(ctx, 10))
	return checks
}

func (p *LatencyProbe) checkEndpoint(ctx context.Context, name, method, path string, body any, wantStatus int, budget time.Duration) Check {
	status, elapsed, err := p.timedRequest(ctx, method, path, body)
	if err != nil {
		return fail(latencySuite, name, elapsed, "%s %s: %v", method, path, err)
	}
	if status != wantStatus {
		return fail(latencySuite, name, elapsed, "%s %s: status %d, want %d", method, path, status, wantStatus)
	}
	if elapsed > budget {
		return fail(latencySuite, name, elapsed, "%s %s took %s, limit is %s", method, path, elapsed.Round(time.Millisecond), budget)
	}
	return pass(latencySuite, name, elapsed, "%s %s in %s (limit %s)", method, path, elapsed.Round(time.Millisecond), budget)
}

func (p *LatencyProbe) checkPostInventory(ctx context.Context) Check {
	body := map[string]any{
		"name":     "Latency Probe " + uuid.New().String(),
		"quantity": 10,
		"location": "Warehouse A",
	}
	return p.checkEndpoint(ctx, "post_inventory", http.MethodPost, "/inventory", body, http.StatusCreated, p.sla.PostInventory)
}

func (p *LatencyProbe) checkPostMove(ctx context.Context) []Check {
	name := "Move Probe " + uuid.New().String()

	// Setup call, not measured against the SLA.
	status, _, err := p.timedRequest(ctx, http.MethodPost, "/inventory", map[string]any{
		"name": name, "quantity": 100, "location": "Warehouse A",
	})
	if err != nil || status != http.StatusCreated {
		return []Check{fail(latencySuite, "post_move", 0, "setup item for move failed: status %d, err %v", status, err)}
	}

	move := map[string]any{
		"item":          name,
		"quantity":      10,
		"from_location": "Warehouse A",
		"to_location":   "Warehouse B",
	}
	return []Check{p.checkEndpoint(ctx, "post_move", http.MethodPost, "/move", move, http.StatusOK, p.sla.PostMove)}
}

// checkConsistency runs n sequential GET /inventory calls; the slowest one
// must still meet the SLA.
func (p *LatencyProbe) checkConsistency(ctx context.Context, n int) Check {
	var max, total time.Duration
	for i := 0; i < n; i++ {
		status, elapsed, err := p.timedRequest(ctx, http.MethodGet, "/inventory", nil)
		if err != nil {
			return fail(latencySuite, "consistency", elapsed, "request %d/%d: %v", i+1, n, err)
		}
		if status != http.StatusOK {
			return fail(latencySuite, "consistency", elapsed, "request %d/%d: status %d", i+1, n, status)
		}
		total += elapsed
		if elapsed > max {
			max = elapsed
		}
	}
	avg := total / time.Duration(n)
	if max > p.sla.GetInventory {
		return fail(latencySuite, "consistency", max, "%d requests, max %s exceeded limit %s (avg %s)",
			n, max.Round(time.Millisecond), p.sla.GetInventory, avg.Round(time.Millisecond))
	}
	return pass(latencySuite, "consistency", max, "%d requests, avg %s, max %s (limit %s)",
		n, avg.Round(time.Millisecond), max.Round(time.Millisecond), p.sla.GetInventory)
}

// timedRequest measures wall-clock time of one request including reading the
// full body.
func (p *LatencyProbe) timedRequest(ctx context.Context, method, path string, body any) (int, time.Duration, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, 0, fmt.Errorf("marshal body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reader)
	if err != nil {
		return 0, 0, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		return 0, time.Since(start), err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, time.Since(start), nil
}
