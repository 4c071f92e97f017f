package verify

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These suites need a running API (and for the data suite, its database).
// They skip unless the environment points at one:
//
//	APP_URL=http://localhost:8000 DATABASE_URL=postgres://... go test ./internal/verify/

func appURLOrSkip(t *testing.T) string {
	t.Helper()
	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		t.Skipf("set APP_URL to run %s against a live service", t.Name())
	}
	return appURL
}

func TestLatencySuite_Integration(t *testing.T) {
	appURL := appURLOrSkip(t)

	probe := NewLatencyProbe(appURL, DefaultSLA(), nil)
	checks := probe.Run(context.Background())

	require.NotEmpty(t, checks)
	for _, c := range checks {
		assert.True(t, c.Passed, "%s/%s: %s", c.Suite, c.Name, c.Detail)
	}
}

func TestDataSuite_Integration(t *testing.T) {
	appURL := appURLOrSkip(t)
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("set DATABASE_URL to run the data-integrity suite")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Ping(ctx))

	verifier := NewDataVerifier(appURL, db, &http.Client{Timeout: 10 * time.Second})
	checks := verifier.Run(ctx)

	require.NotEmpty(t, checks)
	for _, c := range checks {
		assert.True(t, c.Passed, "%s/%s: %s", c.Suite, c.Name, c.Detail)
	}
}

func TestUISuite_Integration(t *testing.T) {
	appURL := appURLOrSkip(t)
	if os.Getenv("RUN_UI_TESTS") == "" {
		t.Skip("set RUN_UI_TESTS=1 to drive a headless browser")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	verifier := NewUIVerifier(appURL, true)
	checks := verifier.Run(ctx)

	require.NotEmpty(t, checks)
	for _, c := range checks {
		assert.True(t, c.Passed, "%s/%s: %s", c.Suite, c.Name, c.Detail)
	}
}
