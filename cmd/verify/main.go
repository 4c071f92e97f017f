package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/factoryflow/factoryflow-api/internal/infrastructure/postgres"
	"github.com/factoryflow/factoryflow-api/internal/verify"
	"github.com/factoryflow/factoryflow-api/pkg/config"
	"github.com/factoryflow/factoryflow-api/pkg/logger"
)

// verify runs the verification harness against a live deployment:
//
//	verify -suite latency,data,ui
//
// APP_URL selects the deployment, DATABASE_URL the database for the
// data-integrity suite, HEADLESS the browser mode for the UI suite.
func main() {
	suites := flag.String("suite", "latency,data,ui", "comma-separated suites to run (latency, data, ui)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	selected := map[string]bool{}
	for _, s := range strings.Split(*suites, ",") {
		selected[strings.TrimSpace(s)] = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	report := &verify.Report{}

	if selected["latency"] {
		log.Info().Str("target", cfg.Verify.AppURL).Msg("running latency suite")
		probe := verify.NewLatencyProbe(cfg.Verify.AppURL, verify.DefaultSLA(), nil)
		for _, c := range probe.Run(ctx) {
			report.Add(c)
		}
	}

	if selected["data"] {
		log.Info().Msg("running data-integrity suite")
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("direct database connection")
		}
		dv := verify.NewDataVerifier(cfg.Verify.AppURL, pool, nil)
		for _, c := range dv.Run(ctx) {
			report.Add(c)
		}
		pool.Close()
	}

	if selected["ui"] {
		log.Info().Bool("headless", cfg.Verify.Headless).Msg("running ui suite")
		uv := verify.NewUIVerifier(cfg.Verify.AppURL, cfg.Verify.Headless)
		for _, c := range uv.Run(ctx) {
			report.Add(c)
		}
	}

	for _, c := range report.Checks {
		ev := log.Info()
		if !c.Passed {
			ev = log.Error()
		}
		ev.Str("suite", c.Suite).
			Str("check", c.Name).
			Bool("passed", c.Passed).
			Str("detail", c.Detail).
			Msg("check finished")
	}

	if !report.OK() {
		log.Error().Int("failed", report.Failed()).Int("total", len(report.Checks)).Msg("verification failed")
		os.Exit(1)
	}
	log.Info().Int("total", len(report.Checks)).Msg("all checks passed")
}
