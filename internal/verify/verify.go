// Package verify implements the three-layer verification harness: a latency
// probe against per-endpoint SLA thresholds, a browser-driven UI verifier,
// and a data-integrity verifier that reads the database directly to confirm
// that API-reported success matches stored state.
//
// Every check is a hard pass/fail with no retry; fixture determinism between
// scenarios is achieved with per-run unique item names.
package verify

import (
	"fmt"
	"time"
)

// Check is the outcome of one verification step.
type Check struct {
	Suite   string
	Name    string
	Passed  bool
	Detail  string
	Elapsed time.Duration
}

// Report collects checks across suites.
type Report struct {
	Checks []Check
}

// Add appends a check.
func (r *Report) Add(c Check) {
	r.Checks = append(r.Checks, c)
}

// Failed returns the number of failed checks.
func (r *Report) Failed() int {
	n := 0
	for _, c := range r.Checks {
		if !c.Passed {
			n++
		}
	}
	return n
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	return r.Failed() == 0
}

func pass(suite, name string, elapsed time.Duration, format string, args ...any) Check {
	return Check{Suite: suite, Name: name, Passed: true, Elapsed: elapsed, Detail: fmt.Sprintf(format, args...)}
}

func fail(suite, name string, elapsed time.Duration, format string, args ...any) Check {
	return Check{Suite: suite, Name: name, Passed: false, Elapsed: elapsed, Detail: fmt.Sprintf(format, args...)}
}
