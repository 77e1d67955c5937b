/*
runner.go - Multi-year runs, history, and final aggregate

PURPOSE:
  Wraps the Environment step in a monthly loop over the configured
  horizon, recording one history entry per month and a final aggregate
  when the loop completes.

CANCELLATION:
  Run checks the context between months. A canceled run returns the
  context error and NO result; the caller keeps whatever it displayed
  before. For runs that complete, the cancellation check has no effect
  on output.

SEE ALSO:
  - environment.go: The step itself
  - types.go: Config
*/
package agents

import (
	"context"
)

// =============================================================================
// RESULTS
// =============================================================================

// HistoryEntry is one monthly snapshot of the macro series.
type HistoryEntry struct {
	Step         int // 0-based month index
	Year         int // 0-based, Step / 12
	PovertyRate  float64
	AvgWorkHours float64
}

// FinalState summarizes the population after the last step.
type FinalState struct {
	AvgHappiness float64
	AvgWorkHours float64
	PovertyRate  float64
}

// RunResult is the complete outcome of one simulation run.
type RunResult struct {
	History []HistoryEntry
	Final   FinalState
	Persons []*Person // final per-agent state
}

// =============================================================================
// RUNNER
// =============================================================================

// Run builds a fresh environment from cfg and simulates
// cfg.Years x 12 monthly steps. Identical configs (including Seed)
// produce identical results.
func Run(ctx context.Context, cfg Config) (*RunResult, error) {
	return RunWithObserver(ctx, cfg, nil)
}

// RunWithObserver is Run with a per-month callback, used by the
// streaming API to push progress without changing run semantics. The
// observer sees entries in order; returning an error aborts the run
// with no result.
func RunWithObserver(ctx context.Context, cfg Config, observe func(HistoryEntry) error) (*RunResult, error) {
	env, err := NewEnvironment(cfg)
	if err != nil {
		return nil, err
	}

	totalSteps := cfg.Years * stepsPerYear
	history := make([]HistoryEntry, 0, totalSteps)

	for step := 0; step < totalSteps; step++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		env.Step()
		entry := HistoryEntry{
			Step:         step,
			Year:         step / stepsPerYear,
			PovertyRate:  env.PovertyRate(),
			AvgWorkHours: env.AvgWorkHours(),
		}
		history = append(history, entry)
		if observe != nil {
			if err := observe(entry); err != nil {
				return nil, err
			}
		}
	}

	return &RunResult{
		History: history,
		Final: FinalState{
			AvgHappiness: env.AvgHappiness(),
			AvgWorkHours: env.AvgWorkHours(),
			PovertyRate:  env.PovertyRate(),
		},
		Persons: env.Persons,
	}, nil
}
