/*
scenarios.go - Built-in demo scenarios

PURPOSE:
  Provides pre-built parameter presets that demonstrate characteristic
  regimes of the model. Loading a scenario runs all three engines with
  the preset and returns their combined output, so a fresh frontend can
  show something meaningful in one request.

AVAILABLE SCENARIOS:
  modest-ubi:       70,000/month, balanced funding, base AI pace
  full-ubi:         150,000/month, heavy shortfall
  austerity:        no UBI, only tax increases (the control case)
  fast-automation:  modest UBI under fast AI adoption, low investment
  reskilling-push:  fast adoption but maximum retraining investment

HOW SCENARIOS WORK:
  Each scenario is a factory preset (one coherent experiment across all
  three engines). POST /api/scenarios/load parses the preset, runs the
  impact calculator, the projector, and the agent simulation, and
  returns the three DTOs together.

ADDING NEW SCENARIOS:
 1. Add a PresetJSON to 'presets'
 2. Add its ID/name/description to 'scenarios'

SEE ALSO:
  - factory/preset.go: Preset parsing and defaults
  - handlers.go: The individual engine endpoints
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/warp/policy-lab/agents"
	"github.com/warp/policy-lab/factory"
	"github.com/warp/policy-lab/household"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{ID: "modest-ubi", Name: "Modest UBI", Description: "70,000/month with balanced tax funding, base AI pace"},
	{ID: "full-ubi", Name: "Full UBI", Description: "150,000/month at subsistence level, heavy funding shortfall"},
	{ID: "austerity", Name: "Austerity Control", Description: "No UBI, tax increases only; the comparison baseline"},
	{ID: "fast-automation", Name: "Fast Automation", Description: "Modest UBI under fast AI adoption with little retraining"},
	{ID: "reskilling-push", Name: "Reskilling Push", Description: "Fast AI adoption offset by maximum education investment"},
}

func intPtr(v int64) *int64 { return &v }

var presets = map[string]factory.PresetJSON{
	"modest-ubi": {
		ID:   "modest-ubi",
		Name: "Modest UBI",
		Parameters: &factory.ParametersJSON{
			MonthlyUBI:                 70_000,
			TargetPopulation:           126_000_000,
			IncomeTaxRateIncrease:      0.05,
			ConsumptionTaxRateIncrease: 0.05,
			GovBondIssue:               10_000_000_000_000,
			WelfareReduction:           15_000_000_000_000,
		},
		Scenario: &factory.ScenarioJSON{Pace: "base", Investment: 50},
		Agents:   &factory.AgentsJSON{Households: 1000, PersonsPerHousehold: 2, Years: 10, IncomeTaxRate: 0.2, Seed: 1},
	},
	"full-ubi": {
		ID:   "full-ubi",
		Name: "Full UBI",
		Parameters: &factory.ParametersJSON{
			MonthlyUBI:                 150_000,
			TargetPopulation:           126_000_000,
			IncomeTaxRateIncrease:      0.10,
			ConsumptionTaxRateIncrease: 0.10,
			GovBondIssue:               30_000_000_000_000,
			WelfareReduction:           25_000_000_000_000,
		},
		Scenario: &factory.ScenarioJSON{Pace: "base", Investment: 50},
		Agents:   &factory.AgentsJSON{Households: 1000, PersonsPerHousehold: 2, Years: 10, IncomeTaxRate: 0.25, Seed: 1},
	},
	"austerity": {
		ID:   "austerity",
		Name: "Austerity Control",
		Parameters: &factory.ParametersJSON{
			MonthlyUBI:                 0,
			TargetPopulation:           126_000_000,
			IncomeTaxRateIncrease:      0.05,
			ConsumptionTaxRateIncrease: 0.05,
		},
		Scenario: &factory.ScenarioJSON{Pace: "base", Investment: 50},
		Agents: &factory.AgentsJSON{
			Households: 1000, PersonsPerHousehold: 2, Years: 10,
			MonthlyUBI: intPtr(0), IncomeTaxRate: 0.2, Seed: 1,
		},
	},
	"fast-automation": {
		ID:   "fast-automation",
		Name: "Fast Automation",
		Parameters: &factory.ParametersJSON{
			MonthlyUBI:                 70_000,
			TargetPopulation:           126_000_000,
			IncomeTaxRateIncrease:      0.05,
			ConsumptionTaxRateIncrease: 0.05,
			GovBondIssue:               10_000_000_000_000,
			WelfareReduction:           15_000_000_000_000,
		},
		Scenario: &factory.ScenarioJSON{Pace: "fast", Investment: 10},
		Agents:   &factory.AgentsJSON{Households: 1000, PersonsPerHousehold: 2, Years: 10, IncomeTaxRate: 0.2, Seed: 1},
	},
	"reskilling-push": {
		ID:   "reskilling-push",
		Name: "Reskilling Push",
		Parameters: &factory.ParametersJSON{
			MonthlyUBI:                 70_000,
			TargetPopulation:           126_000_000,
			IncomeTaxRateIncrease:      0.05,
			ConsumptionTaxRateIncrease: 0.05,
			GovBondIssue:               10_000_000_000_000,
			WelfareReduction:           15_000_000_000_000,
		},
		Scenario: &factory.ScenarioJSON{Pace: "fast", Investment: 100},
		Agents:   &factory.AgentsJSON{Households: 1000, PersonsPerHousehold: 2, Years: 10, IncomeTaxRate: 0.2, Seed: 1},
	},
}

// =============================================================================
// HANDLERS
// =============================================================================

// ListScenarios returns the available demo scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// ScenarioResultDTO bundles all three engines' output for one preset.
type ScenarioResultDTO struct {
	Scenario ScenarioDTO `json:"scenario"`
	Impact   ImpactDTO   `json:"impact"`
	Timeline TimelineDTO `json:"timeline"`
	Agents   AgentsDTO   `json:"agents"`
}

// LoadScenario runs every engine with a named preset.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	raw, ok := presets[req.ScenarioID]
	if !ok {
		writeError(w, http.StatusBadRequest, "Unknown scenario", nil)
		return
	}
	preset, err := factory.FromJSON(raw)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	catalog := household.Catalog()
	impact, err := h.calculator.Run(preset.Parameters, catalog)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	snaps, err := h.projector.Run(preset.Parameters, preset.Scenario)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	agentRes, err := agents.Run(r.Context(), preset.Agents)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	var meta ScenarioDTO
	for _, s := range scenarios {
		if s.ID == req.ScenarioID {
			meta = s
			break
		}
	}

	writeJSON(w, http.StatusOK, ScenarioResultDTO{
		Scenario: meta,
		Impact:   impactDTO(impact, catalog),
		Timeline: timelineDTO(snaps),
		Agents:   agentsDTO(agentRes),
	})
}
