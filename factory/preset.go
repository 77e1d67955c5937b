/*
Package factory provides JSON to Go configuration conversion.

PURPOSE:
  Converts JSON preset definitions into validated engine inputs:
  economy.Parameters, an AI Scenario, and an agent-simulation Config.
  Presets let the demo scenarios and saved runs describe a complete
  policy experiment as data, without code changes.

JSON SCHEMA:
  {
    "id": "modest-ubi",
    "name": "Modest UBI",
    "parameters": {
      "monthly_ubi": 70000,
      "target_population": 126000000,
      "income_tax_rate_increase": 0.05,
      "consumption_tax_rate_increase": 0.05,
      "gov_bond_issue": 10000000000000,
      "welfare_reduction": 15000000000000
    },
    "scenario": {"pace": "base", "investment": 50},
    "agents": {
      "households": 1000, "persons_per_household": 2,
      "years": 10, "income_tax_rate": 0.2, "seed": 1
    }
  }

KEY FEATURES:
  - Validates structure and ranges (via the economy validators)
  - Fills defaults for omitted sections
  - The agent simulation's UBI and tax default to the parameter set's
    values so the three engines describe one coherent experiment

USAGE:
  preset, err := factory.ParsePreset(jsonBytes)
  impact, err := calc.Run(preset.Parameters, household.Catalog())

SEE ALSO:
  - api/scenarios.go: Built-in presets served over HTTP
  - economy/params.go: Validation rules
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/warp/policy-lab/agents"
	"github.com/warp/policy-lab/economy"
)

// =============================================================================
// JSON SHAPE
// =============================================================================

type PresetJSON struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Parameters *ParametersJSON `json:"parameters,omitempty"`
	Scenario   *ScenarioJSON   `json:"scenario,omitempty"`
	Agents     *AgentsJSON     `json:"agents,omitempty"`
}

type ParametersJSON struct {
	MonthlyUBI                 int64   `json:"monthly_ubi"`
	TargetPopulation           int64   `json:"target_population"`
	AdultRatio                 float64 `json:"adult_ratio"`
	IncomeTaxRateIncrease      float64 `json:"income_tax_rate_increase"`
	ConsumptionTaxRateIncrease float64 `json:"consumption_tax_rate_increase"`
	CorporateTaxRateIncrease   float64 `json:"corporate_tax_rate_increase"`
	GovBondIssue               int64   `json:"gov_bond_issue"`
	WelfareReduction           int64   `json:"welfare_reduction"`
}

type ScenarioJSON struct {
	Pace       string  `json:"pace"`
	Investment float64 `json:"investment"`
}

type AgentsJSON struct {
	Households          int     `json:"households"`
	PersonsPerHousehold int     `json:"persons_per_household"`
	Years               int     `json:"years"`
	MonthlyUBI          *int64  `json:"monthly_ubi,omitempty"` // defaults to parameters.monthly_ubi
	IncomeTaxRate       float64 `json:"income_tax_rate"`
	Seed                int64   `json:"seed"`
}

// =============================================================================
// PRESET - Validated engine inputs
// =============================================================================

// Preset bundles one coherent experiment for all three engines.
type Preset struct {
	ID   string
	Name string

	Parameters economy.Parameters
	Scenario   economy.Scenario
	Agents     agents.Config
}

// ParsePreset parses and validates a JSON preset, filling defaults for
// any omitted section.
func ParsePreset(data []byte) (*Preset, error) {
	var raw PresetJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse preset: %w", err)
	}
	return FromJSON(raw)
}

// FromJSON converts an already-decoded preset.
func FromJSON(raw PresetJSON) (*Preset, error) {
	if raw.ID == "" {
		return nil, &economy.ConfigError{Field: "id", Reason: "must not be empty"}
	}

	params := economy.DefaultParameters()
	if pj := raw.Parameters; pj != nil {
		params.MonthlyUBI = economy.NewMoney(pj.MonthlyUBI)
		params.IncomeTaxRateIncrease = pj.IncomeTaxRateIncrease
		params.ConsumptionTaxRateIncrease = pj.ConsumptionTaxRateIncrease
		params.CorporateTaxRateIncrease = pj.CorporateTaxRateIncrease
		params.GovBondIssue = economy.NewMoney(pj.GovBondIssue)
		params.WelfareReduction = economy.NewMoney(pj.WelfareReduction)
		if pj.TargetPopulation != 0 {
			params.TargetPopulation = pj.TargetPopulation
		}
		if pj.AdultRatio != 0 {
			params.AdultRatio = pj.AdultRatio
		}
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	scenario := economy.Scenario{Pace: economy.PaceBase, Investment: 50}
	if sj := raw.Scenario; sj != nil {
		scenario = economy.Scenario{Pace: economy.Pace(sj.Pace), Investment: sj.Investment}
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	agentCfg := agents.Config{
		Households:          1000,
		PersonsPerHousehold: 2,
		Years:               10,
		Policy: agents.Policy{
			UBIAmount:     params.MonthlyUBI,
			IncomeTaxRate: params.IncomeTaxRate,
		},
		Seed: 1,
	}
	if aj := raw.Agents; aj != nil {
		if aj.Households != 0 {
			agentCfg.Households = aj.Households
		}
		if aj.PersonsPerHousehold != 0 {
			agentCfg.PersonsPerHousehold = aj.PersonsPerHousehold
		}
		if aj.Years != 0 {
			agentCfg.Years = aj.Years
		}
		if aj.MonthlyUBI != nil {
			agentCfg.Policy.UBIAmount = economy.NewMoney(*aj.MonthlyUBI)
		}
		if aj.IncomeTaxRate != 0 {
			agentCfg.Policy.IncomeTaxRate = aj.IncomeTaxRate
		}
		agentCfg.Seed = aj.Seed
	}
	if err := agentCfg.Validate(); err != nil {
		return nil, err
	}

	return &Preset{
		ID:         raw.ID,
		Name:       raw.Name,
		Parameters: params,
		Scenario:   scenario,
		Agents:     agentCfg,
	}, nil
}
