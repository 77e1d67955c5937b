package factory_test

import (
	"testing"

	"github.com/warp/policy-lab/economy"
	"github.com/warp/policy-lab/factory"
)

func TestParsePreset_Full(t *testing.T) {
	data := []byte(`{
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
		"scenario": {"pace": "fast", "investment": 80},
		"agents": {"households": 500, "persons_per_household": 2, "years": 5, "income_tax_rate": 0.2, "seed": 9}
	}`)

	p, err := factory.ParsePreset(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "modest-ubi" {
		t.Errorf("id = %s", p.ID)
	}
	if p.Parameters.MonthlyUBI.String() != "70000" {
		t.Errorf("monthly ubi = %s", p.Parameters.MonthlyUBI)
	}
	if p.Scenario.Pace != economy.PaceFast || p.Scenario.Investment != 80 {
		t.Errorf("scenario = %+v", p.Scenario)
	}
	if p.Agents.Households != 500 || p.Agents.Seed != 9 {
		t.Errorf("agents = %+v", p.Agents)
	}
	// Agent UBI defaults to the parameter set's UBI.
	if p.Agents.Policy.UBIAmount.String() != "70000" {
		t.Errorf("agent ubi = %s, want the shared 70000", p.Agents.Policy.UBIAmount)
	}
}

func TestParsePreset_DefaultsWhenSectionsOmitted(t *testing.T) {
	p, err := factory.ParsePreset([]byte(`{"id": "bare", "name": "Bare"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Scenario.Pace != economy.PaceBase {
		t.Errorf("default pace = %s, want base", p.Scenario.Pace)
	}
	if p.Agents.Households != 1000 || p.Agents.Years != 10 {
		t.Errorf("agent defaults = %+v", p.Agents)
	}
	if err := p.Parameters.Validate(); err != nil {
		t.Errorf("defaulted parameters invalid: %v", err)
	}
}

func TestParsePreset_Rejections(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"missing id", `{"name": "x"}`},
		{"bad pace", `{"id": "x", "scenario": {"pace": "turbo", "investment": 0}}`},
		{"investment out of range", `{"id": "x", "scenario": {"pace": "base", "investment": 500}}`},
		{"negative ubi", `{"id": "x", "parameters": {"monthly_ubi": -1, "target_population": 1}}`},
		{"malformed json", `{`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := factory.ParsePreset([]byte(tc.json)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
