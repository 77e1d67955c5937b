package economy_test

import (
	"testing"

	"github.com/warp/policy-lab/economy"
)

func TestParametersValidate_Defaults(t *testing.T) {
	// GIVEN: The default parameter snapshot
	// THEN: It validates cleanly
	if err := economy.DefaultParameters().Validate(); err != nil {
		t.Fatalf("default parameters should validate, got: %v", err)
	}
}

func TestParametersValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*economy.Parameters)
	}{
		{"negative UBI", func(p *economy.Parameters) { p.MonthlyUBI = economy.NewMoney(-1) }},
		{"zero population", func(p *economy.Parameters) { p.TargetPopulation = 0 }},
		{"negative population", func(p *economy.Parameters) { p.TargetPopulation = -5 }},
		{"rate above one", func(p *economy.Parameters) { p.IncomeTaxRateIncrease = 1.5 }},
		{"negative rate", func(p *economy.Parameters) { p.ConsumptionTaxRateIncrease = -0.01 }},
		{"negative bonds", func(p *economy.Parameters) { p.GovBondIssue = economy.NewMoney(-1) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := economy.DefaultParameters()
			tc.mutate(&p)
			err := p.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !economy.IsConfigError(err) {
				t.Errorf("expected a config error kind, got: %v", err)
			}
		})
	}
}

func TestScenarioValidate(t *testing.T) {
	valid := economy.Scenario{Pace: economy.PaceBase, Investment: 50}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid scenario rejected: %v", err)
	}

	if err := (economy.Scenario{Pace: "turbo", Investment: 50}).Validate(); err == nil {
		t.Error("unknown pace should be rejected")
	}
	if err := (economy.Scenario{Pace: economy.PaceSlow, Investment: 101}).Validate(); err == nil {
		t.Error("investment above 100 should be rejected")
	}
}

func TestReinstatementRate_Bounds(t *testing.T) {
	// Range is [0.4, 0.9] across the valid investment range.
	low := economy.Scenario{Pace: economy.PaceBase, Investment: 0}.ReinstatementRate()
	high := economy.Scenario{Pace: economy.PaceBase, Investment: 100}.ReinstatementRate()
	if low != 0.4 {
		t.Errorf("investment 0 should give 0.4, got %v", low)
	}
	if high != 0.9 {
		t.Errorf("investment 100 should give 0.9, got %v", high)
	}
}

func TestMoney_RoundTo(t *testing.T) {
	cases := []struct {
		in   float64
		unit int64
		want string
	}{
		{3_214_999, 10_000, "3210000"},
		{3_215_000, 10_000, "3220000"},
		{123, 1, "123"},
	}
	for _, tc := range cases {
		got := economy.NewMoneyFromFloat(tc.in).RoundTo(tc.unit)
		if got.String() != tc.want {
			t.Errorf("RoundTo(%v, %d) = %s, want %s", tc.in, tc.unit, got, tc.want)
		}
	}
}

func TestAdoptionRate(t *testing.T) {
	for pace, want := range map[economy.Pace]float64{
		economy.PaceSlow: 0.01,
		economy.PaceBase: 0.03,
		economy.PaceFast: 0.06,
	} {
		got, err := pace.AdoptionRate()
		if err != nil {
			t.Fatalf("pace %s: %v", pace, err)
		}
		if got != want {
			t.Errorf("pace %s: got %v, want %v", pace, got, want)
		}
	}
}
