package household_test

import (
	"testing"

	"github.com/warp/policy-lab/economy"
	"github.com/warp/policy-lab/household"
)

func baseParams() economy.Parameters {
	p := economy.DefaultParameters()
	p.MonthlyUBI = economy.NewMoney(70_000)
	p.TargetPopulation = 126_000_000
	p.IncomeTaxRateIncrease = 0.05
	p.ConsumptionTaxRateIncrease = 0.05
	p.GovBondIssue = economy.NewMoney(10_000_000_000_000)
	p.WelfareReduction = economy.NewMoney(15_000_000_000_000)
	return p
}

func TestImpact_TotalAnnualCost(t *testing.T) {
	// GIVEN: 70,000/month UBI for 126M people
	// THEN: Cost = 70,000 x 12 x 126,000,000
	calc := &household.Calculator{}
	impact, err := calc.Run(baseParams(), household.Catalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := economy.NewMoney(70_000).MulInt(12).MulInt(126_000_000)
	if !impact.TotalAnnualCost.Value.Equal(want.Value) {
		t.Errorf("cost = %s, want %s", impact.TotalAnnualCost, want)
	}
}

func TestImpact_ZeroUBI(t *testing.T) {
	// With no UBI, every household only pays more tax: biReceived is 0
	// and netChange = -totalTaxIncrease <= 0.
	p := baseParams()
	p.MonthlyUBI = economy.NewMoney(0)

	catalog := household.Catalog()
	calc := &household.Calculator{}
	if _, err := calc.Run(p, catalog); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, h := range catalog {
		if !h.Result.BIReceived.IsZero() {
			t.Errorf("%s: biReceived should be 0, got %s", h.ID, h.Result.BIReceived)
		}
		wantNet := h.Result.NewTax.Neg()
		if !h.Result.NetChange.Value.Equal(wantNet.Value) {
			t.Errorf("%s: netChange = %s, want %s", h.ID, h.Result.NetChange, wantNet)
		}
		if h.Result.NetChange.IsPositive() {
			t.Errorf("%s: netChange should be <= 0 with no UBI", h.ID)
		}
	}
}

func TestImpact_NoFunding(t *testing.T) {
	// With every funding source at zero, shortfall equals the full cost.
	p := baseParams()
	p.IncomeTaxRateIncrease = 0
	p.ConsumptionTaxRateIncrease = 0
	p.GovBondIssue = economy.NewMoney(0)
	p.WelfareReduction = economy.NewMoney(0)

	calc := &household.Calculator{}
	impact, err := calc.Run(p, household.Catalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !impact.Shortfall.Value.Equal(impact.TotalAnnualCost.Value) {
		t.Errorf("shortfall = %s, want full cost %s", impact.Shortfall, impact.TotalAnnualCost)
	}
}

func TestImpact_Surplus(t *testing.T) {
	// A small UBI against large funding flips shortfall negative.
	p := baseParams()
	p.MonthlyUBI = economy.NewMoney(5_000)

	calc := &household.Calculator{}
	impact, err := calc.Run(p, household.Catalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !impact.Shortfall.IsNegative() {
		t.Errorf("expected surplus (negative shortfall), got %s", impact.Shortfall)
	}
}

func TestImpact_ZeroDisposableIncome(t *testing.T) {
	// A household taxed at 100% of income has zero disposable income; the
	// rate must be 0, not a division by zero.
	h := &household.Household{
		ID:                    "edge:confiscatory",
		Type:                  household.TypeSingle,
		IncomeLevel:           household.LevelLow,
		AnnualIncome:          economy.NewMoney(2_000_000),
		Adults:                1,
		CurrentTax:            economy.NewMoney(2_000_000),
		ConsumptionPropensity: 0.9,
	}

	calc := &household.Calculator{}
	if _, err := calc.Run(baseParams(), []*household.Household{h}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Result.RealIncomeChangeRate != 0 {
		t.Errorf("rate with zero disposable income = %v, want 0", h.Result.RealIncomeChangeRate)
	}
}

func TestImpact_Idempotent(t *testing.T) {
	// Running the same snapshot twice leaves results identical; there is
	// no historical accumulation.
	catalog := household.Catalog()
	calc := &household.Calculator{}
	p := baseParams()

	if _, err := calc.Run(p, catalog); err != nil {
		t.Fatal(err)
	}
	first := make([]household.Result, len(catalog))
	for i, h := range catalog {
		first[i] = h.Result
	}

	if _, err := calc.Run(p, catalog); err != nil {
		t.Fatal(err)
	}
	for i, h := range catalog {
		if !h.Result.NetChange.Value.Equal(first[i].NetChange.Value) ||
			!h.Result.BIReceived.Value.Equal(first[i].BIReceived.Value) {
			t.Errorf("entry %d accumulated across runs", i)
		}
	}
}

func TestImpact_PovertyHeuristic(t *testing.T) {
	calc := &household.Calculator{}

	// Generous UBI: low-income households gain, poverty improves.
	generous := baseParams()
	generous.MonthlyUBI = economy.NewMoney(100_000)
	impact, err := calc.Run(generous, household.Catalog())
	if err != nil {
		t.Fatal(err)
	}
	if impact.PovertyRateChange != -2.0 {
		t.Errorf("generous UBI: poverty change = %v, want -2.0", impact.PovertyRateChange)
	}

	// No UBI, only tax increases: low-income households lose.
	austere := baseParams()
	austere.MonthlyUBI = economy.NewMoney(0)
	impact, err = calc.Run(austere, household.Catalog())
	if err != nil {
		t.Fatal(err)
	}
	if impact.PovertyRateChange != 0.5 {
		t.Errorf("no UBI: poverty change = %v, want +0.5", impact.PovertyRateChange)
	}
}

func TestImpact_InvalidParams(t *testing.T) {
	p := baseParams()
	p.TargetPopulation = 0

	catalog := household.Catalog()
	calc := &household.Calculator{}
	_, err := calc.Run(p, catalog)
	if err == nil {
		t.Fatal("expected config error")
	}
	if !economy.IsConfigError(err) {
		t.Errorf("expected config error kind, got: %v", err)
	}
	// Fail-fast: no household was touched.
	for _, h := range catalog {
		if !h.Result.BIReceived.IsZero() || !h.Result.NetChange.IsZero() {
			t.Fatal("results written despite validation failure")
		}
	}
}
