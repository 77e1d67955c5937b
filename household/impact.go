/*
impact.go - Static single-year impact calculator

PURPOSE:
  Given a Parameters snapshot and the household catalog, computes the
  program's annual cost, its funding balance, per-household net impact,
  and two coarse macro indicators for a single snapshot year.

FUNDING MODEL:
  Revenue per percentage point of tax-rate increase is a fixed national
  aggregate, independent of the catalog:
    consumption tax:  2.5 trillion yen / point
    income tax:       1.0 trillion yen / point
  plus the caller-specified bond issuance and welfare reduction. The
  corporate increment is carried on Parameters but is not a funding
  source.

PER-HOUSEHOLD MODEL:
  UBI is universal: every member receives it, children included.
  The consumption-tax increase applies to propensity-weighted disposable
  spending, not gross income.

MACRO HEURISTICS:
  gdpImpact treats any unfunded gap as a demand injection scaled by a
  fixed multiplier against a 550-trillion-yen GDP. povertyRateChange is a
  binary heuristic on the sign of the aggregate net change among
  low-income households. Both are illustrative, not structural models.

DEGENERATE CASES:
  A household with disposable income exactly zero gets a real-income
  change rate of 0 rather than a division by zero. This is an arithmetic
  guard, not an error.

SEE ALSO:
  - catalog.go: Input catalog
  - economy/params.go: Input snapshot
*/
package household

import (
	"github.com/warp/policy-lab/economy"
)

// Revenue yield per percentage point of tax-rate increase, yen/year.
const (
	consumptionTaxYieldPerPoint = 2.5e12
	incomeTaxYieldPerPoint      = 1.0e12
)

// GDP scale for the demand-injection heuristic: 550 trillion yen, with a
// fixed 0.8 multiplier on the unfunded gap.
const (
	gdpScaleYen       = 5.5e14
	demandMultiplier  = 0.8
	povertyImprovePts = -2.0
	povertyWorsenPts  = 0.5
)

// =============================================================================
// AGGREGATE RESULT
// =============================================================================

// FundingBreakdown itemizes the revenue sources covering the program.
type FundingBreakdown struct {
	ConsumptionTax   economy.Money
	IncomeTax        economy.Money
	GovBonds         economy.Money
	WelfareReduction economy.Money
}

func (f FundingBreakdown) Total() economy.Money {
	return f.ConsumptionTax.Add(f.IncomeTax).Add(f.GovBonds).Add(f.WelfareReduction)
}

// Impact is the aggregate outcome of one calculator run.
type Impact struct {
	TotalAnnualCost economy.Money
	Funding         FundingBreakdown
	Shortfall       economy.Money // negative means surplus

	GDPImpact         float64 // fraction of GDP, signed
	PovertyRateChange float64 // percentage points
}

// =============================================================================
// CALCULATOR
// =============================================================================

type Calculator struct{}

// Run validates the snapshot, recomputes every household's Result in
// place, and returns the aggregate. Results are idempotent: running the
// same snapshot twice leaves the catalog byte-identical.
func (c *Calculator) Run(params economy.Parameters, catalog []*Household) (*Impact, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	annualUBI := params.AnnualUBIPerPerson()

	// Program cost and funding balance. Tax increments are fractions;
	// yields are per percentage point.
	cost := annualUBI.MulInt(params.TargetPopulation)
	funding := FundingBreakdown{
		ConsumptionTax:   economy.NewMoneyFromFloat(params.ConsumptionTaxRateIncrease * 100 * consumptionTaxYieldPerPoint),
		IncomeTax:        economy.NewMoneyFromFloat(params.IncomeTaxRateIncrease * 100 * incomeTaxYieldPerPoint),
		GovBonds:         params.GovBondIssue,
		WelfareReduction: params.WelfareReduction,
	}
	shortfall := cost.Sub(funding.Total())

	// Per-household pass. Track the aggregate net change among
	// low-income households for the poverty heuristic.
	lowIncomeNet := economy.ZeroMoney()
	for _, h := range catalog {
		received := annualUBI.MulInt(int64(h.TotalMembers()))

		incomeTaxUp := h.AnnualIncome.MulFloat(params.IncomeTaxRateIncrease)
		consumptionTaxUp := h.DisposableIncome().
			MulFloat(h.ConsumptionPropensity).
			MulFloat(params.ConsumptionTaxRateIncrease)
		newTax := incomeTaxUp.Add(consumptionTaxUp)
		net := received.Sub(newTax)

		rate := 0.0
		if disposable := h.DisposableIncome(); !disposable.IsZero() {
			rate = net.Float() / disposable.Float() * 100
		}

		h.Result = Result{
			BIReceived:           received,
			NewTax:               newTax,
			NetChange:            net,
			RealIncomeChangeRate: rate,
		}

		if h.IncomeLevel == LevelLow {
			lowIncomeNet = lowIncomeNet.Add(net)
		}
	}

	povertyDelta := povertyWorsenPts
	if lowIncomeNet.IsPositive() {
		povertyDelta = povertyImprovePts
	}

	return &Impact{
		TotalAnnualCost:   cost,
		Funding:           funding,
		Shortfall:         shortfall,
		GDPImpact:         shortfall.Float() / gdpScaleYen * demandMultiplier,
		PovertyRateChange: povertyDelta,
	}, nil
}
