/*
projector.go - The ten-year step loop

PURPOSE:
  Runs the yearly state update: AI pressure builds linearly with the
  scenario's adoption pace, displaces jobs per group (offset by the
  reinstatement rate), lifts wages per group via productivity, and
  accumulates public debt driven by the UBI bill and the GDP gap.

STATE MACHINE:
  Year 0 is recorded as the untouched baseline (GDP 550T, debt 1200T,
  unemployment 2.5%, wage index 100) with no shock applied. Years 1..10
  each depend only on the prior year's debt and the fresh group state;
  there is no lookahead and no randomness, so fixed inputs always
  reproduce the identical sequence.

CLAMPING:
  Group-level employment is intentionally NOT clamped; only the
  aggregate unemployment rate is capped to [2.5%, 50%]. Pressure grows
  linearly with no saturation, which is why the horizon is fixed at ten
  years; extending it would need a bounded growth curve first.

DEBT DYNAMICS:
  annualBICost is expressed in trillion yen against a fixed 126M
  population. The deficit grows as GDP shrinks (automatic-stabilizer
  approximation); debt accumulates additively with no interest
  compounding.

SEE ALSO:
  - types.go: Templates and snapshots
  - economy/params.go: Pace / investment semantics
*/
package timeline

import (
	"github.com/warp/policy-lab/economy"
)

// Fixed baseline (year 0) macro state, trillion yen.
const (
	baselineGDP          = 550.0
	baselineDebt         = 1200.0
	frictionalUnemployed = 0.025
	maxUnemploymentRate  = 0.5
	horizonYears         = 10

	// Population used to express the UBI bill at macro scale.
	macroPopulation = 126_000_000

	// Fraction of the UBI bill that turns into deficit per unit of GDP
	// shortfall (automatic-stabilizer strength).
	stabilizerWeight = 0.5

	trillion = 1e12
)

// =============================================================================
// PROJECTOR
// =============================================================================

// Projector runs ten-year projections over a set of job-group templates.
// The zero value uses the four canonical groups.
type Projector struct {
	// Groups overrides the canonical templates when non-empty. Templates
	// are treated as immutable; each run copies them into fresh state.
	Groups []JobGroup
}

// Run validates the inputs and returns the eleven-entry projected
// sequence, year 0 through year 10.
func (pr *Projector) Run(params economy.Parameters, scenario economy.Scenario) ([]YearSnapshot, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	adoption, err := scenario.Pace.AdoptionRate()
	if err != nil {
		return nil, err
	}
	return pr.run(params, adoption, scenario.ReinstatementRate()), nil
}

// run is the validated core. adoption may be any non-negative rate; the
// zero-adoption boundary (not a selectable pace) must reproduce year 0's
// group state every year.
func (pr *Projector) run(params economy.Parameters, adoption, reinstatement float64) []YearSnapshot {
	templates := pr.Groups
	if len(templates) == 0 {
		templates = canonicalGroups
	}

	// Fresh state per run; the templates themselves are never written.
	states := make([]groupState, len(templates))
	for i, g := range templates {
		states[i] = groupState{template: g, employmentRate: 1.0, wageIndex: 1.0}
	}

	annualBICost := params.MonthlyUBI.MulInt(12).MulInt(macroPopulation).Float() / trillion
	initialDeficit := params.GovBondIssue.Float() / trillion

	snapshots := make([]YearSnapshot, 0, horizonYears+1)
	snapshots = append(snapshots, snapshot(0, baselineGDP, baselineDebt, frictionalUnemployed, states))

	debt := baselineDebt
	for year := 1; year <= horizonYears; year++ {
		pressure := adoption * float64(year)

		var laborDemand, productivityChange float64
		for i := range states {
			g := states[i].template
			displacement := g.AIExposure * pressure * g.DisplacementFactor
			productivity := g.AIExposure * pressure * g.ProductivityFactor

			netJobLoss := displacement * (1 - reinstatement)
			states[i].employmentRate = 1 - netJobLoss
			states[i].wageIndex = 1 + productivity

			laborDemand += states[i].employmentRate * g.Share
			productivityChange += productivity * g.Share
		}

		unemployment := clamp(frictionalUnemployed+(1-laborDemand), 0, maxUnemploymentRate)
		gdp := baselineGDP * laborDemand * (1 + productivityChange)

		gdpRatio := gdp / baselineGDP
		deficit := initialDeficit + annualBICost*(1-gdpRatio)*stabilizerWeight
		debt += deficit

		snapshots = append(snapshots, snapshot(year, gdp, debt, unemployment, states))
	}
	return snapshots
}

func snapshot(year int, gdp, debt, unemployment float64, states []groupState) YearSnapshot {
	groups := make([]GroupSnapshot, len(states))
	var avgWage float64
	for i, s := range states {
		groups[i] = GroupSnapshot{
			ID:         s.template.ID,
			Label:      s.template.Label,
			Employment: s.employmentRate,
			Wage:       s.wageIndex * 100,
		}
		avgWage += s.wageIndex * s.template.Share
	}
	return YearSnapshot{
		Year:             year,
		GDP:              gdp,
		Debt:             debt,
		UnemploymentRate: unemployment,
		AvgWageIndex:     avgWage * 100,
		Groups:           groups,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
