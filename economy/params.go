/*
params.go - Policy parameter snapshot and AI scenario descriptor

PURPOSE:
  Defines the knobs a policy designer turns: UBI amount, tax-rate
  increments, bond issuance, welfare reduction. Every engine receives a
  Parameters value; none is allowed to mutate it. Mutation is the
  exclusive right of the owning caller (the API layer or a test).

VALIDATION:
  Validate() enforces the documented ranges and returns a ConfigError
  naming the first offending field. Engines call it before executing any
  simulation step, so an invalid snapshot never produces a partial run.

RECOGNIZED RANGES (mirrors the UI slider bounds):
  MonthlyUBI                  [0, 200000] yen, step 5000
  IncomeTaxRateIncrease       [0, 0.20] step 0.01
  ConsumptionTaxRateIncrease  [0, 0.20] step 0.01
  AI pace                     slow | base | fast
  AI investment               [0, 100]

NOTE ON THE CORPORATE KNOB:
  CorporateTaxRateIncrease is carried as data (the parameter surface
  exposes it) but the funding balance enumerates only consumption tax,
  income tax, bonds, and welfare cuts. It is validated but not read by
  any engine.

SEE ALSO:
  - errors.go: ConfigError
  - household/impact.go: Funding balance consumer
  - timeline/projector.go: Scenario consumer
*/
package economy

// =============================================================================
// PARAMETERS - Process-wide policy snapshot, passed by value into engines
// =============================================================================

type Parameters struct {
	// UBI policy
	MonthlyUBI       Money // per person per month
	TargetPopulation int64 // persons covered

	// Population structure
	AdultRatio float64 // fraction of the population that is adult

	// Tax rates: current base plus the proposed increment
	IncomeTaxRate              float64
	IncomeTaxRateIncrease      float64
	ConsumptionTaxRate         float64
	ConsumptionTaxRateIncrease float64
	CorporateTaxRate           float64
	CorporateTaxRateIncrease   float64

	// Non-tax funding
	GovBondIssue     Money // annual bond issuance
	WelfareReduction Money // annual savings from replaced welfare programs
}

// DefaultParameters returns the baseline the API boots with: a 70,000
// yen/month UBI for the full national population, modest tax increments.
func DefaultParameters() Parameters {
	return Parameters{
		MonthlyUBI:                 NewMoney(70_000),
		TargetPopulation:           126_000_000,
		AdultRatio:                 0.83,
		IncomeTaxRate:              0.20,
		IncomeTaxRateIncrease:      0.05,
		ConsumptionTaxRate:         0.10,
		ConsumptionTaxRateIncrease: 0.05,
		CorporateTaxRate:           0.23,
		CorporateTaxRateIncrease:   0.0,
		GovBondIssue:               NewMoney(10_000_000_000_000), // 10 trillion
		WelfareReduction:           NewMoney(15_000_000_000_000), // 15 trillion
	}
}

// Validate checks every field against its documented range. The first
// violation is returned as a ConfigError; nil means the snapshot is safe
// to simulate.
func (p Parameters) Validate() error {
	if p.MonthlyUBI.IsNegative() {
		return &ConfigError{Field: "monthly_ubi", Reason: "must be >= 0"}
	}
	if p.TargetPopulation <= 0 {
		return &ConfigError{Field: "target_population", Reason: "must be > 0"}
	}
	if err := rateInRange("adult_ratio", p.AdultRatio); err != nil {
		return err
	}
	rates := []struct {
		name string
		v    float64
	}{
		{"income_tax_rate", p.IncomeTaxRate},
		{"income_tax_rate_increase", p.IncomeTaxRateIncrease},
		{"consumption_tax_rate", p.ConsumptionTaxRate},
		{"consumption_tax_rate_increase", p.ConsumptionTaxRateIncrease},
		{"corporate_tax_rate", p.CorporateTaxRate},
		{"corporate_tax_rate_increase", p.CorporateTaxRateIncrease},
	}
	for _, r := range rates {
		if err := rateInRange(r.name, r.v); err != nil {
			return err
		}
	}
	if p.GovBondIssue.IsNegative() {
		return &ConfigError{Field: "gov_bond_issue", Reason: "must be >= 0"}
	}
	if p.WelfareReduction.IsNegative() {
		return &ConfigError{Field: "welfare_reduction", Reason: "must be >= 0"}
	}
	return nil
}

func rateInRange(field string, v float64) error {
	if v < 0 || v > 1 {
		return &ConfigError{Field: field, Reason: "rate must be within [0, 1]"}
	}
	return nil
}

// AnnualUBIPerPerson is MonthlyUBI x 12.
func (p Parameters) AnnualUBIPerPerson() Money {
	return p.MonthlyUBI.MulInt(12)
}

// =============================================================================
// AI SCENARIO - Adoption pace and offsetting investment
// =============================================================================

type Pace string

const (
	PaceSlow Pace = "slow"
	PaceBase Pace = "base"
	PaceFast Pace = "fast"
)

// AdoptionRate maps a pace to its fixed per-year adoption increment.
// AI pressure in the projector is AdoptionRate x year: cumulative and
// linear over the fixed 10-year horizon.
func (p Pace) AdoptionRate() (float64, error) {
	switch p {
	case PaceSlow:
		return 0.01, nil
	case PaceBase:
		return 0.03, nil
	case PaceFast:
		return 0.06, nil
	default:
		return 0, &ConfigError{Field: "pace", Reason: "must be slow, base, or fast"}
	}
}

// Scenario describes the AI-labor-shock assumptions for a timeline run.
type Scenario struct {
	Pace       Pace
	Investment float64 // education/retraining investment, [0, 100]
}

func (s Scenario) Validate() error {
	if _, err := s.Pace.AdoptionRate(); err != nil {
		return err
	}
	if s.Investment < 0 || s.Investment > 100 {
		return &ConfigError{Field: "investment", Reason: "must be within [0, 100]"}
	}
	return nil
}

// ReinstatementRate is the fraction of displaced labor demand assumed to
// be offset by newly created tasks: 0.4 at zero investment, 0.9 at 100.
func (s Scenario) ReinstatementRate() float64 {
	return 0.4 + s.Investment/200
}
