/*
Package agents implements the population micro-simulation.

PURPOSE:
  Instantiates a synthetic population of persons grouped into
  households, then simulates monthly labor-supply, savings, and
  happiness dynamics under a UBI policy, aggregating poverty rate and
  average work hours at every step.

KEY CONCEPTS IN THIS FILE (types.go):
  - Policy:    UBI amount and flat income-tax rate
  - Config:    Population shape, horizon, and RNG seed
  - Person:    One agent; wage drawn once at creation, hours and
               happiness updated every month, savings accumulate
  - Household: Aggregation over member persons; poverty classification

BEHAVIORAL CONSTANTS:
  basicNeed       150,000 yen/month  subsistence threshold
  povertyLine     200,000 yen/month  household poverty threshold
  wage draw       Normal(1500, 500) yen/hour, floored at 600
  initial hours   40 h/week
  hours ceiling   60 h/week
  hours inertia   0.7 weight on the prior value
  savings rate    0.2 of disposable income
  happiness       5 + 1e-5 x disposable - 0.05 x max(0, hours - 40),
                  clamped to [0, 10]

  Stress and career-transition attributes are deliberately absent: no
  executable rule consumes them.

SEE ALSO:
  - environment.go: Initialization and the monthly step
  - runner.go: Multi-year runs, history, final aggregate
*/
package agents

import (
	"github.com/warp/policy-lab/economy"
)

// Behavioral constants (see package comment).
const (
	basicNeed      = 150_000.0
	povertyLine    = 200_000.0
	wageMean       = 1500.0
	wageStdDev     = 500.0
	minHourlyWage  = 600.0
	initialHours   = 40.0
	maxWeeklyHours = 60.0
	hoursInertia   = 0.7
	weeksPerMonth  = 4.0
	savingsRate    = 0.2
	wageEpsilon    = 1e-6

	happinessBase       = 5.0
	happinessPerYen     = 1e-5
	overworkPenalty     = 0.05
	overworkThreshold   = 40.0
	minHappiness        = 0.0
	maxHappiness        = 10.0
	minAge, maxAge      = 20, 60 // uniform over [minAge, maxAge)
	stepsPerYear        = 12
	maxHorizonYears     = 100
)

// =============================================================================
// POLICY & CONFIG
// =============================================================================

// Policy is the narrow projection of the parameter set this engine
// reads: the monthly UBI and a flat income-tax rate.
type Policy struct {
	UBIAmount     economy.Money // per person per month
	IncomeTaxRate float64
}

// Config describes one run. Seed makes the run reproducible: identical
// Config values always produce identical histories.
type Config struct {
	Households          int
	PersonsPerHousehold int
	Years               int
	Policy              Policy
	Seed                int64
}

func (c Config) Validate() error {
	if c.Households <= 0 {
		return &economy.ConfigError{Field: "households", Reason: "must be > 0"}
	}
	if c.PersonsPerHousehold <= 0 {
		return &economy.ConfigError{Field: "persons_per_household", Reason: "must be > 0"}
	}
	if c.Years <= 0 {
		return &economy.ConfigError{Field: "years", Reason: "must be > 0"}
	}
	if c.Years > maxHorizonYears {
		return &economy.ConfigError{Field: "years", Reason: "horizon too long"}
	}
	if c.Policy.UBIAmount.IsNegative() {
		return &economy.ConfigError{Field: "ubi_amount", Reason: "must be >= 0"}
	}
	if c.Policy.IncomeTaxRate < 0 || c.Policy.IncomeTaxRate > 1 {
		return &economy.ConfigError{Field: "income_tax_rate", Reason: "rate must be within [0, 1]"}
	}
	return nil
}

// =============================================================================
// AGENTS
// =============================================================================

// Person is one agent. HourlyWage is drawn once at creation and never
// changes; WorkHours and Happiness are recomputed every month; Saving
// only ever grows.
type Person struct {
	ID          int
	Age         int
	HourlyWage  float64
	WorkHours   float64
	Saving      economy.Money
	HouseholdID int
	Happiness   float64
}

// Household groups persons for income aggregation. Members are owned by
// the environment's population map; the household holds only IDs.
type Household struct {
	ID          int
	MemberIDs   []int
	TotalIncome economy.Money // monthly: labor income plus UBI, recomputed each step
	IsPoor      bool
}
