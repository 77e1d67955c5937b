/*
Package household implements the static household-impact engine.

PURPOSE:
  Provides the fixed catalog of representative household archetypes
  (9 family types x 5 income levels) and the single-snapshot-year impact
  calculator: UBI received, tax increase, net change, funding shortfall,
  and coarse macro indicators.

KEY CONCEPTS IN THIS FILE (types.go):
  - Type:            Family composition archetype (single ... elderly_couple)
  - IncomeLevel:     Quintile-style income band with base income and rates
  - Household:       One catalog entry with its mutable per-run Result
  - Result:          Overwritten idempotently by every calculator run

LIFECYCLE:
  The catalog is generated deterministically (see catalog.go); Result
  records are recomputed in full on every calculator invocation; they
  are never accumulated across runs.

SEE ALSO:
  - catalog.go: Deterministic archetype generation
  - impact.go: The calculator
*/
package household

import "github.com/warp/policy-lab/economy"

// =============================================================================
// FAMILY TYPE - Composition archetypes
// =============================================================================

type Type string

const (
	TypeSingle           Type = "single"
	TypeCouple           Type = "couple"
	TypeSingleParent1Kid Type = "single_parent_1kid"
	TypeSingleParent2Kid Type = "single_parent_2kids"
	TypeFamily1Kid       Type = "family_1kid"
	TypeFamily2Kids      Type = "family_2kids"
	TypeFamily3Kids      Type = "family_3kids"
	TypeElderlySingle    Type = "elderly_single"
	TypeElderlyCouple    Type = "elderly_couple"
)

// composition describes a family type's fixed structure.
type composition struct {
	Type     Type
	Label    string
	Adults   int
	Children int
	Elderly  bool // elderly households earn 0.7x the level base
}

// Type-major catalog order is fixed so the UI can index rows stably.
var compositions = []composition{
	{TypeSingle, "Single", 1, 0, false},
	{TypeCouple, "Couple", 2, 0, false},
	{TypeSingleParent1Kid, "Single parent, 1 child", 1, 1, false},
	{TypeSingleParent2Kid, "Single parent, 2 children", 1, 2, false},
	{TypeFamily1Kid, "Family, 1 child", 2, 1, false},
	{TypeFamily2Kids, "Family, 2 children", 2, 2, false},
	{TypeFamily3Kids, "Family, 3 children", 2, 3, false},
	{TypeElderlySingle, "Elderly single", 1, 0, true},
	{TypeElderlyCouple, "Elderly couple", 2, 0, true},
}

// =============================================================================
// INCOME LEVEL - Band with base income, tax rate, consumption propensity
// =============================================================================

type IncomeLevel string

const (
	LevelLow      IncomeLevel = "low"
	LevelLowerMid IncomeLevel = "lower_mid"
	LevelMid      IncomeLevel = "mid"
	LevelUpperMid IncomeLevel = "upper_mid"
	LevelHigh     IncomeLevel = "high"
)

type levelProfile struct {
	Level      IncomeLevel
	Label      string
	BaseIncome int64   // annual, single adult, yen
	TaxRate    float64 // effective current tax rate on annual income
	Propensity float64 // fraction of disposable income spent
}

// Calibration: bases are monotone across bands, rates stay below the
// band base so current tax never exceeds income, and propensity falls
// as income rises.
var levels = []levelProfile{
	{LevelLow, "Low", 2_000_000, 0.05, 0.90},
	{LevelLowerMid, "Lower-middle", 3_500_000, 0.10, 0.80},
	{LevelMid, "Middle", 5_500_000, 0.15, 0.70},
	{LevelUpperMid, "Upper-middle", 8_000_000, 0.20, 0.60},
	{LevelHigh, "High", 12_000_000, 0.28, 0.50},
}

// =============================================================================
// HOUSEHOLD - Catalog entry with per-run result
// =============================================================================

// Result is the per-household outcome of one calculator run. It is
// overwritten in full every run.
type Result struct {
	BIReceived           economy.Money
	NewTax               economy.Money // total tax increase (income + consumption)
	NetChange            economy.Money
	RealIncomeChangeRate float64 // percent of disposable income; 0 when disposable is 0
}

type Household struct {
	ID                    string
	Label                 string
	Type                  Type
	IncomeLevel           IncomeLevel
	AnnualIncome          economy.Money
	Adults                int
	Children              int
	CurrentTax            economy.Money
	ConsumptionPropensity float64

	Result Result
}

func (h *Household) TotalMembers() int { return h.Adults + h.Children }

// DisposableIncome is annual income after current tax.
func (h *Household) DisposableIncome() economy.Money {
	return h.AnnualIncome.Sub(h.CurrentTax)
}
