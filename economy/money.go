/*
Package economy provides the shared data model for the UBI policy lab.

PURPOSE:
  This package contains the types every simulation engine consumes: the
  policy parameter set, the AI-adoption scenario descriptor, the Money
  type, and the error taxonomy. Whether computing a single-year household
  impact, a ten-year macro projection, or an agent-level micro-simulation,
  the same parameter snapshot and the same money arithmetic apply.

KEY CONCEPTS IN THIS FILE (money.go):
  - Money: A yen amount backed by decimal.Decimal
  - Helpers: construction from int/float/string, arithmetic, rounding

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal so additive accumulation (savings,
     public debt) never drifts the way float64 sums do
  2. Snapshot semantics: Parameters are passed by value into engines and
     never mutated from inside a simulation
  3. No hidden units: Money is always yen; trillion-yen macro figures are
     plain float64 indices, not Money

USAGE:
  ubi := economy.NewMoney(100_000)
  annual := ubi.MulInt(12)
  perMember := annual.MulInt(int64(members))

SEE ALSO:
  - params.go: Parameters and AI scenario descriptor
  - errors.go: Configuration error taxonomy
*/
package economy

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Yen amount with exact decimal arithmetic
// =============================================================================

type Money struct {
	Value decimal.Decimal
}

func NewMoney(yen int64) Money {
	return Money{Value: decimal.NewFromInt(yen)}
}

func NewMoneyFromFloat(yen float64) Money {
	return Money{Value: decimal.NewFromFloat(yen)}
}

func MustParseMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{Value: decimal.Zero}
	}
	return Money{Value: d}
}

func ZeroMoney() Money { return Money{Value: decimal.Zero} }

func (m Money) Add(b Money) Money { return Money{Value: m.Value.Add(b.Value)} }
func (m Money) Sub(b Money) Money { return Money{Value: m.Value.Sub(b.Value)} }
func (m Money) Neg() Money { return Money{Value: m.Value.Neg()} }
func (m Money) MulInt(n int64) Money { return Money{Value: m.Value.Mul(decimal.NewFromInt(n))} }
func (m Money) MulFloat(f float64) Money { return Money{Value: m.Value.Mul(decimal.NewFromFloat(f))} }
func (m Money) IsZero() bool { return m.Value.IsZero() }
func (m Money) IsNegative() bool { return m.Value.IsNegative() }
func (m Money) IsPositive() bool { return m.Value.IsPositive() }
func (m Money) GreaterThan(b Money) bool { return m.Value.GreaterThan(b.Value) }
func (m Money) LessThan(b Money) bool { return m.Value.LessThan(b.Value) }
func (m Money) Float() float64 { f, _ := m.Value.Float64(); return f }
func (m Money) String() string { return m.Value.StringFixed(0) }

// Div divides by a scalar. Callers must guard against zero; degenerate
// denominators are a local arithmetic concern (see impact calculator),
// never an error path.
func (m Money) Div(f float64) Money {
	return Money{Value: m.Value.Div(decimal.NewFromFloat(f))}
}

// RoundTo rounds to the nearest multiple of unit (e.g. 10_000 for the
// household catalog's income quantization).
func (m Money) RoundTo(unit int64) Money {
	u := decimal.NewFromInt(unit)
	return Money{Value: m.Value.Div(u).Round(0).Mul(u)}
}

// Round rounds to the nearest yen.
func (m Money) Round() Money {
	return Money{Value: m.Value.Round(0)}
}
