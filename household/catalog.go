/*
catalog.go - Deterministic household archetype generation

PURPOSE:
  Builds the full household catalog from the fixed composition and
  income-level tables. Pure function: no inputs, no randomness, stable
  output order (type-major, level-minor), identical on every call.

INCOME FORMULA:
  annualIncome = levelBase x sqrt(adults + 0.5 x children)
               x 0.7 if the type is elderly
  rounded to the nearest 10,000 yen.

  The square root models household economies of scale: a second earner
  or dependent raises income, but sublinearly.

  currentTax = round(annualIncome x level tax rate)

NO ERROR CONDITIONS:
  Generation always succeeds; the tables are compile-time constants.

SEE ALSO:
  - types.go: The tables
  - impact.go: Consumer of the catalog
*/
package household

import (
	"fmt"
	"math"

	"github.com/warp/policy-lab/economy"
)

// incomeQuantum is the rounding unit for catalog incomes.
const incomeQuantum = 10_000

// Catalog returns the full archetype catalog: one entry per family type
// per income level, 45 in total, in stable type-major order.
func Catalog() []*Household {
	out := make([]*Household, 0, len(compositions)*len(levels))

	for _, c := range compositions {
		for _, lv := range levels {
			scale := math.Sqrt(float64(c.Adults) + 0.5*float64(c.Children))
			income := float64(lv.BaseIncome) * scale
			if c.Elderly {
				income *= 0.7
			}

			annual := economy.NewMoneyFromFloat(income).RoundTo(incomeQuantum)
			tax := annual.MulFloat(lv.TaxRate).Round()

			out = append(out, &Household{
				ID:                    fmt.Sprintf("%s:%s", c.Type, lv.Level),
				Label:                 fmt.Sprintf("%s / %s", c.Label, lv.Label),
				Type:                  c.Type,
				IncomeLevel:           lv.Level,
				AnnualIncome:          annual,
				Adults:                c.Adults,
				Children:              c.Children,
				CurrentTax:            tax,
				ConsumptionPropensity: lv.Propensity,
			})
		}
	}
	return out
}
