/*
environment.go - Population construction and the monthly step

PURPOSE:
  Builds the synthetic population from a validated Config and applies
  the monthly update: each person adjusts work hours toward the gap
  between subsistence need and the UBI, earns, is taxed flat, saves a
  fifth of disposable income, and re-evaluates happiness; then each
  household re-aggregates income (labor PLUS UBI, in a single pass) and
  is classified against the poverty line.

RANDOMNESS:
  All draws come from one rand.Rand seeded from Config.Seed, so a run
  is fully reproducible. No draw happens after initialization, so the
  step itself is deterministic.

INVARIANTS:
  - No agent is added or removed after initialization.
  - A household referencing a missing person ID is a construction bug
    and panics.
  - Savings are monotone non-decreasing (disposable income can't go
    negative under a flat rate in [0, 1]).

SEE ALSO:
  - types.go: Constants and agent records
  - runner.go: The multi-year loop around Step
*/
package agents

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/warp/policy-lab/economy"
)

// Environment holds one run's population. Construct with NewEnvironment;
// a fresh environment per run keeps overlapping runs independent.
type Environment struct {
	// Ordered by ID so every loop (draws, steps, float aggregation)
	// runs in a fixed order and a seeded run reproduces exactly.
	Persons    []*Person
	Households []*Household

	policy Policy
}

// NewEnvironment validates the config and builds the population.
func NewEnvironment(cfg Config) (*Environment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	env := &Environment{
		Persons:    make([]*Person, 0, cfg.Households*cfg.PersonsPerHousehold),
		Households: make([]*Household, 0, cfg.Households),
		policy:     cfg.Policy,
	}

	pid := 0
	for hid := 0; hid < cfg.Households; hid++ {
		members := make([]int, 0, cfg.PersonsPerHousehold)
		for i := 0; i < cfg.PersonsPerHousehold; i++ {
			wage := rng.NormFloat64()*wageStdDev + wageMean
			if wage < minHourlyWage {
				wage = minHourlyWage
			}
			env.Persons = append(env.Persons, &Person{
				ID:          pid,
				Age:         minAge + rng.Intn(maxAge-minAge),
				HourlyWage:  wage,
				WorkHours:   initialHours,
				Saving:      economy.ZeroMoney(),
				HouseholdID: hid,
				Happiness:   happinessBase,
			})
			members = append(members, pid)
			pid++
		}
		env.Households = append(env.Households, &Household{ID: hid, MemberIDs: members})
	}
	return env, nil
}

// Step advances the simulation by one month: person updates first, then
// household aggregation.
func (env *Environment) Step() {
	for _, p := range env.Persons {
		env.stepPerson(p)
	}
	for _, h := range env.Households {
		env.aggregateHousehold(h)
	}
}

func (env *Environment) stepPerson(p *Person) {
	ubi := env.policy.UBIAmount.Float()

	// Hours: close the gap between subsistence need and the UBI at the
	// agent's own wage, with inertia against abrupt swings. Epsilon
	// guards the zero-wage draw; this is an arithmetic case, not an
	// error.
	gap := math.Max(0, basicNeed-ubi)
	targetHours := gap / (p.HourlyWage*weeksPerMonth + wageEpsilon)
	p.WorkHours = clampHours(hoursInertia*p.WorkHours + (1-hoursInertia)*targetHours)

	// Income, flat tax, savings.
	laborIncome := p.HourlyWage * p.WorkHours * weeksPerMonth
	totalIncome := laborIncome + ubi
	disposable := totalIncome * (1 - env.policy.IncomeTaxRate)
	p.Saving = p.Saving.Add(economy.NewMoneyFromFloat(disposable * savingsRate))

	// Happiness: disposable income helps, overtime hurts. No memory
	// beyond the current value.
	p.Happiness = clampHappiness(
		happinessBase + happinessPerYen*disposable - overworkPenalty*math.Max(0, p.WorkHours-overworkThreshold))
}

// aggregateHousehold recomputes total income (labor plus UBI for every
// member, in one pass) and reclassifies poverty.
func (env *Environment) aggregateHousehold(h *Household) {
	total := economy.ZeroMoney()
	for _, pid := range h.MemberIDs {
		if pid < 0 || pid >= len(env.Persons) {
			panic(fmt.Sprintf("agents: household %d references unknown person %d", h.ID, pid))
		}
		p := env.Persons[pid]
		labor := p.HourlyWage * p.WorkHours * weeksPerMonth
		total = total.Add(economy.NewMoneyFromFloat(labor)).Add(env.policy.UBIAmount)
	}
	h.TotalIncome = total
	h.IsPoor = total.LessThan(economy.NewMoneyFromFloat(povertyLine))
}

// PovertyRate is the fraction of households currently classified poor.
func (env *Environment) PovertyRate() float64 {
	poor := 0
	for _, h := range env.Households {
		if h.IsPoor {
			poor++
		}
	}
	return float64(poor) / float64(len(env.Households))
}

// AvgWorkHours is the population mean of weekly work hours.
func (env *Environment) AvgWorkHours() float64 {
	var sum float64
	for _, p := range env.Persons {
		sum += p.WorkHours
	}
	return sum / float64(len(env.Persons))
}

// AvgHappiness is the population mean happiness.
func (env *Environment) AvgHappiness() float64 {
	var sum float64
	for _, p := range env.Persons {
		sum += p.Happiness
	}
	return sum / float64(len(env.Persons))
}

func clampHours(h float64) float64 {
	if h < 0 {
		return 0
	}
	if h > maxWeeklyHours {
		return maxWeeklyHours
	}
	return h
}

func clampHappiness(v float64) float64 {
	if v < minHappiness {
		return minHappiness
	}
	if v > maxHappiness {
		return maxHappiness
	}
	return v
}
