package agents_test

import (
	"context"
	"errors"
	"testing"

	"github.com/warp/policy-lab/agents"
	"github.com/warp/policy-lab/economy"
)

func testConfig() agents.Config {
	return agents.Config{
		Households:          200,
		PersonsPerHousehold: 2,
		Years:               10,
		Policy: agents.Policy{
			UBIAmount:     economy.NewMoney(100_000),
			IncomeTaxRate: 0.2,
		},
		Seed: 42,
	}
}

func TestRun_ScenarioShape(t *testing.T) {
	// GIVEN: 200 households x 2 persons, 100,000 UBI, 10 years
	// THEN: Exactly 120 monthly entries; entry 0 near the 40h baseline
	res, err := agents.Run(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.History) != 120 {
		t.Fatalf("expected 120 monthly entries, got %d", len(res.History))
	}

	// One smoothing step moves hours at most 30% of the way from 40
	// toward the target, so entry 0 stays within that tolerance.
	first := res.History[0]
	if first.Step != 0 || first.Year != 0 {
		t.Errorf("entry 0 indexed as step %d year %d", first.Step, first.Year)
	}
	if first.AvgWorkHours < 40*0.7 || first.AvgWorkHours > 40*1.02 {
		t.Errorf("entry 0 avg hours %v, want near the 40h baseline", first.AvgWorkHours)
	}

	last := res.History[119]
	if last.Year != 9 {
		t.Errorf("final entry year = %d, want 9", last.Year)
	}
	if last.PovertyRate < 0 || last.PovertyRate > 1 {
		t.Errorf("final poverty rate %v out of [0, 1]", last.PovertyRate)
	}
}

func TestRun_SeedReproducibility(t *testing.T) {
	// Two runs with identical config produce identical histories.
	a, err := agents.Run(context.Background(), testConfig())
	if err != nil {
		t.Fatal(err)
	}
	b, err := agents.Run(context.Background(), testConfig())
	if err != nil {
		t.Fatal(err)
	}

	for i := range a.History {
		if a.History[i] != b.History[i] {
			t.Fatalf("entry %d differs: %+v vs %+v", i, a.History[i], b.History[i])
		}
	}
	if a.Final != b.Final {
		t.Errorf("final aggregates differ: %+v vs %+v", a.Final, b.Final)
	}
	for i := range a.Persons {
		if !a.Persons[i].Saving.Value.Equal(b.Persons[i].Saving.Value) {
			t.Errorf("person %d savings differ between identical runs", i)
		}
	}

	// A different seed produces a different population.
	cfg := testConfig()
	cfg.Seed = 7
	c, err := agents.Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	same := true
	for i := range a.History {
		if a.History[i] != c.History[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical histories")
	}
}

func TestRun_SavingsMonotone(t *testing.T) {
	// Savings never shrink: disposable income is non-negative under a
	// flat rate in [0, 1] and there is no consumption-driven depletion.
	cfg := testConfig()
	cfg.Years = 2

	env, err := agents.NewEnvironment(cfg)
	if err != nil {
		t.Fatal(err)
	}

	prior := make([]economy.Money, len(env.Persons))
	for step := 0; step < cfg.Years*12; step++ {
		env.Step()
		for i, p := range env.Persons {
			if p.Saving.LessThan(prior[i]) {
				t.Fatalf("step %d: person %d savings decreased from %s to %s",
					step, p.ID, prior[i], p.Saving)
			}
			prior[i] = p.Saving
		}
	}
}

func TestRun_PovertyBoundsEveryStep(t *testing.T) {
	res, err := agents.Run(context.Background(), testConfig())
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range res.History {
		if e.PovertyRate < 0 || e.PovertyRate > 1 {
			t.Errorf("step %d: poverty rate %v out of [0, 1]", e.Step, e.PovertyRate)
		}
	}
}

func TestRun_LargeUBIEliminatesPoverty(t *testing.T) {
	// UBI at the poverty line per member guarantees household income
	// above the threshold within a few steps.
	cfg := testConfig()
	cfg.Policy.UBIAmount = economy.NewMoney(200_000)
	cfg.Years = 1

	res, err := agents.Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range res.History[3:] {
		if e.PovertyRate != 0 {
			t.Errorf("step %d: poverty %v, want 0 under saturating UBI", e.Step, e.PovertyRate)
		}
	}
}

func TestRun_HighUBIReducesWorkHours(t *testing.T) {
	// When UBI covers subsistence, the target-hours gap is zero and
	// hours decay toward it.
	cfg := testConfig()
	cfg.Policy.UBIAmount = economy.NewMoney(150_000)
	cfg.Years = 3

	res, err := agents.Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	final := res.Final.AvgWorkHours
	if final > 5 {
		t.Errorf("avg hours %v after 3 years of subsistence UBI, expected near 0", final)
	}
}

func TestRun_HappinessBounds(t *testing.T) {
	res, err := agents.Run(context.Background(), testConfig())
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range res.Persons {
		if p.Happiness < 0 || p.Happiness > 10 {
			t.Errorf("person %d: happiness %v out of [0, 10]", p.ID, p.Happiness)
		}
		if p.WorkHours < 0 || p.WorkHours > 60 {
			t.Errorf("person %d: hours %v out of [0, 60]", p.ID, p.WorkHours)
		}
		if p.HourlyWage < 600 {
			t.Errorf("person %d: wage %v below the floor", p.ID, p.HourlyWage)
		}
	}
}

func TestRun_ZeroPopulationRejected(t *testing.T) {
	// A zero-household config must fail fast as a configuration error,
	// never divide by zero in the poverty rate.
	cfg := testConfig()
	cfg.Households = 0

	_, err := agents.Run(context.Background(), cfg)
	if err == nil {
		t.Fatal("expected config error")
	}
	if !economy.IsConfigError(err) {
		t.Errorf("expected config error kind, got: %v", err)
	}
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := agents.Run(ctx, testConfig())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
	if res != nil {
		t.Error("canceled run must produce no result")
	}
}

func TestRunWithObserver_SeesEveryEntryInOrder(t *testing.T) {
	cfg := testConfig()
	cfg.Years = 1

	var seen []agents.HistoryEntry
	res, err := agents.RunWithObserver(context.Background(), cfg, func(e agents.HistoryEntry) error {
		seen = append(seen, e)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != len(res.History) {
		t.Fatalf("observer saw %d entries, history has %d", len(seen), len(res.History))
	}
	for i := range seen {
		if seen[i] != res.History[i] {
			t.Errorf("entry %d: observer saw %+v, history has %+v", i, seen[i], res.History[i])
		}
	}
}
