/*
Package timeline implements the ten-year AI-labor-shock projector.

PURPOSE:
  Projects GDP, public debt, unemployment, and per-job-group employment
  and wage indices over a fixed ten-year horizon under an AI adoption
  scenario and a UBI funding burden.

KEY CONCEPTS IN THIS FILE (types.go):
  - JobGroup:     Immutable template describing a labor-force segment's
                  exposure to automation
  - groupState:   The mutable per-run copy (employment rate, wage index)
  - YearSnapshot: One projected year as returned to callers

TEMPLATE vs RUN STATE:
  The four canonical JobGroup templates are defined once and never
  mutated. Each run constructs fresh state copies, so repeated or
  overlapping runs cannot contaminate each other.

SEE ALSO:
  - projector.go: The step loop
  - economy/params.go: Scenario (pace, investment)
*/
package timeline

// =============================================================================
// JOB GROUP - Immutable labor-force segment template
// =============================================================================

type JobGroup struct {
	ID    string
	Label string

	// Share of the labor force. The four canonical groups sum to 1;
	// not enforced for caller-supplied groups.
	Share float64

	// AIExposure is how much of the group's task content automation can
	// touch, in [0, 1].
	AIExposure float64

	// DisplacementFactor scales exposure into job loss;
	// ProductivityFactor scales it into wage/output gain.
	DisplacementFactor float64
	ProductivityFactor float64
}

// Calibration: clerical work is displacement-dominant, professional work
// productivity-dominant, care/creative work least exposed. Shares sum
// to 1.
var canonicalGroups = []JobGroup{
	{
		ID:                 "routine_clerical",
		Label:              "Routine & clerical",
		Share:              0.25,
		AIExposure:         0.80,
		DisplacementFactor: 1.20,
		ProductivityFactor: 0.30,
	},
	{
		ID:                 "manual_service",
		Label:              "Manual & service",
		Share:              0.30,
		AIExposure:         0.50,
		DisplacementFactor: 0.80,
		ProductivityFactor: 0.40,
	},
	{
		ID:                 "professional_tech",
		Label:              "Professional & technical",
		Share:              0.25,
		AIExposure:         0.60,
		DisplacementFactor: 0.30,
		ProductivityFactor: 1.20,
	},
	{
		ID:                 "creative_care",
		Label:              "Creative & care",
		Share:              0.20,
		AIExposure:         0.30,
		DisplacementFactor: 0.20,
		ProductivityFactor: 0.80,
	},
}

// CanonicalGroups returns a copy of the four built-in templates.
func CanonicalGroups() []JobGroup {
	out := make([]JobGroup, len(canonicalGroups))
	copy(out, canonicalGroups)
	return out
}

// groupState is the mutable per-run state for one group.
type groupState struct {
	template       JobGroup
	employmentRate float64 // starts at 1.0
	wageIndex      float64 // starts at 1.0
}

// =============================================================================
// SNAPSHOT - One projected year
// =============================================================================

// GroupSnapshot reports one group's state for one year. Employment is a
// rate (1.0 = full baseline employment); Wage is an index with 100 as
// the baseline.
type GroupSnapshot struct {
	ID         string
	Label      string
	Employment float64
	Wage       float64
}

// YearSnapshot is one entry of the projected sequence. GDP and Debt are
// in trillion yen; UnemploymentRate is a fraction; AvgWageIndex has 100
// as the baseline.
type YearSnapshot struct {
	Year             int
	GDP              float64
	Debt             float64
	UnemploymentRate float64
	AvgWageIndex     float64
	Groups           []GroupSnapshot
}
