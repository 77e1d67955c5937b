/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types
  decouple the internal engine model from the external API contract:
  money is rendered as plain numbers at the boundary only, and engine
  structs can evolve without breaking the frontend.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  DTOs are pure data carriers; range validation lives in the economy
  validators, which the handlers invoke via the converted values.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/preset.go: The preset JSON shape reused for scenarios
*/
package api

import (
	"github.com/warp/policy-lab/agents"
	"github.com/warp/policy-lab/economy"
	"github.com/warp/policy-lab/factory"
	"github.com/warp/policy-lab/household"
	"github.com/warp/policy-lab/timeline"
)

// =============================================================================
// PARAMETERS
// =============================================================================

// ParametersRequest mirrors factory.ParametersJSON so the POST bodies
// and stored presets share one shape.
type ParametersRequest = factory.ParametersJSON

func parametersFromRequest(req *ParametersRequest) (economy.Parameters, error) {
	preset, err := factory.FromJSON(factory.PresetJSON{ID: "request", Parameters: req})
	if err != nil {
		return economy.Parameters{}, err
	}
	return preset.Parameters, nil
}

// =============================================================================
// IMPACT
// =============================================================================

type ImpactRequest struct {
	Parameters *ParametersRequest `json:"parameters"`
}

type HouseholdResultDTO struct {
	ID                   string  `json:"id"`
	Label                string  `json:"label"`
	Type                 string  `json:"type"`
	IncomeLevel          string  `json:"income_level"`
	AnnualIncome         float64 `json:"annual_income"`
	Members              int     `json:"members"`
	BIReceived           float64 `json:"bi_received"`
	NewTax               float64 `json:"new_tax"`
	NetChange            float64 `json:"net_change"`
	RealIncomeChangeRate float64 `json:"real_income_change_rate"`
}

type FundingDTO struct {
	ConsumptionTax   float64 `json:"consumption_tax"`
	IncomeTax        float64 `json:"income_tax"`
	GovBonds         float64 `json:"gov_bonds"`
	WelfareReduction float64 `json:"welfare_reduction"`
	Total            float64 `json:"total"`
}

type ImpactDTO struct {
	TotalAnnualCost   float64              `json:"total_annual_cost"`
	Funding           FundingDTO           `json:"funding"`
	Shortfall         float64              `json:"shortfall"`
	GDPImpact         float64              `json:"gdp_impact"`
	PovertyRateChange float64              `json:"poverty_rate_change"`
	Households        []HouseholdResultDTO `json:"households"`
}

func impactDTO(impact *household.Impact, catalog []*household.Household) ImpactDTO {
	hh := make([]HouseholdResultDTO, len(catalog))
	for i, h := range catalog {
		hh[i] = HouseholdResultDTO{
			ID:                   h.ID,
			Label:                h.Label,
			Type:                 string(h.Type),
			IncomeLevel:          string(h.IncomeLevel),
			AnnualIncome:         h.AnnualIncome.Float(),
			Members:              h.TotalMembers(),
			BIReceived:           h.Result.BIReceived.Float(),
			NewTax:               h.Result.NewTax.Float(),
			NetChange:            h.Result.NetChange.Float(),
			RealIncomeChangeRate: h.Result.RealIncomeChangeRate,
		}
	}
	return ImpactDTO{
		TotalAnnualCost: impact.TotalAnnualCost.Float(),
		Funding: FundingDTO{
			ConsumptionTax:   impact.Funding.ConsumptionTax.Float(),
			IncomeTax:        impact.Funding.IncomeTax.Float(),
			GovBonds:         impact.Funding.GovBonds.Float(),
			WelfareReduction: impact.Funding.WelfareReduction.Float(),
			Total:            impact.Funding.Total().Float(),
		},
		Shortfall:         impact.Shortfall.Float(),
		GDPImpact:         impact.GDPImpact,
		PovertyRateChange: impact.PovertyRateChange,
		Households:        hh,
	}
}

// =============================================================================
// TIMELINE
// =============================================================================

type TimelineRequest struct {
	Parameters *ParametersRequest    `json:"parameters"`
	Scenario   *factory.ScenarioJSON `json:"scenario"`
}

type GroupSnapshotDTO struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	Employment float64 `json:"employment"`
	Wage       float64 `json:"wage"`
}

type YearSnapshotDTO struct {
	Year             int                `json:"year"`
	GDP              float64            `json:"gdp"`
	Debt             float64            `json:"debt"`
	UnemploymentRate float64            `json:"unemployment_rate"`
	AvgWageIndex     float64            `json:"avg_wage_index"`
	Groups           []GroupSnapshotDTO `json:"groups"`
}

type TimelineDTO struct {
	Years []YearSnapshotDTO `json:"years"`
}

func timelineDTO(snaps []timeline.YearSnapshot) TimelineDTO {
	years := make([]YearSnapshotDTO, len(snaps))
	for i, s := range snaps {
		groups := make([]GroupSnapshotDTO, len(s.Groups))
		for j, g := range s.Groups {
			groups[j] = GroupSnapshotDTO{ID: g.ID, Label: g.Label, Employment: g.Employment, Wage: g.Wage}
		}
		years[i] = YearSnapshotDTO{
			Year:             s.Year,
			GDP:              s.GDP,
			Debt:             s.Debt,
			UnemploymentRate: s.UnemploymentRate,
			AvgWageIndex:     s.AvgWageIndex,
			Groups:           groups,
		}
	}
	return TimelineDTO{Years: years}
}

// =============================================================================
// AGENTS
// =============================================================================

type AgentsRequest struct {
	Households          int     `json:"households"`
	PersonsPerHousehold int     `json:"persons_per_household"`
	Years               int     `json:"years"`
	MonthlyUBI          int64   `json:"monthly_ubi"`
	IncomeTaxRate       float64 `json:"income_tax_rate"`
	Seed                int64   `json:"seed"`
}

func (r AgentsRequest) toConfig() agents.Config {
	return agents.Config{
		Households:          r.Households,
		PersonsPerHousehold: r.PersonsPerHousehold,
		Years:               r.Years,
		Policy: agents.Policy{
			UBIAmount:     economy.NewMoney(r.MonthlyUBI),
			IncomeTaxRate: r.IncomeTaxRate,
		},
		Seed: r.Seed,
	}
}

type HistoryEntryDTO struct {
	Step         int     `json:"step"`
	Year         int     `json:"year"`
	PovertyRate  float64 `json:"poverty_rate"`
	AvgWorkHours float64 `json:"avg_work_hours"`
}

type AgentsFinalDTO struct {
	AvgHappiness float64 `json:"avg_happiness"`
	AvgWorkHours float64 `json:"avg_work_hours"`
	PovertyRate  float64 `json:"poverty_rate"`
}

type AgentsDTO struct {
	History []HistoryEntryDTO `json:"history"`
	Final   AgentsFinalDTO    `json:"final"`
}

func agentsDTO(res *agents.RunResult) AgentsDTO {
	history := make([]HistoryEntryDTO, len(res.History))
	for i, e := range res.History {
		history[i] = historyEntryDTO(e)
	}
	return AgentsDTO{
		History: history,
		Final: AgentsFinalDTO{
			AvgHappiness: res.Final.AvgHappiness,
			AvgWorkHours: res.Final.AvgWorkHours,
			PovertyRate:  res.Final.PovertyRate,
		},
	}
}

func historyEntryDTO(e agents.HistoryEntry) HistoryEntryDTO {
	return HistoryEntryDTO{
		Step:         e.Step,
		Year:         e.Year,
		PovertyRate:  e.PovertyRate,
		AvgWorkHours: e.AvgWorkHours,
	}
}

// =============================================================================
// SCENARIOS & RUNS
// =============================================================================

type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}

type SaveRunRequest struct {
	Name       string `json:"name"`
	Engine     string `json:"engine"`
	ParamsJSON string `json:"params_json"`
	ResultJSON string `json:"result_json"`
}

type RunDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Engine     string `json:"engine"`
	ParamsJSON string `json:"params_json"`
	ResultJSON string `json:"result_json"`
	CreatedAt  string `json:"created_at"`
}
