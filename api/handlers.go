/*
handlers.go - HTTP handler implementations

PURPOSE:
  Implements the HTTP endpoints: the three simulation engines, the
  household catalog, demo scenarios, and the saved-run archive.

HANDLER PATTERN:
  1. Decode request body into a Request type
  2. Convert to engine inputs (validation happens there)
  3. Run the engine
  4. Map the result to a DTO and writeJSON

ERROR MAPPING:
  Configuration errors (economy.IsConfigError) -> 400
  Missing runs (economy.IsNotFound)            -> 404
  Everything else                              -> 500
  A failed run writes no partial result; the client keeps whatever it
  displayed before.

CATALOG CLONING:
  The impact handler runs on a fresh catalog per request. The catalog
  generator is cheap and pure, so concurrent requests never share the
  mutable result records.

SEE ALSO:
  - server.go: Route wiring
  - dto.go: Request/response types
*/
package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/warp/policy-lab/agents"
	"github.com/warp/policy-lab/economy"
	"github.com/warp/policy-lab/household"
	"github.com/warp/policy-lab/store/sqlite"
	"github.com/warp/policy-lab/timeline"
)

// Handler holds the dependencies shared by all endpoints.
type Handler struct {
	Store *sqlite.Store

	calculator household.Calculator
	projector  timeline.Projector
}

// NewHandler creates a handler backed by the given run archive.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{Store: store}
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writeJSON: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		log.Printf("%s: %v", message, err)
	}
	body := map[string]string{"error": message}
	if err != nil {
		body["detail"] = err.Error()
	}
	writeJSON(w, status, body)
}

// writeEngineError maps the error taxonomy to status codes.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case economy.IsConfigError(err):
		writeError(w, http.StatusBadRequest, "Invalid configuration", err)
	case economy.IsNotFound(err):
		writeError(w, http.StatusNotFound, "Not found", err)
	default:
		writeError(w, http.StatusInternalServerError, "Simulation failed", err)
	}
}

// =============================================================================
// CATALOG & ENGINES
// =============================================================================

// ListHouseholds returns the archetype catalog without results.
func (h *Handler) ListHouseholds(w http.ResponseWriter, r *http.Request) {
	catalog := household.Catalog()
	dtos := make([]HouseholdResultDTO, len(catalog))
	for i, hh := range catalog {
		dtos[i] = HouseholdResultDTO{
			ID:           hh.ID,
			Label:        hh.Label,
			Type:         string(hh.Type),
			IncomeLevel:  string(hh.IncomeLevel),
			AnnualIncome: hh.AnnualIncome.Float(),
			Members:      hh.TotalMembers(),
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// RunImpact executes the static impact calculator.
func (h *Handler) RunImpact(w http.ResponseWriter, r *http.Request) {
	var req ImpactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	params, err := parametersFromRequest(req.Parameters)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	catalog := household.Catalog()
	impact, err := h.calculator.Run(params, catalog)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, impactDTO(impact, catalog))
}

// RunTimeline executes the ten-year projector.
func (h *Handler) RunTimeline(w http.ResponseWriter, r *http.Request) {
	var req TimelineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	params, err := parametersFromRequest(req.Parameters)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	scenario := economy.Scenario{Pace: economy.PaceBase, Investment: 50}
	if req.Scenario != nil {
		scenario = economy.Scenario{Pace: economy.Pace(req.Scenario.Pace), Investment: req.Scenario.Investment}
	}

	snaps, err := h.projector.Run(params, scenario)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, timelineDTO(snaps))
}

// RunAgents executes the population micro-simulation.
func (h *Handler) RunAgents(w http.ResponseWriter, r *http.Request) {
	var req AgentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	res, err := agents.Run(r.Context(), req.toConfig())
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, agentsDTO(res))
}

// =============================================================================
// SAVED-RUN ARCHIVE
// =============================================================================

// SaveRun archives an engine result under a name.
func (h *Handler) SaveRun(w http.ResponseWriter, r *http.Request) {
	var req SaveRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Run name is required", nil)
		return
	}

	run, err := h.Store.SaveRun(r.Context(), req.Name, req.Engine, req.ParamsJSON, req.ResultJSON)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, runDTO(run))
}

// ListRuns lists archived runs, optionally filtered with ?engine=.
func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := h.Store.ListRuns(r.Context(), r.URL.Query().Get("engine"))
	if err != nil {
		writeEngineError(w, err)
		return
	}
	dtos := make([]RunDTO, len(runs))
	for i := range runs {
		dtos[i] = runDTO(&runs[i])
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetRun returns one archived run.
func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	run, err := h.Store.GetRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, runDTO(run))
}

// DeleteRun removes one archived run.
func (h *Handler) DeleteRun(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteRun(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ResetArchive clears the archive. Dev/demo only.
func (h *Handler) ResetArchive(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reset(r.Context()); err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

func runDTO(run *sqlite.Run) RunDTO {
	return RunDTO{
		ID:         run.ID,
		Name:       run.Name,
		Engine:     run.Engine,
		ParamsJSON: run.ParamsJSON,
		ResultJSON: run.ResultJSON,
		CreatedAt:  run.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
