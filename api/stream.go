/*
stream.go - Websocket progress feed for agent-simulation runs

PURPOSE:
  Long agent runs (population x months) would otherwise block a client
  until the whole history is ready. This handler upgrades to a
  websocket, runs the simulation with a per-month observer, and pushes
  one message per step followed by a final summary message.

PROTOCOL:
  Client connects with the run config as query parameters:
    /api/agents/stream?households=200&persons=2&years=10&ubi=100000&tax=0.2&seed=42
  Server sends:
    {"type": "entry", "entry": {...}}    once per month, in order
    {"type": "final", "final": {...}}    after the last month
  then closes. A config error is rejected with a plain 400 before the
  upgrade; no entry is ever sent for an invalid run.

SEMANTICS:
  Streaming does not change simulation semantics: the pushed entries
  are exactly the history the POST endpoint would return for the same
  config. A client hanging up cancels the run between steps; a canceled
  run produces no final message.

SEE ALSO:
  - agents/runner.go: RunWithObserver
  - server.go: Route wiring
*/
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"

	"github.com/warp/policy-lab/agents"
	"github.com/warp/policy-lab/economy"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Same-origin policy is handled by the CORS layer for REST; the
	// stream mirrors its allowance.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type streamMessage struct {
	Type  string           `json:"type"` // entry | final
	Entry *HistoryEntryDTO `json:"entry,omitempty"`
	Final *AgentsFinalDTO  `json:"final,omitempty"`
}

// StreamAgents runs the agent simulation, pushing progress over a
// websocket.
func (h *Handler) StreamAgents(w http.ResponseWriter, r *http.Request) {
	cfg, err := streamConfig(r)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	// Reject bad configs before upgrading so clients get a plain 400.
	if err := cfg.Validate(); err != nil {
		writeEngineError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the response.
		return
	}
	defer conn.Close()

	// Cancel the run if the client hangs up.
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	res, err := agents.RunWithObserver(ctx, cfg, func(e agents.HistoryEntry) error {
		dto := historyEntryDTO(e)
		return conn.WriteJSON(streamMessage{Type: "entry", Entry: &dto})
	})
	if err != nil {
		// Canceled or write failure; nothing more to send.
		return
	}

	final := AgentsFinalDTO{
		AvgHappiness: res.Final.AvgHappiness,
		AvgWorkHours: res.Final.AvgWorkHours,
		PovertyRate:  res.Final.PovertyRate,
	}
	_ = conn.WriteJSON(streamMessage{Type: "final", Final: &final})
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "run complete"))
}

func streamConfig(r *http.Request) (agents.Config, error) {
	q := r.URL.Query()

	households, err := queryInt(q.Get("households"), 200)
	if err != nil {
		return agents.Config{}, &economy.ConfigError{Field: "households", Reason: "must be an integer"}
	}
	persons, err := queryInt(q.Get("persons"), 2)
	if err != nil {
		return agents.Config{}, &economy.ConfigError{Field: "persons", Reason: "must be an integer"}
	}
	years, err := queryInt(q.Get("years"), 10)
	if err != nil {
		return agents.Config{}, &economy.ConfigError{Field: "years", Reason: "must be an integer"}
	}
	ubi, err := queryInt(q.Get("ubi"), 100_000)
	if err != nil {
		return agents.Config{}, &economy.ConfigError{Field: "ubi", Reason: "must be an integer"}
	}
	seed, err := queryInt(q.Get("seed"), 1)
	if err != nil {
		return agents.Config{}, &economy.ConfigError{Field: "seed", Reason: "must be an integer"}
	}

	tax := 0.2
	if s := q.Get("tax"); s != "" {
		tax, err = strconv.ParseFloat(s, 64)
		if err != nil {
			return agents.Config{}, &economy.ConfigError{Field: "tax", Reason: "must be a number"}
		}
	}

	return agents.Config{
		Households:          households,
		PersonsPerHousehold: persons,
		Years:               years,
		Policy: agents.Policy{
			UBIAmount:     economy.NewMoney(int64(ubi)),
			IncomeTaxRate: tax,
		},
		Seed: int64(seed),
	}, nil
}

func queryInt(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}
