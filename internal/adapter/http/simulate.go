package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"rtb-pacing/internal/core/domain"
	"rtb-pacing/internal/core/port"
)

type simulateBody struct {
	Budgets        []float64         `json:"budgets"`
	ControllerType string            `json:"controller_type"`
	PIDParams      *domain.PIDParams `json:"pid_params"`
	Seed           *uint64           `json:"seed"`
}

// handleSimulate runs one simulation. The body carries budgets, the
// controller type, optional PID gains and an optional seed. The `ticks`
// query parameter (default true) controls whether the tick log is
// returned and `curves` adds per-campaign spend curves. Malformed input and
// configuration errors produce HTTP 400, anything else HTTP 500.
func (h *Handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var body simulateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	q := r.URL.Query()
	withTicks, err := boolParam(q.Get("ticks"), true)
	if err != nil {
		http.Error(w, "invalid 'ticks' parameter", http.StatusBadRequest)
		return
	}
	withCurves, err := boolParam(q.Get("curves"), false)
	if err != nil {
		http.Error(w, "invalid 'curves' parameter", http.StatusBadRequest)
		return
	}

	resp, err := h.svc.RunSimulation(r.Context(), port.SimulationReq{
		Budgets:        body.Budgets,
		ControllerType: body.ControllerType,
		PID:            body.PIDParams,
		Seed:           body.Seed,
		WithTicks:      withTicks,
		WithCurves:     withCurves,
	})
	switch {
	case errors.Is(err, port.ErrInvalidConfig):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("simulation error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, resp)
}

func boolParam(raw string, def bool) (bool, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.ParseBool(raw)
}
