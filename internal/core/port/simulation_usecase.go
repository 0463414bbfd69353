package port

import (
	"context"

	"rtb-pacing/internal/core/domain"
	"rtb-pacing/internal/core/report"
)

// SimulationUseCase defines the operations exposed by the pacing simulator.
// It is the primary port into the application domain; the HTTP adapter and
// the CLI both drive it. Mock implementations are generated from this
// interface for testing.
type SimulationUseCase interface {
	// RunSimulation runs one full-horizon simulation for the scenario
	// campaigns with the requested budgets and controller type. Invalid
	// input returns an error wrapping ErrInvalidConfig before any tick runs.
	RunSimulation(ctx context.Context, req SimulationReq) (*SimulationResp, error)

	// ListCampaigns returns the scenario campaigns budgets are matched
	// against, in auction iteration order.
	ListCampaigns(ctx context.Context) ([]domain.CampaignSpec, error)
}

// SimulationReq carries the user-facing knobs of a run. Budgets are matched
// positionally with the scenario campaigns; a shorter list leaves the
// remaining campaigns at their default budget. A nil PID selects the
// configured default gains and a nil Seed draws a fresh one.
type SimulationReq struct {
	Budgets        []float64
	ControllerType string
	PID            *domain.PIDParams
	Seed           *uint64
	WithTicks      bool
	WithCurves     bool
}

// SimulationResp is the outcome of one run. It is a DTO used by the HTTP
// layer and the CLI renderer and does not contain domain behaviour.
type SimulationResp struct {
	RunID    string              `json:"run_id"`
	Seed     uint64              `json:"seed"`
	Strategy domain.Strategy     `json:"controller_type"`
	PID      *domain.PIDParams   `json:"pid_params,omitempty"`
	Horizon  int                 `json:"horizon"`
	Report   report.Report       `json:"report"`
	Ticks    []domain.TickRecord `json:"tick_log,omitempty"`
}
