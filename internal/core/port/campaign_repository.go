package port

import (
	"context"

	"rtb-pacing/internal/core/domain"
	"rtb-pacing/internal/core/report"
)

// ErrInvalidConfig is returned, wrapped, for every rejected simulation setup.
var ErrInvalidConfig = domain.ErrInvalidConfig

// CampaignRepository is the outbound port serving scenario configuration:
// the {name, pCTR, base bid} triples and their default budgets. It never
// stores simulation results.
type CampaignRepository interface {
	// ListCampaigns returns the scenario campaigns in auction iteration order.
	ListCampaigns(ctx context.Context) ([]domain.CampaignSpec, error)
}

// RunRecorder observes finished runs, e.g. to export metrics.
type RunRecorder interface {
	ObserveRun(strategy domain.Strategy, rep report.Report)
	ObserveFailure(strategy string)
}
