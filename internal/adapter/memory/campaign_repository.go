// Package memory serves the built-in scenario catalog without a database.
package memory

import (
	"context"
	"slices"

	"rtb-pacing/internal/core/domain"
)

// DefaultCampaigns is the three-book scenario: all bid on the same keyword
// with fixed pCTR and base bids.
var DefaultCampaigns = []domain.CampaignSpec{
	{Name: "Time Series Analysis: Forecasting and Control", PCTR: 0.03, BaseBid: 0.50, Budget: 5000},
	{Name: "Practical Statistics for Data Scientists", PCTR: 0.04, BaseBid: 0.48, Budget: 3000},
	{Name: "Designing Data-Intensive Applications", PCTR: 0.02, BaseBid: 0.55, Budget: 2000},
}

// CampaignRepository implements port.CampaignRepository over a fixed list.
type CampaignRepository struct {
	campaigns []domain.CampaignSpec
}

// NewCampaignRepository returns a repository serving campaigns, or the
// default scenario when none are given.
func NewCampaignRepository(campaigns ...domain.CampaignSpec) *CampaignRepository {
	if len(campaigns) == 0 {
		campaigns = DefaultCampaigns
	}
	return &CampaignRepository{campaigns: slices.Clone(campaigns)}
}

// ListCampaigns returns a copy of the catalog so callers may mutate budgets.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.CampaignSpec, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.campaigns), nil
}
