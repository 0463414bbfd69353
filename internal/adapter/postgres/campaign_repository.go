package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rtb-pacing/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. It only reads scenario configuration.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// ListCampaigns returns the scenario campaigns ordered by position. The
// order is the auction iteration order and decides ties.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.CampaignSpec, error) {
	query := `
        SELECT name, pctr, base_bid, default_budget
        FROM scenario_campaigns
        ORDER BY position, name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query scenario campaigns: %w", err)
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignSpec, error) {
		var c domain.CampaignSpec
		err := row.Scan(&c.Name, &c.PCTR, &c.BaseBid, &c.Budget)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan scenario campaigns: %w", err)
	}
	return campaigns, nil
}
