package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rtb-pacing/internal/core/domain"
)

// Seed inserts the given scenario campaigns, keeping any row that already
// exists under the same name. Positions follow slice order.
func Seed(ctx context.Context, db *pgxpool.Pool, campaigns []domain.CampaignSpec) error {
	batch := &pgx.Batch{}
	for i, c := range campaigns {
		batch.Queue(`INSERT INTO scenario_campaigns
    (position, name, pctr, base_bid, default_budget, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,now(),now()) ON CONFLICT (name) DO NOTHING`,
			i, c.Name, c.PCTR, c.BaseBid, c.Budget)
	}
	return db.SendBatch(ctx, batch).Close()
}
