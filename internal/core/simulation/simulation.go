// Package simulation runs the per-minute pacing and auction loop over a
// fixed horizon.
package simulation

import (
	"fmt"
	"log/slog"
	"math"

	"rtb-pacing/internal/core/auction"
	"rtb-pacing/internal/core/controller"
	"rtb-pacing/internal/core/domain"
	"rtb-pacing/internal/core/random"
)

// dt is the controller step between two ticks, in minutes.
const dt = 1.0

// Result is the outcome of one run. Campaigns keep configuration order.
type Result struct {
	Strategy    domain.Strategy     `json:"strategy"`
	Horizon     int                 `json:"horizon"`
	Impressions float64             `json:"impressions"`
	Ticks       []domain.TickRecord `json:"ticks"`
	Campaigns   []domain.Campaign   `json:"campaigns"`
}

// PacingError is |spend - target| / target, or 0 when the target is 0.
func PacingError(spend, target float64) float64 {
	if target == 0 {
		return 0
	}
	return math.Abs(spend-target) / target
}

// Run executes the whole horizon. Every draw (auction discounts, Bernoulli
// participation, pCTR noise) comes from src, so equal seeds give equal logs.
func Run(cfg Config, src random.Source) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", domain.ErrInvalidConfig)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	campaigns := make([]*domain.Campaign, len(cfg.Campaigns))
	controllers := make([]controller.Controller, len(cfg.Campaigns))
	for i, spec := range cfg.Campaigns {
		ctrl, err := controller.New(cfg.Strategy, cfg.PID, src)
		if err != nil {
			return nil, err
		}
		campaigns[i] = domain.NewCampaign(spec, cfg.Horizon)
		controllers[i] = ctrl
	}

	var (
		auc     = auction.New(cfg.MaxDiscount)
		ticks   = make([]domain.TickRecord, 0, cfg.Horizon)
		bidders = make([]auction.Bidder, 0, len(campaigns))
		owners  = make([]int, 0, len(campaigns))
	)

	for minute := 0; minute < cfg.Horizon; minute++ {
		bidders, owners = bidders[:0], owners[:0]

		for i, c := range campaigns {
			expected := c.ExpectedSpend(minute, cfg.Horizon)
			target := c.Budget
			if controllers[i].TargetMode() == controller.TargetLinear {
				target = expected
			}
			if controllers[i].Decide(target, c.Spend, dt) {
				bidders = append(bidders, auction.Bidder{Name: c.Name, BaseBid: c.BaseBid})
				owners = append(owners, i)
			}
			c.ErrorHistory = append(c.ErrorHistory, PacingError(c.Spend, expected))
		}

		rec := domain.TickRecord{Minute: minute, Winner: domain.NoBid, Bidders: len(bidders)}
		if len(bidders) > 0 {
			out, err := auc.Resolve(bidders, src)
			if err != nil {
				return nil, fmt.Errorf("minute %d: %w", minute, err)
			}
			winner := campaigns[owners[out.WinnerIndex]]
			pctr := max(winner.PCTR+random.Normal(src, cfg.CTRNoiseMean, cfg.CTRNoiseStd), 0)

			rec.Winner = winner.Name
			rec.PricePaid = out.PricePaid
			rec.PCTR = pctr
			rec.Spend = out.PricePaid * pctr * cfg.Impressions

			// visible to controllers from the next tick on
			winner.Spend += rec.Spend
		}
		ticks = append(ticks, rec)

		logger.Debug("tick",
			slog.Int("minute", minute),
			slog.Int("bidders", rec.Bidders),
			slog.String("winner", rec.Winner),
			slog.Float64("price_paid", rec.PricePaid),
			slog.Float64("spend", rec.Spend),
		)
	}

	res := &Result{
		Strategy:    cfg.Strategy,
		Horizon:     cfg.Horizon,
		Impressions: cfg.Impressions,
		Ticks:       ticks,
		Campaigns:   make([]domain.Campaign, len(campaigns)),
	}
	for i, c := range campaigns {
		res.Campaigns[i] = *c
	}
	return res, nil
}
