package simulation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rtb-pacing/internal/core/domain"
	"rtb-pacing/internal/core/random"
)

func books(budgets ...float64) []domain.CampaignSpec {
	specs := []domain.CampaignSpec{
		{Name: "Time Series Analysis: Forecasting and Control", PCTR: 0.03, BaseBid: 0.50},
		{Name: "Practical Statistics for Data Scientists", PCTR: 0.04, BaseBid: 0.48},
		{Name: "Designing Data-Intensive Applications", PCTR: 0.02, BaseBid: 0.55},
	}
	for i := range specs {
		specs[i].Budget = budgets[i]
	}
	return specs
}

func TestRunDeterminism(t *testing.T) {
	for _, strategy := range domain.Strategies {
		t.Run(string(strategy), func(t *testing.T) {
			cfg := DefaultConfig(books(5000, 3000, 2000), strategy)

			r1, err := Run(cfg, random.New(12345))
			require.NoError(t, err)
			r2, err := Run(cfg, random.New(12345))
			require.NoError(t, err)

			require.Equal(t, r1.Ticks, r2.Ticks)
			require.Equal(t, r1.Campaigns, r2.Campaigns)
		})
	}
}

func TestRunDifferentSeedsDiverge(t *testing.T) {
	cfg := DefaultConfig(books(5000, 3000, 2000), domain.StrategyProportional)
	r1, err := Run(cfg, random.New(1))
	require.NoError(t, err)
	r2, err := Run(cfg, random.New(2))
	require.NoError(t, err)
	assert.NotEqual(t, r1.Ticks, r2.Ticks)
}

func TestRunInvariants(t *testing.T) {
	for _, strategy := range domain.Strategies {
		t.Run(string(strategy), func(t *testing.T) {
			cfg := DefaultConfig(books(5000, 1000, 4000), strategy)
			res, err := Run(cfg, random.New(7))
			require.NoError(t, err)

			require.Len(t, res.Ticks, DefaultHorizon)
			baseBid := make(map[string]float64)
			for _, c := range res.Campaigns {
				baseBid[c.Name] = c.BaseBid
				require.Len(t, c.ErrorHistory, DefaultHorizon)
				assert.Zero(t, c.ErrorHistory[0], "target is zero at minute 0")
				for _, e := range c.ErrorHistory {
					require.GreaterOrEqual(t, e, 0.0)
				}
			}

			spend := make(map[string]float64)
			for i, tick := range res.Ticks {
				require.Equal(t, i, tick.Minute)
				if !tick.Filled() {
					assert.Zero(t, tick.PricePaid)
					assert.Zero(t, tick.PCTR)
					assert.Zero(t, tick.Spend)
					assert.Zero(t, tick.Bidders)
					continue
				}
				require.Positive(t, tick.Bidders)
				require.GreaterOrEqual(t, tick.PricePaid, 0.0)
				require.LessOrEqual(t, tick.PricePaid, baseBid[tick.Winner])
				require.GreaterOrEqual(t, tick.PCTR, 0.0)
				require.GreaterOrEqual(t, tick.Spend, 0.0)
				assert.Equal(t, tick.PricePaid*tick.PCTR*DefaultImpressions, tick.Spend)
				spend[tick.Winner] += tick.Spend
			}

			for _, c := range res.Campaigns {
				assert.Equal(t, spend[c.Name], c.Spend, c.Name)
			}
		})
	}
}

func TestRunBudgetOnlyStopsBidding(t *testing.T) {
	cfg := DefaultConfig(books(1, 1, 1), domain.StrategyPerformance)
	res, err := Run(cfg, random.New(3))
	require.NoError(t, err)

	var filled int
	for _, tick := range res.Ticks {
		if tick.Filled() {
			filled++
		}
	}
	// each campaign wins at most until its tiny budget is crossed
	assert.LessOrEqual(t, filled, 3*DefaultHorizon/100)
	assert.Equal(t, domain.NoBid, res.Ticks[len(res.Ticks)-1].Winner)
	for _, c := range res.Campaigns {
		assert.GreaterOrEqual(t, c.Spend, 0.0)
	}
}

func TestRunSpendVisibleNextTickOnly(t *testing.T) {
	cfg := DefaultConfig(books(5000, 3000, 2000), domain.StrategyPerformance)
	cfg.Horizon = 1
	res, err := Run(cfg, random.New(5))
	require.NoError(t, err)

	require.Len(t, res.Ticks, 1)
	assert.Equal(t, 3, res.Ticks[0].Bidders)
	for _, c := range res.Campaigns {
		require.Len(t, c.ErrorHistory, 1)
		assert.Zero(t, c.ErrorHistory[0])
	}
}

func TestRunShortHorizonCustomConfig(t *testing.T) {
	cfg := DefaultConfig(books(100, 100, 100), domain.StrategyPID)
	cfg.Horizon = 60
	cfg.Impressions = 10
	cfg.PID = domain.PIDParams{Kp: 1, Ki: 0, Kd: 0}
	res, err := Run(cfg, random.New(9))
	require.NoError(t, err)
	assert.Len(t, res.Ticks, 60)
	assert.Equal(t, 60, res.Horizon)
	assert.Equal(t, 10.0, res.Impressions)
	// with a pure P controller nobody bids at minute 0: target and spend are both 0
	assert.Equal(t, domain.NoBid, res.Ticks[0].Winner)
}

func TestRunInvalidConfig(t *testing.T) {
	valid := func() Config { return DefaultConfig(books(5000, 3000, 2000), domain.StrategyPID) }

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "no campaigns", mutate: func(c *Config) { c.Campaigns = nil }},
		{name: "zero budget", mutate: func(c *Config) { c.Campaigns[0].Budget = 0 }},
		{name: "negative budget", mutate: func(c *Config) { c.Campaigns[1].Budget = -10 }},
		{name: "duplicate name", mutate: func(c *Config) { c.Campaigns[2].Name = c.Campaigns[0].Name }},
		{name: "sentinel name", mutate: func(c *Config) { c.Campaigns[0].Name = domain.NoBid }},
		{name: "empty name", mutate: func(c *Config) { c.Campaigns[0].Name = "" }},
		{name: "pctr above one", mutate: func(c *Config) { c.Campaigns[0].PCTR = 1.5 }},
		{name: "zero base bid", mutate: func(c *Config) { c.Campaigns[0].BaseBid = 0 }},
		{name: "unknown strategy", mutate: func(c *Config) { c.Strategy = "Bandit" }},
		{name: "zero horizon", mutate: func(c *Config) { c.Horizon = 0 }},
		{name: "zero impressions", mutate: func(c *Config) { c.Impressions = 0 }},
		{name: "negative discount", mutate: func(c *Config) { c.MaxDiscount = -0.1 }},
		{name: "negative noise", mutate: func(c *Config) { c.CTRNoiseStd = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			res, err := Run(cfg, random.New(1))
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, domain.ErrInvalidConfig), "got %v", err)
		})
	}

	_, err := Run(valid(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestPacingError(t *testing.T) {
	assert.Zero(t, PacingError(10, 0))
	assert.Equal(t, 0.5, PacingError(50, 100))
	assert.Equal(t, 0.5, PacingError(150, 100))
	assert.Zero(t, PacingError(100, 100))
}
