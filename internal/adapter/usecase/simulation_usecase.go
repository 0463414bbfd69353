package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"

	"rtb-pacing/internal/config/configs"
	"rtb-pacing/internal/core/domain"
	"rtb-pacing/internal/core/port"
	"rtb-pacing/internal/core/random"
	"rtb-pacing/internal/core/report"
	"rtb-pacing/internal/core/simulation"
)

// Params are the scenario-wide constants applied to every run.
type Params struct {
	// Seed fixes the random seed of every run that does not request one.
	// Zero draws a fresh seed per run.
	Seed         uint64
	Horizon      int
	Impressions  float64
	MaxDiscount  float64
	CTRNoiseMean float64
	CTRNoiseStd  float64
	PID          domain.PIDParams
}

// DefaultParams mirrors the one-day scenario.
func DefaultParams() Params {
	cfg := simulation.DefaultConfig(nil, "")
	return Params{
		Horizon:      cfg.Horizon,
		Impressions:  cfg.Impressions,
		MaxDiscount:  cfg.MaxDiscount,
		CTRNoiseMean: cfg.CTRNoiseMean,
		CTRNoiseStd:  cfg.CTRNoiseStd,
		PID:          cfg.PID,
	}
}

// ParamsFromConfig converts the SIM_ configuration section.
func ParamsFromConfig(c configs.Simulation) Params {
	return Params{
		Seed:         c.Seed,
		Horizon:      c.Horizon,
		Impressions:  c.Impressions,
		MaxDiscount:  c.MaxDiscount,
		CTRNoiseMean: c.CTRNoiseMean,
		CTRNoiseStd:  c.CTRNoiseStd,
		PID:          domain.PIDParams{Kp: c.Kp, Ki: c.Ki, Kd: c.Kd},
	}
}

// Option customises a SimulationUseCase.
type Option func(*SimulationUseCase)

// WithRecorder reports every run outcome to rec.
func WithRecorder(rec port.RunRecorder) Option {
	return func(u *SimulationUseCase) { u.recorder = rec }
}

// WithSeeder replaces the source of fresh seeds.
func WithSeeder(seeder func() uint64) Option {
	return func(u *SimulationUseCase) { u.seeder = seeder }
}

// SimulationUseCase assembles scenarios from the campaign repository and
// runs the pacing simulation. It implements port.SimulationUseCase. Every
// run gets its own random source, so concurrent calls are safe.
type SimulationUseCase struct {
	repo     port.CampaignRepository
	params   Params
	logger   *slog.Logger
	recorder port.RunRecorder
	seeder   func() uint64
}

// NewSimulationUseCase creates a new usecase with the provided repository.
func NewSimulationUseCase(repo port.CampaignRepository, params Params, logger *slog.Logger, opts ...Option) *SimulationUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	u := &SimulationUseCase{
		repo:   repo,
		params: params,
		logger: logger,
		seeder: rand.Uint64,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// RunSimulation validates the request, runs the full horizon and derives
// the report. Configuration problems return an error wrapping
// port.ErrInvalidConfig and no simulation is started.
func (u *SimulationUseCase) RunSimulation(ctx context.Context, req port.SimulationReq) (*port.SimulationResp, error) {
	resp, err := u.run(ctx, req)
	if err != nil && u.recorder != nil {
		u.recorder.ObserveFailure(req.ControllerType)
	}
	return resp, err
}

func (u *SimulationUseCase) run(ctx context.Context, req port.SimulationReq) (*port.SimulationResp, error) {
	strategy, err := domain.ParseStrategy(req.ControllerType)
	if err != nil {
		return nil, err
	}

	campaigns, err := u.scenario(ctx, req.Budgets)
	if err != nil {
		return nil, err
	}

	gains := u.params.PID
	if req.PID != nil {
		gains = *req.PID
	}

	seed := u.params.Seed
	if req.Seed != nil {
		seed = *req.Seed
	} else if seed == 0 {
		seed = u.seeder()
	}

	runID := uuid.NewString()
	logger := u.logger.With(slog.String("run_id", runID))

	cfg := simulation.Config{
		Campaigns:    campaigns,
		Strategy:     strategy,
		PID:          gains,
		Horizon:      u.params.Horizon,
		Impressions:  u.params.Impressions,
		MaxDiscount:  u.params.MaxDiscount,
		CTRNoiseMean: u.params.CTRNoiseMean,
		CTRNoiseStd:  u.params.CTRNoiseStd,
		Logger:       logger,
	}

	// the loop itself has no suspension points
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	res, err := simulation.Run(cfg, random.New(seed))
	if err != nil {
		return nil, err
	}

	rep := report.Build(res)
	if req.WithCurves {
		rep = report.WithCurves(rep, res)
	}
	if u.recorder != nil {
		u.recorder.ObserveRun(strategy, rep)
	}

	logger.Info("simulation finished",
		slog.String("controller_type", string(strategy)),
		slog.Uint64("seed", seed),
		slog.Float64("fill_rate", rep.FillRate),
		slog.Float64("pacing_error", rep.PacingError),
		slog.Float64("average_cpc", rep.AverageCostPerClick),
	)

	resp := &port.SimulationResp{
		RunID:    runID,
		Seed:     seed,
		Strategy: strategy,
		Horizon:  res.Horizon,
		Report:   rep,
	}
	if strategy == domain.StrategyPID {
		resp.PID = &gains
	}
	if req.WithTicks {
		resp.Ticks = res.Ticks
	}
	return resp, nil
}

// ListCampaigns returns the scenario catalog.
func (u *SimulationUseCase) ListCampaigns(ctx context.Context) ([]domain.CampaignSpec, error) {
	return u.repo.ListCampaigns(ctx)
}

// scenario loads the catalog and overrides default budgets positionally.
func (u *SimulationUseCase) scenario(ctx context.Context, budgets []float64) ([]domain.CampaignSpec, error) {
	campaigns, err := u.repo.ListCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("load scenario campaigns: %w", err)
	}
	campaigns = slices.Clone(campaigns)
	if len(budgets) > len(campaigns) {
		return nil, fmt.Errorf("%w: %d budgets for %d campaigns", port.ErrInvalidConfig, len(budgets), len(campaigns))
	}
	for i, b := range budgets {
		campaigns[i].Budget = b
	}
	return campaigns, nil
}
