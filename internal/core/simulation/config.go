package simulation

import (
	"fmt"
	"log/slog"
	"math"

	"rtb-pacing/internal/core/auction"
	"rtb-pacing/internal/core/domain"
)

const (
	// DefaultHorizon is one day of one-minute ticks.
	DefaultHorizon = 1440
	// DefaultImpressions is the impression volume sold per tick.
	DefaultImpressions = 1000
	// DefaultCTRNoiseMean and DefaultCTRNoiseStd parametrize the additive
	// noise on the nominal pCTR of the winner.
	DefaultCTRNoiseMean = -0.001
	DefaultCTRNoiseStd  = 0.01
)

// DefaultPID are the gains used when a PID run gives none.
var DefaultPID = domain.PIDParams{Kp: 0.01, Ki: 0.08, Kd: 0.09}

// Config fully describes one simulation run.
type Config struct {
	Campaigns []domain.CampaignSpec
	Strategy  domain.Strategy
	PID       domain.PIDParams

	Horizon      int
	Impressions  float64
	MaxDiscount  float64
	CTRNoiseMean float64
	CTRNoiseStd  float64

	// Logger receives one debug record per tick. Nil discards.
	Logger *slog.Logger
}

// DefaultConfig returns the standard one-day scenario parameters for the
// given campaigns and strategy.
func DefaultConfig(campaigns []domain.CampaignSpec, strategy domain.Strategy) Config {
	return Config{
		Campaigns:    campaigns,
		Strategy:     strategy,
		PID:          DefaultPID,
		Horizon:      DefaultHorizon,
		Impressions:  DefaultImpressions,
		MaxDiscount:  auction.DefaultMaxDiscount,
		CTRNoiseMean: DefaultCTRNoiseMean,
		CTRNoiseStd:  DefaultCTRNoiseStd,
	}
}

// Validate reports the first problem that would make the run meaningless.
// All errors wrap domain.ErrInvalidConfig.
func (c Config) Validate() error {
	if len(c.Campaigns) == 0 {
		return fmt.Errorf("%w: no campaigns", domain.ErrInvalidConfig)
	}
	seen := make(map[string]struct{}, len(c.Campaigns))
	for i, spec := range c.Campaigns {
		if spec.Name == "" || spec.Name == domain.NoBid {
			return fmt.Errorf("%w: campaign %d has invalid name %q", domain.ErrInvalidConfig, i, spec.Name)
		}
		if _, ok := seen[spec.Name]; ok {
			return fmt.Errorf("%w: duplicate campaign %q", domain.ErrInvalidConfig, spec.Name)
		}
		seen[spec.Name] = struct{}{}
		if !(spec.Budget > 0) || math.IsInf(spec.Budget, 0) {
			return fmt.Errorf("%w: campaign %q budget must be positive, got %v", domain.ErrInvalidConfig, spec.Name, spec.Budget)
		}
		if !(spec.PCTR >= 0 && spec.PCTR <= 1) {
			return fmt.Errorf("%w: campaign %q pCTR must be in [0,1], got %v", domain.ErrInvalidConfig, spec.Name, spec.PCTR)
		}
		if !(spec.BaseBid > 0) || math.IsInf(spec.BaseBid, 0) {
			return fmt.Errorf("%w: campaign %q base bid must be positive, got %v", domain.ErrInvalidConfig, spec.Name, spec.BaseBid)
		}
	}
	switch c.Strategy {
	case domain.StrategyPerformance, domain.StrategyProportional, domain.StrategyPID:
	default:
		return fmt.Errorf("%w: unknown controller type %q", domain.ErrInvalidConfig, c.Strategy)
	}
	if c.Horizon <= 0 {
		return fmt.Errorf("%w: horizon must be positive, got %d", domain.ErrInvalidConfig, c.Horizon)
	}
	if !(c.Impressions > 0) {
		return fmt.Errorf("%w: impressions per tick must be positive, got %v", domain.ErrInvalidConfig, c.Impressions)
	}
	if !(c.MaxDiscount >= 0) {
		return fmt.Errorf("%w: max discount must not be negative, got %v", domain.ErrInvalidConfig, c.MaxDiscount)
	}
	if !(c.CTRNoiseStd >= 0) {
		return fmt.Errorf("%w: pCTR noise std must not be negative, got %v", domain.ErrInvalidConfig, c.CTRNoiseStd)
	}
	return nil
}
