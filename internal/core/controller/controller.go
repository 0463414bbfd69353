// Package controller implements the pacing controllers that decide, once per
// simulated minute, whether a campaign enters the auction.
package controller

import (
	"fmt"

	"rtb-pacing/internal/core/domain"
	"rtb-pacing/internal/core/random"
)

// TargetMode tells the simulation loop which spend target a controller is
// fed with.
type TargetMode int

const (
	// TargetBudget feeds the total campaign budget as a constant target.
	TargetBudget TargetMode = iota
	// TargetLinear feeds the time-scaled target budget * minute / horizon.
	TargetLinear
)

// Controller decides bid participation from a spend target, the actual
// spend and the elapsed time since the previous call. dt must not be zero
// for controllers that differentiate; see PID.
type Controller interface {
	Decide(target, actual, dt float64) bool
	TargetMode() TargetMode
}

// New builds the controller selected for a run. Every campaign gets its own
// instance; stochastic controllers draw from src.
func New(strategy domain.Strategy, gains domain.PIDParams, src random.Source) (Controller, error) {
	switch strategy {
	case domain.StrategyPerformance:
		return BudgetOnly{}, nil
	case domain.StrategyProportional:
		if src == nil {
			return nil, fmt.Errorf("%w: proportional controller needs a random source", domain.ErrInvalidConfig)
		}
		return NewProportional(src), nil
	case domain.StrategyPID:
		return NewPID(gains), nil
	default:
		return nil, fmt.Errorf("%w: unknown controller type %q", domain.ErrInvalidConfig, strategy)
	}
}

// BudgetOnly keeps bidding until spend reaches the target. With the total
// budget as target it front-loads spend; that is the point of comparison.
type BudgetOnly struct{}

func (BudgetOnly) Decide(target, actual, _ float64) bool {
	return actual < target
}

func (BudgetOnly) TargetMode() TargetMode { return TargetBudget }

// Proportional bids with probability equal to the unspent share of target.
type Proportional struct {
	src random.Source
}

// NewProportional returns a proportional controller drawing from src.
func NewProportional(src random.Source) *Proportional {
	return &Proportional{src: src}
}

func (p *Proportional) Decide(target, actual, _ float64) bool {
	if target <= 0 {
		return false
	}
	prob := (target - actual) / target
	return random.Bernoulli(p.src, min(max(prob, 0), 1))
}

func (*Proportional) TargetMode() TargetMode { return TargetBudget }
