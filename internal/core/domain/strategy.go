package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig marks every failure caused by a bad simulation setup:
// empty campaign list, non-positive budgets, unknown strategies and so on.
var ErrInvalidConfig = errors.New("invalid simulation config")

// Strategy selects the pacing controller every campaign gets for a run.
type Strategy string

const (
	// StrategyPerformance bids until cumulative spend reaches the budget.
	StrategyPerformance Strategy = "Performance"
	// StrategyProportional bids with probability equal to the unspent budget share.
	StrategyProportional Strategy = "Proportional"
	// StrategyPID bids while a PID signal on the linear pacing curve is positive.
	StrategyPID Strategy = "PID"
)

// Strategies lists the supported strategies in display order.
var Strategies = []Strategy{StrategyPerformance, StrategyProportional, StrategyPID}

// ParseStrategy maps user input onto a Strategy. Matching is case
// insensitive and accepts a few aliases used by the dashboards.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "performance", "budget", "budget-only", "budgetonly":
		return StrategyPerformance, nil
	case "proportional", "proportional to budget":
		return StrategyProportional, nil
	case "pid", "pid controller":
		return StrategyPID, nil
	default:
		return "", fmt.Errorf("%w: unknown controller type %q", ErrInvalidConfig, s)
	}
}

// PIDParams holds the gains of a PID pacing controller.
type PIDParams struct {
	Kp float64 `json:"kp"`
	Ki float64 `json:"ki"`
	Kd float64 `json:"kd"`
}
