// Command pacingsim runs one pacing simulation against the built-in
// scenario and prints the report.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"rtb-pacing/internal/adapter/console"
	"rtb-pacing/internal/adapter/memory"
	"rtb-pacing/internal/adapter/usecase"
	"rtb-pacing/internal/config"
	"rtb-pacing/internal/core/domain"
	"rtb-pacing/internal/core/port"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

type options struct {
	budgets  []float64
	strategy string
	gains    *domain.PIDParams
	seed     *uint64
	json     bool
	ticks    bool
	curves   bool
}

// parseFlags parses args. Gains default to gains so unset flags keep the
// configured value.
func parseFlags(args []string, stderr io.Writer, gains domain.PIDParams) (options, error) {
	fs := flag.NewFlagSet("pacingsim", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		opts    options
		budgets = fs.String("budgets", "", "comma-separated campaign budgets, matched to the scenario campaigns in order")
		kp      = fs.Float64("kp", gains.Kp, "PID proportional gain")
		ki      = fs.Float64("ki", gains.Ki, "PID integral gain")
		kd      = fs.Float64("kd", gains.Kd, "PID derivative gain")
		seed    = fs.Uint64("seed", 0, "random seed (0 draws a fresh one unless SIM_SEED is set)")
	)
	fs.StringVar(&opts.strategy, "strategy", string(domain.StrategyPID), "controller type: Performance, Proportional or PID")
	fs.BoolVar(&opts.json, "json", false, "print the response as JSON")
	fs.BoolVar(&opts.ticks, "ticks", false, "include the per-minute auction log")
	fs.BoolVar(&opts.curves, "curves", false, "include spend curves (JSON output only)")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	b, err := parseBudgets(*budgets)
	if err != nil {
		return opts, err
	}
	opts.budgets = b
	opts.gains = &domain.PIDParams{Kp: *kp, Ki: *ki, Kd: *kd}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.seed = seed
		}
	})
	return opts, nil
}

// parseBudgets accepts "5000,3000,2000". Empty input keeps the defaults.
func parseBudgets(raw string) ([]float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid budget %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	params := usecase.ParamsFromConfig(cfg.Sim)

	opts, err := parseFlags(args, stderr, params.PID)
	if err != nil {
		return err
	}

	logger := cfg.Log.NewLogger(stderr).With(slog.String("env", cfg.Env))
	svc := usecase.NewSimulationUseCase(memory.NewCampaignRepository(), params, logger)
	resp, err := svc.RunSimulation(ctx, port.SimulationReq{
		Budgets:        opts.budgets,
		ControllerType: opts.strategy,
		PID:            opts.gains,
		Seed:           opts.seed,
		WithTicks:      opts.ticks,
		WithCurves:     opts.curves,
	})
	if err != nil {
		return err
	}

	if opts.json {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}
	return console.Renderer{ShowTicks: opts.ticks}.Render(stdout, resp)
}
