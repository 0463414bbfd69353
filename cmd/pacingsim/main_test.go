package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rtb-pacing/internal/core/domain"
	"rtb-pacing/internal/core/port"
)

func TestParseBudgets(t *testing.T) {
	got, err := parseBudgets(" 5000, 1000 ,4000")
	require.NoError(t, err)
	assert.Equal(t, []float64{5000, 1000, 4000}, got)

	got, err = parseBudgets("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = parseBudgets("5000,lots")
	assert.Error(t, err)
}

func TestParseFlags(t *testing.T) {
	defaults := domain.PIDParams{Kp: 0.01, Ki: 0.08, Kd: 0.09}

	opts, err := parseFlags([]string{"-strategy", "Proportional", "-kp", "2", "-seed", "0"}, io.Discard, defaults)
	require.NoError(t, err)
	assert.Equal(t, "Proportional", opts.strategy)
	assert.Equal(t, domain.PIDParams{Kp: 2, Ki: 0.08, Kd: 0.09}, *opts.gains)
	require.NotNil(t, opts.seed, "an explicit zero seed is still a seed")
	assert.Zero(t, *opts.seed)

	opts, err = parseFlags(nil, io.Discard, defaults)
	require.NoError(t, err)
	assert.Equal(t, "PID", opts.strategy)
	assert.Nil(t, opts.seed)
	assert.Equal(t, defaults, *opts.gains)

	_, err = parseFlags([]string{"extra"}, io.Discard, defaults)
	assert.Error(t, err)

	_, err = parseFlags([]string{"-h"}, io.Discard, defaults)
	assert.True(t, errors.Is(err, flag.ErrHelp))
}

func TestRunJSON(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-json", "-seed", "42", "-budgets", "5000,1000,4000", "-strategy", "pid"}, &out, io.Discard)
	require.NoError(t, err)

	var resp port.SimulationResp
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, uint64(42), resp.Seed)
	assert.Equal(t, domain.StrategyPID, resp.Strategy)
	require.Len(t, resp.Report.Summary, 3)
	assert.Equal(t, 1000.0, resp.Report.Summary[1].Budget)
	assert.Empty(t, resp.Ticks)
}

func TestRunTable(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-seed", "1", "-strategy", "Performance"}, &out, io.Discard))
	assert.Contains(t, out.String(), "Time Series Analysis: Forecasting and Control")
	assert.Contains(t, out.String(), "Inventory fill rate")
}

func TestRunInvalid(t *testing.T) {
	err := run(context.Background(), []string{"-strategy", "Bandit"}, io.Discard, io.Discard)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	err = run(context.Background(), []string{"-budgets", "1,2,3,4"}, io.Discard, io.Discard)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}
