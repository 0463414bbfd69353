package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rtb-pacing/internal/core/domain"
	"rtb-pacing/internal/core/port"
	"rtb-pacing/internal/core/report"
)

func sampleResp() *port.SimulationResp {
	return &port.SimulationResp{
		RunID:    "3f1c",
		Seed:     42,
		Strategy: domain.StrategyPID,
		PID:      &domain.PIDParams{Kp: 0.01, Ki: 0.08, Kd: 0.09},
		Horizon:  2,
		Report: report.Report{
			Summary: []report.CampaignSummary{
				{Name: "Practical Statistics for Data Scientists", Budget: 3000, SettledSpend: 12.5, TickCount: 1, PacingError: 0.02},
				{Name: "Designing Data-Intensive Applications", Budget: 2000, PacingError: 0.9},
			},
			NoBidTicks:          1,
			FillRate:            0.5,
			PacingError:         0.46,
			AverageCostPerClick: 0.42,
		},
		Ticks: []domain.TickRecord{
			{Minute: 0, Winner: "Practical Statistics for Data Scientists", PricePaid: 0.41, PCTR: 0.03, Bidders: 2},
			{Minute: 1, Winner: domain.NoBid},
		},
	}
}

func TestRender(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Renderer{}.Render(&b, sampleResp()))
	out := b.String()

	assert.Contains(t, out, "PID pacing, 2 minutes")
	assert.Contains(t, out, "seed 42")
	assert.Contains(t, out, "kp=0.01 ki=0.08 kd=0.09")
	assert.Contains(t, out, "Practical Statistics for Data Scientists")
	assert.Contains(t, out, "Designing Data-Intensive Applications")
	assert.Contains(t, out, "3000.00")
	assert.Contains(t, out, "50.00%")
	assert.Contains(t, out, "0.4200")
	assert.NotContains(t, out, "Minute")
}

func TestRenderTicks(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Renderer{ShowTicks: true}.Render(&b, sampleResp()))
	out := b.String()

	assert.Contains(t, out, "Minute")
	assert.Contains(t, out, domain.NoBid)
	assert.Contains(t, out, "0.4100")
}

func TestRenderWithoutGains(t *testing.T) {
	resp := sampleResp()
	resp.Strategy = domain.StrategyPerformance
	resp.PID = nil

	var b strings.Builder
	require.NoError(t, Renderer{ShowTicks: true}.Render(&b, resp))
	assert.NotContains(t, b.String(), "kp=")
}
