// Package report derives fill rate, cost-per-click and pacing metrics from
// a finished simulation log.
package report

import (
	"rtb-pacing/internal/core/domain"
	"rtb-pacing/internal/core/simulation"
)

// CampaignSummary aggregates the ticks a campaign won. TotalSpend and the
// CPC figures use click accounting (clicks * price paid); SettledSpend is
// the auction settlement spend tracked by the loop.
type CampaignSummary struct {
	Name         string  `json:"name"`
	Budget       float64 `json:"budget"`
	MeanPrice    float64 `json:"mean_price"`
	MeanPCTR     float64 `json:"mean_pctr"`
	TickCount    int     `json:"tick_count"`
	TotalClicks  float64 `json:"total_clicks"`
	TotalSpend   float64 `json:"total_spend"`
	MeanCPC      float64 `json:"mean_cpc"`
	CostPerClick float64 `json:"cost_per_click"`
	SettledSpend float64 `json:"settled_spend"`
	PacingError  float64 `json:"pacing_error"`
}

// CurvePoint is one minute of a spend curve.
type CurvePoint struct {
	Minute   int     `json:"minute"`
	Expected float64 `json:"expected"`
	Actual   float64 `json:"actual"`
}

// SpendCurve compares the linear pacing target with cumulative spend.
type SpendCurve struct {
	Name   string       `json:"name"`
	Points []CurvePoint `json:"points"`
}

// Report holds every derived figure of a run.
type Report struct {
	Summary             []CampaignSummary `json:"summary"`
	NoBidTicks          int               `json:"no_bid_ticks"`
	FillRate            float64           `json:"inventory_fill_rate"`
	PacingError         float64           `json:"pacing_error"`
	AverageCostPerClick float64           `json:"average_cost_per_click"`
	Curves              []SpendCurve      `json:"spend_curves,omitempty"`
}

// Clicks converts a realized pCTR into clicks for the tick's impressions.
func Clicks(pctr, impressions float64) float64 {
	return impressions * pctr
}

// ClickSpend is the click-accounting spend of a tick.
func ClickSpend(clicks, pricePaid float64) float64 {
	return clicks * pricePaid
}

type accum struct {
	price, pctr, clicks, spend float64
	cpc                        float64
	cpcTicks, ticks            int
}

// Build computes the report for res.
func Build(res *simulation.Result) Report {
	var (
		byName      = make(map[string]*accum, len(res.Campaigns))
		noBid       int
		totalClicks float64
		totalSpend  float64
	)
	for _, c := range res.Campaigns {
		byName[c.Name] = &accum{}
	}

	for _, t := range res.Ticks {
		if !t.Filled() {
			noBid++
			continue
		}
		a, ok := byName[t.Winner]
		if !ok {
			continue
		}
		clicks := Clicks(t.PCTR, res.Impressions)
		spend := ClickSpend(clicks, t.PricePaid)

		a.ticks++
		a.price += t.PricePaid
		a.pctr += t.PCTR
		a.clicks += clicks
		a.spend += spend
		if clicks > 0 {
			a.cpc += spend / clicks
			a.cpcTicks++
		}
		totalClicks += clicks
		totalSpend += spend
	}

	rep := Report{
		Summary:     make([]CampaignSummary, 0, len(res.Campaigns)),
		NoBidTicks:  noBid,
		FillRate:    FillRate(res.Ticks, res.Horizon),
		PacingError: GlobalPacingError(res.Campaigns),
	}
	if totalClicks > 0 {
		rep.AverageCostPerClick = totalSpend / totalClicks
	}

	for _, c := range res.Campaigns {
		a := byName[c.Name]
		s := CampaignSummary{
			Name:         c.Name,
			Budget:       c.Budget,
			TickCount:    a.ticks,
			TotalClicks:  a.clicks,
			TotalSpend:   a.spend,
			SettledSpend: c.Spend,
			PacingError:  mean(c.ErrorHistory),
		}
		if a.ticks > 0 {
			s.MeanPrice = a.price / float64(a.ticks)
			s.MeanPCTR = a.pctr / float64(a.ticks)
		}
		if a.cpcTicks > 0 {
			s.MeanCPC = a.cpc / float64(a.cpcTicks)
		}
		if a.clicks > 0 {
			s.CostPerClick = a.spend / a.clicks
		}
		rep.Summary = append(rep.Summary, s)
	}
	return rep
}

// WithCurves returns rep with spend curves attached.
func WithCurves(rep Report, res *simulation.Result) Report {
	rep.Curves = SpendCurves(res)
	return rep
}

// FillRate is 1 - noBidTicks/horizon.
func FillRate(ticks []domain.TickRecord, horizon int) float64 {
	if horizon <= 0 {
		return 0
	}
	var noBid int
	for _, t := range ticks {
		if !t.Filled() {
			noBid++
		}
	}
	return 1 - float64(noBid)/float64(horizon)
}

// GlobalPacingError is the mean over every campaign's full error history.
func GlobalPacingError(campaigns []domain.Campaign) float64 {
	var (
		sum float64
		n   int
	)
	for _, c := range campaigns {
		for _, e := range c.ErrorHistory {
			sum += e
		}
		n += len(c.ErrorHistory)
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// SpendCurves returns, for each campaign, the expected linear spend and
// the cumulative settlement spend at the end of every minute.
func SpendCurves(res *simulation.Result) []SpendCurve {
	idx := make(map[string]int, len(res.Campaigns))
	curves := make([]SpendCurve, len(res.Campaigns))
	for i, c := range res.Campaigns {
		idx[c.Name] = i
		curves[i] = SpendCurve{Name: c.Name, Points: make([]CurvePoint, 0, res.Horizon)}
	}

	cum := make([]float64, len(res.Campaigns))
	for minute := 0; minute < res.Horizon; minute++ {
		if minute < len(res.Ticks) {
			if i, ok := idx[res.Ticks[minute].Winner]; ok {
				cum[i] += res.Ticks[minute].Spend
			}
		}
		for i, c := range res.Campaigns {
			curves[i].Points = append(curves[i].Points, CurvePoint{
				Minute:   minute,
				Expected: c.ExpectedSpend(minute, res.Horizon),
				Actual:   cum[i],
			})
		}
	}
	return curves
}

// RecomputeSpend rebuilds settlement spend per campaign from the log in
// tick order.
func RecomputeSpend(ticks []domain.TickRecord) map[string]float64 {
	spend := make(map[string]float64)
	for _, t := range ticks {
		if t.Filled() {
			spend[t.Winner] += t.Spend
		}
	}
	return spend
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
