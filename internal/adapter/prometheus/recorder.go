// Package prometheus exports simulation outcomes as Prometheus metrics.
package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rtb-pacing/internal/core/domain"
	"rtb-pacing/internal/core/report"
)

// Recorder implements port.RunRecorder. All collectors are registered on
// the registry passed to NewRecorder.
type Recorder struct {
	gatherer prometheus.Gatherer

	runs        *prometheus.CounterVec
	failures    *prometheus.CounterVec
	fillRate    *prometheus.HistogramVec
	pacingError *prometheus.HistogramVec
	cpc         *prometheus.HistogramVec
	noBidTicks  *prometheus.CounterVec
	spend       *prometheus.CounterVec
}

// NewRecorder creates and registers the run metrics under namespace.
func NewRecorder(namespace string, reg *prometheus.Registry) *Recorder {
	strategyLabel := []string{"controller_type"}

	r := &Recorder{
		gatherer: reg,
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulations_total",
			Help:      "Completed simulation runs.",
		}, strategyLabel),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulation_failures_total",
			Help:      "Simulation runs rejected or aborted, by requested controller type.",
		}, strategyLabel),
		fillRate: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "inventory_fill_rate",
			Help:      "Share of ticks in which some campaign won the impression.",
			Buckets:   prometheus.LinearBuckets(0.1, 0.1, 10),
		}, strategyLabel),
		pacingError: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pacing_error",
			Help:      "Mean normalized deviation from the linear spend target.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
		}, strategyLabel),
		cpc: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "average_cost_per_click",
			Help:      "Average cost per click of a run.",
			Buckets:   prometheus.LinearBuckets(0.05, 0.05, 12),
		}, strategyLabel),
		noBidTicks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "no_bid_ticks_total",
			Help:      "Ticks without any bidder.",
		}, strategyLabel),
		spend: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "campaign_spend_total",
			Help:      "Settled spend per campaign.",
		}, []string{"controller_type", "campaign"}),
	}

	reg.MustRegister(r.runs, r.failures, r.fillRate, r.pacingError, r.cpc, r.noBidTicks, r.spend)
	return r
}

// ObserveRun records a finished run.
func (r *Recorder) ObserveRun(strategy domain.Strategy, rep report.Report) {
	s := string(strategy)
	r.runs.WithLabelValues(s).Inc()
	r.fillRate.WithLabelValues(s).Observe(rep.FillRate)
	r.pacingError.WithLabelValues(s).Observe(rep.PacingError)
	r.cpc.WithLabelValues(s).Observe(rep.AverageCostPerClick)
	r.noBidTicks.WithLabelValues(s).Add(float64(rep.NoBidTicks))
	for _, c := range rep.Summary {
		// counters must not decrease
		if c.SettledSpend > 0 {
			r.spend.WithLabelValues(s, c.Name).Add(c.SettledSpend)
		}
	}
}

// ObserveFailure counts a rejected run. The raw request value is used as
// label only when it names a known strategy.
func (r *Recorder) ObserveFailure(strategy string) {
	label := "unknown"
	if s, err := domain.ParseStrategy(strategy); err == nil {
		label = string(s)
	}
	r.failures.WithLabelValues(label).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{
		MaxRequestsInFlight: 5,
	})
}
