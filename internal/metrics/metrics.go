// Package metrics exposes Prometheus counters fed by the wizard lifecycle hooks.
package metrics

import (
	"context"
	"net/http"
	"strconv"

	"github.com/aretw0/tradein/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns a registry with the trade-in metrics.
type Collector struct {
	registry *prometheus.Registry

	opened    *prometheus.CounterVec
	selected  *prometheus.CounterVec
	resolved  *prometheus.CounterVec
	steps     *prometheus.CounterVec
	answers   *prometheus.CounterVec
	cancelled prometheus.Counter
	committed *prometheus.CounterVec
	removed   prometheus.Counter
	offers    prometheus.Histogram
}

// New creates a collector with its own registry, including the Go runtime
// and process collectors.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		opened: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tradein_sessions_opened_total",
			Help: "Total number of valuation wizards opened",
		}, []string{"platform"}),
		selected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tradein_console_selections_total",
			Help: "Total number of console selections",
		}, []string{"platform"}),
		resolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tradein_catalog_resolutions_total",
			Help: "Question catalogs resolved, by origin",
		}, []string{"source"}),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tradein_steps_entered_total",
			Help: "Wizard steps entered",
		}, []string{"step"}),
		answers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tradein_answers_total",
			Help: "Answers recorded, by question",
		}, []string{"question_id"}),
		cancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tradein_valuations_cancelled_total",
			Help: "Valuations discarded without publishing",
		}),
		committed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tradein_valuations_committed_total",
			Help: "Trade-ins added",
		}, []string{"platform"}),
		removed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tradein_tradeins_removed_total",
			Help: "Published trade-ins removed",
		}),
		offers: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tradein_offer_value",
			Help:    "Committed trade-in values in currency units",
			Buckets: []float64{50, 100, 150, 200, 250, 300, 400, 500},
		}),
	}
	c.registry.MustRegister(
		c.opened, c.selected, c.resolved, c.steps, c.answers,
		c.cancelled, c.committed, c.removed, c.offers,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return c
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Hooks returns lifecycle hooks that record every wizard event.
func (c *Collector) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSessionOpen: func(ctx context.Context, e *domain.Event) {
			c.opened.WithLabelValues(e.Platform.String()).Inc()
		},
		OnConsoleSelect: func(ctx context.Context, e *domain.Event) {
			c.selected.WithLabelValues(e.Platform.String()).Inc()
		},
		OnCatalogResolve: func(ctx context.Context, e *domain.Event) {
			c.resolved.WithLabelValues(e.Source).Inc()
		},
		OnStepEnter: func(ctx context.Context, e *domain.Event) {
			c.steps.WithLabelValues(strconv.Itoa(e.Step)).Inc()
		},
		OnAnswer: func(ctx context.Context, e *domain.Event) {
			c.answers.WithLabelValues(e.QuestionID).Inc()
		},
		OnCancel: func(ctx context.Context, e *domain.Event) {
			c.cancelled.Inc()
		},
		OnCommit: func(ctx context.Context, e *domain.Event) {
			c.committed.WithLabelValues(e.Platform.String()).Inc()
			c.offers.Observe(e.Amount.Float())
		},
		OnRemove: func(ctx context.Context, e *domain.Event) {
			c.removed.Inc()
		},
	}
}
