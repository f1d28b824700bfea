// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

// Package metrics defines the site's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lexfrei/studio-site/internal/contact"
	"github.com/lexfrei/studio-site/internal/i18n"
	"github.com/lexfrei/studio-site/internal/navigation"
)

const namespace = "studio"

// Submission outcomes beyond the failure kinds.
const (
	OutcomeAccepted  = "accepted"
	OutcomeSucceeded = "succeeded"
)

// Metrics holds the collectors.
type Metrics struct {
	registry *prometheus.Registry

	pageViews        *prometheus.CounterVec
	validationErrors *prometheus.CounterVec
	submissions      *prometheus.CounterVec
}

// New registers the collectors on a fresh registry. sessions is sampled
// for the active sessions gauge; it may be nil.
func New(sessions func() int) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	m := &Metrics{
		registry: registry,
		pageViews: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_views_total",
			Help:      "Rendered page views by view and language.",
		}, []string{"view", "lang"}),
		validationErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_validation_errors_total",
			Help:      "Contact form validation errors by field.",
		}, []string{"field"}),
		submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_submissions_total",
			Help:      "Contact form submissions by outcome.",
		}, []string{"outcome"}),
	}

	if sessions != nil {
		factory.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Visitor sessions held in memory.",
		}, func() float64 {
			return float64(sessions())
		})
	}

	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// PageView counts a rendered view.
func (m *Metrics) PageView(view navigation.View, lang i18n.Lang) {
	m.pageViews.WithLabelValues(string(view), string(lang)).Inc()
}

// NavigationHook counts every navigation as a page view.
func (m *Metrics) NavigationHook() navigation.Hook {
	return func(state navigation.State) {
		m.PageView(state.View(), state.Language)
	}
}

// ValidationErrors counts the failing fields of a form.
func (m *Metrics) ValidationErrors(errs contact.Errors) {
	for field := range errs {
		m.validationErrors.WithLabelValues(string(field)).Inc()
	}
}

// Submission counts a form transition. Only submission starts and their
// results are counted.
func (m *Metrics) Submission(tr contact.Transition) {
	switch tr.Phase {
	case contact.PhaseSubmitting:
		m.submissions.WithLabelValues(OutcomeAccepted).Inc()
	case contact.PhaseSubmitted:
		m.submissions.WithLabelValues(OutcomeSucceeded).Inc()
	case contact.PhaseFailed:
		m.submissions.WithLabelValues(string(tr.Failure)).Inc()
	case contact.PhaseEditing:
	}
}
