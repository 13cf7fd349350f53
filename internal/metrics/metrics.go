// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics defines the Prometheus metrics collected by the portal
// client. The client has no scrape endpoint; metrics live in a private
// registry and are written to a node_exporter textfile on shutdown.
//
// A nil *ClientMetrics is valid and records nothing.
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal_client"

// ClientMetrics owns a private registry and the client's collectors.
type ClientMetrics struct {
	registry *prometheus.Registry

	// LoginOutcomesTotal counts login submissions by outcome.
	// Label:
	//   - outcome: "success", "totp_required", "rejected" or "error"
	LoginOutcomesTotal *prometheus.CounterVec

	// CredentialInvalidationsTotal counts credentials dropped after a 401.
	CredentialInvalidationsTotal prometheus.Counter

	// APIRequestsTotal counts API responses.
	// Label:
	//   - status_class: "2xx", "4xx", "5xx", ...
	APIRequestsTotal *prometheus.CounterVec

	// APIRequestDuration measures round-trip time of API calls.
	APIRequestDuration *prometheus.HistogramVec
}

// New registers every collector on a fresh registry.
func New() *ClientMetrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &ClientMetrics{
		registry: reg,
		LoginOutcomesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "login_outcomes_total",
				Help:      "Total number of login submissions, by outcome.",
			},
			[]string{"outcome"},
		),
		CredentialInvalidationsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "credential_invalidations_total",
				Help:      "Total number of stored credentials cleared after an HTTP 401.",
			},
		),
		APIRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_requests_total",
				Help:      "Total number of API responses, by status class.",
			},
			[]string{"status_class"},
		),
		APIRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "api_request_duration_seconds",
				Help:      "Round-trip duration of API requests.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"status_class"},
		),
	}
}

// ObserveLogin records one login outcome.
func (m *ClientMetrics) ObserveLogin(outcome string) {
	if m == nil {
		return
	}
	m.LoginOutcomesTotal.WithLabelValues(outcome).Inc()
}

// ObserveInvalidation records one cleared credential.
func (m *ClientMetrics) ObserveInvalidation() {
	if m == nil {
		return
	}
	m.CredentialInvalidationsTotal.Inc()
}

// ObserveResponse records an API response with its status code and latency.
func (m *ClientMetrics) ObserveResponse(statusCode int, took time.Duration) {
	if m == nil {
		return
	}
	class := StatusClass(statusCode)
	m.APIRequestsTotal.WithLabelValues(class).Inc()
	m.APIRequestDuration.WithLabelValues(class).Observe(took.Seconds())
}

// Registry exposes the private registry for gathering.
func (m *ClientMetrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// WriteTextfile writes the current values in the Prometheus text format.
// An empty path is a no-op.
func (m *ClientMetrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

// StatusClass buckets an HTTP status code as "1xx".."5xx"; anything outside
// that range is "other".
func StatusClass(code int) string {
	if code < 100 || code > 599 {
		return "other"
	}
	return strconv.Itoa(code/100) + "xx"
}
