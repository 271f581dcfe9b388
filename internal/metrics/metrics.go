// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package metrics holds the Prometheus metrics of the descriptor HTTP surface.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vk/resumedesc/internal/descriptor"
)

var (
	descriptorInfo = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "resumedesc_descriptor_info",
		Help: "Loaded descriptor, always 1; labels carry its identity",
	}, []string{"source", "rendering_mode", "compatibility_date"})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "resumedesc_http_requests_total",
		Help: "HTTP requests served by route and status",
	}, []string{"method", "path", "status"})

	fieldLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "resumedesc_field_lookups_total",
		Help: "Descriptor field lookups by outcome",
	}, []string{"outcome"}) // outcome=found|unknown
)

// Lookup outcomes.
const (
	OutcomeFound   = "found"
	OutcomeUnknown = "unknown"
)

// RecordDescriptor publishes the identity of the loaded descriptor.
func RecordDescriptor(d *descriptor.Descriptor) {
	descriptorInfo.Reset()
	descriptorInfo.WithLabelValues(
		d.Source,
		string(d.RenderingMode),
		d.CompatibilityDate.Format(descriptor.DateLayout),
	).Set(1)
}

// RecordFieldLookup counts one field lookup.
func RecordFieldLookup(outcome string) {
	fieldLookupsTotal.WithLabelValues(outcome).Inc()
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware counts every request by chi route pattern, method and status.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(sw, r)

		// Route patterns keep label cardinality bounded.
		path := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}
		httpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(sw.statusCode)).Inc()
	})
}

type statusWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.statusCode = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}
