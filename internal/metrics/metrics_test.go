// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"github.com/vk/resumedesc/internal/descriptor"
)

func scrape(t *testing.T) string {
	t.Helper()
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestRecordDescriptor(t *testing.T) {
	RecordDescriptor(&descriptor.Descriptor{
		Source:            "resume_editor.hcl",
		RenderingMode:     descriptor.RenderingUniversal,
		CompatibilityDate: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
	})

	require.Contains(t, scrape(t),
		`resumedesc_descriptor_info{compatibility_date="2025-01-15",rendering_mode="universal",source="resume_editor.hcl"} 1`)
}

func TestMiddleware(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/descriptor/*", func(w http.ResponseWriter, _ *http.Request) {
		RecordFieldLookup(OutcomeUnknown)
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/descriptor/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := scrape(t)
	require.Contains(t, body, `resumedesc_http_requests_total{method="GET",path="/descriptor/*",status="404"}`)
	require.Contains(t, body, `resumedesc_field_lookups_total{outcome="unknown"}`)
}
