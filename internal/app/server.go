// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vk/resumedesc/internal/ctxlog"
	"github.com/vk/resumedesc/internal/descriptor"
	"github.com/vk/resumedesc/internal/head"
	"github.com/vk/resumedesc/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout bounds graceful shutdown of the HTTP surface.
const shutdownTimeout = 5 * time.Second

// Router builds the HTTP surface over the loaded descriptor.
func (a *App) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	r.Get("/health", a.healthHandler)
	r.Get("/runtime-config", a.runtimeConfigHandler)
	r.Get("/descriptor", a.descriptorHandler)
	r.Get("/descriptor/*", a.descriptorHandler)
	r.Get("/head", a.headHandler)
	r.Handle("/metrics", metrics.Handler())

	return r
}

// serve runs the HTTP surface on ln until ctx is cancelled, then shuts it
// down gracefully.
func (a *App) serve(ctx context.Context, ln net.Listener) error {
	logger := ctxlog.FromContext(ctx)
	metrics.RecordDescriptor(a.descriptor)

	srv := &http.Server{
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Descriptor server starting.", "address", fmt.Sprintf("http://%s", ln.Addr()))
		// Serve returns ErrServerClosed on graceful shutdown.
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("descriptor server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down descriptor server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Descriptor server shutdown failed", "error", err)
			return err
		}
		logger.Debug("Descriptor server shut down gracefully.")
		return nil
	})

	return g.Wait()
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

func (a *App) runtimeConfigHandler(w http.ResponseWriter, _ *http.Request) {
	a.writeValue(w, "runtimeConfig.public")
}

// descriptorHandler serves one field, addressed by the rest of the URL with
// slashes standing for dots, or the whole descriptor.
func (a *App) descriptorHandler(w http.ResponseWriter, r *http.Request) {
	path := fieldPathFromURL(chi.URLParam(r, "*"))
	if path == "" {
		out, err := a.descriptor.JSON()
		if err != nil {
			a.writeError(w, http.StatusInternalServerError, "INTERNAL", err)
			return
		}
		writeJSON(w, out)
		return
	}
	a.writeValue(w, path)
}

func (a *App) headHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := head.RenderDocumentStart(w, a.descriptor.Head); err != nil {
		a.logger.Error("Rendering head failed", "error", err)
	}
}

func (a *App) writeValue(w http.ResponseWriter, path string) {
	v, err := a.descriptor.Value(path)
	if err != nil {
		metrics.RecordFieldLookup(metrics.OutcomeUnknown)
		var unknown *descriptor.UnknownFieldError
		if errors.As(err, &unknown) {
			a.writeError(w, http.StatusNotFound, unknown.Code(), err)
			return
		}
		a.writeError(w, http.StatusInternalServerError, "INTERNAL", err)
		return
	}
	metrics.RecordFieldLookup(metrics.OutcomeFound)

	out, err := descriptor.MarshalValue(v)
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, "INTERNAL", err)
		return
	}
	writeJSON(w, out)
}

type errorBody struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func (a *App) writeError(w http.ResponseWriter, status int, code string, err error) {
	a.logger.Debug("Request failed.", "status", status, "code", code, "error", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Code: code, Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(append(body, '\n'))
}

// fieldPathFromURL turns "documentHead/metaTags/0" into "documentHead.metaTags[0]".
func fieldPathFromURL(rest string) string {
	var b strings.Builder
	for _, seg := range strings.FieldsFunc(rest, func(r rune) bool { return r == '/' }) {
		if _, err := strconv.Atoi(seg); err == nil {
			fmt.Fprintf(&b, "[%s]", seg)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}
