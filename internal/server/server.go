// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

// Package server serves the dashboard over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/davetashner/lakedash/internal/chart"
	"github.com/davetashner/lakedash/internal/chartimg"
	"github.com/davetashner/lakedash/internal/dataset"
	"github.com/davetashner/lakedash/internal/dispatch"
	"github.com/davetashner/lakedash/internal/page"
	"github.com/davetashner/lakedash/internal/session"
)

// shutdownTimeout bounds how long in-flight requests get after ctx is done.
const shutdownTimeout = 5 * time.Second

// Options configures a Server. Datasets and Charts are required.
type Options struct {
	Addr       string
	Layout     page.Layout
	Theme      page.Theme
	Datasets   *dataset.Table
	Charts     *chart.Registry
	Controls   []dispatch.Control
	SessionTTL time.Duration
	ImageWidth int
}

// Server is the dashboard HTTP server.
type Server struct {
	opts     Options
	sessions *session.Store
	images   *chartimg.Cache
	router   chi.Router
}

// New validates opts and builds the router. A control bound to a missing
// chart fails here, before anything listens.
func New(opts Options) (*Server, error) {
	if opts.Datasets == nil || opts.Charts == nil {
		return nil, errors.New("server: datasets and charts are required")
	}
	if opts.Layout == "" {
		opts.Layout = page.LayoutGrid
	}
	layout, err := page.ParseLayout(string(opts.Layout))
	if err != nil {
		return nil, err
	}
	opts.Layout = layout
	if opts.Controls == nil {
		opts.Controls = dispatch.DefaultControls()
	}

	factory := func() (*dispatch.Dispatcher, error) {
		return dispatch.New(opts.Controls, opts.Charts)
	}
	if _, err := factory(); err != nil {
		return nil, err
	}

	s := &Server{
		opts:     opts,
		sessions: session.NewStore(factory, opts.SessionTTL),
		images:   chartimg.NewCache(opts.ImageWidth),
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(accessLog)

	r.Get("/healthz", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(s.withSession)
		r.Get("/", s.handlePage(""))
		for _, l := range page.Layouts() {
			r.Get("/"+string(l), s.handlePage(l))
		}
		r.Post("/select", s.handleSelect)
		r.Get("/select/{control}", s.handleSelect)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/charts", s.handleCharts)
		r.Get("/charts/{name}", s.handleChart)
		r.Get("/datasets", s.handleDatasets)
		r.Get("/datasets/{name}", s.handleDataset)
		r.Get("/controls", s.handleControls)
		r.With(s.withSession).Get("/selection", s.handleSelection)
	})

	r.Get("/charts/{name}.{format}", s.handleImage)
	r.Get("/export/{format}", s.handleExport)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, fmt.Errorf("no route for %s %s", r.Method, r.URL.Path))
	})
	return r
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	addr := s.opts.Addr
	if addr == "" {
		addr = "127.0.0.1:8050"
	}
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully. The
// session janitor runs alongside the listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("dashboard listening", "url", "http://"+ln.Addr().String(), "layout", s.opts.Layout)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		slog.Info("dashboard stopped")
		return nil
	})
	g.Go(func() error {
		return s.sessions.RunJanitor(gctx, 0)
	})
	return g.Wait()
}
