// Package server exposes the catalog and trace generation over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/export"
	"github.com/san-kum/algoviz/internal/graph"
	"github.com/san-kum/algoviz/internal/logging"
)

const maxBody = 1 << 20

type Server struct {
	registry *catalog.Registry
	logger   *log.Logger
	router   chi.Router
}

func New(reg *catalog.Registry, logger *log.Logger) *Server {
	s := &Server{registry: reg, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Get("/algorithms", s.handleAlgorithms)
	r.Get("/algorithms/{name}/pseudocode", s.handlePseudocode)
	r.Get("/algorithms/{name}/presets", s.handlePresets)
	r.Get("/graph/default", s.handleDefaultGraph)
	r.Post("/traces", s.handleTraces)

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdown)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ctx := logging.WithLogger(r.Context(), s.logger.With("request_id", middleware.GetReqID(r.Context())))
		next.ServeHTTP(ww, r.WithContext(ctx))
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path,
			"status", ww.Status(), "bytes", ww.BytesWritten(), "took", time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.registry.List())
}

func (s *Server) handlePseudocode(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	info, err := s.registry.Get(name)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"name": info.Name, "pseudocode": info.Pseudocode})
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if _, err := s.registry.Get(name); err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	presets := map[string]*config.Config{}
	for _, p := range config.ListPresets(name) {
		presets[p] = config.GetPreset(name, p)
	}
	writeJSON(w, http.StatusOK, presets)
}

func (s *Server) handleDefaultGraph(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, graph.Default())
}

// handleTraces generates a run from a config-shaped body. The query
// selects the output: format=json|csv|dot|svg, compress=true for zstd
// JSON, step=N for the DOT and SVG snapshot.
func (s *Server) handleTraces(w http.ResponseWriter, r *http.Request) {
	cfg := config.DefaultConfig()
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(cfg); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	opts, err := exportOptions(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	req, err := cfg.Request()
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	run, err := s.registry.Generate(r.Context(), req)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(r.Context(), &buf, run, opts); err != nil {
		logging.FromContext(r.Context()).Error("export failed", "id", run.ID, "err", err)
		writeError(w, statusFor(err), err)
		return
	}
	w.Header().Set("Content-Type", contentType(opts))
	w.Header().Set("X-Run-ID", run.ID)
	_, _ = w.Write(buf.Bytes())
}

func exportOptions(r *http.Request) (export.Options, error) {
	q := r.URL.Query()
	opts := export.Options{Format: export.FormatJSON, Step: -1}
	if f := q.Get("format"); f != "" {
		format, err := export.ParseFormat(f)
		if err != nil {
			return opts, err
		}
		opts.Format = format
	}
	if c := q.Get("compress"); c != "" {
		v, err := strconv.ParseBool(c)
		if err != nil {
			return opts, fmt.Errorf("compress: %w", err)
		}
		opts.Compress = v
	}
	if st := q.Get("step"); st != "" {
		v, err := strconv.Atoi(st)
		if err != nil {
			return opts, fmt.Errorf("step: %w", err)
		}
		opts.Step = v
	}
	return opts, nil
}

func contentType(opts export.Options) string {
	switch opts.Format {
	case export.FormatCSV:
		return "text/csv"
	case export.FormatDOT:
		return "text/vnd.graphviz"
	case export.FormatSVG:
		return "image/svg+xml"
	}
	if opts.Compress {
		return "application/zstd"
	}
	return "application/json"
}

var badRequest = []error{
	graph.ErrInvalidGraph,
	graph.ErrNodeNotFound,
	graph.ErrEdgeNotFound,
	graph.ErrNegativeWeight,
	catalog.ErrUnknownAlgorithm,
	catalog.ErrMissingInput,
	config.ErrInvalidConfig,
	export.ErrUnsupportedFormat,
	export.ErrNoGraph,
	export.ErrStepOutOfRange,
}

func statusFor(err error) int {
	for _, target := range badRequest {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
