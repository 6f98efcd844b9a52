// Package server exposes code39 rendering over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ericlevine/code39"
	"github.com/ericlevine/code39/internal/config"
	"github.com/ericlevine/code39/internal/pipeline"
)

const shutdownTimeout = 5 * time.Second

// Error codes returned in JSON error bodies.
const (
	CodeInvalidInput         = "INVALID_INPUT"
	CodeUnsupportedCharacter = "UNSUPPORTED_CHARACTER"
	CodeInvalidDimension     = "INVALID_DIMENSION"
	CodeInternal             = "INTERNAL_ERROR"
)

// Server renders barcodes for HTTP clients.
type Server struct {
	cfg    config.Config
	logger *log.Logger
	router chi.Router
}

// New creates a server whose request defaults come from cfg.
func New(cfg config.Config, logger *log.Logger) *Server {
	s := &Server{cfg: cfg, logger: logger}
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Route("/v1/code39", func(r chi.Router) {
		r.Get("/{text}", s.handleGet)
		r.Post("/", s.handlePost)
	})
	s.router = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on the configured address until ctx is canceled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("serve %s: %w", s.cfg.Addr, err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	text := chi.URLParam(r, "text")
	// chi routes on the escaped path when one exists, e.g. for "%2F".
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(text)
		if err != nil {
			s.writeError(w, r, http.StatusBadRequest, CodeInvalidInput, err)
			return
		}
		text = unescaped
	}

	opts := pipeline.FromConfig(s.cfg, text)
	if err := applyQuery(&opts, r.URL.Query()); err != nil {
		s.writeError(w, r, http.StatusBadRequest, CodeInvalidInput, err)
		return
	}
	s.render(w, r, opts)
}

// renderRequest is the POST body. Omitted fields keep the configured defaults.
type renderRequest struct {
	Text       string   `json:"text"`
	Format     *string  `json:"format"`
	Unit       *float64 `json:"unit"`
	Height     *float64 `json:"height"`
	Scale      *int     `json:"scale"`
	Strict     *bool    `json:"strict"`
	Caption    *bool    `json:"caption"`
	BarColor   *string  `json:"bar_color"`
	Background *string  `json:"background"`
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, CodeInvalidInput, fmt.Errorf("decode body: %w", err))
		return
	}

	opts := pipeline.FromConfig(s.cfg, req.Text)
	if req.Format != nil {
		opts.Format = *req.Format
	}
	if req.Unit != nil {
		opts.Unit = *req.Unit
	}
	if req.Height != nil {
		opts.Height = *req.Height
	}
	if req.Scale != nil {
		opts.Scale = *req.Scale
	}
	if req.Strict != nil {
		opts.Strict = *req.Strict
	}
	if req.Caption != nil {
		opts.Caption = *req.Caption
	}
	if req.BarColor != nil {
		opts.BarColor = *req.BarColor
	}
	if req.Background != nil {
		opts.Background = *req.Background
	}
	s.render(w, r, opts)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, opts pipeline.Options) {
	a, err := pipeline.Run(opts)
	if err != nil {
		status, code := classify(err)
		s.writeError(w, r, status, code, err)
		return
	}
	log.FromContext(r.Context()).Debug("rendered", "format", opts.Format, "modules", a.Modules, "width", a.Plan.Width)
	w.Header().Set("Content-Type", a.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(a.Data)))
	_, _ = w.Write(a.Data)
}

func applyQuery(opts *pipeline.Options, q url.Values) error {
	strs := []struct {
		key string
		dst *string
	}{{"format", &opts.Format}, {"bar_color", &opts.BarColor}, {"background", &opts.Background}}
	for _, f := range strs {
		if v := q.Get(f.key); v != "" {
			*f.dst = v
		}
	}
	floats := []struct {
		key string
		dst *float64
	}{{"unit", &opts.Unit}, {"height", &opts.Height}, {"quiet", &opts.QuietZone}}
	for _, f := range floats {
		if v := q.Get(f.key); v != "" {
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s: %w", f.key, err)
			}
			*f.dst = n
		}
	}
	if v := q.Get("scale"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("scale: %w", err)
		}
		opts.Scale = n
	}
	bools := []struct {
		key string
		dst *bool
	}{{"strict", &opts.Strict}, {"caption", &opts.Caption}}
	for _, b := range bools {
		if v := q.Get(b.key); v != "" {
			on, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s: %w", b.key, err)
			}
			*b.dst = on
		}
	}
	return nil
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, code39.ErrUnsupportedCharacter):
		return http.StatusBadRequest, CodeUnsupportedCharacter
	case errors.Is(err, code39.ErrInvalidDimension):
		return http.StatusBadRequest, CodeInvalidDimension
	case errors.Is(err, config.ErrInvalid):
		return http.StatusBadRequest, CodeInvalidInput
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, code string, err error) {
	l := log.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		l.Error("request failed", "err", err)
	} else {
		l.Debug("rejected request", "code", code, "err", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Code: code, Message: err.Error()})
}
