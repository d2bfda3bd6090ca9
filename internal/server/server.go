// Package server implements the quadrat HTTP API.
//
// The server renders drawings on demand from query parameters. Rendering
// is deterministic, so responses are cached by the full parameter set.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quadrat-art/quadrat/internal/config"
	"github.com/quadrat-art/quadrat/pkg/cache"
	"github.com/quadrat-art/quadrat/pkg/errors"
	"github.com/quadrat-art/quadrat/pkg/quad"
	"github.com/quadrat-art/quadrat/pkg/render/canvas"
	"github.com/quadrat-art/quadrat/pkg/render/canvas/sink"
	"github.com/quadrat-art/quadrat/pkg/render/canvas/styles"
)

// defaultSeed keeps unseeded requests deterministic and cacheable.
const defaultSeed = 42

// cacheTTL bounds how long rendered artifacts stay in the cache.
const cacheTTL = 24 * time.Hour

// Server renders drawings over HTTP.
type Server struct {
	logger   *log.Logger
	cache    cache.Cache
	keyer    cache.Keyer
	defaults config.DrawingConfig
	metrics  *metrics
}

// New creates a server. A nil cache disables caching.
func New(logger *log.Logger, c cache.Cache, defaults config.DrawingConfig) *Server {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Server{
		logger:   logger,
		cache:    c,
		keyer:    cache.NewDefaultKeyer(),
		defaults: defaults,
		metrics:  newMetrics(),
	}
}

// Handler returns the chi router with all routes registered.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/drawing.svg", s.handleDrawingSVG)
	r.Get("/drawing.json", s.handleDrawingJSON)
	r.Get("/healthz", s.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	return r
}

// drawingParams are the query parameters accepted by the drawing endpoints.
type drawingParams struct {
	Seed       uint64
	Width      float64
	Height     float64
	Separation float64
	Quantity   int
	Style      string
}

// parseParams reads drawing parameters from the query string, falling back
// to the configured defaults for anything missing.
func (s *Server) parseParams(r *http.Request) (drawingParams, error) {
	q := r.URL.Query()
	p := drawingParams{
		Seed:       defaultSeed,
		Width:      s.defaults.Width,
		Height:     s.defaults.Height,
		Separation: s.defaults.Separation,
		Quantity:   s.defaults.Quantity,
		Style:      s.defaults.Style,
	}

	var err error
	if v := q.Get("seed"); v != "" {
		p.Seed, err = strconv.ParseUint(v, 10, 64)
		if err != nil {
			return p, errors.New(errors.ErrCodeInvalidSeed, "invalid seed: %q", v)
		}
	}
	if v := q.Get("width"); v != "" {
		p.Width, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return p, errors.New(errors.ErrCodeInvalidDimension, "invalid width: %q", v)
		}
	}
	if v := q.Get("height"); v != "" {
		p.Height, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return p, errors.New(errors.ErrCodeInvalidDimension, "invalid height: %q", v)
		}
	}
	if v := q.Get("separation"); v != "" {
		p.Separation, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return p, errors.New(errors.ErrCodeInvalidSetting, "invalid separation: %q", v)
		}
	}
	if v := q.Get("quantity"); v != "" {
		p.Quantity, err = strconv.Atoi(v)
		if err != nil {
			return p, errors.New(errors.ErrCodeInvalidSetting, "invalid quantity: %q", v)
		}
	}
	if v := q.Get("style"); v != "" {
		p.Style = v
	}

	if err := errors.ValidateViewport(p.Width, p.Height); err != nil {
		return p, err
	}
	if err := errors.ValidateSettings(p.Separation, p.Quantity); err != nil {
		return p, err
	}
	if err := errors.ValidateStyle(p.Style); err != nil {
		return p, err
	}
	return p, nil
}

// draw runs the subdivision to completion for the given parameters.
func draw(p drawingParams) canvas.Canvas {
	m := quad.New(p.Seed, quad.Viewport{Width: p.Width, Height: p.Height}, quad.Settings{
		Separation: p.Separation,
		Quantity:   p.Quantity,
	})
	// Hard cap in case a pathological parameter set never settles.
	limit := 100*p.Quantity + 1000
	for i := 0; !m.Done() && i < limit; i++ {
		m = m.Step()
	}
	return canvas.FromModel(m)
}

// style maps a validated style name to a renderer.
func style(name string, seed uint64) styles.Style {
	if name == "sketch" {
		return styles.NewSketch(seed)
	}
	return styles.Flat{}
}

func (s *Server) handleDrawingSVG(w http.ResponseWriter, r *http.Request) {
	p, err := s.parseParams(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	data, cached := s.rendered(r.Context(), p, "svg", func() ([]byte, error) {
		return sink.RenderSVG(draw(p), sink.WithStyle(style(p.Style, p.Seed))), nil
	})
	if data == nil {
		s.writeError(w, errors.New(errors.ErrCodeInternal, "render failed"))
		return
	}

	s.metrics.renders.WithLabelValues("svg").Inc()
	if cached {
		s.metrics.cacheHits.Inc()
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(data)
}

func (s *Server) handleDrawingJSON(w http.ResponseWriter, r *http.Request) {
	p, err := s.parseParams(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	data, cached := s.rendered(r.Context(), p, "json", func() ([]byte, error) {
		return sink.RenderJSON(draw(p))
	})
	if data == nil {
		s.writeError(w, errors.New(errors.ErrCodeInternal, "render failed"))
		return
	}

	s.metrics.renders.WithLabelValues("json").Inc()
	if cached {
		s.metrics.cacheHits.Inc()
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// rendered returns the cached artifact for the parameter set, rendering and
// storing it on a miss. The bool reports whether the response was a hit.
// Cache failures degrade to a fresh render rather than failing the request.
func (s *Server) rendered(ctx context.Context, p drawingParams, format string, render func() ([]byte, error)) ([]byte, bool) {
	key := s.keyer.DrawingKey(cache.DrawingKeyOpts{
		Seed:       p.Seed,
		Width:      p.Width,
		Height:     p.Height,
		Separation: p.Separation,
		Quantity:   p.Quantity,
		Format:     format,
		Style:      p.Style,
	})

	if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
		return data, true
	} else if err != nil {
		s.logger.Warnf("cache get failed: %v", err)
	}

	data, err := render()
	if err != nil {
		s.logger.Errorf("render failed: %v", err)
		return nil, false
	}

	if err := s.cache.Set(ctx, key, data, cacheTTL); err != nil {
		s.logger.Warnf("cache set failed: %v", err)
	}
	return data, false
}

// writeError maps a structured error to an HTTP response.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidDimension, errors.ErrCodeInvalidSetting,
		errors.ErrCodeInvalidSeed, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidStyle:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound:
		status = http.StatusNotFound
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}
