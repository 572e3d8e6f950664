// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"bizquery/internal/core/version"
	"bizquery/internal/modkit/httpkit"
	"bizquery/internal/modkit/module"
	perr "bizquery/internal/platform/errors"
	querydom "bizquery/internal/services/api/query/domain"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	PG          any
	Lexicon     querydom.LexiconPort

	// Now defaults to time.Now
	Now func() time.Time

	// Modules lists mounted modules; defaults to the port registry
	Modules func() []string
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Modules == nil {
		d.Modules = module.Names
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/lexicon", h.lexicon)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"bizquery-api"`
	Started string `json:"started"  example:"2026-10-16T09:00:00Z"`
	Now     string `json:"now"      example:"2026-10-16T09:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"pg"`
	Status string `json:"status" example:"ok"` // ok fail skipped unknown
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432 connect: connection refused"`
}

// ReadyResponse summarizes readiness. Translation never depends on pg, so a skipped pg
// check still reports ok; a missing lexicon does not
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-16T09:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string   `json:"name"    example:"bizquery-api"`
	Started string   `json:"started" example:"2026-10-16T09:00:00Z"`
	Uptime  int64    `json:"uptime"  example:"300"`
	Modules []string `json:"modules"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.stamp(),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	checks := []ReadyCheck{h.checkLexicon(ctx), h.checkPG(ctx)}
	overall := "ok"
	for _, c := range checks {
		if c.Status == "fail" {
			overall = "fail"
		}
	}
	return ReadyResponse{Status: overall, Checks: checks, Now: h.stamp()}, nil
}

func (h *handlers) checkLexicon(ctx stdctx.Context) ReadyCheck {
	c := ReadyCheck{Name: "lexicon", Status: "ok"}
	if h.deps.Lexicon == nil {
		c.Status, c.Error = "fail", "lexicon port not wired"
		return c
	}
	if sum := h.deps.Lexicon.Summary(ctx); sum.Terms == 0 || sum.AsyncWorkers == 0 {
		c.Status, c.Error = "fail", "lexicon empty or no translation workers"
	}
	return c
}

func (h *handlers) checkPG(ctx stdctx.Context) ReadyCheck {
	c := ReadyCheck{Name: "pg", Status: "skipped"}
	switch p := h.deps.PG.(type) {
	case nil:
	case Pinger:
		c.Status = "ok"
		if err := p.Ping(ctx); err != nil {
			c.Status, c.Error = "fail", err.Error()
		}
	default:
		c.Status = "unknown"
	}
	return c
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info, uptime and mounted modules
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := h.deps.Now().Sub(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
		Modules: h.deps.Modules(),
	}, nil
}

// swagger:route GET /meta/lexicon Meta metaLexicon
// @Summary Loaded vocabulary summary
// @Tags Meta
// @Produce json
// @Success 200 {object} querydom.LexiconSummary "ok"
// @Failure 503 {object} httpkit.Envelope "no lexicon wired"
// @Router /meta/lexicon [get]
func (h *handlers) lexicon(r *http.Request) (any, error) {
	if h.deps.Lexicon == nil {
		return nil, perr.Unavailablef("lexicon port not wired")
	}
	return h.deps.Lexicon.Summary(r.Context()), nil
}

func (h *handlers) stamp() string { return h.deps.Now().UTC().Format(time.RFC3339) }
