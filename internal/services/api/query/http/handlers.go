// Package http provides http transport for query
package http

import (
	stdhttp "net/http"

	"bizquery/internal/modkit/httpkit"
	"bizquery/internal/services/api/query/domain"
	svc "bizquery/internal/services/api/query/service"

	"github.com/go-chi/chi/v5"
)

// Register mounts query endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON(r, "/process", h.process)
	httpkit.PostJSON(r, "/process-async", h.processAsync)
	httpkit.Get(r, "/business-terms", h.businessTerms)
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/demo/{scenario}", h.demo)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /query/process Query queryProcess
// @Summary Translate a business question into SQL
// @Description With execute=true the SQL runs in a read only transaction and the rows are returned
// @Tags Query
// @Accept json
// @Produce json
// @Param payload body domain.ProcessInput true "Question"
// @Success 200 {object} domain.QueryResult "ok"
// @Failure 503 {object} httpkit.Envelope "execution not configured"
// @Router /query/process [post]
func (h *handlers) process(r *stdhttp.Request, in domain.ProcessInput) (any, error) {
	return h.svc.Process(r.Context(), in)
}

// swagger:route POST /query/process-async Query queryProcessAsync
// @Summary Translate on the async worker pool
// @Tags Query
// @Accept json
// @Produce json
// @Param payload body domain.ProcessInput true "Question"
// @Success 200 {object} domain.QueryResult "ok"
// @Router /query/process-async [post]
func (h *handlers) processAsync(r *stdhttp.Request, in domain.ProcessInput) (any, error) {
	return h.svc.ProcessAsync(r.Context(), in)
}

// swagger:route GET /query/business-terms Query queryBusinessTerms
// @Summary Terminology, sample questions and supported entities
// @Tags Query
// @Produce json
// @Success 200 {object} domain.BusinessTerms "ok"
// @Router /query/business-terms [get]
func (h *handlers) businessTerms(r *stdhttp.Request) (any, error) {
	return h.svc.BusinessTerms(r.Context())
}

// swagger:route GET /query/health Query queryHealth
// @Summary Query processor health
// @Tags Query
// @Produce json
// @Success 200 {object} domain.Health "ok"
// @Router /query/health [get]
func (h *handlers) health(r *stdhttp.Request) (any, error) {
	return h.svc.Health(r.Context())
}

// swagger:route GET /query/demo/{scenario} Query queryDemo
// @Summary Translate a fixed demo question
// @Tags Query
// @Produce json
// @Param scenario path int true "Scenario 1 to 5"
// @Success 200 {object} domain.QueryResult "ok"
// @Failure 404 {object} httpkit.Envelope "unknown scenario"
// @Router /query/demo/{scenario} [get]
func (h *handlers) demo(r *stdhttp.Request) (any, error) {
	return h.svc.Demo(r.Context(), chi.URLParam(r, "scenario"))
}
