package module

import (
	"context"

	"bizquery/internal/services/api/query/domain"
	querysvc "bizquery/internal/services/api/query/service"
)

// Ports is the query module port bundle
type Ports struct {
	Service domain.ServicePort
	Lexicon domain.LexiconPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptQueryPort struct{ svc querysvc.Service }

// Process translates a question and optionally executes it
func (a adaptQueryPort) Process(ctx context.Context, in domain.ProcessInput) (domain.QueryResult, error) {
	return a.svc.Process(ctx, in)
}

// ProcessAsync translates a question on the worker pool
func (a adaptQueryPort) ProcessAsync(ctx context.Context, in domain.ProcessInput) (domain.QueryResult, error) {
	return a.svc.ProcessAsync(ctx, in)
}

// BusinessTerms lists the vocabulary
func (a adaptQueryPort) BusinessTerms(ctx context.Context) (domain.BusinessTerms, error) {
	return a.svc.BusinessTerms(ctx)
}

// Health reports the query processor status
func (a adaptQueryPort) Health(ctx context.Context) (domain.Health, error) { return a.svc.Health(ctx) }

// Demo translates a fixed demo question
func (a adaptQueryPort) Demo(ctx context.Context, scenario string) (domain.QueryResult, error) {
	return a.svc.Demo(ctx, scenario)
}

type adaptLexiconPort struct{ svc querysvc.Service }

// Summary describes the loaded lexicon
func (a adaptLexiconPort) Summary(ctx context.Context) domain.LexiconSummary { return a.svc.Summary(ctx) }
