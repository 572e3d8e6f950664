package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Process(ctx context.Context, in ProcessInput) (QueryResult, error)
	ProcessAsync(ctx context.Context, in ProcessInput) (QueryResult, error)
	BusinessTerms(ctx context.Context) (BusinessTerms, error)
	Health(ctx context.Context) (Health, error)
	Demo(ctx context.Context, scenario string) (QueryResult, error)
}

// LexiconPort exposes the loaded vocabulary to the meta module
type LexiconPort interface {
	Summary(ctx context.Context) LexiconSummary
}
