// Package module wires query into the API using modkit
package module

import (
	modkit "bizquery/internal/modkit"
	"bizquery/internal/modkit/httpkit"
	queryhttp "bizquery/internal/services/api/query/http"
	queryrepo "bizquery/internal/services/api/query/repo"
	querysvc "bizquery/internal/services/api/query/service"
)

// Module mounts the translation endpoints under /query and exports Ports
type Module struct {
	modkit.Base
	svc   querysvc.Service
	ports Ports
}

// New constructs a query module. deps.Translator and deps.Lexicon are required,
// deps.PG enables execution
func New(deps modkit.Deps, o Options, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("query"), modkit.WithPrefix("/query")}, opts...)...)

	svc := querysvc.New(deps.Translator, deps.Lexicon, deps.PG, queryrepo.NewPG(), querysvc.Limits{
		Rows:    o.RowLimit,
		Timeout: o.Timeout,
	})

	m := &Module{svc: svc}
	m.ports = Ports{Service: adaptQueryPort{svc: svc}, Lexicon: adaptLexiconPort{svc: svc}}
	m.Base = b.Base(func(r httpkit.Router) { queryhttp.Register(r, m.svc) })
	return m
}
