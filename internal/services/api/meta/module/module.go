// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"bizquery/internal/core/version"
	modkit "bizquery/internal/modkit"
	"bizquery/internal/modkit/httpkit"
	querydom "bizquery/internal/services/api/query/domain"

	metahttp "bizquery/internal/services/api/meta/http"
)

// Ports are the cross module ports meta reads from, injected with modkit.WithPorts
type Ports struct {
	Lexicon querydom.LexiconPort
}

// Module serves liveness, readiness, version and lexicon info under /meta
type Module struct {
	modkit.Base
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{startedAt: time.Now()}
	ports, _ := b.Ports.(Ports)

	// keep a nil TxRunner from turning into a non nil interface
	var pg any
	if deps.CanExecute() {
		pg = deps.PG
	}

	m.Base = b.Base(func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: version.ServiceAPI,
			StartedAt:   m.startedAt,
			PG:          pg,
			Lexicon:     ports.Lexicon,
		})
	})
	return m
}

// Ports implements modkit.Module; meta exports nothing
func (m *Module) Ports() any { return nil }
