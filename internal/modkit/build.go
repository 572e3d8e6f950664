package modkit

import (
	"net/http"

	"bizquery/internal/modkit/httpkit"
	str "bizquery/internal/platform/strings"
)

// Built is the resolved option set a module constructor reads
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any
}

// Build applies opts over empty defaults
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	return Built{
		Name:   c.name,
		Prefix: c.prefix,
		Mw:     append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:  c.ports,
	}
}

// Base holds the routing half of a module. Modules embed it and add Ports
type Base struct {
	name   string
	prefix string
	mw     []func(http.Handler) http.Handler
	routes func(httpkit.Router)
}

// Base binds the module's route registration to its resolved name, prefix and middleware
func (b Built) Base(routes func(httpkit.Router)) Base {
	return Base{name: b.Name, prefix: b.Prefix, mw: b.Mw, routes: routes}
}

// MountRoutes mounts the module under its prefix with its middleware
func (m Base) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.Prefix(), m.mw, m.routes)
}

// Name returns the module name, panicking when unset
func (m Base) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the normalized mount path
func (m Base) Prefix() string { return str.MustPrefix(m.prefix) }
