// Package api provides the HTTP API for the application
package api

import (
	"time"

	"bizquery/internal/core/lexicon"
	"bizquery/internal/core/translate"
	"bizquery/internal/platform/config"
	phttp "bizquery/internal/platform/net/http"
	"bizquery/internal/platform/net/middleware"
	"bizquery/internal/platform/store"

	"bizquery/internal/modkit"
	"bizquery/internal/modkit/httpkit"
	"bizquery/internal/modkit/module"
	"bizquery/internal/modkit/swaggerkit"

	metamod "bizquery/internal/services/api/meta/module"
	querydom "bizquery/internal/services/api/query/domain"
	querymod "bizquery/internal/services/api/query/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Lexicon        *lexicon.Lexicon
	Translator     *translate.Translator
	Swagger        swaggerkit.Options
	EnableProfiler bool
	CORSOrigins    []string
	SlowRequest    time.Duration
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg:        opt.Config,
		Lexicon:    opt.Lexicon,
		Translator: opt.Translator,
	}
	if opt.Store != nil && opt.Store.PG != nil {
		deps.PG = opt.Store.PG
	}

	// query owns the lexicon port meta reports on
	query := querymod.New(deps, querymod.FromConfig(deps.Cfg),
		modkit.WithMiddlewares(middleware.AllowContentType("application/json")),
	)
	lx := module.MustPortsOf[querydom.LexiconPort](query)

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Lexicon: lx})),
		query,
	}

	swaggerkit.Mount(r, opt.Swagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: opt.CORSOrigins,
		Slow:        opt.SlowRequest,
	})
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
