// @title         bizquery API
// @version       0.1.0
// @description   Translates business questions about credit facilities into SQL and optionally runs them read only

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bizquery/internal/core/lexicon"
	"bizquery/internal/core/translate"
	"bizquery/internal/core/version"
	"bizquery/internal/modkit/repokit"
	"bizquery/internal/modkit/swaggerkit"
	"bizquery/internal/platform/config"
	"bizquery/internal/platform/logger"
	phttp "bizquery/internal/platform/net/http"
	"bizquery/internal/platform/store"

	"bizquery/internal/services/api"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	opt := logger.FromEnv()
	if opt.Service == "" {
		opt.Service = version.ServiceAPI
	}
	logger.Init(opt)
	l := logger.Get()

	// postgres is optional; without it the API only translates
	st, err := store.Open(ctx, store.FromConf(version.ServiceAPI, root), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	if st.Enabled() {
		repokit.MustGuard(ctx, st)
	}

	lx, err := lexicon.Load()
	if err != nil {
		l.Panic().Err(err).Msg("lexicon.Load failed")
	}
	tr, err := translate.New(lx,
		translate.WithWorkers(root.Prefix("CORE_TRANSLATE_").MayIntIn("WORKERS", translate.DefaultWorkers, 2, 4)),
		translate.WithLogger(logger.Named("translate")),
	)
	if err != nil {
		l.Panic().Err(err).Msg("translate.New failed")
	}
	defer tr.Close()

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Lexicon:        lx,
			Translator:     tr,
			Swagger:        swaggerkit.FromConfig(root),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			CORSOrigins:    apiCfg.MayCSV("CORS_ORIGINS", nil),
			SlowRequest:    apiCfg.MayDuration("SLOW_REQUEST", time.Second),
		},
	)

	l.Info().
		Int("lexicon_version", lx.Version()).
		Int("workers", tr.Workers()).
		Bool("executor", st.Enabled()).
		Str("version", version.Info(version.ServiceAPI).Version).
		Msg("bizquery api starting")

	if err := srv.Run(ctx, apiCfg.MayDuration("SHUTDOWN_GRACE", 10*time.Second)); err != nil {
		l.Error().Err(err).Msg("http server stopped")
	}
}
