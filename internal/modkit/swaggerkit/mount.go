// Package swaggerkit serves the OpenAPI document and Swagger UI
package swaggerkit

import (
	"net/http"

	"bizquery/internal/platform/config"
	phttp "bizquery/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Options configures the docs routes
type Options struct {
	Enabled     bool
	BaseURL     string // servers entry when the document has none
	TitleSuffix string // appended to info.title, e.g. an environment name
}

// FromConfig reads CORE_API_SWAGGER and CORE_API_DOCS_TITLE_SUFFIX
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_API_")
	return Options{
		Enabled:     c.MayBool("SWAGGER", true),
		BaseURL:     "/api/v1",
		TitleSuffix: c.MayString("DOCS_TITLE_SUFFIX", ""),
	}
}

// Mount adds /api/docs (UI) and /api/docs/doc.json when enabled
func Mount(r phttp.Router, o Options) {
	if !o.Enabled {
		return
	}
	if o.BaseURL == "" {
		o.BaseURL = "/api/v1"
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(o))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
