package http_test

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	phttp "bizquery/internal/platform/net/http"
	metahttp "bizquery/internal/services/api/meta/http"
	"bizquery/internal/services/api/query/domain"

	"github.com/go-chi/chi/v5"
)

type fakeLexicon struct{ sum domain.LexiconSummary }

func (f fakeLexicon) Summary(context.Context) domain.LexiconSummary { return f.sum }

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

var (
	started = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	now     = started.Add(5 * time.Minute)
	loaded  = fakeLexicon{sum: domain.LexiconSummary{Version: 1, Terms: 12, AsyncWorkers: 3, DefaultTable: "facility"}}
)

func get(t *testing.T, d metahttp.Deps, path string) (int, map[string]any) {
	t.Helper()
	d.ServiceName, d.StartedAt, d.Now = "bizquery-api", started, func() time.Time { return now }

	mux := chi.NewRouter()
	metahttp.Register(phttp.AdaptChi(mux), d)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, path, nil))

	var env map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	data, _ := env["data"].(map[string]any)
	return rr.Code, data
}

func TestReady(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		deps    metahttp.Deps
		overall string
		lexicon string
		pg      string
	}{
		{"translate only", metahttp.Deps{Lexicon: loaded}, "ok", "ok", "skipped"},
		{"pg up", metahttp.Deps{Lexicon: loaded, PG: fakePinger{}}, "ok", "ok", "ok"},
		{"pg down", metahttp.Deps{Lexicon: loaded, PG: fakePinger{err: errors.New("refused")}}, "fail", "ok", "fail"},
		{"pg not pingable", metahttp.Deps{Lexicon: loaded, PG: struct{}{}}, "ok", "ok", "unknown"},
		{"no lexicon", metahttp.Deps{}, "fail", "fail", "skipped"},
		{"empty lexicon", metahttp.Deps{Lexicon: fakeLexicon{}}, "fail", "fail", "skipped"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			code, data := get(t, tc.deps, "/ready")
			if code != stdhttp.StatusOK || data["status"] != tc.overall {
				t.Fatalf("ready = %d %v", code, data)
			}
			checks := data["checks"].([]any)
			lx, pg := checks[0].(map[string]any), checks[1].(map[string]any)
			if lx["name"] != "lexicon" || lx["status"] != tc.lexicon || pg["name"] != "pg" || pg["status"] != tc.pg {
				t.Fatalf("checks = %v", checks)
			}
			if data["now"] != "2026-10-16T09:05:00Z" {
				t.Fatalf("now = %v", data["now"])
			}
		})
	}
}

func TestInfoRoutes(t *testing.T) {
	t.Parallel()

	code, data := get(t, metahttp.Deps{}, "/health")
	if code != stdhttp.StatusOK || data["ok"] != true || data["started"] != "2026-10-16T09:00:00Z" {
		t.Fatalf("health = %d %v", code, data)
	}

	mods := func() []string { return []string{"meta", "query"} }
	code, data = get(t, metahttp.Deps{Modules: mods}, "/service")
	if code != stdhttp.StatusOK || data["name"] != "bizquery-api" || data["uptime"] != float64(300) {
		t.Fatalf("service = %d %v", code, data)
	}
	if got, _ := data["modules"].([]any); len(got) != 2 || got[0] != "meta" || got[1] != "query" {
		t.Fatalf("service modules = %v", data["modules"])
	}

	code, data = get(t, metahttp.Deps{}, "/version")
	if code != stdhttp.StatusOK || data["service"] != "bizquery-api" {
		t.Fatalf("version = %d %v", code, data)
	}

	code, data = get(t, metahttp.Deps{Lexicon: loaded}, "/lexicon")
	if code != stdhttp.StatusOK || data["default_table"] != "facility" || data["terms"] != float64(12) {
		t.Fatalf("lexicon = %d %v", code, data)
	}

	if code, _ = get(t, metahttp.Deps{}, "/lexicon"); code != stdhttp.StatusServiceUnavailable {
		t.Fatalf("unwired lexicon = %d", code)
	}
}
