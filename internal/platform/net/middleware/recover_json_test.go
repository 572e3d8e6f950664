package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "bizquery/internal/platform/errors"
	"bizquery/internal/platform/net/middleware"
	kit "bizquery/internal/platform/testkit"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func TestRecoverJSON_WritesEnvelope(t *testing.T) {
	h := middleware.RequestID()(middleware.RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("lexicon exploded")
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/query/demo/1", nil)
	req.Header.Set(chimw.RequestIDHeader, "panic-req")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rr.Code)
	}
	if rr.Header().Get("X-Request-ID") != "panic-req" {
		t.Fatalf("request id header = %q", rr.Header().Get("X-Request-ID"))
	}
	var env struct {
		StatusCode int            `json:"status_code"`
		Code       perr.ErrorCode `json:"code"`
		Error      string         `json:"error"`
		RequestID  string         `json:"request_id"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.StatusCode != 500 || env.Code != perr.ErrorCodePanic || env.Error != "panic recovered" || env.RequestID != "panic-req" {
		t.Fatalf("envelope = %+v", env)
	}
	kit.MustContain(t, logs.String(), `"panic":"lexicon exploded"`)
}

func TestRecoverJSON_PassThroughAndAbort(t *testing.T) {
	ok := middleware.RecoverJSON(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }))
	rr := httptest.NewRecorder()
	ok.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rr.Code)
	}

	abort := middleware.RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic(http.ErrAbortHandler) }))
	kit.MustPanic(t, func() { abort.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)) })
}
