package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeQuery, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeForbidden, http.StatusForbidden},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeTimeout, http.StatusGatewayTimeout},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError}, // default branch
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestErrorCodeString(t *testing.T) {
	if got := ErrorCodeQuery.String(); got != "query" {
		t.Fatalf("String = %q", got)
	}
	if got := ErrorCode(9999).String(); got != "code(9999)" {
		t.Fatalf("String out of range = %q", got)
	}
}

func TestErrorTypeAndMethods(t *testing.T) {
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}

	e1 := New(ErrorCodeValidation, "bad stuff")
	if CodeOf(e1) != ErrorCodeValidation {
		t.Fatalf("CodeOf(New) = %v", CodeOf(e1))
	}
	e2 := Newf(ErrorCodeJSON, "bad json %d", 12)
	if got := e2.Error(); got != "bad json 12" {
		t.Fatalf("Newf().Error = %q", got)
	}

	src := stderrs.New("root")
	e3 := Wrap(src, ErrorCodeDB, "db failed")
	if u := stderrs.Unwrap(e3); u == nil || u.Error() != "root" {
		t.Fatalf("Wrap did not keep orig")
	}
	if got := e3.Error(); got != "db failed: root" {
		t.Fatalf("Wrap().Error = %q", got)
	}
	if !stderrs.Is(fmt.Errorf("outer: %w", e3), src) {
		t.Fatalf("cause not reachable through outer wrap")
	}
}

func TestFieldAndOpCopies(t *testing.T) {
	base := Validationf("query is required")
	withField := WithField(base, "query")
	withOp := WithOp(withField, "process")

	pe, ok := As(withOp)
	if !ok {
		t.Fatalf("As failed")
	}
	if pe.Field() != "query" || pe.Op() != "process" {
		t.Fatalf("field/op = %q/%q", pe.Field(), pe.Op())
	}
	orig, _ := As(base)
	if orig.Field() != "" || orig.Op() != "" {
		t.Fatalf("original must not be mutated")
	}

	foreign := stderrs.New("x")
	if WithField(foreign, "f") != foreign || WithOp(foreign, "o") != foreign {
		t.Fatalf("foreign errors pass through unchanged")
	}
}

func TestWireFrom(t *testing.T) {
	if w := WireFrom(nil); w != (Wire{}) {
		t.Fatalf("WireFrom(nil) = %+v", w)
	}

	err := WithField(Wrap(stderrs.New("secret dsn"), ErrorCodeQuery, "generated query rejected"), "amount")
	w := WireFrom(fmt.Errorf("outer: %w", err))
	if w.Code != ErrorCodeQuery || w.Message != "generated query rejected" || w.Field != "amount" {
		t.Fatalf("WireFrom = %+v", w)
	}

	w = WireFrom(stderrs.New("plain"))
	if w.Code != ErrorCodeUnknown || w.Message != "plain" {
		t.Fatalf("foreign WireFrom = %+v", w)
	}
}

func TestSugarConstructors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"not found", NotFoundf("demo %d", 9), ErrorCodeNotFound},
		{"validation", Validationf("bad"), ErrorCodeValidation},
		{"json", JSONErrf("bad"), ErrorCodeJSON},
		{"panic", PanicErrf("boom"), ErrorCodePanic},
		{"unavailable", Unavailablef("no db"), ErrorCodeUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if !IsCode(tc.err, tc.want) {
				t.Fatalf("code = %v, want %v", CodeOf(tc.err), tc.want)
			}
		})
	}

	if HTTPStatus(NotFoundf("demo %d", 9)) != http.StatusNotFound {
		t.Fatalf("HTTPStatus mismatch")
	}
	if !stderrs.Is(ErrNotFound, ErrNotFound) || CodeOf(ErrNotFound) != ErrorCodeNotFound {
		t.Fatalf("ErrNotFound sentinel broken")
	}
}
