package httpkit

import (
	"net/http"
)

type verbCall struct {
	verb string
	path string
	h    Handler
}

// fakeRouter records mounts without routing anything
type fakeRouter struct {
	prefixes  []string
	useCalls  int
	lastMWLen int
	calls     []verbCall
}

func (f *fakeRouter) Mux() http.Handler { return http.NewServeMux() }

func (f *fakeRouter) Route(prefix string, fn func(Router)) {
	f.prefixes = append(f.prefixes, prefix)
	fn(f)
}

func (f *fakeRouter) Group(fn func(Router)) { fn(f) }

func (f *fakeRouter) Use(mw ...func(http.Handler) http.Handler) {
	f.useCalls++
	f.lastMWLen = len(mw)
}

func (f *fakeRouter) Handle(path string, h http.Handler) {
	f.calls = append(f.calls, verbCall{"HANDLE", path, h.ServeHTTP})
}

func (f *fakeRouter) Get(path string, h Handler) { f.calls = append(f.calls, verbCall{"GET", path, h}) }

func (f *fakeRouter) Post(path string, h Handler) {
	f.calls = append(f.calls, verbCall{"POST", path, h})
}
