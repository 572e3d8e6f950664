// Package translate wires the normalizer, extractor, classifier and synthesizer into the
// single text to query entry point, with an optional bounded async variant
package translate

import (
	"errors"
	"fmt"
	"time"

	"bizquery/internal/core/extract"
	"bizquery/internal/core/intent"
	"bizquery/internal/core/lexicon"
	"bizquery/internal/core/normalize"
	"bizquery/internal/core/synth"
	"bizquery/internal/platform/logger"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
)

// Worker bounds for the async pool
const (
	DefaultWorkers = 3
	MinWorkers     = 2
	MaxWorkers     = 4
)

// ErrClosed is returned by Submit after Close
var ErrClosed = errors.New("translate: translator closed")

// Result is one translation; built once and never mutated after return
type Result struct {
	ID         uuid.UUID       `json:"id"`
	Original   string          `json:"original_query"`
	Normalized string          `json:"normalized_query"`
	SQL        string          `json:"generated_sql"`
	Intent     lexicon.Intent  `json:"intent"`
	Signals    extract.Signals `json:"context"`
	Shortcut   string          `json:"shortcut,omitempty"`
	Elapsed    time.Duration   `json:"-"`
}

// ElapsedMs is the processing time in milliseconds
func (r Result) ElapsedMs() int64 { return r.Elapsed.Milliseconds() }

// Option configures a Translator
type Option func(*Translator)

// WithWorkers sets the async pool size, clamped to [MinWorkers, MaxWorkers]
func WithWorkers(n int) Option {
	return func(t *Translator) { t.workers = clampWorkers(n) }
}

// WithLogger overrides the component logger
func WithLogger(l *logger.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.log = l
		}
	}
}

// Translator is safe for concurrent use. Translate never touches the pool
type Translator struct {
	norm    *normalize.Normalizer
	ext     *extract.Extractor
	cls     *intent.Classifier
	syn     *synth.Synthesizer
	log     *logger.Logger
	workers int
	pool    *ants.Pool
}

// New builds every stage from lx and starts the async pool
func New(lx *lexicon.Lexicon, opts ...Option) (*Translator, error) {
	if lx == nil {
		return nil, errors.New("translate: nil lexicon")
	}
	t := &Translator{
		norm:    normalize.New(lx.Substitutions()),
		ext:     extract.New(lx),
		cls:     intent.New(lx),
		syn:     synth.New(lx),
		log:     logger.Named("translate"),
		workers: DefaultWorkers,
	}
	for _, o := range opts {
		o(t)
	}

	l := t.log
	pool, err := ants.NewPool(t.workers,
		ants.WithPreAlloc(true),
		ants.WithPanicHandler(func(p any) {
			l.Error().Interface("panic", p).Msg("translation worker panicked")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create translation pool: %w", err)
	}
	t.pool = pool
	return t, nil
}

// Workers reports the async pool size
func (t *Translator) Workers() int { return t.workers }

// Translate runs the pipeline synchronously. It never fails; unknown input degrades
// to the generic query
func (t *Translator) Translate(query string) Result {
	start := time.Now()

	norm := t.norm.Normalize(query)
	sig := t.ext.Extract(norm)
	in := t.cls.Classify(norm)
	out := t.syn.Synthesize(norm, sig, in)

	res := Result{
		ID:         uuid.New(),
		Original:   query,
		Normalized: norm,
		SQL:        out.SQL,
		Intent:     in,
		Signals:    sig,
		Shortcut:   out.Shortcut,
		Elapsed:    time.Since(start),
	}

	t.log.Debug().
		Str("translation_id", res.ID.String()).
		Str("intent", string(res.Intent)).
		Str("shortcut", res.Shortcut).
		Strs("signals", sig.Keys()).
		Dur("elapsed", res.Elapsed).
		Msg("translated")
	return res
}

// Submit schedules Translate on the worker pool. The returned channel receives exactly one
// Result and is then closed. Submit blocks while every worker is busy
func (t *Translator) Submit(query string) (<-chan Result, error) {
	ch := make(chan Result, 1)
	err := t.pool.Submit(func() {
		defer close(ch)
		ch <- t.Translate(query)
	})
	if err != nil {
		if errors.Is(err, ants.ErrPoolClosed) {
			return nil, ErrClosed
		}
		return nil, fmt.Errorf("translate: submit: %w", err)
	}
	return ch, nil
}

// Close releases the pool; running translations still deliver their results
func (t *Translator) Close() {
	t.pool.Release()
}

func clampWorkers(n int) int {
	switch {
	case n <= 0:
		return DefaultWorkers
	case n < MinWorkers:
		return MinWorkers
	case n > MaxWorkers:
		return MaxWorkers
	}
	return n
}
