// Package service contains query workflows
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"bizquery/internal/core/lexicon"
	"bizquery/internal/core/translate"
	"bizquery/internal/core/version"
	"bizquery/internal/modkit/repokit"
	perr "bizquery/internal/platform/errors"
	"bizquery/internal/platform/logger"
	"bizquery/internal/platform/store"
	"bizquery/internal/services/api/query/domain"
	"bizquery/internal/services/api/query/repo"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Service defines the service contract for query
type Service interface {
	domain.ServicePort
	domain.LexiconPort
}

// Limits bound execution of generated SQL
type Limits struct {
	Rows    int
	Timeout time.Duration
}

// Svc implements the Service interface
type Svc struct {
	tr     *translate.Translator
	lx     *lexicon.Lexicon
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner // nil when execution is disabled
	limits Limits
	now    func() time.Time
}

// New creates a new query service. db may be nil, Execute requests then fail as unavailable
func New(tr *translate.Translator, lx *lexicon.Lexicon, db repokit.TxRunner, binder repokit.Binder[repo.Repo], limits Limits) *Svc {
	if tr == nil {
		panic("query.Service requires a non nil Translator")
	}
	if lx == nil {
		panic("query.Service requires a non nil Lexicon")
	}
	if binder == nil {
		panic("query.Service requires a non nil Repo binder")
	}
	s := &Svc{tr: tr, lx: lx, binder: binder, limits: limits, now: time.Now}
	if db != nil {
		s.db = repokit.WithBeginHooks(db, repokit.ReadOnly(), repokit.StatementTimeout(limits.Timeout))
	}
	return s
}

// Process translates in.Query and runs the SQL when asked to
func (s *Svc) Process(ctx context.Context, in domain.ProcessInput) (domain.QueryResult, error) {
	if err := checkQuery(in.Query); err != nil {
		return domain.QueryResult{}, err
	}
	return s.finish(ctx, s.tr.Translate(in.Query), in.Execute)
}

// ProcessAsync runs the translation on the worker pool and waits for it
func (s *Svc) ProcessAsync(ctx context.Context, in domain.ProcessInput) (domain.QueryResult, error) {
	if err := checkQuery(in.Query); err != nil {
		return domain.QueryResult{}, err
	}
	ch, err := s.tr.Submit(in.Query)
	if errors.Is(err, translate.ErrClosed) {
		return domain.QueryResult{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "translator is shutting down")
	}
	if err != nil {
		return domain.QueryResult{}, perr.Wrap(err, perr.ErrorCodeUnknown, "submit translation")
	}

	select {
	case res := <-ch:
		return s.finish(ctx, res, in.Execute)
	case <-ctx.Done():
		return domain.QueryResult{}, perr.Wrap(ctx.Err(), perr.ErrorCodeTimeout, "translation did not finish")
	}
}

// Demo translates one of the fixed demo questions
func (s *Svc) Demo(ctx context.Context, scenario string) (domain.QueryResult, error) {
	q, ok := domain.DemoQuery(scenario)
	if !ok {
		return domain.QueryResult{}, perr.NotFoundf("demo scenario %q not found", scenario)
	}
	return s.finish(ctx, s.tr.Translate(q), false)
}

// BusinessTerms lists terminology, sample questions and known entities
func (s *Svc) BusinessTerms(_ context.Context) (domain.BusinessTerms, error) {
	terms := s.lx.Terms()
	out := domain.BusinessTerms{
		SampleTerms:   make([]string, 0, len(terms)),
		SampleQueries: append([]string(nil), domain.SampleQueries...),
	}
	for _, t := range terms {
		out.SampleTerms = append(out.SampleTerms, t.Key+" - "+t.Expansion)
	}

	groups := []struct {
		label string
		kind  lexicon.EntityKind
	}{
		{"Companies", lexicon.EntityCompany},
		{"Banks", lexicon.EntityBank},
		{"People", lexicon.EntityPerson},
		{"Countries", lexicon.EntityCountry},
		{"Facility types", lexicon.EntityFacilityType},
	}
	for _, g := range groups {
		names := s.lx.Entities(g.kind)
		if len(names) == 0 {
			continue
		}
		for i, n := range names {
			names[i] = s.display(n)
		}
		out.SupportedEntities = append(out.SupportedEntities, g.label+": "+strings.Join(names, ", "))
	}
	out.SupportedEntities = append(out.SupportedEntities, "Currencies: "+strings.Join(s.lx.Currencies(), ", "))
	return out, nil
}

// Health reports the query processor status
func (s *Svc) Health(_ context.Context) (domain.Health, error) {
	bi := version.Info(version.ServiceAPI)
	exec := "DISABLED"
	if s.db != nil {
		exec = "READY"
	}
	return domain.Health{
		Status:         "UP",
		Service:        bi.Service,
		Version:        bi.Version,
		ContextEngine:  "ACTIVE",
		QueryProcessor: "READY",
		Executor:       exec,
		Timestamp:      s.now().UnixMilli(),
	}, nil
}

// Summary describes the loaded lexicon
func (s *Svc) Summary(_ context.Context) domain.LexiconSummary {
	out := domain.LexiconSummary{
		Version:      s.lx.Version(),
		Terms:        len(s.lx.Terms()),
		Currencies:   s.lx.Currencies(),
		Intents:      len(s.lx.IntentRules()),
		DefaultTable: s.lx.DefaultTable().Name,
		RowLimit:     s.lx.RowLimit(),
		AsyncWorkers: s.tr.Workers(),
	}
	for _, k := range []lexicon.EntityKind{
		lexicon.EntityCompany, lexicon.EntityBank, lexicon.EntityPerson,
		lexicon.EntityCountry, lexicon.EntityFacilityType,
	} {
		out.Entities += len(s.lx.Entities(k))
	}
	for _, sc := range s.lx.Shortcuts() {
		out.Shortcuts = append(out.Shortcuts, sc.Name)
	}
	for _, t := range s.lx.Tables() {
		out.Tables = append(out.Tables, t.Name)
	}
	return out
}

func (s *Svc) finish(ctx context.Context, res translate.Result, execute bool) (domain.QueryResult, error) {
	out := toResult(res)
	if !execute {
		return out, nil
	}
	if s.db == nil {
		return domain.QueryResult{}, perr.Unavailablef("query execution is not configured")
	}

	ctx = logger.WithTranslation(ctx, out.ID)
	rs, err := s.execute(ctx, res.SQL)
	if err != nil {
		evt := logger.C(ctx).Warn().Err(err).Str("intent", out.Intent)
		if pe, ok := perr.As(err); ok {
			evt = evt.Stringer("code", pe.Code()).Str("op", pe.Op())
		}
		evt.Msg("generated query failed")
		return domain.QueryResult{}, err
	}
	logger.C(ctx).Debug().Int("rows", len(rs.Rows)).Bool("truncated", rs.Truncated).Msg("generated query executed")

	out.Data = &domain.ResultSet{
		Columns:   rs.Columns,
		Rows:      rs.Rows,
		Count:     len(rs.Rows),
		Truncated: rs.Truncated,
	}
	return out, nil
}

// execute runs sql in a read only transaction bounded by the statement timeout
func (s *Svc) execute(ctx context.Context, sql string) (store.ResultSet, error) {
	rs, err := repokit.TxValue(ctx, s.db, func(q repokit.Queryer) (store.ResultSet, error) {
		return repokit.MustBind(s.binder, q).Run(ctx, sql, s.limits.Rows)
	})
	if err != nil {
		return store.ResultSet{}, perr.WithOp(perr.AttachFieldFromPg(perr.FromPostgres(err, "generated query failed")), "query.execute")
	}
	return rs, nil
}

// display renders a lower-cased surface form; terminology keys keep their upper-case spelling
func (s *Svc) display(surface string) string {
	if key := strings.ToUpper(surface); s.lx.Expand(key) != key {
		return key
	}
	return cases.Title(language.English).String(surface)
}

func checkQuery(q string) error {
	if strings.TrimSpace(q) == "" {
		return perr.WithField(perr.Validationf("query must not be blank"), "query")
	}
	return nil
}

func toResult(r translate.Result) domain.QueryResult {
	sig := make(map[string]any, len(r.Signals))
	for k, v := range r.Signals {
		sig[k] = v
	}
	return domain.QueryResult{
		ID:               r.ID.String(),
		OriginalQuery:    r.Original,
		NormalizedQuery:  r.Normalized,
		GeneratedSQL:     r.SQL,
		Intent:           string(r.Intent),
		Context:          sig,
		Shortcut:         r.Shortcut,
		ProcessingTimeMs: r.ElapsedMs(),
	}
}
