package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"bizquery/internal/core/lexicon"
	"bizquery/internal/core/translate"
	"bizquery/internal/modkit/repokit"
	perr "bizquery/internal/platform/errors"
	"bizquery/internal/platform/store"
	"bizquery/internal/services/api/query/domain"
	"bizquery/internal/services/api/query/repo"

	"github.com/jackc/pgx/v5/pgconn"
)

type fakeTag struct{}

func (fakeTag) String() string      { return "SET" }
func (fakeTag) RowsAffected() int64 { return 0 }

// fakeDB runs Tx inline and records every Exec
type fakeDB struct {
	execs []string
	txs   int
}

func (f *fakeDB) Exec(_ context.Context, sql string, _ ...any) (repokit.CommandTag, error) {
	f.execs = append(f.execs, sql)
	return fakeTag{}, nil
}

func (f *fakeDB) Query(context.Context, string, ...any) (repokit.Rows, error) {
	return nil, errors.New("fakeDB: Query not supported")
}

func (f *fakeDB) QueryRow(context.Context, string, ...any) repokit.Row { return nil }

func (f *fakeDB) Tx(_ context.Context, fn func(repokit.Queryer) error) error {
	f.txs++
	return fn(f)
}

// fakeRepo returns a canned result and records what it was asked to run
type fakeRepo struct {
	rs    store.ResultSet
	err   error
	sql   string
	limit int
}

func (f *fakeRepo) Run(_ context.Context, sql string, limit int) (store.ResultSet, error) {
	f.sql, f.limit = sql, limit
	return f.rs, f.err
}

func newTranslator(t *testing.T) (*translate.Translator, *lexicon.Lexicon) {
	t.Helper()
	lx, err := lexicon.Load()
	if err != nil {
		t.Fatalf("lexicon.Load: %v", err)
	}
	tr, err := translate.New(lx, translate.WithWorkers(2))
	if err != nil {
		t.Fatalf("translate.New: %v", err)
	}
	t.Cleanup(tr.Close)
	return tr, lx
}

func newSvc(t *testing.T, db repokit.TxRunner, fr *fakeRepo) *Svc {
	t.Helper()
	tr, lx := newTranslator(t)
	if fr == nil {
		fr = &fakeRepo{}
	}
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return fr })
	s := New(tr, lx, db, binder, Limits{Rows: 25, Timeout: 5 * time.Second})
	s.now = func() time.Time { return time.UnixMilli(1760572800000) }
	return s
}

const facilitiesOverMillion = "SELECT wcf.*, gc.company_name, gc.country FROM working_capital_facilities wcf " +
	"JOIN group_companies gc ON wcf.company_id = gc.id  WHERE wcf.limit_amount > 1000000  " +
	"ORDER BY wcf.limit_amount DESC LIMIT 50"

func TestProcess_Translates(t *testing.T) {
	t.Parallel()
	s := newSvc(t, nil, nil)

	got, err := s.Process(context.Background(), domain.ProcessInput{Query: "Show me all facilities over 1 million"})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if got.GeneratedSQL != facilitiesOverMillion {
		t.Fatalf("sql = %q", got.GeneratedSQL)
	}
	if got.Intent != string(lexicon.IntentThreshold) || !strings.HasPrefix(got.NormalizedQuery, "select") {
		t.Fatalf("intent/normalized = %q %q", got.Intent, got.NormalizedQuery)
	}
	if got.Context["has_amount_filter"] != true || got.Context["amount_operator"] != ">" {
		t.Fatalf("context = %v", got.Context)
	}
	if got.ID == "" || got.Data != nil {
		t.Fatalf("id/data = %q %v", got.ID, got.Data)
	}
}

func TestProcess_BlankQuery(t *testing.T) {
	t.Parallel()
	s := newSvc(t, nil, nil)

	for _, q := range []string{"", "   ", "\t\n"} {
		for name, run := range map[string]func(context.Context, domain.ProcessInput) (domain.QueryResult, error){
			"sync": s.Process, "async": s.ProcessAsync,
		} {
			_, err := run(context.Background(), domain.ProcessInput{Query: q})
			pe, ok := perr.As(err)
			if !ok || pe.Code() != perr.ErrorCodeValidation || pe.Field() != "query" {
				t.Fatalf("%s %q: err = %v", name, q, err)
			}
		}
	}
}

func TestProcess_Execute(t *testing.T) {
	t.Parallel()

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()
		s := newSvc(t, nil, nil)
		_, err := s.Process(context.Background(), domain.ProcessInput{Query: "facilities over 1 million", Execute: true})
		if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("rows", func(t *testing.T) {
		t.Parallel()
		db := &fakeDB{}
		fr := &fakeRepo{rs: store.ResultSet{
			Columns:   []string{"company_name", "limit_amount"},
			Rows:      []map[string]any{{"company_name": "Oxnard", "limit_amount": 2e6}},
			Truncated: true,
		}}
		s := newSvc(t, db, fr)

		got, err := s.Process(context.Background(), domain.ProcessInput{Query: "Show me all facilities over 1 million", Execute: true})
		if err != nil {
			t.Fatalf("Process: %v", err)
		}
		if got.Data == nil || got.Data.Count != 1 || !got.Data.Truncated || got.Data.Columns[0] != "company_name" {
			t.Fatalf("data = %+v", got.Data)
		}
		if fr.sql != facilitiesOverMillion || fr.limit != 25 {
			t.Fatalf("repo got sql=%q limit=%d", fr.sql, fr.limit)
		}
		want := []string{"SET TRANSACTION READ ONLY", "SET LOCAL statement_timeout = 5000"}
		if db.txs != 1 || !slices.Equal(db.execs, want) {
			t.Fatalf("tx=%d execs=%v", db.txs, db.execs)
		}
	})

	cases := []struct {
		name  string
		err   error
		code  perr.ErrorCode
		field string
	}{
		{"read only", &pgconn.PgError{Code: "25006"}, perr.ErrorCodeForbidden, ""},
		{"undefined column", &pgconn.PgError{Code: "42703", ColumnName: "limit_amount"}, perr.ErrorCodeQuery, "limit_amount"},
		{"statement timeout", &pgconn.PgError{Code: "57014"}, perr.ErrorCodeTimeout, ""},
		{"io", errors.New("conn reset"), perr.ErrorCodeDB, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := newSvc(t, &fakeDB{}, &fakeRepo{err: tc.err})
			_, err := s.Process(context.Background(), domain.ProcessInput{Query: "loans over 1 million", Execute: true})
			pe, ok := perr.As(err)
			if !ok || pe.Code() != tc.code || pe.Field() != tc.field || pe.Op() != "query.execute" {
				t.Fatalf("err = %v (%+v)", err, pe)
			}
		})
	}
}

func TestProcess_ExecuteFailureLogsCodeAndOp(t *testing.T) {
	t.Parallel()
	s := newSvc(t, &fakeDB{}, &fakeRepo{err: errors.New("conn reset by peer 7f3a")})

	if _, err := s.Process(context.Background(), domain.ProcessInput{Query: "loans over 1 million", Execute: true}); err == nil {
		t.Fatal("expected execution error")
	}
	line := logs.Line("conn reset by peer 7f3a")
	for _, want := range []string{`"message":"generated query failed"`, `"code":"db"`, `"op":"query.execute"`, `"intent":"GENERAL_QUERY"`, `"translation_id":`} {
		if !strings.Contains(line, want) {
			t.Fatalf("log line %q missing %s", line, want)
		}
	}
}

func TestProcessAsync(t *testing.T) {
	t.Parallel()
	s := newSvc(t, nil, nil)

	got, err := s.ProcessAsync(context.Background(), domain.ProcessInput{Query: "Show me all facilities over 1 million"})
	if err != nil {
		t.Fatalf("ProcessAsync: %v", err)
	}
	if got.GeneratedSQL != facilitiesOverMillion {
		t.Fatalf("sql = %q", got.GeneratedSQL)
	}

	s.tr.Close()
	_, err = s.ProcessAsync(context.Background(), domain.ProcessInput{Query: "anything"})
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("after close err = %v", err)
	}
}

func TestDemo(t *testing.T) {
	t.Parallel()
	s := newSvc(t, nil, nil)

	for i := 1; i <= domain.DemoCount(); i++ {
		sc := string(rune('0' + i))
		got, err := s.Demo(context.Background(), sc)
		if err != nil {
			t.Fatalf("Demo(%s): %v", sc, err)
		}
		want, _ := domain.DemoQuery(sc)
		if got.OriginalQuery != want || got.GeneratedSQL == "" {
			t.Fatalf("Demo(%s) = %+v", sc, got)
		}
	}
	for _, sc := range []string{"0", "6", "x", "", "01", "+1", " 1", "1.0"} {
		if _, err := s.Demo(context.Background(), sc); !perr.IsCode(err, perr.ErrorCodeNotFound) {
			t.Fatalf("Demo(%q) err = %v", sc, err)
		}
	}
}

func TestBusinessTerms(t *testing.T) {
	t.Parallel()
	s := newSvc(t, nil, nil)

	bt, err := s.BusinessTerms(context.Background())
	if err != nil {
		t.Fatalf("BusinessTerms: %v", err)
	}
	if len(bt.SampleQueries) != len(domain.SampleQueries) {
		t.Fatalf("sample queries = %v", bt.SampleQueries)
	}
	hasPrefix := func(list []string, p string) bool {
		return slices.ContainsFunc(list, func(s string) bool { return strings.HasPrefix(s, p) })
	}
	if !hasPrefix(bt.SampleTerms, "WCR - ") || !hasPrefix(bt.SampleTerms, "PKO BP - ") {
		t.Fatalf("sample terms = %v", bt.SampleTerms)
	}
	for _, want := range []string{
		"Companies: Banasino, Kronospan Asia, Oxnard, Spanaco",
		"Banks: Erste, PKO BP, Raiffeisen",
		"Countries: Cyprus, Poland, Romania",
		"Facility types: RC, SWAPS",
		"Currencies: BGN, EUR, PLN",
	} {
		if !slices.Contains(bt.SupportedEntities, want) {
			t.Fatalf("missing %q in %v", want, bt.SupportedEntities)
		}
	}
}

func TestHealthAndSummary(t *testing.T) {
	t.Parallel()

	off := newSvc(t, nil, nil)
	h, _ := off.Health(context.Background())
	if h.Status != "UP" || h.ContextEngine != "ACTIVE" || h.QueryProcessor != "READY" ||
		h.Executor != "DISABLED" || h.Timestamp != 1760572800000 || h.Service != "bizquery-api" {
		t.Fatalf("health = %+v", h)
	}

	on := newSvc(t, &fakeDB{}, nil)
	if h, _ := on.Health(context.Background()); h.Executor != "READY" {
		t.Fatalf("executor = %q", h.Executor)
	}

	sum := off.Summary(context.Background())
	if sum.DefaultTable != "facility" || sum.AsyncWorkers != 2 || sum.Intents == 0 || sum.Entities != 14 {
		t.Fatalf("summary = %+v", sum)
	}
	if !slices.Contains(sum.Shortcuts, "pko_bp_over_million") || !slices.Contains(sum.Tables, "director") {
		t.Fatalf("summary lists = %+v", sum)
	}
}

func TestNew_Panics(t *testing.T) {
	t.Parallel()
	tr, lx := newTranslator(t)
	binder := repo.NewPG()

	for name, fn := range map[string]func(){
		"nil translator": func() { New(nil, lx, nil, binder, Limits{}) },
		"nil lexicon":    func() { New(tr, nil, nil, binder, Limits{}) },
		"nil binder":     func() { New(tr, lx, nil, nil, Limits{}) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}
