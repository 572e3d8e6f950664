// Package synth builds the final query string from normalized text, signals and intent.
// Shortcuts are tried first in order; the first satisfied predicate returns its literal query.
// Otherwise the query is assembled clause by clause from the chosen table profile
package synth

import (
	"strconv"
	"strings"

	"bizquery/internal/core/extract"
	"bizquery/internal/core/lexicon"
)

// Synthesis is the generated query and the shortcut that produced it, if any
type Synthesis struct {
	SQL      string
	Shortcut string
}

// Synthesizer is read-only after New and safe for concurrent use
type Synthesizer struct {
	shortcuts []lexicon.Shortcut
	tables    []lexicon.Table
	fallback  lexicon.Table
	threshold string
	limit     string
}

// New captures the shortcut cascade and table profiles from lx
func New(lx *lexicon.Lexicon) *Synthesizer {
	return &Synthesizer{
		shortcuts: lx.Shortcuts(),
		tables:    lx.Tables(),
		fallback:  lx.DefaultTable(),
		threshold: lx.AmountThreshold(),
		limit:     strconv.Itoa(lx.RowLimit()),
	}
}

// Synthesize never fails; absent signals simply produce no clause
func (s *Synthesizer) Synthesize(text string, sig extract.Signals, in lexicon.Intent) Synthesis {
	for _, sc := range s.shortcuts {
		if sc.Matches(text) {
			return Synthesis{SQL: sc.SQL, Shortcut: sc.Name}
		}
	}
	return Synthesis{SQL: s.generic(text, sig, in)}
}

// Table returns the primary table profile chosen for text
func (s *Synthesizer) Table(text string) lexicon.Table {
	for _, t := range s.tables {
		for _, kw := range t.Keywords {
			if strings.Contains(text, kw) {
				return t
			}
		}
	}
	return s.fallback
}

func (s *Synthesizer) generic(text string, sig extract.Signals, in lexicon.Intent) string {
	t := s.Table(text)

	var b strings.Builder
	b.Grow(256)

	b.WriteString(projection(t, in))
	b.WriteString(t.From)

	w := clauses{b: &b}
	if name, ok := sig.Str(extract.KeyEntityName); ok {
		w.add("gc.company_name LIKE '%" + name + "%'")
	}
	if code, ok := sig.Str(extract.KeyCurrency); ok && t.Currency != "" {
		w.add(t.Currency + " = '" + code + "'")
	}
	if sig.Bool(extract.KeyHasAmountFilter) && t.Amount != "" {
		op, ok := sig.Str(extract.KeyAmountOperator)
		if !ok {
			op = ">"
		}
		w.add(t.Amount + " " + op + " " + s.threshold)
	}

	if in == lexicon.IntentComparison {
		b.WriteString(" GROUP BY gc.country ")
	}

	b.WriteString(" ORDER BY ")
	b.WriteString(t.Order)
	b.WriteString(" DESC LIMIT ")
	b.WriteString(s.limit)
	return b.String()
}

// projection picks the SELECT list: aggregate by country for comparisons, joined rows otherwise
func projection(t lexicon.Table, in lexicon.Intent) string {
	if in != lexicon.IntentComparison {
		return "SELECT " + t.Alias + ".*, gc.company_name, gc.country FROM "
	}
	if t.Amount == "" {
		return "SELECT gc.country, COUNT(*) as total FROM "
	}
	sel := "SELECT gc.country, SUM(" + t.Amount + ") as total_limit"
	if t.Utilized != "" {
		sel += ", SUM(" + t.Utilized + ") as total_utilized"
	}
	return sel + " FROM "
}

// clauses writes " WHERE " before the first filter and " AND " before later ones,
// each filter followed by a single space
type clauses struct {
	b *strings.Builder
	n int
}

func (c *clauses) add(expr string) {
	if c.n == 0 {
		c.b.WriteString(" WHERE ")
	} else {
		c.b.WriteString(" AND ")
	}
	c.b.WriteString(expr)
	c.b.WriteByte(' ')
	c.n++
}
