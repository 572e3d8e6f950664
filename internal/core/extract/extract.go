// Package extract scans normalized text for trigger substrings and produces the signal map
// consumed by query synthesis
package extract

import (
	"sort"

	"bizquery/internal/core/lexicon"
)

// Signal names
const (
	KeyEntityType      = "entity_type"
	KeyEntityName      = "entity_name"
	KeyHasBankFilter   = "has_bank_filter"
	KeyHasAmountFilter = "has_amount_filter"
	KeyAmountOperator  = "amount_operator"
	KeyCurrency        = "currency"
	KeyHasDateFilter   = "has_date_filter"
)

// EntityTypeCompany is the only entity_type the battery records
const EntityTypeCompany = "company"

// Signals maps a signal name to a string or bool value. Iteration order carries no meaning
type Signals map[string]any

// Str returns a string signal and whether it is set
func (s Signals) Str(key string) (string, bool) {
	v, ok := s[key].(string)
	return v, ok && v != ""
}

// Bool returns a bool signal, false when absent
func (s Signals) Bool(key string) bool {
	v, _ := s[key].(bool)
	return v
}

// Keys returns the set signal names sorted
func (s Signals) Keys() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type company struct {
	ids  []int
	name string
}

type currency struct {
	ids  []int
	code string
}

// Extractor runs the fixed battery of checks. Safe for concurrent use
type Extractor struct {
	ac       *automaton
	patterns int

	companies   []company
	banks       []int
	amountOver  []int
	amountUnder []int
	currencies  []currency
	dates       []int
}

// New compiles the trigger keywords from lx into a single automaton
func New(lx *lexicon.Lexicon) *Extractor {
	tr := lx.Triggers()
	ids := map[string]int{}
	e := &Extractor{ac: newAutomaton()}

	intern := func(kws []string) []int {
		out := make([]int, 0, len(kws))
		for _, kw := range kws {
			id, ok := ids[kw]
			if !ok {
				id = len(ids)
				ids[kw] = id
				e.ac.add(kw, id)
			}
			out = append(out, id)
		}
		return out
	}

	for _, c := range tr.Companies {
		e.companies = append(e.companies, company{ids: intern(c.Keywords), name: c.Name})
	}
	e.banks = intern(tr.Banks)
	e.amountOver = intern(tr.AmountOver)
	e.amountUnder = intern(tr.AmountUnder)
	for _, c := range tr.Currencies {
		e.currencies = append(e.currencies, currency{ids: intern(c.Keywords), code: c.Code})
	}
	e.dates = intern(tr.Dates)

	e.ac.build()
	e.patterns = len(ids)
	return e
}

// Extract evaluates the battery against normalized text. Order matters:
// company (first match wins), bank, amount over then under (under overwrites the operator),
// currency (first family wins), date
func (e *Extractor) Extract(text string) Signals {
	sig := Signals{}
	if text == "" {
		return sig
	}

	hit := make([]bool, e.patterns)
	e.ac.scan(text, hit)

	for _, c := range e.companies {
		if anyHit(hit, c.ids) {
			sig[KeyEntityType] = EntityTypeCompany
			sig[KeyEntityName] = c.name
			break
		}
	}

	if anyHit(hit, e.banks) {
		sig[KeyHasBankFilter] = true
	}

	if anyHit(hit, e.amountOver) {
		sig[KeyHasAmountFilter] = true
		sig[KeyAmountOperator] = ">"
	}
	if anyHit(hit, e.amountUnder) {
		sig[KeyHasAmountFilter] = true
		sig[KeyAmountOperator] = "<"
	}

	for _, c := range e.currencies {
		if anyHit(hit, c.ids) {
			sig[KeyCurrency] = c.code
			break
		}
	}

	if anyHit(hit, e.dates) {
		sig[KeyHasDateFilter] = true
	}

	return sig
}

func anyHit(hit []bool, ids []int) bool {
	for _, id := range ids {
		if hit[id] {
			return true
		}
	}
	return false
}
