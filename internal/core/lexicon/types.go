package lexicon

import (
	"fmt"
	"regexp"

	"github.com/google/cel-go/cel"
)

// EntityKind is the coarse category assigned to a recognized proper noun
type EntityKind string

// Entity kinds
const (
	EntityCompany      EntityKind = "COMPANY"
	EntityBank         EntityKind = "BANK"
	EntityPerson       EntityKind = "PERSON"
	EntityCountry      EntityKind = "COUNTRY"
	EntityFacilityType EntityKind = "FACILITY_TYPE"
	EntityUnknown      EntityKind = "UNKNOWN"
)

// Valid reports whether k is one of the fixed kinds
func (k EntityKind) Valid() bool {
	switch k {
	case EntityCompany, EntityBank, EntityPerson, EntityCountry, EntityFacilityType, EntityUnknown:
		return true
	}
	return false
}

// Intent is the coarse shape of a question and drives the projection choice
type Intent string

// Intents
const (
	IntentFilter      Intent = "FILTER_QUERY"
	IntentPointInTime Intent = "POINT_IN_TIME_QUERY"
	IntentComparison  Intent = "COMPARISON_QUERY"
	IntentThreshold   Intent = "THRESHOLD_QUERY"
	IntentReport      Intent = "REPORT_GENERATION"
	IntentGeneral     Intent = "GENERAL_QUERY"
)

// Valid reports whether i is one of the fixed intents
func (i Intent) Valid() bool {
	switch i {
	case IntentFilter, IntentPointInTime, IntentComparison, IntentThreshold, IntentReport, IntentGeneral:
		return true
	}
	return false
}

// TermEntry is a terminology key and its canonical expansion
type TermEntry struct {
	Key       string `json:"key"`
	Expansion string `json:"expansion"`
}

// Substitution is a literal phrase replacement applied by the normalizer
type Substitution struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// IntentRule pairs a whole-string pattern with the intent it yields
type IntentRule struct {
	Pattern string
	Intent  Intent
	re      *regexp.Regexp
}

// Match reports whether the rule covers the entire text
func (r IntentRule) Match(text string) bool { return r.re != nil && r.re.MatchString(text) }

// CompanyTrigger maps any of its keywords to a single entity name
type CompanyTrigger struct {
	Keywords []string `json:"keywords"`
	Name     string   `json:"name"`
}

// CurrencyTrigger maps any of its keywords to an ISO code
type CurrencyTrigger struct {
	Keywords []string `json:"keywords"`
	Code     string   `json:"code"`
}

// Triggers are the substring families the context extractor checks, in battery order
type Triggers struct {
	Companies   []CompanyTrigger  `json:"companies"`
	Banks       []string          `json:"banks"`
	AmountOver  []string          `json:"amount_over"`
	AmountUnder []string          `json:"amount_under"`
	Currencies  []CurrencyTrigger `json:"currencies"`
	Dates       []string          `json:"dates"`
}

func (t Triggers) validate() error {
	for _, c := range t.Companies {
		if c.Name == "" || len(c.Keywords) == 0 {
			return fmt.Errorf("lexicon: company trigger needs a name and keywords")
		}
	}
	for _, c := range t.Currencies {
		if c.Code == "" || len(c.Keywords) == 0 {
			return fmt.Errorf("lexicon: currency trigger needs a code and keywords")
		}
	}
	for _, fam := range [][]string{t.Banks, t.AmountOver, t.AmountUnder, t.Dates} {
		for _, kw := range fam {
			if kw == "" {
				return fmt.Errorf("lexicon: empty trigger keyword")
			}
		}
	}
	return nil
}

func (t Triggers) clone() Triggers {
	out := Triggers{
		Banks:       append([]string(nil), t.Banks...),
		AmountOver:  append([]string(nil), t.AmountOver...),
		AmountUnder: append([]string(nil), t.AmountUnder...),
		Dates:       append([]string(nil), t.Dates...),
	}
	for _, c := range t.Companies {
		out.Companies = append(out.Companies, CompanyTrigger{Keywords: append([]string(nil), c.Keywords...), Name: c.Name})
	}
	for _, c := range t.Currencies {
		out.Currencies = append(out.Currencies, CurrencyTrigger{Keywords: append([]string(nil), c.Keywords...), Code: c.Code})
	}
	return out
}

const (
	shortcutVar       = "text"
	shortcutCostLimit = 10000
)

// Shortcut is a predicate over the normalized text and the literal query it returns
type Shortcut struct {
	Name string
	When string
	SQL  string
	prg  cel.Program
}

// Matches evaluates the predicate. Errors and non-bool results count as no match
func (s Shortcut) Matches(text string) bool {
	if s.prg == nil {
		return false
	}
	out, _, err := s.prg.Eval(map[string]any{shortcutVar: text})
	if err != nil {
		return false
	}
	b, ok := out.Value().(bool)
	return ok && b
}

// Table describes a primary table, the join to the company table and its filterable columns.
// Empty column names mean the table has no such column and the matching filter is skipped
type Table struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	From     string   `json:"from"`
	Alias    string   `json:"alias"`
	Amount   string   `json:"amount,omitempty"`
	Utilized string   `json:"utilized,omitempty"`
	Currency string   `json:"currency,omitempty"`
	Order    string   `json:"order"`
}

func (t Table) clone() Table {
	t.Keywords = append([]string(nil), t.Keywords...)
	return t
}
