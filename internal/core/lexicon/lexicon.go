// Package lexicon loads and compiles the business vocabulary from the embedded lexicon.json.
// It prepares the terminology, entity and currency tables, the ordered intent rules, the
// extractor triggers, the shortcut predicates and the table profiles used by synthesis
package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/google/cel-go/cel"
)

//go:embed lexicon.json
var embedded []byte

type rawTerm struct {
	Key       string `json:"key"`
	Expansion string `json:"expansion"`
}

type rawEntity struct {
	Surface string     `json:"surface"`
	Kind    EntityKind `json:"kind"`
}

type rawCurrencies struct {
	Default string            `json:"default"`
	Aliases map[string]string `json:"aliases"`
	Names   map[string]string `json:"names"`
}

type rawIntent struct {
	Pattern string `json:"pattern"`
	Intent  Intent `json:"intent"`
}

type rawShortcut struct {
	Name string `json:"name"`
	When string `json:"when"`
	SQL  string `json:"sql"`
}

type rawLexicon struct {
	Version         int            `json:"version"`
	Terms           []rawTerm      `json:"terms"`
	Entities        []rawEntity    `json:"entities"`
	Currencies      rawCurrencies  `json:"currencies"`
	Substitutions   []Substitution `json:"substitutions"`
	Intents         []rawIntent    `json:"intents"`
	Signals         Triggers       `json:"signals"`
	Shortcuts       []rawShortcut  `json:"shortcuts"`
	Tables          []Table        `json:"tables"`
	DefaultTable    string         `json:"default_table"`
	AmountThreshold string         `json:"amount_threshold"`
	RowLimit        int            `json:"row_limit"`
}

// Lexicon is the compiled, read-only vocabulary shared by every translation.
// Accessors hand out copies so callers cannot mutate the tables after Load
type Lexicon struct {
	version int

	terms    map[string]TermEntry // upper-cased key -> entry
	termList []TermEntry          // sorted by key

	entities map[string]EntityKind // lower-cased surface -> kind

	currencyDefault string
	currencyAliases map[string]string // lower-cased alias -> ISO code
	currencyNames   map[string]string // ISO code -> display name

	substitutions []Substitution
	intents       []IntentRule
	triggers      Triggers
	shortcuts     []Shortcut

	tables       []Table
	defaultTable Table

	amountThreshold string
	rowLimit        int
}

// Load returns the compiled lexicon from the embedded lexicon.json
func Load() (*Lexicon, error) { return Parse(embedded) }

// Parse compiles a lexicon definition. Every regexp and CEL predicate is compiled here,
// so a returned Lexicon never fails at translation time
func Parse(data []byte) (*Lexicon, error) {
	var rl rawLexicon
	if err := json.Unmarshal(data, &rl); err != nil {
		return nil, fmt.Errorf("lexicon: parse: %w", err)
	}
	if rl.Version != 1 {
		return nil, fmt.Errorf("lexicon: unsupported version %d (want 1)", rl.Version)
	}

	lx := &Lexicon{
		version:         rl.Version,
		terms:           make(map[string]TermEntry, len(rl.Terms)),
		entities:        make(map[string]EntityKind, len(rl.Entities)),
		currencyAliases: make(map[string]string, len(rl.Currencies.Aliases)),
		currencyNames:   make(map[string]string, len(rl.Currencies.Names)),
		amountThreshold: strings.TrimSpace(rl.AmountThreshold),
		rowLimit:        rl.RowLimit,
	}

	// Terminology keys fold to upper case so lookups ignore case on both sides
	for _, t := range rl.Terms {
		key := foldTerm(t.Key)
		if key == "" {
			continue
		}
		if _, dup := lx.terms[key]; dup {
			return nil, fmt.Errorf("lexicon: duplicate term %q", t.Key)
		}
		e := TermEntry{Key: strings.TrimSpace(t.Key), Expansion: t.Expansion}
		lx.terms[key] = e
		lx.termList = append(lx.termList, e)
	}
	sort.Slice(lx.termList, func(i, j int) bool {
		return foldTerm(lx.termList[i].Key) < foldTerm(lx.termList[j].Key)
	})

	for _, e := range rl.Entities {
		s := foldSurface(e.Surface)
		if s == "" {
			continue
		}
		if !e.Kind.Valid() || e.Kind == EntityUnknown {
			return nil, fmt.Errorf("lexicon: entity %q has invalid kind %q", e.Surface, e.Kind)
		}
		lx.entities[s] = e.Kind
	}

	if err := lx.loadCurrencies(rl.Currencies); err != nil {
		return nil, err
	}

	for i, s := range rl.Substitutions {
		if s.From == "" {
			return nil, fmt.Errorf("lexicon: substitution %d has empty source", i)
		}
		if strings.Contains(s.To, s.From) {
			return nil, fmt.Errorf("lexicon: substitution %q -> %q re-matches its own output", s.From, s.To)
		}
		lx.substitutions = append(lx.substitutions, s)
	}

	if len(rl.Intents) == 0 {
		return nil, fmt.Errorf("lexicon: no intent rules")
	}
	for _, r := range rl.Intents {
		if !r.Intent.Valid() {
			return nil, fmt.Errorf("lexicon: rule %q has invalid intent %q", r.Pattern, r.Intent)
		}
		// whole-string contract: author writes the body, we own the anchors
		re, err := regexp.Compile("^(?:" + r.Pattern + ")$")
		if err != nil {
			return nil, fmt.Errorf("lexicon: compile rule %q: %w", r.Pattern, err)
		}
		lx.intents = append(lx.intents, IntentRule{Pattern: r.Pattern, Intent: r.Intent, re: re})
	}

	if err := rl.Signals.validate(); err != nil {
		return nil, err
	}
	lx.triggers = rl.Signals.clone()

	shortcuts, err := compileShortcuts(rl.Shortcuts)
	if err != nil {
		return nil, err
	}
	lx.shortcuts = shortcuts

	if err := lx.loadTables(rl.Tables, rl.DefaultTable); err != nil {
		return nil, err
	}
	if lx.amountThreshold == "" {
		return nil, fmt.Errorf("lexicon: amount_threshold is required")
	}
	if lx.rowLimit <= 0 {
		return nil, fmt.Errorf("lexicon: row_limit must be positive, got %d", lx.rowLimit)
	}

	return lx, nil
}

func (lx *Lexicon) loadCurrencies(rc rawCurrencies) error {
	lx.currencyDefault = strings.ToUpper(strings.TrimSpace(rc.Default))
	if lx.currencyDefault == "" {
		return fmt.Errorf("lexicon: currencies.default is required")
	}
	for alias, code := range rc.Aliases {
		a := foldSurface(alias)
		if a == "" {
			continue
		}
		lx.currencyAliases[a] = strings.ToUpper(strings.TrimSpace(code))
	}
	for code, name := range rc.Names {
		lx.currencyNames[strings.ToUpper(strings.TrimSpace(code))] = name
	}
	if _, ok := lx.currencyNames[lx.currencyDefault]; !ok {
		return fmt.Errorf("lexicon: default currency %q has no display name", lx.currencyDefault)
	}
	return nil
}

func (lx *Lexicon) loadTables(tables []Table, def string) error {
	if len(tables) == 0 {
		return fmt.Errorf("lexicon: no table profiles")
	}
	found := false
	for _, t := range tables {
		if t.Name == "" || t.From == "" || t.Alias == "" || t.Order == "" {
			return fmt.Errorf("lexicon: table %q needs name, from, alias and order", t.Name)
		}
		if len(t.Keywords) == 0 {
			return fmt.Errorf("lexicon: table %q has no keywords", t.Name)
		}
		c := t.clone()
		lx.tables = append(lx.tables, c)
		if t.Name == def {
			lx.defaultTable = c
			found = true
		}
	}
	if !found {
		return fmt.Errorf("lexicon: default table %q is not defined", def)
	}
	return nil
}

// compileShortcuts compiles each predicate once into a CEL program over a single string variable
func compileShortcuts(in []rawShortcut) ([]Shortcut, error) {
	env, err := cel.NewEnv(cel.Variable(shortcutVar, cel.StringType))
	if err != nil {
		return nil, fmt.Errorf("lexicon: cel env: %w", err)
	}
	out := make([]Shortcut, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if s.Name == "" || strings.TrimSpace(s.SQL) == "" {
			return nil, fmt.Errorf("lexicon: shortcut %q needs a name and sql", s.Name)
		}
		if _, dup := seen[s.Name]; dup {
			return nil, fmt.Errorf("lexicon: duplicate shortcut %q", s.Name)
		}
		seen[s.Name] = struct{}{}

		ast, iss := env.Compile(s.When)
		if iss != nil && iss.Err() != nil {
			return nil, fmt.Errorf("lexicon: compile shortcut %q: %w", s.Name, iss.Err())
		}
		if !ast.OutputType().IsExactType(cel.BoolType) {
			return nil, fmt.Errorf("lexicon: shortcut %q must evaluate to bool, got %s", s.Name, ast.OutputType())
		}
		prg, err := env.Program(ast, cel.CostLimit(shortcutCostLimit))
		if err != nil {
			return nil, fmt.Errorf("lexicon: program for shortcut %q: %w", s.Name, err)
		}
		out = append(out, Shortcut{Name: s.Name, When: s.When, SQL: s.SQL, prg: prg})
	}
	return out, nil
}

// Version reports the lexicon definition version
func (lx *Lexicon) Version() int { return lx.version }

// Expand returns the canonical expansion for term, or term unchanged when it is not in the table.
// Only case is folded; surrounding space is part of the key
func (lx *Lexicon) Expand(term string) string {
	if e, ok := lx.terms[strings.ToUpper(term)]; ok {
		return e.Expansion
	}
	return term
}

// Terms lists the terminology table sorted by key
func (lx *Lexicon) Terms() []TermEntry { return append([]TermEntry(nil), lx.termList...) }

// Classify returns the entity kind for a surface form, EntityUnknown when absent.
// Only case is folded
func (lx *Lexicon) Classify(surface string) EntityKind {
	if k, ok := lx.entities[strings.ToLower(surface)]; ok {
		return k
	}
	return EntityUnknown
}

// Entities lists the surface forms registered for kind, sorted
func (lx *Lexicon) Entities(kind EntityKind) []string {
	var out []string
	for s, k := range lx.entities {
		if k == kind {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// NormalizeCurrency maps a currency alias to its ISO code, falling back to the default currency
func (lx *Lexicon) NormalizeCurrency(alias string) string {
	if code, ok := lx.currencyAliases[strings.ToLower(alias)]; ok {
		return code
	}
	return lx.currencyDefault
}

// CurrencyName returns the display name for an ISO code and whether it is known
func (lx *Lexicon) CurrencyName(code string) (string, bool) {
	n, ok := lx.currencyNames[strings.ToUpper(code)]
	return n, ok
}

// Currencies lists the known ISO codes, sorted
func (lx *Lexicon) Currencies() []string {
	out := make([]string, 0, len(lx.currencyNames))
	for code := range lx.currencyNames {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Substitutions returns the ordered normalizer substitutions
func (lx *Lexicon) Substitutions() []Substitution {
	return append([]Substitution(nil), lx.substitutions...)
}

// IntentRules returns the ordered intent rules
func (lx *Lexicon) IntentRules() []IntentRule { return append([]IntentRule(nil), lx.intents...) }

// Triggers returns the extractor keyword lists
func (lx *Lexicon) Triggers() Triggers { return lx.triggers.clone() }

// Shortcuts returns the ordered shortcut cascade
func (lx *Lexicon) Shortcuts() []Shortcut { return append([]Shortcut(nil), lx.shortcuts...) }

// Tables returns table profiles in keyword priority order
func (lx *Lexicon) Tables() []Table {
	out := make([]Table, len(lx.tables))
	for i, t := range lx.tables {
		out[i] = t.clone()
	}
	return out
}

// DefaultTable returns the profile used when no table keyword is present
func (lx *Lexicon) DefaultTable() Table { return lx.defaultTable.clone() }

// AmountThreshold is the literal the amount filter compares against
func (lx *Lexicon) AmountThreshold() string { return lx.amountThreshold }

// RowLimit caps generic synthesis results
func (lx *Lexicon) RowLimit() int { return lx.rowLimit }

// definition keys are trimmed and case folded once at load
func foldTerm(s string) string    { return strings.ToUpper(strings.TrimSpace(s)) }
func foldSurface(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
