// Package normalize provides the deterministic text normalizer that feeds the translator
// Pipeline order
// 1 Scrub invalid UTF-8 and control characters
// 2 Lower-case (Unicode aware)
// 3 Trim surrounding whitespace
// 4 Ordered literal phrase substitutions, repeated until nothing changes
package normalize

import (
	"strings"
	"sync"

	"bizquery/internal/core/lexicon"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalizer is concurrency safe; casers come from the pool below
type Normalizer struct {
	subs []lexicon.Substitution
}

// pool of lower-casers, a cases.Caser keeps state between calls
var lowerPool = sync.Pool{
	New: func() any {
		c := cases.Lower(language.Und)
		return &c
	},
}

// New constructs a Normalizer applying subs in order
func New(subs []lexicon.Substitution) *Normalizer {
	return &Normalizer{subs: append([]lexicon.Substitution(nil), subs...)}
}

// Normalize returns the normalized form of s following the pipeline described above
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}

	// 1 scrub
	s = Scrub(s)

	// 2 lower-case via pooled caser then reset and return it
	c := lowerPool.Get().(*cases.Caser)
	s = c.String(s)
	c.Reset()
	lowerPool.Put(c)

	// 3 trim
	s = strings.TrimSpace(s)

	// 4 substitutions to a fixpoint; a later pass catches phrases an earlier replacement
	// stitched together (e.g. "give meell me" -> "selectell me"). With the shipped
	// lexicon every change after the first pass shrinks the text, so len(s) passes suffice
	s = n.apply(s)
	for limit := len(s); limit > 0; limit-- {
		next := n.apply(s)
		if next == s {
			break
		}
		s = next
	}

	return strings.TrimSpace(s)
}

// apply runs one ordered pass; later substitutions see the output of earlier ones
func (n *Normalizer) apply(s string) string {
	for _, sub := range n.subs {
		if strings.Contains(s, sub.From) {
			s = strings.ReplaceAll(s, sub.From, sub.To)
		}
	}
	return s
}
