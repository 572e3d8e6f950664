// Package intent classifies normalized questions against the ordered rule set
package intent

import "bizquery/internal/core/lexicon"

// Classifier evaluates whole-string rules in order
type Classifier struct {
	rules []lexicon.IntentRule
}

// New captures the ordered rules from lx
func New(lx *lexicon.Lexicon) *Classifier {
	return &Classifier{rules: lx.IntentRules()}
}

// Classify returns the intent of the first rule matching the entire text, GENERAL_QUERY otherwise
func (c *Classifier) Classify(text string) lexicon.Intent {
	for _, r := range c.rules {
		if r.Match(text) {
			return r.Intent
		}
	}
	return lexicon.IntentGeneral
}
