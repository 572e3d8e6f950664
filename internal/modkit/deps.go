package modkit

import (
	"bizquery/internal/core/lexicon"
	"bizquery/internal/core/translate"
	"bizquery/internal/modkit/repokit"
	"bizquery/internal/platform/config"
	"bizquery/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// PG is nil when query execution is disabled
	PG repokit.TxRunner

	Lexicon    *lexicon.Lexicon
	Translator *translate.Translator
}

// CanExecute reports whether generated SQL can be run against Postgres
func (d Deps) CanExecute() bool { return d.PG != nil }
