package module

import (
	"time"

	"bizquery/internal/platform/config"
)

// Options bounds execution of generated SQL
type Options struct {
	RowLimit int
	Timeout  time.Duration
}

// FromConfig reads CORE_QUERY_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	qc := cfg.Prefix("CORE_QUERY_")
	return Options{
		RowLimit: qc.MayIntIn("ROW_LIMIT", 200, 1, 10000),
		Timeout:  qc.MayDuration("TIMEOUT", 5*time.Second),
	}
}
