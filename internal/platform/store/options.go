package store

import "bizquery/internal/platform/logger"

// Option mutates Store during Open
type Option func(*Store) error

// WithLogger sets the logger for connect retries and SQL tracing. Without it
// Open uses the "store" component logger
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		s.hasLog = true
		return nil
	}
}
