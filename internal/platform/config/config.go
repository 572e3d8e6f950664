// Package config reads typed settings from environment variables
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"bizquery/internal/platform/logger"
)

// Conf is a namespaced view over environment variables, e.g. Prefix("CORE_API_")
type Conf struct{ prefix string }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// key composes the fully-qualified env var name
func (c Conf) key(k string) string { return c.prefix + k }

// lookup returns the trimmed value and whether it is non-empty
func (c Conf) lookup(k string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(c.key(k)))
	return v, v != ""
}

// MustString panics when the key is missing or empty
func (c Conf) MustString(key string) string {
	v, ok := c.lookup(key)
	if !ok {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required env")
	}
	return v
}

// MayString returns the value or def when missing
func (c Conf) MayString(key, def string) string {
	if v, ok := c.lookup(key); ok {
		return v
	}
	return def
}

// MayInt returns the value or def when missing; invalid values log and fall back to def
func (c Conf) MayInt(key string, def int) int {
	return mayParse(c, key, def, strconv.Atoi)
}

// MayIntIn is MayInt clamped to [lo, hi]; out of range values log and are clamped
func (c Conf) MayIntIn(key string, def, lo, hi int) int {
	v := c.MayInt(key, def)
	clamped := min(max(v, lo), hi)
	if clamped != v {
		logger.Get().Warn().Str("key", c.key(key)).Int("value", v).Int("clamped", clamped).Msg("value out of range")
	}
	return clamped
}

// MayBool returns the value or def when missing; invalid values log and fall back to def
func (c Conf) MayBool(key string, def bool) bool {
	return mayParse(c, key, def, strconv.ParseBool)
}

// MayDuration returns the value or def when missing; accepts 250ms, 5s, 1h
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return mayParse(c, key, def, time.ParseDuration)
}

// MayCSV splits a comma-separated value, dropping blanks; def when nothing remains
func (c Conf) MayCSV(key string, def []string) []string {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	var out []string
	for p := range strings.SplitSeq(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func mayParse[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Interface("default", def).Msg("invalid value; using default")
		return def
	}
	return v
}
