// Package strings holds small string and slice helpers used by wiring code
package strings

import std "strings"

// IfEmpty returns def when in has no elements
func IfEmpty[T any](in, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString returns s, panicking with "<name> is required" when s is blank
func MustString(s, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes a mount path to a single leading slash and no trailing slash.
// The bare root is rejected
func MustPrefix(s string) string {
	p := "/" + std.Trim(std.TrimSpace(s), "/ ")
	if p == "/" {
		panic("root path is required")
	}
	return p
}
