// Package strings holds small string helpers shared across the service
package strings

import std "strings"

// IfEmpty substitutes def when in has no elements
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString returns s unless it is blank, in which case it panics with
// name so the missing value is identifiable
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes a route prefix like /spam: exactly one leading
// slash, no trailing slash, and panics on a blank or bare-root input
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// Truncate caps s at max runes; truncated values end in "..." and are
// exactly max runes long
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
