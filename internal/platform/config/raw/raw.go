// Package raw is the bootstrap env reader. It deliberately has no logger
// dependency so the logger itself can configure from it without a cycle
package raw

import (
	"os"
	"strings"
)

// Conf is a prefixed view over the environment, mirroring config.Conf
type Conf struct{ prefix string }

// New returns the root view
func New() Conf { return Conf{} }

// Prefix narrows the view by another prefix segment
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Get returns the trimmed value or def when missing
func (c Conf) Get(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(c.prefix + key)); v != "" {
		return v
	}
	return def
}

// GetBool accepts 1/true/yes as true, anything else as false
func (c Conf) GetBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(c.prefix + key)))
	if v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "yes"
}

// GetInt parses a non-negative decimal; malformed input yields def
func (c Conf) GetInt(key string, def int) int {
	s := strings.TrimSpace(os.Getenv(c.prefix + key))
	if s == "" {
		return def
	}
	n := 0
	for _, ch := range []byte(s) {
		if ch < '0' || ch > '9' {
			return def
		}
		n = n*10 + int(ch-'0')
	}
	return n
}
