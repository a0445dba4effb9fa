// Package config reads configuration from namespaced environment variables
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"spamwatch/internal/platform/logger"
)

// Conf is a prefixed view over the environment. A root Conf sees every
// variable; Prefix("ALERT_") narrows the view to one namespace
type Conf struct{ prefix string }

// New returns the root view
func New() Conf { return Conf{} }

// Prefix narrows the view by another prefix segment
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// lookup resolves the full key and its trimmed value
func (c Conf) lookup(key string) (string, string) {
	k := c.prefix + key
	return k, strings.TrimSpace(os.Getenv(k))
}

// MustString returns the value, panicking when it is missing or empty
func (c Conf) MustString(key string) string {
	k, v := c.lookup(key)
	if v == "" {
		logger.Get().Panic().Str("key", k).Msg("missing required env")
	}
	return v
}

// MustInt returns the value as an int, panicking when missing or malformed
func (c Conf) MustInt(key string) int {
	k, s := c.lookup(key)
	if s == "" {
		logger.Get().Panic().Str("key", k).Msg("missing required env")
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		logger.Get().Panic().Str("key", k).Str("value", s).Msg("invalid int value")
	}
	return v
}

// MustPort validates a 1..65535 port and returns it as a listen addr like ":4000"
func (c Conf) MustPort(key string) string {
	s := c.MustString(key)
	if p, err := strconv.Atoi(s); err != nil || p < 1 || p > 65535 {
		logger.Get().Panic().Str("key", c.prefix+key).Str("value", s).Msg("invalid TCP port; expected 1..65535")
	}
	return ":" + s
}

// Require panics unless every listed key is present and non empty
func (c Conf) Require(keys ...string) {
	for _, key := range keys {
		if k, v := c.lookup(key); v == "" {
			logger.Get().Panic().Str("key", k).Msg("missing required env")
		}
	}
}

// MayString returns the value or def when missing
func (c Conf) MayString(key, def string) string {
	if _, v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// MayInt returns the value or def; malformed values warn and fall back
func (c Conf) MayInt(key string, def int) int {
	k, s := c.lookup(key)
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", k).Str("value", s).Int("default", def).Msg("invalid int; using default")
	return def
}

// MayFloat64 returns the value or def; malformed values warn and fall back
func (c Conf) MayFloat64(key string, def float64) float64 {
	k, s := c.lookup(key)
	if s == "" {
		return def
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", k).Str("value", s).Float64("default", def).
		Msg("invalid float64; using default")
	return def
}

// MayBool returns the value or def; malformed values warn and fall back
func (c Conf) MayBool(key string, def bool) bool {
	k, s := c.lookup(key)
	if s == "" {
		return def
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", k).Str("value", s).Bool("default", def).Msg("invalid bool; using default")
	return def
}

// MayDuration returns the value or def; malformed values warn and fall back
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	k, s := c.lookup(key)
	if s == "" {
		return def
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	logger.Get().Warn().Str("key", k).Str("value", s).Dur("default", def).Msg("invalid duration; using default")
	return def
}
