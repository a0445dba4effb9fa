package store

import "time"

// Config aggregates backend configuration for Open
type Config struct {
	AppName string

	PG PGConfig
}

// PGConfig holds postgres connectivity and tracing knobs
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// boot-time probing; zero values take the defaults in openPG
	ConnectRetries int
	PingTimeout    time.Duration
}
