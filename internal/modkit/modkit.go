package modkit

import (
	phttp "spamwatch/internal/platform/net/http"
)

// Module is the surface the API composer needs from every module.
// Kept tiny so modules stay decoupled from each other
type Module interface {
	// MountRoutes attaches the module's routes to the given router
	MountRoutes(r phttp.Router)
	// Ports exposes the module's cross-wiring port set, nil when none
	Ports() any
	// Name identifies the module in logs and the registry
	Name() string
}

// Builder is the conventional shape of a module constructor
type Builder func(Deps, ...Option) Module
