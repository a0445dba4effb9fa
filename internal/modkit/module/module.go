// Package module holds the module contract and the port registry
package module

import (
	phttp "spamwatch/internal/platform/net/http"
)

// Module mirrors modkit.Module; a sibling copy avoids an import knot when a
// module package also exports its own ports type
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
