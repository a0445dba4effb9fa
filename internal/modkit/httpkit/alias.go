// Package httpkit re-exports the platform http surface for modules, so
// module code never imports internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "spamwatch/internal/platform/net/http"
)

type (
	// Response is the return-style handler response
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is the platform router seam
	Router = phttp.Router
)

// OK wraps data in a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Error wraps err in a response whose status derives from the error code
func Error(err error) Response { return phttp.Error(err) }

// JSON adapts a typed handler, binding and validating the request body first
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler {
	return phttp.JSONHandler(fn)
}

// Call adapts a handler that takes no request body
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.JSONHandlerNoBody(fn)
}

// Handle adapts a Response-returning function directly
func Handle(fn func(*http.Request) Response) Handler {
	return phttp.Handle(fn)
}
