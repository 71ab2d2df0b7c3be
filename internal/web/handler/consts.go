package handler

const (
	// RouterRootPath is the root path of a route group.
	RouterRootPath = "/"

	// APIBasePath prefixes all JSON API routes.
	APIBasePath = "/api/v1"

	// ErrNilACFatalLogMsg is used if the app or cfg pointer is nil.
	ErrNilACFatalLogMsg = "app or cfg is nil"
)
