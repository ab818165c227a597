package platform

import (
	"context"
	"fmt"
	"runtime"
)

// Hierarchy fetches serialized accessibility trees from the native
// hierarchy provider.
type Hierarchy interface {
	// Snapshot returns the provider's raw serialized payload for the given
	// scope. On any native failure it returns a structured {"error": "..."}
	// payload rather than a Go error, so callers must always decode the
	// result. The native call may block for longer than a polling tick and
	// runs off the caller's goroutine; ctx is observed only while waiting.
	Snapshot(ctx context.Context, opts SnapshotOptions) string
}

// Actions invokes synthesized input on elements by identifier. Both methods
// mirror the native string-or-null contract: ok is false when the native
// call returned no result.
type Actions interface {
	TypeAction(elementID, text string) (result string, ok bool)
	NamedAction(elementID, actionName string) (result string, ok bool)
}

// Provider bundles the native backends for the current OS.
type Provider struct {
	Hierarchy Hierarchy
	Actions   Actions
}

// ErrUnsupported is returned on platforms without an accessibility backend.
var ErrUnsupported = fmt.Errorf("accessibility backend not available on %s/%s; supported: darwin/amd64, darwin/arm64", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/darwin/init.go for the macOS registration.
var NewProviderFunc func() (*Provider, error)

// RequestPermissionsFunc is set by platform-specific packages via init().
// It triggers the OS accessibility-permission prompt at startup.
var RequestPermissionsFunc func()

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
