//go:build darwin && cgo

package darwin

/*
#cgo LDFLAGS: -laxbridge -framework ApplicationServices -framework CoreFoundation -framework Foundation
#include <stdlib.h>

// Provided by the bundled axbridge library. Each returns a strdup'd buffer
// the caller must free, or NULL on failure.
extern char *get_accessibility_hierarchy(void);
extern char *get_accessibility_hierarchy_filtered(const char *app_name, const char *window_title);
*/
import "C"
import (
	"context"
	"unsafe"

	"github.com/alvea-app/ax-agent/internal/platform"
)

// HierarchyClient implements platform.Hierarchy against the native bridge.
type HierarchyClient struct{}

// NewHierarchyClient creates the macOS hierarchy backend.
func NewHierarchyClient() *HierarchyClient {
	return &HierarchyClient{}
}

// Snapshot calls the native hierarchy provider with zero, one, or two
// filters. The call can block well past a polling tick, so it runs on its
// own goroutine; the caller waits for completion or ctx cancellation. A
// null native result degrades to a structured error payload.
func (c *HierarchyClient) Snapshot(ctx context.Context, opts platform.SnapshotOptions) string {
	if !IsAccessibilityTrusted() {
		return platform.ErrorPayload("accessibility permission not granted")
	}

	// Buffered so the native call never leaks a blocked goroutine if the
	// caller gives up first.
	resultCh := make(chan string, 1)
	go func() {
		resultCh <- fetchHierarchy(opts)
	}()

	select {
	case result := <-resultCh:
		return result
	case <-ctx.Done():
		return platform.ErrorPayload("snapshot cancelled: " + ctx.Err().Error())
	}
}

// fetchHierarchy performs the blocking native call and copies out the
// result. The C buffer is freed on every path.
func fetchHierarchy(opts platform.SnapshotOptions) string {
	var cApp, cWindow *C.char
	if opts.App != "" {
		cApp = C.CString(opts.App)
		defer C.free(unsafe.Pointer(cApp))
	}
	if opts.Window != "" {
		cWindow = C.CString(opts.Window)
		defer C.free(unsafe.Pointer(cWindow))
	}

	var cResult *C.char
	if cApp == nil && cWindow == nil {
		cResult = C.get_accessibility_hierarchy()
	} else {
		cResult = C.get_accessibility_hierarchy_filtered(cApp, cWindow)
	}
	if cResult == nil {
		return platform.ErrorPayload("failed to get accessibility hierarchy")
	}
	defer C.free(unsafe.Pointer(cResult))
	return C.GoString(cResult)
}
