//go:build darwin && cgo

package darwin

/*
#cgo LDFLAGS: -laxbridge -framework ApplicationServices -framework CoreFoundation -framework Foundation
#include <stdlib.h>

// Provided by the bundled axbridge library. Each returns a strdup'd buffer
// the caller must free, or NULL when the action could not be performed.
extern char *perform_type_action(const char *element_id, const char *text);
extern char *perform_named_action(const char *element_id, const char *action_name);
*/
import "C"
import "unsafe"

// ActionClient implements platform.Actions against the native bridge.
type ActionClient struct{}

// NewActionClient creates the macOS action backend.
func NewActionClient() *ActionClient {
	return &ActionClient{}
}

// TypeAction synthesizes text entry on the element. ok is false when the
// native call returned NULL.
func (c *ActionClient) TypeAction(elementID, text string) (string, bool) {
	cID := C.CString(elementID)
	defer C.free(unsafe.Pointer(cID))
	cText := C.CString(text)
	defer C.free(unsafe.Pointer(cText))

	return takeCString(C.perform_type_action(cID, cText))
}

// NamedAction invokes an arbitrary named accessibility action on the
// element. ok is false when the native call returned NULL.
func (c *ActionClient) NamedAction(elementID, actionName string) (string, bool) {
	cID := C.CString(elementID)
	defer C.free(unsafe.Pointer(cID))
	cAction := C.CString(actionName)
	defer C.free(unsafe.Pointer(cAction))

	return takeCString(C.perform_named_action(cID, cAction))
}

// takeCString copies a native result buffer into a Go string and frees it.
func takeCString(cstr *C.char) (string, bool) {
	if cstr == nil {
		return "", false
	}
	defer C.free(unsafe.Pointer(cstr))
	return C.GoString(cstr), true
}
