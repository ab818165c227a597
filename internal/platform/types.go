package platform

import (
	"encoding/json"
	"fmt"
)

// SnapshotOptions scopes a hierarchy snapshot. Empty fields leave that
// dimension unfiltered, giving four call shapes: unfiltered, app-only,
// window-only, and both.
type SnapshotOptions struct {
	App    string // Filter by owning application name
	Window string // Filter by window title
}

// ErrorPayload builds the structured error string the hierarchy surface
// degrades to when a native call cannot be made or fails internally.
// Callers detect it by decoding the payload, never by a Go error.
func ErrorPayload(message string) string {
	data, err := json.Marshal(struct {
		Error string `json:"error"`
	}{Error: message})
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, message)
	}
	return string(data)
}
