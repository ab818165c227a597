package ax

import (
	"encoding/json"
	"fmt"
)

// ProviderError is the structured failure the native provider embeds in its
// payload instead of returning a tree. The bridge never fails outright, so
// every decode must check for this shape first.
type ProviderError struct {
	Message string `json:"error"`
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error: %s", e.Message)
}

// Decode deserializes a raw provider payload into a Tree.
//
// A payload of the form {"error": "..."} decodes to a *ProviderError.
// Malformed or truncated JSON returns a wrapped decode error. Callers in the
// polling path treat any error as a skipped tick.
func Decode(raw string) (*Tree, error) {
	data := []byte(raw)

	var probe struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &probe); err == nil && probe.Error != "" {
		return nil, &ProviderError{Message: probe.Error}
	}

	var tree Tree
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("decode accessibility payload: %w", err)
	}
	return &tree, nil
}

// Encode serializes a tree back to the provider wire format. Used by tests
// and the render command; Decode(Encode(t)) is structurally equal to t.
func Encode(tree *Tree) (string, error) {
	data, err := json.Marshal(tree)
	if err != nil {
		return "", fmt.Errorf("encode accessibility payload: %w", err)
	}
	return string(data), nil
}
