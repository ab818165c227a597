// Package ax models the serialized accessibility tree exchanged with the
// native hierarchy provider and provides the decoding and classification
// logic the rest of the agent is built on.
package ax

// Element is one node of the accessibility hierarchy as reported by the
// native provider. The wire keys are deliberately terse; the provider emits
// large trees at polling cadence.
type Element struct {
	ID         string            `json:"id,omitempty"`      // Stable identifier for re-targeting actions
	Kind       string            `json:"e"`                 // Role/type tag, possibly prefixed (e.g. "AXButton")
	Path       string            `json:"p,omitempty"`       // Position in the tree, diagnostics only
	Depth      *int              `json:"d,omitempty"`       // Depth from the root, 0-based
	Frame      []float64         `json:"f,omitempty"`       // [x, y, width, height] in screen coordinates
	Attributes map[string]string `json:"a,omitempty"`       // Raw attribute values, parsed on demand
	Actions    []string          `json:"m,omitempty"`       // Supported action names, in provider order
	Children   []Element         `json:"c,omitempty"`       // Owned subtree, provider-ordered
	App        string            `json:"app,omitempty"`     // Owning application name
	Focused    *bool             `json:"focused,omitempty"` // Keyboard focus
}

// Tree is the top-level payload: a list of root elements.
type Tree struct {
	Roots []Element `json:"e"`
}

// Clone returns a deep copy of the element. Shared references must never
// escape the selection store, so anything handed to concurrent readers is
// cloned first.
func (el Element) Clone() Element {
	out := el
	if el.Depth != nil {
		d := *el.Depth
		out.Depth = &d
	}
	if el.Focused != nil {
		f := *el.Focused
		out.Focused = &f
	}
	if el.Frame != nil {
		out.Frame = append([]float64(nil), el.Frame...)
	}
	if el.Actions != nil {
		out.Actions = append([]string(nil), el.Actions...)
	}
	if el.Attributes != nil {
		attrs := make(map[string]string, len(el.Attributes))
		for k, v := range el.Attributes {
			attrs[k] = v
		}
		out.Attributes = attrs
	}
	if el.Children != nil {
		children := make([]Element, len(el.Children))
		for i := range el.Children {
			children[i] = el.Children[i].Clone()
		}
		out.Children = children
	}
	return out
}

// Walk visits el and every descendant depth-first in pre-order, preserving
// the child ordering reported by the provider. Traversal stops early if fn
// returns false.
func (el Element) Walk(fn func(Element) bool) bool {
	if !fn(el) {
		return false
	}
	for i := range el.Children {
		if !el.Children[i].Walk(fn) {
			return false
		}
	}
	return true
}
