package ax

import (
	"strconv"
	"strings"
)

// SelectedTextBoundsKey is the attribute carrying a text-selection region as
// a comma-separated "x,y,w,h" string.
const SelectedTextBoundsKey = "AXSelectedTextBounds"

// inputKindSuffixes is the closed set of role suffixes treated as
// input-capable. Suffix rather than exact match because providers may
// namespace the role string.
var inputKindSuffixes = []string{
	"AXTextField",
	"AXTextArea",
	"AXButton",
	"AXCheckBox",
	"AXRadioButton",
	"AXSlider",
	"AXComboBox",
	"AXPopUpButton",
}

// IsInputKind reports whether kind names an input-capable element.
func IsInputKind(kind string) bool {
	for _, suffix := range inputKindSuffixes {
		if strings.HasSuffix(kind, suffix) {
			return true
		}
	}
	return false
}

// SelectedTextBounds parses the selection region out of an attribute map.
// The value must be exactly four comma-separated floats; a missing key,
// wrong count, or non-numeric token yields no bounds, never a partial
// result.
func SelectedTextBounds(attrs map[string]string) ([4]float64, bool) {
	var bounds [4]float64
	raw, ok := attrs[SelectedTextBoundsKey]
	if !ok {
		return bounds, false
	}
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return bounds, false
	}
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return [4]float64{}, false
		}
		bounds[i] = v
	}
	return bounds, true
}

// IsSelfApp reports whether the element belongs to the hosting application
// itself, matched case-insensitively on a substring of the owning app name.
// Used to keep the agent's own UI from ever becoming the selection context.
func IsSelfApp(el Element, selfName string) bool {
	if el.App == "" || selfName == "" {
		return false
	}
	return strings.Contains(strings.ToLower(el.App), strings.ToLower(selfName))
}
