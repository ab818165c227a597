package ax

// Attribute keys the provider uses for human-readable element text.
const (
	titleAttr = "AXTitle"
	labelAttr = "AXLabel"
	valueAttr = "AXValue"
)

// Summary is the flat element view returned to the hosting shell: just
// enough to present an interactive element without shipping the whole tree.
type Summary struct {
	Role  string  `yaml:"role"            json:"role"`
	Label string  `yaml:"label,omitempty" json:"label"`
	Value string  `yaml:"value,omitempty" json:"value"`
	X     float64 `yaml:"x"               json:"x"`
	Y     float64 `yaml:"y"               json:"y"`
}

// Summarize flattens the input-capable elements of a tree into summaries,
// depth-first pre-order across roots. Label falls back from AXTitle to
// AXLabel, matching provider conventions.
func Summarize(roots []Element) []Summary {
	summaries := []Summary{}
	for i := range roots {
		roots[i].Walk(func(el Element) bool {
			if !IsInputKind(el.Kind) {
				return true
			}
			s := Summary{Role: el.Kind}
			if label, ok := el.Attributes[titleAttr]; ok && label != "" {
				s.Label = label
			} else {
				s.Label = el.Attributes[labelAttr]
			}
			s.Value = el.Attributes[valueAttr]
			if len(el.Frame) == 4 {
				s.X = el.Frame[0]
				s.Y = el.Frame[1]
			}
			summaries = append(summaries, s)
			return true
		})
	}
	return summaries
}
