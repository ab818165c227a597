package poller

import (
	"fmt"

	"github.com/alvea-app/ax-agent/internal/ax"
)

// Candidate is a detected text-selection region eligible for a visual
// indicator. The label is keyed by the element's position in the tick's
// input collection, so labels are stable within a tick but not across ticks.
type Candidate struct {
	Label  string     `yaml:"label"  json:"label"`
	Bounds [4]float64 `yaml:"bounds" json:"bounds"`
}

// candidatesFrom scans the collected input elements for selection bounds
// and returns one candidate per match, in collection order.
func candidatesFrom(inputs []ax.Element) []Candidate {
	var candidates []Candidate
	for idx, el := range inputs {
		bounds, ok := ax.SelectedTextBounds(el.Attributes)
		if !ok {
			continue
		}
		candidates = append(candidates, Candidate{
			Label:  fmt.Sprintf("overlay_%d_selection", idx),
			Bounds: bounds,
		})
	}
	return candidates
}
