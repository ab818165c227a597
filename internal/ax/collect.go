package ax

// CollectInputs returns every input-capable element in el's subtree,
// including el itself, in depth-first pre-order.
func CollectInputs(el Element) []Element {
	var out []Element
	collectInputs(el, &out)
	return out
}

func collectInputs(el Element, out *[]Element) {
	if IsInputKind(el.Kind) {
		*out = append(*out, el)
	}
	for i := range el.Children {
		collectInputs(el.Children[i], out)
	}
}
