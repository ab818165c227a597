package ax

import "testing"

func TestCollectInputs_PreOrder(t *testing.T) {
	root := Element{
		ID:   "win",
		Kind: "AXWindow",
		Children: []Element{
			{
				ID:   "grp",
				Kind: "AXGroup",
				Children: []Element{
					{ID: "field", Kind: "AXTextField"},
					{ID: "label", Kind: "AXStaticText"},
				},
			},
			{ID: "btn", Kind: "AXButton"},
			{
				ID:   "slider",
				Kind: "AXSlider",
				Children: []Element{
					{ID: "nested-btn", Kind: "AXButton"},
				},
			},
		},
	}

	inputs := CollectInputs(root)
	wantOrder := []string{"field", "btn", "slider", "nested-btn"}
	if len(inputs) != len(wantOrder) {
		t.Fatalf("got %d inputs, want %d", len(inputs), len(wantOrder))
	}
	for i, want := range wantOrder {
		if inputs[i].ID != want {
			t.Errorf("inputs[%d].ID = %q, want %q", i, inputs[i].ID, want)
		}
	}
}

func TestCollectInputs_RootItself(t *testing.T) {
	root := Element{ID: "btn", Kind: "AXButton"}
	inputs := CollectInputs(root)
	if len(inputs) != 1 || inputs[0].ID != "btn" {
		t.Errorf("got %v, want the root itself", inputs)
	}
}

func TestCollectInputs_NoInputs(t *testing.T) {
	root := Element{
		Kind: "AXWindow",
		Children: []Element{
			{Kind: "AXGroup", Children: []Element{{Kind: "AXStaticText"}}},
		},
	}
	if inputs := CollectInputs(root); len(inputs) != 0 {
		t.Errorf("got %d inputs, want 0", len(inputs))
	}
}

func TestWalk_StopsEarly(t *testing.T) {
	root := Element{
		ID:   "a",
		Kind: "AXGroup",
		Children: []Element{
			{ID: "b", Kind: "AXGroup"},
			{ID: "c", Kind: "AXGroup"},
		},
	}
	var visited []string
	root.Walk(func(el Element) bool {
		visited = append(visited, el.ID)
		return el.ID != "b"
	})
	if len(visited) != 2 || visited[0] != "a" || visited[1] != "b" {
		t.Errorf("visited = %v, want [a b]", visited)
	}
}
