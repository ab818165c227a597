package ax

import (
	"errors"
	"reflect"
	"testing"
)

func TestDecode_SimpleTree(t *testing.T) {
	raw := `{"e":[{"e":"AXButton","a":{"AXSelectedTextBounds":"5,5,100,20"},"app":"Notes"}]}`
	tree, err := Decode(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(tree.Roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(tree.Roots))
	}
	root := tree.Roots[0]
	if root.Kind != "AXButton" {
		t.Errorf("kind = %q, want AXButton", root.Kind)
	}
	if root.App != "Notes" {
		t.Errorf("app = %q, want Notes", root.App)
	}
	if root.Attributes[SelectedTextBoundsKey] != "5,5,100,20" {
		t.Errorf("attributes = %v", root.Attributes)
	}
}

func TestDecode_ProviderError(t *testing.T) {
	_, err := Decode(`{"error": "Failed to get accessibility hierarchy"}`)
	if err == nil {
		t.Fatal("expected error")
	}
	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *ProviderError", err)
	}
	if perr.Message != "Failed to get accessibility hierarchy" {
		t.Errorf("message = %q", perr.Message)
	}
}

func TestDecode_Malformed(t *testing.T) {
	malformed := []string{
		"",
		"{",
		`{"e": "not a list"}`,
		`{"e":[{"e":`,
	}
	for _, raw := range malformed {
		if _, err := Decode(raw); err == nil {
			t.Errorf("Decode(%q) should fail", raw)
		}
	}
}

func TestDecode_EmptyTree(t *testing.T) {
	tree, err := Decode(`{"e":[]}`)
	if err != nil {
		t.Fatal(err)
	}
	if len(tree.Roots) != 0 {
		t.Errorf("got %d roots, want 0", len(tree.Roots))
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	depth := 1
	focused := true
	tree := &Tree{
		Roots: []Element{
			{
				ID:   "el-1",
				Kind: "AXWindow",
				Path: "window[0]",
				App:  "Notes",
				Children: []Element{
					{
						ID:         "el-2",
						Kind:       "AXTextField",
						Depth:      &depth,
						Frame:      []float64{10, 20, 300, 24},
						Attributes: map[string]string{"AXTitle": "Search", SelectedTextBoundsKey: "12,22,40,14"},
						Actions:    []string{"AXPress", "AXConfirm"},
						Focused:    &focused,
					},
					{ID: "el-3", Kind: "AXButton"},
				},
			},
			{Kind: "AXGroup", App: "Notes"},
		},
	}

	raw, err := Encode(tree)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := Decode(raw)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(tree, decoded) {
		t.Errorf("round trip mismatch:\n got %#v\nwant %#v", decoded, tree)
	}
}

func TestClone_Isolation(t *testing.T) {
	el := Element{
		ID:         "el-1",
		Kind:       "AXWindow",
		Attributes: map[string]string{"AXTitle": "Original"},
		Frame:      []float64{1, 2, 3, 4},
		Children:   []Element{{Kind: "AXButton", Actions: []string{"AXPress"}}},
	}

	clone := el.Clone()
	clone.Attributes["AXTitle"] = "Mutated"
	clone.Frame[0] = 99
	clone.Children[0].Kind = "AXSlider"
	clone.Children[0].Actions[0] = "AXCancel"

	if el.Attributes["AXTitle"] != "Original" {
		t.Error("clone shares attribute map")
	}
	if el.Frame[0] != 1 {
		t.Error("clone shares frame slice")
	}
	if el.Children[0].Kind != "AXButton" {
		t.Error("clone shares children")
	}
	if el.Children[0].Actions[0] != "AXPress" {
		t.Error("clone shares child action slice")
	}
}
