package render

import (
	"image/color"
	"testing"

	"github.com/alvea-app/ax-agent/internal/ax"
)

func TestRenderTree_NoFrames(t *testing.T) {
	tree := &ax.Tree{Roots: []ax.Element{
		{ID: "a", Kind: "AXGroup"},
	}}
	if _, err := RenderTree(tree); err == nil {
		t.Fatal("expected error for tree without framed elements")
	}
}

func TestRenderTree_CanvasCoversFrames(t *testing.T) {
	tree := &ax.Tree{Roots: []ax.Element{
		{
			ID:    "win",
			Kind:  "AXWindow",
			Frame: []float64{100, 100, 200, 150},
			Children: []ax.Element{
				{ID: "field", Kind: "AXTextField", Frame: []float64{120, 130, 80, 24}},
			},
		},
	}}

	img, err := RenderTree(tree)
	if err != nil {
		t.Fatalf("RenderTree: %v", err)
	}

	wantW := 200 + 2*margin
	wantH := 150 + 2*margin
	if got := img.Bounds().Dx(); got != wantW {
		t.Errorf("canvas width = %d, want %d", got, wantW)
	}
	if got := img.Bounds().Dy(); got != wantH {
		t.Errorf("canvas height = %d, want %d", got, wantH)
	}

	// The window frame's top-left corner lands at the margin offset.
	if got := img.RGBAAt(margin, margin); got != frameColor {
		t.Errorf("frame corner pixel = %v, want %v", got, frameColor)
	}

	// The text field's outline uses the input highlight colour.
	if got := img.RGBAAt(20+margin, 30+margin); got != inputColor {
		t.Errorf("input corner pixel = %v, want %v", got, inputColor)
	}
}

func TestRenderTree_SelectionMark(t *testing.T) {
	tree := &ax.Tree{Roots: []ax.Element{
		{
			ID:    "field",
			Kind:  "AXTextArea",
			Frame: []float64{0, 0, 300, 200},
			Attributes: map[string]string{
				ax.SelectedTextBoundsKey: "40, 50, 60, 20",
			},
		},
	}}

	img, err := RenderTree(tree)
	if err != nil {
		t.Fatalf("RenderTree: %v", err)
	}

	// Selection rectangle corner, shifted by the canvas margin.
	if got := img.RGBAAt(40+margin, 50+margin); got != selectionColor {
		t.Errorf("selection corner pixel = %v, want %v", got, selectionColor)
	}
}

func TestDrawRectangle_ClampsToCanvas(t *testing.T) {
	tree := &ax.Tree{Roots: []ax.Element{
		{ID: "r", Kind: "AXWindow", Frame: []float64{0, 0, 10, 10}},
	}}
	img, err := RenderTree(tree)
	if err != nil {
		t.Fatalf("RenderTree: %v", err)
	}

	// Drawing far outside the canvas must not panic or write.
	before := img.RGBAAt(0, 0)
	drawRectangle(img, -100, -100, -50, -50, color.RGBA{R: 1, A: 255})
	drawRectangle(img, 1000, 1000, 2000, 2000, color.RGBA{R: 1, A: 255})
	if got := img.RGBAAt(0, 0); got != before {
		t.Errorf("out-of-bounds draw modified pixel: %v", got)
	}
}
