// Package render draws classifier output (input-element frames and
// detected text-selection regions) onto an image for diagnostics.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/alvea-app/ax-agent/internal/ax"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// canvas padding around the outermost element frame, in pixels.
const margin = 16

var (
	frameColor     = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	inputColor     = color.RGBA{R: 0, G: 120, B: 255, A: 255}
	selectionColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	textColor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outlineColor   = color.RGBA{R: 0, G: 0, B: 0, A: 200}
	background     = color.RGBA{R: 24, G: 24, B: 24, A: 255}
)

// RenderTree draws every framed element of the tree in outline, highlights
// input-capable elements with their kind, and marks each detected
// text-selection region with its overlay label. Coordinates are shifted so
// the canvas starts at the top-left of the outermost frame.
func RenderTree(tree *ax.Tree) (*image.RGBA, error) {
	minX, minY, maxX, maxY, any := extent(tree)
	if !any {
		return nil, fmt.Errorf("no framed elements to render")
	}

	w := int(maxX-minX) + 2*margin
	h := int(maxY-minY) + 2*margin
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, background)
		}
	}

	offX := int(minX) - margin
	offY := int(minY) - margin

	// Element frames first so selection marks draw on top.
	var inputs []ax.Element
	for i := range tree.Roots {
		tree.Roots[i].Walk(func(el ax.Element) bool {
			if len(el.Frame) == 4 {
				c := frameColor
				if ax.IsInputKind(el.Kind) {
					c = inputColor
				}
				x1 := int(el.Frame[0]) - offX
				y1 := int(el.Frame[1]) - offY
				drawRectangle(img, x1, y1, x1+int(el.Frame[2]), y1+int(el.Frame[3]), c)
				if ax.IsInputKind(el.Kind) {
					drawTextWithOutline(img, el.Kind, x1+int(el.Frame[2])/2, y1+int(el.Frame[3])/2, textColor, outlineColor)
				}
			}
			if ax.IsInputKind(el.Kind) {
				inputs = append(inputs, el)
			}
			return true
		})
	}

	for idx, el := range inputs {
		bounds, ok := ax.SelectedTextBounds(el.Attributes)
		if !ok {
			continue
		}
		x1 := int(bounds[0]) - offX
		y1 := int(bounds[1]) - offY
		x2 := x1 + int(bounds[2])
		y2 := y1 + int(bounds[3])
		drawRectangle(img, x1, y1, x2, y2, selectionColor)
		drawRectangle(img, x1+1, y1+1, x2-1, y2-1, selectionColor)
		label := fmt.Sprintf("overlay_%d_selection", idx)
		drawTextWithOutline(img, label, (x1+x2)/2, y1-8, textColor, outlineColor)
	}

	return img, nil
}

// extent computes the union of all element frames and selection bounds.
func extent(tree *ax.Tree) (minX, minY, maxX, maxY float64, any bool) {
	grow := func(x, y, w, h float64) {
		if !any {
			minX, minY, maxX, maxY = x, y, x+w, y+h
			any = true
			return
		}
		if x < minX {
			minX = x
		}
		if y < minY {
			minY = y
		}
		if x+w > maxX {
			maxX = x + w
		}
		if y+h > maxY {
			maxY = y + h
		}
	}
	for i := range tree.Roots {
		tree.Roots[i].Walk(func(el ax.Element) bool {
			if len(el.Frame) == 4 {
				grow(el.Frame[0], el.Frame[1], el.Frame[2], el.Frame[3])
			}
			if b, ok := ax.SelectedTextBounds(el.Attributes); ok {
				grow(b[0], b[1], b[2], b[3])
			}
			return true
		})
	}
	return
}

func isWithinBounds(bounds image.Rectangle, x, y int) bool {
	return x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y
}

// drawRectangle draws a rectangle outline, clamped to the image bounds.
func drawRectangle(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()
	if x1 < bounds.Min.X {
		x1 = bounds.Min.X
	}
	if y1 < bounds.Min.Y {
		y1 = bounds.Min.Y
	}
	if x2 > bounds.Max.X {
		x2 = bounds.Max.X
	}
	if y2 > bounds.Max.Y {
		y2 = bounds.Max.Y
	}
	if x2 <= x1 || y2 <= y1 {
		return
	}

	for x := x1; x < x2; x++ {
		if isWithinBounds(bounds, x, y1) {
			img.Set(x, y1, c)
		}
		if isWithinBounds(bounds, x, y2-1) {
			img.Set(x, y2-1, c)
		}
	}
	for y := y1; y < y2; y++ {
		if isWithinBounds(bounds, x1, y) {
			img.Set(x1, y, c)
		}
		if isWithinBounds(bounds, x2-1, y) {
			img.Set(x2-1, y, c)
		}
	}
}

// drawTextWithOutline draws text centered at (x, y) with a one-pixel
// outline for contrast against arbitrary backgrounds.
func drawTextWithOutline(img *image.RGBA, text string, x, y int, textColor, outlineColor color.Color) {
	// basicfont.Face7x13: ~7px per character, 13px tall.
	offsetX := x - len(text)*7/2
	offsetY := y - 13/2

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(outlineColor),
				Face: basicfont.Face7x13,
				Dot: fixed.Point26_6{
					X: fixed.Int26_6((offsetX + dx) * 64),
					Y: fixed.Int26_6((offsetY + dy) * 64),
				},
			}
			d.DrawString(text)
		}
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(offsetX * 64),
			Y: fixed.Int26_6(offsetY * 64),
		},
	}
	d.DrawString(text)
}
