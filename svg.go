package vecmap

import (
	"io"

	svg "github.com/ajstarks/svgo/float"
)

// SVGCanvas is the SVG-backed Canvas. Elements are written to the
// underlying writer immediately in call order, which matches the
// append-only contract: nothing is ever reordered or revisited.
type SVGCanvas struct {
	drawing *svg.SVG
	closed  bool
}

// NewSVGCanvas creates an SVG canvas of the given size writing to w.
// The caller must call Close to terminate the document.
func NewSVGCanvas(w io.Writer, width, height float64) *SVGCanvas {
	drawing := svg.New(w)
	drawing.Start(width, height)
	return &SVGCanvas{drawing: drawing}
}

// Rect appends a rectangle.
func (c *SVGCanvas) Rect(x, y, w, h float64, style Style) {
	c.drawing.Rect(x, y, w, h, style.SVG())
}

// Path appends a path.
func (c *SVGCanvas) Path(d string, style Style) {
	c.drawing.Path(d, style.SVG())
}

// Circle appends a circle.
func (c *SVGCanvas) Circle(x, y, r float64, style Style) {
	c.drawing.Circle(x, y, r, style.SVG())
}

// Text appends a text element.
func (c *SVGCanvas) Text(x, y float64, text string, style TextStyle) {
	c.drawing.Text(x, y, text, style.SVG())
}

// BeginGroup opens an opacity group.
func (c *SVGCanvas) BeginGroup(opacity float64) {
	c.drawing.Gstyle("opacity:" + ftoa(opacity))
}

// EndGroup closes the current group.
func (c *SVGCanvas) EndGroup() {
	c.drawing.Gend()
}

// Close terminates the SVG document. Further draw calls are invalid.
// Close is idempotent.
func (c *SVGCanvas) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.drawing.End()
}
