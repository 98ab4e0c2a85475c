package vecmap

import (
	"math"
	"strconv"
	"strings"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	p.current = Pt(x, y)
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// IsEmpty reports whether the path contains no drawing elements.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.elements) == 0
}

// Elements returns the path's elements. The returned slice must not be
// modified.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Translate returns a copy of the path shifted by (dx, dy).
func (p *Path) Translate(dx, dy float64) *Path {
	v := Pt(dx, dy)
	out := &Path{
		elements: make([]PathElement, 0, len(p.elements)),
		start:    p.start.Add(v),
		current:  p.current.Add(v),
	}
	for _, e := range p.elements {
		switch e := e.(type) {
		case MoveTo:
			out.elements = append(out.elements, MoveTo{Point: e.Point.Add(v)})
		case LineTo:
			out.elements = append(out.elements, LineTo{Point: e.Point.Add(v)})
		case QuadTo:
			out.elements = append(out.elements, QuadTo{
				Control: e.Control.Add(v),
				Point:   e.Point.Add(v),
			})
		case CubicTo:
			out.elements = append(out.elements, CubicTo{
				Control1: e.Control1.Add(v),
				Control2: e.Control2.Add(v),
				Point:    e.Point.Add(v),
			})
		case Close:
			out.elements = append(out.elements, Close{})
		}
	}
	return out
}

// Bounds returns the bounding box of the path's anchor and control
// points. Control points give a conservative box for curves, which is
// what occupancy checks need.
func (p *Path) Bounds() Rect {
	if p.IsEmpty() {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	extend := func(pt Point) {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	for _, e := range p.elements {
		switch e := e.(type) {
		case MoveTo:
			extend(e.Point)
		case LineTo:
			extend(e.Point)
		case QuadTo:
			extend(e.Control)
			extend(e.Point)
		case CubicTo:
			extend(e.Control1)
			extend(e.Control2)
			extend(e.Point)
		}
	}
	return R(minX, minY, maxX, maxY)
}

// String returns the path as SVG path data ("M 1,2 L 3,4 Z").
// An empty path yields an empty string.
func (p *Path) String() string {
	if p.IsEmpty() {
		return ""
	}
	var b strings.Builder
	for i, e := range p.elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch e := e.(type) {
		case MoveTo:
			b.WriteString("M ")
			writePoint(&b, e.Point)
		case LineTo:
			b.WriteString("L ")
			writePoint(&b, e.Point)
		case QuadTo:
			b.WriteString("Q ")
			writePoint(&b, e.Control)
			b.WriteByte(' ')
			writePoint(&b, e.Point)
		case CubicTo:
			b.WriteString("C ")
			writePoint(&b, e.Control1)
			b.WriteByte(' ')
			writePoint(&b, e.Control2)
			b.WriteByte(' ')
			writePoint(&b, e.Point)
		case Close:
			b.WriteString("Z")
		}
	}
	return b.String()
}

func writePoint(b *strings.Builder, pt Point) {
	b.WriteString(ftoa(pt.X))
	b.WriteByte(',')
	b.WriteString(ftoa(pt.Y))
}

// ftoa formats a coordinate rounded to three decimal places. Rounding
// keeps emitted path data compact and byte-stable across runs.
func ftoa(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // normalize -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
