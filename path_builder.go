package vecmap

import "math"

// PathBuilder provides a fluent interface for path construction.
// All methods return the builder for chaining.
type PathBuilder struct {
	path *Path
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{path: NewPath()}
}

// MoveTo moves to a new position.
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	b.path.MoveTo(x, y)
	return b
}

// LineTo draws a line to a position.
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	b.path.LineTo(x, y)
	return b
}

// QuadTo draws a quadratic Bezier curve.
func (b *PathBuilder) QuadTo(cx, cy, x, y float64) *PathBuilder {
	b.path.QuadraticTo(cx, cy, x, y)
	return b
}

// CubicTo draws a cubic Bezier curve.
func (b *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathBuilder {
	b.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
	return b
}

// Close closes the current subpath.
func (b *PathBuilder) Close() *PathBuilder {
	b.path.Close()
	return b
}

// Polyline adds connected line segments through the given points.
func (b *PathBuilder) Polyline(points ...Point) *PathBuilder {
	for i, pt := range points {
		if i == 0 {
			b.path.MoveTo(pt.X, pt.Y)
		} else {
			b.path.LineTo(pt.X, pt.Y)
		}
	}
	return b
}

// Polygon adds a closed ring through the given points.
func (b *PathBuilder) Polygon(points ...Point) *PathBuilder {
	if len(points) == 0 {
		return b
	}
	b.Polyline(points...)
	b.path.Close()
	return b
}

// Circle adds a circle approximated by four cubic Bezier segments.
func (b *PathBuilder) Circle(cx, cy, r float64) *PathBuilder {
	k := 0.5522847498 * r // Control point distance for circle approximation

	b.path.MoveTo(cx+r, cy)
	b.path.CubicTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	b.path.CubicTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	b.path.CubicTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	b.path.CubicTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	b.path.Close()
	return b
}

// Sector adds a filled pie wedge centered on (cx, cy) spanning the
// angular range [from, from+sweep). The arc is approximated by line
// segments at a fixed angular step so path data stays arc-free.
func (b *PathBuilder) Sector(cx, cy, r, from, sweep float64) *PathBuilder {
	const step = math.Pi / 18 // 10 degrees

	b.path.MoveTo(cx, cy)
	segments := int(math.Ceil(math.Abs(sweep) / step))
	if segments < 1 {
		segments = 1
	}
	for i := 0; i <= segments; i++ {
		a := from + sweep*float64(i)/float64(segments)
		b.path.LineTo(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	b.path.Close()
	return b
}

// Build returns the constructed path.
func (b *PathBuilder) Build() *Path {
	return b.path
}
