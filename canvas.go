package vecmap

import "strings"

// LineCap is the shape of stroked line endpoints.
type LineCap int

// Line cap styles.
const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// String returns the SVG name of the line cap.
func (c LineCap) String() string {
	switch c {
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

// Style describes how a canvas element is painted. A nil Fill or Stroke
// means "none". Opacity values of zero are treated as fully opaque so
// that the zero Style stays usable.
type Style struct {
	Fill        *RGBA
	Stroke      *RGBA
	StrokeWidth float64
	LineCap     LineCap
	Dash        []float64
	FillOpacity float64
	Opacity     float64

	// Priority orders figures sharing a draw stage. Lower values are
	// drawn first, so higher priorities paint on top. Ties keep input
	// order.
	Priority float64
}

// Fill creates a fill-only style.
func Fill(c RGBA) Style {
	fill := c
	return Style{Fill: &fill}
}

// Stroke creates a stroke-only style.
func Stroke(c RGBA, width float64) Style {
	stroke := c
	return Style{Stroke: &stroke, StrokeWidth: width}
}

// SVG serializes the style as an SVG style attribute value with a fixed
// property order, so identical styles are byte-identical.
func (s Style) SVG() string {
	var b strings.Builder
	if s.Fill != nil {
		b.WriteString("fill:")
		b.WriteString(s.Fill.Hex())
		if s.Fill.A < 1 {
			b.WriteString(";fill-opacity:")
			b.WriteString(ftoa(s.Fill.A))
		}
	} else {
		b.WriteString("fill:none")
	}
	if s.FillOpacity > 0 && s.FillOpacity < 1 {
		b.WriteString(";fill-opacity:")
		b.WriteString(ftoa(s.FillOpacity))
	}
	if s.Stroke != nil {
		b.WriteString(";stroke:")
		b.WriteString(s.Stroke.Hex())
		if s.Stroke.A < 1 {
			b.WriteString(";stroke-opacity:")
			b.WriteString(ftoa(s.Stroke.A))
		}
		width := s.StrokeWidth
		if width == 0 {
			width = 1
		}
		b.WriteString(";stroke-width:")
		b.WriteString(ftoa(width))
		if s.LineCap != LineCapButt {
			b.WriteString(";stroke-linecap:")
			b.WriteString(s.LineCap.String())
		}
		if len(s.Dash) > 0 {
			b.WriteString(";stroke-dasharray:")
			for i, d := range s.Dash {
				if i > 0 {
					b.WriteByte(',')
				}
				b.WriteString(ftoa(d))
			}
		}
	}
	if s.Opacity > 0 && s.Opacity < 1 {
		b.WriteString(";opacity:")
		b.WriteString(ftoa(s.Opacity))
	}
	return b.String()
}

// TextStyle describes how a text element is painted.
type TextStyle struct {
	Size      float64 // font size in canvas units; 0 means 10
	Color     RGBA
	Halo      *RGBA // optional stroke painted around glyphs
	HaloWidth float64
	Anchor    string // "start", "middle", "end"; empty means "middle"
}

// SVG serializes the text style as an SVG style attribute value.
func (s TextStyle) SVG() string {
	var b strings.Builder
	size := s.Size
	if size == 0 {
		size = 10
	}
	b.WriteString("font-size:")
	b.WriteString(ftoa(size))
	b.WriteString(";font-family:sans-serif;fill:")
	b.WriteString(s.Color.Hex())
	if s.Halo != nil {
		width := s.HaloWidth
		if width == 0 {
			width = 3
		}
		b.WriteString(";stroke:")
		b.WriteString(s.Halo.Hex())
		b.WriteString(";stroke-width:")
		b.WriteString(ftoa(width))
		b.WriteString(";stroke-linejoin:round;paint-order:stroke")
	}
	anchor := s.Anchor
	if anchor == "" {
		anchor = "middle"
	}
	b.WriteString(";text-anchor:")
	b.WriteString(anchor)
	return b.String()
}

// Canvas is an append-only vector drawing surface. Elements are painted
// in call order; later elements occlude earlier ones. Implementations
// need no validation: callers only pass well-formed geometry.
type Canvas interface {
	// Rect appends a filled or stroked rectangle.
	Rect(x, y, w, h float64, style Style)

	// Path appends a path given as SVG path data. Callers skip empty
	// path data before reaching the canvas.
	Path(d string, style Style)

	// Circle appends a circle.
	Circle(x, y, r float64, style Style)

	// Text appends a text element anchored at the given baseline point.
	Text(x, y float64, text string, style TextStyle)

	// BeginGroup opens a group whose children are composited together
	// with the given opacity. Groups may not nest.
	BeginGroup(opacity float64)

	// EndGroup closes the group opened by BeginGroup.
	EndGroup()
}
