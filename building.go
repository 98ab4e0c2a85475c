package vecmap

import (
	"math"
	"sort"
)

// Default building colors, matching common map palettes.
var (
	buildingFacadeColor  = Hex("#d8d0c8")
	buildingOutlineColor = Hex("#c4b698")
)

// Building is a footprint with vertical extent. Height and MinHeight
// are in meters; MinHeight > 0 models elevated structures (skyways,
// building parts starting above ground).
type Building struct {
	Footprint []GeoPoint
	Height    float64
	MinHeight float64

	Color   RGBA // facade fill; zero value uses the default palette
	Outline RGBA
}

func (b *Building) facade() RGBA {
	if b.Color.IsZero() {
		return buildingFacadeColor
	}
	return b.Color
}

func (b *Building) outline() RGBA {
	if b.Outline.IsZero() {
		return buildingOutlineColor
	}
	return b.Outline
}

// ring projects the footprint into canvas space.
func (b *Building) ring(proj *Projector) []Point {
	points := make([]Point, len(b.Footprint))
	for i, g := range b.Footprint {
		points[i] = proj.Project(g)
	}
	return points
}

// Draw paints the footprint flat, with no height effect.
func (b *Building) Draw(canvas Canvas, proj *Projector) {
	if len(b.Footprint) < 3 {
		return
	}
	fill := b.facade()
	stroke := b.outline()
	canvas.Path(BuildPath().Polygon(b.ring(proj)...).Build().String(), Style{
		Fill:        &fill,
		Stroke:      &stroke,
		StrokeWidth: 1,
	})
}

// DrawShade paints the building's ground shadow: the footprint swept
// up to roof level. Shades for all buildings share one low-opacity
// group so overlapping volumes do not compound darkness.
func (b *Building) DrawShade(canvas Canvas, proj *Projector, scale float64) {
	if len(b.Footprint) < 3 {
		return
	}
	ring := b.ring(proj)
	builder := BuildPath().Polygon(ring...)
	shift := Pt(scale*b.Height, scale*b.Height)
	for i := range ring {
		next := (i + 1) % len(ring)
		builder.Polygon(
			ring[i],
			ring[i].Add(shift),
			ring[next].Add(shift),
			ring[next],
		)
	}
	canvas.Path(builder.Build().String(), Fill(Black))
}

// DrawWalls paints the wall band between bottom and top (meters) for
// every footprint edge. The vertical offset on the canvas is height
// times scale; wall fills darken with the edge's facing angle so
// adjacent faces stay distinguishable.
func (b *Building) DrawWalls(canvas Canvas, proj *Projector, top, bottom, scale float64) {
	if len(b.Footprint) < 3 || top <= bottom {
		return
	}
	ring := b.ring(proj)
	lower := Pt(0, -bottom*scale)
	upper := Pt(0, -top*scale)
	for i := range ring {
		next := (i + 1) % len(ring)
		p1, p2 := ring[i], ring[next]
		if p1 == p2 {
			continue
		}
		angle := p2.Sub(p1).Angle()
		fill := b.facade().Shade(wallShadeFactor(angle))
		stroke := fill
		wall := BuildPath().Polygon(
			p1.Add(lower),
			p2.Add(lower),
			p2.Add(upper),
			p1.Add(upper),
		).Build()
		canvas.Path(wall.String(), Style{
			Fill:        &fill,
			Stroke:      &stroke,
			StrokeWidth: 0.5,
		})
	}
}

// wallShadeFactor maps an edge angle to a lightness factor. Horizontal
// edges (walls facing the viewer) stay lightest.
func wallShadeFactor(angle float64) float64 {
	return 0.8 + 0.2*math.Abs(math.Cos(angle))
}

// DrawRoof paints the footprint lifted to the building's height.
func (b *Building) DrawRoof(canvas Canvas, proj *Projector, scale float64) {
	if len(b.Footprint) < 3 {
		return
	}
	ring := b.ring(proj)
	lift := Pt(0, -b.Height*scale)
	for i := range ring {
		ring[i] = ring[i].Add(lift)
	}
	fill := b.facade()
	stroke := b.outline()
	canvas.Path(BuildPath().Polygon(ring...).Build().String(), Style{
		Fill:        &fill,
		Stroke:      &stroke,
		StrokeWidth: 1,
	})
}

// buildingHeights returns the distinct sorted set of height values the
// band loop must visit: every roof height plus every nonzero minimum.
func buildingHeights(buildings []Building) []float64 {
	seen := make(map[float64]bool)
	var heights []float64
	add := func(h float64) {
		if h > 0 && !seen[h] {
			seen[h] = true
			heights = append(heights, h)
		}
	}
	for i := range buildings {
		add(buildings[i].Height)
		add(buildings[i].MinHeight)
	}
	sort.Float64s(heights)
	return heights
}
