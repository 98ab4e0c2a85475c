package vecmap

import (
	"math"
	"sort"
)

// laneWidth is the assumed width of a single traffic lane in meters.
const laneWidth = 3.7

// Road is a linear road feature. Roads are grouped by Layer and drawn
// per layer: every border stroke first, then every fill stroke, which
// makes shared edges between adjacent same-layer roads look continuous.
type Road struct {
	Nodes []GeoPoint
	Lanes int
	Width float64 // total width in meters; 0 derives it from Lanes

	// Layer is an elevation index: bridges above zero, tunnels below.
	// Fractional layers are allowed.
	Layer float64

	Color       RGBA
	BorderColor RGBA
	Dash        []float64
}

// widthMeters returns the road's total width in meters.
func (r *Road) widthMeters() float64 {
	if r.Width > 0 {
		return r.Width
	}
	lanes := r.Lanes
	if lanes < 1 {
		lanes = 1
	}
	return float64(lanes) * laneWidth
}

// Draw strokes the road's centerline with the given color. Extra
// widens the stroke on each side, which is how borders are produced:
// the border pass draws the same geometry slightly wider underneath.
func (r *Road) Draw(canvas Canvas, proj *Projector, color RGBA, extra float64) {
	if len(r.Nodes) < 2 {
		return
	}
	points := make([]Point, len(r.Nodes))
	for i, g := range r.Nodes {
		points[i] = proj.Project(g)
	}
	width := r.widthMeters()*proj.Scale(r.Nodes[0]) + 2*extra

	lineCap := LineCapRound
	if extra > 0 {
		// Butt caps keep border ends flush where roads continue into
		// the next layer group.
		lineCap = LineCapButt
	}
	stroke := color
	canvas.Path(BuildPath().Polyline(points...).Build().String(), Style{
		Stroke:      &stroke,
		StrokeWidth: width,
		LineCap:     lineCap,
		Dash:        r.Dash,
	})
}

// RoadPart is one directed segment end of a road incident to a node,
// in canvas space. Parts exist only while junction geometry is built.
type RoadPart struct {
	Start, End Point
	Lanes      int
	Scale      float64 // local scale at Start, canvas units per meter
	Color      RGBA    // road fill color, inherited by junction patches
}

// width returns the part's stroke width in canvas units.
func (p RoadPart) width() float64 {
	lanes := p.Lanes
	if lanes < 1 {
		lanes = 1
	}
	return float64(lanes) * laneWidth * p.Scale
}

// dir returns the unit direction from Start toward End.
func (p RoadPart) dir() Point {
	return p.End.Sub(p.Start).Normalize()
}

// Intersection is the set of road parts sharing one endpoint. Parts
// are kept in insertion order and by identity, not geometry: two
// parallel parts from different roads both count toward the junction
// degree threshold, which can over-count at shared segments.
type Intersection struct {
	Parts []RoadPart
}

// Patch builds the filled polygon covering the junction gap. Parts are
// ordered by direction angle (ties keep insertion order); each polygon
// corner is the meeting point of one part's left edge with the next
// part's right edge.
func (i *Intersection) Patch() *Path {
	if len(i.Parts) < 2 {
		return NewPath()
	}
	center := i.Parts[0].Start

	ordered := make([]RoadPart, len(i.Parts))
	copy(ordered, i.Parts)
	sort.SliceStable(ordered, func(a, b int) bool {
		return ordered[a].dir().Angle() < ordered[b].dir().Angle()
	})

	maxWidth := 0.0
	for _, part := range ordered {
		maxWidth = math.Max(maxWidth, part.width())
	}

	corners := make([]Point, 0, len(ordered))
	for idx, part := range ordered {
		next := ordered[(idx+1)%len(ordered)]
		left := center.Add(part.dir().Perp().Mul(part.width() / 2))
		right := center.Sub(next.dir().Perp().Mul(next.width() / 2))

		corner, ok := lineIntersect(left, part.dir(), right, next.dir())
		if !ok || corner.Distance(center) > 3*maxWidth {
			// Near-parallel edges (straight-throughs) have no usable
			// crossing; fall back to the midpoint of the edge bases.
			corner = left.Lerp(right, 0.5)
		}
		corners = append(corners, corner)
	}
	return BuildPath().Polygon(corners...).Build()
}

// fillColor returns the patch fill: the color of the widest incident
// part, earliest inserted on ties.
func (i *Intersection) fillColor() RGBA {
	best := RGBA{}
	bestWidth := -1.0
	for _, part := range i.Parts {
		if part.width() > bestWidth {
			bestWidth = part.width()
			best = part.Color
		}
	}
	return best
}

// Draw fills the junction patch.
func (i *Intersection) Draw(canvas Canvas) {
	d := i.Patch().String()
	if d == "" {
		return
	}
	canvas.Path(d, Fill(i.fillColor()))
}

// lineIntersect returns the intersection of two lines given by a point
// and a direction. ok is false when the lines are near parallel.
func lineIntersect(p1, d1, p2, d2 Point) (Point, bool) {
	denom := d1.Cross(d2)
	if math.Abs(denom) < 1e-9 {
		return Point{}, false
	}
	t := p2.Sub(p1).Cross(d2) / denom
	return p1.Add(d1.Mul(t)), true
}

// BuildIntersections walks every road's consecutive node pairs,
// producing the two opposing directed parts per segment, accumulates
// them on the nodes each segment touches, and materializes an
// Intersection for every node whose incident part count reaches the
// degree threshold. Nodes below the threshold are straight-throughs or
// road ends and produce nothing.
//
// Node accumulation order follows first touch, so output is
// deterministic for identical input.
func BuildIntersections(roads []Road, proj *Projector, degree int) []Intersection {
	if degree <= 0 {
		degree = defaultJunctionDegree
	}

	parts := make(map[GeoPoint][]RoadPart)
	order := make([]GeoPoint, 0)

	touch := func(node GeoPoint, part RoadPart) {
		if _, seen := parts[node]; !seen {
			order = append(order, node)
		}
		parts[node] = append(parts[node], part)
	}

	for _, road := range roads {
		for i := 0; i+1 < len(road.Nodes); i++ {
			node1, node2 := road.Nodes[i], road.Nodes[i+1]
			point1 := proj.Project(node1)
			point2 := proj.Project(node2)
			scale := proj.Scale(node1)

			touch(node1, RoadPart{
				Start: point1, End: point2,
				Lanes: road.Lanes, Scale: scale, Color: road.Color,
			})
			touch(node2, RoadPart{
				Start: point2, End: point1,
				Lanes: road.Lanes, Scale: scale, Color: road.Color,
			})
		}
	}

	var intersections []Intersection
	for _, node := range order {
		incident := parts[node]
		if len(incident) < degree {
			continue
		}
		intersections = append(intersections, Intersection{Parts: incident})
	}
	return intersections
}
