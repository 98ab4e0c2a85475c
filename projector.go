package vecmap

import "math"

// EquatorLength is the length of the Earth's equator in meters.
const EquatorLength = 40075016.686

// BoundingBox is a geographic region in degrees.
type BoundingBox struct {
	MinLat, MinLon float64
	MaxLat, MaxLon float64
}

// Center returns the middle of the box.
func (b BoundingBox) Center() GeoPoint {
	return GeoPoint{
		Lat: (b.MinLat + b.MaxLat) / 2,
		Lon: (b.MinLon + b.MaxLon) / 2,
	}
}

// Projector maps geographic coordinates onto the canvas using the
// pseudo-Mercator projection and reports the local linear scale (canvas
// units per meter), which grows toward the poles. A Projector is
// immutable after construction.
type Projector struct {
	box     BoundingBox
	ratio   float64 // canvas units per degree of longitude
	equator float64
	top     float64 // projected latitude of the box's north edge
}

// NewProjector creates a projector for a bounding box at a zoom level.
// Zoom follows the usual tiled-map convention: at zoom z the full
// equator spans 2^z * 256 canvas units. Pass EquatorLength unless the
// data uses a non-terrestrial body.
func NewProjector(box BoundingBox, zoom float64, equatorLength float64) *Projector {
	if equatorLength <= 0 {
		equatorLength = EquatorLength
	}
	return &Projector{
		box:     box,
		ratio:   math.Exp2(zoom) * 256 / 360,
		equator: equatorLength,
		top:     mercatorLat(box.MaxLat),
	}
}

// mercatorLat maps a latitude in degrees to pseudo-Mercator degrees.
func mercatorLat(lat float64) float64 {
	return 180 / math.Pi * math.Log(math.Tan(math.Pi/4+lat*math.Pi/360))
}

// Project maps a geographic coordinate to a canvas point.
func (p *Projector) Project(g GeoPoint) Point {
	return Point{
		X: p.ratio * (g.Lon - p.box.MinLon),
		Y: p.ratio * (p.top - mercatorLat(g.Lat)),
	}
}

// Scale returns the local linear scale at a coordinate: canvas units
// per meter of ground distance.
func (p *Projector) Scale(g GeoPoint) float64 {
	return p.ratio * 360 / p.equator / math.Cos(g.Lat*math.Pi/180)
}

// CenterScale returns the local scale at the center of the projected
// region, used where a single representative scale is needed.
func (p *Projector) CenterScale() float64 {
	return p.Scale(p.box.Center())
}

// Size returns the canvas extent covering the bounding box.
func (p *Projector) Size() (width, height float64) {
	width = p.ratio * (p.box.MaxLon - p.box.MinLon)
	height = p.ratio * (p.top - mercatorLat(p.box.MinLat))
	return width, height
}
