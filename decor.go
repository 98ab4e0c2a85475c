package vecmap

// Decorative point features drawn between roads and buildings, in a
// fixed relative order independent of marker priorities: trees first,
// then craters, then direction sectors.

var (
	treeColor      = Hex("#98ac64")
	treeLeafColor  = Hex("#688a3c")
	craterRimColor = Hex("#000000")
)

// Tree is a vegetation marker. CrownDiameter, when known, is in
// meters; zero falls back to a nominal crown.
type Tree struct {
	Coord         GeoPoint
	CrownDiameter float64
}

// Draw paints the tree crown, and a smaller leaf dot when the crown
// radius is known precisely.
func (t *Tree) Draw(canvas Canvas, proj *Projector) {
	at := proj.Project(t.Coord)
	scale := proj.Scale(t.Coord)

	radius := t.CrownDiameter / 2
	known := radius > 0
	if !known {
		radius = 2
	}
	canvas.Circle(at.X, at.Y, radius*scale, Fill(treeColor))
	if known {
		canvas.Circle(at.X, at.Y, scale/2, Fill(treeLeafColor))
	}
}

// Crater is a crater-like landform marker drawn as a rim circle.
type Crater struct {
	Coord    GeoPoint
	Diameter float64 // meters
}

// Draw paints the crater rim.
func (c *Crater) Draw(canvas Canvas, proj *Projector) {
	if c.Diameter <= 0 {
		return
	}
	at := proj.Project(c.Coord)
	radius := c.Diameter / 2 * proj.Scale(c.Coord)
	rim := craterRimColor
	rim.A = 0.2
	canvas.Circle(at.X, at.Y, radius, Stroke(rim, 1))
}

// DirectionSector indicates a facing direction (camera, viewpoint) as
// a translucent pie wedge.
type DirectionSector struct {
	Coord     GeoPoint
	Direction float64 // center of the wedge, radians, 0 is east
	Sweep     float64 // angular width, radians
	Radius    float64 // meters
	Color     RGBA    // zero value uses a translucent blue
}

// Draw paints the wedge.
func (d *DirectionSector) Draw(canvas Canvas, proj *Projector) {
	if d.Sweep <= 0 || d.Radius <= 0 {
		return
	}
	at := proj.Project(d.Coord)
	radius := d.Radius * proj.Scale(d.Coord)
	fill := d.Color
	if fill.IsZero() {
		fill = Hex("#2288cc")
		fill.A = 0.3
	}
	sector := BuildPath().
		Sector(at.X, at.Y, radius, d.Direction-d.Sweep/2, d.Sweep).
		Build()
	canvas.Path(sector.String(), Fill(fill))
}
