package vecmap

// Contour is one run of geographic coordinates belonging to a figure.
// Closed contours form rings (area boundaries, inner holes); open
// contours are plain lines.
type Contour struct {
	Points []GeoPoint
	Closed bool
}

// StyledFigure is a path-shaped drawing primitive with a resolved
// visual style. Figures are drawn in ascending style priority; the
// compositor guarantees a stable order for equal priorities.
type StyledFigure struct {
	Contours []Contour
	Style    Style
}

// PathData projects the figure's contours and returns SVG path data.
// A figure without usable geometry yields an empty string and is
// skipped by the compositor.
func (f *StyledFigure) PathData(proj *Projector) string {
	builder := BuildPath()
	for _, contour := range f.Contours {
		if len(contour.Points) < 2 {
			continue
		}
		points := make([]Point, len(contour.Points))
		for i, g := range contour.Points {
			points[i] = proj.Project(g)
		}
		if contour.Closed {
			builder.Polygon(points...)
		} else {
			builder.Polyline(points...)
		}
	}
	return builder.Build().String()
}
