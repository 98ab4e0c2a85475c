package vecmap

// iconSize is the side of the square icon cell in canvas units. Icon
// shapes are authored on this grid, centered on the origin.
const iconSize = 16.0

// charWidthFactor estimates glyph advance as a fraction of font size
// for occupancy boxes. Coarse on purpose: labels are suppressed, not
// wrapped, so only the box matters.
const charWidthFactor = 0.6

// Shape is one path of an icon, in icon-local coordinates centered on
// the origin.
type Shape struct {
	Path   *Path
	Offset Point
	Color  RGBA // zero value paints the default dark gray
}

func (s Shape) color() RGBA {
	if s.Color.IsZero() {
		return Hex("#444444")
	}
	return s.Color
}

// Icon is a set of shapes drawn together at one position.
type Icon struct {
	Shapes []Shape
}

// IsEmpty reports whether the icon has nothing to draw.
func (i Icon) IsEmpty() bool {
	return len(i.Shapes) == 0
}

// Draw paints the icon centered at the given canvas position.
func (i Icon) Draw(canvas Canvas, at Point) {
	for _, shape := range i.Shapes {
		translated := shape.Path.Translate(at.X+shape.Offset.X, at.Y+shape.Offset.Y)
		d := translated.String()
		if d == "" {
			continue
		}
		canvas.Path(d, Fill(shape.color()))
	}
}

// Label is one line of text attached to a marker.
type Label struct {
	Text  string
	Color RGBA    // zero value paints black
	Size  float64 // 0 means 10
}

func (l Label) size() float64 {
	if l.Size == 0 {
		return 10
	}
	return l.Size
}

// box estimates the label's canvas footprint centered at a point.
func (l Label) box(center Point) Rect {
	width := float64(len([]rune(l.Text))) * l.size() * charWidthFactor
	return RectAround(center, width, l.size()+2)
}

// Marker is a node rendered as an icon and/or text labels. Markers are
// drawn highest priority first, so later (lower priority) markers are
// the ones suppressed when regions collide.
type Marker struct {
	Position Point // canvas space
	Priority float64
	Icon     Icon   // primary shapes
	Extra    []Icon // secondary icons, laid out under the primary
	Labels   []Label
}

// iconBox is the occupancy footprint of one icon cell at a position.
func iconBox(at Point) Rect {
	return RectAround(at, iconSize, iconSize)
}

// DrawMainShapes draws the marker's primary icon unless its cell is
// already occupied. Drawn cells are marked.
func (m *Marker) DrawMainShapes(canvas Canvas, occupied *Occupied) {
	if m.Icon.IsEmpty() {
		return
	}
	box := iconBox(m.Position)
	if occupied.Check(box) {
		return
	}
	m.Icon.Draw(canvas, m.Position)
	occupied.Mark(box)
}

// DrawExtraShapes draws the marker's secondary icons in a row beneath
// the primary cell. Each icon claims its own cell independently.
func (m *Marker) DrawExtraShapes(canvas Canvas, occupied *Occupied) {
	for index, icon := range m.Extra {
		if icon.IsEmpty() {
			continue
		}
		offset := Pt(
			(float64(index)-float64(len(m.Extra)-1)/2)*iconSize,
			iconSize,
		)
		at := m.Position.Add(offset)
		box := iconBox(at)
		if occupied.Check(box) {
			continue
		}
		icon.Draw(canvas, at)
		occupied.Mark(box)
	}
}

// DrawTexts draws the marker's labels stacked under the icon cell.
// LabelModeWhenSpace skips labels whose box is occupied; LabelModeAll
// draws them regardless but still marks the region. A suppressed label
// does not advance the stack, so the next label takes its place.
func (m *Marker) DrawTexts(canvas Canvas, occupied *Occupied, mode LabelMode) {
	if mode == LabelModeOff {
		return
	}
	baseline := m.Position.Y + iconSize/2 + 8
	for _, label := range m.Labels {
		if label.Text == "" {
			continue
		}
		center := Pt(m.Position.X, baseline-label.size()/2+2)
		box := label.box(center)
		if mode == LabelModeWhenSpace && occupied.Check(box) {
			continue
		}
		halo := White
		canvas.Text(m.Position.X, baseline, label.Text, TextStyle{
			Size:  label.size(),
			Color: label.Color,
			Halo:  &halo,
		})
		occupied.Mark(box)
		baseline += label.size() + 2
	}
}
