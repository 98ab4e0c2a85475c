package vecmap

import "math"

// Occupied tracks which canvas regions are already covered by a drawn
// icon or label. Once a region is marked it stays occupied for the rest
// of the render pass; there is no eviction.
//
// All methods are nil-safe: a nil tracker reports nothing as occupied
// and ignores marks, which is how the compositor represents a disabled
// overlap check.
type Occupied struct {
	width, height int
	overlap       int
	cells         []bool
}

// NewOccupied creates a tracker for a canvas of the given size.
// Overlap is the tolerated overlap in canvas units: marked regions are
// shrunk by this amount on every side, so neighboring elements may
// intrude that far before being suppressed.
func NewOccupied(width, height, overlap int) *Occupied {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Occupied{
		width:   width,
		height:  height,
		overlap: overlap,
		cells:   make([]bool, width*height),
	}
}

// Check reports whether any cell inside the rectangle is occupied.
// Regions outside the canvas are clipped; a fully off-canvas region is
// never occupied.
func (o *Occupied) Check(r Rect) bool {
	if o == nil {
		return false
	}
	x0, y0, x1, y1 := o.clip(r)
	for y := y0; y < y1; y++ {
		row := o.cells[y*o.width : (y+1)*o.width]
		for x := x0; x < x1; x++ {
			if row[x] {
				return true
			}
		}
	}
	return false
}

// Mark records the rectangle, shrunk by the overlap tolerance, as
// occupied. Marking is monotonic: cells are never cleared.
func (o *Occupied) Mark(r Rect) {
	if o == nil {
		return
	}
	x0, y0, x1, y1 := o.clip(r.Inset(float64(o.overlap)))
	for y := y0; y < y1; y++ {
		row := o.cells[y*o.width : (y+1)*o.width]
		for x := x0; x < x1; x++ {
			row[x] = true
		}
	}
}

// clip converts a rectangle to cell index bounds within the canvas.
func (o *Occupied) clip(r Rect) (x0, y0, x1, y1 int) {
	x0 = clampInt(int(math.Floor(r.Min.X)), 0, o.width)
	y0 = clampInt(int(math.Floor(r.Min.Y)), 0, o.height)
	x1 = clampInt(int(math.Ceil(r.Max.X)), 0, o.width)
	y1 = clampInt(int(math.Ceil(r.Max.Y)), 0, o.height)
	return x0, y0, x1, y1
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
