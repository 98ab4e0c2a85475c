package vecmap

import "fmt"

// BuildingMode selects how buildings are drawn.
type BuildingMode int

// Building modes.
const (
	// BuildingFlat draws each footprint once with no height effect.
	BuildingFlat BuildingMode = iota

	// BuildingExtruded draws shade, height-banded walls, and roofs to
	// simulate 3D extrusion with 2D primitives.
	BuildingExtruded
)

// String returns the mode name.
func (m BuildingMode) String() string {
	switch m {
	case BuildingFlat:
		return "flat"
	case BuildingExtruded:
		return "extruded"
	default:
		return fmt.Sprintf("BuildingMode(%d)", int(m))
	}
}

func (m BuildingMode) valid() bool {
	return m == BuildingFlat || m == BuildingExtruded
}

// LabelMode selects which labels are drawn.
type LabelMode int

// Label modes.
const (
	// LabelModeOff draws no labels.
	LabelModeOff LabelMode = iota

	// LabelModeAll draws every label, even into occupied regions.
	LabelModeAll

	// LabelModeWhenSpace draws a label only when its region is free.
	LabelModeWhenSpace
)

// String returns the mode name.
func (m LabelMode) String() string {
	switch m {
	case LabelModeOff:
		return "off"
	case LabelModeAll:
		return "all"
	case LabelModeWhenSpace:
		return "when-space"
	default:
		return fmt.Sprintf("LabelMode(%d)", int(m))
	}
}

func (m LabelMode) valid() bool {
	return m == LabelModeOff || m == LabelModeAll || m == LabelModeWhenSpace
}

// defaultJunctionDegree is the incident-part count at which a node
// becomes a junction. The threshold is a heuristic, so Config lets
// callers override it.
const defaultJunctionDegree = 4

// wireframeBackground is the fixed background used in wireframe mode.
var wireframeBackground = Hex("#111111")

// defaultBackground is used when the caller supplies no resolved
// scheme background.
var defaultBackground = Hex("#eeeeee")

// Config carries the per-render configuration. The zero value is a
// valid flat, label-free, overlap-unchecked render.
type Config struct {
	// Wireframe forces the fixed dark background and suppresses all
	// labels, for structural and debug views.
	Wireframe bool

	LabelMode    LabelMode
	BuildingMode BuildingMode

	// Overlap is the occupancy tolerance in canvas units. 0 disables
	// occupancy tracking entirely: everything draws unconditionally.
	Overlap int

	// JunctionDegree overrides the incident-part threshold for
	// junction patches. 0 means the default of 4.
	JunctionDegree int

	// Background is the scheme-resolved background fill. The zero
	// value uses a light default; Wireframe overrides either.
	Background RGBA
}

// Validate reports the first configuration inconsistency. The
// compositor calls it before emitting anything, so an invalid mode
// never produces partial output.
func (c Config) Validate() error {
	if !c.BuildingMode.valid() {
		return fmt.Errorf("unknown building mode %d", int(c.BuildingMode))
	}
	if !c.LabelMode.valid() {
		return fmt.Errorf("unknown label mode %d", int(c.LabelMode))
	}
	if c.Overlap < 0 {
		return fmt.Errorf("negative overlap tolerance %d", c.Overlap)
	}
	if c.JunctionDegree < 0 {
		return fmt.Errorf("negative junction degree %d", c.JunctionDegree)
	}
	return nil
}

// background resolves the effective background fill.
func (c Config) background() RGBA {
	if c.Wireframe {
		return wireframeBackground
	}
	if c.Background.IsZero() {
		return defaultBackground
	}
	return c.Background
}

// junctionDegree resolves the effective junction threshold.
func (c Config) junctionDegree() int {
	if c.JunctionDegree == 0 {
		return defaultJunctionDegree
	}
	return c.JunctionDegree
}
