package vecmap

import (
	"sort"
)

// Scene holds the resolved entity collections produced by an external
// construction stage. The compositor treats every collection as
// read-only.
type Scene struct {
	Figures          []StyledFigure
	Roads            []Road
	Trees            []Tree
	Craters          []Crater
	DirectionSectors []DirectionSector
	Buildings        []Building
	Markers          []Marker
}

// Map composites one Scene onto a Canvas in a fixed painter's order.
// A Map performs strictly sequential render passes; it owns the
// occupancy tracker for the duration of each pass and never exposes it.
type Map struct {
	proj     *Projector
	canvas   Canvas
	cfg      Config
	progress ProgressFunc
}

// NewMap creates a compositor for the given projection, canvas, and
// configuration.
func NewMap(proj *Projector, canvas Canvas, cfg Config, opts ...MapOption) *Map {
	m := &Map{proj: proj, canvas: canvas, cfg: cfg}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// step reports progress, if an observer is installed.
func (m *Map) step(current, total, stepSize int, phase string) {
	if m.progress != nil {
		m.progress(current, total, stepSize, phase)
	}
}

// Draw renders the scene. The order is fixed and load-bearing:
// background, figures by ascending priority, roads per layer (borders
// before fills), trees, craters, direction sectors, buildings, then
// three full passes over priority-sorted markers (main icons, extra
// icons, labels). Each stage completes before the next starts.
//
// The configuration is validated first; an invalid configuration
// returns an error before anything is emitted.
func (m *Map) Draw(scene *Scene) error {
	if err := m.cfg.Validate(); err != nil {
		return err
	}
	log := Logger()

	width, height := m.proj.Size()
	m.canvas.Rect(0, 0, width, height, Fill(m.cfg.background()))

	m.drawFigures(scene.Figures)
	m.drawRoads(scene.Roads)

	log.Debug("drawing decorations",
		"trees", len(scene.Trees), "craters", len(scene.Craters))
	for i := range scene.Trees {
		scene.Trees[i].Draw(m.canvas, m.proj)
	}
	for i := range scene.Craters {
		scene.Craters[i].Draw(m.canvas, m.proj)
	}
	for i := range scene.DirectionSectors {
		scene.DirectionSectors[i].Draw(m.canvas, m.proj)
	}

	m.drawBuildings(scene.Buildings)
	m.drawMarkers(scene.Markers, width, height)
	return nil
}

// drawFigures draws figures in ascending style priority. The sort is
// stable: equal priorities keep input order. Figures with empty path
// data are skipped silently.
func (m *Map) drawFigures(figures []StyledFigure) {
	ordered := make([]StyledFigure, len(figures))
	copy(ordered, figures)
	sort.SliceStable(ordered, func(a, b int) bool {
		return ordered[a].Style.Priority < ordered[b].Style.Priority
	})

	Logger().Debug("drawing ways", "count", len(ordered))
	for index := range ordered {
		m.step(index, len(ordered), 10, "Drawing ways")
		d := ordered[index].PathData(m.proj)
		if d == "" {
			continue
		}
		m.canvas.Path(d, ordered[index].Style)
	}
	m.step(-1, len(ordered), 10, "Drawing ways")
}

// drawRoads draws roads grouped by layer, layers ascending. Within a
// layer every border is drawn before any fill, which renders shared
// edges between touching same-layer roads as one continuous border.
func (m *Map) drawRoads(roads []Road) {
	layered := make(map[float64][]*Road)
	var layers []float64
	for i := range roads {
		layer := roads[i].Layer
		if _, seen := layered[layer]; !seen {
			layers = append(layers, layer)
		}
		layered[layer] = append(layered[layer], &roads[i])
	}
	sort.Float64s(layers)

	Logger().Debug("drawing roads", "count", len(roads), "layers", len(layers))
	for _, layer := range layers {
		group := layered[layer]
		for _, road := range group {
			road.Draw(m.canvas, m.proj, road.BorderColor, 2)
		}
		for _, road := range group {
			road.Draw(m.canvas, m.proj, road.Color, 0)
		}
	}
}

// DrawRoadNetwork draws junction patches for multi-lane intersections:
// every node with at least the configured number of incident directed
// road parts receives one filled patch covering the visual gap between
// lane strokes.
func (m *Map) DrawRoadNetwork(roads []Road) error {
	if err := m.cfg.Validate(); err != nil {
		return err
	}
	intersections := BuildIntersections(roads, m.proj, m.cfg.junctionDegree())
	Logger().Debug("drawing road network",
		"roads", len(roads), "junctions", len(intersections))
	for i := range intersections {
		intersections[i].Draw(m.canvas)
	}
	return nil
}

// drawBuildings draws buildings flat, or as shade, height-banded
// walls, and roofs when extrusion is enabled. Bands are processed in
// ascending height order so taller buildings' walls occlude shorter
// neighbors' roofs where footprints overlap.
func (m *Map) drawBuildings(buildings []Building) {
	if m.cfg.BuildingMode == BuildingFlat {
		for i := range buildings {
			buildings[i].Draw(m.canvas, m.proj)
		}
		return
	}

	scale := m.proj.CenterScale() / 3

	// One shared low-opacity group: a single ground shadow for all
	// volumes at once, so overlaps do not compound.
	m.canvas.BeginGroup(0.1)
	for i := range buildings {
		buildings[i].DrawShade(m.canvas, m.proj, scale)
	}
	m.canvas.EndGroup()

	heights := buildingHeights(buildings)
	Logger().Debug("drawing buildings",
		"count", len(buildings), "bands", len(heights))

	previous := 0.0
	for index, height := range heights {
		m.step(index, len(heights), 1, "Drawing buildings")
		for i := range buildings {
			b := &buildings[i]
			if b.MinHeight < height && height <= b.Height {
				bottom := previous
				if b.MinHeight > bottom {
					bottom = b.MinHeight
				}
				b.DrawWalls(m.canvas, m.proj, height, bottom, scale)
			}
		}
		for i := range buildings {
			if buildings[i].Height == height {
				buildings[i].DrawRoof(m.canvas, m.proj, scale)
			}
		}
		previous = height
	}
	m.step(-1, len(heights), 1, "Drawing buildings")
}

// drawMarkers runs the three marker passes. Markers are sorted by
// descending priority (stable), so the most important markers claim
// canvas space first. Three full passes rather than one pass per
// marker keep a global z-order across categories: every main icon
// below every extra icon, every extra icon below every label.
func (m *Map) drawMarkers(markers []Marker, width, height float64) {
	var occupied *Occupied
	if m.cfg.Overlap != 0 {
		occupied = NewOccupied(int(width), int(height), m.cfg.Overlap)
	}

	ordered := make([]Marker, len(markers))
	copy(ordered, markers)
	sort.SliceStable(ordered, func(a, b int) bool {
		return ordered[a].Priority > ordered[b].Priority
	})

	total := len(ordered) * 3
	Logger().Debug("drawing markers", "count", len(ordered))

	for index := range ordered {
		m.step(index, total, 10, "Drawing main icons")
		ordered[index].DrawMainShapes(m.canvas, occupied)
	}
	for index := range ordered {
		m.step(len(ordered)+index, total, 10, "Drawing extra icons")
		ordered[index].DrawExtraShapes(m.canvas, occupied)
	}
	for index := range ordered {
		m.step(2*len(ordered)+index, total, 10, "Drawing texts")
		if m.cfg.Wireframe || m.cfg.LabelMode == LabelModeOff {
			continue
		}
		ordered[index].DrawTexts(m.canvas, occupied, m.cfg.LabelMode)
	}
	m.step(-1, len(ordered), 10, "Drawing nodes")
}
