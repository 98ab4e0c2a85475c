// Package vecmap renders styled geographic vector data into a layered
// vector drawing.
//
// # Overview
//
// vecmap is the rendering core of a map drawing pipeline. It consumes
// already-constructed, styled geometry (figures, roads, buildings,
// decorative markers, and point features with icons and labels) and
// composites them onto an append-only vector canvas in a fixed painter's
// order. It never rasterizes: the output is paths, rectangles, text, and
// opacity groups.
//
// # Quick Start
//
//	proj := vecmap.NewProjector(box, 18, vecmap.EquatorLength)
//	w, h := proj.Size()
//
//	var buf bytes.Buffer
//	canvas := vecmap.NewSVGCanvas(&buf, w, h)
//
//	m := vecmap.NewMap(proj, canvas, vecmap.Config{
//		BuildingMode: vecmap.BuildingExtruded,
//		LabelMode:    vecmap.LabelModeAll,
//		Overlap:      12,
//	})
//	if err := m.Draw(scene); err != nil {
//		log.Fatal(err)
//	}
//	canvas.Close()
//
// # Architecture
//
// The library is organized around five cooperating parts:
//   - Projector: geographic to canvas coordinates with a local scale
//   - Canvas: append-only vector surface (SVG backend included)
//   - Occupied: spatial occupancy grid suppressing icon/label clutter
//   - Intersection: junction patch geometry for multi-lane roads
//   - Map: the compositor owning draw order and the render pass
//
// # Coordinate System
//
// Canvas coordinates follow standard computer graphics conventions:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// Geographic input uses latitude/longitude degrees (WGS 84).
package vecmap
