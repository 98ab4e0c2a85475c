package vecmap

import "testing"

// square builds a square footprint with its south-west corner at the
// given coordinate.
func square(lat, lon float64) []GeoPoint {
	const side = 0.0005
	return []GeoPoint{
		{Lat: lat, Lon: lon},
		{Lat: lat, Lon: lon + side},
		{Lat: lat + side, Lon: lon + side},
		{Lat: lat + side, Lon: lon},
	}
}

func TestBuildingHeights(t *testing.T) {
	tests := []struct {
		name      string
		buildings []Building
		expect    []float64
	}{
		{"empty", nil, nil},
		{
			"distinct sorted",
			[]Building{{Height: 9}, {Height: 3}, {Height: 6}},
			[]float64{3, 6, 9},
		},
		{
			"duplicates collapse",
			[]Building{{Height: 6}, {Height: 6}, {Height: 3}},
			[]float64{3, 6},
		},
		{
			"minimum heights included",
			[]Building{{Height: 9, MinHeight: 3}, {Height: 6}},
			[]float64{3, 6, 9},
		},
		{
			"zero heights ignored",
			[]Building{{Height: 0}, {Height: 4}},
			[]float64{4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildingHeights(tt.buildings)
			if len(got) != len(tt.expect) {
				t.Fatalf("got %v, want %v", got, tt.expect)
			}
			for i := range got {
				if got[i] != tt.expect[i] {
					t.Fatalf("got %v, want %v", got, tt.expect)
				}
			}
		})
	}
}

func TestBuilding_DrawWallsDegenerate(t *testing.T) {
	proj := equatorProjector()

	tests := []struct {
		name        string
		building    Building
		top, bottom float64
	}{
		{"zero band", Building{Footprint: square(0, 0), Height: 6}, 3, 3},
		{"inverted band", Building{Footprint: square(0, 0), Height: 6}, 3, 5},
		{"too few points", Building{Footprint: square(0, 0)[:2], Height: 6}, 6, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas := &recorder{}
			tt.building.DrawWalls(canvas, proj, tt.top, tt.bottom, 1)
			if len(canvas.ops) != 0 {
				t.Errorf("degenerate wall band emitted %d ops", len(canvas.ops))
			}
		})
	}
}

func TestBuilding_DrawWallsShading(t *testing.T) {
	proj := equatorProjector()
	canvas := &recorder{}

	b := Building{Footprint: square(0, 0), Height: 6}
	b.DrawWalls(canvas, proj, 6, 0, 1)

	if len(canvas.ops) != 4 {
		t.Fatalf("square footprint emitted %d wall ops, want 4", len(canvas.ops))
	}

	// Horizontal and vertical edges must receive different shades.
	fills := make(map[string]bool)
	for _, op := range canvas.ops {
		if op.style.Fill == nil {
			t.Fatal("wall without fill")
		}
		fills[op.style.Fill.Hex()] = true
	}
	if len(fills) < 2 {
		t.Errorf("all walls share one shade: %v", fills)
	}
}

// TestMap_ExtrudedBands renders three buildings spanning the height
// set {3, 6, 9} and checks band membership, ordering, and roofs.
//
// Layout: b1 (height 3), b2 (height 6), b3 (height 9, minimum 3).
// Expected bands: [0,3) with walls of b1+b2, then roofs at 3; [3,6)
// with walls of b2+b3, roof at 6; [6,9) with walls of b3, roof at 9.
// b3 must not contribute to the first band: its extent starts where
// that band ends.
func TestMap_ExtrudedBands(t *testing.T) {
	proj := equatorProjector()
	canvas := &recorder{}

	b1 := Building{Footprint: square(0, 0), Height: 3}
	b2 := Building{Footprint: square(0, 0.002), Height: 6}
	b3 := Building{Footprint: square(0, 0.004), Height: 9, MinHeight: 3}

	m := NewMap(proj, canvas, Config{BuildingMode: BuildingExtruded})
	if err := m.Draw(&Scene{Buildings: []Building{b1, b2, b3}}); err != nil {
		t.Fatal(err)
	}

	// Identify each building's ops by the footprint's x position.
	owner := func(op recordedOp) int {
		x := firstX(t, op.d)
		switch {
		case x < proj.Project(GeoPoint{Lon: 0.0015}).X:
			return 1
		case x < proj.Project(GeoPoint{Lon: 0.0035}).X:
			return 2
		default:
			return 3
		}
	}

	// Skip background and the shade group.
	start := 0
	for i, op := range canvas.ops {
		if op.kind == "end" {
			start = i + 1
			break
		}
	}
	if start == 0 {
		t.Fatal("no shade group emitted")
	}

	type draw struct {
		owner int
		wall  bool
	}
	var sequence []draw
	wallCount := map[int]int{}
	roofCount := map[int]int{}
	for _, op := range canvas.ops[start:] {
		if op.kind != "path" {
			t.Fatalf("unexpected op %q after shade group", op.kind)
		}
		isWall := op.style.StrokeWidth == 0.5
		who := owner(op)
		if isWall {
			wallCount[who]++
		} else {
			roofCount[who]++
		}
		sequence = append(sequence, draw{owner: who, wall: isWall})
	}

	// 4 wall ops per building per band.
	if wallCount[1] != 4 {
		t.Errorf("b1 wall ops = %d, want 4 (one band)", wallCount[1])
	}
	if wallCount[2] != 8 {
		t.Errorf("b2 wall ops = %d, want 8 (two bands)", wallCount[2])
	}
	if wallCount[3] != 8 {
		t.Errorf("b3 wall ops = %d, want 8 (bands ending at 6 and 9 only)", wallCount[3])
	}
	for who := 1; who <= 3; who++ {
		if roofCount[who] != 1 {
			t.Errorf("b%d roof ops = %d, want 1", who, roofCount[who])
		}
	}

	// Roofs appear in ascending height order, and every wall of a band
	// precedes that band's roofs.
	var roofOrder []int
	for _, d := range sequence {
		if !d.wall {
			roofOrder = append(roofOrder, d.owner)
		}
	}
	if len(roofOrder) != 3 || roofOrder[0] != 1 || roofOrder[1] != 2 || roofOrder[2] != 3 {
		t.Errorf("roof order = %v, want [1 2 3]", roofOrder)
	}

	// b3's walls must all come after b1's roof (band [0,3) excludes b3).
	firstB3Wall := -1
	b1Roof := -1
	for i, d := range sequence {
		if d.wall && d.owner == 3 && firstB3Wall < 0 {
			firstB3Wall = i
		}
		if !d.wall && d.owner == 1 {
			b1Roof = i
		}
	}
	if firstB3Wall < b1Roof {
		t.Errorf("b3 wall at index %d before the first band's roof at %d",
			firstB3Wall, b1Roof)
	}
}

func TestMap_FlatBuildings(t *testing.T) {
	proj := equatorProjector()
	canvas := &recorder{}

	m := NewMap(proj, canvas, Config{BuildingMode: BuildingFlat})
	scene := &Scene{Buildings: []Building{
		{Footprint: square(0, 0), Height: 9, MinHeight: 3},
		{Footprint: square(0, 0.002), Height: 6},
	}}
	if err := m.Draw(scene); err != nil {
		t.Fatal(err)
	}

	var paths, groups int
	for _, op := range canvas.ops {
		switch op.kind {
		case "path":
			paths++
		case "begin":
			groups++
		}
	}
	if paths != 2 {
		t.Errorf("flat mode emitted %d footprint ops, want 2", paths)
	}
	if groups != 0 {
		t.Errorf("flat mode emitted %d shade groups, want 0", groups)
	}
}
