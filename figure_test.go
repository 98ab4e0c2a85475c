package vecmap

import (
	"strings"
	"testing"
)

func TestStyledFigure_PathData(t *testing.T) {
	proj := equatorProjector()

	tests := []struct {
		name   string
		figure StyledFigure
		check  func(t *testing.T, d string)
	}{
		{
			"no contours",
			StyledFigure{},
			func(t *testing.T, d string) {
				if d != "" {
					t.Errorf("got %q, want empty", d)
				}
			},
		},
		{
			"single point contour",
			StyledFigure{Contours: []Contour{{Points: []GeoPoint{{Lat: 0, Lon: 0}}}}},
			func(t *testing.T, d string) {
				if d != "" {
					t.Errorf("got %q, want empty", d)
				}
			},
		},
		{
			"open line",
			StyledFigure{Contours: []Contour{{
				Points: []GeoPoint{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 0.001}},
			}}},
			func(t *testing.T, d string) {
				if d == "" || strings.HasSuffix(d, "Z") {
					t.Errorf("open contour produced %q", d)
				}
			},
		},
		{
			"closed ring",
			StyledFigure{Contours: []Contour{{
				Points: square(0, 0),
				Closed: true,
			}}},
			func(t *testing.T, d string) {
				if !strings.HasSuffix(d, "Z") {
					t.Errorf("ring not closed: %q", d)
				}
			},
		},
		{
			"ring with hole",
			StyledFigure{Contours: []Contour{
				{Points: square(0, 0), Closed: true},
				{Points: square(0.0001, 0.0001), Closed: true},
			}},
			func(t *testing.T, d string) {
				if got := strings.Count(d, "M "); got != 2 {
					t.Errorf("got %d subpaths, want 2: %q", got, d)
				}
				if got := strings.Count(d, "Z"); got != 2 {
					t.Errorf("got %d closes, want 2: %q", got, d)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.figure.PathData(proj))
		})
	}
}
