package vecmap

import "testing"

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"zero value", Config{}, false},
		{
			"full valid",
			Config{
				Wireframe:      true,
				LabelMode:      LabelModeWhenSpace,
				BuildingMode:   BuildingExtruded,
				Overlap:        16,
				JunctionDegree: 3,
			},
			false,
		},
		{"unknown building mode", Config{BuildingMode: BuildingMode(42)}, true},
		{"negative building mode", Config{BuildingMode: BuildingMode(-1)}, true},
		{"unknown label mode", Config{LabelMode: LabelMode(42)}, true},
		{"negative overlap", Config{Overlap: -1}, true},
		{"negative junction degree", Config{JunctionDegree: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_JunctionDegree(t *testing.T) {
	if got := (Config{}).junctionDegree(); got != 4 {
		t.Errorf("default junction degree = %d, want 4", got)
	}
	if got := (Config{JunctionDegree: 3}).junctionDegree(); got != 3 {
		t.Errorf("junction degree = %d, want 3", got)
	}
}

func TestBuildingMode_String(t *testing.T) {
	tests := []struct {
		mode   BuildingMode
		expect string
	}{
		{BuildingFlat, "flat"},
		{BuildingExtruded, "extruded"},
		{BuildingMode(7), "BuildingMode(7)"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.expect {
			t.Errorf("String() = %q, want %q", got, tt.expect)
		}
	}
}

func TestLabelMode_String(t *testing.T) {
	tests := []struct {
		mode   LabelMode
		expect string
	}{
		{LabelModeOff, "off"},
		{LabelModeAll, "all"},
		{LabelModeWhenSpace, "when-space"},
		{LabelMode(7), "LabelMode(7)"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.expect {
			t.Errorf("String() = %q, want %q", got, tt.expect)
		}
	}
}
