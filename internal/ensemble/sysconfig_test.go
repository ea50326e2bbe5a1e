package ensemble

import "testing"

func TestParseSystemConfig(t *testing.T) {
	tests := []struct {
		name string
		in   [2]byte
		want SystemConfig
	}{
		{
			name: "down convex 600",
			in:   [2]byte{0b0100_1011, 0b0100_0001},
			want: SystemConfig{Facing: Down, TransducerAttached: true, Sensor: SensorConfig1, Pattern: Convex, FrequencyKHz: 600, Janus: Janus4Beam, BeamAngle: 20},
		},
		{
			name: "up concave 300",
			in:   [2]byte{0b1001_0010, 0b0101_0000},
			want: SystemConfig{Facing: Up, Sensor: SensorConfig2, Pattern: Concave, FrequencyKHz: 300, Janus: Janus5BeamDemod, BeamAngle: 15},
		},
		{
			name: "75 khz 30 degree",
			in:   [2]byte{0b0010_1000, 0b1111_0010},
			want: SystemConfig{Facing: Down, Sensor: SensorConfig3, Pattern: Convex, FrequencyKHz: 75, Janus: Janus5Beam2Demod, BeamAngle: 30},
		},
		{
			name: "unknown codes",
			in:   [2]byte{0b0011_0111, 0b0000_0011},
			want: SystemConfig{Facing: Down, Sensor: SensorConfigUnknown, Pattern: Concave, FrequencyKHz: 0, Janus: JanusUnknown, BeamAngle: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSystemConfig(tt.in)
			if got != tt.want {
				t.Errorf("ParseSystemConfig(%08b %08b) = %+v, want %+v", tt.in[0], tt.in[1], got, tt.want)
			}
		})
	}
}

func TestSystemConfigKnown(t *testing.T) {
	if !ParseSystemConfig([2]byte{0b0100_1011, 0b0100_0001}).Known() {
		t.Error("expected a complete configuration")
	}
	if ParseSystemConfig([2]byte{0b0011_0111, 0b0000_0011}).Known() {
		t.Error("expected unknown codes to be flagged")
	}
}

func TestParseCoordinateTransform(t *testing.T) {
	tests := []struct {
		ex   byte
		want CoordinateSystem
	}{
		{0b0000_0000, Beam},
		{0b0000_1111, Instrument},
		{0b0001_0000, Ship},
		{0b0001_1111, Earth},
	}
	for _, tt := range tests {
		if got := ParseCoordinateTransform(tt.ex); got != tt.want {
			t.Errorf("ParseCoordinateTransform(%08b) = %v, want %v", tt.ex, got, tt.want)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	if Up.String() != "UP" || Down.String() != "DOWN" {
		t.Error("facing strings")
	}
	if SensorConfig2.String() != "SENSOR CONFIG #2" {
		t.Errorf("got %q", SensorConfig2.String())
	}
	if Janus5Beam2Demod.String() != "5-BM 2 DEMD" {
		t.Errorf("got %q", Janus5Beam2Demod.String())
	}
	if Earth.String() != "EARTH" {
		t.Errorf("got %q", Earth.String())
	}
}
