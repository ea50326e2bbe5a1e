package binary

import "testing"

func TestSum16(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  uint16
	}{
		{"empty", nil, 0},
		{"signature", []byte{0x7F, 0x7F}, 0xFE},
		{"wraps", bytesOf(0xFF, 300), uint16((0xFF * 300) % 65536)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sum16(0).Add(tt.input).Value(); got != tt.want {
				t.Errorf("sum = 0x%04x, want 0x%04x", got, tt.want)
			}
		})
	}
}

func TestSum16Incremental(t *testing.T) {
	data := []byte("a PD0 ensemble is summed byte by byte")

	var s Sum16
	for i := 0; i < len(data); i += 5 {
		s = s.Add(data[i:min(i+5, len(data))])
	}
	if want := Sum16(0).Add(data).Value(); s.Value() != want {
		t.Errorf("incremental sum 0x%04x != one-shot 0x%04x", s.Value(), want)
	}
}

func bytesOf(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}
