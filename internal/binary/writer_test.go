package binary

import (
	"bytes"
	"testing"
)

func TestWriterRoundTrip(t *testing.T) {
	var buf Buffer
	w := NewWriter(&buf, DefaultConfig())

	if err := w.WriteUint16(0x7F7F); err != nil {
		t.Fatalf("WriteUint16 failed: %v", err)
	}
	if err := w.WriteInt16(-1); err != nil {
		t.Fatalf("WriteInt16 failed: %v", err)
	}
	if err := w.WriteUint32(0xDEADBEEF); err != nil {
		t.Fatalf("WriteUint32 failed: %v", err)
	}
	if err := w.WriteUint8(0x42); err != nil {
		t.Fatalf("WriteUint8 failed: %v", err)
	}

	want := []byte{0x7F, 0x7F, 0xFF, 0xFF, 0xEF, 0xBE, 0xAD, 0xDE, 0x42}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("wrote % x, want % x", buf.Bytes(), want)
	}
	if w.Pos() != int64(len(want)) {
		t.Errorf("position %d, want %d", w.Pos(), len(want))
	}
}

func TestWriterSum(t *testing.T) {
	var buf Buffer
	w := NewWriter(&buf, DefaultConfig())

	_ = w.WriteBytes([]byte{0x7F, 0x7F, 0x10})
	_ = w.WriteUint16(0x0102)

	if got, want := w.Sum().Value(), Sum16(0).Add(buf.Bytes()).Value(); got != want {
		t.Errorf("writer sum 0x%04x, want 0x%04x", got, want)
	}
}

func TestWriterPadTo(t *testing.T) {
	var buf Buffer
	w := NewWriter(&buf, DefaultConfig())

	_ = w.WriteUint8(0x01)
	if err := w.PadTo(4); err != nil {
		t.Fatalf("PadTo failed: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x01, 0, 0, 0}) {
		t.Errorf("unexpected bytes %v", buf.Bytes())
	}
	if err := w.PadTo(2); err == nil {
		t.Error("expected error padding backwards")
	}
}

func TestBufferAt(t *testing.T) {
	var buf Buffer
	w := NewWriter(&buf, DefaultConfig()).At(3)
	_ = w.WriteUint8(0xAA)

	if buf.Len() != 4 {
		t.Fatalf("expected length 4, got %d", buf.Len())
	}
	if buf.Bytes()[3] != 0xAA {
		t.Errorf("expected 0xAA at 3, got 0x%02x", buf.Bytes()[3])
	}
}
