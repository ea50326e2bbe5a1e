package ensemble

import (
	"fmt"

	"github.com/robert-malhotra/go-pd0/internal/binary"
	"github.com/robert-malhotra/go-pd0/internal/field"
)

// Layout recomputes the header for contiguous blocks: the data type count,
// the address offsets and the ensemble length. Profile blocks must already
// be sized to the fixed leader's cell and beam counts.
func (e *Ensemble) Layout() {
	n := MinDataTypes
	if e.BottomTrack != nil {
		n = bottomTrackTypes
	}
	bins, beams := e.Cells(), e.Beams()
	offs := make([]uint16, n)
	pos := field.Size(HeaderTable) + 2*n
	offs[0] = uint16(pos)
	pos += field.Size(FixedLeaderTable)
	offs[1] = uint16(pos)
	pos += field.Size(VariableLeaderTable)
	offs[2] = uint16(pos)
	pos += 2 + 2*bins*beams
	for i := 3; i < MinDataTypes; i++ {
		offs[i] = uint16(pos)
		pos += 2 + bins*beams
	}
	if e.BottomTrack != nil {
		offs[6] = uint16(pos)
		pos += field.Size(BottomTrackTable)
	}
	e.Header.DataTypes = uint8(n)
	e.Header.Offsets = offs
	e.Header.Bytes = uint16(pos + 2)
	e.BlockIDs = [4]uint16{VelocityID, CorrelationID, EchoID, PercentGoodID}
	if e.BottomTrack != nil {
		e.BottomTrack.ID = BottomTrackID
	}
}

// Encode serialises e using its header as given and appends a freshly
// computed checksum.
func Encode(e *Ensemble) ([]byte, error) {
	var buf binary.Buffer
	w := binary.NewWriter(&buf, binary.DefaultConfig())

	if err := field.Encode(w, HeaderTable, &e.Header); err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	if len(e.Header.Offsets) < 3 {
		return nil, fmt.Errorf("%d address offsets: %w", len(e.Header.Offsets), ErrBadOffsets)
	}
	for _, o := range e.Header.Offsets {
		if err := w.WriteUint16(o); err != nil {
			return nil, err
		}
	}

	if err := w.PadTo(int64(e.Header.Offsets[0])); err != nil {
		return nil, fmt.Errorf("fixed leader: %w: %w", ErrBadOffsets, err)
	}
	if err := field.Encode(w, FixedLeaderTable, &e.Fixed); err != nil {
		return nil, fmt.Errorf("fixed leader: %w", err)
	}
	if err := w.PadTo(int64(e.Header.Offsets[1])); err != nil {
		return nil, fmt.Errorf("variable leader: %w: %w", ErrBadOffsets, err)
	}
	if err := field.Encode(w, VariableLeaderTable, &e.Variable); err != nil {
		return nil, fmt.Errorf("variable leader: %w", err)
	}
	if err := w.PadTo(int64(e.Header.Offsets[2])); err != nil {
		return nil, fmt.Errorf("profiles: %w: %w", ErrBadOffsets, err)
	}
	if err := e.encodeProfiles(w); err != nil {
		return nil, fmt.Errorf("profiles: %w", err)
	}

	if e.Header.DataTypes == bottomTrackTypes {
		if e.BottomTrack == nil {
			return nil, fmt.Errorf("header declares bottom track but none is set: %w", ErrBadDataTypeCount)
		}
		if err := field.Encode(w, BottomTrackTable, e.BottomTrack); err != nil {
			return nil, fmt.Errorf("bottom track: %w", err)
		}
	}
	if err := w.WriteUint16(e.Reserved); err != nil {
		return nil, err
	}
	if err := w.WriteUint16(w.Sum().Value()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *Ensemble) encodeProfiles(w *binary.Writer) error {
	bins, beams := e.Cells(), e.Beams()
	if len(e.Velocity) != bins {
		return fmt.Errorf("velocity has %d bins, want %d", len(e.Velocity), bins)
	}
	if err := w.WriteUint16(e.BlockIDs[0]); err != nil {
		return err
	}
	for k, bin := range e.Velocity {
		if len(bin) != beams {
			return fmt.Errorf("velocity bin %d has %d beams, want %d", k, len(bin), beams)
		}
		for _, v := range bin {
			if err := w.WriteInt16(v); err != nil {
				return err
			}
		}
	}
	for i, block := range [][][]uint8{e.Correlation, e.Echo, e.PercentGood} {
		if len(block) != bins {
			return fmt.Errorf("block 0x%04x has %d bins, want %d", e.BlockIDs[i+1], len(block), bins)
		}
		if err := w.WriteUint16(e.BlockIDs[i+1]); err != nil {
			return err
		}
		for k, bin := range block {
			if len(bin) != beams {
				return fmt.Errorf("block 0x%04x bin %d has %d beams, want %d", e.BlockIDs[i+1], k, len(bin), beams)
			}
			if err := w.WriteBytes(bin); err != nil {
				return err
			}
		}
	}
	return nil
}
