package ensemble

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/robert-malhotra/go-pd0/internal/binary"
	"github.com/robert-malhotra/go-pd0/internal/field"
)

// Signature is the byte pair that opens every ensemble.
const Signature = 0x7F

// Block identifiers.
const (
	FixedLeaderID    uint16 = 0x0000
	VariableLeaderID uint16 = 0x0080
	VelocityID       uint16 = 0x0100
	CorrelationID    uint16 = 0x0200
	EchoID           uint16 = 0x0300
	PercentGoodID    uint16 = 0x0400
	BottomTrackID    uint16 = 0x0600
)

const (
	// MinDataTypes is the number of address offsets always read.
	MinDataTypes = 6

	// MaxDataTypes bounds the data type count of a plausible ensemble.
	MaxDataTypes = 10

	// VelocitySentinel marks a bad velocity or echo sample.
	VelocitySentinel = -32768

	bottomTrackTypes = 7
)

var (
	ErrBadHeaderID      = errors.New("header or data source id is not 0x7f")
	ErrBadDataTypeCount = errors.New("data type count out of range")
	ErrNoCorrelation    = errors.New("correlation block is all zero")
	ErrBadDate          = errors.New("real-time clock does not form a date")
	ErrBadOffsets       = errors.New("address offsets outside ensemble")
)

// Ensemble is one decoded PD0 record.
type Ensemble struct {
	Offset int64 // file position of the header

	Header   Header
	Fixed    FixedLeader
	Variable VariableLeader

	// Block identifiers as read, in velocity, correlation, echo, percent
	// good order.
	BlockIDs [4]uint16

	// Profile blocks, indexed [bin][beam].
	Velocity    [][]int16
	Correlation [][]uint8
	Echo        [][]uint8
	PercentGood [][]uint8

	BottomTrack *BottomTrack

	Reserved uint16
	Checksum uint16 // as stored
	Computed uint16 // sum of the bytes read
}

// ChecksumOK reports whether the stored checksum matched the computed one.
func (e *Ensemble) ChecksumOK() bool {
	return e.Checksum == e.Computed
}

// Number returns the ensemble sequence number with the rollover byte applied.
func (e *Ensemble) Number() uint32 {
	return uint32(e.Variable.Number) + uint32(e.Variable.NumberMSB)*65535
}

// Size returns the number of bytes the ensemble occupies on disk.
func (e *Ensemble) Size() int64 {
	return int64(e.Header.Bytes) + 2
}

// Beams returns the beam count from the fixed leader.
func (e *Ensemble) Beams() int { return int(e.Fixed.Beams) }

// Cells returns the bin count from the fixed leader.
func (e *Ensemble) Cells() int { return int(e.Fixed.Cells) }

// System decodes the system configuration bytes.
func (e *Ensemble) System() SystemConfig {
	var b [2]byte
	copy(b[:], e.Fixed.SystemConfig)
	return ParseSystemConfig(b)
}

// Coordinates decodes the coordinate transform byte.
func (e *Ensemble) Coordinates() CoordinateSystem {
	if len(e.Fixed.CoordinateTransform) == 0 {
		return Beam
	}
	return ParseCoordinateTransform(e.Fixed.CoordinateTransform[0])
}

// Time returns the ensemble timestamp in UTC shifted by tz. A century other
// than 19 or 20 is read as 20.
func (e *Ensemble) Time(tz time.Duration) (time.Time, error) {
	v := &e.Variable
	century := int(v.Century)
	if century != 19 && century != 20 {
		century = 20
	}
	year := century*100 + int(v.Year)
	month := int(v.Month)
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month %d: %w", month, ErrBadDate)
	}
	days := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if v.Day < 1 || int(v.Day) > days {
		return time.Time{}, fmt.Errorf("day %d of %d-%02d: %w", v.Day, year, month, ErrBadDate)
	}
	if v.Hour > 23 || v.Minute > 59 || v.Second > 59 || v.Hundredths > 99 {
		return time.Time{}, fmt.Errorf("time %02d:%02d:%02d.%02d: %w",
			v.Hour, v.Minute, v.Second, v.Hundredths, ErrBadDate)
	}
	t := time.Date(year, time.Month(month), int(v.Day), int(v.Hour), int(v.Minute), int(v.Second),
		int(v.Hundredths)*int(10*time.Millisecond), time.UTC)
	return t.Add(tz), nil
}

// Check applies the validity predicate: both ids are 0x7f, the data type count
// is in [1, MaxDataTypes], some correlation is non-zero and the clock parses.
func (e *Ensemble) Check() error {
	if e.Header.HeaderID != Signature || e.Header.DataSourceID != Signature {
		return ErrBadHeaderID
	}
	if e.Header.DataTypes < 1 || e.Header.DataTypes > MaxDataTypes {
		return fmt.Errorf("%d types: %w", e.Header.DataTypes, ErrBadDataTypeCount)
	}
	nonzero := false
	for _, bin := range e.Correlation {
		for _, c := range bin {
			if c != 0 {
				nonzero = true
				break
			}
		}
		if nonzero {
			break
		}
	}
	if !nonzero {
		return ErrNoCorrelation
	}
	if _, err := e.Time(0); err != nil {
		return err
	}
	return nil
}

// Decode reads the ensemble whose header starts at offset. The stored
// checksum is compared but a mismatch is not an error; see ChecksumOK.
func Decode(r io.ReaderAt, offset int64) (*Ensemble, error) {
	br := binary.NewReader(r, binary.DefaultConfig()).At(offset)
	e := &Ensemble{Offset: offset}

	var sum binary.Sum16
	sum, err := field.Decode(br, HeaderTable, &e.Header, sum)
	if err != nil {
		return nil, fmt.Errorf("header at %d: %w", offset, err)
	}
	if e.Header.HeaderID != Signature || e.Header.DataSourceID != Signature {
		return nil, fmt.Errorf("header at %d: %w", offset, ErrBadHeaderID)
	}
	if e.Header.DataTypes > MaxDataTypes {
		return nil, fmt.Errorf("header at %d: %d types: %w", offset, e.Header.DataTypes, ErrBadDataTypeCount)
	}

	n := max(int(e.Header.DataTypes), MinDataTypes)
	raw, err := br.ReadBytes(2 * n)
	if err != nil {
		return nil, fmt.Errorf("address offsets at %d: %w", offset, err)
	}
	sum = sum.Add(raw)
	e.Header.Offsets = make([]uint16, n)
	for i := range e.Header.Offsets {
		e.Header.Offsets[i] = br.Order().Uint16(raw[2*i:])
	}
	hdrLen := uint16(field.Size(HeaderTable) + 2*n)
	for _, o := range e.Header.Offsets[:3] {
		if o < hdrLen || o >= e.Header.Bytes {
			return nil, fmt.Errorf("offset %d of %d-byte ensemble at %d: %w", o, e.Header.Bytes, offset, ErrBadOffsets)
		}
	}

	br = br.At(offset + int64(e.Header.Offsets[0]))
	if sum, err = field.Decode(br, FixedLeaderTable, &e.Fixed, sum); err != nil {
		return nil, fmt.Errorf("fixed leader at %d: %w", offset, err)
	}
	br = br.At(offset + int64(e.Header.Offsets[1]))
	if sum, err = field.Decode(br, VariableLeaderTable, &e.Variable, sum); err != nil {
		return nil, fmt.Errorf("variable leader at %d: %w", offset, err)
	}

	br = br.At(offset + int64(e.Header.Offsets[2]))
	bins, beams := e.Cells(), e.Beams()
	if sum, err = e.decodeProfiles(br, bins, beams, sum); err != nil {
		return nil, fmt.Errorf("profile blocks at %d: %w", offset, err)
	}

	if e.Header.DataTypes == bottomTrackTypes {
		e.BottomTrack = new(BottomTrack)
		if sum, err = field.Decode(br, BottomTrackTable, e.BottomTrack, sum); err != nil {
			return nil, fmt.Errorf("bottom track at %d: %w", offset, err)
		}
	}

	// The reserved field sits at Bytes-2 whatever blocks precede it. Blocks
	// not parsed here still count toward the checksum.
	tail := offset + int64(e.Header.Bytes) - 2
	if pos := br.Pos(); pos > tail {
		return nil, fmt.Errorf("blocks end at %d of %d-byte ensemble at %d: %w", pos-offset, e.Header.Bytes, offset, ErrBadOffsets)
	} else if pos < tail {
		gap, err := br.ReadBytes(int(tail - pos))
		if err != nil {
			return nil, fmt.Errorf("unparsed blocks at %d: %w", offset, err)
		}
		sum = sum.Add(gap)
	}

	raw, err = br.ReadBytes(2)
	if err != nil {
		return nil, fmt.Errorf("reserved field at %d: %w", offset, err)
	}
	sum = sum.Add(raw)
	e.Reserved = br.Order().Uint16(raw)
	if e.Checksum, err = br.ReadUint16(); err != nil {
		return nil, fmt.Errorf("checksum at %d: %w", offset, err)
	}
	e.Computed = sum.Value()
	return e, nil
}

func (e *Ensemble) decodeProfiles(br *binary.Reader, bins, beams int, sum binary.Sum16) (binary.Sum16, error) {
	cells := bins * beams
	order := br.Order()

	readID := func(i int) error {
		raw, err := br.ReadBytes(2)
		if err != nil {
			return err
		}
		sum = sum.Add(raw)
		e.BlockIDs[i] = order.Uint16(raw)
		return nil
	}

	if err := readID(0); err != nil {
		return sum, err
	}
	raw, err := br.ReadBytes(2 * cells)
	if err != nil {
		return sum, err
	}
	sum = sum.Add(raw)
	e.Velocity = make([][]int16, bins)
	for k := range e.Velocity {
		e.Velocity[k] = make([]int16, beams)
		for b := range e.Velocity[k] {
			e.Velocity[k][b] = int16(order.Uint16(raw[2*(k*beams+b):]))
		}
	}

	for i, dst := range []*[][]uint8{&e.Correlation, &e.Echo, &e.PercentGood} {
		if err := readID(i + 1); err != nil {
			return sum, err
		}
		raw, err := br.ReadBytes(cells)
		if err != nil {
			return sum, err
		}
		sum = sum.Add(raw)
		block := make([][]uint8, bins)
		for k := range block {
			block[k] = append([]uint8(nil), raw[k*beams:(k+1)*beams]...)
		}
		*dst = block
	}
	return sum, nil
}

// DecodeValid decodes the ensemble at offset and applies Check.
func DecodeValid(r io.ReaderAt, offset int64) (*Ensemble, error) {
	e, err := Decode(r, offset)
	if err != nil {
		return nil, err
	}
	if err := e.Check(); err != nil {
		return nil, fmt.Errorf("ensemble at %d: %w", offset, err)
	}
	return e, nil
}
