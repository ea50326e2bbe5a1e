package ensemble_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/robert-malhotra/go-pd0/internal/binary"
	"github.com/robert-malhotra/go-pd0/internal/ensemble"
	"github.com/robert-malhotra/go-pd0/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSynthetic(t *testing.T) {
	p := testutil.DefaultProfile()
	src := testutil.Ensemble(p, 7, testutil.Epoch)
	data := testutil.Encode(t, src)
	require.Len(t, data, int(src.Header.Bytes)+2)

	e, err := ensemble.Decode(bytes.NewReader(data), 0)
	require.NoError(t, err)

	assert.True(t, e.ChecksumOK())
	assert.Equal(t, binary.Sum16(0).Add(data[:len(data)-2]).Value(), e.Checksum)
	assert.Equal(t, uint32(7), e.Number())
	assert.Equal(t, 4, e.Beams())
	assert.Equal(t, 5, e.Cells())
	assert.Equal(t, uint8(7), e.Header.DataTypes)
	require.NotNil(t, e.BottomTrack)
	assert.Equal(t, uint32(2000), e.BottomTrack.RangeCM(0))
	assert.Equal(t, int16(-150), e.Variable.Pitch)
	assert.Equal(t, int16(7*100+3*10+2), e.Velocity[3][2])
	assert.Equal(t, uint8(101), e.Correlation[4][1])
	assert.Equal(t, [4]uint16{ensemble.VelocityID, ensemble.CorrelationID, ensemble.EchoID, ensemble.PercentGoodID}, e.BlockIDs)
	assert.NoError(t, e.Check())

	ts, err := e.Time(0)
	require.NoError(t, err)
	assert.True(t, ts.Equal(testutil.Epoch))
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, bt := range []bool{true, false} {
		p := testutil.DefaultProfile()
		p.BottomTrack = bt
		src := testutil.Ensemble(p, 3, testutil.Epoch)
		src.Fixed.CPUSerial = []byte{0xDE, 0xAD, 0xBE, 0xEF, 0, 1, 2, 3}
		src.Velocity[0][0] = ensemble.VelocitySentinel
		data := testutil.Encode(t, src)

		e, err := ensemble.Decode(bytes.NewReader(data), 0)
		require.NoError(t, err)
		assert.Equal(t, src.Header, e.Header)
		assert.Equal(t, src.Fixed, e.Fixed)
		assert.Equal(t, src.Variable, e.Variable)
		assert.Equal(t, src.Velocity, e.Velocity)
		assert.Equal(t, src.Correlation, e.Correlation)
		assert.Equal(t, src.Echo, e.Echo)
		assert.Equal(t, src.PercentGood, e.PercentGood)
		assert.Equal(t, src.BottomTrack, e.BottomTrack)

		again, err := ensemble.Encode(e)
		require.NoError(t, err)
		assert.Equal(t, data, again)
	}
}

func TestDecodeChecksumMismatch(t *testing.T) {
	src := testutil.Ensemble(testutil.DefaultProfile(), 1, testutil.Epoch)
	data := testutil.Encode(t, src)
	data[len(data)-1] ^= 0xFF

	e, err := ensemble.Decode(bytes.NewReader(data), 0)
	require.NoError(t, err)
	assert.False(t, e.ChecksumOK())
	assert.NoError(t, e.Check())
}

func TestDecodeAtOffset(t *testing.T) {
	ens := testutil.Ensembles(testutil.DefaultProfile(), 2)
	data := append([]byte{0x00, 0x7F, 0x13}, testutil.Encode(t, ens...)...)

	second := int64(3) + ens[0].Size()
	e, err := ensemble.Decode(bytes.NewReader(data), second)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), e.Number())
	assert.Equal(t, second, e.Offset)
}

func TestDecodeTruncated(t *testing.T) {
	data := testutil.Encode(t, testutil.Ensemble(testutil.DefaultProfile(), 1, testutil.Epoch))

	_, err := ensemble.Decode(bytes.NewReader(data[:len(data)-10]), 0)
	assert.ErrorIs(t, err, binary.ErrShortRead)
}

func TestDecodeBadOffsets(t *testing.T) {
	src := testutil.Ensemble(testutil.DefaultProfile(), 1, testutil.Epoch)
	src.Header.Offsets[2] = src.Header.Bytes + 10
	data := testutil.Encode(t, src)

	_, err := ensemble.Decode(bytes.NewReader(data), 0)
	assert.ErrorIs(t, err, ensemble.ErrBadOffsets)
}

// withExtraBlock inserts n bytes of an unparsed block ahead of the reserved
// field, patches the byte count and re-sums the ensemble.
func withExtraBlock(data []byte, n int) []byte {
	body := len(data) - 4
	out := append([]byte(nil), data[:body]...)
	for i := 0; i < n; i++ {
		out = append(out, byte(0xA0+i))
	}
	out = append(out, data[body:body+2]...)
	bytesField := uint16(len(out))
	out[2], out[3] = byte(bytesField), byte(bytesField>>8)
	sum := binary.Sum16(0).Add(out).Value()
	return append(out, byte(sum), byte(sum>>8))
}

func TestDecodeUnparsedBlock(t *testing.T) {
	p := testutil.DefaultProfile()
	p.BottomTrack = false
	src := testutil.Ensemble(p, 1, testutil.Epoch)
	src.Reserved = 0x1234
	data := withExtraBlock(testutil.Encode(t, src), 12)

	e, err := ensemble.Decode(bytes.NewReader(data), 0)
	require.NoError(t, err)
	assert.True(t, e.ChecksumOK())
	assert.Equal(t, uint16(0x1234), e.Reserved)
	assert.Equal(t, int64(len(data)), e.Size())
}

func TestDecodeBlocksOverrunByteCount(t *testing.T) {
	data := testutil.Encode(t, testutil.Ensemble(testutil.DefaultProfile(), 1, testutil.Epoch))
	short := uint16(len(data) - 2 - 6)
	data[2], data[3] = byte(short), byte(short>>8)

	_, err := ensemble.Decode(bytes.NewReader(data), 0)
	assert.ErrorIs(t, err, ensemble.ErrBadOffsets)
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(e *ensemble.Ensemble)
		want   error
	}{
		{"valid", func(e *ensemble.Ensemble) {}, nil},
		{"header id", func(e *ensemble.Ensemble) { e.Header.HeaderID = 0x7E }, ensemble.ErrBadHeaderID},
		{"source id", func(e *ensemble.Ensemble) { e.Header.DataSourceID = 0 }, ensemble.ErrBadHeaderID},
		{"no types", func(e *ensemble.Ensemble) { e.Header.DataTypes = 0 }, ensemble.ErrBadDataTypeCount},
		{"too many types", func(e *ensemble.Ensemble) { e.Header.DataTypes = 11 }, ensemble.ErrBadDataTypeCount},
		{"zero correlation", func(e *ensemble.Ensemble) {
			for _, bin := range e.Correlation {
				clear(bin)
			}
		}, ensemble.ErrNoCorrelation},
		{"bad month", func(e *ensemble.Ensemble) { e.Variable.Month = 13 }, ensemble.ErrBadDate},
		{"bad day", func(e *ensemble.Ensemble) { e.Variable.Month, e.Variable.Day = 2, 30 }, ensemble.ErrBadDate},
		{"bad hour", func(e *ensemble.Ensemble) { e.Variable.Hour = 24 }, ensemble.ErrBadDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := testutil.Ensemble(testutil.DefaultProfile(), 1, testutil.Epoch)
			tt.mutate(e)
			err := e.Check()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestDecodeValid(t *testing.T) {
	src := testutil.Ensemble(testutil.DefaultProfile(), 1, testutil.Epoch)
	for _, bin := range src.Correlation {
		clear(bin)
	}
	data := testutil.Encode(t, src)

	_, err := ensemble.Decode(bytes.NewReader(data), 0)
	require.NoError(t, err)
	_, err = ensemble.DecodeValid(bytes.NewReader(data), 0)
	assert.ErrorIs(t, err, ensemble.ErrNoCorrelation)
}

func TestTimeCentury(t *testing.T) {
	e := testutil.Ensemble(testutil.DefaultProfile(), 1, testutil.Epoch)

	e.Variable.Century = 0
	ts, err := e.Time(0)
	require.NoError(t, err)
	assert.Equal(t, 2021, ts.Year())

	e.Variable.Century = 19
	e.Variable.Year = 99
	ts, err = e.Time(0)
	require.NoError(t, err)
	assert.Equal(t, 1999, ts.Year())

	e.Variable.Hundredths = 25
	ts, err = e.Time(-2 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 13, ts.Hour())
	assert.Equal(t, 250*time.Millisecond, time.Duration(ts.Nanosecond()))
}

func TestNumberRollover(t *testing.T) {
	e := testutil.Ensemble(testutil.DefaultProfile(), 1, testutil.Epoch)
	e.Variable.Number = 5
	e.Variable.NumberMSB = 2
	assert.Equal(t, uint32(5+2*65535), e.Number())
}
