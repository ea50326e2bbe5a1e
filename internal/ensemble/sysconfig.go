package ensemble

import "fmt"

// Facing is the transducer orientation.
type Facing uint8

const (
	Down Facing = iota
	Up
)

func (f Facing) String() string {
	if f == Up {
		return "UP"
	}
	return "DOWN"
}

// SensorConfig identifies which of the three sensor configurations is fitted.
type SensorConfig uint8

const (
	SensorConfig1 SensorConfig = iota
	SensorConfig2
	SensorConfig3
	SensorConfigUnknown
)

func (s SensorConfig) String() string {
	switch s {
	case SensorConfig1, SensorConfig2, SensorConfig3:
		return fmt.Sprintf("SENSOR CONFIG #%d", int(s)+1)
	default:
		return "UNKNOWN"
	}
}

// BeamPattern is the transducer head shape.
type BeamPattern uint8

const (
	Concave BeamPattern = iota
	Convex
)

func (p BeamPattern) String() string {
	if p == Convex {
		return "CONVEX"
	}
	return "CONCAVE"
}

// Janus describes the beam layout.
type Janus uint8

const (
	JanusUnknown Janus = iota
	Janus4Beam
	Janus5BeamDemod
	Janus5Beam2Demod
)

func (j Janus) String() string {
	switch j {
	case Janus4Beam:
		return "4-BM"
	case Janus5BeamDemod:
		return "5-BM DEMOD"
	case Janus5Beam2Demod:
		return "5-BM 2 DEMD"
	default:
		return "UNKNOWN"
	}
}

// CoordinateSystem is the frame velocities are reported in.
type CoordinateSystem uint8

const (
	Beam CoordinateSystem = iota
	Instrument
	Ship
	Earth
)

func (c CoordinateSystem) String() string {
	switch c {
	case Beam:
		return "BEAM"
	case Instrument:
		return "INSTRUMENT"
	case Ship:
		return "SHIP"
	default:
		return "EARTH"
	}
}

// SystemConfig is the decoded form of the two system configuration bytes.
type SystemConfig struct {
	Facing             Facing
	TransducerAttached bool
	Sensor             SensorConfig
	Pattern            BeamPattern
	FrequencyKHz       int     // 0 when the code is not recognised
	Janus              Janus
	BeamAngle          float64 // degrees; 0 for OTHER
}

// Known reports whether every bit field mapped to a defined value.
func (c SystemConfig) Known() bool {
	return c.FrequencyKHz != 0 && c.Sensor != SensorConfigUnknown && c.Janus != JanusUnknown
}

var frequencies = [8]int{75, 150, 300, 600, 1200, 2400, 0, 0}

var beamAngles = [4]float64{15, 20, 30, 0}

// ParseSystemConfig decodes the fixed leader system configuration bytes,
// given least significant byte first.
func ParseSystemConfig(b [2]byte) SystemConfig {
	lsb, msb := b[0], b[1]
	c := SystemConfig{
		Facing:             Facing(lsb >> 7 & 1),
		TransducerAttached: lsb>>6&1 == 1,
		Sensor:             SensorConfig(lsb >> 4 & 3),
		Pattern:            BeamPattern(lsb >> 3 & 1),
		FrequencyKHz:       frequencies[lsb&7],
		BeamAngle:          beamAngles[msb&3],
	}
	switch msb >> 4 {
	case 0b0100:
		c.Janus = Janus4Beam
	case 0b0101:
		c.Janus = Janus5BeamDemod
	case 0b1111:
		c.Janus = Janus5Beam2Demod
	}
	return c
}

// ParseCoordinateTransform returns the coordinate system encoded in the EX byte.
func ParseCoordinateTransform(ex byte) CoordinateSystem {
	return CoordinateSystem(ex >> 3 & 3)
}
