package ensemble

// Header is the ensemble header that precedes every PD0 ensemble.
type Header struct {
	HeaderID     uint8
	DataSourceID uint8
	Bytes        uint16 // ensemble length excluding the checksum
	Spare        uint8
	DataTypes    uint8 // as declared on disk
	Offsets      []uint16
}

// FixedLeader holds the instrument configuration repeated in every ensemble.
type FixedLeader struct {
	ID                   uint16
	CPUVersion           uint8
	CPURevision          uint8
	SystemConfig         []byte // 2 bytes, LSB first
	RealSim              uint8
	LagLength            uint8
	Beams                uint8
	Cells                uint8
	PingsPerEnsemble     uint16
	CellLength           uint16 // cm
	BlankAfterTransmit   uint16 // cm
	ProfilingMode        uint8
	LowCorrThreshold     uint8
	CodeReps             uint8
	PercentGoodMin       uint8
	ErrorVelocityMax     uint16 // mm/s
	TPPMinutes           uint8
	TPPSeconds           uint8
	TPPHundredths        uint8
	CoordinateTransform  []byte // 1 byte
	HeadingAlignment     int16  // 0.01 degree
	HeadingBias          int16  // 0.01 degree
	SensorSource         uint8
	SensorsAvailable     uint8
	Bin1Distance         uint16 // cm
	TransmitPulseLength  uint16 // cm
	RefLayerStart        uint8
	RefLayerEnd          uint8
	FalseTargetThreshold uint8
	Spare1               []byte // 1 byte
	TransmitLagDistance  uint16
	CPUSerial            []byte // 8 bytes
	SystemBandwidth      uint16
	SystemPower          uint8
	Spare2               []byte // 1 byte
	SerialNumber         uint32
	BeamAngle            uint8
}

// VariableLeader holds the per-ping timing, attitude and sensor readings.
type VariableLeader struct {
	ID               uint16
	Number           uint16 // low 16 bits of the ensemble number
	Year             uint8  // two-digit RTC year
	Month            uint8
	Day              uint8
	Hour             uint8
	Minute           uint8
	Second           uint8
	Hundredths       uint8
	NumberMSB        uint8
	BITResult        uint16
	SpeedOfSound     uint16 // m/s
	TransducerDepth  uint16 // dm
	Heading          uint16 // 0.01 degree
	Pitch            int16  // 0.01 degree
	Roll             int16  // 0.01 degree
	Salinity         uint16 // ppt
	Temperature      int16  // 0.01 degree C
	MPTMinutes       uint8
	MPTSeconds       uint8
	MPTHundredths    uint8
	HeadingStdDev    uint8
	PitchStdDev      uint8
	RollStdDev       uint8
	ADC              [8]uint8
	ErrorStatus      uint32
	Spare1           []byte // 2 bytes
	Pressure         uint32 // daPa
	PressureVariance uint32
	Spare2           []byte // 1 byte
	Century          uint8
	Y2KYear          uint8
	Y2KMonth         uint8
	Y2KDay           uint8
	Y2KHour          uint8
	Y2KMinute        uint8
	Y2KSecond        uint8
	Y2KHundredths    uint8
}

// BottomTrack is the optional seventh data block.
type BottomTrack struct {
	ID                   uint16
	PingsPerEnsemble     uint16
	DelayBeforeReacquire uint16
	CorrMagMin           uint8
	EvalAmpMin           uint8
	PercentGoodMin       uint8
	Mode                 uint8
	ErrorVelocityMax     uint16
	Reserved1            []byte    // 4 bytes
	Range                [4]uint16 // cm, low 16 bits
	Velocity             [4]int16  // mm/s
	Correlation          [4]uint8
	EvalAmplitude        [4]uint8
	PercentGood          [4]uint8
	RefLayerMin          uint16
	RefLayerNear         uint16
	RefLayerFar          uint16
	RefVelocity          [4]int16
	RefCorrelation       [4]uint8
	RefIntensity         [4]uint8
	RefPercentGood       [4]uint8
	MaxDepth             uint16
	RSSI                 [4]uint8
	Gain                 uint8
	RangeMSB             [4]uint8
	Reserved2            []byte // 4 bytes
}

// RangeCM returns the full bottom range of beam b in centimetres.
func (bt *BottomTrack) RangeCM(b int) uint32 {
	return uint32(bt.Range[b]) | uint32(bt.RangeMSB[b])<<16
}
