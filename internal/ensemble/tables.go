package ensemble

import "github.com/robert-malhotra/go-pd0/internal/field"

// HeaderTable is the layout of the ensemble header up to the address offsets.
var HeaderTable = []field.Field[Header]{
	{Name: "HEADER ID", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *Header) any { return &r.HeaderID }},
	{Name: "DATA SOURCE ID", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *Header) any { return &r.DataSourceID }},
	{Name: "N BYTES IN ENSEMBLE", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *Header) any { return &r.Bytes }},
	{Name: "SPARE", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *Header) any { return &r.Spare }},
	{Name: "N DATA TYPES", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *Header) any { return &r.DataTypes }},
}

// FixedLeaderTable is the fixed leader layout.
var FixedLeaderTable = []field.Field[FixedLeader]{
	{Name: "FIXED LEADER ID", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.ID }},
	{Name: "CPU F/W VER.", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.CPUVersion }},
	{Name: "CPU F/W REV.", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.CPURevision }},
	{Name: "SYSTEM CONFIGURATION", Width: 2, Kind: field.Bytes, Ref: func(r *FixedLeader) any { return &r.SystemConfig }},
	{Name: "REAL/SIM FLAG", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.RealSim }},
	{Name: "LAG LENGTH", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.LagLength }},
	{Name: "NUMBER OF BEAMS", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.Beams }},
	{Name: "NUMBER OF CELLS {WN}", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.Cells }},
	{Name: "PINGS PER ENSEMBLE {WP}", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.PingsPerEnsemble }},
	{Name: "DEPTH CELL LENGTH {WS}", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.CellLength }},
	{Name: "BLANK AFTER TRANSMIT {WF}", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.BlankAfterTransmit }},
	{Name: "PROFILING MODE {WM}", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.ProfilingMode }},
	{Name: "LOW CORR THRESH {WC}", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.LowCorrThreshold }},
	{Name: "NO. CODE REPS", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.CodeReps }},
	{Name: "%GD MINIMUM {WG}", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.PercentGoodMin }},
	{Name: "ERROR VELOCITY MAXIMUM {WE}", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.ErrorVelocityMax }},
	{Name: "TPP MINUTES", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.TPPMinutes }},
	{Name: "TPP SECONDS", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.TPPSeconds }},
	{Name: "TPP HUNDREDTHS {TP}", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.TPPHundredths }},
	{Name: "COORDINATE TRANSFORM {EX}", Width: 1, Kind: field.Bytes, Ref: func(r *FixedLeader) any { return &r.CoordinateTransform }},
	{Name: "HEADING ALIGNMENT {EA}", Width: 2, Kind: field.Int, Decoded: true, Ref: func(r *FixedLeader) any { return &r.HeadingAlignment }},
	{Name: "HEADING BIAS {EB}", Width: 2, Kind: field.Int, Decoded: true, Ref: func(r *FixedLeader) any { return &r.HeadingBias }},
	{Name: "SENSOR SOURCE {EZ}", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.SensorSource }},
	{Name: "SENSORS AVAILABLE", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.SensorsAvailable }},
	{Name: "BIN 1 DISTANCE", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.Bin1Distance }},
	{Name: "XMIT PULSE LENGTH BASED ON {WT}", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.TransmitPulseLength }},
	{Name: "WP REF LAYER AVERAGE {WL} START CELL", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.RefLayerStart }},
	{Name: "WP REF LAYER AVERAGE {WL} END CELL", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.RefLayerEnd }},
	{Name: "FALSE TARGET THRESH {WA}", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.FalseTargetThreshold }},
	{Name: "SPARE1", Width: 1, Kind: field.Bytes, Ref: func(r *FixedLeader) any { return &r.Spare1 }},
	{Name: "TRANSMIT LAG DISTANCE", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.TransmitLagDistance }},
	{Name: "CPU BOARD SERIAL NUMBER", Width: 8, Kind: field.Bytes, Ref: func(r *FixedLeader) any { return &r.CPUSerial }},
	{Name: "SYSTEM BANDWIDTH {WB}", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.SystemBandwidth }},
	{Name: "SYSTEM POWER {CQ}", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.SystemPower }},
	{Name: "SPARE2", Width: 1, Kind: field.Bytes, Ref: func(r *FixedLeader) any { return &r.Spare2 }},
	{Name: "INSTRUMENT SERIAL NUMBER", Width: 4, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.SerialNumber }},
	{Name: "BEAM ANGLE", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *FixedLeader) any { return &r.BeamAngle }},
}

// VariableLeaderTable is the variable leader layout.
var VariableLeaderTable = []field.Field[VariableLeader]{
	{Name: "VARIABLE LEADER ID", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.ID }},
	{Name: "ENSEMBLE NUMBER", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.Number }},
	{Name: "RTC YEAR {TS}", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.Year }},
	{Name: "RTC MONTH {TS}", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.Month }},
	{Name: "RTC DAY {TS}", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.Day }},
	{Name: "RTC HOUR {TS}", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.Hour }},
	{Name: "RTC MINUTE {TS}", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.Minute }},
	{Name: "RTC SECOND {TS}", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.Second }},
	{Name: "RTC HUNDREDTHS {TS}", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.Hundredths }},
	{Name: "ENSEMBLE # MSB", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.NumberMSB }},
	{Name: "BIT RESULT", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.BITResult }},
	{Name: "SPEED OF SOUND {EC}", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.SpeedOfSound }},
	{Name: "DEPTH OF TRANSDUCER {ED}", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.TransducerDepth }},
	{Name: "HEADING {EH}", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.Heading }},
	{Name: "PITCH TILT 1 {EP}", Width: 2, Kind: field.Int, Decoded: true, Ref: func(r *VariableLeader) any { return &r.Pitch }},
	{Name: "ROLL TILT 2 {ER}", Width: 2, Kind: field.Int, Decoded: true, Ref: func(r *VariableLeader) any { return &r.Roll }},
	{Name: "SALINITY {ES}", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.Salinity }},
	{Name: "TEMPERATURE {ET}", Width: 2, Kind: field.Int, Decoded: true, Ref: func(r *VariableLeader) any { return &r.Temperature }},
	{Name: "MPT MINUTES", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.MPTMinutes }},
	{Name: "MPT SECONDS", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.MPTSeconds }},
	{Name: "MPT HUNDREDTHS", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.MPTHundredths }},
	{Name: "HDG STD DEV", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.HeadingStdDev }},
	{Name: "PITCH STD DEV", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.PitchStdDev }},
	{Name: "ROLL STD DEV", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.RollStdDev }},
	{Name: "ADC CHANNEL 0", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.ADC[0] }},
	{Name: "ADC CHANNEL 1", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.ADC[1] }},
	{Name: "ADC CHANNEL 2", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.ADC[2] }},
	{Name: "ADC CHANNEL 3", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.ADC[3] }},
	{Name: "ADC CHANNEL 4", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.ADC[4] }},
	{Name: "ADC CHANNEL 5", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.ADC[5] }},
	{Name: "ADC CHANNEL 6", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.ADC[6] }},
	{Name: "ADC CHANNEL 7", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.ADC[7] }},
	{Name: "ERROR STATUS WORD ESW {CY}", Width: 4, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.ErrorStatus }},
	{Name: "SPARE1", Width: 2, Kind: field.Bytes, Ref: func(r *VariableLeader) any { return &r.Spare1 }},
	{Name: "PRESSURE", Width: 4, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.Pressure }},
	{Name: "PRESSURE SENSOR VARIANCE", Width: 4, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.PressureVariance }},
	{Name: "SPARE2", Width: 1, Kind: field.Bytes, Ref: func(r *VariableLeader) any { return &r.Spare2 }},
	{Name: "RTC CENTURY", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.Century }},
	{Name: "RTC YEAR", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.Y2KYear }},
	{Name: "RTC MONTH", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.Y2KMonth }},
	{Name: "RTC DAY", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.Y2KDay }},
	{Name: "RTC HOUR", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.Y2KHour }},
	{Name: "RTC MINUTE", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.Y2KMinute }},
	{Name: "RTC SECOND", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.Y2KSecond }},
	{Name: "RTC HUNDREDTH", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *VariableLeader) any { return &r.Y2KHundredths }},
}

// BottomTrackTable is the bottom-track block layout.
var BottomTrackTable = []field.Field[BottomTrack]{
	{Name: "BOTTOM-TRACK ID", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.ID }},
	{Name: "BT PINGS PER ENSEMBLE {BP}", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.PingsPerEnsemble }},
	{Name: "BT DELAY BEFORE RE-ACQUIRE {BD}", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.DelayBeforeReacquire }},
	{Name: "BT CORR MAG MIN {BC}", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.CorrMagMin }},
	{Name: "BT EVAL AMP MIN {BA}", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.EvalAmpMin }},
	{Name: "BT PERCENT GOOD MIN {BG}", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.PercentGoodMin }},
	{Name: "BT MODE {BM}", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.Mode }},
	{Name: "BT ERR VEL MAX {BE}", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.ErrorVelocityMax }},
	{Name: "RESERVED1", Width: 4, Kind: field.Bytes, Ref: func(r *BottomTrack) any { return &r.Reserved1 }},
	{Name: "BEAM#1 BT RANGE", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.Range[0] }},
	{Name: "BEAM#2 BT RANGE", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.Range[1] }},
	{Name: "BEAM#3 BT RANGE", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.Range[2] }},
	{Name: "BEAM#4 BT RANGE", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.Range[3] }},
	{Name: "BEAM#1 BT VEL", Width: 2, Kind: field.Int, Decoded: true, Ref: func(r *BottomTrack) any { return &r.Velocity[0] }},
	{Name: "BEAM#2 BT VEL", Width: 2, Kind: field.Int, Decoded: true, Ref: func(r *BottomTrack) any { return &r.Velocity[1] }},
	{Name: "BEAM#3 BT VEL", Width: 2, Kind: field.Int, Decoded: true, Ref: func(r *BottomTrack) any { return &r.Velocity[2] }},
	{Name: "BEAM#4 BT VEL", Width: 2, Kind: field.Int, Decoded: true, Ref: func(r *BottomTrack) any { return &r.Velocity[3] }},
	{Name: "BEAM#1 BT CORR.", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.Correlation[0] }},
	{Name: "BEAM#2 BT CORR.", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.Correlation[1] }},
	{Name: "BEAM#3 BT CORR.", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.Correlation[2] }},
	{Name: "BEAM#4 BT CORR.", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.Correlation[3] }},
	{Name: "BEAM#1 EVAL AMP", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.EvalAmplitude[0] }},
	{Name: "BEAM#2 EVAL AMP", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.EvalAmplitude[1] }},
	{Name: "BEAM#3 EVAL AMP", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.EvalAmplitude[2] }},
	{Name: "BEAM#4 EVAL AMP", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.EvalAmplitude[3] }},
	{Name: "BEAM#1 BT %GOOD", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.PercentGood[0] }},
	{Name: "BEAM#2 BT %GOOD", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.PercentGood[1] }},
	{Name: "BEAM#3 BT %GOOD", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.PercentGood[2] }},
	{Name: "BEAM#4 BT %GOOD", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.PercentGood[3] }},
	{Name: "REF LAYER MIN {BL}", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.RefLayerMin }},
	{Name: "REF LAYER NEAR {BL}", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.RefLayerNear }},
	{Name: "REF LAYER FAR {BL}", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.RefLayerFar }},
	{Name: "BEAM#1 REF LAYER VEL", Width: 2, Kind: field.Int, Decoded: true, Ref: func(r *BottomTrack) any { return &r.RefVelocity[0] }},
	{Name: "BEAM#2 REF LAYER VEL", Width: 2, Kind: field.Int, Decoded: true, Ref: func(r *BottomTrack) any { return &r.RefVelocity[1] }},
	{Name: "BEAM#3 REF LAYER VEL", Width: 2, Kind: field.Int, Decoded: true, Ref: func(r *BottomTrack) any { return &r.RefVelocity[2] }},
	{Name: "BEAM#4 REF LAYER VEL", Width: 2, Kind: field.Int, Decoded: true, Ref: func(r *BottomTrack) any { return &r.RefVelocity[3] }},
	{Name: "BEAM#1 REF CORR", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.RefCorrelation[0] }},
	{Name: "BEAM#2 REF CORR", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.RefCorrelation[1] }},
	{Name: "BEAM#3 REF CORR", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.RefCorrelation[2] }},
	{Name: "BEAM#4 REF CORR", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.RefCorrelation[3] }},
	{Name: "BEAM#1 REF INT", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.RefIntensity[0] }},
	{Name: "BEAM#2 REF INT", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.RefIntensity[1] }},
	{Name: "BEAM#3 REF INT", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.RefIntensity[2] }},
	{Name: "BEAM#4 REF INT", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.RefIntensity[3] }},
	{Name: "BEAM#1 REF %GOOD", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.RefPercentGood[0] }},
	{Name: "BEAM#2 REF %GOOD", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.RefPercentGood[1] }},
	{Name: "BEAM#3 REF %GOOD", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.RefPercentGood[2] }},
	{Name: "BEAM#4 REF %GOOD", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.RefPercentGood[3] }},
	{Name: "BT MAX. DEPTH {BX}", Width: 2, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.MaxDepth }},
	{Name: "BEAM#1 RSSI AMP", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.RSSI[0] }},
	{Name: "BEAM#2 RSSI AMP", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.RSSI[1] }},
	{Name: "BEAM#3 RSSI AMP", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.RSSI[2] }},
	{Name: "BEAM#4 RSSI AMP", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.RSSI[3] }},
	{Name: "GAIN", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.Gain }},
	{Name: "BEAM#1 BT RANGE MSB", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.RangeMSB[0] }},
	{Name: "BEAM#2 BT RANGE MSB", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.RangeMSB[1] }},
	{Name: "BEAM#3 BT RANGE MSB", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.RangeMSB[2] }},
	{Name: "BEAM#4 BT RANGE MSB", Width: 1, Kind: field.Uint, Decoded: true, Ref: func(r *BottomTrack) any { return &r.RangeMSB[3] }},
	{Name: "RESERVED2", Width: 4, Kind: field.Bytes, Ref: func(r *BottomTrack) any { return &r.Reserved2 }},
}
