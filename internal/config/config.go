package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "PD0"

// Config is the complete processing configuration.
type Config struct {
	Logging     LoggingConfig     `yaml:"logging" envconfig:"LOGGING"`
	Decode      DecodeConfig      `yaml:"decode" envconfig:"DECODE"`
	Geometry    GeometryConfig    `yaml:"geometry" envconfig:"GEOMETRY"`
	Backscatter BackscatterConfig `yaml:"backscatter" envconfig:"BACKSCATTER"`
	Masks       MaskConfig        `yaml:"masks" envconfig:"MASKS"`
	// Interference filters echo intensity before masking.
	Interference InterferenceConfig `yaml:"interference" envconfig:"INTERFERENCE"`
	Workers      int                `yaml:"workers" envconfig:"WORKERS" validate:"gte=1,lte=256"`
	// MetricsTextfile, when set, receives decode counters in Prometheus
	// text format after a run.
	MetricsTextfile string `yaml:"metrics_textfile" envconfig:"METRICS_TEXTFILE"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level     string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format    string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	AddSource bool   `yaml:"add_source" envconfig:"ADD_SOURCE"`
}

// DecodeConfig controls how files are read.
type DecodeConfig struct {
	Window  int `yaml:"window" envconfig:"WINDOW" validate:"gte=64"`
	MaxIter int `yaml:"max_iter" envconfig:"MAX_ITER" validate:"gte=1"`
	// Start and End select a range of relative ensemble numbers. End 0
	// reads to the end of the file.
	Start             int     `yaml:"start" envconfig:"START" validate:"gte=0"`
	End               int     `yaml:"end" envconfig:"END" validate:"gte=0"`
	TimezoneHours     float64 `yaml:"timezone_hours" envconfig:"TIMEZONE_HOURS" validate:"gte=-14,lte=14"`
	MagneticDeviation float64 `yaml:"magnetic_deviation" envconfig:"MAGNETIC_DEVIATION" validate:"gte=-180,lte=180"`
}

// Timezone returns TimezoneHours as a duration.
func (d DecodeConfig) Timezone() time.Duration {
	return time.Duration(d.TimezoneHours * float64(time.Hour))
}

// GeometryConfig describes the instrument mounting.
type GeometryConfig struct {
	Rotation       float64   `yaml:"rotation" envconfig:"ROTATION" validate:"gte=-360,lte=360"`
	Offset         []float64 `yaml:"offset" envconfig:"OFFSET" validate:"len=3"`
	BeamSeparation float64   `yaml:"beam_separation" envconfig:"BEAM_SEPARATION" validate:"gte=0"`
	// UseSensorOrientation takes pitch, roll and heading from the
	// instrument instead of the pose.
	UseSensorOrientation bool          `yaml:"use_sensor_orientation" envconfig:"USE_SENSOR_ORIENTATION"`
	PoseMethod           string        `yaml:"pose_method" envconfig:"POSE_METHOD" validate:"oneof=nearest ffill bfill"`
	PoseTolerance        time.Duration `yaml:"pose_tolerance" envconfig:"POSE_TOLERANCE" validate:"gte=0"`
	Latitude             float64       `yaml:"latitude" envconfig:"LATITUDE" validate:"gte=-90,lte=90"`
}

// BackscatterConfig overrides the instrument backscatter terms. Zero
// values keep the defaults for the instrument.
type BackscatterConfig struct {
	Enabled    bool    `yaml:"enabled" envconfig:"ENABLED"`
	PT3        string  `yaml:"pt3" envconfig:"PT3"`
	C          float64 `yaml:"c" envconfig:"C"`
	NoiseFloor float64 `yaml:"noise_floor" envconfig:"NOISE_FLOOR" validate:"gte=0"`
	Alpha      float64 `yaml:"alpha" envconfig:"ALPHA" validate:"gte=0"`
	PowerDBW   float64 `yaml:"power_dbw" envconfig:"POWER_DBW"`
}

// RangeMask keeps cells whose value lies in [Min, Max].
type RangeMask struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED"`
	Min     float64 `yaml:"min" envconfig:"MIN"`
	Max     float64 `yaml:"max" envconfig:"MAX" validate:"gtefield=Min"`
}

// BottomTrackMask configures the bed proximity mask.
type BottomTrackMask struct {
	Enabled    bool    `yaml:"enabled" envconfig:"ENABLED"`
	CellOffset int     `yaml:"cell_offset" envconfig:"CELL_OFFSET"`
	Spike      bool    `yaml:"spike" envconfig:"SPIKE"`
	Window     int     `yaml:"window" envconfig:"WINDOW" validate:"gte=1"`
	Threshold  float64 `yaml:"threshold" envconfig:"THRESHOLD" validate:"gt=0"`
}

// InterferenceConfig tunes the echo interference filter.
type InterferenceConfig struct {
	Enabled    bool    `yaml:"enabled" envconfig:"ENABLED"`
	Iterations int     `yaml:"iterations" envconfig:"ITERATIONS" validate:"gte=1"`
	Threshold  float64 `yaml:"threshold" envconfig:"THRESHOLD" validate:"gt=0"`
	Sigma      float64 `yaml:"sigma" envconfig:"SIGMA" validate:"gte=0"`
}

// MaskConfig lists the masks applied after decoding.
type MaskConfig struct {
	Correlation   RangeMask       `yaml:"correlation" envconfig:"CORRELATION"`
	Backscatter   RangeMask       `yaml:"backscatter" envconfig:"BACKSCATTER"`
	SignalToNoise RangeMask       `yaml:"signal_to_noise" envconfig:"SIGNAL_TO_NOISE"`
	BottomTrack   BottomTrackMask `yaml:"bottom_track" envconfig:"BOTTOM_TRACK"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Decode:  DecodeConfig{Window: 5000, MaxIter: 100},
		Geometry: GeometryConfig{
			Offset:         []float64{0, 0, 0},
			BeamSeparation: 0.1,
			PoseMethod:     "nearest",
			PoseTolerance:  time.Second,
		},
		Masks: MaskConfig{
			Correlation:   RangeMask{Min: 64, Max: 255},
			Backscatter:   RangeMask{Min: -95, Max: 0},
			SignalToNoise: RangeMask{Min: 1, Max: 1e4},
			BottomTrack:   BottomTrackMask{Window: 10, Threshold: 5},
		},
		Interference: InterferenceConfig{Iterations: 3, Threshold: 0.05},
		Workers:      4,
	}
}

// Load returns the defaults overlaid with the YAML file at path (skipped
// when path is empty) and then with PD0_ environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field constraint.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
