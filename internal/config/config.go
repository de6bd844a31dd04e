package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

// DefaultEnvFile is read when no --env-file is given.
const DefaultEnvFile = ".env"

var ErrMissingURI = errors.New("MONGODB_URI is not set")

type Config struct {
	Database  DatabaseConfig  `mapstructure:",squash"`
	Log       LogConfig       `mapstructure:",squash"`
	Telemetry TelemetryConfig `mapstructure:",squash"`

	// Seed feeds the random source. Zero means seed from the clock.
	Seed uint64 `mapstructure:"SEED_RANDOM"`

	Batch Batch `mapstructure:"-"`
}

type DatabaseConfig struct {
	URI            string        `mapstructure:"MONGODB_URI"`
	ConnectTimeout time.Duration `mapstructure:"CONNECT_TIMEOUT"`
}

type LogConfig struct {
	Level string `mapstructure:"LOG_LEVEL"`
}

type TelemetryConfig struct {
	RedisURL       string `mapstructure:"REDIS_URL"`
	PushgatewayURL string `mapstructure:"PUSHGATEWAY_URL"`
}

// Batch holds the default size of each generator, overridable with SEED_*.
type Batch struct {
	Patients     int `envconfig:"PATIENTS" default:"15"`
	Doctors      int `envconfig:"DOCTORS" default:"20"`
	Nurses       int `envconfig:"NURSES" default:"7"`
	Appointments int `envconfig:"APPOINTMENTS" default:"150"`
	Records      int `envconfig:"RECORDS" default:"25"`
}

var keys = []string{
	"MONGODB_URI",
	"CONNECT_TIMEOUT",
	"LOG_LEVEL",
	"REDIS_URL",
	"PUSHGATEWAY_URL",
	"SEED_RANDOM",
}

// Load reads path when it exists, then the process environment, which wins.
// An empty path means DefaultEnvFile.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultEnvFile
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CONNECT_TIMEOUT", "10s")
	v.SetDefault("SEED_RANDOM", 0)

	// Unmarshal only sees keys viper already knows about.
	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read env file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Database.URI == "" {
		return nil, ErrMissingURI
	}

	batch, err := LoadBatch()
	if err != nil {
		return nil, err
	}
	if err := overlayBatch(v, &batch); err != nil {
		return nil, err
	}
	cfg.Batch = batch

	return &cfg, nil
}

func LoadBatch() (Batch, error) {
	var b Batch
	if err := envconfig.Process("SEED", &b); err != nil {
		return Batch{}, fmt.Errorf("failed to load batch sizes: %w", err)
	}
	return b, nil
}

// overlayBatch applies SEED_* sizes that viper sees, so the env file can set
// them too. envconfig only reads the process environment.
func overlayBatch(v *viper.Viper, b *Batch) error {
	sizes := map[string]*int{
		"SEED_PATIENTS":     &b.Patients,
		"SEED_DOCTORS":      &b.Doctors,
		"SEED_NURSES":       &b.Nurses,
		"SEED_APPOINTMENTS": &b.Appointments,
		"SEED_RECORDS":      &b.Records,
	}
	for key, size := range sizes {
		raw := v.GetString(key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("failed to load batch sizes: invalid %s: %w", key, err)
		}
		*size = n
	}
	return nil
}
