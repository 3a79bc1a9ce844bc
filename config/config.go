package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/bcdannyboy/turbo/models"
	"github.com/bcdannyboy/turbo/positions"
)

const (
	EnvLogLevel = "TURBO_LOG_LEVEL"
	EnvBump     = "TURBO_BUMP"
	EnvWorkers  = "TURBO_WORKERS"
	EnvConfig   = "TURBO_CONFIG"
)

type Sweep struct {
	From    float64 `yaml:"from"`
	To      float64 `yaml:"to"`
	Points  int     `yaml:"points"`
	Workers int     `yaml:"workers"`
}

// File is the YAML parameter file. Fields left out keep their Default values.
type File struct {
	Parameters models.Inputs `yaml:"parameters"`
	Variant    string        `yaml:"variant"`
	Bump       float64       `yaml:"bump"`
	Sweep      Sweep         `yaml:"sweep"`
}

// Default is the documented sample turbo call.
func Default() File {
	return File{
		Parameters: models.Inputs{
			Spot:           26,
			Strike:         20,
			Maturity:       0.20,
			Rate:           0.05,
			Volatility:     0.10,
			Barrier:        22,
			RebateMaturity: 0.20,
			DividendYield:  0,
		},
		Variant: models.Call.String(),
		Bump:    positions.DefaultSpotBump,
		Sweep: Sweep{
			From:   22.5,
			To:     32,
			Points: 96,
		},
	}
}

func (f File) OptionVariant() (models.OptionVariant, error) {
	return models.ParseOptionVariant(f.Variant)
}

// LoadEnv loads the given .env files, or ./.env when none are given. A missing default file is
// not an error.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("failed to load env files %v: %w", files, err)
	}
	return nil
}

// Load reads the YAML file at path over Default, then applies environment overrides. An empty
// path falls back to $TURBO_CONFIG and then to Default alone.
func Load(path string) (File, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return File{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return File{}, fmt.Errorf("failed to unmarshal config %s: %w", path, err)
		}
		log.WithField("path", path).Debug("loaded parameter file")
	}

	if err := cfg.applyEnv(); err != nil {
		return File{}, err
	}
	return cfg, nil
}

func (f *File) applyEnv() error {
	if v := os.Getenv(EnvBump); v != "" {
		bump, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("failed to parse %s=%q: %w", EnvBump, v, err)
		}
		f.Bump = bump
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("failed to parse %s=%q: %w", EnvWorkers, v, err)
		}
		f.Sweep.Workers = workers
	}
	return nil
}

// SetupLogging applies $TURBO_LOG_LEVEL to the standard logrus logger; info by default.
func SetupLogging() error {
	level := log.InfoLevel
	if v := os.Getenv(EnvLogLevel); v != "" {
		parsed, err := log.ParseLevel(v)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", EnvLogLevel, err)
		}
		level = parsed
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	return nil
}
