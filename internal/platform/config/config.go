// Package config provides configuration loading and management using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jsamuelsen/mood-journal/internal/domain"
)

// EnvPrefix prefixes every environment override. Nested keys are separated
// by a double underscore: MOODJOURNAL_STORE__BUSY_TIMEOUT sets store.busy_timeout.
const EnvPrefix = "MOODJOURNAL_"

// Default configuration values.
const (
	// DefaultStorePath is the journal file, relative to the working directory.
	DefaultStorePath = "mood_journal.db"

	// DefaultBusyTimeout is how long a second process waits on the file lock.
	DefaultBusyTimeout = 5 * time.Second

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 10

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28
)

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Store     StoreConfig     `koanf:"store"     validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Metrics   MetricsConfig   `koanf:"metrics"`
	Journal   JournalConfig   `koanf:"journal"   validate:"required"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// StoreConfig locates the journal file.
type StoreConfig struct {
	Path        string        `koanf:"path"         validate:"required"`
	BusyTimeout time.Duration `koanf:"busy_timeout" validate:"min=0s"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Exporter     string  `koanf:"exporter"      validate:"oneof=log otlp"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Exporter otlp,omitempty,hostname_port"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// MetricsConfig controls the Prometheus textfile snapshot. An empty path
// disables it.
type MetricsConfig struct {
	TextfilePath string `koanf:"textfile_path"`
}

// JournalConfig contains the mood vocabulary.
type JournalConfig struct {
	Moods       []string `koanf:"moods"        validate:"required,min=1,dive,required"`
	StrictMoods bool     `koanf:"strict_moods"`
}

// Sources locates the files Load reads. Missing files are skipped.
type Sources struct {
	ConfigDir string
	DotEnv    string
}

// DefaultSources reads configs/ and .env from the working directory.
func DefaultSources() Sources {
	return Sources{ConfigDir: "configs", DotEnv: ".env"}
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "mood-journal",
		"app.version":     "dev",
		"app.environment": "local",

		"store.path":         DefaultStorePath,
		"store.busy_timeout": DefaultBusyTimeout.String(),

		"log.level":            "info",
		"log.format":           "pretty",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/moodjournal.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.exporter":      "log",
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "mood-journal",
		"telemetry.sampling_rate": 1.0,

		"metrics.textfile_path": "",

		"journal.moods":        domain.DefaultMoods,
		"journal.strict_moods": false,
	}
}

// DefaultProfile is used when MOODJOURNAL_ENVIRONMENT is unset.
const DefaultProfile = "local"

// ResolveProfile picks the profile config file to layer on top of
// base.yaml. The .env file is loaded first so it can select the profile.
func ResolveProfile(src Sources) (string, error) {
	if err := loadDotEnvIfExists(src.DotEnv); err != nil {
		return "", fmt.Errorf("loading .env: %w", err)
	}

	if profile := os.Getenv(EnvPrefix + "ENVIRONMENT"); profile != "" {
		return profile, nil
	}

	return DefaultProfile, nil
}

// Load loads configuration from the default sources with the following
// precedence (highest to lowest):
//  1. Environment variables (MOODJOURNAL_ prefix, including .env)
//  2. Profile config file (configs/{profile}.yaml)
//  3. Base config file (configs/base.yaml)
//  4. Default values
func Load(profile string) (*Config, error) {
	return LoadFrom(DefaultSources(), profile)
}

// LoadFrom is Load with explicit file locations.
func LoadFrom(src Sources, profile string) (*Config, error) {
	k := koanf.New(".")

	// .env never overrides variables already set in the environment
	if err := loadDotEnvIfExists(src.DotEnv); err != nil {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	err := k.Load(confmap.Provider(defaults(), "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if src.ConfigDir != "" {
		err = loadFileIfExists(k, filepath.Join(src.ConfigDir, "base.yaml"))
		if err != nil {
			return nil, fmt.Errorf("loading base config: %w", err)
		}

		if profile != "" {
			err := loadFileIfExists(k, filepath.Join(src.ConfigDir, profile+".yaml"))
			if err != nil {
				return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
			}
		}
	}

	err = k.Load(env.ProviderWithValue(EnvPrefix, ".", envKeyValue), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envKeyValue maps MOODJOURNAL_JOURNAL__MOODS=a,b to journal.moods=[a b].
func envKeyValue(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	key = strings.ReplaceAll(key, "__", ".")

	// MOODJOURNAL_ENVIRONMENT selects the profile and names it.
	if key == "environment" {
		return "app.environment", value
	}

	if key == "journal.moods" {
		moods := strings.Split(value, ",")
		for i := range moods {
			moods[i] = strings.TrimSpace(moods[i])
		}

		return key, moods
	}

	return key, value
}

// loadFileIfExists loads a YAML config file if it exists.
// Returns nil if the file doesn't exist, error only for parse/read failures.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}

func loadDotEnvIfExists(path string) error {
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return godotenv.Load(path)
}
