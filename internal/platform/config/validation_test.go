package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a fully valid configuration for testing.
func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "mood-journal",
			Version:     "1.0.0",
			Environment: "local",
		},
		Store: StoreConfig{
			Path:        "mood_journal.db",
			BusyTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "pretty",
		},
		Telemetry: TelemetryConfig{
			Exporter:     "log",
			ServiceName:  "mood-journal",
			SamplingRate: 1.0,
		},
		Journal: JournalConfig{
			Moods: []string{"😊", "😔"},
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	cfg := validConfig()
	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestConfig_Validate_AppConfig(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		cfg := validConfig()
		cfg.App.Name = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "app.name")
		assert.Contains(t, err.Error(), "required")
	})

	t.Run("invalid environment", func(t *testing.T) {
		cfg := validConfig()
		cfg.App.Environment = "invalid"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "app.environment")
		assert.Contains(t, err.Error(), "must be one of")
	})
}

func TestConfig_Validate_ValidEnvironments(t *testing.T) {
	validEnvs := []string{"local", "dev", "qa", "prod", "test"}

	for _, env := range validEnvs {
		t.Run(env, func(t *testing.T) {
			cfg := validConfig()
			cfg.App.Environment = env

			err := cfg.Validate()
			assert.NoError(t, err)
		})
	}
}

func TestConfig_Validate_StoreConfig(t *testing.T) {
	t.Run("missing path", func(t *testing.T) {
		cfg := validConfig()
		cfg.Store.Path = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "store.path is required")
	})

	t.Run("negative busy timeout", func(t *testing.T) {
		cfg := validConfig()
		cfg.Store.BusyTimeout = -time.Second

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "store.busy_timeout")
	})

	t.Run("zero busy timeout", func(t *testing.T) {
		cfg := validConfig()
		cfg.Store.BusyTimeout = 0

		assert.NoError(t, cfg.Validate())
	})
}

func TestConfig_Validate_LogConfig(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		levels := []string{"trace", "debug", "info", "warn", "error"}
		for _, level := range levels {
			t.Run(level, func(t *testing.T) {
				cfg := validConfig()
				cfg.Log.Level = level

				err := cfg.Validate()
				assert.NoError(t, err)
			})
		}
	})

	t.Run("case sensitive log level", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.Level = "DEBUG"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.level")
		assert.Contains(t, err.Error(), "must be one of")
	})

	t.Run("invalid log format", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.Format = "xml"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.format")
	})
}

func TestConfig_Validate_LogFileConfig(t *testing.T) {
	t.Run("file logging disabled - path not required", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.File.Enabled = false
		cfg.Log.File.Path = ""

		err := cfg.Validate()
		assert.NoError(t, err)
	})

	t.Run("file logging enabled - path required", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.File.Enabled = true
		cfg.Log.File.Path = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.file.path")
	})

	t.Run("max size bounds", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.File.Enabled = true
		cfg.Log.File.Path = "./logs/moodjournal.log"
		cfg.Log.File.MaxSizeMB = 1025

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.file.max_size")
	})
}

func TestConfig_Validate_TelemetryConfig(t *testing.T) {
	t.Run("log exporter needs no endpoint", func(t *testing.T) {
		cfg := validConfig()
		cfg.Telemetry.Enabled = true

		assert.NoError(t, cfg.Validate())
	})

	t.Run("otlp exporter requires endpoint", func(t *testing.T) {
		cfg := validConfig()
		cfg.Telemetry.Enabled = true
		cfg.Telemetry.Exporter = "otlp"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "telemetry.endpoint")
	})

	t.Run("otlp endpoint must be host:port", func(t *testing.T) {
		cfg := validConfig()
		cfg.Telemetry.Exporter = "otlp"
		cfg.Telemetry.Endpoint = "http://collector:4317/v1"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be host:port")
	})

	t.Run("otlp with endpoint", func(t *testing.T) {
		cfg := validConfig()
		cfg.Telemetry.Enabled = true
		cfg.Telemetry.Exporter = "otlp"
		cfg.Telemetry.Endpoint = "localhost:4317"

		assert.NoError(t, cfg.Validate())
	})

	t.Run("unknown exporter", func(t *testing.T) {
		cfg := validConfig()
		cfg.Telemetry.Exporter = "zipkin"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "telemetry.exporter")
	})

	t.Run("sampling rate above one", func(t *testing.T) {
		cfg := validConfig()
		cfg.Telemetry.SamplingRate = 1.5

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "telemetry.sampling_rate must be at most 1")
	})

	t.Run("enabled requires service name", func(t *testing.T) {
		cfg := validConfig()
		cfg.Telemetry.Enabled = true
		cfg.Telemetry.ServiceName = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "telemetry.service_name")
	})
}

func TestConfig_Validate_JournalConfig(t *testing.T) {
	t.Run("empty vocabulary", func(t *testing.T) {
		cfg := validConfig()
		cfg.Journal.Moods = nil

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "journal.moods")
	})

	t.Run("blank mood", func(t *testing.T) {
		cfg := validConfig()
		cfg.Journal.Moods = []string{"😊", ""}

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "journal.moods[1]")
	})
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := &Config{
		App: AppConfig{
			Name:        "",        // missing
			Version:     "",        // missing
			Environment: "invalid", // invalid
		},
	}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "app.name")
	assert.Contains(t, errStr, "app.version")
	assert.Contains(t, errStr, "store is required")
}

func TestFormatFieldPath(t *testing.T) {
	tests := []struct {
		namespace string
		expected  string
	}{
		{"Config.store.busy_timeout", "store.busy_timeout"},
		{"Config.app.name", "app.name"},
		{"Config.log.file.path", "log.file.path"},
		{"Config.journal.moods[0]", "journal.moods[0]"},
		{"Config.Telemetry.SamplingRate", "telemetry.samplingrate"},
	}

	for _, tt := range tests {
		t.Run(tt.namespace, func(t *testing.T) {
			result := formatFieldPath(tt.namespace)
			assert.Equal(t, tt.expected, result)
		})
	}
}
