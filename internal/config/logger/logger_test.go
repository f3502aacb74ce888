package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kadry/internal/config"
)

func newConfig(level, format string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Logging.Level = level
	cfg.Logging.Format = format

	return cfg
}

func Test_NewLogger(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.Config
		expected zerolog.Level
	}{
		{
			name:     "Default",
			cfg:      config.DefaultConfig(),
			expected: zerolog.InfoLevel,
		},
		{
			name:     "Debug level",
			cfg:      newConfig(DebugLevel, ConsoleFormat),
			expected: zerolog.DebugLevel,
		},
		{
			name:     "Warn level and json format",
			cfg:      newConfig(WarnLevel, JSONFormat),
			expected: zerolog.WarnLevel,
		},
		{
			name:     "Empty level and format (defaults)",
			cfg:      newConfig("", ""),
			expected: zerolog.InfoLevel,
		},
		{
			name:     "Unknown format (defaults to console)",
			cfg:      newConfig(ErrorLevel, "unknown"),
			expected: zerolog.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(tt.cfg)
			require.NotNil(t, logger)

			appLogger, ok := logger.(*AppLogger)
			require.True(t, ok)

			assert.Equal(t, tt.expected, appLogger.log.GetLevel())
		})
	}
}

func Test_NewLogger_FillsEmptyConfig(t *testing.T) {
	cfg := newConfig("", "")

	NewLogger(cfg)

	assert.Equal(t, InfoLevel, cfg.Logging.Level)
	assert.Equal(t, ConsoleFormat, cfg.Logging.Format)
}

func Test_NewLoggerWithOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLoggerWithOutput(newConfig(DebugLevel, JSONFormat), &buf)
	logger.WithComponent("NAV").Info().Str("view", "home").Msg("selected")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "NAV", entry["component"])
	assert.Equal(t, "home", entry["view"])
	assert.Equal(t, "selected", entry["message"])
	assert.Equal(t, config.Version, entry["version"])
	assert.Equal(t, "kadry", entry["app"])
}

func Test_NewLoggerWithOutput_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLoggerWithOutput(newConfig(WarnLevel, JSONFormat), &buf)
	logger.Debug().Msg("hidden")
	logger.Info().Msg("hidden")

	assert.Empty(t, buf.String())

	logger.Warn().Msg("shown")
	logger.Error().Msg("shown")

	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("shown")))
}

func Test_NewNopLogger(t *testing.T) {
	logger := NewNopLogger()

	assert.NotPanics(t, func() {
		logger.Debug().Msg("ignored")
		logger.WithComponent("UI").Error().Msg("ignored")
	})
}

func Test_newConsoleWriter(t *testing.T) {
	var buf bytes.Buffer

	log := zerolog.New(newConsoleWriter(&buf)).With().Str("component", "CLI").Logger()
	log.Info().Msg("rendered")

	out := buf.String()
	assert.Contains(t, out, "[CLI]")
	assert.Contains(t, out, "rendered")
	assert.NotContains(t, out, "component=")
}

func Test_getLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{name: "Debug", level: DebugLevel, expected: zerolog.DebugLevel},
		{name: "Info", level: InfoLevel, expected: zerolog.InfoLevel},
		{name: "Warn", level: WarnLevel, expected: zerolog.WarnLevel},
		{name: "Error", level: ErrorLevel, expected: zerolog.ErrorLevel},
		{name: "Fatal", level: FatalLevel, expected: zerolog.FatalLevel},
		{name: "Panic", level: PanicLevel, expected: zerolog.PanicLevel},
		{name: "Trace", level: TraceLevel, expected: zerolog.TraceLevel},
		{name: "Unknown", level: "unknown", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getLogLevel(tt.level))
		})
	}
}

func Test_Module(t *testing.T) {
	assert.NotNil(t, Module)
}
