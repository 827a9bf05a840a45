package logging

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test_Logger_InitLogger_LogLevelConfiguration tests logger initialization with various log levels
func Test_Logger_InitLogger_LogLevelConfiguration(t *testing.T) {
	tests := []struct {
		name          string
		logLevel      string
		expectedLevel log.Level
	}{
		{name: "debug_level", logLevel: "debug", expectedLevel: log.DebugLevel},
		{name: "info_level", logLevel: "info", expectedLevel: log.InfoLevel},
		{name: "warn_level", logLevel: "warn", expectedLevel: log.WarnLevel},
		{name: "warning_level_alias", logLevel: "warning", expectedLevel: log.WarnLevel},
		{name: "error_level", logLevel: "error", expectedLevel: log.ErrorLevel},
		{name: "default_empty_level", logLevel: "", expectedLevel: log.DebugLevel},
		{name: "default_invalid_level", logLevel: "invalid", expectedLevel: log.DebugLevel},
		{name: "case_mixed_info", logLevel: "InFo", expectedLevel: log.InfoLevel},
		{name: "whitespace_trimmed", logLevel: "  warn  ", expectedLevel: log.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.logLevel)

			Logger = nil
			InitLogger()

			require.NotNil(t, Logger, "Logger should be initialized")
			assert.Equal(t, tt.expectedLevel, Logger.GetLevel())
		})
	}
}

func Test_Logger_GetLogger_SingletonBehavior(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")

	Logger = nil
	logger := GetLogger()
	require.NotNil(t, logger)
	assert.Same(t, Logger, logger, "GetLogger should set and return global Logger instance")

	existing := log.New(os.Stderr)
	Logger = existing
	assert.Same(t, existing, GetLogger(), "GetLogger should return existing logger instance")
}

func Test_Logger_ContextHelpers_Functionality(t *testing.T) {
	var buf bytes.Buffer
	Logger = log.New(&buf)
	Logger.SetLevel(log.DebugLevel)

	tests := []struct {
		name       string
		helperFunc func() *log.Logger
		expectKey  string
	}{
		{
			name:       "with_seed",
			helperFunc: func() *log.Logger { return WithSeed("test-1") },
			expectKey:  "seed=test-1",
		},
		{
			name:       "with_cave_id",
			helperFunc: func() *log.Logger { return WithCaveID("850e8400-e29b-41d4-a716-446655440000") },
			expectKey:  "cave_id=850e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:       "with_dimensions",
			helperFunc: func() *log.Logger { return WithDimensions(64, 32) },
			expectKey:  "width=64",
		},
		{
			name:       "with_duration",
			helperFunc: func() *log.Logger { return WithDuration("generate", 500*time.Millisecond) },
			expectKey:  "operation=generate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()

			logger := tt.helperFunc()
			require.NotNil(t, logger)
			assert.NotSame(t, Logger, logger, "Helper should return new logger instance")

			logger.Info("test log message")
			assert.Contains(t, buf.String(), tt.expectKey)
		})
	}
}

func Test_Logger_LogLevel_Filtering(t *testing.T) {
	tests := []struct {
		name         string
		level        LogLevel
		logFunction  func(*log.Logger, string)
		shouldOutput bool
	}{
		{"debug_level_debug_message", DebugLevel, func(l *log.Logger, msg string) { l.Debug(msg) }, true},
		{"info_level_debug_message", InfoLevel, func(l *log.Logger, msg string) { l.Debug(msg) }, false},
		{"warn_level_info_message", WarnLevel, func(l *log.Logger, msg string) { l.Info(msg) }, false},
		{"error_level_error_message", ErrorLevel, func(l *log.Logger, msg string) { l.Error(msg) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := log.New(&buf)
			SetLevel(logger, tt.level)

			tt.logFunction(logger, "filtered message")

			if tt.shouldOutput {
				assert.Contains(t, buf.String(), "filtered message")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
