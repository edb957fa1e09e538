package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestConfig_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"WARN", zapcore.WarnLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := Config(tt.level)
			assert.Equal(t, tt.want, cfg.Level.Level())
		})
	}
}

func TestConfig_NeverWritesStdout(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := Config(level)
		assert.Equal(t, []string{"stderr"}, cfg.OutputPaths, level)
		assert.Equal(t, []string{"stderr"}, cfg.ErrorOutputPaths, level)
	}
}

func TestConfig_DebugUsesDevelopmentEncoder(t *testing.T) {
	assert.True(t, Config("debug").Development)
	assert.False(t, Config("info").Development)
}

func TestNew(t *testing.T) {
	logger, err := New("debug")
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}
