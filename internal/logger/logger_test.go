package logger

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"seq-processor/internal/config"
	"seq-processor/internal/constants"
	"seq-processor/internal/errors"
	"testing"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LoggerConfig
		wantErr   error
		wantLevel zapcore.Level
	}{
		{
			name:      "TextDebug",
			cfg:       config.LoggerConfig{Level: constants.LogLevelDebug, Format: constants.LogFormatText},
			wantLevel: zapcore.DebugLevel,
		},
		{
			name:      "JSONWarnStdout",
			cfg:       config.LoggerConfig{Level: constants.LogLevelWarn, Format: constants.LogFormatJSON, Output: constants.LogOutputStdout},
			wantLevel: zapcore.WarnLevel,
		},
		{
			name:    "InvalidLevel",
			cfg:     config.LoggerConfig{Level: "TRACE"},
			wantErr: errors.ErrInvalidLogLevel,
		},
		{
			name:    "InvalidOutput",
			cfg:     config.LoggerConfig{Level: constants.LogLevelInfo, Output: "/dev/null/x"},
			wantErr: errors.ErrInvalidLogOutput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := NewLogger(tt.cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, log)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, log)
			assert.True(t, log.Core().Enabled(tt.wantLevel))
			if tt.wantLevel > zapcore.DebugLevel {
				assert.False(t, log.Core().Enabled(tt.wantLevel-1))
			}
		})
	}
}

func TestGetLogLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		constants.LogLevelDebug: zapcore.DebugLevel,
		constants.LogLevelInfo:  zapcore.InfoLevel,
		constants.LogLevelWarn:  zapcore.WarnLevel,
		constants.LogLevelError: zapcore.ErrorLevel,
	}
	for in, want := range tests {
		got, err := getLogLevel(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := getLogLevel("info")
	assert.ErrorIs(t, err, errors.ErrInvalidLogLevel)
}
