package logger

import (
	"testing"

	"github.com/GlebRadaev/creditmatch/internal/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name          string
		lvl           string
		expectedError bool
		enabled       zapcore.Level
	}{
		{name: "debug", lvl: "debug", enabled: zapcore.DebugLevel},
		{name: "info", lvl: "info", enabled: zapcore.InfoLevel},
		{name: "warn", lvl: "warn", enabled: zapcore.WarnLevel},
		{name: "error", lvl: "error", enabled: zapcore.ErrorLevel},
		{name: "invalid", lvl: "verbose", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(&config.Config{LogLvl: tt.lvl})
			if tt.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.True(t, zap.L().Core().Enabled(tt.enabled))
		})
	}
}
