package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/temirov/exampledoc/internal/utils"
)

func TestJoinSlashPath(t *testing.T) {
	testCases := []struct {
		name     string
		segments []string
		expected string
	}{
		{name: "no_segments", segments: nil, expected: ""},
		{name: "root_file", segments: []string{"", "auth.md"}, expected: "auth.md"},
		{name: "nested", segments: []string{"services/billing", "charge.md"}, expected: "services/billing/charge.md"},
		{name: "skips_dot", segments: []string{".", "auth", "auth.md"}, expected: "auth/auth.md"},
		{name: "trims_separators", segments: []string{"/services/", "/auth.md"}, expected: "services/auth.md"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expected, utils.JoinSlashPath(testCase.segments...))
		})
	}
}

func TestNewApplicationLoggerAtLevel(t *testing.T) {
	logger, loggerError := utils.NewApplicationLoggerAtLevel(zapcore.DebugLevel)
	require.NoError(t, loggerError)
	require.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	infoLogger, infoError := utils.NewApplicationLogger()
	require.NoError(t, infoError)
	require.False(t, infoLogger.Core().Enabled(zapcore.DebugLevel))
	require.True(t, infoLogger.Core().Enabled(zapcore.InfoLevel))
}
