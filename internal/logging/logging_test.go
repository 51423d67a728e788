package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, level := range []string{"debug", "info", "WARN", "error"} {
		logger, err := New(level)
		require.NoError(t, err, level)

		want, _ := zapcore.ParseLevel(level)
		assert.True(t, logger.Core().Enabled(want))
		assert.False(t, logger.Core().Enabled(want-1))
	}
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New("chatty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
}
