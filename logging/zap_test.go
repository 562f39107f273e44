package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromZapForwardsWithLevels(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core))

	log.Error("e-msg")
	log.Warn("w-msg")
	log.Info("i-msg")

	entries := observed.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "e-msg", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "w-msg", entries[1].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[2].Level)
	assert.Equal(t, "i-msg", entries[2].Message)
}
