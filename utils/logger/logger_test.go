package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestReplace(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	restore := Replace(zap.New(core))

	Info("activity", zap.String("action", "user_login"))
	Debug("dropped below level")
	Error("[Login] err userRepo.Get", zap.String("error", "db down"))
	restore()

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "user_login", entries[0].ContextMap()["action"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)

	Info("after restore")
	assert.Equal(t, 2, logs.Len())
}

func TestInit(t *testing.T) {
	restore := Replace(Get())
	defer restore()

	assert.NoError(t, Init("production", "worker"))
	assert.NotNil(t, Get())
}
