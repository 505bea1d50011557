package logger_test

import (
	"bytes"
	"errors"
	"resort/config"
	"resort/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	original := log.Logger
	originalLevel := zerolog.GlobalLevel()
	buf := &bytes.Buffer{}
	log.Logger = log.Output(buf)

	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(originalLevel)
	})

	return buf
}

func TestInitLogger(t *testing.T) {
	captureLogs(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	buf := captureLogs(t)

	logger.ErrorWithStack(errors.New("smtp dial failed"))

	assert.Contains(t, buf.String(), "smtp dial failed")
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.TraceLevel},
		{"loud", zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			captureLogs(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.level

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestQueueLogger(t *testing.T) {
	buf := captureLogs(t)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	queueLogger := logger.QueueLogger{Component: "mail-worker"}
	queueLogger.Info("worker ", "started")
	queueLogger.Warn("retrying")

	out := buf.String()
	assert.Contains(t, out, "worker started")
	assert.Contains(t, out, "mail-worker")
	assert.Contains(t, out, "retrying")
}
