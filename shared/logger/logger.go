package logger

import (
	"fmt"
	"os"
	"resort/config"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	log.Logger = log.Output(output)
	log.Trace().Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil || config.Server.LogLevel == "" {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}

// QueueLogger routes the task queue's internal logging into zerolog.
type QueueLogger struct {
	Component string
}

func (l QueueLogger) emit(event *zerolog.Event, args ...any) {
	event.Str("component", l.Component).Msg(fmt.Sprint(args...))
}

func (l QueueLogger) Debug(args ...any) { l.emit(log.Debug(), args...) }
func (l QueueLogger) Info(args ...any)  { l.emit(log.Info(), args...) }
func (l QueueLogger) Warn(args ...any)  { l.emit(log.Warn(), args...) }
func (l QueueLogger) Error(args ...any) { l.emit(log.Error(), args...) }
func (l QueueLogger) Fatal(args ...any) { l.emit(log.Fatal(), args...) }
