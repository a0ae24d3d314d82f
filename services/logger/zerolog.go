package logsvc

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/trezcool/darasa/core"
)

type ZerologLogger struct {
	zl zerolog.Logger
}

var _ core.Logger = (*ZerologLogger)(nil)

// NewZerologLogger writes human-readable logs to stderr and, when a log
// dir is configured, JSON logs to a size-rotated file.
func NewZerologLogger(conf *core.Config) *ZerologLogger {
	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr}}
	if conf.LogDir != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   filepath.Join(conf.LogDir, "darasa.log"),
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	level := zerolog.InfoLevel
	if conf.Debug {
		level = zerolog.DebugLevel
	}
	zl := zerolog.New(io.MultiWriter(writers...)).Level(level).With().Timestamp().Logger()
	return &ZerologLogger{zl: zl}
}

func (l *ZerologLogger) Debug(msg string) { l.zl.Debug().Msg(msg) }
func (l *ZerologLogger) Info(msg string)  { l.zl.Info().Msg(msg) }
func (l *ZerologLogger) Error(msg string) { l.zl.Error().Msg(msg) }

func (l *ZerologLogger) Debugf(format string, args ...interface{}) {
	l.zl.Debug().Msgf(format, args...)
}

func (l *ZerologLogger) Infof(format string, args ...interface{}) {
	l.zl.Info().Msgf(format, args...)
}

func (l *ZerologLogger) Errorf(format string, args ...interface{}) {
	l.zl.Error().Msgf(format, args...)
}
