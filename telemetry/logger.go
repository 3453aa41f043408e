// Package telemetry wraps go.uber.org/zap the same way the teacher's
// utils/binutils.Logger did, trimmed to the levels a library — as opposed
// to a long-running service — has any business emitting: a tree engine
// recovers nothing internally (spec §7), so it never needs Panic or Fatal.
package telemetry

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a *zap.SugaredLogger. The zero value is not usable; use
// New or Nop. A nil *Logger is safe to call methods on and logs
// nothing, so a tree can take one as an optional parameter
// (smt.WithLogger).
type Logger struct {
	z *zap.SugaredLogger
}

// Config selects the logger's environment and optional file sink, mirroring
// the teacher's LoggerConfig.
type Config struct {
	Environment      string `toml:"env"`
	Path             string `toml:"path,omitempty"`
	EnableStacktrace bool   `toml:"enable_stacktrace,omitempty"`
}

// New builds a Logger from conf. Environment must be "development" (Debug
// and above) or "production" (Info and above).
func New(conf Config) (*Logger, error) {
	level := zap.NewAtomicLevel()
	switch {
	case strings.EqualFold("development", conf.Environment):
		level.SetLevel(zap.DebugLevel)
	case strings.EqualFold("production", conf.Environment):
		level.SetLevel(zap.InfoLevel)
	default:
		return nil, errInvalidEnvironment(conf.Environment)
	}

	outputPaths := []string{"stderr"}
	if conf.Path != "" {
		outputPaths = append(outputPaths, conf.Path)
	}

	zc := &zap.Config{
		Level:             level,
		Encoding:          "console",
		DisableStacktrace: !conf.EnableStacktrace,
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "timestamp",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "path",
			MessageKey:     "msg",
			StacktraceKey:  "stack",
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths: outputPaths,
	}

	built, err := zc.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{z: built.Sugar()}, nil
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{z: zap.NewNop().Sugar()}
}

type errInvalidEnvironment string

func (e errInvalidEnvironment) Error() string {
	return "telemetry: environment must be \"development\" or \"production\", got " + string(e)
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	if l == nil {
		return
	}
	l.z.Debugw(msg, keysAndValues...)
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	if l == nil {
		return
	}
	l.z.Infow(msg, keysAndValues...)
}

func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	if l == nil {
		return
	}
	l.z.Warnw(msg, keysAndValues...)
}

func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	if l == nil {
		return
	}
	l.z.Errorw(msg, keysAndValues...)
}
