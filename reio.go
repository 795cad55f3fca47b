// Package reio implements a low-level binary I/O toolkit: a growable
// byte buffer with a configurable expansion policy, a non-owning byte
// view with bounds-checked editing primitives, and a small stream layer
// (memory-backed, file-backed, memory-mapped) with endianness-aware
// numeric (de)serialization on top of raw byte transfer.
//
// The buffer engine lives in the bytebuf subpackage; this package holds
// the streams and the numeric codec built on its contract.
//
// Some examples on using the API are implemented as executable go
// programs in the `examples` subdirectory.
package reio

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is the last tagged version of the package
const Version = "1.0.0"

var logging bool
var logWriters = []zapcore.WriteSyncer{os.Stdout}
var logger *zap.Logger
var zapEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.LowercaseLevelEncoder,
	EncodeTime:     zapcore.ISO8601TimeEncoder,
	EncodeDuration: zapcore.SecondsDurationEncoder,
}

func initLogging() {
	logging = false
	initializeLogger()
}

// EnableLogging enables logging if true is passed and disables it if
// false is passed.
func EnableLogging(enable bool) {
	logging = enable
}

// AddLogWriter adds a new io.Writer as a target for writing logs.
func AddLogWriter(writer io.Writer) {
	logWriters = append(logWriters, zapcore.AddSync(writer))
	initializeLogger()
}

// SetLogWriters will set the passed io.Writer instances as targets for
// writing logs.
func SetLogWriters(writers ...io.Writer) {
	writesyncers := make([]zapcore.WriteSyncer, 0, len(writers))
	for _, w := range writers {
		writesyncers = append(writesyncers, zapcore.AddSync(w))
	}

	logWriters = writesyncers
	initializeLogger()
}

func initializeLogger() {
	ws := zap.CombineWriteSyncers(logWriters...)
	logger = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zapEncoderConfig),
		ws, zapcore.DebugLevel,
	))
}

// init maintains a central location of all things that happen when the
// package is initialized instead of everything being scattered in
// multiple source files
func init() {
	initLogging()

	if err := initConfig(); err != nil && logging {
		logger.Error("error initializing config", zap.Error(err))
	}

	if Config["REIO_DEBUG"] == "1" {
		logging = true
	}
}
