// Package logger provides the console logger shared by the icon tools.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global = New(os.Stdout)

// New builds a console logger writing to w at info level.
func New(w io.Writer) *zap.SugaredLogger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), zapcore.InfoLevel)
	return zap.New(core).Sugar()
}

// ToStderr redirects the package-level logger to stderr. Tools whose
// stdout carries machine-formatted snippets call this first so progress
// and diagnostics stay out of the copy-paste stream.
func ToStderr() {
	global = New(os.Stderr)
}

func Infof(format string, args ...any)  { global.Infof(format, args...) }
func Errorf(format string, args ...any) { global.Errorf(format, args...) }
func Fatalf(format string, args ...any) { global.Fatalf(format, args...) }

// Sync flushes any buffered log entries.
func Sync() error { return global.Sync() }
