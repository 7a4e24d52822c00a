package app

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logMaxSizeMB  = 5
	logMaxBackups = 3
	logMaxAgeDays = 28
)

// newLogger returns a JSON logger writing to a rotating file. The terminal
// belongs to the timer, so nothing is logged to it.
func newLogger(path string, debug bool) (*slog.Logger, io.Closer) {
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAgeDays,
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(lj, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler), lj
}
