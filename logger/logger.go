package logger

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the logging surface used across the library. Warnings cover
// soft-failure conditions (unsupported SGR codes, palette exhaustion);
// nothing in this library logs at Error level during normal operation.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type Options struct {
	Buffer io.Writer
	Level  Level
	Type   Type
}

var DefaultLogger = New(Options{os.Stderr, DefaultLevel, TypeText})

type logger struct {
	*slog.Logger
}

func New(opts Options) Logger {
	buffer := opts.Buffer
	if buffer == nil {
		buffer = os.Stderr
	}
	var handler slog.Handler
	switch opts.Type {
	case TypeJSON:
		handler = slog.NewJSONHandler(buffer, &slog.HandlerOptions{
			Level: levels[opts.Level],
		})
	case TypeText:
		fallthrough
	default:
		handler = slog.NewTextHandler(buffer, &slog.HandlerOptions{
			Level: levels[opts.Level],
		})
	}
	return &logger{
		Logger: slog.New(handler),
	}
}

// Discard returns a logger that drops everything. Useful as a default for
// callers that don't care about soft warnings.
func Discard() Logger {
	return New(Options{Buffer: io.Discard, Level: ErrorLevel})
}
