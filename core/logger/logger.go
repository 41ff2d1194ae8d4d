package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	base *slog.Logger
	once sync.Once
)

// Init configures the process logger. Level is one of debug, info, warn, error.
// Format "json" switches to JSON output; anything else logs text.
func Init(level, format string) {
	once.Do(func() {
		var lvl slog.Level
		switch strings.ToLower(level) {
		case "debug":
			lvl = slog.LevelDebug
		case "warn":
			lvl = slog.LevelWarn
		case "error":
			lvl = slog.LevelError
		default:
			lvl = slog.LevelInfo
		}

		opts := &slog.HandlerOptions{Level: lvl}
		var handler slog.Handler
		if strings.ToLower(format) == "json" {
			handler = slog.NewJSONHandler(os.Stdout, opts)
		} else {
			handler = slog.NewTextHandler(os.Stdout, opts)
		}
		base = slog.New(handler)
	})
}

func get() *slog.Logger {
	if base == nil {
		Init("info", "text")
	}
	return base
}

// normalize lets call sites pass a bare error as the first keyval
// (logger.Error("Repo:Method", err)) without producing an odd pair.
func normalize(args []any) []any {
	if len(args)%2 == 1 {
		if err, ok := args[len(args)-1].(error); ok {
			args = append(args[:len(args)-1], "error", err)
		} else {
			args = append(args, "")
		}
	}
	return args
}

func Debug(msg string, args ...any) {
	get().Debug(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	get().Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	get().Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	get().Error(msg, normalize(args)...)
}
