package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var Log *slog.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Init installs the process-wide JSON logger at the given level
// (debug, info, warn, error). Unknown levels fall back to info.
func Init(level string) {
	InitWithWriter(os.Stdout, level)
}

func InitWithWriter(w io.Writer, level string) {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	Log = slog.New(handler)
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
