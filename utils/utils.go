package utils

import (
	"log/slog"
)

// Check panics on startup and configuration failures the daemon cannot run
// without.
func Check(e error) {
	if e != nil {
		slog.Error("unrecoverable error", "error", e)
		panic(e)
	}
}

// Loge logs a non-nil error with msg and any extra attributes.
func Loge(e error, msg string, args ...any) {
	if e != nil {
		slog.Error(msg, append(args, "error", e)...)
	}
}

func Logwe(e error, msg string, args ...any) {
	if e != nil {
		slog.Warn(msg, append(args, "error", e)...)
	}
}

func Logde(e error, msg string, args ...any) {
	if e != nil {
		slog.Debug(msg, append(args, "error", e)...)
	}
}
