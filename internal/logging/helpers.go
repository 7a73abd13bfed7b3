package logging

import (
	"log/slog"
	"time"
)

// Info logs at info level; a nil logger drops the record.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs at warn level; a nil logger drops the record.
func Warn(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error logs msg with err attached under "error" when err is non-nil.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, "error", err)
	}
	logger.Error(msg, args...)
}

// Since returns the elapsed time from start as a duration_ms attribute.
func Since(start time.Time) slog.Attr {
	return Millis(time.Since(start))
}

// Millis renders d as a duration_ms attribute.
func Millis(d time.Duration) slog.Attr {
	return slog.Int64(FieldDurationMS, d.Milliseconds())
}
