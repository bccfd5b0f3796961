package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil err yields an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr { return slog.String("component", name) }

func File(path string) slog.Attr { return slog.String("file", path) }

func RunID(id string) slog.Attr { return slog.String("run_id", id) }

func Duration(d time.Duration) slog.Attr { return slog.Duration("duration", d) }

func Records(n int) slog.Attr { return slog.Int("records", n) }

func Validator(code string) slog.Attr { return slog.String("validator", code) }
