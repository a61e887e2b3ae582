package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyOperation  = "operation"
	KeyDurationMS = "duration_ms"
	KeyPackages   = "build_packages"
	KeySnaps      = "build_snaps"
	KeyGrade      = "required_grade"
	KeyCount      = "count"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Operation(op string) slog.Attr   { return slog.String(KeyOperation, op) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Packages(n int) slog.Attr        { return slog.Int(KeyPackages, n) }
func Snaps(n int) slog.Attr           { return slog.Int(KeySnaps, n) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }

// Grade renders an absent grade as "null", matching the persisted form.
func Grade(g *string) slog.Attr {
	if g == nil {
		return slog.String(KeyGrade, "null")
	}
	return slog.String(KeyGrade, *g)
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
