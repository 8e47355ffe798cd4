package logger

import "wallet_tracker/internal/app/port"

// slogAdapter implements port.Logger on top of the package-level slog logger.
type slogAdapter struct {
	attrs []any
}

// NewSlogAdapter returns a port.Logger backed by the global logger.
func NewSlogAdapter() port.Logger {
	return &slogAdapter{}
}

// With returns a logger that appends args to every entry.
func (a *slogAdapter) With(args ...any) port.Logger {
	attrs := make([]any, 0, len(a.attrs)+len(args))
	attrs = append(attrs, a.attrs...)
	attrs = append(attrs, args...)
	return &slogAdapter{attrs: attrs}
}

func (a *slogAdapter) Info(msg string, args ...any)  { Info(msg, a.merge(args)...) }
func (a *slogAdapter) Debug(msg string, args ...any) { Debug(msg, a.merge(args)...) }
func (a *slogAdapter) Warn(msg string, args ...any)  { Warn(msg, a.merge(args)...) }
func (a *slogAdapter) Error(msg string, args ...any) { Error(msg, a.merge(args)...) }

func (a *slogAdapter) merge(args []any) []any {
	if len(a.attrs) == 0 {
		return args
	}
	out := make([]any, 0, len(a.attrs)+len(args))
	out = append(out, a.attrs...)
	return append(out, args...)
}
