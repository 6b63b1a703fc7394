package log

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// contactKeys contains attribute keys whose values are personal contact
// data and get masked when redaction is on.
var contactKeys = map[string]bool{
	"email":  true,
	"emails": true,
	"phone":  true,
	"phones": true,
}

// contactPatterns match contact-shaped values regardless of key name.
var contactPatterns = []*regexp.Regexp{
	// Email addresses
	regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[a-zA-Z]{2,}\b`),

	// Phone numbers with separators, 10+ digits
	regexp.MustCompile(`\+?\d[\d\s().-]{8,18}\d`),
}

// MaskValue is the string used to replace redacted values.
const MaskValue = "***REDACTED***"

// RedactHandler wraps an slog.Handler to mask personal contact data.
// It intercepts log records and replaces attribute values that look like
// email addresses or phone numbers before passing them on. The tool's
// whole point is collecting contact data, but that data belongs in the
// export files, not scattered through log output.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Components keep logging naturally; redaction is one wiring choice
type RedactHandler struct {
	// handler is the underlying slog handler that receives masked records.
	handler slog.Handler
}

// NewRedactHandler creates a RedactHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
func NewRedactHandler(handler slog.Handler) *RedactHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &RedactHandler{handler: handler}
}

// Enabled delegates to the underlying handler.
func (h *RedactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle masks the record's attributes and passes it on.
func (h *RedactHandler) Handle(ctx context.Context, r slog.Record) error {
	masked := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		masked.AddAttrs(h.redactAttr(a))
		return true
	})

	return h.handler.Handle(ctx, masked)
}

// WithAttrs returns a new handler with the given attributes added,
// masked first.
func (h *RedactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	maskedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		maskedAttrs[i] = h.redactAttr(a)
	}
	return &RedactHandler{handler: h.handler.WithAttrs(maskedAttrs)}
}

// WithGroup returns a new handler with the given group name.
func (h *RedactHandler) WithGroup(name string) slog.Handler {
	return &RedactHandler{handler: h.handler.WithGroup(name)}
}

// redactAttr masks a single attribute, recursively handling groups.
func (h *RedactHandler) redactAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		maskedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			maskedAttrs[i] = h.redactAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(maskedAttrs...)}
	}

	if contactKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, MaskValue)
	}

	if a.Value.Kind() == slog.KindString {
		if masked, hit := maskContacts(a.Value.String()); hit {
			return slog.String(a.Key, masked)
		}
	}

	return a
}

// maskContacts replaces contact-shaped substrings in a value. The second
// return reports whether anything was replaced.
func maskContacts(value string) (string, bool) {
	hit := false
	for _, pattern := range contactPatterns {
		if pattern.MatchString(value) {
			value = pattern.ReplaceAllString(value, MaskValue)
			hit = true
		}
	}
	return value, hit
}

// NewLogger creates an slog.Logger writing text output to w.
//
// Parameters:
//   - w: the io.Writer for log output (typically os.Stderr)
//   - verbose: if true, sets log level to Debug; otherwise Info
//   - redact: if true, contact data in attributes is masked
func NewLogger(w io.Writer, verbose, redact bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if redact {
		handler = NewRedactHandler(handler)
	}

	return slog.New(handler)
}
