// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/claudeye/claudeye/internal/ui/output"
	"github.com/claudeye/claudeye/internal/ui/style"
)

// PrettyHandler is a slog.Handler for the daemon's human-readable
// output: a dimmed timestamp, the message colored by level, and
// key=value attributes dimmed behind it.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a PrettyHandler writing to w. A nil writer
// falls back to stderr.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	levelVar := &slog.LevelVar{}
	if opts != nil && opts.Level != nil {
		levelVar.Set(opts.Level.Level())
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: levelVar,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var line strings.Builder

	if !r.Time.IsZero() {
		stamp := h.out.String(r.Time.Format("15:04:05")).Faint()
		line.WriteString(stamp.String())
		line.WriteString(" ")
	}

	msg := h.out.String(decorate(r.Level, r.Message)).Foreground(levelColor(r.Level))
	line.WriteString(msg.String())

	attrParts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		attrParts = append(attrParts, formatAttr(h.group, attr))
	}
	r.Attrs(func(attr slog.Attr) bool {
		attrParts = append(attrParts, formatAttr(h.group, attr))
		return true
	})
	if len(attrParts) > 0 {
		attrs := h.out.String(strings.Join(attrParts, " ")).Faint()
		line.WriteString(" ")
		line.WriteString(attrs.String())
	}

	line.WriteString("\n")
	_, err := h.out.WriteString(line.String())
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)

	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: merged,
		group: h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: h.attrs,
		group: name,
	}
}

// decorate prefixes warning and error messages with their marker glyph.
func decorate(level slog.Level, msg string) string {
	switch {
	case level >= slog.LevelError:
		return style.Cross + " " + msg
	case level >= slog.LevelWarn:
		return style.Warning + " " + msg
	default:
		return msg
	}
}

func levelColor(level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return termenv.RGBColor(style.Red)
	case level >= slog.LevelWarn:
		return termenv.RGBColor(style.Yellow)
	default:
		return termenv.RGBColor(style.Slate)
	}
}

// formatAttr formats one attribute, prefixing the key with the group
// name when set.
func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + attr.Value.String()
}
