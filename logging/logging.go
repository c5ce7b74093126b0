package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

type ctxKey string

const (
	slogFields  ctxKey = "slog_fields"
	PackageName string = "package"
	LayoutName  string = "layout"
)

var ErrInvalidLevel = errors.New("invalid log level")

// ContextHandler adds the attributes stored by AppendCtx to every record.
type ContextHandler struct {
	slog.Handler
}

// Handle adds contextual attributes to the Record before calling the underlying handler.
func (h ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(slogFields).([]slog.Attr); ok {
		r.AddAttrs(attrs...)
	}

	if err := h.Handler.Handle(ctx, r); err != nil {
		return fmt.Errorf("could not handle log record %q: %w", r.Message, err)
	}

	return nil
}

func (h ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h ContextHandler) WithGroup(name string) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithGroup(name)}
}

// NewHandler returns a text handler writing to w at level, wrapped to read context attributes.
func NewHandler(w io.Writer, level slog.Leveler) ContextHandler {
	return ContextHandler{
		Handler: slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:     level,
			AddSource: true,
		}),
	}
}

// Setup installs a default logger writing to w and returns its level.
func Setup(w io.Writer) *slog.LevelVar {
	level := new(slog.LevelVar)

	// The handler must not wrap slog.Default().Handler(): the default
	// handler writes through log, which calls back into the new default.
	slog.SetDefault(slog.New(NewHandler(w, level)))

	return level
}

// ParseLevel reads debug, info, warn (or warning) and error, in any case.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level

	name = strings.TrimSpace(name)
	if strings.EqualFold(name, "warning") {
		name = "warn"
	}

	if err := level.UnmarshalText([]byte(name)); err != nil {
		return level, fmt.Errorf("%q: %w", name, ErrInvalidLevel)
	}

	return level, nil
}

// SetLevel parses name into lvl. A nil lvl is left alone.
func SetLevel(lvl *slog.LevelVar, name string) error {
	level, err := ParseLevel(name)
	if err != nil {
		return err
	}

	if lvl != nil {
		lvl.Set(level)
	}

	return nil
}

// AppendCtx adds an slog attribute to the provided context so that it will be included in any Record created with such context.
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	if v, ok := parent.Value(slogFields).([]slog.Attr); ok {
		// copy so that sibling contexts do not share a backing array
		attrs := make([]slog.Attr, 0, len(v)+1)
		attrs = append(attrs, v...)

		return context.WithValue(parent, slogFields, append(attrs, attr))
	}

	return context.WithValue(parent, slogFields, []slog.Attr{attr})
}

func PackageCtx(packageName string) context.Context {
	return AppendCtx(context.Background(), slog.String(PackageName, packageName))
}

// LayoutCtx tags records with the layout family a keyboard event happened on.
func LayoutCtx(parent context.Context, layout string) context.Context {
	return AppendCtx(parent, slog.String(LayoutName, layout))
}
