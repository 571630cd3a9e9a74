package conversation

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/savecnt/internal/domain"
)

// InputEvent describes one handled input.
type InputEvent struct {
	UserID     int64
	Kind       string // "text" or "action"
	Tag        string
	Unknown    bool // the tag matched no action
	ModeBefore domain.ModeKind
	ModeAfter  domain.ModeKind
	Messages   int
	Err        error
	StartedAt  time.Time
	Duration   time.Duration
}

// Observer receives conversation events.
type Observer interface {
	ObserveInput(ctx context.Context, event InputEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveInput(context.Context, InputEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes conversation events to w.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return NewSlogObserver(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})))
}

// NewSlogObserver writes conversation events to an existing logger.
func NewSlogObserver(logger *slog.Logger) Observer {
	if logger == nil {
		return NoopObserver{}
	}
	return &logObserver{logger: logger}
}

func (o *logObserver) ObserveInput(ctx context.Context, event InputEvent) {
	attrs := []any{
		"user_id", event.UserID,
		"kind", event.Kind,
		"mode_before", string(event.ModeBefore),
		"mode_after", string(event.ModeAfter),
		"messages", event.Messages,
		"duration_ms", event.Duration.Milliseconds(),
	}
	if event.Tag != "" {
		attrs = append(attrs, "tag", event.Tag)
	}
	switch {
	case event.Err != nil:
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "conversation_input", attrs...)
	case event.Unknown:
		o.logger.WarnContext(ctx, "conversation_unknown_action", attrs...)
	default:
		o.logger.InfoContext(ctx, "conversation_input", attrs...)
	}
}
