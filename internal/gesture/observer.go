package gesture

import (
	"context"
	"log/slog"
	"time"
)

// DispatchEvent captures one interpreter call for telemetry.
type DispatchEvent struct {
	Op        string // "drop" or "rename"
	Gesture   string
	Outcome   Outcome
	Duration  time.Duration
	StartedAt time.Time
}

// DispatchObserver receives dispatch events.
type DispatchObserver interface {
	ObserveDispatch(ctx context.Context, event DispatchEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveDispatch(context.Context, DispatchEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver records dispatch events on logger. A nil logger yields a
// no-op observer.
func NewLogObserver(logger *slog.Logger) DispatchObserver {
	if logger == nil {
		return NoopObserver{}
	}
	return &logObserver{logger: logger}
}

func (o *logObserver) ObserveDispatch(ctx context.Context, event DispatchEvent) {
	attrs := []any{
		"op", event.Op,
		"gesture", event.Gesture,
		"outcome", string(event.Outcome),
		"duration_us", event.Duration.Microseconds(),
	}
	if event.Outcome.Changed() || event.Outcome == OutcomeCancelled {
		o.logger.InfoContext(ctx, "gesture_dispatch", attrs...)
		return
	}
	o.logger.WarnContext(ctx, "gesture_dispatch", attrs...)
}
