package events

import (
	"context"
	"log/slog"
)

// NewAuditHandler logs every event it receives at info level.
func NewAuditHandler(logger *slog.Logger) Handler {
	return func(ctx context.Context, event Event) error {
		logger.InfoContext(ctx, "audit",
			"event_id", event.EventID(),
			"event_type", event.EventType(),
			"occurred_at", event.OccurredAt(),
			"payload", event.Payload())
		return nil
	}
}

// SubscribeAudit attaches the audit handler to every known event type.
func SubscribeAudit(bus *EventBus, logger *slog.Logger) {
	h := NewAuditHandler(logger)
	for _, t := range KnownEventTypes {
		bus.Subscribe(t, h)
	}
}
