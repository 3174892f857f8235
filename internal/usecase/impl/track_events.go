package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/domain/entity"
	"tracker/internal/domain/service"
)

func newTrackEvent(ctx context.Context, eventType service.TrackEventType, track *entity.Track) *service.TrackEvent {
	return &service.TrackEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		UserID:     track.UserID.String(),
		TrackID:    track.ID.String(),
		Label:      track.Label,
		OccurredAt: time.Now().UTC(),
	}
}

// publishTrackEvent runs after commit. A broker failure is logged and never
// fails the request that caused the event.
func publishTrackEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.TrackEvent) {
	if publisher == nil {
		return
	}

	if err := publisher.PublishTrackEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Failed to publish track event",
			slog.String("type", string(event.Type)),
			slog.String("track_id", event.TrackID),
			slog.Any("error", err),
		)
	}
}
