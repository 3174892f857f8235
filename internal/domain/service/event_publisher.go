package service

import (
	"context"
	"time"
)

// TrackEventType names what happened to a track.
type TrackEventType string

// Track event types.
const (
	TrackEventCreated   TrackEventType = "track.created"
	TrackEventRenamed   TrackEventType = "track.renamed"
	TrackEventEnded     TrackEventType = "track.ended"
	TrackEventProcessed TrackEventType = "track.processed"
	TrackEventJoined    TrackEventType = "track.joined"
)

// TrackEvent is published after a track change has been committed.
type TrackEvent struct {
	RequestID   string         `json:"request_id,omitempty"` // For distributed tracing
	Type        TrackEventType `json:"type"`
	UserID      string         `json:"user_id"`
	TrackID     string         `json:"track_id"`
	Label       string         `json:"label"`
	OldLabel    string         `json:"old_label,omitempty"`    // track.renamed
	SecondLabel string         `json:"second_label,omitempty"` // track.joined
	Moved       int64          `json:"moved,omitempty"`        // track.joined: locations moved
	OccurredAt  time.Time      `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing track events to a message queue
type EventPublisher interface {
	// PublishTrackEvent publishes a track event to subscribers
	PublishTrackEvent(ctx context.Context, event *TrackEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
