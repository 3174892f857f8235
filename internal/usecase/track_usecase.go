// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"tracker/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTrackInput defines the data required to create a track explicitly.
type CreateTrackInput struct {
	Label string
	Ended bool
}

// PatchTrackInput carries the fields of a partial track update; nil means unchanged.
type PatchTrackInput struct {
	Label *string
	Ended *bool
}

// TrackTrace is a track together with its edit-aware point sequence.
type TrackTrace struct {
	Track  *entity.Track
	Points []entity.Point
}

// TrackUsecase defines the track operations. Every method is scoped to userID.
type TrackUsecase interface {
	// ListLabels returns the labels of the user's tracks.
	ListLabels(ctx context.Context, userID uuid.UUID) ([]string, error)

	// CreateTrack creates an empty track.
	CreateTrack(ctx context.Context, userID uuid.UUID, input *CreateTrackInput) (*entity.Track, error)

	// RetrievePoints returns the track's trace: edited points when any exist,
	// raw points otherwise, optionally only those dated after lastDate.
	RetrievePoints(ctx context.Context, userID uuid.UUID, label string, lastDate *time.Time) ([]entity.Point, error)

	// RetrieveTrace returns the track and its full edit-aware trace.
	RetrieveTrace(ctx context.Context, userID uuid.UUID, label string) (*TrackTrace, error)

	// RenameTrack changes the label of a track.
	RenameTrack(ctx context.Context, userID uuid.UUID, label, newLabel string) error

	// PatchTrack applies a partial update and returns the updated track.
	PatchTrack(ctx context.Context, userID uuid.UUID, label string, input *PatchTrackInput) (*entity.Track, error)

	// GetParams summarizes the track.
	GetParams(ctx context.Context, userID uuid.UUID, label string) (*entity.TrackParams, error)

	// GetLiveTrack returns the live track, or nil when no track is live.
	GetLiveTrack(ctx context.Context, userID uuid.UUID) (*entity.Track, error)

	// ProcessTrack marks the track as processed. Repeated calls are no-ops.
	ProcessTrack(ctx context.Context, userID uuid.UUID, label string) error

	// DeleteEdited removes the track's edited locations and returns how many were removed.
	DeleteEdited(ctx context.Context, userID uuid.UUID, label string) (int64, error)

	// JoinTracks moves every location of secondLabel into label and deletes the
	// second track. It returns the number of moved locations.
	JoinTracks(ctx context.Context, userID uuid.UUID, label, secondLabel string) (int64, error)
}
