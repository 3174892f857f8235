package repository

import (
	"context"

	"tracker/internal/domain/entity"
	"tracker/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for track persistence.
var (
	// ErrTrackNotFound is returned when no track matches the owner and label.
	ErrTrackNotFound = errors.New("track not found")
	// ErrTrackLabelTaken is returned when the owner already has a track with the label.
	ErrTrackLabelTaken = errors.New("track label already taken")
)

// TrackRepository defines the track queries. Every lookup is keyed by owner,
// so a caller can never reach another user's track through a label.
type TrackRepository interface {
	// CreateTrack persists a new track. Returns ErrTrackLabelTaken on a duplicate label.
	CreateTrack(ctx context.Context, track *entity.Track) error

	// FindOrCreateTrack returns the owner's track with the label, inserting a fresh
	// one (processed=false, ended=false) when none exists. created reports the insert.
	FindOrCreateTrack(ctx context.Context, userID uuid.UUID, label string) (track *entity.Track, created bool, err error)

	// FindTrackByLabel retrieves the owner's track with the label.
	FindTrackByLabel(ctx context.Context, userID uuid.UUID, label string) (*entity.Track, error)

	// ListLabels returns the labels of all the owner's tracks.
	ListLabels(ctx context.Context, userID uuid.UUID) ([]string, error)

	// UpdateTrack saves label, processed and ended. Returns ErrTrackLabelTaken on a duplicate label.
	UpdateTrack(ctx context.Context, track *entity.Track) error

	// DeleteTrack removes a track by ID.
	DeleteTrack(ctx context.Context, id uuid.UUID) error

	// FindLiveTrack returns the not-ended track holding the most recently dated
	// location. A nil userID searches all users. Returns ErrTrackNotFound when none.
	FindLiveTrack(ctx context.Context, userID *uuid.UUID) (*entity.Track, error)
}
