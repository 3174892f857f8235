package repository

import (
	"context"
	"time"

	"tracker/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationRepository defines the location queries used by the track and location use cases.
type LocationRepository interface {
	// CreateLocation persists a new location.
	CreateLocation(ctx context.Context, location *entity.Location) error

	// ListByUser returns every location on the owner's tracks, ordered by date.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Location, error)

	// HasEdited reports whether the track has at least one edit=true location.
	HasEdited(ctx context.Context, trackID uuid.UUID) (bool, error)

	// FindPoints returns the track's locations whose edit flag equals edit,
	// dated strictly after `after` when it is non-nil, ordered by (position, date).
	FindPoints(ctx context.Context, trackID uuid.UUID, edit bool, after *time.Time) ([]entity.Point, error)

	// CountPoints counts the track's locations whose edit flag equals edit.
	CountPoints(ctx context.Context, trackID uuid.UUID, edit bool) (int64, error)

	// DateRange returns the earliest and latest location dates of the track,
	// both nil when the track has no locations.
	DateRange(ctx context.Context, trackID uuid.UUID) (start, stop *time.Time, err error)

	// DeleteEdited removes the track's edit=true locations and returns how many were removed.
	DeleteEdited(ctx context.Context, trackID uuid.UUID) (int64, error)

	// ReassignTrack moves every location of one track to another and returns how many moved.
	ReassignTrack(ctx context.Context, fromTrackID, toTrackID uuid.UUID) (int64, error)
}
