package usecase

import (
	"context"
	"time"

	"tracker/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateLocationInput represents the input for recording a new location
type CreateLocationInput struct {
	Latitude  float64
	Longitude float64
	Date      *time.Time // nil means now
	Track     string     // label of the owning track, created when missing
	Position  int
	Edit      bool
}

// LocationUsecase defines the interface for location use cases
type LocationUsecase interface {
	// ListLocations returns every location on the user's tracks, oldest first.
	ListLocations(ctx context.Context, userID uuid.UUID) ([]*entity.Location, error)

	// CreateLocation stores a location, creating its track when the label is new.
	CreateLocation(ctx context.Context, userID uuid.UUID, input *CreateLocationInput) (*entity.Location, error)
}
