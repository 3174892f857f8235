package entity

import (
	"time"

	"github.com/google/uuid"
)

// Location is a single timestamped point. It belongs to at most one track.
type Location struct {
	ID         uuid.UUID
	TrackID    *uuid.UUID // nil for an orphaned location.
	TrackLabel string     // Label of the owning track, filled on reads.
	Latitude   float64
	Longitude  float64
	Date       time.Time // When the point was recorded; defaults to creation time.
	Position   int       // Display order inside the track.
	Edit       bool      // Marks a corrected point that overrides the raw trace.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Point is the projection of a location used by trace queries.
type Point struct {
	Latitude  float64
	Longitude float64
	Date      time.Time
}
