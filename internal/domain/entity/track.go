package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxTrackLabelLength bounds the length of a track label.
const MaxTrackLabelLength = 256

// Track is a named, user-owned trip made of locations.
// Ended and Processed are independent flags; neither implies the other.
type Track struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the track.
	UserID    uuid.UUID // Owner of the track.
	Label     string    // Human label, unique per owner.
	Processed bool      // Set once the track has been post-processed.
	Ended     bool      // Set once the trip is over; ended tracks are never live.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TrackParams summarizes a track without returning its points.
type TrackParams struct {
	PointsNumber int64      // Number of points Retrieve would return (edit-aware).
	StartDate    *time.Time // Earliest location date, nil for an empty track.
	StopDate     *time.Time // Latest location date, nil for an empty track.
	Processed    bool
	Ended        bool
}
