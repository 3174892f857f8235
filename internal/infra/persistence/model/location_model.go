package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel mirrors the 'locations' table. track_id is nullable.
type LocationModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackID    *uuid.UUID `gorm:"type:uuid;index:idx_locations_track_position,priority:1"`
	Latitude   float64    `gorm:"not null;default:0"`
	Longitude  float64    `gorm:"not null;default:0"`
	RecordedAt time.Time  `gorm:"not null;index"`
	Position   int        `gorm:"not null;default:0;index:idx_locations_track_position,priority:2"`
	Edit       bool       `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}

// LocationWithLabel is a location row joined with its track label.
type LocationWithLabel struct {
	LocationModel
	TrackLabel string
}

// AllModels lists every model managed by AutoMigrate, in dependency order.
func AllModels() []any {
	return []any{
		&UserModel{},
		&TrackModel{},
		&LocationModel{},
	}
}
