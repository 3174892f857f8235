package model

import (
	"time"

	"github.com/google/uuid"
)

// TrackModel mirrors the 'tracks' table. (user_id, label) is unique.
type TrackModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tracks_user_label,priority:1"`
	Label     string    `gorm:"type:varchar(256);not null;uniqueIndex:idx_tracks_user_label,priority:2"`
	Processed bool      `gorm:"not null;default:false"`
	Ended     bool      `gorm:"not null;default:false;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Locations []LocationModel `gorm:"foreignKey:TrackID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (TrackModel) TableName() string {
	return "tracks"
}
