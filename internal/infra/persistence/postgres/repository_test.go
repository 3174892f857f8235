package postgres

import (
	"context"
	"testing"
	"time"

	"tracker/internal/domain/entity"
	"tracker/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a migrated in-memory SQLite database on a single connection.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(model.AllModels()...))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()

	user := &entity.User{Username: username, PasswordHash: "hash"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func createTestTrack(t *testing.T, db *gorm.DB, userID uuid.UUID, label string, ended bool) *entity.Track {
	t.Helper()

	track := &entity.Track{UserID: userID, Label: label, Ended: ended}
	require.NoError(t, NewTrackRepository(db).CreateTrack(context.Background(), track))

	return track
}

func addTestLocations(t *testing.T, db *gorm.DB, track *entity.Track, base time.Time, n int, edit bool) {
	t.Helper()

	repo := NewLocationRepository(db)
	for i := range n {
		trackID := track.ID
		require.NoError(t, repo.CreateLocation(context.Background(), &entity.Location{
			TrackID:   &trackID,
			Latitude:  50 + float64(i),
			Longitude: 30 + float64(i),
			Date:      base.Add(time.Duration(i) * time.Minute),
			Edit:      edit,
		}))
	}
}
