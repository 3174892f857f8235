package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tracker/config"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/service"
	"tracker/internal/infra/persistence/model"
	"tracker/internal/infra/persistence/persistencetest"
	"tracker/internal/infra/persistence/postgres"
	mockService "tracker/internal/mocks/service"
	"tracker/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testBase = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

type testEnv struct {
	db        *gorm.DB
	publisher *mockService.MockEventPublisher
	tracks    usecase.TrackUsecase
	locations usecase.LocationUsecase
}

func newTestEnv(t *testing.T, cfg *config.Config) *testEnv {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{}
	}

	db := persistencetest.NewDB(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	txManager := postgres.NewTransactionManager(db)
	trackRepo := postgres.NewTrackRepository(db)
	locationRepo := postgres.NewLocationRepository(db)

	return &testEnv{
		db:        db,
		publisher: publisher,
		tracks: NewTrackService(TrackServiceParams{
			TxManager:    txManager,
			TrackRepo:    trackRepo,
			LocationRepo: locationRepo,
			Publisher:    publisher,
			Config:       cfg,
			Logger:       logger,
		}),
		locations: NewLocationService(LocationServiceParams{
			TxManager:    txManager,
			LocationRepo: locationRepo,
			Publisher:    publisher,
			Logger:       logger,
		}),
	}
}

// allowEvents accepts any published event without asserting on it.
func (env *testEnv) allowEvents() {
	env.publisher.EXPECT().PublishTrackEvent(mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (env *testEnv) newUser(t *testing.T, username string) uuid.UUID {
	t.Helper()

	user := &entity.User{Username: username, PasswordHash: "hash"}
	require.NoError(t, postgres.NewUserRepository(env.db).Create(context.Background(), user))

	return user.ID
}

func (env *testEnv) addLocations(t *testing.T, userID uuid.UUID, label string, start time.Time, n int, edit bool) {
	t.Helper()

	for i := range n {
		date := start.Add(time.Duration(i) * time.Minute)
		_, err := env.locations.CreateLocation(context.Background(), userID, &usecase.CreateLocationInput{
			Latitude:  50 + float64(i)/100,
			Longitude: 30 + float64(i)/100,
			Date:      &date,
			Track:     label,
			Edit:      edit,
		})
		require.NoError(t, err)
	}
}

// seedScenario builds Track_1 (3 raw points) and Track_2 (3 raw + 2 edited, ended).
func (env *testEnv) seedScenario(t *testing.T, userID uuid.UUID) {
	t.Helper()

	env.addLocations(t, userID, "Track_1", testBase, 3, false)
	env.addLocations(t, userID, "Track_2", testBase.Add(time.Hour), 3, false)
	env.addLocations(t, userID, "Track_2", testBase.Add(2*time.Hour), 2, true)

	ended := true
	_, err := env.tracks.PatchTrack(context.Background(), userID, "Track_2", &usecase.PatchTrackInput{Ended: &ended})
	require.NoError(t, err)
}

func (env *testEnv) countTracks(t *testing.T) int64 {
	t.Helper()

	var count int64
	require.NoError(t, env.db.Model(&model.TrackModel{}).Count(&count).Error)

	return count
}

func isEvent(eventType service.TrackEventType) any {
	return mock.MatchedBy(func(event *service.TrackEvent) bool {
		return event.Type == eventType
	})
}

func TestTrackService_Scenario(t *testing.T) {
	env := newTestEnv(t, nil)
	env.allowEvents()
	ctx := context.Background()
	userID := env.newUser(t, "alice")
	env.seedScenario(t, userID)

	points, err := env.tracks.RetrievePoints(ctx, userID, "Track_2", nil)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, testBase.Add(2*time.Hour), points[0].Date.UTC())

	params, err := env.tracks.GetParams(ctx, userID, "Track_2")
	require.NoError(t, err)
	assert.Equal(t, int64(2), params.PointsNumber)
	assert.True(t, params.Ended)
	assert.False(t, params.Processed)
	require.NotNil(t, params.StartDate)
	require.NotNil(t, params.StopDate)
	assert.Equal(t, testBase.Add(time.Hour), params.StartDate.UTC())
	assert.Equal(t, testBase.Add(2*time.Hour+time.Minute), params.StopDate.UTC())

	moved, err := env.tracks.JoinTracks(ctx, userID, "Track_1", "Track_2")
	require.NoError(t, err)
	assert.Equal(t, int64(5), moved)
	assert.Equal(t, int64(1), env.countTracks(t))

	labels, err := env.tracks.ListLabels(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Track_1"}, labels)

	locations, err := env.locations.ListLocations(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, locations, 8)
	for _, location := range locations {
		assert.Equal(t, "Track_1", location.TrackLabel)
	}

	// Edited points moved along, so they now override Track_1's raw trace.
	points, err = env.tracks.RetrievePoints(ctx, userID, "Track_1", nil)
	require.NoError(t, err)
	assert.Len(t, points, 2)
}

func TestTrackService_DeleteEdited(t *testing.T) {
	env := newTestEnv(t, nil)
	env.allowEvents()
	ctx := context.Background()
	userID := env.newUser(t, "alice")
	env.seedScenario(t, userID)

	deleted, err := env.tracks.DeleteEdited(ctx, userID, "Track_2")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	params, err := env.tracks.GetParams(ctx, userID, "Track_2")
	require.NoError(t, err)
	assert.Equal(t, int64(3), params.PointsNumber)

	points, err := env.tracks.RetrievePoints(ctx, userID, "Track_2", nil)
	require.NoError(t, err)
	assert.Len(t, points, 3)

	_, err = env.tracks.DeleteEdited(ctx, userID, "Missing")
	assert.ErrorIs(t, err, domainerrors.ErrTrackNotFound)
}

func TestTrackService_RetrievePoints_RawAndLastDate(t *testing.T) {
	env := newTestEnv(t, nil)
	env.allowEvents()
	ctx := context.Background()
	userID := env.newUser(t, "alice")
	env.addLocations(t, userID, "Track_1", testBase, 3, false)

	points, err := env.tracks.RetrievePoints(ctx, userID, "Track_1", nil)
	require.NoError(t, err)
	assert.Len(t, points, 3)

	lastDate := testBase.Add(time.Minute)
	points, err = env.tracks.RetrievePoints(ctx, userID, "Track_1", &lastDate)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, testBase.Add(2*time.Minute), points[0].Date.UTC())

	_, err = env.tracks.RetrievePoints(ctx, userID, "Missing", nil)
	assert.ErrorIs(t, err, domainerrors.ErrTrackNotFound)
}

func TestTrackService_UserIsolation(t *testing.T) {
	env := newTestEnv(t, nil)
	env.allowEvents()
	ctx := context.Background()
	alice := env.newUser(t, "alice")
	bob := env.newUser(t, "bob")
	env.addLocations(t, alice, "Track_1", testBase, 3, false)

	labels, err := env.tracks.ListLabels(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, labels)

	locations, err := env.locations.ListLocations(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, locations)

	_, err = env.tracks.RetrievePoints(ctx, bob, "Track_1", nil)
	assert.ErrorIs(t, err, domainerrors.ErrTrackNotFound)
	_, err = env.tracks.GetParams(ctx, bob, "Track_1")
	assert.ErrorIs(t, err, domainerrors.ErrTrackNotFound)
	assert.ErrorIs(t, env.tracks.ProcessTrack(ctx, bob, "Track_1"), domainerrors.ErrTrackNotFound)
	assert.ErrorIs(t, env.tracks.RenameTrack(ctx, bob, "Track_1", "Mine"), domainerrors.ErrTrackNotFound)

	// Bob's location under the same label lands on his own new track.
	env.addLocations(t, bob, "Track_1", testBase, 1, false)
	assert.Equal(t, int64(2), env.countTracks(t))

	points, err := env.tracks.RetrievePoints(ctx, alice, "Track_1", nil)
	require.NoError(t, err)
	assert.Len(t, points, 3)
}

func TestTrackService_CreateTrack(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	userID := env.newUser(t, "alice")
	env.publisher.EXPECT().PublishTrackEvent(mock.Anything, isEvent(service.TrackEventCreated)).Return(nil).Once()

	track, err := env.tracks.CreateTrack(ctx, userID, &usecase.CreateTrackInput{Label: "Track_1", Ended: true})
	require.NoError(t, err)
	assert.Equal(t, userID, track.UserID)
	assert.True(t, track.Ended)
	assert.False(t, track.Processed)

	_, err = env.tracks.CreateTrack(ctx, userID, &usecase.CreateTrackInput{Label: "Track_1"})
	assert.ErrorIs(t, err, domainerrors.ErrTrackLabelTaken)

	_, err = env.tracks.CreateTrack(ctx, userID, &usecase.CreateTrackInput{Label: ""})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	long := make([]byte, entity.MaxTrackLabelLength+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err = env.tracks.CreateTrack(ctx, userID, &usecase.CreateTrackInput{Label: string(long)})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTrackService_RenameTrack(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	userID := env.newUser(t, "alice")
	env.publisher.EXPECT().PublishTrackEvent(mock.Anything, isEvent(service.TrackEventCreated)).Return(nil).Times(2)
	env.addLocations(t, userID, "Track_1", testBase, 2, false)
	env.addLocations(t, userID, "Track_2", testBase, 1, false)

	assert.ErrorIs(t, env.tracks.RenameTrack(ctx, userID, "Track_1", ""), domainerrors.ErrMissingNewLabel)
	assert.ErrorIs(t, env.tracks.RenameTrack(ctx, userID, "Missing", "Other"), domainerrors.ErrTrackNotFound)
	assert.ErrorIs(t, env.tracks.RenameTrack(ctx, userID, "Track_1", "Track_2"), domainerrors.ErrTrackLabelTaken)

	env.publisher.EXPECT().
		PublishTrackEvent(mock.Anything, mock.MatchedBy(func(event *service.TrackEvent) bool {
			return event.Type == service.TrackEventRenamed && event.OldLabel == "Track_1" && event.Label == "Morning"
		})).
		Return(nil).Once()
	require.NoError(t, env.tracks.RenameTrack(ctx, userID, "Track_1", "Morning"))

	points, err := env.tracks.RetrievePoints(ctx, userID, "Morning", nil)
	require.NoError(t, err)
	assert.Len(t, points, 2)

	_, err = env.tracks.RetrievePoints(ctx, userID, "Track_1", nil)
	assert.ErrorIs(t, err, domainerrors.ErrTrackNotFound)
}

func TestTrackService_PatchTrack(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	userID := env.newUser(t, "alice")
	env.publisher.EXPECT().PublishTrackEvent(mock.Anything, isEvent(service.TrackEventCreated)).Return(nil).Once()
	env.addLocations(t, userID, "Track_1", testBase, 1, false)

	env.publisher.EXPECT().PublishTrackEvent(mock.Anything, isEvent(service.TrackEventEnded)).Return(nil).Once()
	ended := true
	track, err := env.tracks.PatchTrack(ctx, userID, "Track_1", &usecase.PatchTrackInput{Ended: &ended})
	require.NoError(t, err)
	assert.True(t, track.Ended)
	assert.Equal(t, "Track_1", track.Label)

	// Ending an ended track again publishes nothing.
	track, err = env.tracks.PatchTrack(ctx, userID, "Track_1", &usecase.PatchTrackInput{Ended: &ended})
	require.NoError(t, err)
	assert.True(t, track.Ended)

	empty := ""
	_, err = env.tracks.PatchTrack(ctx, userID, "Track_1", &usecase.PatchTrackInput{Label: &empty})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = env.tracks.PatchTrack(ctx, userID, "Missing", &usecase.PatchTrackInput{Ended: &ended})
	assert.ErrorIs(t, err, domainerrors.ErrTrackNotFound)
}

func TestTrackService_ProcessTrack_Idempotent(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	userID := env.newUser(t, "alice")
	env.publisher.EXPECT().PublishTrackEvent(mock.Anything, isEvent(service.TrackEventCreated)).Return(nil).Once()
	env.publisher.EXPECT().PublishTrackEvent(mock.Anything, isEvent(service.TrackEventProcessed)).Return(nil).Once()
	env.addLocations(t, userID, "Track_1", testBase, 1, false)

	require.NoError(t, env.tracks.ProcessTrack(ctx, userID, "Track_1"))
	require.NoError(t, env.tracks.ProcessTrack(ctx, userID, "Track_1"))

	params, err := env.tracks.GetParams(ctx, userID, "Track_1")
	require.NoError(t, err)
	assert.True(t, params.Processed)
	assert.False(t, params.Ended)

	assert.ErrorIs(t, env.tracks.ProcessTrack(ctx, userID, "Missing"), domainerrors.ErrTrackNotFound)
}

func TestTrackService_JoinTracks_Validation(t *testing.T) {
	env := newTestEnv(t, nil)
	env.allowEvents()
	ctx := context.Background()
	userID := env.newUser(t, "alice")
	other := env.newUser(t, "bob")
	env.addLocations(t, userID, "Track_1", testBase, 1, false)
	env.addLocations(t, other, "Track_2", testBase, 1, false)

	tests := []struct {
		name        string
		label       string
		secondLabel string
		wantErr     error
	}{
		{name: "unknown first track", label: "Missing", secondLabel: "Track_2", wantErr: domainerrors.ErrTrackNotFound},
		{name: "missing second label", label: "Track_1", secondLabel: "", wantErr: domainerrors.ErrMissingSecondLabel},
		{name: "same labels", label: "Track_1", secondLabel: "Track_1", wantErr: domainerrors.ErrSameLabels},
		{name: "second track of another user", label: "Track_1", secondLabel: "Track_2", wantErr: domainerrors.ErrTrackNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.tracks.JoinTracks(ctx, userID, tt.label, tt.secondLabel)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Equal(t, int64(2), env.countTracks(t))
}

func TestTrackService_JoinTracks_KeepsFirstTrackFlags(t *testing.T) {
	env := newTestEnv(t, nil)
	env.allowEvents()
	ctx := context.Background()
	userID := env.newUser(t, "alice")
	env.seedScenario(t, userID)
	require.NoError(t, env.tracks.ProcessTrack(ctx, userID, "Track_2"))

	_, err := env.tracks.JoinTracks(ctx, userID, "Track_1", "Track_2")
	require.NoError(t, err)

	params, err := env.tracks.GetParams(ctx, userID, "Track_1")
	require.NoError(t, err)
	assert.False(t, params.Ended)
	assert.False(t, params.Processed)
	assert.Equal(t, int64(2), params.PointsNumber)
}

func TestTrackService_GetLiveTrack(t *testing.T) {
	ctx := context.Background()

	t.Run("global scope", func(t *testing.T) {
		env := newTestEnv(t, nil)
		env.allowEvents()
		alice := env.newUser(t, "alice")
		bob := env.newUser(t, "bob")

		live, err := env.tracks.GetLiveTrack(ctx, alice)
		require.NoError(t, err)
		assert.Nil(t, live)

		env.addLocations(t, alice, "Morning", testBase, 2, false)
		env.addLocations(t, bob, "Evening", testBase.Add(time.Hour), 1, false)

		live, err = env.tracks.GetLiveTrack(ctx, alice)
		require.NoError(t, err)
		require.NotNil(t, live)
		assert.Equal(t, "Evening", live.Label)
		assert.Equal(t, bob, live.UserID)
	})

	t.Run("user scope", func(t *testing.T) {
		cfg := &config.Config{Tracks: &config.TracksConfig{LiveScope: config.LiveScopeUser}}
		env := newTestEnv(t, cfg)
		env.allowEvents()
		alice := env.newUser(t, "alice")
		bob := env.newUser(t, "bob")
		env.addLocations(t, alice, "Morning", testBase, 2, false)
		env.addLocations(t, bob, "Evening", testBase.Add(time.Hour), 1, false)

		live, err := env.tracks.GetLiveTrack(ctx, alice)
		require.NoError(t, err)
		require.NotNil(t, live)
		assert.Equal(t, "Morning", live.Label)
	})

	t.Run("ended tracks are never live", func(t *testing.T) {
		env := newTestEnv(t, nil)
		env.allowEvents()
		alice := env.newUser(t, "alice")
		env.addLocations(t, alice, "Morning", testBase, 1, false)

		ended := true
		_, err := env.tracks.PatchTrack(ctx, alice, "Morning", &usecase.PatchTrackInput{Ended: &ended})
		require.NoError(t, err)

		live, err := env.tracks.GetLiveTrack(ctx, alice)
		require.NoError(t, err)
		assert.Nil(t, live)
	})
}

func TestTrackService_RetrieveTrace(t *testing.T) {
	env := newTestEnv(t, nil)
	env.allowEvents()
	ctx := context.Background()
	userID := env.newUser(t, "alice")
	env.seedScenario(t, userID)

	trace, err := env.tracks.RetrieveTrace(ctx, userID, "Track_2")
	require.NoError(t, err)
	assert.Equal(t, "Track_2", trace.Track.Label)
	assert.True(t, trace.Track.Ended)
	assert.Len(t, trace.Points, 2)
}
