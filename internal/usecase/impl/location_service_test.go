package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/service"
	"tracker/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLocationService_CreateLocation_CreatesTrackOnce(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	userID := env.newUser(t, "alice")

	env.publisher.EXPECT().
		PublishTrackEvent(mock.Anything, mock.MatchedBy(func(event *service.TrackEvent) bool {
			return event.Type == service.TrackEventCreated && event.Label == "Morning" && event.UserID == userID.String()
		})).
		Return(nil).Once()

	date := testBase
	first, err := env.locations.CreateLocation(ctx, userID, &usecase.CreateLocationInput{
		Latitude: 50.45, Longitude: 30.52, Date: &date, Track: "Morning", Position: 3,
	})
	require.NoError(t, err)
	require.NotNil(t, first.TrackID)
	assert.Equal(t, "Morning", first.TrackLabel)
	assert.Equal(t, 3, first.Position)
	assert.False(t, first.Edit)

	second, err := env.locations.CreateLocation(ctx, userID, &usecase.CreateLocationInput{
		Latitude: 50.46, Longitude: 30.53, Track: "Morning",
	})
	require.NoError(t, err)
	assert.Equal(t, *first.TrackID, *second.TrackID)
	assert.Equal(t, int64(1), env.countTracks(t))

	params, err := env.tracks.GetParams(ctx, userID, "Morning")
	require.NoError(t, err)
	assert.False(t, params.Processed)
	assert.False(t, params.Ended)
	assert.Equal(t, int64(2), params.PointsNumber)
}

func TestLocationService_CreateLocation_DefaultsDateToNow(t *testing.T) {
	env := newTestEnv(t, nil)
	env.allowEvents()
	userID := env.newUser(t, "alice")

	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.FixedZone("UTC+2", 2*60*60))
	env.locations.(*locationService).now = func() time.Time { return fixed }

	location, err := env.locations.CreateLocation(context.Background(), userID, &usecase.CreateLocationInput{
		Latitude: 1, Longitude: 2, Track: "Morning",
	})
	require.NoError(t, err)
	assert.Equal(t, time.UTC, location.Date.Location())
	assert.True(t, fixed.Equal(location.Date))
}

func TestLocationService_CreateLocation_Validation(t *testing.T) {
	env := newTestEnv(t, nil)
	userID := env.newUser(t, "alice")

	_, err := env.locations.CreateLocation(context.Background(), userID, &usecase.CreateLocationInput{
		Latitude: 1, Longitude: 2, Track: "   ",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, int64(0), env.countTracks(t))
}

func TestLocationService_CreateLocation_PublishFailureIsLogged(t *testing.T) {
	env := newTestEnv(t, nil)
	userID := env.newUser(t, "alice")
	env.publisher.EXPECT().PublishTrackEvent(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	location, err := env.locations.CreateLocation(context.Background(), userID, &usecase.CreateLocationInput{
		Latitude: 1, Longitude: 2, Track: "Morning",
	})
	require.NoError(t, err)
	assert.NotNil(t, location.TrackID)
}

func TestLocationService_ListLocations(t *testing.T) {
	env := newTestEnv(t, nil)
	env.allowEvents()
	ctx := context.Background()
	userID := env.newUser(t, "alice")

	locations, err := env.locations.ListLocations(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, locations)

	env.seedScenario(t, userID)

	locations, err = env.locations.ListLocations(ctx, userID)
	require.NoError(t, err)
	require.Len(t, locations, 8)
	for i := 1; i < len(locations); i++ {
		assert.False(t, locations[i].Date.Before(locations[i-1].Date))
	}
	assert.Equal(t, "Track_1", locations[0].TrackLabel)
	assert.Equal(t, "Track_2", locations[7].TrackLabel)
	assert.True(t, locations[7].Edit)
}
