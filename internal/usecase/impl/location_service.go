package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/domain/entity"
	"tracker/internal/domain/repository"
	"tracker/internal/domain/service"
	"tracker/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type locationService struct {
	txManager    repository.TransactionManager
	locationRepo repository.LocationRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
	now          func() time.Time
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	LocationRepo repository.LocationRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		txManager:    params.TxManager,
		locationRepo: params.LocationRepo,
		publisher:    params.Publisher,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// ListLocations retrieves all locations on the user's tracks
func (s *locationService) ListLocations(ctx context.Context, userID uuid.UUID) ([]*entity.Location, error) {
	locations, err := s.locationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	return locations, nil
}

// CreateLocation stores the location and, when the user has no track with
// the given label, a fresh track for it. Both rows commit or neither does.
func (s *locationService) CreateLocation(ctx context.Context, userID uuid.UUID, input *usecase.CreateLocationInput) (*entity.Location, error) {
	if err := validateTrackLabel("track", input.Track); err != nil {
		return nil, err
	}

	date := s.now().UTC()
	if input.Date != nil {
		date = input.Date.UTC()
	}

	location := &entity.Location{
		ID:        uuid.New(),
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Date:      date,
		Position:  input.Position,
		Edit:      input.Edit,
	}

	var (
		track        *entity.Track
		trackCreated bool
	)
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		track, trackCreated, err = repoFactory.NewTrackRepository().FindOrCreateTrack(ctx, userID, input.Track)
		if err != nil {
			return err
		}

		trackID := track.ID
		location.TrackID = &trackID
		location.TrackLabel = track.Label

		return repoFactory.NewLocationRepository().CreateLocation(ctx, location)
	})
	if err != nil {
		return nil, mapTrackError(err, "failed to create location")
	}

	if trackCreated {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Track created implicitly",
			slog.String("label", track.Label),
			slog.Any("trackID", track.ID),
		)
		publishTrackEvent(ctx, s.publisher, s.logger, newTrackEvent(ctx, service.TrackEventCreated, track))
	}

	return location, nil
}
