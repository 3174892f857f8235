// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"tracker/config"
	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/domain/service"
	"tracker/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// trackService implements the TrackUsecase interface.
type trackService struct {
	txManager        repository.TransactionManager
	trackRepo        repository.TrackRepository
	locationRepo     repository.LocationRepository
	publisher        service.EventPublisher
	liveScopedToUser bool
	logger           *slog.Logger
}

// TrackServiceParams holds dependencies for TrackService, injected by Fx.
type TrackServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	TrackRepo    repository.TrackRepository
	LocationRepo repository.LocationRepository
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewTrackService is the constructor for trackService.
func NewTrackService(params TrackServiceParams) usecase.TrackUsecase {
	return &trackService{
		txManager:        params.TxManager,
		trackRepo:        params.TrackRepo,
		locationRepo:     params.LocationRepo,
		publisher:        params.Publisher,
		liveScopedToUser: params.Config != nil && params.Config.LiveScopedToUser(),
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *trackService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListLabels returns the labels of the user's tracks.
func (srv *trackService) ListLabels(ctx context.Context, userID uuid.UUID) ([]string, error) {
	labels, err := srv.trackRepo.ListLabels(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tracks")
	}

	return labels, nil
}

// CreateTrack creates an empty track owned by userID.
func (srv *trackService) CreateTrack(ctx context.Context, userID uuid.UUID, input *usecase.CreateTrackInput) (*entity.Track, error) {
	if err := validateTrackLabel("label", input.Label); err != nil {
		return nil, err
	}

	track := &entity.Track{
		UserID: userID,
		Label:  input.Label,
		Ended:  input.Ended,
	}
	if err := srv.trackRepo.CreateTrack(ctx, track); err != nil {
		return nil, mapTrackError(err, "failed to create track")
	}

	srv.log(ctx).Debug("Track created", slog.String("label", track.Label), slog.Any("trackID", track.ID))
	publishTrackEvent(ctx, srv.publisher, srv.logger, newTrackEvent(ctx, service.TrackEventCreated, track))

	return track, nil
}

// RetrievePoints returns the edit-aware trace of the track.
func (srv *trackService) RetrievePoints(ctx context.Context, userID uuid.UUID, label string, lastDate *time.Time) ([]entity.Point, error) {
	track, err := srv.findTrack(ctx, userID, label)
	if err != nil {
		return nil, err
	}

	return srv.points(ctx, track, lastDate)
}

// RetrieveTrace returns the track and its edit-aware trace.
func (srv *trackService) RetrieveTrace(ctx context.Context, userID uuid.UUID, label string) (*usecase.TrackTrace, error) {
	track, err := srv.findTrack(ctx, userID, label)
	if err != nil {
		return nil, err
	}

	points, err := srv.points(ctx, track, nil)
	if err != nil {
		return nil, err
	}

	return &usecase.TrackTrace{Track: track, Points: points}, nil
}

// RenameTrack changes the label of a track.
func (srv *trackService) RenameTrack(ctx context.Context, userID uuid.UUID, label, newLabel string) error {
	track, err := srv.findTrack(ctx, userID, label)
	if err != nil {
		return err
	}

	if newLabel == "" {
		return domainerrors.ErrMissingNewLabel
	}
	if err := validateTrackLabel("new_label", newLabel); err != nil {
		return err
	}
	if track.Label == newLabel {
		return nil
	}

	track.Label = newLabel
	if err := srv.trackRepo.UpdateTrack(ctx, track); err != nil {
		return mapTrackError(err, "failed to rename track")
	}

	event := newTrackEvent(ctx, service.TrackEventRenamed, track)
	event.OldLabel = label
	publishTrackEvent(ctx, srv.publisher, srv.logger, event)

	return nil
}

// PatchTrack applies label and/or ended to the track.
func (srv *trackService) PatchTrack(ctx context.Context, userID uuid.UUID, label string, input *usecase.PatchTrackInput) (*entity.Track, error) {
	if input.Label != nil {
		if err := validateTrackLabel("label", *input.Label); err != nil {
			return nil, err
		}
	}

	track, err := srv.findTrack(ctx, userID, label)
	if err != nil {
		return nil, err
	}

	renamed := input.Label != nil && *input.Label != track.Label
	ended := input.Ended != nil && *input.Ended && !track.Ended
	if input.Label != nil {
		track.Label = *input.Label
	}
	if input.Ended != nil {
		track.Ended = *input.Ended
	}

	if err := srv.trackRepo.UpdateTrack(ctx, track); err != nil {
		return nil, mapTrackError(err, "failed to update track")
	}

	if renamed {
		event := newTrackEvent(ctx, service.TrackEventRenamed, track)
		event.OldLabel = label
		publishTrackEvent(ctx, srv.publisher, srv.logger, event)
	}
	if ended {
		publishTrackEvent(ctx, srv.publisher, srv.logger, newTrackEvent(ctx, service.TrackEventEnded, track))
	}

	return track, nil
}

// GetParams counts the edit-aware points and reads the date range over all locations.
func (srv *trackService) GetParams(ctx context.Context, userID uuid.UUID, label string) (*entity.TrackParams, error) {
	track, err := srv.findTrack(ctx, userID, label)
	if err != nil {
		return nil, err
	}

	edit, err := srv.locationRepo.HasEdited(ctx, track.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check edited locations")
	}

	count, err := srv.locationRepo.CountPoints(ctx, track.ID, edit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count points")
	}

	start, stop, err := srv.locationRepo.DateRange(ctx, track.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read date range")
	}

	return &entity.TrackParams{
		PointsNumber: count,
		StartDate:    start,
		StopDate:     stop,
		Processed:    track.Processed,
		Ended:        track.Ended,
	}, nil
}

// GetLiveTrack returns the not-ended track with the latest location, or nil.
// The lookup spans all users unless tracks.liveScope is "user".
func (srv *trackService) GetLiveTrack(ctx context.Context, userID uuid.UUID) (*entity.Track, error) {
	var owner *uuid.UUID
	if srv.liveScopedToUser {
		owner = &userID
	}

	track, err := srv.trackRepo.FindLiveTrack(ctx, owner)
	if err != nil {
		if errors.Is(err, repository.ErrTrackNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find live track")
	}

	return track, nil
}

// ProcessTrack sets processed=true.
func (srv *trackService) ProcessTrack(ctx context.Context, userID uuid.UUID, label string) error {
	track, err := srv.findTrack(ctx, userID, label)
	if err != nil {
		return err
	}
	if track.Processed {
		return nil
	}

	track.Processed = true
	if err := srv.trackRepo.UpdateTrack(ctx, track); err != nil {
		return mapTrackError(err, "failed to process track")
	}

	publishTrackEvent(ctx, srv.publisher, srv.logger, newTrackEvent(ctx, service.TrackEventProcessed, track))

	return nil
}

// DeleteEdited removes the edited locations of the track.
func (srv *trackService) DeleteEdited(ctx context.Context, userID uuid.UUID, label string) (int64, error) {
	track, err := srv.findTrack(ctx, userID, label)
	if err != nil {
		return 0, err
	}

	deleted, err := srv.locationRepo.DeleteEdited(ctx, track.ID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete edited locations")
	}

	srv.log(ctx).Debug("Edited locations deleted", slog.String("label", label), slog.Int64("deleted", deleted))

	return deleted, nil
}

// JoinTracks merges secondLabel into label in one transaction. The first track
// keeps its own processed and ended flags; the second track's flags are dropped
// together with the track. Moved locations keep their edit flag.
func (srv *trackService) JoinTracks(ctx context.Context, userID uuid.UUID, label, secondLabel string) (int64, error) {
	if _, err := srv.findTrack(ctx, userID, label); err != nil {
		return 0, err
	}
	if secondLabel == "" {
		return 0, domainerrors.ErrMissingSecondLabel
	}
	if secondLabel == label {
		return 0, domainerrors.ErrSameLabels
	}

	var (
		first *entity.Track
		moved int64
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		trackRepo := repoFactory.NewTrackRepository()
		locationRepo := repoFactory.NewLocationRepository()

		var err error
		first, err = trackRepo.FindTrackByLabel(ctx, userID, label)
		if err != nil {
			return err
		}

		second, err := trackRepo.FindTrackByLabel(ctx, userID, secondLabel)
		if err != nil {
			return err
		}

		moved, err = locationRepo.ReassignTrack(ctx, second.ID, first.ID)
		if err != nil {
			return err
		}

		return trackRepo.DeleteTrack(ctx, second.ID)
	})
	if err != nil {
		return 0, mapTrackError(err, "failed to join tracks")
	}

	srv.log(ctx).Info("Tracks joined",
		slog.String("label", label),
		slog.String("secondLabel", secondLabel),
		slog.Int64("moved", moved),
	)

	event := newTrackEvent(ctx, service.TrackEventJoined, first)
	event.SecondLabel = secondLabel
	event.Moved = moved
	publishTrackEvent(ctx, srv.publisher, srv.logger, event)

	return moved, nil
}

func (srv *trackService) findTrack(ctx context.Context, userID uuid.UUID, label string) (*entity.Track, error) {
	track, err := srv.trackRepo.FindTrackByLabel(ctx, userID, label)
	if err != nil {
		return nil, mapTrackError(err, "failed to find track")
	}

	return track, nil
}

func (srv *trackService) points(ctx context.Context, track *entity.Track, after *time.Time) ([]entity.Point, error) {
	edit, err := srv.locationRepo.HasEdited(ctx, track.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check edited locations")
	}

	points, err := srv.locationRepo.FindPoints(ctx, track.ID, edit, after)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find points")
	}

	return points, nil
}

// mapTrackError converts repository outcomes into the errors the API reports.
func mapTrackError(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrTrackNotFound):
		return domainerrors.ErrTrackNotFound
	case errors.Is(err, repository.ErrTrackLabelTaken):
		return domainerrors.ErrTrackLabelTaken
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Wrap(err, msg)
}

func validateTrackLabel(field, label string) error {
	switch {
	case strings.TrimSpace(label) == "":
		return domainerrors.ErrValidationFailed.WithDetails(field + " is required")
	case utf8.RuneCountInString(label) > entity.MaxTrackLabelLength:
		return domainerrors.ErrValidationFailed.WithDetails(field + " must be at most " + strconv.Itoa(entity.MaxTrackLabelLength) + " characters")
	}

	return nil
}
