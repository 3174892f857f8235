package postgres

import (
	"context"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/infra/persistence/model"
	"tracker/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// trackRepository implements the repository.TrackRepository interface.
type trackRepository struct {
	q *query.Query
}

// NewTrackRepository is the constructor for trackRepository.
func NewTrackRepository(db *gorm.DB) repository.TrackRepository {
	return &trackRepository{
		q: query.Use(db),
	}
}

// CreateTrack persists a new track.
func (repo *trackRepository) CreateTrack(ctx context.Context, track *entity.Track) error {
	if track.ID == uuid.Nil {
		track.ID = uuid.New()
	}
	trackM := fromTrackDomain(track)

	if err := repo.q.TrackModel.WithContext(ctx).Create(trackM); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrTrackLabelTaken
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid track owner")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create track")
	}

	track.CreatedAt = trackM.CreatedAt
	track.UpdatedAt = trackM.UpdatedAt

	return nil
}

// FindOrCreateTrack inserts the track unless (user_id, label) already exists, then reads it back.
// Two concurrent callers converge on the same row.
func (repo *trackRepository) FindOrCreateTrack(ctx context.Context, userID uuid.UUID, label string) (*entity.Track, bool, error) {
	t := repo.q.TrackModel
	trackM := &model.TrackModel{
		ID:     uuid.New(),
		UserID: userID,
		Label:  label,
	}

	if err := t.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "label"}},
			DoNothing: true,
		}).
		Create(trackM); err != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError(err, "failed to create track")
	}

	track, err := repo.FindTrackByLabel(ctx, userID, label)
	if err != nil {
		return nil, false, err
	}

	return track, track.ID == trackM.ID, nil
}

// FindTrackByLabel retrieves the owner's track with the label.
func (repo *trackRepository) FindTrackByLabel(ctx context.Context, userID uuid.UUID, label string) (*entity.Track, error) {
	t := repo.q.TrackModel

	trackM, err := t.WithContext(ctx).
		Where(t.UserID.Eq(userID), t.Label.Eq(label)).
		Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTrackNotFound
		}

		return nil, errors.Wrap(err, "failed to find track by label")
	}

	return toTrackDomain(trackM), nil
}

// ListLabels returns the labels of all the owner's tracks, oldest first.
func (repo *trackRepository) ListLabels(ctx context.Context, userID uuid.UUID) ([]string, error) {
	t := repo.q.TrackModel
	labels := make([]string, 0)

	if err := t.WithContext(ctx).
		Where(t.UserID.Eq(userID)).
		Order(t.CreatedAt).
		Pluck(t.Label, &labels); err != nil {
		return nil, errors.Wrap(err, "failed to list track labels")
	}

	return labels, nil
}

// UpdateTrack saves label, processed and ended.
func (repo *trackRepository) UpdateTrack(ctx context.Context, track *entity.Track) error {
	t := repo.q.TrackModel

	result, err := t.WithContext(ctx).
		Where(t.ID.Eq(track.ID), t.UserID.Eq(track.UserID)).
		Updates(map[string]any{
			"label":     track.Label,
			"processed": track.Processed,
			"ended":     track.Ended,
		})
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrTrackLabelTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update track")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTrackNotFound
	}

	return nil
}

// DeleteTrack removes a track by ID.
func (repo *trackRepository) DeleteTrack(ctx context.Context, id uuid.UUID) error {
	t := repo.q.TrackModel

	result, err := t.WithContext(ctx).
		Where(t.ID.Eq(id)).
		Delete()
	if err != nil {
		return errors.Wrap(err, "failed to delete track")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTrackNotFound
	}

	return nil
}

// FindLiveTrack returns the not-ended track holding the latest location.
func (repo *trackRepository) FindLiveTrack(ctx context.Context, userID *uuid.UUID) (*entity.Track, error) {
	t, l := repo.q.TrackModel, repo.q.LocationModel

	do := t.WithContext(ctx).
		Select(t.ALL).
		Join(l, l.TrackID.EqCol(t.ID)).
		Where(t.Ended.Is(false))
	if userID != nil {
		do = do.Where(t.UserID.Eq(*userID))
	}

	trackM, err := do.Order(l.RecordedAt.Desc()).Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTrackNotFound
		}

		return nil, errors.Wrap(err, "failed to find live track")
	}

	return toTrackDomain(trackM), nil
}

// --- Mapper Functions ---

func toTrackDomain(data *model.TrackModel) *entity.Track {
	if data == nil {
		return nil
	}

	return &entity.Track{
		ID:        data.ID,
		UserID:    data.UserID,
		Label:     data.Label,
		Processed: data.Processed,
		Ended:     data.Ended,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromTrackDomain(data *entity.Track) *model.TrackModel {
	if data == nil {
		return nil
	}

	return &model.TrackModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Label:     data.Label,
		Processed: data.Processed,
		Ended:     data.Ended,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
