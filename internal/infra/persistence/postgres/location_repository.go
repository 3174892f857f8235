package postgres

import (
	"context"
	"time"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// CreateLocation persists a new location.
func (repo *locationRepository) CreateLocation(ctx context.Context, location *entity.Location) error {
	if location.ID == uuid.Nil {
		location.ID = uuid.New()
	}
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrTrackNotFound.WrapMessage("invalid track reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// ListByUser returns every location on the owner's tracks, ordered by date.
func (repo *locationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Location, error) {
	var rows []model.LocationWithLabel

	if err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Select("locations.*, tracks.label AS track_label").
		Joins("JOIN tracks ON tracks.id = locations.track_id").
		Where("tracks.user_id = ?", userID).
		Order("locations.recorded_at ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list locations by user")
	}

	locations := make([]*entity.Location, 0, len(rows))
	for i := range rows {
		location := toLocationDomain(&rows[i].LocationModel)
		location.TrackLabel = rows[i].TrackLabel
		locations = append(locations, location)
	}

	return locations, nil
}

// HasEdited reports whether the track has at least one edit=true location.
func (repo *locationRepository) HasEdited(ctx context.Context, trackID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("track_id = ? AND edit = ?", trackID, true).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check edited locations")
	}

	return count > 0, nil
}

// FindPoints returns the filtered trace ordered by (position, date).
func (repo *locationRepository) FindPoints(ctx context.Context, trackID uuid.UUID, edit bool, after *time.Time) ([]entity.Point, error) {
	var locationModels []*model.LocationModel

	query := repo.db.WithContext(ctx).
		Where("track_id = ? AND edit = ?", trackID, edit)
	if after != nil {
		query = query.Where("recorded_at > ?", after.UTC())
	}

	if err := query.
		Order("position ASC").
		Order("recorded_at ASC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find track points")
	}

	points := make([]entity.Point, 0, len(locationModels))
	for _, locationM := range locationModels {
		points = append(points, entity.Point{
			Latitude:  locationM.Latitude,
			Longitude: locationM.Longitude,
			Date:      locationM.RecordedAt,
		})
	}

	return points, nil
}

// CountPoints counts the track's locations whose edit flag equals edit.
func (repo *locationRepository) CountPoints(ctx context.Context, trackID uuid.UUID, edit bool) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("track_id = ? AND edit = ?", trackID, edit).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count track points")
	}

	return count, nil
}

// DateRange returns MIN(recorded_at) and MAX(recorded_at) of the track.
// The bounds are read as ordered single-row lookups so the column type survives
// on every driver; aggregate results come back as text on SQLite.
func (repo *locationRepository) DateRange(ctx context.Context, trackID uuid.UUID) (*time.Time, *time.Time, error) {
	start, err := repo.boundary(ctx, trackID, "recorded_at ASC")
	if err != nil {
		return nil, nil, err
	}
	if start == nil {
		return nil, nil, nil
	}

	stop, err := repo.boundary(ctx, trackID, "recorded_at DESC")
	if err != nil {
		return nil, nil, err
	}

	return start, stop, nil
}

func (repo *locationRepository) boundary(ctx context.Context, trackID uuid.UUID, order string) (*time.Time, error) {
	var locationM model.LocationModel

	if err := repo.db.WithContext(ctx).
		Select("recorded_at").
		Where("track_id = ?", trackID).
		Order(order).
		Take(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read track date range")
	}

	date := locationM.RecordedAt

	return &date, nil
}

// DeleteEdited removes the track's edit=true locations.
func (repo *locationRepository) DeleteEdited(ctx context.Context, trackID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("track_id = ? AND edit = ?", trackID, true).
		Delete(&model.LocationModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete edited locations")
	}

	return result.RowsAffected, nil
}

// ReassignTrack moves every location of one track to another.
func (repo *locationRepository) ReassignTrack(ctx context.Context, fromTrackID, toTrackID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("track_id = ?", fromTrackID).
		Update("track_id", toTrackID)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to reassign locations")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:        data.ID,
		TrackID:   data.TrackID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Date:      data.RecordedAt,
		Position:  data.Position,
		Edit:      data.Edit,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	return &model.LocationModel{
		ID:         data.ID,
		TrackID:    data.TrackID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		RecordedAt: data.Date,
		Position:   data.Position,
		Edit:       data.Edit,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
