package postgres

import (
	"context"

	"voyage/internal/domain/entity"
	"voyage/internal/domain/repository"
	"voyage/internal/errors"
	"voyage/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type tripRepository struct {
	db *gorm.DB
}

// NewTripRepository creates a trip repository backed by PostgreSQL.
func NewTripRepository(db *gorm.DB) repository.TripRepository {
	return &tripRepository{db: db}
}

// Create inserts a new trip.
func (r *tripRepository) Create(ctx context.Context, trip *entity.Trip) (*entity.Trip, error) {
	record := tripEntityToModel(trip)

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create trip")
	}

	return tripModelToEntity(record), nil
}

// FindByOwner retrieves every trip belonging to a user, most recently
// created first.
func (r *tripRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Trip, error) {
	var records []model.TripModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list trips by owner")
	}

	trips := make([]*entity.Trip, 0, len(records))
	for i := range records {
		trips = append(trips, tripModelToEntity(&records[i]))
	}

	return trips, nil
}

// FindByIDAndOwner retrieves a single trip, scoped to its owner. A trip
// belonging to another user is indistinguishable from a missing one.
func (r *tripRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Trip, error) {
	var record model.TripModel
	if err := r.db.WithContext(ctx).
		First(&record, "id = ? AND user_id = ?", id, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTripNotFound
		}

		return nil, errors.Wrap(err, "failed to find trip")
	}

	return tripModelToEntity(&record), nil
}

// Update persists a full replacement of the trip record, scoped to its owner.
func (r *tripRepository) Update(ctx context.Context, trip *entity.Trip) (*entity.Trip, error) {
	record := tripEntityToModel(trip)

	result := r.db.WithContext(ctx).
		Model(&model.TripModel{}).
		Where("id = ? AND user_id = ?", trip.ID, trip.UserID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(record)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update trip")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrTripNotFound
	}

	return r.FindByIDAndOwner(ctx, trip.ID, trip.UserID)
}

// DeleteByIDAndOwner removes a trip, scoped to its owner.
func (r *tripRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.TripModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete trip")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTripNotFound
	}

	return nil
}

func tripEntityToModel(trip *entity.Trip) *model.TripModel {
	return &model.TripModel{
		ID:                trip.ID,
		UserID:            trip.UserID,
		Title:             trip.Title,
		Description:       trip.Description,
		StartDate:         trip.StartDate,
		EndDate:           trip.EndDate,
		Destinations:      datatypes.NewJSONType(trip.Destinations),
		Budget:            datatypes.NewJSONType(trip.Budget),
		Activities:        datatypes.NewJSONType(trip.Activities),
		TravelStyle:       datatypes.NewJSONSlice(trip.TravelStyle),
		NumberOfTravelers: trip.NumberOfTravelers,
		Status:            trip.Status.String(),
		IsPublic:          trip.IsPublic,
		CreatedAt:         trip.CreatedAt,
		UpdatedAt:         trip.UpdatedAt,
	}
}

func tripModelToEntity(record *model.TripModel) *entity.Trip {
	return &entity.Trip{
		ID:                record.ID,
		UserID:            record.UserID,
		Title:             record.Title,
		Description:       record.Description,
		StartDate:         record.StartDate,
		EndDate:           record.EndDate,
		Destinations:      record.Destinations.Data(),
		Budget:            record.Budget.Data(),
		Activities:        record.Activities.Data(),
		TravelStyle:       record.TravelStyle,
		NumberOfTravelers: record.NumberOfTravelers,
		Status:            entity.TripStatus(record.Status),
		IsPublic:          record.IsPublic,
		CreatedAt:         record.CreatedAt,
		UpdatedAt:         record.UpdatedAt,
	}
}
