package dishrepo

import (
	"context"
	"errors"

	"smallsquare/internal/core/domain/model/dish"
	"smallsquare/internal/core/domain/model/kernel"
	"smallsquare/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDishRepository implements DishRepository using GORM.
type GormDishRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDishRepository creates a new GORM dish repository.
func NewGormDishRepository(db *gorm.DB, tracker aggregateTracker) *GormDishRepository {
	return &GormDishRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new dish to the database.
func (r *GormDishRepository) Add(ctx context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves changes to an existing dish.
func (r *GormDishRepository) Update(ctx context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DishDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "description", "price", "image_url", "active").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a dish by ID.
func (r *GormDishRepository) Get(ctx context.Context, id kernel.UUID) (*dish.Dish, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DishDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dish", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDsAndRestaurant retrieves the dishes among ids that belong to the
// given restaurant. Dishes of other restaurants are absent from the result;
// membership validation happens in the domain service, not here.
func (r *GormDishRepository) GetByIDsAndRestaurant(
	ctx context.Context,
	ids []kernel.UUID,
	restaurantID kernel.UUID,
) ([]*dish.Dish, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []DishDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "id IN ? AND restaurant_id = ?", rawIDs, restaurantID.Bytes()).
		Error
	if err != nil {
		return nil, err
	}

	dishes := make([]*dish.Dish, 0, len(dtos))
	for _, dto := range dtos {
		d, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		dishes = append(dishes, d)
	}

	return dishes, nil
}
