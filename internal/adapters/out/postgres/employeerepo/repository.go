package employeerepo

import (
	"context"
	"errors"

	"smallsquare/internal/core/domain/model/employee"
	"smallsquare/internal/core/domain/model/kernel"
	"smallsquare/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEmployeeRepository implements EmployeeRepository using GORM.
type GormEmployeeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormEmployeeRepository creates a new GORM employee repository.
func NewGormEmployeeRepository(db *gorm.DB, tracker aggregateTracker) *GormEmployeeRepository {
	return &GormEmployeeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new employee to the database.
func (r *GormEmployeeRepository) Add(ctx context.Context, aggregate *employee.Employee) error {
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

// GetByUserAndRestaurant retrieves the employee linking the given user to
// the given restaurant. A not-found error means the user does not work there.
func (r *GormEmployeeRepository) GetByUserAndRestaurant(
	ctx context.Context,
	userID kernel.UUID,
	restaurantID kernel.UUID,
) (*employee.Employee, error) {
	if err := errors.Join(userID.Validate(), restaurantID.Validate()); err != nil {
		return nil, err
	}

	var dto EmployeeDTO
	err := r.db.WithContext(ctx).
		First(&dto, "user_id = ? AND restaurant_id = ?", userID.Bytes(), restaurantID.Bytes()).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("employee", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
