// Package employeerepo provides data transfer objects and mapping functions for employee persistence.
// Employees link identity-service users to the restaurant they cook for.
package employeerepo

import (
	"smallsquare/internal/core/domain/model/employee"
	"smallsquare/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EmployeeDTO represents the database structure for persisting employees.
// A user works for at most one restaurant, hence the unique composite index.
type EmployeeDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_employees_user_restaurant"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_employees_user_restaurant"`
}

// TableName specifies the database table name for employee entities.
// Overrides GORM's default naming convention to use "employees".
func (EmployeeDTO) TableName() string {
	return "employees"
}

// fromDomain converts an employee domain aggregate to its database representation.
func fromDomain(aggregate *employee.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:           aggregate.ID().Bytes(),
		UserID:       aggregate.UserID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
	}
}

// toDomain converts a database DTO to an employee domain aggregate.
func toDomain(dto EmployeeDTO) (*employee.Employee, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return employee.RestoreEmployee(id, userID, restaurantID)
}
