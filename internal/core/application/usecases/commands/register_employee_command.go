package commands

import (
	"errors"

	"smallsquare/internal/core/domain/model/kernel"
	"smallsquare/internal/core/ports"
	"smallsquare/internal/pkg/errs"
	"smallsquare/internal/pkg/guard"
)

var (
	ErrRegisterEmployeeCommandIsNotConstructed = errors.New(
		"RegisterEmployeeCommand must be created via NewRegisterEmployeeCommand constructor",
	)
	ErrEmployeeNameIsRequired     = errs.NewValueIsRequiredError("name")
	ErrEmployeeEmailIsRequired    = errs.NewValueIsRequiredError("email")
	ErrEmployeePasswordIsRequired = errs.NewValueIsRequiredError("password")
)

// RegisterEmployeeCommand represents a request to register a user as an
// employee of a restaurant. The user account is created in the identity
// service as part of handling the command.
type RegisterEmployeeCommand struct { //nolint:recvcheck //using for validation
	employeeID   kernel.UUID
	restaurantID kernel.UUID
	name         string
	lastName     string
	email        string
	phone        string
	password     string

	guard guard.ConstructorGuard
}

// NewRegisterEmployeeCommand creates a command to register a restaurant employee.
func NewRegisterEmployeeCommand(
	employeeID kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	lastName string,
	email string,
	phone string,
	password string,
) (RegisterEmployeeCommand, error) {
	cmd := RegisterEmployeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmployeeID(employeeID),
		cmd.setRestaurantID(restaurantID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return RegisterEmployeeCommand{}, err
	}

	cmd.lastName = lastName
	cmd.phone = phone

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrRegisterEmployeeCommandIsNotConstructed)
}

// EmployeeID returns the identifier assigned to the new employee record.
func (c RegisterEmployeeCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// RestaurantID returns the restaurant the employee is joining.
func (c RegisterEmployeeCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the employee's first name.
func (c RegisterEmployeeCommand) Name() string {
	return c.name
}

// LastName returns the employee's last name.
func (c RegisterEmployeeCommand) LastName() string {
	return c.lastName
}

// Email returns the employee's sign-up email.
func (c RegisterEmployeeCommand) Email() string {
	return c.email
}

// Phone returns the employee's contact phone.
func (c RegisterEmployeeCommand) Phone() string {
	return c.phone
}

// SignUpRequest builds the identity-service sign-up payload for the employee.
func (c RegisterEmployeeCommand) SignUpRequest() ports.SignUpRequest {
	return ports.SignUpRequest{
		Name:     c.name,
		LastName: c.lastName,
		Email:    c.email,
		Phone:    c.phone,
		Password: c.password,
	}
}

func (c *RegisterEmployeeCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}
	c.employeeID = employeeID
	return nil
}

func (c *RegisterEmployeeCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *RegisterEmployeeCommand) setName(name string) error {
	if name == "" {
		return ErrEmployeeNameIsRequired
	}
	c.name = name
	return nil
}

func (c *RegisterEmployeeCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmployeeEmailIsRequired
	}
	c.email = email
	return nil
}

func (c *RegisterEmployeeCommand) setPassword(password string) error {
	if password == "" {
		return ErrEmployeePasswordIsRequired
	}
	c.password = password
	return nil
}
