package commands_test

import (
	"testing"
	"time"

	"smallsquare/internal/core/application/usecases/commands"
	"smallsquare/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	clientID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	chefUserID := kernel.NewUUID()
	date := validOrderDate()
	lines := validLines(t, 2)

	cmd, err := commands.NewCreateOrderCommand(orderID, date, "table 4", clientID, restaurantID, chefUserID, lines)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, date, cmd.Date())
	assert.Equal(t, "table 4", cmd.Description())
	assert.Equal(t, clientID, cmd.ClientID())
	assert.Equal(t, restaurantID, cmd.RestaurantID())
	assert.Equal(t, chefUserID, cmd.ChefUserID())
	assert.Len(t, cmd.Lines(), 2)
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(
		invalidID, validOrderDate(), "table 4", kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), validLines(t, 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_ZeroDate(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), time.Time{}, "table 4", kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), validLines(t, 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDateIsRequired)
}

func TestNewCreateOrderCommand_EmptyDescription(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), validOrderDate(), "", kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), validLines(t, 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDescriptionIsRequired)
}

func TestNewCreateOrderCommand_NoLines(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), validOrderDate(), "table 4", kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDishesAreRequired)
}

func TestCreateOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.Error(t, cmd.Validate())
}
