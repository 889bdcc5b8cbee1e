package dish_test

import (
	"testing"

	"smallsquare/internal/core/domain/model/dish"
	"smallsquare/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createValidDish(t *testing.T) *dish.Dish {
	t.Helper()
	d, err := dish.NewDish(
		kernel.NewUUID(),
		"Bandeja Paisa",
		"the full plate",
		32000,
		"https://cdn.example.com/bandeja.png",
		kernel.NewUUID(),
		kernel.NewUUID(),
		true,
	)
	require.NoError(t, err)
	return d
}

func TestNewDish(t *testing.T) {
	validID := kernel.NewUUID()
	validCategoryID := kernel.NewUUID()
	validRestaurantID := kernel.NewUUID()

	t.Run("should create dish with valid parameters", func(t *testing.T) {
		d, err := dish.NewDish(validID, "Ajiaco", "chicken and potato soup", 18500, "", validCategoryID, validRestaurantID, true)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(validID))
		assert.Equal(t, "Ajiaco", d.Name())
		assert.Equal(t, "chicken and potato soup", d.Description())
		assert.InEpsilon(t, 18500.0, d.Price(), 0.0001)
		assert.True(t, d.CategoryID().IsEqual(validCategoryID))
		assert.True(t, d.RestaurantID().IsEqual(validRestaurantID))
		assert.True(t, d.Active())
	})

	t.Run("should return error for empty name", func(t *testing.T) {
		d, err := dish.NewDish(validID, "", "", 18500, "", validCategoryID, validRestaurantID, true)

		require.Error(t, err)
		assert.Nil(t, d)
		assert.Equal(t, dish.ErrNameIsRequired, err)
	})

	t.Run("should return error for non-positive price", func(t *testing.T) {
		testCases := []struct {
			name  string
			price float64
		}{
			{"zero price", 0},
			{"negative price", -100},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				d, err := dish.NewDish(validID, "Ajiaco", "", tc.price, "", validCategoryID, validRestaurantID, true)

				require.Error(t, err)
				assert.Nil(t, d)
				assert.Contains(t, err.Error(), "price is invalid")
			})
		}
	})

	t.Run("should return aggregated errors for invalid identifiers", func(t *testing.T) {
		var invalidID kernel.UUID

		d, err := dish.NewDish(invalidID, "Ajiaco", "", 18500, "", invalidID, invalidID, true)

		require.Error(t, err)
		assert.Nil(t, d)
		assert.Contains(t, err.Error(), kernel.ErrUUIDIsNotConstructed.Error())
	})
}

func TestDish_UpdateDetails(t *testing.T) {
	t.Run("should update menu attributes", func(t *testing.T) {
		d := createValidDish(t)
		originalCategory := d.CategoryID()
		originalRestaurant := d.RestaurantID()

		err := d.UpdateDetails("Bandeja Especial", "with extra chicharron", 36000, "https://cdn.example.com/v2.png", false)

		require.NoError(t, err)
		assert.Equal(t, "Bandeja Especial", d.Name())
		assert.Equal(t, "with extra chicharron", d.Description())
		assert.InEpsilon(t, 36000.0, d.Price(), 0.0001)
		assert.False(t, d.Active())

		// Category and restaurant are immutable
		assert.True(t, d.CategoryID().IsEqual(originalCategory))
		assert.True(t, d.RestaurantID().IsEqual(originalRestaurant))
	})

	t.Run("should reject empty name without changing state", func(t *testing.T) {
		d := createValidDish(t)

		err := d.UpdateDetails("", "desc", 1000, "", true)

		require.Error(t, err)
		assert.Equal(t, "Bandeja Paisa", d.Name())
	})

	t.Run("should reject non-positive price without changing state", func(t *testing.T) {
		d := createValidDish(t)

		err := d.UpdateDetails("Bandeja Paisa", "desc", -1, "", true)

		require.Error(t, err)
		assert.InEpsilon(t, 32000.0, d.Price(), 0.0001)
	})
}

func TestDish_Validate(t *testing.T) {
	t.Run("should return error for zero value dish", func(t *testing.T) {
		var d dish.Dish

		err := d.Validate()

		require.Error(t, err)
		assert.Equal(t, dish.ErrDishIsNotConstructed, err)
	})

	t.Run("should return error for nil dish", func(t *testing.T) {
		var d *dish.Dish

		err := d.Validate()

		require.Error(t, err)
		assert.Equal(t, dish.ErrDishIsNotConstructed, err)
	})
}
