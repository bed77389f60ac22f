package services

import (
	"context"
	"testing"

	"prestige-backend/models"
	"prestige-backend/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeaturedNewestFirstAvailableOnly(t *testing.T) {
	env := newTestEnv(t)
	env.seedCar(t, "First", 1, models.CarStatusAvailable)
	env.seedCar(t, "Sold", 1, models.CarStatusSold)
	env.seedCar(t, "Latest", 1, models.CarStatusAvailable)

	cars, err := env.catalog.Featured(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, cars, 2)
	assert.Equal(t, "Latest", cars[0].Name)
	assert.Equal(t, "First", cars[1].Name)
}

func TestListAvailableRejectsInvertedPriceRange(t *testing.T) {
	env := newTestEnv(t)
	lo, hi := 500.0, 100.0
	_, err := env.catalog.ListAvailable(context.Background(), repository.CarFilter{MinPrice: &lo, MaxPrice: &hi})
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestGetDetail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.seedUser(t, "viewer", "secret1")
	car := env.seedCar(t, "Huracan", 275000, models.CarStatusAvailable)
	require.NoError(t, env.db.Model(&car).Update("features", "Carbon brakes, , Launch control").Error)

	_, err := env.catalog.GetDetail(ctx, uuid.New(), nil)
	assert.Equal(t, KindNotFound, KindOf(err))

	detail, err := env.catalog.GetDetail(ctx, car.ID, nil)
	require.NoError(t, err)
	assert.False(t, detail.IsFavorite)
	assert.Equal(t, []string{"Carbon brakes", "Launch control"}, detail.Features)

	_, err = env.favorites.Toggle(ctx, user.ID, car.ID)
	require.NoError(t, err)

	detail, err = env.catalog.GetDetail(ctx, car.ID, &user.ID)
	require.NoError(t, err)
	assert.True(t, detail.IsFavorite)
}

func TestPrimaryImageURLResolution(t *testing.T) {
	car := &models.Car{ImageURL: "main.jpg"}
	gallery := []models.CarImage{{ImageURL: "a.jpg"}, {ImageURL: "b.jpg", IsPrimary: true}}

	assert.Equal(t, "b.jpg", PrimaryImageURL(car, gallery))

	gallery[1].IsPrimary = false
	assert.Equal(t, "main.jpg", PrimaryImageURL(car, gallery))

	car.ImageURL = ""
	assert.Equal(t, "a.jpg", PrimaryImageURL(car, gallery))
	assert.Equal(t, "", PrimaryImageURL(car, nil))
}
