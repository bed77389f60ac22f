package services

import (
	"context"
	"errors"

	"prestige-backend/models"
	"prestige-backend/repository"

	"github.com/google/uuid"
)

type CatalogService struct {
	store *repository.Store
}

func NewCatalogService(store *repository.Store) *CatalogService {
	return &CatalogService{store: store}
}

// CarDetail is everything the car page renders.
type CarDetail struct {
	Car             *models.Car       `json:"car"`
	Images          []models.CarImage `json:"images"`
	PrimaryImageURL string            `json:"primary_image_url"`
	Features        []string          `json:"features"`
	IsFavorite      bool              `json:"is_favorite"`
}

// Featured returns available cars newest first; limit <= 0 means no limit.
func (s *CatalogService) Featured(ctx context.Context, limit int) ([]models.Car, error) {
	cars, err := s.store.ListFeaturedCars(ctx, limit)
	if err != nil {
		return nil, Persistence(err)
	}
	return cars, nil
}

func (s *CatalogService) ListAvailable(ctx context.Context, filter repository.CarFilter) ([]models.Car, error) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return nil, Validation("Minimum price cannot exceed maximum price.")
	}
	cars, err := s.store.ListAvailableCars(ctx, filter)
	if err != nil {
		return nil, Persistence(err)
	}
	return cars, nil
}

// GetDetail loads a car with its gallery. viewerID is nil for anonymous visitors.
func (s *CatalogService) GetDetail(ctx context.Context, carID uuid.UUID, viewerID *uuid.UUID) (*CarDetail, error) {
	detail, err := loadCarDetail(ctx, s.store, carID)
	if err != nil {
		return nil, err
	}

	if viewerID != nil {
		fav, err := s.store.IsFavorite(ctx, *viewerID, carID)
		if err != nil {
			return nil, Persistence(err)
		}
		detail.IsFavorite = fav
	}
	return detail, nil
}

func loadCarDetail(ctx context.Context, store *repository.Store, carID uuid.UUID) (*CarDetail, error) {
	car, err := store.FindCarByID(ctx, carID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFound("Car not found.")
	}
	if err != nil {
		return nil, Persistence(err)
	}

	images, err := store.ListCarImages(ctx, carID)
	if err != nil {
		return nil, Persistence(err)
	}

	return &CarDetail{
		Car:             car,
		Images:          images,
		PrimaryImageURL: PrimaryImageURL(car, images),
		Features:        car.FeaturesList(),
	}, nil
}

// PrimaryImageURL picks the display image: the flagged gallery image, then the
// car's main image field, then the first gallery image.
func PrimaryImageURL(car *models.Car, images []models.CarImage) string {
	for _, img := range images {
		if img.IsPrimary {
			return img.ImageURL
		}
	}
	if car.ImageURL != "" {
		return car.ImageURL
	}
	if len(images) > 0 {
		return images[0].ImageURL
	}
	return ""
}
