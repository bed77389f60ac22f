package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"prestige-backend/firebase"
	"prestige-backend/models"
	"prestige-backend/repository"

	"github.com/google/uuid"
)

type InventoryService struct {
	store   *repository.Store
	storage firebase.StorageClient
}

func NewInventoryService(store *repository.Store, storage firebase.StorageClient) *InventoryService {
	if storage == nil {
		storage = firebase.NoopStorage{}
	}
	return &InventoryService{store: store, storage: storage}
}

// CarForm is the raw admin car form. Numeric fields arrive as text.
type CarForm struct {
	Name             string
	Brand            string
	Model            string
	Year             string
	Price            string
	Horsepower       string
	Description      string
	ImageURL         string
	Status           string
	Engine           string
	Transmission     string
	FuelType         string
	Mileage          string
	ExteriorColor    string
	InteriorColor    string
	TopSpeed         string
	Acceleration     string
	Features         string
	AdditionalImages []string
}

func (s *InventoryService) ListCars(ctx context.Context) ([]models.Car, error) {
	cars, err := s.store.ListCars(ctx)
	if err != nil {
		return nil, Persistence(err)
	}
	return cars, nil
}

func (s *InventoryService) GetCar(ctx context.Context, id uuid.UUID) (*CarDetail, error) {
	return loadCarDetail(ctx, s.store, id)
}

// fieldError reports a value that could not be parsed. verb is "adding" or "updating".
func fieldError(verb, field, problem string) error {
	return Validation(fmt.Sprintf("Error %s car: %s %s", verb, field, problem))
}

func parseRequiredInt(verb, field, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fieldError(verb, field, "must be a whole number")
	}
	return n, nil
}

// parseOptionalInt returns fallback for a blank value.
func parseOptionalInt(verb, field, raw string, fallback *int) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fieldError(verb, field, "must be a whole number")
	}
	return &n, nil
}

func parseOptionalFloat(verb, field, raw string, fallback *float64) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fieldError(verb, field, "must be a number")
	}
	return &f, nil
}

func defaultString(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}

// applyForm copies the form onto car. On update, blank horsepower, top speed,
// acceleration and status keep the car's current values; a blank mileage is 0.
func applyForm(car *models.Car, form CarForm, verb string) error {
	name := strings.TrimSpace(form.Name)
	brand := strings.TrimSpace(form.Brand)
	model := strings.TrimSpace(form.Model)
	if name == "" || brand == "" || model == "" || strings.TrimSpace(form.Year) == "" || strings.TrimSpace(form.Price) == "" {
		return Validation("Please fill in all required fields.")
	}

	year, err := parseRequiredInt(verb, "year", form.Year)
	if err != nil {
		return err
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(form.Price), 64)
	if err != nil {
		return fieldError(verb, "price", "must be a number")
	}
	if price < 0 {
		return fieldError(verb, "price", "cannot be negative")
	}

	horsepower, err := parseOptionalInt(verb, "horsepower", form.Horsepower, car.Horsepower)
	if err != nil {
		return err
	}
	topSpeed, err := parseOptionalInt(verb, "top speed", form.TopSpeed, car.TopSpeed)
	if err != nil {
		return err
	}
	acceleration, err := parseOptionalFloat(verb, "acceleration", form.Acceleration, car.Acceleration)
	if err != nil {
		return err
	}
	mileage := 0
	if m, err := parseOptionalInt(verb, "mileage", form.Mileage, nil); err != nil {
		return err
	} else if m != nil {
		mileage = *m
	}

	status := car.Status
	if raw := strings.ToLower(strings.TrimSpace(form.Status)); raw != "" {
		status = models.CarStatus(raw)
	}
	if status == "" {
		status = models.CarStatusAvailable
	}
	if !models.IsValidCarStatus(status) {
		return fieldError(verb, "status", fmt.Sprintf("%q is not a known status", status))
	}

	car.Name = name
	car.Brand = brand
	car.Model = model
	car.Year = year
	car.Price = price
	car.Horsepower = horsepower
	car.Description = strings.TrimSpace(form.Description)
	car.ImageURL = strings.TrimSpace(form.ImageURL)
	car.Status = status
	car.Engine = strings.TrimSpace(form.Engine)
	car.Transmission = defaultString(form.Transmission, "Automatic")
	car.FuelType = defaultString(form.FuelType, "Petrol")
	car.Mileage = mileage
	car.ExteriorColor = strings.TrimSpace(form.ExteriorColor)
	car.InteriorColor = strings.TrimSpace(form.InteriorColor)
	car.TopSpeed = topSpeed
	car.Acceleration = acceleration
	car.Features = strings.TrimSpace(form.Features)
	return nil
}

// CreateCar stores a new car and its additional gallery images, numbered in form order.
func (s *InventoryService) CreateCar(ctx context.Context, form CarForm) (*models.Car, error) {
	car := &models.Car{}
	if err := applyForm(car, form, "adding"); err != nil {
		return nil, err
	}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.CreateCar(ctx, car); err != nil {
			return err
		}
		for idx, raw := range form.AdditionalImages {
			url := strings.TrimSpace(raw)
			if url == "" {
				continue
			}
			if err := tx.CreateCarImage(ctx, &models.CarImage{CarID: car.ID, ImageURL: url, DisplayOrder: idx}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, Persistence(err)
	}
	return car, nil
}

func (s *InventoryService) UpdateCar(ctx context.Context, id uuid.UUID, form CarForm) (*models.Car, error) {
	car, err := s.store.FindCarByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFound("Car not found.")
	}
	if err != nil {
		return nil, Persistence(err)
	}

	if err := applyForm(car, form, "updating"); err != nil {
		return nil, err
	}
	if err := s.store.SaveCar(ctx, car); err != nil {
		return nil, Persistence(err)
	}
	return car, nil
}

// DeleteCar removes the car and everything hanging off it in one transaction,
// then deletes its stored images. Storage failures are logged, not returned.
func (s *InventoryService) DeleteCar(ctx context.Context, id uuid.UUID) error {
	car, err := s.store.FindCarByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return NotFound("Car not found.")
	}
	if err != nil {
		return Persistence(err)
	}
	images, err := s.store.ListCarImages(ctx, id)
	if err != nil {
		return Persistence(err)
	}

	if err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		return tx.DeleteCarCascade(ctx, id)
	}); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NotFound("Car not found.")
		}
		return Persistence(err)
	}

	urls := []string{car.ImageURL}
	for _, img := range images {
		urls = append(urls, img.ImageURL)
	}
	s.removeStoredImages(ctx, urls...)
	return nil
}

// AddImage appends an image after the car's current highest display order.
func (s *InventoryService) AddImage(ctx context.Context, carID uuid.UUID, url string) (*models.CarImage, error) {
	if _, err := s.store.FindCarByID(ctx, carID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("Car not found.")
		}
		return nil, Persistence(err)
	}

	url = strings.TrimSpace(url)
	if url == "" {
		return nil, Validation("Please provide an image URL.")
	}

	maxOrder, err := s.store.MaxImageOrder(ctx, carID)
	if err != nil {
		return nil, Persistence(err)
	}

	image := &models.CarImage{CarID: carID, ImageURL: url, DisplayOrder: maxOrder + 1}
	if err := s.store.CreateCarImage(ctx, image); err != nil {
		return nil, Persistence(err)
	}
	return image, nil
}

// DeleteImage removes one gallery image and returns the owning car's id. If the
// image was also the car's main image, the main image field is cleared.
func (s *InventoryService) DeleteImage(ctx context.Context, imageID uuid.UUID) (uuid.UUID, error) {
	image, err := s.findImage(ctx, imageID)
	if err != nil {
		return uuid.Nil, err
	}

	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.DeleteCarImage(ctx, image.ID); err != nil {
			return err
		}
		car, err := tx.FindCarByID(ctx, image.CarID)
		if err != nil {
			return err
		}
		if car.ImageURL == image.ImageURL {
			return tx.SetCarImageURL(ctx, car.ID, "")
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, Persistence(err)
	}

	s.removeStoredImages(ctx, image.ImageURL)
	return image.CarID, nil
}

// SetPrimaryImage flags the image as the car's only primary image and copies its
// URL into the car's main image field, atomically.
func (s *InventoryService) SetPrimaryImage(ctx context.Context, imageID uuid.UUID) (uuid.UUID, error) {
	image, err := s.findImage(ctx, imageID)
	if err != nil {
		return uuid.Nil, err
	}

	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.MarkPrimaryImage(ctx, image.CarID, image.ID); err != nil {
			return err
		}
		return tx.SetCarImageURL(ctx, image.CarID, image.ImageURL)
	})
	if err != nil {
		return uuid.Nil, Persistence(err)
	}
	return image.CarID, nil
}

func (s *InventoryService) findImage(ctx context.Context, imageID uuid.UUID) (*models.CarImage, error) {
	image, err := s.store.FindCarImageByID(ctx, imageID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFound("Image not found.")
	}
	if err != nil {
		return nil, Persistence(err)
	}
	return image, nil
}

func (s *InventoryService) removeStoredImages(ctx context.Context, urls ...string) {
	seen := make(map[string]bool, len(urls))
	for _, url := range urls {
		if url == "" || seen[url] {
			continue
		}
		seen[url] = true
		if _, err := firebase.RemoveStoredImage(ctx, s.storage, url); err != nil {
			log.Printf("Warning: failed to remove stored image %s: %v", url, err)
		}
	}
}
