package repository

import (
	"context"

	"prestige-backend/models"

	"github.com/google/uuid"
)

// CarFilter narrows the public listing. Zero values match everything.
type CarFilter struct {
	Brand    string
	FuelType string
	MinPrice *float64
	MaxPrice *float64
}

func (s *Store) FindCarByID(ctx context.Context, id uuid.UUID) (*models.Car, error) {
	var car models.Car
	if err := s.conn(ctx).Where("id = ?", id).First(&car).Error; err != nil {
		return nil, translate(err)
	}
	return &car, nil
}

// ListFeaturedCars returns available cars newest first. limit <= 0 returns all of them.
func (s *Store) ListFeaturedCars(ctx context.Context, limit int) ([]models.Car, error) {
	var cars []models.Car
	q := s.conn(ctx).
		Where("status = ?", models.CarStatusAvailable).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&cars).Error
	return cars, err
}

// ListAvailableCars returns available cars in insertion order.
func (s *Store) ListAvailableCars(ctx context.Context, f CarFilter) ([]models.Car, error) {
	q := s.conn(ctx).Where("status = ?", models.CarStatusAvailable)
	if f.Brand != "" {
		q = q.Where("LOWER(brand) = LOWER(?)", f.Brand)
	}
	if f.FuelType != "" {
		q = q.Where("LOWER(fuel_type) = LOWER(?)", f.FuelType)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}

	var cars []models.Car
	err := q.Order("created_at ASC").Find(&cars).Error
	return cars, err
}

// ListCars returns the whole inventory, newest first.
func (s *Store) ListCars(ctx context.Context) ([]models.Car, error) {
	var cars []models.Car
	err := s.conn(ctx).Order("created_at DESC").Find(&cars).Error
	return cars, err
}

func (s *Store) CreateCar(ctx context.Context, car *models.Car) error {
	return s.conn(ctx).Omit("Images").Create(car).Error
}

func (s *Store) SaveCar(ctx context.Context, car *models.Car) error {
	return s.conn(ctx).Omit("Images").Save(car).Error
}

func (s *Store) SetCarImageURL(ctx context.Context, carID uuid.UUID, url string) error {
	return s.conn(ctx).Model(&models.Car{}).Where("id = ?", carID).Update("image_url", url).Error
}

// DeleteCarCascade removes a car together with its images, favorites and cart
// entries. Inquiries keep their text but lose the car reference. Run it inside
// Transaction.
func (s *Store) DeleteCarCascade(ctx context.Context, carID uuid.UUID) error {
	db := s.conn(ctx)

	if err := db.Where("car_id = ?", carID).Delete(&models.CarImage{}).Error; err != nil {
		return err
	}
	if err := db.Where("car_id = ?", carID).Delete(&models.Favorite{}).Error; err != nil {
		return err
	}
	if err := db.Where("car_id = ?", carID).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	if err := db.Model(&models.Inquiry{}).Where("car_id = ?", carID).Update("car_id", nil).Error; err != nil {
		return err
	}

	res := db.Where("id = ?", carID).Delete(&models.Car{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) CountCars(ctx context.Context) (int64, error) {
	var count int64
	err := s.conn(ctx).Model(&models.Car{}).Count(&count).Error
	return count, err
}
