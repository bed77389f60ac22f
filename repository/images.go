package repository

import (
	"context"

	"prestige-backend/models"

	"github.com/google/uuid"
)

// ListCarImages returns a car's gallery in display order.
func (s *Store) ListCarImages(ctx context.Context, carID uuid.UUID) ([]models.CarImage, error) {
	var images []models.CarImage
	err := s.conn(ctx).
		Where("car_id = ?", carID).
		Order("display_order ASC, created_at ASC").
		Find(&images).Error
	return images, err
}

func (s *Store) FindCarImageByID(ctx context.Context, id uuid.UUID) (*models.CarImage, error) {
	var image models.CarImage
	if err := s.conn(ctx).Where("id = ?", id).First(&image).Error; err != nil {
		return nil, translate(err)
	}
	return &image, nil
}

func (s *Store) CreateCarImage(ctx context.Context, image *models.CarImage) error {
	return s.conn(ctx).Create(image).Error
}

func (s *Store) DeleteCarImage(ctx context.Context, id uuid.UUID) error {
	res := s.conn(ctx).Where("id = ?", id).Delete(&models.CarImage{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// MaxImageOrder returns the highest display order of a car's images, 0 when it has none.
func (s *Store) MaxImageOrder(ctx context.Context, carID uuid.UUID) (int, error) {
	var maxOrder int
	err := s.conn(ctx).Model(&models.CarImage{}).
		Where("car_id = ?", carID).
		Select("COALESCE(MAX(display_order), 0)").
		Scan(&maxOrder).Error
	return maxOrder, err
}

// MarkPrimaryImage flags one image as primary and clears the flag on the rest of the car's gallery.
func (s *Store) MarkPrimaryImage(ctx context.Context, carID, imageID uuid.UUID) error {
	db := s.conn(ctx)
	if err := db.Model(&models.CarImage{}).
		Where("car_id = ? AND id <> ?", carID, imageID).
		Update("is_primary", false).Error; err != nil {
		return err
	}
	return db.Model(&models.CarImage{}).Where("id = ?", imageID).Update("is_primary", true).Error
}
