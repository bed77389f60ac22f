package repository

import (
	"context"

	"prestige-backend/models"

	"github.com/google/uuid"
)

func (s *Store) FindFavorite(ctx context.Context, userID, carID uuid.UUID) (*models.Favorite, error) {
	var fav models.Favorite
	if err := s.conn(ctx).Where("user_id = ? AND car_id = ?", userID, carID).First(&fav).Error; err != nil {
		return nil, translate(err)
	}
	return &fav, nil
}

func (s *Store) IsFavorite(ctx context.Context, userID, carID uuid.UUID) (bool, error) {
	var count int64
	err := s.conn(ctx).Model(&models.Favorite{}).
		Where("user_id = ? AND car_id = ?", userID, carID).
		Count(&count).Error
	return count > 0, err
}

// CreateFavorite returns ErrDuplicate when the pair is already stored.
func (s *Store) CreateFavorite(ctx context.Context, fav *models.Favorite) error {
	return translate(s.conn(ctx).Create(fav).Error)
}

func (s *Store) DeleteFavorite(ctx context.Context, id uuid.UUID) error {
	return s.conn(ctx).Where("id = ?", id).Delete(&models.Favorite{}).Error
}

// ListFavoriteCars returns the cars a user has favorited, most recent first.
func (s *Store) ListFavoriteCars(ctx context.Context, userID uuid.UUID) ([]models.Car, error) {
	var cars []models.Car
	err := s.conn(ctx).
		Joins("JOIN favorites ON favorites.car_id = cars.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Find(&cars).Error
	return cars, err
}
