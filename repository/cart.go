package repository

import (
	"context"

	"prestige-backend/models"

	"github.com/google/uuid"
)

func (s *Store) FindCartItem(ctx context.Context, userID, carID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	if err := s.conn(ctx).Where("user_id = ? AND car_id = ?", userID, carID).First(&item).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

// CreateCartItem returns ErrDuplicate when the car is already in the user's cart.
func (s *Store) CreateCartItem(ctx context.Context, item *models.CartItem) error {
	return translate(s.conn(ctx).Omit("Car").Create(item).Error)
}

func (s *Store) DeleteCartItem(ctx context.Context, id uuid.UUID) error {
	return s.conn(ctx).Where("id = ?", id).Delete(&models.CartItem{}).Error
}

func (s *Store) CountCartItems(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := s.conn(ctx).Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// ListCartItemsByUser returns the user's cart with each item's car loaded, oldest first.
func (s *Store) ListCartItemsByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.conn(ctx).
		Joins("Car").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.created_at ASC").
		Find(&items).Error
	return items, err
}

// DeleteCartItems removes the given items from the user's cart and reports how many went.
func (s *Store) DeleteCartItems(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := s.conn(ctx).Where("user_id = ? AND id IN ?", userID, ids).Delete(&models.CartItem{})
	return res.RowsAffected, res.Error
}
