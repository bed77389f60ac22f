package repository

import (
	"context"

	"prestige-backend/models"

	"github.com/google/uuid"
)

func (s *Store) FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.conn(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.conn(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := s.conn(ctx).Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := s.conn(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	return translate(s.conn(ctx).Create(user).Error)
}

// UpdateUserProfile writes the editable profile columns, including blanks.
func (s *Store) UpdateUserProfile(ctx context.Context, user *models.User) error {
	return s.conn(ctx).Model(user).
		Select("full_name", "phone", "password_hash").
		Updates(user).Error
}

func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := s.conn(ctx).Model(&models.User{}).Count(&count).Error
	return count, err
}
