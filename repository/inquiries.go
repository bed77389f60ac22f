package repository

import (
	"context"

	"prestige-backend/models"

	"github.com/google/uuid"
)

func (s *Store) CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	return s.conn(ctx).Create(inquiry).Error
}

func (s *Store) FindInquiryByID(ctx context.Context, id uuid.UUID) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := s.conn(ctx).Where("id = ?", id).First(&inquiry).Error; err != nil {
		return nil, translate(err)
	}
	return &inquiry, nil
}

// ListInquiries returns inquiries newest first. limit <= 0 returns all of them.
func (s *Store) ListInquiries(ctx context.Context, limit int) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	q := s.conn(ctx).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&inquiries).Error
	return inquiries, err
}

func (s *Store) ListInquiriesByUser(ctx context.Context, userID uuid.UUID) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := s.conn(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&inquiries).Error
	return inquiries, err
}

func (s *Store) CountInquiries(ctx context.Context) (int64, error) {
	var count int64
	err := s.conn(ctx).Model(&models.Inquiry{}).Count(&count).Error
	return count, err
}
