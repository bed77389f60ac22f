package services

import (
	"context"
	"errors"

	"prestige-backend/models"
	"prestige-backend/repository"

	"github.com/google/uuid"
)

const (
	StatusAdded   = "added"
	StatusRemoved = "removed"
	StatusExists  = "exists"
)

type FavoriteService struct {
	store *repository.Store
}

func NewFavoriteService(store *repository.Store) *FavoriteService {
	return &FavoriteService{store: store}
}

type ToggleResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Toggle removes the favorite if it exists and creates it otherwise.
func (s *FavoriteService) Toggle(ctx context.Context, userID, carID uuid.UUID) (ToggleResult, error) {
	if _, err := s.store.FindCarByID(ctx, carID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ToggleResult{}, NotFound("Car not found")
		}
		return ToggleResult{}, Persistence(err)
	}

	fav, err := s.store.FindFavorite(ctx, userID, carID)
	switch {
	case err == nil:
		if err := s.store.DeleteFavorite(ctx, fav.ID); err != nil {
			return ToggleResult{}, Persistence(err)
		}
		return ToggleResult{Status: StatusRemoved, Message: "Removed from favorites"}, nil
	case !errors.Is(err, repository.ErrNotFound):
		return ToggleResult{}, Persistence(err)
	}

	// A concurrent toggle may have inserted the pair first; either way it is now a favorite.
	if err := s.store.CreateFavorite(ctx, &models.Favorite{UserID: userID, CarID: carID}); err != nil && !errors.Is(err, repository.ErrDuplicate) {
		return ToggleResult{}, Persistence(err)
	}
	return ToggleResult{Status: StatusAdded, Message: "Added to favorites"}, nil
}
