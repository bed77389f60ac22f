package services

import (
	"context"
	"errors"
	"strings"

	"prestige-backend/models"
	"prestige-backend/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type AuthService struct {
	store *repository.Store
}

func NewAuthService(store *repository.Store) *AuthService {
	return &AuthService{store: store}
}

type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	FullName        string
	Phone           string
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	if username == "" || email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return nil, Validation("All required fields must be filled.")
	}
	if in.Password != in.ConfirmPassword {
		return nil, Validation("Passwords do not match.")
	}
	if len(in.Password) < minPasswordLength {
		return nil, Validation("Password must be at least 6 characters long.")
	}

	taken, err := s.store.UsernameExists(ctx, username)
	if err != nil {
		return nil, Persistence(err)
	}
	if taken {
		return nil, Validation("Username already exists.")
	}
	taken, err = s.store.EmailExists(ctx, email)
	if err != nil {
		return nil, Persistence(err)
	}
	if taken {
		return nil, Validation("Email already registered.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, Persistence(err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(in.FullName),
		Phone:        strings.TrimSpace(in.Phone),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		// Lost a race with a concurrent registration for the same name or address.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, Validation("Username or email already registered.")
		}
		return nil, Persistence(err)
	}
	return user, nil
}

// Authenticate reports the same message for an unknown email and a wrong password.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	invalid := Validation("Invalid email or password.")

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, invalid
	}

	user, err := s.store.FindUserByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, invalid
	}
	if err != nil {
		return nil, Persistence(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, invalid
	}
	return user, nil
}

func (s *AuthService) User(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.store.FindUserByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFound("User not found.")
	}
	if err != nil {
		return nil, Persistence(err)
	}
	return user, nil
}

type ProfileInput struct {
	FullName        string
	Phone           string
	CurrentPassword string
	NewPassword     string
}

// UpdateProfile saves the contact fields. The password only changes when both the
// current and the new password are supplied.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (*models.User, bool, error) {
	user, err := s.User(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	user.FullName = strings.TrimSpace(in.FullName)
	user.Phone = strings.TrimSpace(in.Phone)

	passwordChanged := false
	if in.CurrentPassword != "" && in.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
			return nil, false, Validation("Current password is incorrect.")
		}
		if len(in.NewPassword) < minPasswordLength {
			return nil, false, Validation("New password must be at least 6 characters.")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, false, Persistence(err)
		}
		user.PasswordHash = string(hash)
		passwordChanged = true
	}

	if err := s.store.UpdateUserProfile(ctx, user); err != nil {
		return nil, false, Persistence(err)
	}
	return user, passwordChanged, nil
}

type ProfileView struct {
	User         *models.User     `json:"user"`
	Inquiries    []models.Inquiry `json:"inquiries"`
	FavoriteCars []models.Car     `json:"favorite_cars"`
}

func (s *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	user, err := s.User(ctx, userID)
	if err != nil {
		return nil, err
	}
	inquiries, err := s.store.ListInquiriesByUser(ctx, userID)
	if err != nil {
		return nil, Persistence(err)
	}
	favorites, err := s.store.ListFavoriteCars(ctx, userID)
	if err != nil {
		return nil, Persistence(err)
	}
	return &ProfileView{User: user, Inquiries: inquiries, FavoriteCars: favorites}, nil
}
