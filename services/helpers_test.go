package services

import (
	"context"
	"testing"
	"time"

	"prestige-backend/database"
	"prestige-backend/models"
	"prestige-backend/repository"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testEnv struct {
	db        *gorm.DB
	store     *repository.Store
	auth      *AuthService
	catalog   *CatalogService
	favorites *FavoriteService
	cart      *CartService
	inquiries *InquiryService
	inventory *InventoryService
	storage   *fakeStorage
}

type fakeStorage struct {
	bucket  string
	deleted []string
}

func (f *fakeStorage) Bucket() string { return f.bucket }

func (f *fakeStorage) DeleteFile(ctx context.Context, objectPath string) error {
	f.deleted = append(f.deleted, objectPath)
	return nil
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)

	store := repository.New(db)
	storage := &fakeStorage{bucket: "prestige-media"}
	return &testEnv{
		db:        db,
		store:     store,
		auth:      NewAuthService(store),
		catalog:   NewCatalogService(store),
		favorites: NewFavoriteService(store),
		cart:      NewCartService(store),
		inquiries: NewInquiryService(store),
		inventory: NewInventoryService(store, storage),
		storage:   storage,
	}
}

func (e *testEnv) seedUser(t *testing.T, username, password string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{Username: username, Email: username + "@test.com", PasswordHash: string(hash)}
	require.NoError(t, e.db.Create(&user).Error)
	return user
}

var seedClock = time.Now().Add(-24 * time.Hour)

func (e *testEnv) seedCar(t *testing.T, name string, price float64, status models.CarStatus) models.Car {
	t.Helper()
	seedClock = seedClock.Add(time.Minute)
	car := models.Car{
		Name:         name,
		Brand:        "Brand",
		Model:        name,
		Year:         2024,
		Price:        price,
		Status:       status,
		Transmission: "Automatic",
		FuelType:     "Petrol",
		CreatedAt:    seedClock,
	}
	require.NoError(t, e.db.Omit("Images").Create(&car).Error)
	return car
}

func (e *testEnv) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(model).Count(&n).Error)
	return n
}
