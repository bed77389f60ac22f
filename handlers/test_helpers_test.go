package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"prestige-backend/database"
	"prestige-backend/middleware"
	"prestige-backend/models"
	"prestige-backend/repository"
	"prestige-backend/services"
	"prestige-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testPassword = "password123"

func init() {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret-key-for-unit-tests")
}

type testApp struct {
	db      *gorm.DB
	router  *gin.Engine
	storage *mockStorage
}

// newTestApp wires every handler onto a fresh in-memory database.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	store := repository.New(db)
	storage := newMockStorage()
	sessions := middleware.NewSessions(store, time.Hour, 30*24*time.Hour, false)

	authHandler := &AuthHandler{Auth: services.NewAuthService(store), Sessions: sessions}
	catalogHandler := &CatalogHandler{Catalog: services.NewCatalogService(store)}
	favoriteHandler := &FavoriteHandler{Favorites: services.NewFavoriteService(store)}
	cartHandler := &CartHandler{Cart: services.NewCartService(store)}
	inquiryHandler := &InquiryHandler{Inquiries: services.NewInquiryService(store)}
	adminHandler := &AdminHandler{
		Inventory: services.NewInventoryService(store, storage),
		Inquiries: services.NewInquiryService(store),
	}

	r := gin.New()
	r.Use(sessions.Middleware())

	r.GET("/", catalogHandler.Home)
	r.GET("/cars", catalogHandler.Cars)
	r.GET("/car/:id", catalogHandler.CarDetail)
	r.GET("/register", authHandler.RegisterPage)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.POST("/contact", inquiryHandler.SubmitContact)

	user := r.Group("")
	user.Use(middleware.LoginRequired())
	user.GET("/logout", authHandler.Logout)
	user.GET("/profile", authHandler.Profile)
	user.POST("/profile/edit", authHandler.EditProfile)
	user.GET("/cart", cartHandler.View)
	user.GET("/checkout", cartHandler.CheckoutPage)
	user.POST("/checkout", cartHandler.Checkout)
	user.GET("/order-confirmation/:id", cartHandler.OrderConfirmation)

	api := r.Group("/api")
	api.Use(middleware.APILoginRequired())
	api.POST("/favorite/toggle/:car_id", favoriteHandler.Toggle)
	api.POST("/cart/add/:car_id", cartHandler.Add)
	api.POST("/cart/remove/:car_id", cartHandler.Remove)
	api.GET("/cart/count", cartHandler.Count)

	admin := r.Group("/admin")
	admin.Use(middleware.AdminRequired())
	admin.GET("", adminHandler.Dashboard)
	admin.GET("/cars", adminHandler.Cars)
	admin.GET("/car/add", adminHandler.NewCarPage)
	admin.POST("/car/add", adminHandler.AddCar)
	admin.GET("/car/edit/:id", adminHandler.EditCarPage)
	admin.POST("/car/edit/:id", adminHandler.EditCar)
	admin.POST("/car/:id/add-image", adminHandler.AddImage)
	admin.POST("/car/image/:image_id/delete", adminHandler.DeleteImage)
	admin.POST("/car/image/:image_id/set-primary", adminHandler.SetPrimaryImage)
	admin.POST("/car/delete/:id", adminHandler.DeleteCar)
	admin.GET("/inquiries", adminHandler.ListInquiries)
	admin.GET("/inquiries/export", adminHandler.ExportInquiries)

	return &testApp{db: db, router: r, storage: storage}
}

// ==================== Seed Helpers ====================

// seedTestUser creates a user with testPassword and returns it with a session token.
func (a *testApp) seedTestUser(t *testing.T, username string, admin bool) (models.User, string) {
	t.Helper()
	hashed, _ := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	user := models.User{
		Username:     username,
		Email:        username + "@test.com",
		PasswordHash: string(hashed),
		FullName:     "Test User",
		IsAdmin:      admin,
	}
	if err := a.db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	token, err := utils.GenerateSessionToken(user.ID, user.Email, false, time.Hour)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return user, token
}

var seedClock = time.Now().Add(-24 * time.Hour)

// seedCar creates a car; each call is a minute newer than the last.
func (a *testApp) seedCar(t *testing.T, name string, price float64, status models.CarStatus) models.Car {
	t.Helper()
	seedClock = seedClock.Add(time.Minute)
	car := models.Car{
		Name:         name,
		Brand:        "Porsche",
		Model:        name,
		Year:         2024,
		Price:        price,
		Status:       status,
		Transmission: "Automatic",
		FuelType:     "Petrol",
		CreatedAt:    seedClock,
	}
	if err := a.db.Omit("Images").Create(&car).Error; err != nil {
		t.Fatalf("failed to seed car: %v", err)
	}
	return car
}

func (a *testApp) seedCartItem(t *testing.T, userID, carID uuid.UUID) {
	t.Helper()
	if err := a.db.Omit("Car").Create(&models.CartItem{UserID: userID, CarID: carID}).Error; err != nil {
		t.Fatalf("failed to seed cart item: %v", err)
	}
}

func (a *testApp) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := a.db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return n
}

func (a *testApp) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// ==================== Request Helpers ====================

// formRequest creates a form-encoded request, sending the session cookie when token is set.
func formRequest(method, target string, fields url.Values, token string) *http.Request {
	var body *strings.Reader
	if fields != nil {
		body = strings.NewReader(fields.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, body)
	if fields != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	}
	return req
}

// ==================== Response Helpers ====================

// parseResponse reads the response body into a map.
func parseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

// flashMessages decodes the flash cookie set on a redirect. When a handler queued
// several messages the last cookie written carries all of them.
func flashMessages(t *testing.T, w *httptest.ResponseRecorder) []middleware.Flash {
	t.Helper()
	var last *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "flash" && c.Value != "" {
			last = c
		}
	}
	if last == nil {
		return nil
	}
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(last)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = req
	return middleware.Flashes(ctx)
}

func assertRedirect(t *testing.T, w *httptest.ResponseRecorder, code int, location string) {
	t.Helper()
	if w.Code != code {
		t.Fatalf("expected status %d, got %d: %s", code, w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Fatalf("expected redirect to %s, got %s", location, got)
	}
}
