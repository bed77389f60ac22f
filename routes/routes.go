package routes

import (
	"net/http"
	"time"

	"prestige-backend/firebase"
	"prestige-backend/handlers"
	"prestige-backend/middleware"
	"prestige-backend/repository"
	"prestige-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Options struct {
	SessionTTL     time.Duration
	RememberTTL    time.Duration
	CookieSecure   bool
	FeaturedLimit  int
	FormRateLimit  int
	FormRateWindow time.Duration
}

// SetupRoutes registers every route. The returned limiter guards the public form
// posts; the caller stops it on shutdown.
func SetupRoutes(r *gin.Engine, db *gorm.DB, storage firebase.StorageClient, opts Options) *middleware.RateLimiter {
	store := repository.New(db)
	sessions := middleware.NewSessions(store, opts.SessionTTL, opts.RememberTTL, opts.CookieSecure)
	inquiries := services.NewInquiryService(store)

	// Initialize handlers
	authHandler := &handlers.AuthHandler{Auth: services.NewAuthService(store), Sessions: sessions}
	catalogHandler := &handlers.CatalogHandler{Catalog: services.NewCatalogService(store), FeaturedLimit: opts.FeaturedLimit}
	favoriteHandler := &handlers.FavoriteHandler{Favorites: services.NewFavoriteService(store)}
	cartHandler := &handlers.CartHandler{Cart: services.NewCartService(store)}
	inquiryHandler := &handlers.InquiryHandler{Inquiries: inquiries}
	adminHandler := &handlers.AdminHandler{Inventory: services.NewInventoryService(store, storage), Inquiries: inquiries}

	formLimiter := middleware.NewRateLimiter(opts.FormRateLimit, opts.FormRateWindow)

	r.Use(sessions.Middleware())

	// Public pages
	r.GET("/", catalogHandler.Home)
	r.GET("/cars", catalogHandler.Cars)
	r.GET("/car/:id", catalogHandler.CarDetail)

	r.GET("/register", authHandler.RegisterPage)
	r.POST("/register", formLimiter.Middleware(), authHandler.Register)
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", formLimiter.Middleware(), authHandler.Login)
	r.POST("/contact", formLimiter.Middleware(), inquiryHandler.SubmitContact)

	// Pages that need a logged-in user
	user := r.Group("")
	user.Use(middleware.LoginRequired())
	{
		user.GET("/logout", authHandler.Logout)
		user.GET("/profile", authHandler.Profile)
		user.POST("/profile/edit", authHandler.EditProfile)

		user.GET("/cart", cartHandler.View)
		user.GET("/checkout", cartHandler.CheckoutPage)
		user.POST("/checkout", cartHandler.Checkout)
		user.GET("/order-confirmation/:id", cartHandler.OrderConfirmation)
	}

	// JSON endpoints answer 401 instead of redirecting
	api := r.Group("/api")
	api.Use(middleware.APILoginRequired())
	{
		api.POST("/favorite/toggle/:car_id", favoriteHandler.Toggle)
		api.POST("/cart/add/:car_id", cartHandler.Add)
		api.POST("/cart/remove/:car_id", cartHandler.Remove)
		api.GET("/cart/count", cartHandler.Count)
	}

	// Back office
	admin := r.Group("/admin")
	admin.Use(middleware.AdminRequired())
	{
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
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if err := store.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
	})

	return formLimiter
}
