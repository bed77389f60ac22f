package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"prestige-backend/middleware"
	"prestige-backend/services"
	"prestige-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	Auth     *services.AuthService
	Sessions *middleware.Sessions
}

type registerRequest struct {
	Username        string `form:"username" json:"username" binding:"max=80"`
	Email           string `form:"email" json:"email" binding:"omitempty,email,max=120"`
	Password        string `form:"password" json:"password"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password"`
	FullName        string `form:"full_name" json:"full_name" binding:"max=100"`
	Phone           string `form:"phone" json:"phone" binding:"max=20"`
}

type loginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
	Remember string `form:"remember" json:"remember"`
}

type profileRequest struct {
	FullName        string `form:"full_name" json:"full_name" binding:"max=100"`
	Phone           string `form:"phone" json:"phone" binding:"max=20"`
	CurrentPassword string `form:"current_password" json:"current_password"`
	NewPassword     string `form:"new_password" json:"new_password"`
}

// bindError turns a binding failure into a validation error the forms can show.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return services.Validation(utils.SanitizeValidationError(err))
	}
	return services.Validation("Invalid request body")
}

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	if middleware.CurrentIdentity(c).IsAuthenticated() {
		redirect(c, "/")
		return
	}
	page(c, http.StatusOK, nil)
}

func (h *AuthHandler) Register(c *gin.Context) {
	if middleware.CurrentIdentity(c).IsAuthenticated() {
		redirect(c, "/")
		return
	}

	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		formError(c, bindError(err), nil, "/register")
		return
	}

	_, err := h.Auth.Register(c.Request.Context(), services.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		FullName:        req.FullName,
		Phone:           req.Phone,
	})
	if err != nil {
		formError(c, err, gin.H{"form": gin.H{"username": req.Username, "email": req.Email, "full_name": req.FullName, "phone": req.Phone}}, "/register")
		return
	}

	flashRedirect(c, middleware.FlashSuccess, "Registration successful! Please log in.", "/login")
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	if middleware.CurrentIdentity(c).IsAuthenticated() {
		redirect(c, "/")
		return
	}
	page(c, http.StatusOK, gin.H{"next": middleware.SafeNext(c.Query("next"), "")})
}

func (h *AuthHandler) Login(c *gin.Context) {
	if middleware.CurrentIdentity(c).IsAuthenticated() {
		redirect(c, "/")
		return
	}

	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		formError(c, bindError(err), nil, "/login")
		return
	}

	user, err := h.Auth.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		formError(c, err, gin.H{"form": gin.H{"email": req.Email}}, "/login")
		return
	}

	if err := h.Sessions.Login(c, user, req.Remember != ""); err != nil {
		pageFailure(c, services.Persistence(err), "/login")
		return
	}

	next := c.Query("next")
	if next == "" {
		next = c.PostForm("next")
	}
	flashRedirect(c, middleware.FlashSuccess, fmt.Sprintf("Welcome back, %s!", user.Username), middleware.SafeNext(next, "/"))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.Sessions.Logout(c)
	flashRedirect(c, middleware.FlashInfo, "You have been logged out successfully.", "/")
}

func (h *AuthHandler) Profile(c *gin.Context) {
	view, err := h.Auth.Profile(c.Request.Context(), currentUserID(c))
	if err != nil {
		pageFailure(c, err, "/")
		return
	}
	page(c, http.StatusOK, gin.H{
		"user":          view.User,
		"inquiries":     view.Inquiries,
		"favorite_cars": view.FavoriteCars,
	})
}

func (h *AuthHandler) EditProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBind(&req); err != nil {
		formError(c, bindError(err), nil, "/profile")
		return
	}

	_, passwordChanged, err := h.Auth.UpdateProfile(c.Request.Context(), currentUserID(c), services.ProfileInput{
		FullName:        req.FullName,
		Phone:           req.Phone,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		formError(c, err, gin.H{"form": gin.H{"full_name": req.FullName, "phone": req.Phone}}, "/profile")
		return
	}

	if passwordChanged {
		middleware.AddFlash(c, middleware.FlashSuccess, "Password updated successfully.")
	}
	flashRedirect(c, middleware.FlashSuccess, "Profile updated successfully.", "/profile")
}
