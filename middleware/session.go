package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"prestige-backend/models"
	"prestige-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookie = "session"
	identityKey   = "identity"
)

// Identity is the resolved current user. The zero value is an anonymous visitor.
type Identity struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	IsAdmin  bool      `json:"is_admin"`
}

func (i Identity) IsAuthenticated() bool { return i.UserID != uuid.Nil }

// IsAdminUser requires both a logged-in user and the admin flag.
func (i Identity) IsAdminUser() bool { return i.IsAuthenticated() && i.IsAdmin }

// UserIDPtr returns nil for anonymous visitors.
func (i Identity) UserIDPtr() *uuid.UUID {
	if !i.IsAuthenticated() {
		return nil
	}
	id := i.UserID
	return &id
}

// UserLookup loads the user a session token points at.
type UserLookup interface {
	FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Sessions issues and resolves the signed session cookie.
type Sessions struct {
	users       UserLookup
	ttl         time.Duration
	rememberTTL time.Duration
	secure      bool
}

func NewSessions(users UserLookup, ttl, rememberTTL time.Duration, secure bool) *Sessions {
	return &Sessions{users: users, ttl: ttl, rememberTTL: rememberTTL, secure: secure}
}

// Login starts a session for user. Without remember the cookie ends with the
// browser session; with it the cookie persists for the remember TTL.
func (s *Sessions) Login(c *gin.Context, user *models.User, remember bool) error {
	ttl := s.ttl
	maxAge := 0
	if remember {
		ttl = s.rememberTTL
		maxAge = int(s.rememberTTL.Seconds())
	}

	token, err := utils.GenerateSessionToken(user.ID, user.Email, remember, ttl)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, maxAge, "/", "", s.secure, true)
	return nil
}

func (s *Sessions) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", s.secure, true)
}

func sessionToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.Split(header, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}
	token, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return token
}

// Middleware resolves the identity for every request. A missing, invalid or
// expired token, or one whose user no longer exists, leaves the visitor anonymous.
func (s *Sessions) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := Identity{}

		if token := sessionToken(c); token != "" {
			if claims, err := utils.ValidateToken(token); err == nil {
				user, err := s.users.FindUserByID(c.Request.Context(), claims.UserID)
				if err == nil {
					identity = Identity{
						UserID:   user.ID,
						Username: user.Username,
						Email:    user.Email,
						IsAdmin:  user.IsAdmin,
					}
				} else {
					log.Printf("Session for %s dropped: %v", claims.UserID, err)
				}
			}
		}

		c.Set(identityKey, identity)
		if identity.IsAuthenticated() {
			c.Set("user_id", identity.UserID)
		}
		c.Next()
	}
}

// CurrentIdentity returns the identity resolved by Sessions.Middleware.
func CurrentIdentity(c *gin.Context) Identity {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(Identity); ok {
			return identity
		}
	}
	return Identity{}
}
