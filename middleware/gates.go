package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// LoginRequired redirects anonymous visitors to the login page, remembering where they were going.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentIdentity(c).IsAuthenticated() {
			c.Next()
			return
		}
		redirectToLogin(c)
	}
}

// APILoginRequired answers anonymous API calls with 401 instead of a redirect.
func APILoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentIdentity(c).IsAuthenticated() {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Login required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRequired sends anonymous visitors to login and everyone else without the
// admin flag back to the homepage with a warning.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentIdentity(c)
		if !identity.IsAuthenticated() {
			redirectToLogin(c)
			return
		}
		if !identity.IsAdmin {
			AddFlash(c, FlashDanger, "You need administrator privileges to access this page.")
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	AddFlash(c, FlashInfo, "Please log in to access this page.")
	c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.RequestURI()))
	c.Abort()
}

// SafeNext returns next if it is a path on this site, otherwise fallback.
func SafeNext(next, fallback string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
		return fallback
	}
	return next
}
