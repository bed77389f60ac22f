package handlers

import (
	"log"
	"net/http"

	"prestige-backend/middleware"
	"prestige-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// page answers a page route with the payload the template layer renders, plus the
// current user and any flashes waiting from the previous request.
func page(c *gin.Context, status int, payload gin.H) {
	if payload == nil {
		payload = gin.H{}
	}
	payload["current_user"] = middleware.CurrentIdentity(c)
	payload["flashes"] = middleware.Flashes(c)
	c.JSON(status, payload)
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

func flashRedirect(c *gin.Context, category, message, location string) {
	middleware.AddFlash(c, category, message)
	redirect(c, location)
}

// formError re-renders a form with the validation message, and treats any other
// failure like pageFailure.
func formError(c *gin.Context, err error, payload gin.H, fallback string) {
	if services.KindOf(err) != services.KindValidation {
		pageFailure(c, err, fallback)
		return
	}
	if payload == nil {
		payload = gin.H{}
	}
	payload["error"] = services.MessageOf(err)
	page(c, http.StatusOK, payload)
}

// pageFailure maps a service error on a page route: missing entities get a 404
// page, everything else goes back to fallback with a flash.
func pageFailure(c *gin.Context, err error, fallback string) {
	switch services.KindOf(err) {
	case services.KindNotFound:
		page(c, http.StatusNotFound, gin.H{"error": services.MessageOf(err)})
	case services.KindValidation, services.KindBadRequest, services.KindForbidden:
		flashRedirect(c, middleware.FlashDanger, services.MessageOf(err), fallback)
	default:
		log.Printf("Request %s %s failed: %v", c.Request.Method, c.FullPath(), err)
		flashRedirect(c, middleware.FlashDanger, services.MessageOf(err), fallback)
	}
}

// apiFailure answers a JSON route with {status: error, message}.
func apiFailure(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch services.KindOf(err) {
	case services.KindNotFound:
		status = http.StatusNotFound
	case services.KindValidation, services.KindBadRequest:
		status = http.StatusBadRequest
	case services.KindForbidden:
		status = http.StatusForbidden
	default:
		log.Printf("API %s %s failed: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(status, gin.H{"status": "error", "message": services.MessageOf(err)})
}

// pathID parses a uuid path parameter. A malformed id is a missing resource.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// currentUserID is only called behind a login gate.
func currentUserID(c *gin.Context) uuid.UUID {
	return middleware.CurrentIdentity(c).UserID
}

// pageError renders the failure in place, for pages with nowhere to fall back to.
func pageError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if services.KindOf(err) == services.KindNotFound {
		status = http.StatusNotFound
	} else {
		log.Printf("Request %s %s failed: %v", c.Request.Method, c.FullPath(), err)
	}
	page(c, status, gin.H{"error": services.MessageOf(err)})
}
