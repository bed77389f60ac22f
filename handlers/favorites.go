package handlers

import (
	"net/http"

	"prestige-backend/services"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	Favorites *services.FavoriteService
}

func (h *FavoriteHandler) Toggle(c *gin.Context) {
	carID, ok := pathID(c, "car_id")
	if !ok {
		apiFailure(c, services.NotFound("Car not found"))
		return
	}

	result, err := h.Favorites.Toggle(c.Request.Context(), currentUserID(c), carID)
	if err != nil {
		apiFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
