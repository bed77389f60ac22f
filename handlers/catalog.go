package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"prestige-backend/middleware"
	"prestige-backend/models"
	"prestige-backend/repository"
	"prestige-backend/services"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	Catalog       *services.CatalogService
	FeaturedLimit int
}

func (h *CatalogHandler) Home(c *gin.Context) {
	cars, err := h.Catalog.Featured(c.Request.Context(), h.FeaturedLimit)
	if err != nil {
		pageError(c, err)
		return
	}
	page(c, http.StatusOK, gin.H{"cars": cars})
}

func parsePriceFilter(raw, field string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, services.Validation(field + " must be a number")
	}
	return &v, nil
}

func (h *CatalogHandler) Cars(c *gin.Context) {
	filter := repository.CarFilter{
		Brand:    strings.TrimSpace(c.Query("brand")),
		FuelType: strings.TrimSpace(c.Query("fuel_type")),
	}
	filters := gin.H{"brand": filter.Brand, "fuel_type": filter.FuelType, "min_price": c.Query("min_price"), "max_price": c.Query("max_price")}

	var err error
	if filter.MinPrice, err = parsePriceFilter(c.Query("min_price"), "min price"); err != nil {
		formError(c, err, gin.H{"cars": []models.Car{}, "filters": filters}, "/cars")
		return
	}
	if filter.MaxPrice, err = parsePriceFilter(c.Query("max_price"), "max price"); err != nil {
		formError(c, err, gin.H{"cars": []models.Car{}, "filters": filters}, "/cars")
		return
	}

	cars, err := h.Catalog.ListAvailable(c.Request.Context(), filter)
	if err != nil {
		formError(c, err, gin.H{"cars": []models.Car{}, "filters": filters}, "/")
		return
	}
	page(c, http.StatusOK, gin.H{"cars": cars, "filters": filters})
}

func (h *CatalogHandler) CarDetail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		page(c, http.StatusNotFound, gin.H{"error": "Car not found."})
		return
	}

	detail, err := h.Catalog.GetDetail(c.Request.Context(), id, middleware.CurrentIdentity(c).UserIDPtr())
	if err != nil {
		pageFailure(c, err, "/cars")
		return
	}
	page(c, http.StatusOK, gin.H{
		"car":               detail.Car,
		"images":            detail.Images,
		"primary_image_url": detail.PrimaryImageURL,
		"features":          detail.Features,
		"is_favorite":       detail.IsFavorite,
	})
}
