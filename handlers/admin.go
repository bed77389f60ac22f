package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"prestige-backend/middleware"
	"prestige-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	Inventory *services.InventoryService
	Inquiries *services.InquiryService
}

type carRequest struct {
	Name             string   `form:"name" json:"name"`
	Brand            string   `form:"brand" json:"brand"`
	Model            string   `form:"model" json:"model"`
	Year             string   `form:"year" json:"year"`
	Price            string   `form:"price" json:"price"`
	Horsepower       string   `form:"horsepower" json:"horsepower"`
	Description      string   `form:"description" json:"description"`
	ImageURL         string   `form:"image_url" json:"image_url"`
	Status           string   `form:"status" json:"status"`
	Engine           string   `form:"engine" json:"engine"`
	Transmission     string   `form:"transmission" json:"transmission"`
	FuelType         string   `form:"fuel_type" json:"fuel_type"`
	Mileage          string   `form:"mileage" json:"mileage"`
	ExteriorColor    string   `form:"exterior_color" json:"exterior_color"`
	InteriorColor    string   `form:"interior_color" json:"interior_color"`
	TopSpeed         string   `form:"top_speed" json:"top_speed"`
	Acceleration     string   `form:"acceleration" json:"acceleration"`
	Features         string   `form:"features" json:"features"`
	AdditionalImages []string `form:"additional_images[]" json:"additional_images"`
}

func (r carRequest) form() services.CarForm {
	return services.CarForm{
		Name:             r.Name,
		Brand:            r.Brand,
		Model:            r.Model,
		Year:             r.Year,
		Price:            r.Price,
		Horsepower:       r.Horsepower,
		Description:      r.Description,
		ImageURL:         r.ImageURL,
		Status:           r.Status,
		Engine:           r.Engine,
		Transmission:     r.Transmission,
		FuelType:         r.FuelType,
		Mileage:          r.Mileage,
		ExteriorColor:    r.ExteriorColor,
		InteriorColor:    r.InteriorColor,
		TopSpeed:         r.TopSpeed,
		Acceleration:     r.Acceleration,
		Features:         r.Features,
		AdditionalImages: r.AdditionalImages,
	}
}

func editPath(carID uuid.UUID) string {
	return "/admin/car/edit/" + carID.String()
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	dash, err := h.Inquiries.Dashboard(c.Request.Context())
	if err != nil {
		pageError(c, err)
		return
	}
	page(c, http.StatusOK, gin.H{
		"total_users":      dash.TotalUsers,
		"total_cars":       dash.TotalCars,
		"total_inquiries":  dash.TotalInquiries,
		"recent_inquiries": dash.RecentInquiries,
	})
}

func (h *AdminHandler) Cars(c *gin.Context) {
	cars, err := h.Inventory.ListCars(c.Request.Context())
	if err != nil {
		pageError(c, err)
		return
	}
	page(c, http.StatusOK, gin.H{"cars": cars})
}

func (h *AdminHandler) NewCarPage(c *gin.Context) {
	page(c, http.StatusOK, gin.H{"car": nil})
}

func (h *AdminHandler) AddCar(c *gin.Context) {
	var req carRequest
	if err := c.ShouldBind(&req); err != nil {
		formError(c, bindError(err), gin.H{"car": nil}, "/admin/cars")
		return
	}

	car, err := h.Inventory.CreateCar(c.Request.Context(), req.form())
	if err != nil {
		formError(c, err, gin.H{"car": nil, "form": req}, "/admin/cars")
		return
	}

	flashRedirect(c, middleware.FlashSuccess, "Car added successfully!", editPath(car.ID))
}

func (h *AdminHandler) EditCarPage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		pageError(c, services.NotFound("Car not found."))
		return
	}

	detail, err := h.Inventory.GetCar(c.Request.Context(), id)
	if err != nil {
		pageFailure(c, err, "/admin/cars")
		return
	}
	page(c, http.StatusOK, gin.H{"car": detail.Car, "images": detail.Images})
}

func (h *AdminHandler) EditCar(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := pathID(c, "id")
	if !ok {
		pageError(c, services.NotFound("Car not found."))
		return
	}

	var req carRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderEditForm(c, id, bindError(err))
		return
	}

	if _, err := h.Inventory.UpdateCar(ctx, id, req.form()); err != nil {
		if services.KindOf(err) != services.KindValidation {
			pageFailure(c, err, "/admin/cars")
			return
		}
		h.renderEditForm(c, id, err)
		return
	}
	flashRedirect(c, middleware.FlashSuccess, "Car updated successfully!", editPath(id))
}

// renderEditForm shows the edit form again with the stored car and the error.
func (h *AdminHandler) renderEditForm(c *gin.Context, id uuid.UUID, formErr error) {
	detail, err := h.Inventory.GetCar(c.Request.Context(), id)
	if err != nil {
		pageFailure(c, err, "/admin/cars")
		return
	}
	formError(c, formErr, gin.H{"car": detail.Car, "images": detail.Images}, editPath(id))
}

func (h *AdminHandler) AddImage(c *gin.Context) {
	carID, ok := pathID(c, "id")
	if !ok {
		pageError(c, services.NotFound("Car not found."))
		return
	}

	_, err := h.Inventory.AddImage(c.Request.Context(), carID, c.PostForm("image_url"))
	if err != nil {
		pageFailure(c, err, editPath(carID))
		return
	}
	flashRedirect(c, middleware.FlashSuccess, "Image added successfully!", editPath(carID))
}

func (h *AdminHandler) DeleteImage(c *gin.Context) {
	imageID, ok := pathID(c, "image_id")
	if !ok {
		pageError(c, services.NotFound("Image not found."))
		return
	}

	carID, err := h.Inventory.DeleteImage(c.Request.Context(), imageID)
	if err != nil {
		pageFailure(c, err, "/admin/cars")
		return
	}
	flashRedirect(c, middleware.FlashSuccess, "Image deleted successfully!", editPath(carID))
}

func (h *AdminHandler) SetPrimaryImage(c *gin.Context) {
	imageID, ok := pathID(c, "image_id")
	if !ok {
		pageError(c, services.NotFound("Image not found."))
		return
	}

	carID, err := h.Inventory.SetPrimaryImage(c.Request.Context(), imageID)
	if err != nil {
		pageFailure(c, err, "/admin/cars")
		return
	}
	flashRedirect(c, middleware.FlashSuccess, "Main image updated!", editPath(carID))
}

func (h *AdminHandler) DeleteCar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		pageError(c, services.NotFound("Car not found."))
		return
	}

	if err := h.Inventory.DeleteCar(c.Request.Context(), id); err != nil {
		pageFailure(c, err, "/admin/cars")
		return
	}
	flashRedirect(c, middleware.FlashSuccess, "Car deleted successfully!", "/admin/cars")
}

func (h *AdminHandler) ListInquiries(c *gin.Context) {
	inquiries, err := h.Inquiries.ListAll(c.Request.Context())
	if err != nil {
		pageError(c, err)
		return
	}
	page(c, http.StatusOK, gin.H{"inquiries": inquiries})
}

// ExportInquiries streams every inquiry as an .xlsx download.
func (h *AdminHandler) ExportInquiries(c *gin.Context) {
	file, err := h.Inquiries.ExportWorkbook(c.Request.Context())
	if err != nil {
		log.Printf("Inquiry export failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build Excel file"})
		return
	}

	filename := fmt.Sprintf("inquiries-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")

	if err := file.Write(c.Writer); err != nil {
		log.Printf("Writing inquiry export failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		return
	}
}
