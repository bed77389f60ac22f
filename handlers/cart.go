package handlers

import (
	"errors"
	"net/http"

	"prestige-backend/services"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	Cart *services.CartService
}

type checkoutRequest struct {
	FullName      string `form:"full_name" json:"full_name" binding:"max=100"`
	Email         string `form:"email" json:"email" binding:"omitempty,email,max=120"`
	Phone         string `form:"phone" json:"phone" binding:"max=20"`
	Address       string `form:"address" json:"address"`
	City          string `form:"city" json:"city"`
	Message       string `form:"message" json:"message"`
	PaymentMethod string `form:"payment_method" json:"payment_method"`
	CardNumber    string `form:"card_number" json:"card_number"`
	CardHolder    string `form:"card_holder" json:"card_holder"`
	CardExpiry    string `form:"card_expiry" json:"card_expiry"`
	CardCVV       string `form:"card_cvv" json:"card_cvv"`
}

func (h *CartHandler) Add(c *gin.Context) {
	carID, ok := pathID(c, "car_id")
	if !ok {
		apiFailure(c, services.NotFound("Car not found"))
		return
	}

	result, err := h.Cart.Add(c.Request.Context(), currentUserID(c), carID)
	if err != nil {
		apiFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CartHandler) Remove(c *gin.Context) {
	carID, ok := pathID(c, "car_id")
	if !ok {
		apiFailure(c, services.NotFound("Item not found in cart"))
		return
	}

	result, err := h.Cart.Remove(c.Request.Context(), currentUserID(c), carID)
	if err != nil {
		apiFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CartHandler) Count(c *gin.Context) {
	count, err := h.Cart.Count(c.Request.Context(), currentUserID(c))
	if err != nil {
		apiFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *CartHandler) View(c *gin.Context) {
	view, err := h.Cart.View(c.Request.Context(), currentUserID(c))
	if err != nil {
		pageError(c, err)
		return
	}
	page(c, http.StatusOK, gin.H{
		"cart_items":      view.Items,
		"total":           view.Total,
		"formatted_total": view.FormattedTotal,
	})
}

func (h *CartHandler) CheckoutPage(c *gin.Context) {
	view, err := h.Cart.CheckoutPage(c.Request.Context(), currentUserID(c))
	if err != nil {
		pageFailure(c, err, "/cart")
		return
	}
	page(c, http.StatusOK, checkoutPayload(view))
}

func checkoutPayload(view *services.CartView) gin.H {
	return gin.H{
		"cart_items":      view.Items,
		"total":           view.Total,
		"formatted_total": view.FormattedTotal,
	}
}

// Checkout places the order. An empty cart goes back to the cart page, bad input
// re-renders the form, and a failed write goes back to checkout with the cart intact.
func (h *CartHandler) Checkout(c *gin.Context) {
	ctx := c.Request.Context()
	userID := currentUserID(c)

	view, err := h.Cart.CheckoutPage(ctx, userID)
	if err != nil {
		pageFailure(c, err, "/cart")
		return
	}

	var req checkoutRequest
	if err := c.ShouldBind(&req); err != nil {
		formError(c, bindError(err), checkoutPayload(view), "/checkout")
		return
	}

	inquiry, err := h.Cart.Checkout(ctx, userID, services.CheckoutInput{
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		Message:       req.Message,
		PaymentMethod: req.PaymentMethod,
		CardNumber:    req.CardNumber,
		CardHolder:    req.CardHolder,
		CardExpiry:    req.CardExpiry,
		CardCVV:       req.CardCVV,
	})
	if errors.Is(err, services.ErrEmptyCart) {
		pageFailure(c, err, "/cart")
		return
	}
	if err != nil {
		formError(c, err, checkoutPayload(view), "/checkout")
		return
	}

	redirect(c, "/order-confirmation/"+inquiry.ID.String())
}

func (h *CartHandler) OrderConfirmation(c *gin.Context) {
	inquiryID, ok := pathID(c, "id")
	if !ok {
		pageError(c, services.NotFound("Order not found."))
		return
	}

	inquiry, err := h.Cart.OrderConfirmation(c.Request.Context(), inquiryID, currentUserID(c))
	if err != nil {
		pageFailure(c, err, "/")
		return
	}
	page(c, http.StatusOK, gin.H{"inquiry": inquiry})
}
