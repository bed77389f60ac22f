package handlers

import (
	"prestige-backend/middleware"
	"prestige-backend/services"

	"github.com/gin-gonic/gin"
)

const contactAnchor = "/#contact"

type InquiryHandler struct {
	Inquiries *services.InquiryService
}

type contactRequest struct {
	Name     string `form:"name" json:"name" binding:"max=100"`
	Email    string `form:"email" json:"email" binding:"omitempty,email,max=120"`
	Phone    string `form:"phone" json:"phone" binding:"max=20"`
	Interest string `form:"interest" json:"interest"`
	Message  string `form:"message" json:"message"`
}

// SubmitContact always lands back on the homepage contact section.
func (h *InquiryHandler) SubmitContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBind(&req); err != nil {
		pageFailure(c, bindError(err), contactAnchor)
		return
	}

	_, err := h.Inquiries.SubmitContact(c.Request.Context(), services.ContactInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Interest: req.Interest,
		Message:  req.Message,
	}, middleware.CurrentIdentity(c).UserIDPtr())
	if err != nil {
		pageFailure(c, err, contactAnchor)
		return
	}

	flashRedirect(c, middleware.FlashSuccess, "Thank you for your inquiry! We will contact you shortly.", contactAnchor)
}
