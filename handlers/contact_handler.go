package handlers

import (
	"strconv"

	"restaurant-cms/helper"
	"restaurant-cms/models"
	"restaurant-cms/services"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactService services.ContactService
	Helper         *helper.HTTPHelper
}

func NewContactHandler(contactService services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService, Helper: &helper.HTTPHelper{}}
}

func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req models.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	message, err := h.contactService.Submit(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Message received", message)
}

func (h *ContactHandler) ListContacts(c *gin.Context) {
	messages, unread, err := h.contactService.List()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"messages":     messages,
		"unread_count": unread,
	})
}

func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid contact ID", h.Helper.EmptyJsonMap())
		return
	}

	message, err := h.contactService.MarkRead(uint(id))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Marked as read", message)
}
