package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kestrelpoint/funddesk-backend/internal/logger"
	"github.com/kestrelpoint/funddesk-backend/internal/services"
)

type ContactHandler struct {
	log            *logger.Logger
	contactService services.ContactService
}

func NewContactHandler(log *logger.Logger, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		log:            log.With("handler", "ContactHandler"),
		contactService: contactService,
	}
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req services.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c)
		return
	}

	res := h.contactService.Create(c.Request.Context(), nil, req)
	if res.IsFailure() {
		RespondFailure(c, res)
		return
	}

	c.Header("Location", "/api/contacts/"+res.Value().ID.String())
	c.JSON(http.StatusCreated, res.Value())
}

func (h *ContactHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c)
		return
	}

	res := h.contactService.Get(c.Request.Context(), nil, id)
	if res.IsFailure() {
		RespondFailure(c, res)
		return
	}
	c.JSON(http.StatusOK, res.Value())
}

func (h *ContactHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c)
		return
	}

	var req services.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c)
		return
	}

	res := h.contactService.Update(c.Request.Context(), nil, id, req)
	if res.IsFailure() {
		RespondFailure(c, res)
		return
	}
	c.JSON(http.StatusOK, res.Value())
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c)
		return
	}

	res := h.contactService.Delete(c.Request.Context(), nil, id)
	if res.IsFailure() {
		RespondFailure(c, res)
		return
	}
	c.Status(http.StatusNoContent)
}
