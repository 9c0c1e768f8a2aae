package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kestrelpoint/funddesk-backend/internal/logger"
	"github.com/kestrelpoint/funddesk-backend/internal/services"
)

type FundContactHandler struct {
	log                *logger.Logger
	fundContactService services.FundContactService
}

func NewFundContactHandler(log *logger.Logger, fundContactService services.FundContactService) *FundContactHandler {
	return &FundContactHandler{
		log:                log.With("handler", "FundContactHandler"),
		fundContactService: fundContactService,
	}
}

func (h *FundContactHandler) Assign(c *gin.Context) {
	var req services.AssignContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c)
		return
	}

	res := h.fundContactService.Assign(c.Request.Context(), nil, req)
	if res.IsFailure() {
		RespondFailure(c, res)
		return
	}

	c.Header("Location", "/api/fundcontacts/"+res.Value().ID.String())
	c.JSON(http.StatusCreated, res.Value())
}

func (h *FundContactHandler) Remove(c *gin.Context) {
	contactID, err := uuid.Parse(c.Param("contactId"))
	if err != nil {
		RespondBadRequest(c)
		return
	}
	fundID, err := uuid.Parse(c.Param("fundId"))
	if err != nil {
		RespondBadRequest(c)
		return
	}

	res := h.fundContactService.Remove(c.Request.Context(), nil, contactID, fundID)
	if res.IsFailure() {
		RespondFailure(c, res)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FundContactHandler) ContactsByFund(c *gin.Context) {
	fundID, err := uuid.Parse(c.Param("fundId"))
	if err != nil {
		RespondBadRequest(c)
		return
	}

	res := h.fundContactService.ContactsByFund(c.Request.Context(), nil, fundID)
	if res.IsFailure() {
		RespondFailure(c, res)
		return
	}
	c.JSON(http.StatusOK, res.Value())
}

func (h *FundContactHandler) FundsByContact(c *gin.Context) {
	contactID, err := uuid.Parse(c.Param("contactId"))
	if err != nil {
		RespondBadRequest(c)
		return
	}

	res := h.fundContactService.FundsByContact(c.Request.Context(), nil, contactID)
	if res.IsFailure() {
		RespondFailure(c, res)
		return
	}
	c.JSON(http.StatusOK, res.Value())
}
