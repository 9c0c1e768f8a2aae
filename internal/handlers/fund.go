package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kestrelpoint/funddesk-backend/internal/logger"
	"github.com/kestrelpoint/funddesk-backend/internal/services"
)

type FundHandler struct {
	log         *logger.Logger
	fundService services.FundService
}

func NewFundHandler(log *logger.Logger, fundService services.FundService) *FundHandler {
	return &FundHandler{
		log:         log.With("handler", "FundHandler"),
		fundService: fundService,
	}
}

func (h *FundHandler) Create(c *gin.Context) {
	var req services.CreateFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c)
		return
	}

	res := h.fundService.Create(c.Request.Context(), nil, req)
	if res.IsFailure() {
		RespondFailure(c, res)
		return
	}

	c.Header("Location", "/api/funds/"+res.Value().ID.String())
	c.JSON(http.StatusCreated, res.Value())
}

// CreateBatch takes a bare JSON array of fund names.
func (h *FundHandler) CreateBatch(c *gin.Context) {
	var names []string
	if err := c.ShouldBindJSON(&names); err != nil {
		RespondBadRequest(c)
		return
	}

	res := h.fundService.CreateMultiple(c.Request.Context(), nil, names)
	if res.IsFailure() {
		RespondFailure(c, res)
		return
	}
	c.JSON(http.StatusCreated, res.Value())
}

func (h *FundHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c)
		return
	}

	res := h.fundService.Get(c.Request.Context(), nil, id)
	if res.IsFailure() {
		RespondFailure(c, res)
		return
	}
	c.JSON(http.StatusOK, res.Value())
}

func (h *FundHandler) GetAll(c *gin.Context) {
	includeDeleted := c.Query("includeDeleted") == "true"

	res := h.fundService.GetAll(c.Request.Context(), nil, includeDeleted)
	if res.IsFailure() {
		RespondFailure(c, res)
		return
	}
	c.JSON(http.StatusOK, res.Value())
}

func (h *FundHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c)
		return
	}

	res := h.fundService.SoftDelete(c.Request.Context(), nil, id)
	if res.IsFailure() {
		RespondFailure(c, res)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FundHandler) Restore(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c)
		return
	}

	res := h.fundService.Restore(c.Request.Context(), nil, id)
	if res.IsFailure() {
		RespondFailure(c, res)
		return
	}
	c.Status(http.StatusNoContent)
}
