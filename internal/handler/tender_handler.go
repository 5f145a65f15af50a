package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/licitapro/licita_api/internal/service"
	"github.com/licitapro/licita_api/internal/utils"
	"github.com/licitapro/licita_api/internal/validation"
)

// TenderHandler handles tender CRUD HTTP endpoints.
type TenderHandler struct {
	tenderService *service.TenderService
}

// NewTenderHandler constructs a TenderHandler.
func NewTenderHandler(tenderService *service.TenderService) *TenderHandler {
	return &TenderHandler{tenderService: tenderService}
}

// ListTenders handles GET /v1/tenders
func (h *TenderHandler) ListTenders(c *gin.Context) {
	tenders, err := h.tenderService.ListTenders()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve tenders")
		return
	}

	utils.Success(c, 200, "Tenders retrieved", tenders)
}

// GetTender handles GET /v1/tenders/:id
func (h *TenderHandler) GetTender(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	tender, err := h.tenderService.GetTender(id)
	if err != nil {
		if errors.Is(err, utils.ErrTenderNotFound) {
			utils.Error(c, 404, "TENDER_NOT_FOUND", "Tender not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve tender")
		return
	}

	utils.Success(c, 200, "Tender retrieved", tender)
}

// CreateTender handles POST /v1/tenders
func (h *TenderHandler) CreateTender(c *gin.Context) {
	var req service.TenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if errs := validation.ValidateTender(req.Input()); len(errs) > 0 {
		utils.ValidationError(c, errs)
		return
	}

	tender, err := h.tenderService.CreateTender(&req)
	if err != nil {
		if errors.Is(err, utils.ErrUnknownProducts) {
			utils.Error(c, 400, "UNKNOWN_PRODUCTS", err.Error())
			return
		}
		if errors.Is(err, utils.ErrInvalidDate) {
			utils.Error(c, 400, "INVALID_DATE", err.Error())
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create tender")
		return
	}

	utils.Success(c, 201, "Tender created successfully", tender)
}

// DeleteTender handles DELETE /v1/tenders/:id
func (h *TenderHandler) DeleteTender(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.tenderService.DeleteTender(id); err != nil {
		if errors.Is(err, utils.ErrTenderNotFound) {
			utils.Error(c, 404, "TENDER_NOT_FOUND", err.Error())
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete tender")
		return
	}

	utils.Success(c, 200, "Tender deleted successfully", nil)
}
