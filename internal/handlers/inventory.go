package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apierrors "github.com/Ani07-05/brickdash/internal/errors"
	"github.com/Ani07-05/brickdash/internal/models"
	"github.com/Ani07-05/brickdash/internal/services"
	"github.com/gin-gonic/gin"
)

// InventoryHandler coordinates stock adjustments and production batch
// HTTP handlers.
type InventoryHandler struct {
	inventoryService *services.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// AdjustStock applies a stock addition or reduction and records the
// matching log entry.
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	type AdjustStockRequest struct {
		ProductID uint64 `json:"product_id" binding:"required"`
		Type      string `json:"change_type" binding:"required"`
		Quantity  int    `json:"quantity" binding:"required,gt=0"`
		Reason    string `json:"reason"`
	}

	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.inventoryService.AdjustStock(services.AdjustStockInput{
		ProductID: req.ProductID,
		Type:      models.ChangeType(req.Type),
		Quantity:  req.Quantity,
		Reason:    req.Reason,
	})
	if err != nil {
		respondInventoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// ListLogs returns recent stock adjustments, newest first.
func (h *InventoryHandler) ListLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	logs, err := h.inventoryService.ListLogs(limit)
	if err != nil {
		apierrors.InternalError(c, "Failed to list inventory logs")
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// CreateBatch starts a production batch at the first stage.
func (h *InventoryHandler) CreateBatch(c *gin.Context) {
	type CreateBatchRequest struct {
		ProductID   *uint64 `json:"product_id"`
		Units       int     `json:"units" binding:"required,gt=0"`
		ReservedFor string  `json:"reserved_for"`
		Notes       string  `json:"notes"`
	}

	var req CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	batch, err := h.inventoryService.CreateBatch(services.CreateBatchInput{
		ProductID:   req.ProductID,
		Units:       req.Units,
		ReservedFor: req.ReservedFor,
		Notes:       req.Notes,
	})
	if err != nil {
		respondInventoryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, batch)
}

// ListBatches returns batches, optionally filtered by stage.
func (h *InventoryHandler) ListBatches(c *gin.Context) {
	batches, err := h.inventoryService.ListBatches(c.Query("stage"))
	if err != nil {
		respondInventoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"batches": batches})
}

// AdvanceBatch moves a batch to the next production stage.
func (h *InventoryHandler) AdvanceBatch(c *gin.Context) {
	batch, err := h.inventoryService.AdvanceBatch(c.Param("batchId"))
	if err != nil {
		respondInventoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, batch)
}

func respondInventoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrBatchNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidChangeType),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidUnits),
		errors.Is(err, services.ErrInvalidStage),
		errors.Is(err, services.ErrBatchFinished):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
