package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	apierrors "github.com/Ani07-05/brickdash/internal/errors"
	"github.com/Ani07-05/brickdash/internal/models"
	"github.com/Ani07-05/brickdash/internal/repository"
	"github.com/Ani07-05/brickdash/internal/services"
	"github.com/Ani07-05/brickdash/internal/utils"
	"github.com/gin-gonic/gin"
)

// OrderHandler coordinates order-related HTTP handlers.
type OrderHandler struct {
	orderService *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// ListOrders returns orders with optional status filtering and
// pagination.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	filter := repository.OrderFilter{
		Page:     params.Page,
		PageSize: params.Limit,
	}
	if raw := c.Query("status"); raw != "" {
		status := models.OrderStatus(raw)
		filter.Status = &status
	}

	orders, total, err := h.orderService.ListOrders(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to list orders")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetOrder returns a single order with its product.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(orderID)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// CreateOrder creates an order with a generated ORD number and a total
// computed from the product's current price.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	type CreateOrderRequest struct {
		CustomerName    string     `json:"customer_name" binding:"required"`
		CustomerPhone   string     `json:"customer_phone"`
		CustomerAddress string     `json:"customer_address"`
		ProductID       uint64     `json:"product_id" binding:"required"`
		Quantity        int        `json:"quantity" binding:"required,gt=0"`
		Status          string     `json:"status"`
		DeliveryDate    *time.Time `json:"delivery_date"`
		Notes           string     `json:"notes"`
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.CreateOrder(services.CreateOrderInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		ProductID:       req.ProductID,
		Quantity:        req.Quantity,
		Status:          models.OrderStatus(req.Status),
		DeliveryDate:    req.DeliveryDate,
		Notes:           req.Notes,
	})
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// UpdateOrder updates an order, recomputing the total when the product
// or quantity changes.
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid order ID")
		return
	}

	type UpdateOrderRequest struct {
		CustomerName    *string    `json:"customer_name"`
		CustomerPhone   *string    `json:"customer_phone"`
		CustomerAddress *string    `json:"customer_address"`
		ProductID       *uint64    `json:"product_id"`
		Quantity        *int       `json:"quantity"`
		Status          *string    `json:"status"`
		DeliveryDate    *time.Time `json:"delivery_date"`
		Notes           *string    `json:"notes"`
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateOrderInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		ProductID:       req.ProductID,
		Quantity:        req.Quantity,
		DeliveryDate:    req.DeliveryDate,
		Notes:           req.Notes,
	}
	if req.Status != nil {
		s := models.OrderStatus(*req.Status)
		input.Status = &s
	}

	order, err := h.orderService.UpdateOrder(orderID, input)
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// DeleteOrder deletes an order.
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.DeleteOrder(orderID); err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order deleted successfully",
	})
}

func respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrProductNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrCustomerNameNeeded),
		errors.Is(err, services.ErrInvalidQuantity):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
