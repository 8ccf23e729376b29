package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apierrors "github.com/Ani07-05/brickdash/internal/errors"
	"github.com/Ani07-05/brickdash/internal/models"
	"github.com/Ani07-05/brickdash/internal/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProductHandler coordinates product catalog HTTP handlers.
type ProductHandler struct {
	productRepo repository.ProductRepository
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productRepo repository.ProductRepository) *ProductHandler {
	return &ProductHandler{
		productRepo: productRepo,
	}
}

// ListProducts returns the full catalog.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productRepo.List()
	if err != nil {
		apierrors.InternalError(c, "Failed to list products")
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct returns a single product.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Product not found")
		} else {
			apierrors.InternalError(c, "Failed to find product")
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct adds a product to the catalog.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	type CreateProductRequest struct {
		Name          string  `json:"name" binding:"required"`
		Category      string  `json:"category"`
		Unit          string  `json:"unit"`
		PricePerUnit  float64 `json:"price_per_unit" binding:"required,gt=0"`
		StockQuantity int     `json:"stock_quantity" binding:"gte=0"`
		Description   string  `json:"description"`
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	product := &models.Product{
		Name:          req.Name,
		Category:      req.Category,
		Unit:          req.Unit,
		PricePerUnit:  req.PricePerUnit,
		StockQuantity: req.StockQuantity,
		Description:   req.Description,
	}

	if err := h.productRepo.Create(product); err != nil {
		apierrors.InternalError(c, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct updates catalog fields on a product. Stock changes go
// through the inventory endpoints so every movement leaves a log entry.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Product not found")
		} else {
			apierrors.InternalError(c, "Failed to find product")
		}
		return
	}

	type UpdateProductRequest struct {
		Name         *string  `json:"name"`
		Category     *string  `json:"category"`
		Unit         *string  `json:"unit"`
		PricePerUnit *float64 `json:"price_per_unit"`
		Description  *string  `json:"description"`
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			apierrors.BadRequest(c, "Name cannot be empty")
			return
		}
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.PricePerUnit != nil {
		if *req.PricePerUnit <= 0 {
			apierrors.BadRequest(c, "Price must be positive")
			return
		}
		product.PricePerUnit = *req.PricePerUnit
	}
	if req.Description != nil {
		product.Description = *req.Description
	}

	if err := h.productRepo.Update(product); err != nil {
		apierrors.InternalError(c, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product from the catalog.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid product ID")
		return
	}

	if _, err := h.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Product not found")
		} else {
			apierrors.InternalError(c, "Failed to find product")
		}
		return
	}

	if err := h.productRepo.Delete(productID); err != nil {
		apierrors.InternalError(c, "Failed to delete product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}
