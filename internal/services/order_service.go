package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Ani07-05/brickdash/internal/models"
	"github.com/Ani07-05/brickdash/internal/repository"
	"github.com/Ani07-05/brickdash/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrCustomerNameNeeded = errors.New("customer name is required")
)

// OrderService handles order intake. Totals are always computed
// server-side from the product's current unit price.
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	db          *gorm.DB
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, db *gorm.DB) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		db:          db,
	}
}

// CreateOrderInput represents input for creating an order
type CreateOrderInput struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	ProductID       uint64
	Quantity        int
	Status          models.OrderStatus
	DeliveryDate    *time.Time
	Notes           string
}

// UpdateOrderInput represents input for updating an order
type UpdateOrderInput struct {
	CustomerName    *string
	CustomerPhone   *string
	CustomerAddress *string
	ProductID       *uint64
	Quantity        *int
	Status          *models.OrderStatus
	DeliveryDate    *time.Time
	Notes           *string
}

// ListOrders returns orders with filtering and pagination
func (s *OrderService) ListOrders(filter repository.OrderFilter) ([]models.Order, int64, error) {
	orders, total, err := s.orderRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, total, nil
}

// GetOrder returns an order with its product
func (s *OrderService) GetOrder(orderID uint64) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	return order, nil
}

// CreateOrder creates an order with a generated order number and a
// computed total
func (s *OrderService) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	if input.CustomerName == "" {
		return nil, ErrCustomerNameNeeded
	}
	if input.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.productRepo.FindByID(input.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	number, err := utils.NextOrderNumber(s.db)
	if err != nil {
		return nil, fmt.Errorf("failed to generate order number: %w", err)
	}

	if input.Status == "" {
		input.Status = models.OrderStatusPending
	}

	order := &models.Order{
		OrderNumber:     number,
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerAddress: input.CustomerAddress,
		ProductID:       product.ID,
		Quantity:        input.Quantity,
		TotalAmount:     product.PricePerUnit * float64(input.Quantity),
		Status:          input.Status,
		OrderDate:       time.Now(),
		DeliveryDate:    input.DeliveryDate,
		Notes:           input.Notes,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return s.orderRepo.FindByID(order.ID)
}

// UpdateOrder updates an order, recomputing the total when the product
// or quantity changes
func (s *OrderService) UpdateOrder(orderID uint64, input UpdateOrderInput) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	if input.CustomerName != nil {
		if *input.CustomerName == "" {
			return nil, ErrCustomerNameNeeded
		}
		order.CustomerName = *input.CustomerName
	}
	if input.CustomerPhone != nil {
		order.CustomerPhone = *input.CustomerPhone
	}
	if input.CustomerAddress != nil {
		order.CustomerAddress = *input.CustomerAddress
	}
	if input.ProductID != nil {
		order.ProductID = *input.ProductID
	}
	if input.Quantity != nil {
		if *input.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		order.Quantity = *input.Quantity
	}
	if input.Status != nil {
		order.Status = *input.Status
	}
	if input.DeliveryDate != nil {
		order.DeliveryDate = input.DeliveryDate
	}
	if input.Notes != nil {
		order.Notes = *input.Notes
	}

	if input.ProductID != nil || input.Quantity != nil {
		product, err := s.productRepo.FindByID(order.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProductNotFound
			}
			return nil, fmt.Errorf("failed to find product: %w", err)
		}
		order.TotalAmount = product.PricePerUnit * float64(order.Quantity)
	}

	order.Product = models.Product{}
	if err := s.orderRepo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	return s.orderRepo.FindByID(order.ID)
}

// DeleteOrder deletes an order
func (s *OrderService) DeleteOrder(orderID uint64) error {
	if _, err := s.orderRepo.FindByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to find order: %w", err)
	}

	if err := s.orderRepo.Delete(orderID); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return nil
}
