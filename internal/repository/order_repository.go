package repository

import (
	"github.com/Ani07-05/brickdash/internal/models"
	"gorm.io/gorm"
)

// GormOrderRepository is a GORM implementation of OrderRepository
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

// Create creates a new order
func (r *GormOrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// FindByID finds an order by ID with its product
func (r *GormOrderRepository) FindByID(id uint64) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Product").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// List retrieves orders with filtering and pagination, newest first
func (r *GormOrderRepository) List(filter OrderFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("order_date DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		listQuery = listQuery.Offset(offset).Limit(filter.PageSize)
	}

	var orders []models.Order
	if err := listQuery.Preload("Product").Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// ListRecent returns the most recent orders
func (r *GormOrderRepository) ListRecent(limit int) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Product").
		Order("order_date DESC").
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Update updates an order
func (r *GormOrderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

// Delete soft deletes an order
func (r *GormOrderRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Order{}, id).Error
}
