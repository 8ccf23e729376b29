package repository

import (
	"github.com/Ani07-05/brickdash/internal/models"
	"gorm.io/gorm"
)

// GormProductRepository is a GORM implementation of ProductRepository
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &GormProductRepository{db: db}
}

// Create creates a new product
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// FindByID finds a product by ID
func (r *GormProductRepository) FindByID(id uint64) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// List returns all products, newest first
func (r *GormProductRepository) List() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("id DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListLowStock returns products below the given stock threshold
func (r *GormProductRepository) ListLowStock(threshold int) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("stock_quantity < ?", threshold).
		Order("stock_quantity ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Update updates a product
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete soft deletes a product
func (r *GormProductRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Product{}, id).Error
}
