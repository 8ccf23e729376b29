package repository

import (
	"github.com/Ani07-05/brickdash/internal/models"
	"gorm.io/gorm"
)

// GormInventoryRepository is a GORM implementation of InventoryRepository
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &GormInventoryRepository{db: db}
}

// AppendLog records one stock adjustment
func (r *GormInventoryRepository) AppendLog(entry *models.InventoryLog) error {
	return r.db.Create(entry).Error
}

// ListLogs returns recent adjustments, newest first
func (r *GormInventoryRepository) ListLogs(limit int) ([]models.InventoryLog, error) {
	var logs []models.InventoryLog
	if err := r.db.Preload("Product").
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// CreateBatch creates a production batch
func (r *GormInventoryRepository) CreateBatch(batch *models.InventoryBatch) error {
	return r.db.Create(batch).Error
}

// FindBatch finds a batch by its public batch id
func (r *GormInventoryRepository) FindBatch(batchID string) (*models.InventoryBatch, error) {
	var batch models.InventoryBatch
	if err := r.db.Preload("Product").
		Where("batch_id = ?", batchID).
		First(&batch).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}

// ListBatches returns batches, optionally filtered by stage
func (r *GormInventoryRepository) ListBatches(stage *models.BatchStage) ([]models.InventoryBatch, error) {
	query := r.db.Preload("Product").Order("created_at DESC")
	if stage != nil {
		query = query.Where("stage = ?", *stage)
	}

	var batches []models.InventoryBatch
	if err := query.Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// UpdateBatch updates a batch
func (r *GormInventoryRepository) UpdateBatch(batch *models.InventoryBatch) error {
	return r.db.Save(batch).Error
}
