package services

import (
	"errors"
	"fmt"

	"github.com/Ani07-05/brickdash/internal/models"
	"github.com/Ani07-05/brickdash/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidChangeType = errors.New("change type must be Addition or Reduction")
	ErrBatchNotFound     = errors.New("batch not found")
	ErrBatchFinished     = errors.New("batch already reached the final stage")
	ErrInvalidStage      = errors.New("unknown production stage")
	ErrInvalidUnits      = errors.New("units must be positive")
)

// InventoryService handles stock adjustments and production batches.
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
	productRepo   repository.ProductRepository
	db            *gorm.DB
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(inventoryRepo repository.InventoryRepository, productRepo repository.ProductRepository, db *gorm.DB) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
		db:            db,
	}
}

// AdjustStockInput represents one stock adjustment
type AdjustStockInput struct {
	ProductID uint64
	Type      models.ChangeType
	Quantity  int
	Reason    string
}

// AdjustStock applies a stock change and appends the matching log
// entry in one transaction. Stock never goes below zero.
func (s *InventoryService) AdjustStock(input AdjustStockInput) (*models.Product, error) {
	if input.Type != models.ChangeAddition && input.Type != models.ChangeReduction {
		return nil, ErrInvalidChangeType
	}
	if input.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var product *models.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var p models.Product
		if err := tx.First(&p, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		if input.Type == models.ChangeAddition {
			p.StockQuantity += input.Quantity
		} else {
			p.StockQuantity -= input.Quantity
			if p.StockQuantity < 0 {
				p.StockQuantity = 0
			}
		}

		if err := tx.Model(&models.Product{}).
			Where("id = ?", p.ID).
			Update("stock_quantity", p.StockQuantity).Error; err != nil {
			return err
		}

		entry := models.InventoryLog{
			ProductID: p.ID,
			Type:      input.Type,
			Quantity:  input.Quantity,
			Reason:    input.Reason,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		product = &p
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	return product, nil
}

// ListLogs returns recent stock adjustments
func (s *InventoryService) ListLogs(limit int) ([]models.InventoryLog, error) {
	logs, err := s.inventoryRepo.ListLogs(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory logs: %w", err)
	}
	return logs, nil
}

// CreateBatchInput represents a new production batch
type CreateBatchInput struct {
	ProductID   *uint64
	Units       int
	ReservedFor string
	Notes       string
}

// CreateBatch starts a batch at the first production stage with a
// generated batch id.
func (s *InventoryService) CreateBatch(input CreateBatchInput) (*models.InventoryBatch, error) {
	if input.Units <= 0 {
		return nil, ErrInvalidUnits
	}

	if input.ProductID != nil {
		if _, err := s.productRepo.FindByID(*input.ProductID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProductNotFound
			}
			return nil, fmt.Errorf("failed to find product: %w", err)
		}
	}

	batch := &models.InventoryBatch{
		BatchID:     uuid.NewString(),
		Stage:       models.StageMolding,
		ProductID:   input.ProductID,
		Units:       input.Units,
		ReservedFor: input.ReservedFor,
		Notes:       input.Notes,
	}

	if err := s.inventoryRepo.CreateBatch(batch); err != nil {
		return nil, fmt.Errorf("failed to create batch: %w", err)
	}

	return batch, nil
}

// AdvanceBatch moves a batch to the next production stage. A batch
// arriving at Finished with a linked product adds its units to stock.
func (s *InventoryService) AdvanceBatch(batchID string) (*models.InventoryBatch, error) {
	batch, err := s.inventoryRepo.FindBatch(batchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBatchNotFound
		}
		return nil, fmt.Errorf("failed to find batch: %w", err)
	}

	next := models.NextStage(batch.Stage)
	if next == "" {
		return nil, ErrBatchFinished
	}

	batch.Stage = next
	batch.Product = nil
	if err := s.inventoryRepo.UpdateBatch(batch); err != nil {
		return nil, fmt.Errorf("failed to advance batch: %w", err)
	}

	if next == models.StageFinished && batch.ProductID != nil {
		if _, err := s.AdjustStock(AdjustStockInput{
			ProductID: *batch.ProductID,
			Type:      models.ChangeAddition,
			Quantity:  batch.Units,
			Reason:    fmt.Sprintf("Batch %s finished", batch.BatchID),
		}); err != nil {
			return nil, fmt.Errorf("batch advanced but stock not updated: %w", err)
		}
	}

	return batch, nil
}

// ListBatches returns batches, optionally filtered by a stage name
func (s *InventoryService) ListBatches(rawStage string) ([]models.InventoryBatch, error) {
	var stage *models.BatchStage
	if rawStage != "" {
		found := false
		for _, st := range models.BatchStages() {
			if string(st) == rawStage {
				stage = &st
				found = true
				break
			}
		}
		if !found {
			return nil, ErrInvalidStage
		}
	}

	batches, err := s.inventoryRepo.ListBatches(stage)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}
	return batches, nil
}
