package services

import (
	"testing"

	"github.com/Ani07-05/brickdash/internal/models"
	"github.com/Ani07-05/brickdash/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type inventoryTestEnv struct {
	db      *gorm.DB
	service *InventoryService
}

func setupInventoryTestEnv(t *testing.T) inventoryTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Product{},
		&models.InventoryLog{},
		&models.InventoryBatch{},
	)
	require.NoError(t, err)

	service := NewInventoryService(
		repository.NewInventoryRepository(db),
		repository.NewProductRepository(db),
		db,
	)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return inventoryTestEnv{db: db, service: service}
}

func (env inventoryTestEnv) createProduct(t *testing.T, name string, stock int) models.Product {
	t.Helper()

	product := models.Product{
		Name:          name,
		Category:      "Bricks",
		PricePerUnit:  8,
		Unit:          "piece",
		StockQuantity: stock,
	}
	require.NoError(t, env.db.Create(&product).Error)
	return product
}

func TestInventoryService_AdjustStock_WritesLog(t *testing.T) {
	env := setupInventoryTestEnv(t)
	product := env.createProduct(t, "Red Clay Brick", 100)

	updated, err := env.service.AdjustStock(AdjustStockInput{
		ProductID: product.ID,
		Type:      models.ChangeAddition,
		Quantity:  50,
		Reason:    "Kiln batch",
	})
	require.NoError(t, err)
	require.Equal(t, 150, updated.StockQuantity)

	var entry models.InventoryLog
	require.NoError(t, env.db.First(&entry).Error)
	require.Equal(t, product.ID, entry.ProductID)
	require.Equal(t, models.ChangeAddition, entry.Type)
	require.Equal(t, 50, entry.Quantity)
}

func TestInventoryService_AdjustStock_ClampsAtZero(t *testing.T) {
	env := setupInventoryTestEnv(t)
	product := env.createProduct(t, "Red Clay Brick", 30)

	updated, err := env.service.AdjustStock(AdjustStockInput{
		ProductID: product.ID,
		Type:      models.ChangeReduction,
		Quantity:  100,
		Reason:    "Breakage writeoff",
	})
	require.NoError(t, err)
	require.Zero(t, updated.StockQuantity)
}

func TestInventoryService_AdjustStock_Validation(t *testing.T) {
	env := setupInventoryTestEnv(t)
	product := env.createProduct(t, "Red Clay Brick", 30)

	_, err := env.service.AdjustStock(AdjustStockInput{
		ProductID: product.ID,
		Type:      "Theft",
		Quantity:  5,
	})
	require.ErrorIs(t, err, ErrInvalidChangeType)

	_, err = env.service.AdjustStock(AdjustStockInput{
		ProductID: 9999,
		Type:      models.ChangeAddition,
		Quantity:  5,
	})
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestInventoryService_BatchLifecycle(t *testing.T) {
	env := setupInventoryTestEnv(t)
	product := env.createProduct(t, "Red Clay Brick", 100)

	batch, err := env.service.CreateBatch(CreateBatchInput{
		ProductID: &product.ID,
		Units:     500,
	})
	require.NoError(t, err)
	require.Equal(t, models.StageMolding, batch.Stage)

	_, err = uuid.Parse(batch.BatchID)
	require.NoError(t, err, "batch id must be a valid UUID")

	// Walk the batch through the production line.
	for _, expected := range []models.BatchStage{models.StageDrying, models.StageKiln, models.StageFinished} {
		batch, err = env.service.AdvanceBatch(batch.BatchID)
		require.NoError(t, err)
		require.Equal(t, expected, batch.Stage)
	}

	// Reaching Finished adds the units to the linked product's stock.
	var refreshed models.Product
	require.NoError(t, env.db.First(&refreshed, product.ID).Error)
	require.Equal(t, 600, refreshed.StockQuantity)

	// A finished batch cannot advance further.
	_, err = env.service.AdvanceBatch(batch.BatchID)
	require.ErrorIs(t, err, ErrBatchFinished)
}

func TestInventoryService_ListBatches_UnknownStage(t *testing.T) {
	env := setupInventoryTestEnv(t)

	_, err := env.service.ListBatches("Polishing")
	require.ErrorIs(t, err, ErrInvalidStage)
}
