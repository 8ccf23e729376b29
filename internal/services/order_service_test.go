package services

import (
	"testing"

	"github.com/Ani07-05/brickdash/internal/models"
	"github.com/Ani07-05/brickdash/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type orderTestEnv struct {
	db      *gorm.DB
	service *OrderService
}

func setupOrderTestEnv(t *testing.T) orderTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Product{},
		&models.Order{},
	)
	require.NoError(t, err)

	service := NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewProductRepository(db),
		db,
	)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return orderTestEnv{db: db, service: service}
}

func (env orderTestEnv) createProduct(t *testing.T, name string, price float64) models.Product {
	t.Helper()

	product := models.Product{
		Name:          name,
		Category:      "Bricks",
		PricePerUnit:  price,
		Unit:          "piece",
		StockQuantity: 1000,
	}
	require.NoError(t, env.db.Create(&product).Error)
	return product
}

func TestOrderService_CreateOrder(t *testing.T) {
	env := setupOrderTestEnv(t)
	product := env.createProduct(t, "Red Clay Brick", 8.5)

	order, err := env.service.CreateOrder(CreateOrderInput{
		CustomerName: "Sharma Constructions",
		ProductID:    product.ID,
		Quantity:     200,
	})
	require.NoError(t, err)

	// First order gets ORD1001 and a server-computed total.
	require.Equal(t, "ORD1001", order.OrderNumber)
	require.InDelta(t, 1700, order.TotalAmount, 0.01)
	require.Equal(t, models.OrderStatusPending, order.Status)

	second, err := env.service.CreateOrder(CreateOrderInput{
		CustomerName: "City Builders",
		ProductID:    product.ID,
		Quantity:     10,
	})
	require.NoError(t, err)
	require.Equal(t, "ORD1002", second.OrderNumber)
}

func TestOrderService_CreateOrder_Validation(t *testing.T) {
	env := setupOrderTestEnv(t)
	product := env.createProduct(t, "Red Clay Brick", 8.5)

	_, err := env.service.CreateOrder(CreateOrderInput{
		CustomerName: "",
		ProductID:    product.ID,
		Quantity:     10,
	})
	require.ErrorIs(t, err, ErrCustomerNameNeeded)

	_, err = env.service.CreateOrder(CreateOrderInput{
		CustomerName: "Customer",
		ProductID:    product.ID,
		Quantity:     0,
	})
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = env.service.CreateOrder(CreateOrderInput{
		CustomerName: "Customer",
		ProductID:    9999,
		Quantity:     10,
	})
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestOrderService_UpdateOrder_RecomputesTotal(t *testing.T) {
	env := setupOrderTestEnv(t)
	product := env.createProduct(t, "Red Clay Brick", 10)

	order, err := env.service.CreateOrder(CreateOrderInput{
		CustomerName: "Customer",
		ProductID:    product.ID,
		Quantity:     100,
	})
	require.NoError(t, err)
	require.InDelta(t, 1000, order.TotalAmount, 0.01)

	quantity := 250
	updated, err := env.service.UpdateOrder(order.ID, UpdateOrderInput{
		Quantity: &quantity,
	})
	require.NoError(t, err)
	require.InDelta(t, 2500, updated.TotalAmount, 0.01)

	// Status-only updates leave the total alone.
	status := models.OrderStatusDelivered
	updated, err = env.service.UpdateOrder(order.ID, UpdateOrderInput{Status: &status})
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusDelivered, updated.Status)
	require.InDelta(t, 2500, updated.TotalAmount, 0.01)
}
