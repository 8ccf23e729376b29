package utils

import (
	"testing"
	"time"

	"github.com/Ani07-05/brickdash/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSequenceDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Employee{}, &models.Order{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func createEmployeeWithCode(t *testing.T, db *gorm.DB, code string) {
	t.Helper()

	emp := models.Employee{
		Code:       code,
		Name:       "Worker " + code,
		Role:       "Worker",
		IsActive:   true,
		JoinedDate: time.Now(),
	}
	require.NoError(t, db.Create(&emp).Error)
}

func TestNextEmployeeCode(t *testing.T) {
	db := setupSequenceDB(t)

	code, err := NextEmployeeCode(db)
	require.NoError(t, err)
	require.Equal(t, "BRK001", code)

	createEmployeeWithCode(t, db, "BRK001")
	createEmployeeWithCode(t, db, "BRK007")

	code, err = NextEmployeeCode(db)
	require.NoError(t, err)
	require.Equal(t, "BRK008", code)
}

func TestNextEmployeeCode_SkipsLegacyCodes(t *testing.T) {
	db := setupSequenceDB(t)

	createEmployeeWithCode(t, db, "BRK003")
	createEmployeeWithCode(t, db, "BRK-IMPORTED")

	code, err := NextEmployeeCode(db)
	require.NoError(t, err)
	require.Equal(t, "BRK004", code)
}

func TestNextOrderNumber(t *testing.T) {
	db := setupSequenceDB(t)

	number, err := NextOrderNumber(db)
	require.NoError(t, err)
	require.Equal(t, "ORD1001", number)

	order := models.Order{
		OrderNumber:  "ORD1005",
		CustomerName: "Customer",
		ProductID:    1,
		Quantity:     10,
		TotalAmount:  100,
		Status:       models.OrderStatusPending,
		OrderDate:    time.Now(),
	}
	require.NoError(t, db.Create(&order).Error)

	number, err = NextOrderNumber(db)
	require.NoError(t, err)
	require.Equal(t, "ORD1006", number)
}
