package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID            uint64         `gorm:"primarykey" json:"id"`
	Name          string         `gorm:"type:varchar(255);not null" json:"name"`
	Category      string         `gorm:"type:varchar(100);not null" json:"category"`
	PricePerUnit  float64        `gorm:"not null" json:"price_per_unit"`
	Unit          string         `gorm:"type:varchar(50);not null;default:'piece'" json:"unit"`
	StockQuantity int            `gorm:"not null;default:0" json:"stock_quantity"`
	Description   string         `gorm:"type:text" json:"description"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Orders        []Order        `gorm:"foreignKey:ProductID" json:"-"`
	InventoryLogs []InventoryLog `gorm:"foreignKey:ProductID" json:"-"`
}
