package models

import "time"

type ChangeType string

const (
	ChangeAddition  ChangeType = "Addition"
	ChangeReduction ChangeType = "Reduction"
)

// InventoryLog records one stock adjustment. Logs are append-only.
type InventoryLog struct {
	ID        uint64     `gorm:"primarykey" json:"id"`
	ProductID uint64     `gorm:"not null;index" json:"product_id"`
	Type      ChangeType `gorm:"column:change_type;type:varchar(20);not null" json:"change_type"`
	Quantity  int        `gorm:"not null" json:"quantity"`
	Reason    string     `gorm:"type:text" json:"reason"`
	CreatedAt time.Time  `json:"created_at"`

	// Relations
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
