package models

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

type Order struct {
	ID              uint64         `gorm:"primarykey" json:"id"`
	OrderNumber     string         `gorm:"type:varchar(20);uniqueIndex;not null" json:"order_number"`
	CustomerName    string         `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerPhone   string         `gorm:"type:varchar(20)" json:"customer_phone"`
	CustomerAddress string         `gorm:"type:text" json:"customer_address"`
	ProductID       uint64         `gorm:"not null" json:"product_id"`
	Quantity        int            `gorm:"not null" json:"quantity"`
	TotalAmount     float64        `gorm:"not null" json:"total_amount"`
	Status          OrderStatus    `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	OrderDate       time.Time      `json:"order_date"`
	DeliveryDate    *time.Time     `json:"delivery_date"`
	Notes           string         `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
