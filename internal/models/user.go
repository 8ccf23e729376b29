package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleManager    UserRole = "Manager"
	RoleSupervisor UserRole = "Supervisor"
	RoleEmployee   UserRole = "Employee"
)

type User struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Username     string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	Role         UserRole       `gorm:"type:varchar(20);not null;default:'Employee'" json:"role"`
	EmployeeID   *uint64        `json:"employee_id"`
	IsActive     bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}
