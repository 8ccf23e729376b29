package models

import (
	"time"

	"gorm.io/gorm"
)

type Employee struct {
	ID         uint64         `gorm:"primarykey" json:"id"`
	Code       string         `gorm:"column:employee_code;type:varchar(20);uniqueIndex;not null" json:"employee_code"`
	Name       string         `gorm:"type:varchar(255);not null" json:"name"`
	Role       string         `gorm:"type:varchar(100);not null" json:"role"`
	Phone      string         `gorm:"type:varchar(20)" json:"phone"`
	Address    string         `gorm:"type:text" json:"address"`
	Salary     float64        `gorm:"not null;default:0" json:"salary"`
	IsActive   bool           `gorm:"not null;default:true" json:"is_active"`
	JoinedDate time.Time      `json:"joined_date"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Attendance     []Attendance    `gorm:"foreignKey:EmployeeID" json:"-"`
	Tasks          []Task          `gorm:"foreignKey:AssignedTo" json:"-"`
	RotationEvents []RotationEvent `gorm:"foreignKey:EmployeeID" json:"-"`
	SalaryRecords  []SalaryRecord  `gorm:"foreignKey:EmployeeID" json:"-"`
}
