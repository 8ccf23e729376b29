package models

import "time"

type SalaryRecord struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	EmployeeID  uint64    `gorm:"not null;uniqueIndex:idx_salary_employee_period" json:"employee_id"`
	Month       int       `gorm:"not null;uniqueIndex:idx_salary_employee_period" json:"month"`
	Year        int       `gorm:"not null;uniqueIndex:idx_salary_employee_period" json:"year"`
	GrossSalary float64   `gorm:"not null;default:0" json:"gross_salary"`
	Deductions  float64   `gorm:"not null;default:0" json:"deductions"`
	NetSalary   float64   `gorm:"not null;default:0" json:"net_salary"`
	Paid        bool      `gorm:"not null;default:false" json:"paid"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Employee Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}
