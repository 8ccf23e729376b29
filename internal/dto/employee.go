package dto

import (
	"time"

	"github.com/Ani07-05/brickdash/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       uint64          `json:"id"`
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
	Employee *EmployeeDTO    `json:"employee,omitempty"`
}

// EmployeeDTO represents an employee in API responses
type EmployeeDTO struct {
	ID         uint64    `json:"id"`
	Code       string    `json:"employee_code"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	Salary     float64   `json:"salary"`
	IsActive   bool      `json:"is_active"`
	JoinedDate time.Time `json:"joined_date"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	dto := UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
	if user.Employee != nil {
		emp := ToEmployeeDTO(*user.Employee)
		dto.Employee = &emp
	}
	return dto
}

// ToEmployeeDTO converts an Employee model to EmployeeDTO
func ToEmployeeDTO(emp models.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:         emp.ID,
		Code:       emp.Code,
		Name:       emp.Name,
		Role:       emp.Role,
		Phone:      emp.Phone,
		Address:    emp.Address,
		Salary:     emp.Salary,
		IsActive:   emp.IsActive,
		JoinedDate: emp.JoinedDate,
	}
}
