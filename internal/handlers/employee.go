package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Ani07-05/brickdash/internal/dto"
	apierrors "github.com/Ani07-05/brickdash/internal/errors"
	"github.com/Ani07-05/brickdash/internal/models"
	"github.com/Ani07-05/brickdash/internal/repository"
	"github.com/Ani07-05/brickdash/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// EmployeeHandler coordinates workforce directory HTTP handlers.
type EmployeeHandler struct {
	employeeRepo repository.EmployeeRepository
	db           *gorm.DB
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(employeeRepo repository.EmployeeRepository, db *gorm.DB) *EmployeeHandler {
	return &EmployeeHandler{
		employeeRepo: employeeRepo,
		db:           db,
	}
}

// ListEmployees returns the workforce directory. Pass active=true to
// restrict to active employees.
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	var (
		employees []models.Employee
		err       error
	)
	if c.Query("active") == "true" {
		employees, err = h.employeeRepo.ListActive()
	} else {
		employees, err = h.employeeRepo.List()
	}
	if err != nil {
		apierrors.InternalError(c, "Failed to list employees")
		return
	}

	employeeDTOs := make([]dto.EmployeeDTO, len(employees))
	for i, emp := range employees {
		employeeDTOs[i] = dto.ToEmployeeDTO(emp)
	}

	c.JSON(http.StatusOK, gin.H{"employees": employeeDTOs})
}

// GetEmployee returns a single employee.
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	employeeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid employee ID")
		return
	}

	employee, err := h.employeeRepo.FindByID(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Employee not found")
		} else {
			apierrors.InternalError(c, "Failed to find employee")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeDTO(*employee))
}

// CreateEmployee adds an employee with a generated BRK code.
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	type CreateEmployeeRequest struct {
		Name       string     `json:"name" binding:"required"`
		Role       string     `json:"role" binding:"required"`
		Phone      string     `json:"phone"`
		Address    string     `json:"address"`
		Salary     float64    `json:"salary" binding:"gte=0"`
		JoinedDate *time.Time `json:"joined_date"`
	}

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	code, err := utils.NextEmployeeCode(h.db)
	if err != nil {
		apierrors.InternalError(c, "Failed to generate employee code")
		return
	}

	joined := time.Now()
	if req.JoinedDate != nil {
		joined = *req.JoinedDate
	}

	employee := &models.Employee{
		Code:       code,
		Name:       req.Name,
		Role:       req.Role,
		Phone:      req.Phone,
		Address:    req.Address,
		Salary:     req.Salary,
		IsActive:   true,
		JoinedDate: joined,
	}

	if err := h.employeeRepo.Create(employee); err != nil {
		apierrors.InternalError(c, "Failed to create employee")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEmployeeDTO(*employee))
}

// UpdateEmployee updates an employee's directory fields. The employee
// code is immutable once issued.
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	employeeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid employee ID")
		return
	}

	employee, err := h.employeeRepo.FindByID(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Employee not found")
		} else {
			apierrors.InternalError(c, "Failed to find employee")
		}
		return
	}

	type UpdateEmployeeRequest struct {
		Name     *string  `json:"name"`
		Role     *string  `json:"role"`
		Phone    *string  `json:"phone"`
		Address  *string  `json:"address"`
		Salary   *float64 `json:"salary"`
		IsActive *bool    `json:"is_active"`
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			apierrors.BadRequest(c, "Name cannot be empty")
			return
		}
		employee.Name = *req.Name
	}
	if req.Role != nil {
		employee.Role = *req.Role
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.Address != nil {
		employee.Address = *req.Address
	}
	if req.Salary != nil {
		if *req.Salary < 0 {
			apierrors.BadRequest(c, "Salary cannot be negative")
			return
		}
		employee.Salary = *req.Salary
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	if err := h.employeeRepo.Update(employee); err != nil {
		apierrors.InternalError(c, "Failed to update employee")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeDTO(*employee))
}

// DeactivateEmployee marks an employee inactive. Their ledger history
// stays; rankings simply stop considering them.
func (h *EmployeeHandler) DeactivateEmployee(c *gin.Context) {
	employeeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid employee ID")
		return
	}

	employee, err := h.employeeRepo.FindByID(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Employee not found")
		} else {
			apierrors.InternalError(c, "Failed to find employee")
		}
		return
	}

	employee.IsActive = false
	if err := h.employeeRepo.Update(employee); err != nil {
		apierrors.InternalError(c, "Failed to deactivate employee")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Employee deactivated successfully",
	})
}
