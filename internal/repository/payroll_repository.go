package repository

import (
	"github.com/Ani07-05/brickdash/internal/models"
	"gorm.io/gorm"
)

// GormPayrollRepository is a GORM implementation of PayrollRepository
type GormPayrollRepository struct {
	db *gorm.DB
}

// NewPayrollRepository creates a new PayrollRepository
func NewPayrollRepository(db *gorm.DB) PayrollRepository {
	return &GormPayrollRepository{db: db}
}

// Create creates a salary record
func (r *GormPayrollRepository) Create(record *models.SalaryRecord) error {
	return r.db.Create(record).Error
}

// Find returns the salary record for an employee and period
func (r *GormPayrollRepository) Find(employeeID uint64, month, year int) (*models.SalaryRecord, error) {
	var record models.SalaryRecord
	if err := r.db.Where("employee_id = ? AND month = ? AND year = ?", employeeID, month, year).
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// FindByID finds a salary record by ID
func (r *GormPayrollRepository) FindByID(id uint64) (*models.SalaryRecord, error) {
	var record models.SalaryRecord
	if err := r.db.Preload("Employee").First(&record, id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByPeriod returns all salary records for a month with employees
func (r *GormPayrollRepository) ListByPeriod(month, year int) ([]models.SalaryRecord, error) {
	var records []models.SalaryRecord
	if err := r.db.Preload("Employee").
		Where("month = ? AND year = ?", month, year).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Update updates a salary record
func (r *GormPayrollRepository) Update(record *models.SalaryRecord) error {
	return r.db.Save(record).Error
}
