package repository

import (
	"time"

	"github.com/Ani07-05/brickdash/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAttendanceRepository is a GORM implementation of AttendanceRepository
type GormAttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &GormAttendanceRepository{db: db}
}

// Upsert saves a record, replacing status, shift and notes for an
// existing employee-day row
func (r *GormAttendanceRepository) Upsert(record *models.Attendance) error {
	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "shift", "notes", "updated_at"}),
		}).
		Create(record).Error
}

// FindByEmployeeAndDate returns the record for one employee-day
func (r *GormAttendanceRepository) FindByEmployeeAndDate(employeeID uint64, date time.Time) (*models.Attendance, error) {
	var record models.Attendance
	if err := r.db.Where("employee_id = ? AND date = ?", employeeID, date).
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByDate returns all records for a date
func (r *GormAttendanceRepository) ListByDate(date time.Time) ([]models.Attendance, error) {
	var records []models.Attendance
	if err := r.db.Preload("Employee").
		Where("date = ?", date).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListRecent returns recent records, newest first
func (r *GormAttendanceRepository) ListRecent(limit int) ([]models.Attendance, error) {
	var records []models.Attendance
	if err := r.db.Preload("Employee").
		Order("date DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// CountByStatusInMonth counts an employee's records in a month matching
// any of the given statuses
func (r *GormAttendanceRepository) CountByStatusInMonth(employeeID uint64, year, month int, statuses []models.AttendanceStatus) (int64, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var count int64
	err := r.db.Model(&models.Attendance{}).
		Where("employee_id = ? AND date >= ? AND date < ? AND status IN ?", employeeID, start, end, statuses).
		Count(&count).Error
	return count, err
}

// CountByDateAndStatus counts records on one date with a status
func (r *GormAttendanceRepository) CountByDateAndStatus(date time.Time, status models.AttendanceStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Attendance{}).
		Where("date = ? AND status = ?", date, status).
		Count(&count).Error
	return count, err
}
