package repository

import (
	"errors"
	"time"

	"github.com/Ani07-05/brickdash/internal/models"
	"gorm.io/gorm"
)

// GormRotationRepository is a GORM implementation of RotationRepository
type GormRotationRepository struct {
	db *gorm.DB
}

// NewRotationRepository creates a new RotationRepository
func NewRotationRepository(db *gorm.DB) RotationRepository {
	return &GormRotationRepository{db: db}
}

// Record appends one assignment event. A single-row insert keeps the
// write atomic: the event is either fully recorded or not at all.
func (r *GormRotationRepository) Record(event *models.RotationEvent) error {
	return r.db.Create(event).Error
}

// CountSince counts an employee's events at or after windowStart
func (r *GormRotationRepository) CountSince(employeeID uint64, category *models.TaskCategory, windowStart time.Time) (int64, error) {
	query := r.db.Model(&models.RotationEvent{}).
		Where("employee_id = ? AND created_at >= ?", employeeID, windowStart)
	if category != nil {
		query = query.Where("category = ?", *category)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountsSince returns all (employee, category) counts for the window in
// one grouped query, so ranking never issues per-employee queries.
func (r *GormRotationRepository) CountsSince(windowStart time.Time) ([]CategoryCount, error) {
	var counts []CategoryCount
	err := r.db.Model(&models.RotationEvent{}).
		Select("employee_id, category, COUNT(*) as count").
		Where("created_at >= ?", windowStart).
		Group("employee_id, category").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// LastAssignedAt returns the employee's most recent event timestamp
func (r *GormRotationRepository) LastAssignedAt(employeeID uint64) (*time.Time, error) {
	var event models.RotationEvent
	err := r.db.Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event.CreatedAt, nil
}

// LastAssignments returns the most recent event timestamp per
// employee. The grouped maximum is joined back onto the ledger so the
// timestamp is read from the typed created_at column; scanning a bare
// MAX() alias loses the column's declared type on some drivers.
func (r *GormRotationRepository) LastAssignments() ([]LastAssignment, error) {
	latest := r.db.Model(&models.RotationEvent{}).
		Select("employee_id, MAX(created_at) AS last_created_at").
		Group("employee_id")

	var events []models.RotationEvent
	err := r.db.Model(&models.RotationEvent{}).
		Select("rotation_events.*").
		Joins("JOIN (?) latest ON latest.employee_id = rotation_events.employee_id AND latest.last_created_at = rotation_events.created_at", latest).
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	// Two events at the exact same timestamp join twice; keep one.
	rows := make([]LastAssignment, 0, len(events))
	seen := make(map[uint64]bool, len(events))
	for _, e := range events {
		if seen[e.EmployeeID] {
			continue
		}
		seen[e.EmployeeID] = true
		rows = append(rows, LastAssignment{EmployeeID: e.EmployeeID, AssignedAt: e.CreatedAt})
	}
	return rows, nil
}
