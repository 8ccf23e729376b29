package services

import (
	"fmt"
	"time"

	"github.com/Ani07-05/brickdash/internal/models"
	"github.com/Ani07-05/brickdash/internal/repository"
)

// AttendanceService handles the daily attendance registry.
type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
	employeeRepo   repository.EmployeeRepository
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(attendanceRepo repository.AttendanceRepository, employeeRepo repository.EmployeeRepository) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// RegistryEntry pairs an active employee with their saved record for a
// date, if any.
type RegistryEntry struct {
	Employee models.Employee    `json:"employee"`
	Record   *models.Attendance `json:"record"`
}

// Registry returns one entry per active employee for the given date.
func (s *AttendanceService) Registry(date time.Time) ([]RegistryEntry, error) {
	date = NormalizeDate(date)

	employees, err := s.employeeRepo.ListActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}

	records, err := s.attendanceRepo.ListByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	byEmployee := make(map[uint64]models.Attendance, len(records))
	for _, record := range records {
		byEmployee[record.EmployeeID] = record
	}

	entries := make([]RegistryEntry, len(employees))
	for i, emp := range employees {
		entries[i] = RegistryEntry{Employee: emp}
		if record, ok := byEmployee[emp.ID]; ok {
			record.Employee = models.Employee{}
			entries[i].Record = &record
		}
	}

	return entries, nil
}

// MarkInput is one employee's attendance for a date
type MarkInput struct {
	EmployeeID uint64                  `json:"employee_id"`
	Status     models.AttendanceStatus `json:"status"`
	Shift      models.Shift            `json:"shift"`
	Notes      string                  `json:"notes"`
}

// Save upserts attendance records for a date.
func (s *AttendanceService) Save(date time.Time, marks []MarkInput) error {
	date = NormalizeDate(date)

	for _, mark := range marks {
		status := mark.Status
		if status == "" {
			status = models.AttendancePresent
		}
		shift := mark.Shift
		if shift == "" {
			shift = models.ShiftDay
		}

		record := &models.Attendance{
			EmployeeID: mark.EmployeeID,
			Date:       date,
			Status:     status,
			Shift:      shift,
			Notes:      mark.Notes,
		}
		if err := s.attendanceRepo.Upsert(record); err != nil {
			return fmt.Errorf("failed to save attendance for employee %d: %w", mark.EmployeeID, err)
		}
	}

	return nil
}

// MarkAll sets every active employee's status for a date.
func (s *AttendanceService) MarkAll(date time.Time, status models.AttendanceStatus) error {
	if status == "" {
		status = models.AttendancePresent
	}

	employees, err := s.employeeRepo.ListActive()
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	marks := make([]MarkInput, len(employees))
	for i, emp := range employees {
		marks[i] = MarkInput{EmployeeID: emp.ID, Status: status}
	}

	return s.Save(date, marks)
}

// Records returns attendance records for a date, or the most recent
// ones when date is zero.
func (s *AttendanceService) Records(date time.Time, limit int) ([]models.Attendance, error) {
	if date.IsZero() {
		records, err := s.attendanceRepo.ListRecent(limit)
		if err != nil {
			return nil, fmt.Errorf("failed to list attendance: %w", err)
		}
		return records, nil
	}

	records, err := s.attendanceRepo.ListByDate(NormalizeDate(date))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return records, nil
}

// NormalizeDate truncates a timestamp to midnight UTC so the
// per-employee-per-day uniqueness constraint holds regardless of the
// caller's timezone.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
