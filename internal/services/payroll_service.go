package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Ani07-05/brickdash/internal/models"
	"github.com/Ani07-05/brickdash/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrInvalidPeriod        = errors.New("month must be 1-12 and year positive")
	ErrSalaryRecordNotFound = errors.New("salary record not found")
)

// PayrollService computes attendance-prorated monthly salaries.
type PayrollService struct {
	payrollRepo    repository.PayrollRepository
	attendanceRepo repository.AttendanceRepository
	employeeRepo   repository.EmployeeRepository
}

// NewPayrollService creates a new PayrollService
func NewPayrollService(payrollRepo repository.PayrollRepository, attendanceRepo repository.AttendanceRepository, employeeRepo repository.EmployeeRepository) *PayrollService {
	return &PayrollService{
		payrollRepo:    payrollRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// PayrollSummary aggregates one period's records.
type PayrollSummary struct {
	Month           int                   `json:"month"`
	Year            int                   `json:"year"`
	Records         []models.SalaryRecord `json:"records"`
	TotalGross      float64               `json:"total_gross"`
	TotalDeductions float64               `json:"total_deductions"`
	TotalNet        float64               `json:"total_net"`
}

// Generate creates salary records for every active employee that does
// not already have one for the period. Existing records are left
// untouched so a re-run never double-pays.
func (s *PayrollService) Generate(month, year int) (int, error) {
	if month < 1 || month > 12 || year <= 0 {
		return 0, ErrInvalidPeriod
	}

	employees, err := s.employeeRepo.ListActive()
	if err != nil {
		return 0, fmt.Errorf("failed to list active employees: %w", err)
	}

	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	created := 0
	for _, emp := range employees {
		if _, err := s.payrollRepo.Find(emp.ID, month, year); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, fmt.Errorf("failed to check salary record: %w", err)
		}

		gross, err := s.grossFor(emp, month, year, daysInMonth)
		if err != nil {
			return created, err
		}

		record := &models.SalaryRecord{
			EmployeeID:  emp.ID,
			Month:       month,
			Year:        year,
			GrossSalary: gross,
			Deductions:  0,
			NetSalary:   gross,
		}
		if err := s.payrollRepo.Create(record); err != nil {
			return created, fmt.Errorf("failed to create salary record: %w", err)
		}
		created++
	}

	return created, nil
}

// grossFor prorates the monthly salary by effective attended days:
// present and half-days count, a half-day counts half.
func (s *PayrollService) grossFor(emp models.Employee, month, year, daysInMonth int) (float64, error) {
	presentCount, err := s.attendanceRepo.CountByStatusInMonth(emp.ID, year, month,
		[]models.AttendanceStatus{models.AttendancePresent, models.AttendanceHalfDay})
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	halfDayCount, err := s.attendanceRepo.CountByStatusInMonth(emp.ID, year, month,
		[]models.AttendanceStatus{models.AttendanceHalfDay})
	if err != nil {
		return 0, fmt.Errorf("failed to count half-days: %w", err)
	}

	effectiveDays := float64(presentCount) - float64(halfDayCount)*0.5
	if daysInMonth == 0 {
		return 0, nil
	}
	dailyRate := emp.Salary / float64(daysInMonth)
	return dailyRate * effectiveDays, nil
}

// Report returns the period's records with totals.
func (s *PayrollService) Report(month, year int) (*PayrollSummary, error) {
	if month < 1 || month > 12 || year <= 0 {
		return nil, ErrInvalidPeriod
	}

	records, err := s.payrollRepo.ListByPeriod(month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}

	summary := &PayrollSummary{
		Month:   month,
		Year:    year,
		Records: records,
	}
	for _, r := range records {
		summary.TotalGross += r.GrossSalary
		summary.TotalDeductions += r.Deductions
		summary.TotalNet += r.NetSalary
	}

	return summary, nil
}

// MarkPaid flags a salary record as paid.
func (s *PayrollService) MarkPaid(recordID uint64) (*models.SalaryRecord, error) {
	record, err := s.payrollRepo.FindByID(recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSalaryRecordNotFound
		}
		return nil, fmt.Errorf("failed to find salary record: %w", err)
	}

	record.Paid = true
	record.Employee = models.Employee{}
	if err := s.payrollRepo.Update(record); err != nil {
		return nil, fmt.Errorf("failed to update salary record: %w", err)
	}

	return record, nil
}
