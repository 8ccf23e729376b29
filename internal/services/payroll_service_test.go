package services

import (
	"testing"
	"time"

	"github.com/Ani07-05/brickdash/internal/models"
	"github.com/Ani07-05/brickdash/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type payrollTestEnv struct {
	db      *gorm.DB
	service *PayrollService
}

func setupPayrollTestEnv(t *testing.T) payrollTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Employee{},
		&models.Attendance{},
		&models.SalaryRecord{},
	)
	require.NoError(t, err)

	service := NewPayrollService(
		repository.NewPayrollRepository(db),
		repository.NewAttendanceRepository(db),
		repository.NewEmployeeRepository(db),
	)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return payrollTestEnv{db: db, service: service}
}

func (env payrollTestEnv) createEmployee(t *testing.T, name string, salary float64) models.Employee {
	t.Helper()

	emp := models.Employee{
		Code:       "BRK-" + name,
		Name:       name,
		Role:       "Worker",
		Salary:     salary,
		IsActive:   true,
		JoinedDate: time.Now(),
	}
	require.NoError(t, env.db.Create(&emp).Error)
	return emp
}

func (env payrollTestEnv) markAttendance(t *testing.T, employeeID uint64, date time.Time, status models.AttendanceStatus) {
	t.Helper()

	record := models.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
		Shift:      models.ShiftDay,
	}
	require.NoError(t, env.db.Create(&record).Error)
}

func TestPayrollService_Generate_ProratesByAttendance(t *testing.T) {
	env := setupPayrollTestEnv(t)

	// January has 31 days, so a 31000 salary gives a clean daily rate.
	emp := env.createEmployee(t, "Alice", 31000)

	for day := 1; day <= 20; day++ {
		env.markAttendance(t, emp.ID,
			time.Date(2026, time.January, day, 0, 0, 0, 0, time.UTC),
			models.AttendancePresent)
	}
	env.markAttendance(t, emp.ID,
		time.Date(2026, time.January, 21, 0, 0, 0, 0, time.UTC),
		models.AttendanceHalfDay)
	env.markAttendance(t, emp.ID,
		time.Date(2026, time.January, 22, 0, 0, 0, 0, time.UTC),
		models.AttendanceAbsent)

	created, err := env.service.Generate(1, 2026)
	require.NoError(t, err)
	require.Equal(t, 1, created)

	var record models.SalaryRecord
	require.NoError(t, env.db.Where("employee_id = ?", emp.ID).First(&record).Error)

	// 20 present days plus half a day at 1000/day.
	require.InDelta(t, 20500, record.GrossSalary, 0.01)
	require.InDelta(t, 20500, record.NetSalary, 0.01)
	require.Zero(t, record.Deductions)
	require.False(t, record.Paid)
}

func TestPayrollService_Generate_SkipsExistingRecords(t *testing.T) {
	env := setupPayrollTestEnv(t)

	emp := env.createEmployee(t, "Alice", 30000)
	env.markAttendance(t, emp.ID,
		time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
		models.AttendancePresent)

	created, err := env.service.Generate(4, 2026)
	require.NoError(t, err)
	require.Equal(t, 1, created)

	// A re-run must not duplicate or overwrite anything.
	created, err = env.service.Generate(4, 2026)
	require.NoError(t, err)
	require.Zero(t, created)

	var count int64
	require.NoError(t, env.db.Model(&models.SalaryRecord{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestPayrollService_Generate_InvalidPeriod(t *testing.T) {
	env := setupPayrollTestEnv(t)

	_, err := env.service.Generate(13, 2026)
	require.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = env.service.Generate(0, 2026)
	require.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestPayrollService_Generate_NoAttendanceMeansZeroGross(t *testing.T) {
	env := setupPayrollTestEnv(t)

	emp := env.createEmployee(t, "Bob", 25000)

	created, err := env.service.Generate(2, 2026)
	require.NoError(t, err)
	require.Equal(t, 1, created)

	var record models.SalaryRecord
	require.NoError(t, env.db.Where("employee_id = ?", emp.ID).First(&record).Error)
	require.Zero(t, record.GrossSalary)
}

func TestPayrollService_Report_Totals(t *testing.T) {
	env := setupPayrollTestEnv(t)

	alice := env.createEmployee(t, "Alice", 31000)
	bob := env.createEmployee(t, "Bob", 15500)

	for day := 1; day <= 10; day++ {
		date := time.Date(2026, time.January, day, 0, 0, 0, 0, time.UTC)
		env.markAttendance(t, alice.ID, date, models.AttendancePresent)
		env.markAttendance(t, bob.ID, date, models.AttendancePresent)
	}

	_, err := env.service.Generate(1, 2026)
	require.NoError(t, err)

	summary, err := env.service.Report(1, 2026)
	require.NoError(t, err)
	require.Len(t, summary.Records, 2)
	require.InDelta(t, 10000+5000, summary.TotalGross, 0.01)
	require.InDelta(t, summary.TotalGross, summary.TotalNet, 0.01)
}

func TestPayrollService_MarkPaid(t *testing.T) {
	env := setupPayrollTestEnv(t)

	emp := env.createEmployee(t, "Alice", 30000)
	env.markAttendance(t, emp.ID,
		time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		models.AttendancePresent)

	_, err := env.service.Generate(3, 2026)
	require.NoError(t, err)

	var record models.SalaryRecord
	require.NoError(t, env.db.Where("employee_id = ?", emp.ID).First(&record).Error)

	updated, err := env.service.MarkPaid(record.ID)
	require.NoError(t, err)
	require.True(t, updated.Paid)

	_, err = env.service.MarkPaid(9999)
	require.ErrorIs(t, err, ErrSalaryRecordNotFound)
}
