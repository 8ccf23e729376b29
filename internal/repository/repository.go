package repository

import (
	"time"

	"github.com/Ani07-05/brickdash/internal/models"
)

// RotationRepository defines the interface for the assignment ledger.
// The ledger is append-only: no update or delete is exposed.
type RotationRepository interface {
	// Record appends one assignment event
	Record(event *models.RotationEvent) error

	// CountSince counts an employee's events at or after windowStart.
	// A nil category counts across all categories.
	CountSince(employeeID uint64, category *models.TaskCategory, windowStart time.Time) (int64, error)

	// CountsSince returns (employee, category) -> count for all events
	// at or after windowStart, in a single grouped query
	CountsSince(windowStart time.Time) ([]CategoryCount, error)

	// LastAssignedAt returns the employee's most recent event timestamp
	// across all categories, or nil when no events exist
	LastAssignedAt(employeeID uint64) (*time.Time, error)

	// LastAssignments returns the most recent event timestamp per
	// employee across all categories
	LastAssignments() ([]LastAssignment, error)
}

// CategoryCount is one row of the grouped window aggregation
type CategoryCount struct {
	EmployeeID uint64
	Category   models.TaskCategory
	Count      int64
}

// LastAssignment is one row of the per-employee recency aggregation
type LastAssignment struct {
	EmployeeID uint64
	AssignedAt time.Time
}

// EmployeeRepository defines the interface for employee data access
type EmployeeRepository interface {
	// Create creates a new employee
	Create(employee *models.Employee) error

	// FindByID finds an employee by ID
	FindByID(id uint64) (*models.Employee, error)

	// List returns all employees, newest first
	List() ([]models.Employee, error)

	// ListActive returns active employees ordered by display name
	ListActive() ([]models.Employee, error)

	// Update updates an employee
	Update(employee *models.Employee) error

	// Delete soft deletes an employee
	Delete(id uint64) error
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(product *models.Product) error
	FindByID(id uint64) (*models.Product, error)
	List() ([]models.Product, error)
	ListLowStock(threshold int) ([]models.Product, error)
	Update(product *models.Product) error
	Delete(id uint64) error
}

// OrderFilter holds filtering options for listing orders
type OrderFilter struct {
	Status   *models.OrderStatus
	Page     int
	PageSize int
}

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	Create(order *models.Order) error
	FindByID(id uint64) (*models.Order, error)
	List(filter OrderFilter) ([]models.Order, int64, error)
	ListRecent(limit int) ([]models.Order, error)
	Update(order *models.Order) error
	Delete(id uint64) error
}

// InventoryRepository defines the interface for stock logs and
// production batches
type InventoryRepository interface {
	// AppendLog records one stock adjustment; logs are append-only
	AppendLog(entry *models.InventoryLog) error

	// ListLogs returns recent adjustments, newest first
	ListLogs(limit int) ([]models.InventoryLog, error)

	// CreateBatch creates a production batch
	CreateBatch(batch *models.InventoryBatch) error

	// FindBatch finds a batch by its public batch id
	FindBatch(batchID string) (*models.InventoryBatch, error)

	// ListBatches returns batches, optionally filtered by stage
	ListBatches(stage *models.BatchStage) ([]models.InventoryBatch, error)

	// UpdateBatch updates a batch
	UpdateBatch(batch *models.InventoryBatch) error
}

// AttendanceRepository defines the interface for attendance data access
type AttendanceRepository interface {
	// Upsert saves a record, replacing any existing one for the same
	// employee and date
	Upsert(record *models.Attendance) error

	// FindByEmployeeAndDate returns the record for one employee-day
	FindByEmployeeAndDate(employeeID uint64, date time.Time) (*models.Attendance, error)

	// ListByDate returns all records for a date
	ListByDate(date time.Time) ([]models.Attendance, error)

	// ListRecent returns recent records, newest first
	ListRecent(limit int) ([]models.Attendance, error)

	// CountByStatusInMonth counts an employee's records in a month
	// matching any of the given statuses
	CountByStatusInMonth(employeeID uint64, year, month int, statuses []models.AttendanceStatus) (int64, error)

	// CountByDateAndStatus counts records on one date with a status
	CountByDateAndStatus(date time.Time, status models.AttendanceStatus) (int64, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(task *models.Task) error
	FindByID(id uint64, preload ...string) (*models.Task, error)
	List(status *models.TaskStatus) ([]models.Task, error)
	CountPending() (int64, error)
	Update(task *models.Task) error
	Delete(id uint64) error
}

// PayrollRepository defines the interface for salary record access
type PayrollRepository interface {
	Create(record *models.SalaryRecord) error
	Find(employeeID uint64, month, year int) (*models.SalaryRecord, error)
	FindByID(id uint64) (*models.SalaryRecord, error)
	ListByPeriod(month, year int) ([]models.SalaryRecord, error)
	Update(record *models.SalaryRecord) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// CreateWithEmployee creates a user and their linked employee
	// record within a single transaction
	CreateWithEmployee(user *models.User, employee *models.Employee) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}
