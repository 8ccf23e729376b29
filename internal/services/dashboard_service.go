package services

import (
	"fmt"
	"time"

	"github.com/Ani07-05/brickdash/internal/constants"
	"github.com/Ani07-05/brickdash/internal/models"
	"github.com/Ani07-05/brickdash/internal/repository"
	"gorm.io/gorm"
)

// DashboardService aggregates the counters the dashboard widgets show.
type DashboardService struct {
	db             *gorm.DB
	orderRepo      repository.OrderRepository
	productRepo    repository.ProductRepository
	taskRepo       repository.TaskRepository
	attendanceRepo repository.AttendanceRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(db *gorm.DB, orderRepo repository.OrderRepository, productRepo repository.ProductRepository, taskRepo repository.TaskRepository, attendanceRepo repository.AttendanceRepository) *DashboardService {
	return &DashboardService{
		db:             db,
		orderRepo:      orderRepo,
		productRepo:    productRepo,
		taskRepo:       taskRepo,
		attendanceRepo: attendanceRepo,
	}
}

// DashboardStats is the dashboard widget payload.
type DashboardStats struct {
	ActiveEmployees int64            `json:"active_employees"`
	TotalProducts   int64            `json:"total_products"`
	TotalOrders     int64            `json:"total_orders"`
	PendingOrders   int64            `json:"pending_orders"`
	PresentToday    int64            `json:"present_today"`
	PendingTasks    int64            `json:"pending_tasks"`
	InventoryValue  float64          `json:"inventory_value"`
	LowStock        []models.Product `json:"low_stock"`
	RecentOrders    []models.Order   `json:"recent_orders"`
}

// Stats gathers all dashboard counters for the given day.
func (s *DashboardService) Stats(now time.Time) (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.Model(&models.Employee{}).
		Where("is_active = ?", true).
		Count(&stats.ActiveEmployees).Error; err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}

	if err := s.db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	if err := s.db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	if err := s.db.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusPending).
		Count(&stats.PendingOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending orders: %w", err)
	}

	presentToday, err := s.attendanceRepo.CountByDateAndStatus(NormalizeDate(now), models.AttendancePresent)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance: %w", err)
	}
	stats.PresentToday = presentToday

	pendingTasks, err := s.taskRepo.CountPending()
	if err != nil {
		return nil, fmt.Errorf("failed to count pending tasks: %w", err)
	}
	stats.PendingTasks = pendingTasks

	var inventoryValue *float64
	if err := s.db.Model(&models.Product{}).
		Select("SUM(price_per_unit * stock_quantity)").
		Scan(&inventoryValue).Error; err != nil {
		return nil, fmt.Errorf("failed to compute inventory value: %w", err)
	}
	if inventoryValue != nil {
		stats.InventoryValue = *inventoryValue
	}

	lowStock, err := s.productRepo.ListLowStock(constants.LowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock: %w", err)
	}
	stats.LowStock = lowStock

	recentOrders, err := s.orderRepo.ListRecent(5)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent orders: %w", err)
	}
	stats.RecentOrders = recentOrders

	return stats, nil
}
