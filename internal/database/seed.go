package database

import (
	"fmt"
	"log"
	"time"

	"github.com/Ani07-05/brickdash/internal/models"
)

// Seed inserts sample catalog and workforce data when the database is
// empty, mirroring a freshly provisioned site.
func Seed() error {
	var count int64
	if err := DB.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check products: %w", err)
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{Name: "Red Bricks (Standard)", Category: "Bricks", PricePerUnit: 8, Unit: "piece", StockQuantity: 50000, Description: "Standard red clay bricks"},
		{Name: "Fly Ash Bricks", Category: "Bricks", PricePerUnit: 6, Unit: "piece", StockQuantity: 30000, Description: "Eco-friendly fly ash bricks"},
		{Name: "Cement Blocks", Category: "Blocks", PricePerUnit: 45, Unit: "piece", StockQuantity: 10000, Description: "Heavy duty cement blocks"},
		{Name: "Paver Blocks", Category: "Blocks", PricePerUnit: 35, Unit: "piece", StockQuantity: 15000, Description: "Interlocking paver blocks"},
		{Name: "Fire Bricks", Category: "Bricks", PricePerUnit: 25, Unit: "piece", StockQuantity: 5000, Description: "Heat resistant fire bricks"},
	}
	if err := DB.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	now := time.Now()
	employees := []models.Employee{
		{Code: "BRK011", Name: "Ravi", Role: "Worker", Phone: "9876543219", Address: "Chennai", Salary: 15000, IsActive: true, JoinedDate: now},
		{Code: "BRK012", Name: "Ramesh", Role: "Worker", Phone: "9876543218", Address: "Chennai", Salary: 15000, IsActive: true, JoinedDate: now},
		{Code: "BRK013", Name: "Selvam", Role: "Truck Driver", Phone: "9876543217", Address: "Chennai", Salary: 17000, IsActive: true, JoinedDate: now},
		{Code: "BRK014", Name: "Gopi", Role: "Supervisor", Phone: "9876543216", Address: "Chennai", Salary: 16000, IsActive: true, JoinedDate: now},
		{Code: "BRK015", Name: "Saravanan", Role: "Quality Checker", Phone: "9876543215", Address: "Chennai", Salary: 12000, IsActive: true, JoinedDate: now},
		{Code: "BRK016", Name: "Illa", Role: "Supervisor", Phone: "9876543214", Address: "Chennai", Salary: 14000, IsActive: false, JoinedDate: now},
		{Code: "BRK017", Name: "Vinoth", Role: "Security", Phone: "9876543213", Address: "Chennai", Salary: 25000, IsActive: true, JoinedDate: now},
		{Code: "BRK018", Name: "Dinesh", Role: "Loader", Phone: "9876543212", Address: "Chennai", Salary: 16000, IsActive: true, JoinedDate: now},
		{Code: "BRK019", Name: "Kumar", Role: "Loader", Phone: "9876543211", Address: "Chennai", Salary: 22000, IsActive: false, JoinedDate: now},
		{Code: "BRK020", Name: "Murugan", Role: "Security", Phone: "9876543210", Address: "Chennai", Salary: 12000, IsActive: true, JoinedDate: now},
	}
	if err := DB.Create(&employees).Error; err != nil {
		return fmt.Errorf("failed to seed employees: %w", err)
	}

	log.Println("Seeded sample products and employees")
	return nil
}
