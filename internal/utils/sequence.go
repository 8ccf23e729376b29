package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Ani07-05/brickdash/internal/constants"
	"github.com/Ani07-05/brickdash/internal/models"
	"gorm.io/gorm"
)

// NextEmployeeCode generates the next sequential BRKnnn code by
// scanning existing codes, skipping any that do not match the prefix
// pattern (legacy rows imported from spreadsheets).
func NextEmployeeCode(db *gorm.DB) (string, error) {
	var codes []string
	if err := db.Model(&models.Employee{}).
		Where("employee_code LIKE ?", constants.EmployeeCodePrefix+"%").
		Pluck("employee_code", &codes).Error; err != nil {
		return "", fmt.Errorf("failed to list employee codes: %w", err)
	}

	max := 0
	for _, code := range codes {
		n, err := strconv.Atoi(strings.TrimPrefix(code, constants.EmployeeCodePrefix))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}

	return fmt.Sprintf("%s%03d", constants.EmployeeCodePrefix, max+1), nil
}

// NextOrderNumber generates the next sequential ORDnnnn number,
// starting from ORD1001 on an empty table.
func NextOrderNumber(db *gorm.DB) (string, error) {
	var numbers []string
	if err := db.Model(&models.Order{}).
		Where("order_number LIKE ?", constants.OrderNumberPrefix+"%").
		Pluck("order_number", &numbers).Error; err != nil {
		return "", fmt.Errorf("failed to list order numbers: %w", err)
	}

	max := constants.FirstOrderNumber - 1
	for _, number := range numbers {
		n, err := strconv.Atoi(strings.TrimPrefix(number, constants.OrderNumberPrefix))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}

	return fmt.Sprintf("%s%d", constants.OrderNumberPrefix, max+1), nil
}
