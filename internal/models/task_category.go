package models

import "fmt"

// TaskCategory partitions rotation fairness counts. The set is fixed;
// free-form category strings are rejected at the edges so a typo can
// never split an employee's counts across two buckets.
type TaskCategory string

const (
	CategoryLoading      TaskCategory = "Loading"
	CategoryDelivery     TaskCategory = "Delivery"
	CategoryQualityCheck TaskCategory = "Quality Check"
	CategoryPackaging    TaskCategory = "Packaging"
	CategoryMaintenance  TaskCategory = "Maintenance"
	CategoryGeneral      TaskCategory = "General"
)

// DefaultCategory is applied when no category is given.
const DefaultCategory = CategoryGeneral

// Categories returns all task categories in display order.
func Categories() []TaskCategory {
	return []TaskCategory{
		CategoryLoading,
		CategoryDelivery,
		CategoryQualityCheck,
		CategoryPackaging,
		CategoryMaintenance,
		CategoryGeneral,
	}
}

// ParseCategory maps a raw string onto the enum. An empty value falls
// back to DefaultCategory; anything else must match exactly.
func ParseCategory(raw string) (TaskCategory, error) {
	if raw == "" {
		return DefaultCategory, nil
	}
	for _, c := range Categories() {
		if string(c) == raw {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown task category %q", raw)
}
