package models

import "time"

// RotationEvent is one entry in the assignment ledger: employee E was
// given a task of the given category at CreatedAt. Events are never
// updated or deleted, which keeps the ledger usable for historical
// fairness audits.
type RotationEvent struct {
	ID         uint64       `gorm:"primarykey" json:"id"`
	EmployeeID uint64       `gorm:"not null;index:idx_rotation_employee_created" json:"employee_id"`
	Category   TaskCategory `gorm:"type:varchar(30);not null;default:'General';index" json:"category"`
	CreatedAt  time.Time    `gorm:"index:idx_rotation_employee_created" json:"created_at"`

	// Relations
	Employee Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}
