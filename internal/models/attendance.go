package models

import "time"

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceHalfDay AttendanceStatus = "Half-day"
	AttendanceLeave   AttendanceStatus = "Leave"
)

type Shift string

const (
	ShiftDay   Shift = "Day"
	ShiftNight Shift = "Night"
)

// Attendance holds one record per employee per calendar day. The date
// is stored at midnight UTC so the uniqueness constraint works across
// drivers.
type Attendance struct {
	ID         uint64           `gorm:"primarykey" json:"id"`
	EmployeeID uint64           `gorm:"not null;uniqueIndex:idx_attendance_employee_date" json:"employee_id"`
	Date       time.Time        `gorm:"not null;uniqueIndex:idx_attendance_employee_date" json:"date"`
	Status     AttendanceStatus `gorm:"type:varchar(20);not null;default:'Present'" json:"status"`
	Shift      Shift            `gorm:"type:varchar(10);not null;default:'Day'" json:"shift"`
	Notes      string           `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`

	// Relations
	Employee Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}
