package models

import (
	"time"

	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusNotStarted TaskStatus = "Not Started"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

type Task struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	AssignedTo  *uint64        `gorm:"index" json:"assigned_to"`
	Category    TaskCategory   `gorm:"type:varchar(30);not null;default:'General'" json:"category"`
	Priority    TaskPriority   `gorm:"type:varchar(10);not null;default:'Medium'" json:"priority"`
	Status      TaskStatus     `gorm:"type:varchar(20);not null;default:'Not Started'" json:"status"`
	Progress    int            `gorm:"not null;default:0" json:"progress"`
	DueDate     *time.Time     `json:"due_date"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Assignee *Employee `gorm:"foreignKey:AssignedTo" json:"assignee,omitempty"`
}
