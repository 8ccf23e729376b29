package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Ani07-05/brickdash/internal/models"
	"github.com/Ani07-05/brickdash/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidAssignee = errors.New("assignee does not reference an existing employee")
	ErrInvalidProgress = errors.New("progress must be between 0 and 100")
)

// TaskService handles task business logic. Creating or reassigning a
// task with an assignee also writes to the rotation ledger so future
// suggestions see the assignment. The two writes are not transactional;
// a caller that creates tasks through other channels must log
// assignments itself or the ledger diverges from reality.
type TaskService struct {
	taskRepo     repository.TaskRepository
	employeeRepo repository.EmployeeRepository
	rotation     *RotationService
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, employeeRepo repository.EmployeeRepository, rotation *RotationService) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		employeeRepo: employeeRepo,
		rotation:     rotation,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string
	Description string
	AssignedTo  *uint64
	Category    string
	Priority    models.TaskPriority
	Status      models.TaskStatus
	Progress    int
	DueDate     *time.Time
}

// UpdateTaskInput represents input for updating a task
type UpdateTaskInput struct {
	Title         *string
	Description   *string
	AssignedTo    *uint64
	ClearAssignee bool
	Category      *string
	Priority      *models.TaskPriority
	Status        *models.TaskStatus
	Progress      *int
	DueDate       *time.Time
	ClearDueDate  bool
}

// ListTasks returns tasks, optionally filtered by status
func (s *TaskService) ListTasks(status *models.TaskStatus) ([]models.Task, error) {
	tasks, err := s.taskRepo.List(status)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns a task with its assignee
func (s *TaskService) GetTask(taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID, "Assignee")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return task, nil
}

// CreateTask creates a new task. When the task carries an assignee the
// assignment is logged to the rotation ledger.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if input.Progress < 0 || input.Progress > 100 {
		return nil, ErrInvalidProgress
	}

	category, err := models.ParseCategory(input.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, input.Category)
	}

	if input.AssignedTo != nil {
		if err := s.verifyAssignee(*input.AssignedTo); err != nil {
			return nil, err
		}
	}

	if input.Status == "" {
		input.Status = models.TaskStatusNotStarted
	}
	if input.Priority == "" {
		input.Priority = models.PriorityMedium
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		AssignedTo:  input.AssignedTo,
		Category:    category,
		Priority:    input.Priority,
		Status:      input.Status,
		Progress:    input.Progress,
		DueDate:     input.DueDate,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if task.AssignedTo != nil {
		// Deliberately not transactional with the task insert; a stale
		// ledger entry is tolerated, a half-written one is not.
		if _, err := s.rotation.LogAssignment(*task.AssignedTo, string(category)); err != nil {
			log.Printf("task %d created but assignment not logged: %v", task.ID, err)
		}
	}

	return s.taskRepo.FindByID(task.ID, "Assignee")
}

// UpdateTask updates an existing task. A newly set assignee is logged
// to the rotation ledger; keeping the same assignee is not.
func (s *TaskService) UpdateTask(taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	previousAssignee := task.AssignedTo

	if input.Title != nil {
		if *input.Title == "" {
			return nil, ErrTitleRequired
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Category != nil {
		category, err := models.ParseCategory(*input.Category)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, *input.Category)
		}
		task.Category = category
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Progress != nil {
		if *input.Progress < 0 || *input.Progress > 100 {
			return nil, ErrInvalidProgress
		}
		task.Progress = *input.Progress
	}
	if input.ClearAssignee {
		task.AssignedTo = nil
	} else if input.AssignedTo != nil {
		if err := s.verifyAssignee(*input.AssignedTo); err != nil {
			return nil, err
		}
		task.AssignedTo = input.AssignedTo
	}
	if input.ClearDueDate {
		task.DueDate = nil
	} else if input.DueDate != nil {
		task.DueDate = input.DueDate
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	if task.AssignedTo != nil && (previousAssignee == nil || *previousAssignee != *task.AssignedTo) {
		if _, err := s.rotation.LogAssignment(*task.AssignedTo, string(task.Category)); err != nil {
			log.Printf("task %d reassigned but assignment not logged: %v", task.ID, err)
		}
	}

	return s.taskRepo.FindByID(task.ID, "Assignee")
}

// DeleteTask deletes a task. Rotation events for the task's assignee
// stay in the ledger; history is never rewritten.
func (s *TaskService) DeleteTask(taskID uint64) error {
	if _, err := s.taskRepo.FindByID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.taskRepo.Delete(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

func (s *TaskService) verifyAssignee(employeeID uint64) error {
	if _, err := s.employeeRepo.FindByID(employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidAssignee
		}
		return fmt.Errorf("failed to verify assignee: %w", err)
	}
	return nil
}
