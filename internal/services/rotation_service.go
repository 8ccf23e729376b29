package services

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/Ani07-05/brickdash/internal/constants"
	"github.com/Ani07-05/brickdash/internal/models"
	"github.com/Ani07-05/brickdash/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrNoEligibleCandidates = errors.New("no active employees available for assignment")
	ErrUnknownCategory      = errors.New("unknown task category")
	ErrEmployeeNotFound     = errors.New("employee not found")
)

// RotationService implements the fairness ranking engine over the
// assignment ledger. Rankings favor employees with the least recent
// workload inside a trailing window, so someone returning from leave
// rises back toward the top as their window counts decay to zero.
type RotationService struct {
	rotationRepo repository.RotationRepository
	employeeRepo repository.EmployeeRepository
	window       time.Duration
}

// NewRotationService creates a new RotationService with the default
// trailing window.
func NewRotationService(rotationRepo repository.RotationRepository, employeeRepo repository.EmployeeRepository) *RotationService {
	return &RotationService{
		rotationRepo: rotationRepo,
		employeeRepo: employeeRepo,
		window:       constants.RotationWindow,
	}
}

// RankedEmployee is one candidate with its computed fairness keys.
type RankedEmployee struct {
	Employee      models.Employee
	CategoryCount int64
	TotalCount    int64
	LastAssigned  *time.Time
}

// Suggestion is the ranking engine's output adapted for callers: the
// top candidate plus a short list of runners-up.
type Suggestion struct {
	Category   models.TaskCategory
	Suggested  RankedEmployee
	Candidates []RankedEmployee
}

// MatrixRow is one employee's window counts across every category.
type MatrixRow struct {
	Employee models.Employee
	Counts   map[models.TaskCategory]int64
	Total    int64
}

// Matrix is the dense employee-by-category report.
type Matrix struct {
	Categories  []models.TaskCategory
	Rows        []MatrixRow
	Favorites   map[models.TaskCategory]models.Employee
	WindowStart time.Time
}

// Rank returns all active employees ordered least-loaded first for the
// given category, with their computed counts attached.
func (s *RotationService) Rank(category models.TaskCategory, now time.Time) ([]RankedEmployee, error) {
	employees, counts, last, err := s.loadRankingData(now)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, ErrNoEligibleCandidates
	}
	return rankCandidates(category, employees, counts, last), nil
}

// Suggest runs the ranking engine and returns the top candidate plus
// the next few runners-up. It reads only; calling it twice with no
// intervening LogAssignment yields an identical result.
func (s *RotationService) Suggest(rawCategory string, now time.Time) (*Suggestion, error) {
	category, err := models.ParseCategory(rawCategory)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, rawCategory)
	}

	ranked, err := s.Rank(category, now)
	if err != nil {
		return nil, err
	}

	runners := ranked[1:]
	if len(runners) > constants.SuggestionCandidates {
		runners = runners[:constants.SuggestionCandidates]
	}

	return &Suggestion{
		Category:   category,
		Suggested:  ranked[0],
		Candidates: runners,
	}, nil
}

// LogAssignment appends one event to the ledger. This is the only
// mutation the rotation subsystem exposes, and it is what changes
// future Suggest results.
func (s *RotationService) LogAssignment(employeeID uint64, rawCategory string) (*models.RotationEvent, error) {
	category, err := models.ParseCategory(rawCategory)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, rawCategory)
	}

	if _, err := s.employeeRepo.FindByID(employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to verify employee: %w", err)
	}

	event := &models.RotationEvent{
		EmployeeID: employeeID,
		Category:   category,
	}
	if err := s.rotationRepo.Record(event); err != nil {
		return nil, fmt.Errorf("failed to record assignment: %w", err)
	}

	return event, nil
}

// BuildMatrix returns the dense employee-by-category count table for
// the trailing window, rows ordered by employee display name, plus the
// currently favored employee per category.
func (s *RotationService) BuildMatrix(now time.Time) (*Matrix, error) {
	employees, counts, last, err := s.loadRankingData(now)
	if err != nil {
		return nil, err
	}

	categories := models.Categories()

	rows := make([]MatrixRow, len(employees))
	for i, emp := range employees {
		row := MatrixRow{
			Employee: emp,
			Counts:   make(map[models.TaskCategory]int64, len(categories)),
		}
		for _, c := range categories {
			n := counts[emp.ID][c]
			row.Counts[c] = n
			row.Total += n
		}
		rows[i] = row
	}

	favorites := make(map[models.TaskCategory]models.Employee, len(categories))
	if len(employees) > 0 {
		for _, c := range categories {
			ranked := rankCandidates(c, employees, counts, last)
			favorites[c] = ranked[0].Employee
		}
	}

	return &Matrix{
		Categories:  categories,
		Rows:        rows,
		Favorites:   favorites,
		WindowStart: now.Add(-s.window),
	}, nil
}

// loadRankingData fetches everything ranking needs in three queries:
// the active employee directory, one grouped window aggregation of the
// ledger, and the per-employee all-time recency. Per-employee queries
// inside a loop would grow as employees times categories.
func (s *RotationService) loadRankingData(now time.Time) ([]models.Employee, map[uint64]map[models.TaskCategory]int64, map[uint64]time.Time, error) {
	employees, err := s.employeeRepo.ListActive()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list active employees: %w", err)
	}

	windowStart := now.Add(-s.window)
	rawCounts, err := s.rotationRepo.CountsSince(windowStart)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to aggregate assignment counts: %w", err)
	}

	counts := make(map[uint64]map[models.TaskCategory]int64)
	for _, cc := range rawCounts {
		if counts[cc.EmployeeID] == nil {
			counts[cc.EmployeeID] = make(map[models.TaskCategory]int64)
		}
		counts[cc.EmployeeID][cc.Category] = cc.Count
	}

	lastRows, err := s.rotationRepo.LastAssignments()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to fetch last assignments: %w", err)
	}

	last := make(map[uint64]time.Time, len(lastRows))
	for _, lr := range lastRows {
		last[lr.EmployeeID] = lr.AssignedAt
	}

	return employees, counts, last, nil
}

// rankCandidates orders employees least-loaded first: ascending
// category count, then total window count, then last-assigned time
// with never-assigned employees treated as the earliest possible
// timestamp, then employee id so equal inputs always produce the same
// output.
func rankCandidates(
	category models.TaskCategory,
	employees []models.Employee,
	counts map[uint64]map[models.TaskCategory]int64,
	last map[uint64]time.Time,
) []RankedEmployee {
	ranked := make([]RankedEmployee, len(employees))
	for i, emp := range employees {
		candidate := RankedEmployee{
			Employee:      emp,
			CategoryCount: counts[emp.ID][category],
		}
		for _, n := range counts[emp.ID] {
			candidate.TotalCount += n
		}
		if t, ok := last[emp.ID]; ok {
			candidate.LastAssigned = &t
		}
		ranked[i] = candidate
	}

	slices.SortFunc(ranked, func(a, b RankedEmployee) int {
		if c := cmp.Compare(a.CategoryCount, b.CategoryCount); c != 0 {
			return c
		}
		if c := cmp.Compare(a.TotalCount, b.TotalCount); c != 0 {
			return c
		}
		if c := compareLastAssigned(a.LastAssigned, b.LastAssigned); c != 0 {
			return c
		}
		return cmp.Compare(a.Employee.ID, b.Employee.ID)
	})

	return ranked
}

func compareLastAssigned(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return a.Compare(*b)
	}
}
