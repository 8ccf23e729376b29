package dto

import (
	"time"

	"github.com/Ani07-05/brickdash/internal/models"
	"github.com/Ani07-05/brickdash/internal/services"
)

// CandidateDTO is one ranked employee with its fairness counts
type CandidateDTO struct {
	Employee      EmployeeDTO `json:"employee"`
	CategoryCount int64       `json:"category_count"`
	TotalCount    int64       `json:"total_count"`
	LastAssigned  *time.Time  `json:"last_assigned_at"`
}

// SuggestionDTO is the suggestion API response: the favored employee
// plus runners-up
type SuggestionDTO struct {
	Category   models.TaskCategory `json:"category"`
	Suggested  CandidateDTO        `json:"suggested_employee"`
	Candidates []CandidateDTO      `json:"candidates"`
}

// MatrixRowDTO is one employee's per-category window counts
type MatrixRowDTO struct {
	Employee EmployeeDTO      `json:"employee"`
	Counts   map[string]int64 `json:"per_category_counts"`
	Total    int64            `json:"total"`
}

// MatrixDTO is the rotation matrix response
type MatrixDTO struct {
	Categories  []models.TaskCategory  `json:"categories"`
	Rows        []MatrixRowDTO         `json:"rows"`
	Favorites   map[string]EmployeeDTO `json:"favorites"`
	WindowStart time.Time              `json:"window_start"`
}

// ToCandidateDTO converts a ranked employee to its response shape
func ToCandidateDTO(candidate services.RankedEmployee) CandidateDTO {
	return CandidateDTO{
		Employee:      ToEmployeeDTO(candidate.Employee),
		CategoryCount: candidate.CategoryCount,
		TotalCount:    candidate.TotalCount,
		LastAssigned:  candidate.LastAssigned,
	}
}

// ToSuggestionDTO converts a suggestion to its response shape
func ToSuggestionDTO(s services.Suggestion) SuggestionDTO {
	candidates := make([]CandidateDTO, len(s.Candidates))
	for i, c := range s.Candidates {
		candidates[i] = ToCandidateDTO(c)
	}
	return SuggestionDTO{
		Category:   s.Category,
		Suggested:  ToCandidateDTO(s.Suggested),
		Candidates: candidates,
	}
}

// ToMatrixDTO converts a matrix to its response shape
func ToMatrixDTO(m services.Matrix) MatrixDTO {
	rows := make([]MatrixRowDTO, len(m.Rows))
	for i, row := range m.Rows {
		counts := make(map[string]int64, len(row.Counts))
		for category, n := range row.Counts {
			counts[string(category)] = n
		}
		rows[i] = MatrixRowDTO{
			Employee: ToEmployeeDTO(row.Employee),
			Counts:   counts,
			Total:    row.Total,
		}
	}

	favorites := make(map[string]EmployeeDTO, len(m.Favorites))
	for category, emp := range m.Favorites {
		favorites[string(category)] = ToEmployeeDTO(emp)
	}

	return MatrixDTO{
		Categories:  m.Categories,
		Rows:        rows,
		Favorites:   favorites,
		WindowStart: m.WindowStart,
	}
}
