package constants

import "time"

// Session / context keys
const (
	ContextKeyUserID = "user_id"
)

// Authentication
const (
	MinPasswordLength = 8
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Task rotation
const (
	// RotationWindow is the trailing interval over which assignment
	// counts are considered recent for fairness ranking.
	RotationWindow = 7 * 24 * time.Hour

	// SuggestionCandidates is how many runners-up a suggestion carries
	// in addition to the top-ranked employee.
	SuggestionCandidates = 5
)

// Inventory
const (
	LowStockThreshold = 100
)

// Identifier prefixes
const (
	EmployeeCodePrefix = "BRK"
	OrderNumberPrefix  = "ORD"
	FirstOrderNumber   = 1001
)
