package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/Ani07-05/brickdash/internal/models"
	"github.com/Ani07-05/brickdash/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type rotationTestEnv struct {
	db      *gorm.DB
	service *RotationService
}

func setupRotationTestEnv(t *testing.T) rotationTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Employee{},
		&models.RotationEvent{},
	)
	require.NoError(t, err)

	rotationRepo := repository.NewRotationRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	service := NewRotationService(rotationRepo, employeeRepo)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return rotationTestEnv{db: db, service: service}
}

func (env rotationTestEnv) createEmployee(t *testing.T, name string) models.Employee {
	t.Helper()

	emp := models.Employee{
		Code:       "BRK-" + name,
		Name:       name,
		Role:       "Worker",
		IsActive:   true,
		JoinedDate: time.Now(),
	}
	require.NoError(t, env.db.Create(&emp).Error)
	return emp
}

func (env rotationTestEnv) logEvent(t *testing.T, employeeID uint64, category models.TaskCategory, at time.Time) {
	t.Helper()

	event := models.RotationEvent{
		EmployeeID: employeeID,
		Category:   category,
		CreatedAt:  at,
	}
	require.NoError(t, env.db.Create(&event).Error)
}

func TestRotationService_Suggest_PrefersLeastLoaded(t *testing.T) {
	env := setupRotationTestEnv(t)
	now := time.Now()

	alice := env.createEmployee(t, "Alice")
	bob := env.createEmployee(t, "Bob")
	carol := env.createEmployee(t, "Carol")

	// Bob carries three Loading assignments this week, Carol one,
	// Alice none.
	for i := 0; i < 3; i++ {
		env.logEvent(t, bob.ID, models.CategoryLoading, now.Add(-time.Duration(i+1)*time.Hour))
	}
	env.logEvent(t, carol.ID, models.CategoryLoading, now.Add(-2*time.Hour))

	suggestion, err := env.service.Suggest("Loading", now)
	require.NoError(t, err)
	require.Equal(t, alice.ID, suggestion.Suggested.Employee.ID)
	require.Equal(t, models.CategoryLoading, suggestion.Category)

	ranked, err := env.service.Rank(models.CategoryLoading, now)
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	require.Equal(t, alice.ID, ranked[0].Employee.ID)
	require.Equal(t, carol.ID, ranked[1].Employee.ID)
	require.Equal(t, bob.ID, ranked[2].Employee.ID)
}

func TestRotationService_Suggest_ReadOnly(t *testing.T) {
	env := setupRotationTestEnv(t)
	now := time.Now()

	env.createEmployee(t, "Alice")
	env.createEmployee(t, "Bob")

	first, err := env.service.Suggest("Delivery", now)
	require.NoError(t, err)

	second, err := env.service.Suggest("Delivery", now)
	require.NoError(t, err)

	require.Equal(t, first.Suggested.Employee.ID, second.Suggested.Employee.ID)

	var eventCount int64
	require.NoError(t, env.db.Model(&models.RotationEvent{}).Count(&eventCount).Error)
	require.Zero(t, eventCount)
}

func TestRotationService_LogAssignment_ShiftsSuggestion(t *testing.T) {
	env := setupRotationTestEnv(t)
	now := time.Now()

	alice := env.createEmployee(t, "Alice")
	carol := env.createEmployee(t, "Carol")

	env.logEvent(t, carol.ID, models.CategoryLoading, now.Add(-3*time.Hour))

	suggestion, err := env.service.Suggest("Loading", now)
	require.NoError(t, err)
	require.Equal(t, alice.ID, suggestion.Suggested.Employee.ID)

	_, err = env.service.LogAssignment(alice.ID, "Loading")
	require.NoError(t, err)

	// Alice and Carol now tie on counts; Carol's assignment is older,
	// so she is favored next.
	after, err := env.service.Suggest("Loading", now.Add(time.Minute))
	require.NoError(t, err)
	require.Equal(t, carol.ID, after.Suggested.Employee.ID)
}

func TestRotationService_LogAssignment_AppendsOneEvent(t *testing.T) {
	env := setupRotationTestEnv(t)

	alice := env.createEmployee(t, "Alice")

	event, err := env.service.LogAssignment(alice.ID, "Packaging")
	require.NoError(t, err)
	require.Equal(t, alice.ID, event.EmployeeID)
	require.Equal(t, models.CategoryPackaging, event.Category)

	var eventCount int64
	require.NoError(t, env.db.Model(&models.RotationEvent{}).Count(&eventCount).Error)
	require.EqualValues(t, 1, eventCount)
}

func TestRotationService_LogAssignment_UnknownEmployee(t *testing.T) {
	env := setupRotationTestEnv(t)

	_, err := env.service.LogAssignment(9999, "Loading")
	require.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestRotationService_LogAssignment_UnknownCategory(t *testing.T) {
	env := setupRotationTestEnv(t)

	alice := env.createEmployee(t, "Alice")

	_, err := env.service.LogAssignment(alice.ID, "Firefighting")
	require.ErrorIs(t, err, ErrUnknownCategory)
}

func TestRotationService_WindowExcludesOldEvents(t *testing.T) {
	env := setupRotationTestEnv(t)
	now := time.Now()

	dave := env.createEmployee(t, "Dave")
	erin := env.createEmployee(t, "Erin")

	// Dave was hammered last month; none of it counts this week.
	for i := 0; i < 5; i++ {
		env.logEvent(t, dave.ID, models.CategoryLoading, now.Add(-8*24*time.Hour))
	}
	env.logEvent(t, erin.ID, models.CategoryLoading, now.Add(-time.Hour))

	ranked, err := env.service.Rank(models.CategoryLoading, now)
	require.NoError(t, err)
	require.Equal(t, dave.ID, ranked[0].Employee.ID)
	require.EqualValues(t, 0, ranked[0].CategoryCount)
	require.EqualValues(t, 0, ranked[0].TotalCount)

	// Recency still reflects the full history.
	require.NotNil(t, ranked[0].LastAssigned)
}

func TestRotationService_NeverAssignedRanksFirst(t *testing.T) {
	env := setupRotationTestEnv(t)
	now := time.Now()

	fred := env.createEmployee(t, "Fred")
	gina := env.createEmployee(t, "Gina")

	// Fred's only event is outside the window, so counts tie at zero.
	// Gina has no history at all and wins the recency comparison.
	env.logEvent(t, fred.ID, models.CategoryDelivery, now.Add(-10*24*time.Hour))

	ranked, err := env.service.Rank(models.CategoryDelivery, now)
	require.NoError(t, err)
	require.Equal(t, gina.ID, ranked[0].Employee.ID)
	require.Nil(t, ranked[0].LastAssigned)
	require.Equal(t, fred.ID, ranked[1].Employee.ID)
}

func TestRotationService_TotalCountBreaksCategoryTie(t *testing.T) {
	env := setupRotationTestEnv(t)
	now := time.Now()

	hank := env.createEmployee(t, "Hank")
	iris := env.createEmployee(t, "Iris")

	// Both have one Loading event this week, but Hank also carries two
	// Delivery events, so Iris is less loaded overall.
	env.logEvent(t, hank.ID, models.CategoryLoading, now.Add(-time.Hour))
	env.logEvent(t, hank.ID, models.CategoryDelivery, now.Add(-2*time.Hour))
	env.logEvent(t, hank.ID, models.CategoryDelivery, now.Add(-3*time.Hour))
	env.logEvent(t, iris.ID, models.CategoryLoading, now.Add(-time.Hour))

	ranked, err := env.service.Rank(models.CategoryLoading, now)
	require.NoError(t, err)
	require.Equal(t, iris.ID, ranked[0].Employee.ID)
	require.EqualValues(t, 1, ranked[0].TotalCount)
	require.EqualValues(t, 3, ranked[1].TotalCount)
}

func TestRotationService_Suggest_SkipsInactiveEmployees(t *testing.T) {
	env := setupRotationTestEnv(t)
	now := time.Now()

	retired := env.createEmployee(t, "Retired")
	require.NoError(t, env.db.Model(&models.Employee{}).
		Where("id = ?", retired.ID).
		Update("is_active", false).Error)

	active := env.createEmployee(t, "Active")
	env.logEvent(t, active.ID, models.CategoryLoading, now.Add(-time.Hour))

	suggestion, err := env.service.Suggest("Loading", now)
	require.NoError(t, err)
	require.Equal(t, active.ID, suggestion.Suggested.Employee.ID)
}

func TestRotationService_Suggest_EmptyDirectory(t *testing.T) {
	env := setupRotationTestEnv(t)

	_, err := env.service.Suggest("Loading", time.Now())
	require.ErrorIs(t, err, ErrNoEligibleCandidates)
}

func TestRotationService_Suggest_UnknownCategory(t *testing.T) {
	env := setupRotationTestEnv(t)

	env.createEmployee(t, "Alice")

	_, err := env.service.Suggest("Firefighting", time.Now())
	require.ErrorIs(t, err, ErrUnknownCategory)
}

func TestRotationService_Suggest_EmptyCategoryDefaultsToGeneral(t *testing.T) {
	env := setupRotationTestEnv(t)

	env.createEmployee(t, "Alice")

	suggestion, err := env.service.Suggest("", time.Now())
	require.NoError(t, err)
	require.Equal(t, models.CategoryGeneral, suggestion.Category)
}

func TestRotationService_Suggest_LimitsRunnersUp(t *testing.T) {
	env := setupRotationTestEnv(t)

	for i := 0; i < 8; i++ {
		env.createEmployee(t, fmt.Sprintf("Worker%d", i))
	}

	suggestion, err := env.service.Suggest("Loading", time.Now())
	require.NoError(t, err)
	require.Len(t, suggestion.Candidates, 5)
}

func TestRotationService_Matrix(t *testing.T) {
	env := setupRotationTestEnv(t)
	now := time.Now()

	alice := env.createEmployee(t, "Alice")
	bob := env.createEmployee(t, "Bob")

	env.logEvent(t, bob.ID, models.CategoryLoading, now.Add(-time.Hour))
	env.logEvent(t, bob.ID, models.CategoryDelivery, now.Add(-2*time.Hour))
	env.logEvent(t, alice.ID, models.CategoryLoading, now.Add(-3*time.Hour))

	matrix, err := env.service.BuildMatrix(now)
	require.NoError(t, err)
	require.Equal(t, models.Categories(), matrix.Categories)
	require.Len(t, matrix.Rows, 2)

	// Rows come back in display-name order.
	require.Equal(t, alice.ID, matrix.Rows[0].Employee.ID)
	require.Equal(t, bob.ID, matrix.Rows[1].Employee.ID)

	require.EqualValues(t, 1, matrix.Rows[0].Total)
	require.EqualValues(t, 2, matrix.Rows[1].Total)
	require.EqualValues(t, 1, matrix.Rows[1].Counts[models.CategoryLoading])
	require.EqualValues(t, 1, matrix.Rows[1].Counts[models.CategoryDelivery])

	// Each category's favorite agrees with the suggestion engine.
	for _, category := range matrix.Categories {
		suggestion, err := env.service.Suggest(string(category), now)
		require.NoError(t, err)
		require.Equal(t, suggestion.Suggested.Employee.ID, matrix.Favorites[category].ID,
			"favorite mismatch for %s", category)
	}
}
