package grade

import (
	"testing"

	"staffdir/inner/common"
	"staffdir/inner/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// объявляем структуру мок-счётчика сотрудников
type MockEmployeeCounter struct {
	mock.Mock
}

func (m *MockEmployeeCounter) CountByGradeLevel(name string) int {
	args := m.Called(name)
	return args.Int(0)
}

// Stub-счётчик для тестов, которым количество не важно
type StubEmployeeCounter struct {
	count int
}

func (s *StubEmployeeCounter) CountByGradeLevel(name string) int {
	return s.count
}

func newTestLogger() *common.Logger {
	return common.NewLogger(common.Config{
		AppName:        "test_app",
		AppVersion:     "1.0.0",
		LogLevel:       "DEBUG",
		LogDevelopMode: true,
	})
}

// вспомогательная функция: сервис поверх настоящего репозитория
// с пятью засеянными грейдами
func setupTestService(t *testing.T, counter EmployeeCounter) (*Service, *Repository) {
	t.Helper()
	repo := NewRepository(newTestStore(t))
	svc := NewService(repo, counter, validator.New(), newTestLogger())
	return svc, repo
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestService_CreateGradeLevel(t *testing.T) {
	t.Run("Successful grade level creation", func(t *testing.T) {
		svc, repo := setupTestService(t, &StubEmployeeCounter{})

		response, err := svc.CreateGradeLevel(CreateRequest{
			Name:        "LVL6",
			Description: "Principal Level",
			MinSalary:   floatPtr(120000),
			MaxSalary:   floatPtr(180000),
		})

		require.NoError(t, err)
		assert.NotEmpty(t, response.Id)
		assert.Equal(t, "LVL6", response.Name)
		assert.Len(t, repo.FindAll(), 6)
	})

	t.Run("Duplicate name is rejected case-insensitively", func(t *testing.T) {
		svc, repo := setupTestService(t, &StubEmployeeCounter{})

		_, err := svc.CreateGradeLevel(CreateRequest{
			Name:        "lvl1",
			Description: "Duplicate of the seeded entry",
		})

		require.Error(t, err)
		var existsErr common.AlreadyExistsError
		require.ErrorAs(t, err, &existsErr)
		assert.Equal(t, "grade level with name lvl1 already exists", existsErr.Message)
		// коллекция не изменилась
		assert.Len(t, repo.FindAll(), 5)
	})

	t.Run("Min salary above max salary is rejected", func(t *testing.T) {
		svc, _ := setupTestService(t, &StubEmployeeCounter{})

		_, err := svc.CreateGradeLevel(CreateRequest{
			Name:        "LVL7",
			Description: "Broken range",
			MinSalary:   floatPtr(90000),
			MaxSalary:   floatPtr(70000),
		})

		require.Error(t, err)
		var validationErr common.RequestValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Minimum salary cannot be greater than maximum salary", validationErr.Message)
	})

	t.Run("Validation error on short name", func(t *testing.T) {
		svc, _ := setupTestService(t, &StubEmployeeCounter{})

		_, err := svc.CreateGradeLevel(CreateRequest{Name: "L", Description: "x"})

		require.Error(t, err)
		var validationErr common.RequestValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Data validation error", validationErr.Message)
		assert.NotNil(t, validationErr.Data)
	})
}

func TestService_UpdateGradeLevel(t *testing.T) {
	t.Run("Successful partial update", func(t *testing.T) {
		svc, repo := setupTestService(t, &StubEmployeeCounter{})
		entity, found := repo.FindByName("LVL3")
		require.True(t, found)

		name := "LVL3-R"
		response, err := svc.UpdateGradeLevel(entity.Id, UpdateRequest{
			Name:      &name,
			MinSalary: floatPtr(70000),
			MaxSalary: floatPtr(90000),
		})

		require.NoError(t, err)
		assert.Equal(t, "LVL3-R", response.Name)
		// не переданное поле сохраняет прежнее значение
		assert.Equal(t, "Senior Level", response.Description)
	})

	t.Run("Rename to an existing name is rejected", func(t *testing.T) {
		svc, repo := setupTestService(t, &StubEmployeeCounter{})
		entity, found := repo.FindByName("LVL2")
		require.True(t, found)

		name := "lvl5"
		_, err := svc.UpdateGradeLevel(entity.Id, UpdateRequest{Name: &name})

		require.Error(t, err)
		var existsErr common.AlreadyExistsError
		assert.ErrorAs(t, err, &existsErr)
	})

	t.Run("Keeping own name is not a duplicate", func(t *testing.T) {
		svc, repo := setupTestService(t, &StubEmployeeCounter{})
		entity, found := repo.FindByName("LVL2")
		require.True(t, found)

		description := "Updated description"
		response, err := svc.UpdateGradeLevel(entity.Id, UpdateRequest{Description: &description})

		require.NoError(t, err)
		assert.Equal(t, "LVL2", response.Name)
		assert.Equal(t, "Updated description", response.Description)
	})

	t.Run("Merged salary range is validated", func(t *testing.T) {
		svc, repo := setupTestService(t, &StubEmployeeCounter{})
		entity, found := repo.FindByName("LVL4")
		require.True(t, found)

		_, err := svc.UpdateGradeLevel(entity.Id, UpdateRequest{
			MinSalary: floatPtr(200000),
			MaxSalary: floatPtr(100000),
		})

		require.Error(t, err)
		var validationErr common.RequestValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Minimum salary cannot be greater than maximum salary", validationErr.Message)
	})

	t.Run("Unknown id returns not found", func(t *testing.T) {
		svc, _ := setupTestService(t, &StubEmployeeCounter{})

		_, err := svc.UpdateGradeLevel("unknown", UpdateRequest{})

		var notFoundErr common.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})
}

func TestService_DeleteById(t *testing.T) {
	t.Run("Delete is blocked while grade level is in use", func(t *testing.T) {
		counter := new(MockEmployeeCounter)
		counter.On("CountByGradeLevel", "LVL1").Return(3)
		svc, repo := setupTestService(t, counter)

		entity, found := repo.FindByName("LVL1")
		require.True(t, found)

		err := svc.DeleteById(entity.Id)

		require.Error(t, err)
		var inUseErr common.InUseError
		require.ErrorAs(t, err, &inUseErr)
		assert.Equal(t, "Cannot delete grade level with assigned employees", inUseErr.Message)
		assert.Len(t, repo.FindAll(), 5)
		counter.AssertExpectations(t)
	})

	t.Run("Delete succeeds when no employees reference the grade", func(t *testing.T) {
		counter := new(MockEmployeeCounter)
		counter.On("CountByGradeLevel", "LVL5").Return(0)
		svc, repo := setupTestService(t, counter)

		entity, found := repo.FindByName("LVL5")
		require.True(t, found)

		require.NoError(t, svc.DeleteById(entity.Id))
		assert.Len(t, repo.FindAll(), 4)
	})

	t.Run("Unknown id returns not found", func(t *testing.T) {
		svc, _ := setupTestService(t, &StubEmployeeCounter{})

		err := svc.DeleteById("unknown")

		var notFoundErr common.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})
}

func TestService_EmployeeCount(t *testing.T) {
	counter := new(MockEmployeeCounter)
	counter.On("CountByGradeLevel", "LVL2").Return(7)
	svc, repo := setupTestService(t, counter)

	entity, found := repo.FindByName("LVL2")
	require.True(t, found)

	response, err := svc.EmployeeCount(entity.Id)

	require.NoError(t, err)
	assert.Equal(t, EmployeeCountResponse{GradeLevel: "LVL2", Count: 7}, response)

	_, err = svc.EmployeeCount("unknown")
	var notFoundErr common.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}
