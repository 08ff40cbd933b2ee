package employee

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"staffdir/inner/common"
	"staffdir/inner/web"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) CreateEmployee(request CreateRequest) (Response, error) {
	args := m.Called(request)
	return args.Get(0).(Response), args.Error(1)
}

func (m *MockService) UpdateEmployee(id string, request UpdateRequest) (Response, error) {
	args := m.Called(id, request)
	return args.Get(0).(Response), args.Error(1)
}

func (m *MockService) DeleteById(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockService) FindById(id string) (Response, error) {
	args := m.Called(id)
	return args.Get(0).(Response), args.Error(1)
}

func (m *MockService) FindAll() []Response {
	args := m.Called()
	return args.Get(0).([]Response)
}

func (m *MockService) Stats() StatsResponse {
	args := m.Called()
	return args.Get(0).(StatsResponse)
}

func (m *MockService) ExportCSV() string {
	args := m.Called()
	return args.String(0)
}

// setupTestController - вспомогательная функция для создания тестового контроллера
func setupTestController(t *testing.T) (*MockService, *fiber.App) {
	t.Helper()
	app := fiber.New()

	server := &web.Server{
		App:        app,
		GroupApiV1: app.Group("/api/v1"),
	}

	mockService := &MockService{}

	logger := common.NewLogger(common.Config{
		AppName:        "test_app",
		AppVersion:     "1.0.0",
		LogLevel:       "DEBUG",
		LogDevelopMode: true,
	})

	controller := NewController(server, mockService, logger)
	controller.RegisterRoutes()

	return mockService, app
}

func TestController_CreateEmployee_Success(t *testing.T) {
	mockService, app := setupTestController(t)

	createRequest := CreateRequest{
		Name:       "Ada Lovelace",
		Email:      "ada@example.com",
		Role:       "Engineer",
		Department: "R&D",
		Country:    "United Kingdom",
		Address:    "12 Analytical Engine Street, London",
		Salary:     80000,
		JoinDate:   "2024-06-01",
	}
	expected := Response{Id: "emp-1", Name: "Ada Lovelace"}
	mockService.On("CreateEmployee", createRequest).Return(expected, nil)

	requestBody, _ := json.Marshal(createRequest)
	req := httptest.NewRequest("POST", "/api/v1/employees", bytes.NewReader(requestBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope common.Response[Response]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "emp-1", envelope.Data.Id)
	mockService.AssertExpectations(t)
}

func TestController_CreateEmployee_ValidationError(t *testing.T) {
	mockService, app := setupTestController(t)

	mockService.On("CreateEmployee", mock.Anything).Return(Response{}, common.RequestValidationError{
		Message: "Data validation error",
		Data: []map[string]string{
			{"field": "Salary", "message": "Salary must be between $70,000 and $90,000"},
		},
	})

	req := httptest.NewRequest("POST", "/api/v1/employees", bytes.NewReader([]byte(`{"name":"Ada"}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Data validation error")
	assert.Contains(t, string(body), "Salary must be between $70,000 and $90,000")
}

func TestController_CreateEmployee_MalformedBody(t *testing.T) {
	_, app := setupTestController(t)

	req := httptest.NewRequest("POST", "/api/v1/employees", bytes.NewReader([]byte(`{broken`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestController_GetEmployee_NotFound(t *testing.T) {
	mockService, app := setupTestController(t)

	mockService.On("FindById", "missing").
		Return(Response{}, common.NewNotFoundError("employee with id missing not found"))

	req := httptest.NewRequest("GET", "/api/v1/employees/missing", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestController_FindAllEmployees(t *testing.T) {
	mockService, app := setupTestController(t)

	mockService.On("FindAll").Return([]Response{
		{Id: "emp-1", Name: "Ada Lovelace"},
		{Id: "emp-2", Name: "Grace Hopper"},
	})

	req := httptest.NewRequest("GET", "/api/v1/employees", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope common.Response[[]Response]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Len(t, envelope.Data, 2)
	assert.Equal(t, "Grace Hopper", envelope.Data[1].Name)
}

func TestController_DeleteEmployee(t *testing.T) {
	mockService, app := setupTestController(t)

	mockService.On("DeleteById", "emp-1").Return(nil)

	req := httptest.NewRequest("DELETE", "/api/v1/employees/emp-1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestController_GetStats(t *testing.T) {
	mockService, app := setupTestController(t)

	mockService.On("Stats").Return(StatsResponse{
		Total:       2,
		Departments: map[string]int{"R&D": 2},
		Countries:   map[string]int{"United Kingdom": 2},
		GradeLevels: map[string]int{"LVL3": 1},
		RecentJoins: 1,
	})

	req := httptest.NewRequest("GET", "/api/v1/employees/stats", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope common.Response[StatsResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, 2, envelope.Data.Total)
	assert.Equal(t, 1, envelope.Data.RecentJoins)
}

func TestController_ExportEmployees(t *testing.T) {
	mockService, app := setupTestController(t)

	mockService.On("ExportCSV").Return("Name,Email\n\"Ada Lovelace\",\"ada@example.com\"")

	req := httptest.NewRequest("GET", "/api/v1/employees/export", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "employees.csv")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"Ada Lovelace"`)
}
