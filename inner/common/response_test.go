package common

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// гоняет ошибку через ErrorResponse и возвращает статус с телом
func runErrorResponse(t *testing.T, err error) (int, Response[any]) {
	t.Helper()
	app := fiber.New()
	app.Get("/fail", func(ctx *fiber.Ctx) error {
		return ErrorResponse(ctx, err)
	})

	resp, testErr := app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, testErr)

	var body Response[any]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestErrorResponse_StatusMapping(t *testing.T) {
	t.Run("Validation error maps to 400 with data", func(t *testing.T) {
		status, body := runErrorResponse(t, RequestValidationError{
			Message: "Data validation error",
			Data:    []string{"Salary must be between $70,000 and $90,000"},
		})

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.False(t, body.Success)
		assert.Equal(t, "Data validation error", body.Message)
		assert.NotNil(t, body.Data)
	})

	t.Run("Already exists maps to 400", func(t *testing.T) {
		status, body := runErrorResponse(t, AlreadyExistsError{Message: "grade level with name LVL1 already exists"})
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "grade level with name LVL1 already exists", body.Message)
	})

	t.Run("Not found maps to 404", func(t *testing.T) {
		status, _ := runErrorResponse(t, NewNotFoundError("employee with id x not found"))
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("In use maps to 409", func(t *testing.T) {
		status, body := runErrorResponse(t, NewInUseError("Cannot delete grade level with assigned employees"))
		assert.Equal(t, fiber.StatusConflict, status)
		assert.Equal(t, "Cannot delete grade level with assigned employees", body.Message)
	})

	t.Run("Unknown error maps to 500", func(t *testing.T) {
		status, _ := runErrorResponse(t, errors.New("boom"))
		assert.Equal(t, fiber.StatusInternalServerError, status)
	})
}

func TestOkResponse_Envelope(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(ctx *fiber.Ctx) error {
		return OkResponse(ctx, []string{"France"})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body Response[[]string]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Empty(t, body.Message)
	assert.Equal(t, []string{"France"}, body.Data)
}
