package common

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"error"`
	Data    T      `json:"data,omitempty"`
} // @name Response

func ErrResponse(
	c *fiber.Ctx,
	code int,
	message string,
	data ...any,
) error {
	response := Response[any]{
		Success: false,
		Message: message,
	}
	if len(data) > 0 {
		response.Data = data[0]
	}
	return c.Status(code).JSON(response)
}

func OkResponse[T any](
	c *fiber.Ctx,
	data T,
) error {
	return c.JSON(&Response[T]{
		Success: true,
		Data:    data,
	})
}

// ErrorResponse подбирает HTTP-код по типу ошибки сервиса и формирует ответ.
// Ошибки валидации и дубликаты -> 400, "не найдено" -> 404,
// ссылочная целостность -> 409, всё остальное -> 500.
func ErrorResponse(ctx *fiber.Ctx, err error) error {
	var validationErr RequestValidationError
	if errors.As(err, &validationErr) {
		return ErrResponse(ctx, fiber.StatusBadRequest, validationErr.Message, validationErr.Data)
	}
	var existsErr AlreadyExistsError
	if errors.As(err, &existsErr) {
		return ErrResponse(ctx, fiber.StatusBadRequest, existsErr.Message)
	}
	var notFoundErr NotFoundError
	if errors.As(err, &notFoundErr) {
		return ErrResponse(ctx, fiber.StatusNotFound, notFoundErr.Message)
	}
	var inUseErr InUseError
	if errors.As(err, &inUseErr) {
		return ErrResponse(ctx, fiber.StatusConflict, inUseErr.Message)
	}
	return ErrResponse(ctx, fiber.StatusInternalServerError, err.Error())
}
