package web

import (
	"time"

	"staffdir/inner/common"

	_ "staffdir/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// структура веб-сервера
type Server struct {
	App *fiber.App
	// группа публичного API
	GroupApi fiber.Router
	// группа публичного API первой версии
	GroupApiV1 fiber.Router
	// группа непубличного API
	GroupInternal fiber.Router
}

// функция-конструктор
func NewServer(logger *common.Logger) *Server {

	// создаём новый веб-сервер
	app := fiber.New()

	// Middleware для восстановления от паники
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Middleware для добавления уникального ID к каждому запросу
	app.Use(requestid.New())

	// Middleware для логирования запросов
	app.Use(CustomMiddleware(logger.Logger))

	// Swagger UI
	app.Get("/swagger/*", swagger.New(GetSwaggerConfig()))

	groupInternal := app.Group("/internal")

	// Middleware для внутренних маршрутов
	groupInternal.Use(func(c *fiber.Ctx) error {
		// дополнительная проверка для внутренних маршрутов
		c.Set("X-Internal-API", "true")
		return c.Next()
	})

	// создаём группу "/api"
	groupApi := app.Group("/api")

	// создаём подгруппу "api/v1"
	groupApiV1 := groupApi.Group("/v1")

	// Middleware для API v1
	groupApiV1.Use(func(c *fiber.Ctx) error {
		// Добавляем заголовок версии API
		c.Set("X-API-Version", "v1")
		return c.Next()
	})

	return &Server{
		App:           app,
		GroupApi:      groupApi,
		GroupApiV1:    groupApiV1,
		GroupInternal: groupInternal,
	}
}

// GetSwaggerConfig конфигурация Swagger UI
func GetSwaggerConfig() swagger.Config {
	return swagger.Config{
		// URL для получения OpenAPI спецификации
		URL: "/swagger/doc.json",

		// Включить deep linking
		DeepLinking: true,

		// Настройки раскрытия разделов по умолчанию
		DocExpansion: "none",

		DefaultModelsExpandDepth: 1,
		DefaultModelExpandDepth:  1,
		DefaultModelRendering:    "model",

		SupportedSubmitMethods: []string{
			"get", "post", "put", "delete",
		},

		Layout: "StandaloneLayout",
	}
}

func CustomMiddleware(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		}
		// Добавляем в запись известные поля JSON-тела запроса
		if body := c.Body(); len(body) > 0 {
			fields = append(fields, common.ParseRequestBody(body)...)
		}

		// Логирование начала запроса
		logger.Info("Request started", fields...)

		// Выполняется следующий handler
		err := c.Next()

		// Логирование завершения запроса
		duration := time.Since(start)
		logger.Info("Request completed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", duration),
		)

		return err
	}
}
