package info

import (
	"staffdir/inner/common"
	"staffdir/inner/web"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	server *web.Server
	cfg    common.Config
	store  StorageChecker
}

// StorageChecker проверка доступности файлового хранилища
type StorageChecker interface {
	Available() bool
}

func NewController(server *web.Server, cfg common.Config, store StorageChecker) *Controller {
	return &Controller{
		server: server,
		cfg:    cfg,
		store:  store,
	}
}

type InfoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
} // @name InfoResponse

type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
} // @name HealthResponse

func (c *Controller) RegisterRoutes() {
	// полный путь будет "/internal/info"
	c.server.GroupInternal.Get("/info", c.GetInfo)
	// полный путь будет "/internal/health"
	c.server.GroupInternal.Get("/health", c.GetHealth)
}

// GetInfo получение информации о приложении
func (c *Controller) GetInfo(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(&InfoResponse{
		Name:    c.cfg.AppName,
		Version: c.cfg.AppVersion,
	})
}

// GetHealth проверка работоспособности приложения.
// Недоступное хранилище не фатально (чтение вернёт значения
// по умолчанию, запись будет пропущена), но статус деградирует.
func (c *Controller) GetHealth(ctx *fiber.Ctx) error {
	health := HealthResponse{
		Status:  "OK",
		Storage: "OK",
	}

	if c.store == nil || !c.store.Available() {
		health.Status = "DEGRADED"
		health.Storage = "UNAVAILABLE"
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(&health)
	}

	return ctx.Status(fiber.StatusOK).JSON(&health)
}
