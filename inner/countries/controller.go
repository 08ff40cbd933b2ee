package countries

import (
	"staffdir/inner/common"
	"staffdir/inner/web"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	server           *web.Server
	countriesService Svc
}

// интерфейс сервиса countries.Service
type Svc interface {
	Countries() []string
}

func NewController(server *web.Server, countriesService Svc) *Controller {
	return &Controller{
		server:           server,
		countriesService: countriesService,
	}
}

// функция для регистрации маршрутов
func (c *Controller) RegisterRoutes() {
	// полный маршрут получится "/api/v1/countries"
	c.server.GroupApiV1.Get("/countries", c.GetCountries)
}

// GetCountries отсортированный список стран
// @Summary List countries
// @Tags countries
// @Produce json
// @Success 200 {object} common.Response[[]string]
// @Router /countries [get]
func (c *Controller) GetCountries(ctx *fiber.Ctx) error {
	return common.OkResponse(ctx, c.countriesService.Countries())
}
