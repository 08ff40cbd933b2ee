package grade

import (
	"staffdir/inner/common"
	"staffdir/inner/web"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	server       *web.Server
	gradeService Svc
	logger       *common.Logger
}

// интерфейс сервиса grade.Service
type Svc interface {
	CreateGradeLevel(request CreateRequest) (Response, error)
	UpdateGradeLevel(id string, request UpdateRequest) (Response, error)
	DeleteById(id string) error
	FindById(id string) (Response, error)
	FindAll() []Response
	EmployeeCount(id string) (EmployeeCountResponse, error)
}

func NewController(server *web.Server, gradeService Svc, logger *common.Logger) *Controller {
	return &Controller{
		server:       server,
		gradeService: gradeService,
		logger:       logger,
	}
}

// функция для регистрации маршрутов
func (c *Controller) RegisterRoutes() {
	// полный маршрут получится "/api/v1/grade-levels"
	api := c.server.GroupApiV1
	api.Post("/grade-levels", c.CreateGradeLevel)
	api.Get("/grade-levels", c.FindAllGradeLevels)
	api.Get("/grade-levels/:id", c.GetGradeLevel)
	api.Put("/grade-levels/:id", c.UpdateGradeLevel)
	api.Delete("/grade-levels/:id", c.DeleteGradeLevel)
	api.Get("/grade-levels/:id/employee-count", c.GetEmployeeCount)
}

// CreateGradeLevel создание грейда
// @Summary Create a grade level
// @Tags grade-levels
// @Accept json
// @Produce json
// @Param request body grade.CreateRequest true "grade level payload"
// @Success 200 {object} common.Response[grade.Response]
// @Failure 400 {object} common.Response[any]
// @Router /grade-levels [post]
func (c *Controller) CreateGradeLevel(ctx *fiber.Ctx) error {
	var request CreateRequest
	if err := ctx.BodyParser(&request); err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	c.logger.DebugCtx(ctx, "Create grade level request received")

	response, err := c.gradeService.CreateGradeLevel(request)
	if err != nil {
		return common.ErrorResponse(ctx, err)
	}
	return common.OkResponse(ctx, response)
}

// FindAllGradeLevels список всех грейдов
// @Summary List grade levels
// @Tags grade-levels
// @Produce json
// @Success 200 {object} common.Response[[]grade.Response]
// @Router /grade-levels [get]
func (c *Controller) FindAllGradeLevels(ctx *fiber.Ctx) error {
	return common.OkResponse(ctx, c.gradeService.FindAll())
}

// GetGradeLevel получение грейда по id
// @Summary Get a grade level
// @Tags grade-levels
// @Produce json
// @Param id path string true "grade level id"
// @Success 200 {object} common.Response[grade.Response]
// @Failure 404 {object} common.Response[any]
// @Router /grade-levels/{id} [get]
func (c *Controller) GetGradeLevel(ctx *fiber.Ctx) error {
	response, err := c.gradeService.FindById(ctx.Params("id"))
	if err != nil {
		return common.ErrorResponse(ctx, err)
	}
	return common.OkResponse(ctx, response)
}

// UpdateGradeLevel частичное обновление грейда
// @Summary Update a grade level
// @Tags grade-levels
// @Accept json
// @Produce json
// @Param id path string true "grade level id"
// @Param request body grade.UpdateRequest true "fields to update"
// @Success 200 {object} common.Response[grade.Response]
// @Failure 400 {object} common.Response[any]
// @Failure 404 {object} common.Response[any]
// @Router /grade-levels/{id} [put]
func (c *Controller) UpdateGradeLevel(ctx *fiber.Ctx) error {
	var request UpdateRequest
	if err := ctx.BodyParser(&request); err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	response, err := c.gradeService.UpdateGradeLevel(ctx.Params("id"), request)
	if err != nil {
		return common.ErrorResponse(ctx, err)
	}
	return common.OkResponse(ctx, response)
}

// DeleteGradeLevel удаление грейда; отказ, если грейд используется
// @Summary Delete a grade level
// @Tags grade-levels
// @Produce json
// @Param id path string true "grade level id"
// @Success 200 {object} common.Response[string]
// @Failure 404 {object} common.Response[any]
// @Failure 409 {object} common.Response[any]
// @Router /grade-levels/{id} [delete]
func (c *Controller) DeleteGradeLevel(ctx *fiber.Ctx) error {
	if err := c.gradeService.DeleteById(ctx.Params("id")); err != nil {
		return common.ErrorResponse(ctx, err)
	}
	return common.OkResponse(ctx, "Grade level deleted successfully")
}

// GetEmployeeCount количество сотрудников на грейде
// @Summary Employee count for a grade level
// @Tags grade-levels
// @Produce json
// @Param id path string true "grade level id"
// @Success 200 {object} common.Response[grade.EmployeeCountResponse]
// @Failure 404 {object} common.Response[any]
// @Router /grade-levels/{id}/employee-count [get]
func (c *Controller) GetEmployeeCount(ctx *fiber.Ctx) error {
	response, err := c.gradeService.EmployeeCount(ctx.Params("id"))
	if err != nil {
		return common.ErrorResponse(ctx, err)
	}
	return common.OkResponse(ctx, response)
}
