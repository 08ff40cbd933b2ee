package employee

import (
	"staffdir/inner/common"
	"staffdir/inner/web"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Controller struct {
	server          *web.Server
	employeeService Svc
	logger          *common.Logger
}

// интерфейс сервиса employee.Service
type Svc interface {
	CreateEmployee(request CreateRequest) (Response, error)
	UpdateEmployee(id string, request UpdateRequest) (Response, error)
	DeleteById(id string) error
	FindById(id string) (Response, error)
	FindAll() []Response
	Stats() StatsResponse
	ExportCSV() string
}

func NewController(server *web.Server, employeeService Svc, logger *common.Logger) *Controller {
	return &Controller{
		server:          server,
		employeeService: employeeService,
		logger:          logger,
	}
}

// функция для регистрации маршрутов.
// Конкретные пути регистрируются раньше параметризованного "/employees/:id".
func (c *Controller) RegisterRoutes() {
	// полный маршрут получится "/api/v1/employees"
	api := c.server.GroupApiV1
	api.Post("/employees", c.CreateEmployee)
	api.Get("/employees", c.FindAllEmployees)
	api.Get("/employees/stats", c.GetStats)
	api.Get("/employees/export", c.ExportEmployees)
	api.Get("/employees/:id", c.GetEmployee)
	api.Put("/employees/:id", c.UpdateEmployee)
	api.Delete("/employees/:id", c.DeleteEmployee)
}

// CreateEmployee создание сотрудника
// @Summary Create an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param request body employee.CreateRequest true "employee payload"
// @Success 200 {object} common.Response[employee.Response]
// @Failure 400 {object} common.Response[any]
// @Router /employees [post]
func (c *Controller) CreateEmployee(ctx *fiber.Ctx) error {

	// анмаршалим JSON body запроса в структуру CreateRequest
	var request CreateRequest
	if err := ctx.BodyParser(&request); err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	c.logger.DebugCtx(ctx, "Create employee request received",
		zap.String("name", request.Name))

	response, err := c.employeeService.CreateEmployee(request)
	if err != nil {
		return common.ErrorResponse(ctx, err)
	}
	return common.OkResponse(ctx, response)
}

// FindAllEmployees список всех сотрудников без фильтрации
// @Summary List employees
// @Tags employees
// @Produce json
// @Success 200 {object} common.Response[[]employee.Response]
// @Router /employees [get]
func (c *Controller) FindAllEmployees(ctx *fiber.Ctx) error {
	return common.OkResponse(ctx, c.employeeService.FindAll())
}

// GetEmployee профиль сотрудника, включая вычисленный стаж
// @Summary Get an employee
// @Tags employees
// @Produce json
// @Param id path string true "employee id"
// @Success 200 {object} common.Response[employee.Response]
// @Failure 404 {object} common.Response[any]
// @Router /employees/{id} [get]
func (c *Controller) GetEmployee(ctx *fiber.Ctx) error {
	response, err := c.employeeService.FindById(ctx.Params("id"))
	if err != nil {
		return common.ErrorResponse(ctx, err)
	}
	return common.OkResponse(ctx, response)
}

// UpdateEmployee частичное обновление сотрудника
// @Summary Update an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "employee id"
// @Param request body employee.UpdateRequest true "fields to update"
// @Success 200 {object} common.Response[employee.Response]
// @Failure 400 {object} common.Response[any]
// @Failure 404 {object} common.Response[any]
// @Router /employees/{id} [put]
func (c *Controller) UpdateEmployee(ctx *fiber.Ctx) error {
	var request UpdateRequest
	if err := ctx.BodyParser(&request); err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	response, err := c.employeeService.UpdateEmployee(ctx.Params("id"), request)
	if err != nil {
		return common.ErrorResponse(ctx, err)
	}
	return common.OkResponse(ctx, response)
}

// DeleteEmployee удаление сотрудника
// @Summary Delete an employee
// @Tags employees
// @Produce json
// @Param id path string true "employee id"
// @Success 200 {object} common.Response[string]
// @Failure 404 {object} common.Response[any]
// @Router /employees/{id} [delete]
func (c *Controller) DeleteEmployee(ctx *fiber.Ctx) error {
	if err := c.employeeService.DeleteById(ctx.Params("id")); err != nil {
		return common.ErrorResponse(ctx, err)
	}
	return common.OkResponse(ctx, "Employee deleted successfully")
}

// GetStats сводная статистика по коллекции
// @Summary Employee statistics
// @Tags employees
// @Produce json
// @Success 200 {object} common.Response[employee.StatsResponse]
// @Router /employees/stats [get]
func (c *Controller) GetStats(ctx *fiber.Ctx) error {
	return common.OkResponse(ctx, c.employeeService.Stats())
}

// ExportEmployees выгрузка коллекции в CSV
// @Summary Export employees as CSV
// @Tags employees
// @Produce text/csv
// @Success 200 {string} string "CSV payload"
// @Router /employees/export [get]
func (c *Controller) ExportEmployees(ctx *fiber.Ctx) error {
	ctx.Set(fiber.HeaderContentType, "text/csv")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="employees.csv"`)
	return ctx.SendString(c.employeeService.ExportCSV())
}
