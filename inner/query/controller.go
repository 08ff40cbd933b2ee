package query

import (
	"strconv"

	"staffdir/inner/common"
	"staffdir/inner/employee"
	"staffdir/inner/web"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	server    *web.Server
	employees EmployeeProvider
	engine    *Engine
	logger    *common.Logger
}

// EmployeeProvider полная коллекция сотрудников для пересчёта представления
type EmployeeProvider interface {
	FindAll() []employee.Entity
}

// FiltersRequest частичное обновление состояния фильтров
type FiltersRequest struct {
	SearchTerm *string  `json:"searchTerm"`
	GradeLevel *string  `json:"gradeLevel"`
	Country    *string  `json:"country"`
	MinSalary  *float64 `json:"minSalary"`
	MaxSalary  *float64 `json:"maxSalary"`
	SortBy     *string  `json:"sortBy"`
	Order      *string  `json:"order"`
	// Clear сбрасывает все фильтры перед применением остальных полей
	Clear bool `json:"clear"`
} // @name UpdateFiltersRequest

func NewController(server *web.Server, employees EmployeeProvider, engine *Engine, logger *common.Logger) *Controller {
	return &Controller{
		server:    server,
		employees: employees,
		engine:    engine,
		logger:    logger,
	}
}

// функция для регистрации маршрутов.
// Должна вызываться до регистрации маршрутов employee-контроллера,
// чтобы "/employees/search" не перехватывался маршрутом "/employees/:id".
func (c *Controller) RegisterRoutes() {
	api := c.server.GroupApiV1
	api.Get("/employees/search", c.SearchEmployees)
	api.Get("/employees/view", c.GetView)
	api.Put("/employees/view/filters", c.UpdateFilters)
}

// SearchEmployees одноразовый поиск по параметрам запроса.
// Непустой параметр country подавляет остальные фильтры -
// то же правило взаимоисключения, что и у состояния представления.
// @Summary Search employees
// @Tags employees
// @Produce json
// @Param term query string false "substring matched against name, role, department and email"
// @Param grade query string false "grade level name, exact match"
// @Param country query string false "country, exact match; suppresses other filters"
// @Param minSalary query number false "inclusive lower salary bound"
// @Param maxSalary query number false "inclusive upper salary bound"
// @Param sortBy query string false "name, role, department, country, salary, joinDate or createdAt"
// @Param order query string false "asc or desc"
// @Success 200 {object} common.Response[[]employee.Response]
// @Router /employees/search [get]
func (c *Controller) SearchEmployees(ctx *fiber.Ctx) error {
	filters := Filters{
		SortBy: ctx.Query("sortBy"),
		Order:  ctx.Query("order"),
	}

	if country := ctx.Query("country"); country != "" {
		filters.Country = country
	} else {
		filters.SearchTerm = ctx.Query("term")
		filters.GradeLevel = ctx.Query("grade")

		minSalary, err := queryFloat(ctx, "minSalary")
		if err != nil {
			return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid minSalary value")
		}
		maxSalary, err := queryFloat(ctx, "maxSalary")
		if err != nil {
			return common.ErrResponse(ctx, fiber.StatusBadRequest, "Invalid maxSalary value")
		}
		filters.MinSalary = minSalary
		filters.MaxSalary = maxSalary
	}

	result := Apply(c.employees.FindAll(), filters)
	c.logger.DebugCtx(ctx, "Employee search executed")
	return common.OkResponse(ctx, employee.ToResponses(result))
}

// GetView производное представление при текущем состоянии фильтров
// @Summary Current filtered view of employees
// @Tags employees
// @Produce json
// @Success 200 {object} common.Response[[]employee.Response]
// @Router /employees/view [get]
func (c *Controller) GetView(ctx *fiber.Ctx) error {
	result := c.engine.View(c.employees.FindAll())
	return common.OkResponse(ctx, employee.ToResponses(result))
}

// UpdateFilters обновляет состояние фильтров представления.
// Страна применяется последней: её выбор сбрасывает поиск,
// грейд и границы зарплаты.
// @Summary Update view filters
// @Tags employees
// @Accept json
// @Produce json
// @Param request body query.FiltersRequest true "filter fields to update"
// @Success 200 {object} common.Response[query.Filters]
// @Failure 400 {object} common.Response[any]
// @Router /employees/view/filters [put]
func (c *Controller) UpdateFilters(ctx *fiber.Ctx) error {
	var request FiltersRequest
	if err := ctx.BodyParser(&request); err != nil {
		return common.ErrResponse(ctx, fiber.StatusBadRequest, err.Error())
	}

	if request.Clear {
		c.engine.ClearAll()
	}
	if request.SearchTerm != nil {
		c.engine.SetSearchTerm(*request.SearchTerm)
	}
	if request.GradeLevel != nil {
		c.engine.SetGradeLevel(*request.GradeLevel)
	}
	if request.MinSalary != nil || request.MaxSalary != nil {
		current := c.engine.Current()
		minSalary := current.MinSalary
		maxSalary := current.MaxSalary
		if request.MinSalary != nil {
			minSalary = request.MinSalary
		}
		if request.MaxSalary != nil {
			maxSalary = request.MaxSalary
		}
		if err := c.engine.SetSalaryBounds(minSalary, maxSalary); err != nil {
			return common.ErrorResponse(ctx, err)
		}
	}
	if request.SortBy != nil || request.Order != nil {
		current := c.engine.Current()
		sortBy := current.SortBy
		order := current.Order
		if request.SortBy != nil {
			sortBy = *request.SortBy
		}
		if request.Order != nil {
			order = *request.Order
		}
		c.engine.SetSort(sortBy, order)
	}
	if request.Country != nil {
		c.engine.SetCountry(*request.Country)
	}

	c.logger.InfoCtx(ctx, "View filters updated")
	return common.OkResponse(ctx, c.engine.Current())
}

// queryFloat разбирает необязательный числовой параметр запроса
func queryFloat(ctx *fiber.Ctx, key string) (*float64, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
