package grade

import (
	"fmt"

	"staffdir/inner/common"
	"staffdir/inner/validator"

	"go.uber.org/zap"
)

type Service struct {
	repo      Repo
	employees EmployeeCounter
	validator Validator
	logger    *common.Logger
}

type Repo interface {
	FindAll() []Entity
	FindById(id string) (Entity, bool)
	FindByName(name string) (Entity, bool)
	Add(gradeLevel *Entity)
	Update(id string, apply func(*Entity)) bool
	DeleteById(id string) bool
}

// EmployeeCounter доступ на чтение к коллекции сотрудников:
// нужен для запрета удаления используемого грейда
type EmployeeCounter interface {
	CountByGradeLevel(name string) int
}

type Validator interface {
	Validate(request any) error
}

// функция-конструктор
func NewService(repo Repo, employees EmployeeCounter, validator Validator, logger *common.Logger) *Service {
	return &Service{
		repo:      repo,
		employees: employees,
		validator: validator,
		logger:    logger,
	}
}

// Метод для создания нового грейда.
// Имя должно быть уникальным без учёта регистра,
// нижняя граница зарплатной вилки не может превышать верхнюю.
func (svc *Service) CreateGradeLevel(request CreateRequest) (Response, error) {
	svc.logger.Info("Creating new grade level", zap.String("name", request.Name))

	if err := svc.validateRequest(request); err != nil {
		return Response{}, err
	}
	if err := validateSalaryRange(request.MinSalary, request.MaxSalary); err != nil {
		svc.logger.Warn("Grade level salary range is invalid",
			zap.String("name", request.Name))
		return Response{}, err
	}

	if _, exists := svc.repo.FindByName(request.Name); exists {
		svc.logger.Warn("Grade level with this name already exists",
			zap.String("name", request.Name))
		return Response{}, common.AlreadyExistsError{
			Message: fmt.Sprintf("grade level with name %s already exists", request.Name),
		}
	}

	entity := request.ToEntity()
	svc.repo.Add(&entity)

	svc.logger.Info("Grade level created successfully",
		zap.String("name", entity.Name),
		zap.String("id", entity.Id))
	return entity.toResponse(), nil
}

// Метод для частичного обновления грейда: nil-поля запроса не меняются.
// Переименование НЕ каскадируется на сотрудников, ссылающихся на старое имя.
func (svc *Service) UpdateGradeLevel(id string, request UpdateRequest) (Response, error) {
	svc.logger.Info("Updating grade level", zap.String("id", id))

	if err := svc.validateRequest(request); err != nil {
		return Response{}, err
	}

	existing, found := svc.repo.FindById(id)
	if !found {
		return Response{}, common.NewNotFoundError(fmt.Sprintf("grade level with id %s not found", id))
	}

	merged := existing
	if request.Name != nil {
		merged.Name = *request.Name
	}
	if request.Description != nil {
		merged.Description = *request.Description
	}
	if request.MinSalary != nil {
		merged.MinSalary = request.MinSalary
	}
	if request.MaxSalary != nil {
		merged.MaxSalary = request.MaxSalary
	}

	if err := validateSalaryRange(merged.MinSalary, merged.MaxSalary); err != nil {
		svc.logger.Warn("Grade level salary range is invalid after merge",
			zap.String("id", id))
		return Response{}, err
	}

	// проверка уникальности имени без учёта записи, которую редактируем
	if duplicate, exists := svc.repo.FindByName(merged.Name); exists && duplicate.Id != id {
		svc.logger.Warn("Grade level with this name already exists",
			zap.String("name", merged.Name))
		return Response{}, common.AlreadyExistsError{
			Message: fmt.Sprintf("grade level with name %s already exists", merged.Name),
		}
	}

	svc.repo.Update(id, func(e *Entity) {
		e.Name = merged.Name
		e.Description = merged.Description
		e.MinSalary = merged.MinSalary
		e.MaxSalary = merged.MaxSalary
	})

	updated, _ := svc.repo.FindById(id)
	svc.logger.Info("Grade level updated successfully", zap.String("id", id))
	return updated.toResponse(), nil
}

// Метод для удаления грейда.
// Удаление запрещено, пока на грейд ссылается хотя бы один сотрудник.
func (svc *Service) DeleteById(id string) error {
	svc.logger.Info("Deleting grade level", zap.String("id", id))

	entity, found := svc.repo.FindById(id)
	if !found {
		return common.NewNotFoundError(fmt.Sprintf("grade level with id %s not found", id))
	}

	if count := svc.employees.CountByGradeLevel(entity.Name); count > 0 {
		svc.logger.Warn("Grade level is still in use",
			zap.String("name", entity.Name),
			zap.Int("employee_count", count))
		return common.NewInUseError("Cannot delete grade level with assigned employees")
	}

	svc.repo.DeleteById(id)
	svc.logger.Info("Grade level deleted successfully", zap.String("id", id))
	return nil
}

func (svc *Service) FindById(id string) (Response, error) {
	entity, found := svc.repo.FindById(id)
	if !found {
		return Response{}, common.NewNotFoundError(fmt.Sprintf("grade level with id %s not found", id))
	}
	return entity.toResponse(), nil
}

func (svc *Service) FindAll() []Response {
	entities := svc.repo.FindAll()
	responses := make([]Response, len(entities))
	for i, entity := range entities {
		responses[i] = entity.toResponse()
	}
	return responses
}

// EmployeeCount количество сотрудников, ссылающихся на грейд.
// Счётчик вычисляется по требованию, в самой записи не хранится.
func (svc *Service) EmployeeCount(id string) (EmployeeCountResponse, error) {
	entity, found := svc.repo.FindById(id)
	if !found {
		return EmployeeCountResponse{}, common.NewNotFoundError(fmt.Sprintf("grade level with id %s not found", id))
	}
	return EmployeeCountResponse{
		GradeLevel: entity.Name,
		Count:      svc.employees.CountByGradeLevel(entity.Name),
	}, nil
}

// валидация запроса через общий валидатор
func (svc *Service) validateRequest(request any) error {
	err := svc.validator.Validate(request)
	if err != nil {
		svc.logger.Error("Grade level request validation failed", zap.Error(err))

		if validationErr, ok := err.(validator.ValidationErrors); ok {
			return common.RequestValidationError{
				Message: "Data validation error",
				Data:    validationErr.Errors,
			}
		}
		return common.RequestValidationError{Message: err.Error()}
	}
	return nil
}

// validateSalaryRange обе границы вилки необязательны,
// но при наличии обеих min не должен превышать max
func validateSalaryRange(minSalary, maxSalary *float64) error {
	if minSalary != nil && maxSalary != nil && *minSalary > *maxSalary {
		return common.RequestValidationError{
			Message: "Minimum salary cannot be greater than maximum salary",
		}
	}
	return nil
}
