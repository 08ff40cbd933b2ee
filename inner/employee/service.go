package employee

import (
	"fmt"
	"strings"

	"staffdir/inner/common"
	"staffdir/inner/grade"
	"staffdir/inner/validator"

	"go.uber.org/zap"
)

// maxImageBytes предел размера фотографии до кодирования в base64
const maxImageBytes = 5 * 1024 * 1024

type Service struct {
	repo      Repo
	grades    GradeFinder
	validator Validator
	logger    *common.Logger
}

type Repo interface {
	FindAll() []Entity
	FindById(id string) (Entity, bool)
	Add(employee *Entity)
	Update(id string, apply func(*Entity)) bool
	DeleteById(id string) bool
	CountByGradeLevel(name string) int
}

// GradeFinder доступ к коллекции грейдов для кросс-валидации
type GradeFinder interface {
	FindByName(name string) (grade.Entity, bool)
}

type Validator interface {
	Validate(request any) error
}

// функция-конструктор
func NewService(repo Repo, grades GradeFinder, validator Validator, logger *common.Logger) *Service {
	return &Service{
		repo:      repo,
		grades:    grades,
		validator: validator,
		logger:    logger,
	}
}

// Метод для создания нового сотрудника.
// Помимо пополевой валидации проверяется, что указанный грейд существует
// и что зарплата попадает в его вилку.
func (svc *Service) CreateEmployee(request CreateRequest) (Response, error) {
	svc.logger.Info("Creating new employee", zap.String("name", request.Name))

	violations, err := svc.fieldViolations(request)
	if err != nil {
		return Response{}, err
	}
	violations = append(violations, svc.crossViolations(request.GradeLevel, request.Salary, request.Image)...)
	if len(violations) > 0 {
		svc.logger.Warn("Employee creation request validation failed",
			zap.String("name", request.Name),
			zap.Int("violations", len(violations)))
		return Response{}, common.RequestValidationError{
			Message: "Data validation error",
			Data:    violations,
		}
	}

	entity := request.ToEntity()
	svc.repo.Add(&entity)

	svc.logger.Info("Employee created successfully",
		zap.String("name", entity.Name),
		zap.String("id", entity.Id))
	return entity.toResponse(), nil
}

// Метод для частичного обновления сотрудника: nil-поля запроса не меняются,
// объединённая запись проходит ту же валидацию, что и при создании
func (svc *Service) UpdateEmployee(id string, request UpdateRequest) (Response, error) {
	svc.logger.Info("Updating employee", zap.String("id", id))

	existing, found := svc.repo.FindById(id)
	if !found {
		return Response{}, common.NewNotFoundError(fmt.Sprintf("employee with id %s not found", id))
	}

	merged := mergePatch(existing, request)

	violations, err := svc.fieldViolations(merged.asCreateRequest())
	if err != nil {
		return Response{}, err
	}
	violations = append(violations, svc.crossViolations(merged.GradeLevel, merged.Salary, merged.Image)...)
	if len(violations) > 0 {
		svc.logger.Warn("Employee update request validation failed",
			zap.String("id", id),
			zap.Int("violations", len(violations)))
		return Response{}, common.RequestValidationError{
			Message: "Data validation error",
			Data:    violations,
		}
	}

	svc.repo.Update(id, func(e *Entity) {
		createdAt := e.CreatedAt
		entityId := e.Id
		*e = merged
		e.Id = entityId
		e.CreatedAt = createdAt
	})

	updated, _ := svc.repo.FindById(id)
	svc.logger.Info("Employee updated successfully", zap.String("id", id))
	return updated.toResponse(), nil
}

// Метод для удаления сотрудника; ссылочных проверок нет -
// удаление сотрудника никогда не затрагивает грейды
func (svc *Service) DeleteById(id string) error {
	svc.logger.Info("Deleting employee", zap.String("id", id))

	if !svc.repo.DeleteById(id) {
		return common.NewNotFoundError(fmt.Sprintf("employee with id %s not found", id))
	}
	svc.logger.Info("Employee deleted successfully", zap.String("id", id))
	return nil
}

func (svc *Service) FindById(id string) (Response, error) {
	entity, found := svc.repo.FindById(id)
	if !found {
		return Response{}, common.NewNotFoundError(fmt.Sprintf("employee with id %s not found", id))
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

// Stats сводная статистика по коллекции
func (svc *Service) Stats() StatsResponse {
	return BuildStats(svc.repo.FindAll())
}

// ExportCSV выгрузка всей коллекции в CSV
func (svc *Service) ExportCSV() string {
	return ExportCSV(svc.repo.FindAll())
}

// fieldViolations пополевая валидация; все нарушения собираются вместе
func (svc *Service) fieldViolations(request any) ([]validator.ValidationError, error) {
	err := svc.validator.Validate(request)
	if err == nil {
		return nil, nil
	}
	if validationErr, ok := err.(validator.ValidationErrors); ok {
		return validationErr.Errors, nil
	}
	// не ошибка валидации, а сбой самого валидатора
	return nil, fmt.Errorf("error validating employee request: %w", err)
}

// crossViolations проверки, выходящие за рамки одного поля:
// размер фотографии, существование грейда и попадание зарплаты в вилку
func (svc *Service) crossViolations(gradeLevel string, salary float64, image string) []validator.ValidationError {
	var violations []validator.ValidationError

	if image != "" && imagePayloadSize(image) > maxImageBytes {
		violations = append(violations, validator.ValidationError{
			Field:   "Image",
			Tag:     "max",
			Message: "Image size must be less than 5MB",
		})
	}

	if gradeLevel == "" {
		return violations
	}

	gradeEntity, found := svc.grades.FindByName(gradeLevel)
	if !found {
		violations = append(violations, validator.ValidationError{
			Field:   "GradeLevel",
			Tag:     "exists",
			Value:   gradeLevel,
			Message: fmt.Sprintf("Grade level %s does not exist", gradeLevel),
		})
		return violations
	}

	belowMin := gradeEntity.MinSalary != nil && salary < *gradeEntity.MinSalary
	aboveMax := gradeEntity.MaxSalary != nil && salary > *gradeEntity.MaxSalary
	if belowMin || aboveMax {
		violations = append(violations, validator.ValidationError{
			Field:   "Salary",
			Tag:     "range",
			Value:   fmt.Sprintf("%v", salary),
			Message: salaryRangeMessage(gradeEntity.MinSalary, gradeEntity.MaxSalary),
		})
	}
	return violations
}

func salaryRangeMessage(minSalary, maxSalary *float64) string {
	switch {
	case minSalary != nil && maxSalary != nil:
		return fmt.Sprintf("Salary must be between $%s and $%s",
			FormatMoney(*minSalary), FormatMoney(*maxSalary))
	case minSalary != nil:
		return fmt.Sprintf("Salary must be at least $%s", FormatMoney(*minSalary))
	default:
		return fmt.Sprintf("Salary must not exceed $%s", FormatMoney(*maxSalary))
	}
}

// imagePayloadSize оценивает размер изображения до base64-кодирования
func imagePayloadSize(image string) int {
	payload := image
	if comma := strings.IndexByte(image, ','); comma >= 0 {
		payload = image[comma+1:]
	}
	return len(payload) / 4 * 3
}

// mergePatch накладывает непустые поля запроса на существующую запись
func mergePatch(existing Entity, patch UpdateRequest) Entity {
	merged := existing
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Email != nil {
		merged.Email = *patch.Email
	}
	if patch.Role != nil {
		merged.Role = *patch.Role
	}
	if patch.Department != nil {
		merged.Department = *patch.Department
	}
	if patch.Country != nil {
		merged.Country = *patch.Country
	}
	if patch.State != nil {
		merged.State = *patch.State
	}
	if patch.Address != nil {
		merged.Address = *patch.Address
	}
	if patch.GradeLevel != nil {
		merged.GradeLevel = *patch.GradeLevel
	}
	if patch.Phone != nil {
		merged.Phone = *patch.Phone
	}
	if patch.EmployeeId != nil {
		merged.EmployeeId = *patch.EmployeeId
	}
	if patch.EmergencyContact != nil {
		merged.EmergencyContact = *patch.EmergencyContact
	}
	if patch.EmergencyPhone != nil {
		merged.EmergencyPhone = *patch.EmergencyPhone
	}
	if patch.Skills != nil {
		merged.Skills = *patch.Skills
	}
	if patch.Bio != nil {
		merged.Bio = *patch.Bio
	}
	if patch.Image != nil {
		merged.Image = *patch.Image
	}
	if patch.Salary != nil {
		merged.Salary = *patch.Salary
	}
	if patch.JoinDate != nil {
		merged.JoinDate = *patch.JoinDate
	}
	return merged
}

// asCreateRequest проекция записи обратно в форму запроса,
// чтобы объединённый результат прошёл пополевую валидацию
func (e Entity) asCreateRequest() CreateRequest {
	return CreateRequest{
		Name:             e.Name,
		Email:            e.Email,
		Role:             e.Role,
		Department:       e.Department,
		Country:          e.Country,
		State:            e.State,
		Address:          e.Address,
		GradeLevel:       e.GradeLevel,
		Phone:            e.Phone,
		EmployeeId:       e.EmployeeId,
		EmergencyContact: e.EmergencyContact,
		EmergencyPhone:   e.EmergencyPhone,
		Skills:           e.Skills,
		Bio:              e.Bio,
		Image:            e.Image,
		Salary:           e.Salary,
		JoinDate:         e.JoinDate,
	}
}
