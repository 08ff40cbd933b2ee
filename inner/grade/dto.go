package grade

import "time"

type Entity struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	MinSalary   *float64  `json:"minSalary,omitempty"`
	MaxSalary   *float64  `json:"maxSalary,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (e *Entity) toResponse() Response {
	return Response{
		Id:          e.Id,
		Name:        e.Name,
		Description: e.Description,
		MinSalary:   e.MinSalary,
		MaxSalary:   e.MaxSalary,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

type Response struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	MinSalary   *float64  `json:"minSalary,omitempty"`
	MaxSalary   *float64  `json:"maxSalary,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
} // @name GradeLevelResponse

// CreateRequest структура запроса на создание грейда
type CreateRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Description string   `json:"description" validate:"required"`
	MinSalary   *float64 `json:"minSalary" validate:"omitempty,gt=0"`
	MaxSalary   *float64 `json:"maxSalary" validate:"omitempty,gt=0"`
} // @name CreateGradeLevelRequest

func (req *CreateRequest) ToEntity() Entity {
	return Entity{
		Name:        req.Name,
		Description: req.Description,
		MinSalary:   req.MinSalary,
		MaxSalary:   req.MaxSalary,
	}
}

// UpdateRequest частичное обновление: nil-поля сохраняют прежние значения
type UpdateRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string  `json:"description" validate:"omitempty,min=1"`
	MinSalary   *float64 `json:"minSalary" validate:"omitempty,gt=0"`
	MaxSalary   *float64 `json:"maxSalary" validate:"omitempty,gt=0"`
} // @name UpdateGradeLevelRequest

// EmployeeCountResponse количество сотрудников на грейде
type EmployeeCountResponse struct {
	GradeLevel string `json:"gradeLevel"`
	Count      int    `json:"count"`
} // @name EmployeeCountResponse
