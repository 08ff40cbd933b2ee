package employee

import "time"

// JoinDateLayout формат даты приёма на работу
const JoinDateLayout = "2006-01-02"

type Entity struct {
	Id               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	Department       string    `json:"department"`
	Country          string    `json:"country"`
	State            string    `json:"state,omitempty"`
	Address          string    `json:"address"`
	GradeLevel       string    `json:"gradeLevel,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	EmployeeId       string    `json:"employeeId,omitempty"`
	EmergencyContact string    `json:"emergencyContact,omitempty"`
	EmergencyPhone   string    `json:"emergencyPhone,omitempty"`
	Skills           string    `json:"skills,omitempty"`
	Bio              string    `json:"bio,omitempty"`
	Image            string    `json:"image,omitempty"`
	Salary           float64   `json:"salary"`
	JoinDate         string    `json:"joinDate"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (e *Entity) toResponse() Response {
	return Response{
		Id:               e.Id,
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
		Tenure:           Tenure(e.JoinDate),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

type Response struct {
	Id               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	Department       string    `json:"department"`
	Country          string    `json:"country"`
	State            string    `json:"state,omitempty"`
	Address          string    `json:"address"`
	GradeLevel       string    `json:"gradeLevel,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	EmployeeId       string    `json:"employeeId,omitempty"`
	EmergencyContact string    `json:"emergencyContact,omitempty"`
	EmergencyPhone   string    `json:"emergencyPhone,omitempty"`
	Skills           string    `json:"skills,omitempty"`
	Bio              string    `json:"bio,omitempty"`
	Image            string    `json:"image,omitempty"`
	Salary           float64   `json:"salary"`
	JoinDate         string    `json:"joinDate"`
	Tenure           string    `json:"tenure,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
} // @name EmployeeResponse

// ToResponses проекция списка записей в ответы API
func ToResponses(entities []Entity) []Response {
	responses := make([]Response, len(entities))
	for i := range entities {
		responses[i] = entities[i].toResponse()
	}
	return responses
}

// CreateRequest структура запроса на создание сотрудника
type CreateRequest struct {
	Name             string  `json:"name" validate:"required,min=2,max=50,person_name"`
	Email            string  `json:"email" validate:"required,email"`
	Role             string  `json:"role" validate:"required,min=2,max=100"`
	Department       string  `json:"department" validate:"required,min=2,max=100"`
	Country          string  `json:"country" validate:"required"`
	State            string  `json:"state"`
	Address          string  `json:"address" validate:"required,min=10,max=500"`
	GradeLevel       string  `json:"gradeLevel"`
	Phone            string  `json:"phone" validate:"omitempty,phone"`
	EmployeeId       string  `json:"employeeId"`
	EmergencyContact string  `json:"emergencyContact"`
	EmergencyPhone   string  `json:"emergencyPhone" validate:"omitempty,phone"`
	Skills           string  `json:"skills"`
	Bio              string  `json:"bio"`
	Image            string  `json:"image"`
	Salary           float64 `json:"salary" validate:"required,gt=0"`
	JoinDate         string  `json:"joinDate" validate:"required,datetime=2006-01-02"`
} // @name CreateEmployeeRequest

func (req *CreateRequest) ToEntity() Entity {
	return Entity{
		Name:             req.Name,
		Email:            req.Email,
		Role:             req.Role,
		Department:       req.Department,
		Country:          req.Country,
		State:            req.State,
		Address:          req.Address,
		GradeLevel:       req.GradeLevel,
		Phone:            req.Phone,
		EmployeeId:       req.EmployeeId,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
		Skills:           req.Skills,
		Bio:              req.Bio,
		Image:            req.Image,
		Salary:           req.Salary,
		JoinDate:         req.JoinDate,
	}
}

// UpdateRequest частичное обновление: nil-поля сохраняют прежние значения
type UpdateRequest struct {
	Name             *string  `json:"name"`
	Email            *string  `json:"email"`
	Role             *string  `json:"role"`
	Department       *string  `json:"department"`
	Country          *string  `json:"country"`
	State            *string  `json:"state"`
	Address          *string  `json:"address"`
	GradeLevel       *string  `json:"gradeLevel"`
	Phone            *string  `json:"phone"`
	EmployeeId       *string  `json:"employeeId"`
	EmergencyContact *string  `json:"emergencyContact"`
	EmergencyPhone   *string  `json:"emergencyPhone"`
	Skills           *string  `json:"skills"`
	Bio              *string  `json:"bio"`
	Image            *string  `json:"image"`
	Salary           *float64 `json:"salary"`
	JoinDate         *string  `json:"joinDate"`
} // @name UpdateEmployeeRequest

// StatsResponse сводная статистика по коллекции сотрудников
type StatsResponse struct {
	Total       int            `json:"total"`
	Departments map[string]int `json:"departments"`
	Countries   map[string]int `json:"countries"`
	GradeLevels map[string]int `json:"gradeLevels"`
	RecentJoins int            `json:"recentJoins"`
} // @name EmployeeStatsResponse
