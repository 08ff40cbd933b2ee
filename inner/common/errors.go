package common

// RequestValidationError ошибка валидации входных данных,
// Data содержит список нарушений по полям
type RequestValidationError struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (err RequestValidationError) Error() string {
	return err.Message
}

type AlreadyExistsError struct {
	Message string `json:"message"`
}

func (err AlreadyExistsError) Error() string {
	return err.Message
}

// NotFoundError представляет ошибку, когда сущность не найдена
type NotFoundError struct {
	Message string `json:"message"`
}

func (err NotFoundError) Error() string {
	return err.Message
}

// InUseError возникает при попытке удалить сущность,
// на которую ещё ссылаются другие записи
type InUseError struct {
	Message string `json:"message"`
}

func (err InUseError) Error() string {
	return err.Message
}

// NewNotFoundError создаёт новую ошибку "not found"
func NewNotFoundError(message string) error {
	return NotFoundError{Message: message}
}

// NewInUseError создаёт новую ошибку "in use"
func NewInUseError(message string) error {
	return InUseError{Message: message}
}
