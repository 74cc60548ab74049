package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}

	// ErrValidation - некорректные входные данные, ничего не записываем
	ErrValidation = &DomainError{
		Code:    "VALIDATION",
		Message: "invalid input",
	}

	// ErrCapacityExists - запись capacity для пары (sprint_id, user_id) уже существует
	ErrCapacityExists = &DomainError{
		Code:    "CAPACITY_EXISTS",
		Message: "capacity record already exists for this sprint and user",
	}

	// ErrSprintStatus - недопустимый переход статуса спринта
	ErrSprintStatus = &DomainError{
		Code:    "SPRINT_STATUS",
		Message: "sprint status transition is not allowed",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError создает ошибку VALIDATION с дополнительным контекстом
func NewValidationError(message string) *DomainError {
	return &DomainError{
		Code:    "VALIDATION",
		Message: message,
	}
}
