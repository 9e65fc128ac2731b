package apperr

import (
	"fmt"
	"net/http"
)

// Kind - класс ошибки, определяет HTTP статус и машиночитаемый код
type Kind int

const (
	KindValidation Kind = iota
	KindAuth
	KindNotFound
	KindConflict
	KindInternal
	KindPartialFailure
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation_error"
	case KindAuth:
		return "auth_error"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindPartialFailure:
		return "partial_failure"
	default:
		return "internal_error"
	}
}

// HTTPStatus - маппинг класса ошибки на HTTP статус.
// Конфликт уникального ключа (занятый username) отдаем как 400
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
	}
}

func Wrap(err error, kind Kind, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Общие ошибки доменного слоя
var (
	ErrMissingToken        = New(KindAuth, "authentication token is required")
	ErrInvalidToken        = New(KindAuth, "session is invalid or has expired")
	ErrInvalidPassword     = New(KindAuth, "invalid password")
	ErrInvalidAmount       = New(KindValidation, "amount must be a positive number")
	ErrInsufficientBalance = New(KindValidation, "insufficient balance")
	ErrMissingCredentials  = New(KindValidation, "username and password are required")
	ErrUserNotFound        = New(KindNotFound, "user not found")
	ErrUsernameTaken       = New(KindConflict, "username is already taken")
)
