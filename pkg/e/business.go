package e

import (
	"errors"
	"net/http"
)

// Code classifies the outcome of an operation independently of the transport.
type Code string

const (
	CodeSuccess      Code = "000"
	CodeUnauthorized Code = "001"
	CodeRateLimited  Code = "002"
	CodeValidation   Code = "003"
	CodeNotFound     Code = "004"
	CodeConflict     Code = "005"
	CodeBusinessRule Code = "006"
	CodeInternal     Code = "999"
)

const InternalMessage = "Erro interno do servidor"

// Error is the structured failure returned by services. Message is safe to show
// to the caller; Err is kept for logging and errors.Is/As only.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return string(e.Code) + " " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Code) + " " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg, Err: ErrNotFound}
}

func BusinessRule(msg string) *Error {
	return &Error{Code: CodeBusinessRule, Message: msg}
}

func Validation(msg string, err error) *Error {
	if err == nil {
		err = ErrInvalidInput
	}
	return &Error{Code: CodeValidation, Message: msg, Err: err}
}

func Conflict(msg string, err error) *Error {
	if err == nil {
		err = ErrConflict
	}
	return &Error{Code: CodeConflict, Message: msg, Err: err}
}

func Unauthorized(msg string, err error) *Error {
	return &Error{Code: CodeUnauthorized, Message: msg, Err: err}
}

func Internal(err error) *Error {
	return &Error{Code: CodeInternal, Message: InternalMessage, Err: err}
}

// FromError classifies err. Business errors pass through, storage sentinels are
// mapped to their codes and everything else is masked as internal.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var be *Error
	if errors.As(err, &be) {
		return be
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return &Error{Code: CodeNotFound, Message: "Registro não encontrado", Err: err}
	case errors.Is(err, ErrConflict), errors.Is(err, ErrUniqueViolation):
		return &Error{Code: CodeConflict, Message: "Conflito ao atualizar o registro", Err: err}
	case errors.Is(err, ErrInvalidUserID):
		return &Error{Code: CodeUnauthorized, Message: "Usuário não identificado", Err: err}
	case errors.Is(err, ErrInvalidCoordinates), errors.Is(err, ErrInvalidInput):
		return &Error{Code: CodeValidation, Message: "Dados inválidos", Err: err}
	default:
		return Internal(err)
	}
}

func (c Code) HTTPStatus() int {
	switch c {
	case CodeSuccess:
		return http.StatusOK
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeRateLimited:
		return http.StatusTooManyRequests
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeBusinessRule:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
