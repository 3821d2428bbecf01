// Package render writes API responses in the common JSON envelope.
package render

import (
	"encoding/json"
	"net/http"

	"wasteCollect/internal/domain"
	"wasteCollect/pkg/e"
)

func JSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func Success(w http.ResponseWriter, status int, message string, data any) error {
	return JSON(w, status, domain.Envelope{
		Success: true,
		Code:    string(e.CodeSuccess),
		Message: message,
		Data:    data,
	})
}

func Fail(w http.ResponseWriter, code e.Code, message string) error {
	return JSON(w, code.HTTPStatus(), domain.Envelope{
		Success: false,
		Code:    string(code),
		Message: message,
	})
}

// Error classifies err, writes it and returns the classification so the
// caller can log the wrapped cause. Internal causes never reach the body.
func Error(w http.ResponseWriter, err error) (*e.Error, error) {
	be := e.FromError(err)
	if be == nil {
		be = e.Internal(nil)
	}
	return be, Fail(w, be.Code, be.Message)
}
