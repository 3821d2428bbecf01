package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"wasteCollect/pkg/e"
	"wasteCollect/pkg/validator"
)

const maxBodyBytes = 1 << 20

const msgInvalidJSON = "JSON inválido"

// DecodeJSON reads exactly one JSON object into T and runs the struct
// validator on it. Unknown fields and trailing data are rejected. Failures
// come back as validation errors ready for render.Error.
func DecodeJSON[T any](w http.ResponseWriter, r *http.Request) (T, error) {
	var body T

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&body); err != nil {
		return body, e.Validation(msgInvalidJSON+": "+describeDecodeError(err), err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return body, e.Validation(msgInvalidJSON+": unexpected data after object", nil)
	}

	if err := validator.ValidateStruct(body); err != nil {
		return body, e.Validation(validator.Describe(err), err)
	}
	return body, nil
}

func describeDecodeError(err error) string {
	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		return "empty body"
	case errors.As(err, &typeErr):
		return typeErr.Field + " has the wrong type"
	case errors.As(err, &maxErr):
		return "body too large"
	default:
		return err.Error()
	}
}
