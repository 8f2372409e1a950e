// internal/app/system/apierrors/apierrors.go
package apierrors

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/sbassa/tutorhub/internal/domain/models"
)

// Body is the envelope every non-2xx JSON response uses.
type Body struct {
	Detail any `json:"detail"`
}

// fieldError is one validation failure inside a 422 detail list.
type fieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Unprocessable writes a 422. When err is a models.ValidationError the
// detail is a field-level list, otherwise the error text.
func Unprocessable(w http.ResponseWriter, r *http.Request, err error) {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		write(w, r, http.StatusUnprocessableEntity, []fieldError{{Field: ve.Field, Reason: ve.Reason}})
		return
	}
	write(w, r, http.StatusUnprocessableEntity, err.Error())
}

// NotFound writes a 404 with the given detail message.
func NotFound(w http.ResponseWriter, r *http.Request, msg string) {
	write(w, r, http.StatusNotFound, msg)
}

// BadRequest writes a 400 with the given detail message.
func BadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	write(w, r, http.StatusBadRequest, msg)
}

// Internal writes a 500 with the given detail message.
func Internal(w http.ResponseWriter, r *http.Request, msg string) {
	write(w, r, http.StatusInternalServerError, msg)
}

func write(w http.ResponseWriter, r *http.Request, status int, detail any) {
	render.Status(r, status)
	render.JSON(w, r, Body{Detail: detail})
}
