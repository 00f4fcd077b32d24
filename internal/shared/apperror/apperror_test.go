package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-ems/internal/shared/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		httpErr := apperror.ToHTTP(apperror.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, apperror.CodeNotFound, httpErr.Code)
		assert.Equal(t, "Resource not found", httpErr.Message)
	})

	t.Run("wrapped app error", func(t *testing.T) {
		err := fmt.Errorf("lookup: %w", apperror.ErrInvalidInput)

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	})

	t.Run("unknown error hides its text", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: password authentication failed"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.Equal(t, "Internal server error", httpErr.Message)
	})
}

func TestWrap(t *testing.T) {
	base := errors.New("root cause")
	err := apperror.Wrap(base, apperror.CodeConflict, "Conflict", http.StatusConflict)

	assert.ErrorIs(t, err, base)
	assert.Equal(t, "Conflict: root cause", err.Error())
	assert.Nil(t, apperror.Wrap(nil, apperror.CodeConflict, "Conflict", http.StatusConflict))
}

type signup struct {
	FirstName string `json:"firstName" binding:"required,min=3"`
	Email     string `json:"email" binding:"required,email"`
}

func TestMapValidationError(t *testing.T) {
	apperror.Init()

	t.Run("required field", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(&signup{Email: "a@b.co"})

		mapped := apperror.ToHTTP(apperror.MapValidationError(err))

		assert.Equal(t, http.StatusBadRequest, mapped.Status)
		assert.Equal(t, "First Name is required", mapped.Message)
		assert.Equal(t, map[string]string{"firstName": "required"}, mapped.Details)
	})

	t.Run("invalid field", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(&signup{FirstName: "John", Email: "nope"})

		var verrs validator.ValidationErrors
		assert.True(t, errors.As(err, &verrs))

		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		assert.Equal(t, "Email is invalid", mapped.Message)
	})

	t.Run("non validation error", func(t *testing.T) {
		mapped := apperror.ToHTTP(apperror.MapValidationError(errors.New("unexpected EOF")))

		assert.Equal(t, http.StatusBadRequest, mapped.Status)
		assert.Equal(t, "Invalid input", mapped.Message)
	})
}
