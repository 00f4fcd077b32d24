package employeeerrors

import (
	"fmt"
	"go-ems/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)

// NotFound names the missing id in the message and still matches
// ErrEmployeeNotFound with errors.Is.
func NotFound(id int64) error {
	return apperror.Wrap(
		ErrEmployeeNotFound,
		apperror.CodeNotFound,
		fmt.Sprintf("Employee does not exist with the given id: %d", id),
		http.StatusNotFound,
	)
}
