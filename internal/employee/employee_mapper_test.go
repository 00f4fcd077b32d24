package employee_test

import (
	"testing"

	"go-ems/internal/employee"

	"github.com/stretchr/testify/assert"
)

func TestMapper_RoundTrip(t *testing.T) {
	t.Run("record to transfer and back", func(t *testing.T) {
		rec := *tomCruise()
		assert.Equal(t, rec, employee.ToRecord(employee.ToTransfer(rec)))
	})

	t.Run("transfer with absent optionals", func(t *testing.T) {
		data := employee.EmployeeData{ID: 3, FirstName: "John", LastName: "Doe", Email: "John@gmail.com"}
		assert.Equal(t, data, employee.ToTransfer(employee.ToRecord(data)))
	})
}

func TestMapper_ToTransferList(t *testing.T) {
	assert.Equal(t, []employee.EmployeeData{}, employee.ToTransferList(nil))

	list := employee.ToTransferList([]employee.Employee{*tomCruise()})
	assert.Equal(t, "Tom", list[0].FirstName)
}
