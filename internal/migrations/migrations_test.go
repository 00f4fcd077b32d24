package migrations

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSource_EmbedsEmployeesTable(t *testing.T) {
	src, err := Source()
	assert.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	assert.NoError(t, err)
	assert.Equal(t, uint(1), first)

	r, ident, err := src.ReadUp(first)
	assert.NoError(t, err)
	defer r.Close()
	assert.Equal(t, "create_employees_table", ident)

	body, err := io.ReadAll(r)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS employees")
	assert.Contains(t, string(body), "email_id")

	down, _, err := src.ReadDown(first)
	assert.NoError(t, err)
	defer down.Close()
}
