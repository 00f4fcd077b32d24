package employee_test

import (
	"context"
	"errors"
	"testing"

	"go-ems/internal/employee"
	employeeerrors "go-ems/internal/employee/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var employeeColumns = []string{"id", "first_name", "last_name", "email_id", "age", "phone"}

func setupRepoTest(t *testing.T) (employee.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return employee.NewRepository(gdb), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := setupRepoTest(t)
	ctx := context.Background()

	mock.ExpectQuery(`INSERT INTO "employees" \("first_name","last_name","email_id","age","phone"\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	empl := &employee.Employee{FirstName: "John", LastName: "Doe", Email: "John@gmail.com", Age: intPtr(20)}
	err := repo.Create(ctx, empl)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), empl.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo, mock := setupRepoTest(t)
		mock.ExpectQuery(`SELECT \* FROM "employees" WHERE .*"id" = \$1`).
			WillReturnRows(sqlmock.NewRows(employeeColumns).
				AddRow(1, "Tom", "Cruise", "Tom@gmail.com", 45, "012345678910"))

		empl, err := repo.FindByID(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, tomCruise(), empl)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent returns nil without error", func(t *testing.T) {
		repo, mock := setupRepoTest(t)
		mock.ExpectQuery(`SELECT \* FROM "employees" WHERE .*"id" = \$1`).
			WillReturnRows(sqlmock.NewRows(employeeColumns))

		empl, err := repo.FindByID(ctx, 999)

		assert.NoError(t, err)
		assert.Nil(t, empl)
	})

	t.Run("storage error", func(t *testing.T) {
		repo, mock := setupRepoTest(t)
		mock.ExpectQuery(`SELECT \* FROM "employees"`).
			WillReturnError(errors.New("connection reset"))

		empl, err := repo.FindByID(ctx, 1)

		assert.EqualError(t, err, "connection reset")
		assert.Nil(t, empl)
	})
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock := setupRepoTest(t)
	mock.ExpectQuery(`SELECT \* FROM "employees" ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows(employeeColumns).
			AddRow(1, "Tom", "Cruise", "Tom@gmail.com", 45, "012345678910").
			AddRow(2, "John", "Doe", "John@gmail.com", nil, nil))

	empls, err := repo.FindAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, empls, 2)
	assert.Equal(t, int64(2), empls[1].ID)
	assert.Nil(t, empls[1].Age)
	assert.Nil(t, empls[1].Phone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()
	updateSQL := `UPDATE "employees" SET "first_name"=\$1,"last_name"=\$2,"email_id"=\$3,"age"=\$4,"phone"=\$5 WHERE .*"id" = \$6`

	t.Run("writes every column", func(t *testing.T) {
		repo, mock := setupRepoTest(t)
		mock.ExpectExec(updateSQL).
			WithArgs("Tommy", "Cruise", "Tom@gmail.com", int64(45), nil, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		empl := tomCruise()
		empl.FirstName = "Tommy"
		empl.Phone = nil
		err := repo.Update(ctx, empl)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("row deleted meanwhile is not recreated", func(t *testing.T) {
		repo, mock := setupRepoTest(t)
		mock.ExpectExec(updateSQL).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, tomCruise())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.ErrorContains(t, err, "Employee does not exist with the given id: 1")
		// any INSERT here would be an unexpected call
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("storage error", func(t *testing.T) {
		repo, mock := setupRepoTest(t)
		mock.ExpectExec(updateSQL).
			WillReturnError(errors.New("connection reset"))

		err := repo.Update(ctx, tomCruise())

		assert.EqualError(t, err, "connection reset")
	})
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo, mock := setupRepoTest(t)
		mock.ExpectExec(`DELETE FROM "employees" WHERE .*"id" = \$1`).
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(ctx, 5)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row removed", func(t *testing.T) {
		repo, mock := setupRepoTest(t)
		mock.ExpectExec(`DELETE FROM "employees" WHERE .*"id" = \$1`).
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, 5)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
