package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/contract-capacity-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

var instructorRowColumns = []string{"id", "name", "area", "contract_type", "weekly_hours", "status", "work_shift", "created_at", "updated_at"}

func TestInstructorRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewInstructorRepository(db)

	rows := sqlmock.NewRows(instructorRowColumns).
		AddRow("i1", "JOÃO SILVA", "ELETRICA", "MENSALISTA", 40.0, "ATIVO", "MATUTINO_VESPERTINO", time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + instructorColumns + " FROM instructors WHERE 1=1 ORDER BY name ASC, id ASC LIMIT 20 OFFSET 0")).
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM instructors WHERE 1=1")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	list, total, err := repo.List(context.Background(), models.InstructorFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.ContractSalaried, list[0].ContractType)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInstructorRepositoryListEscapesWildcards(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewInstructorRepository(db)

	where := `FROM instructors WHERE 1=1 AND (LOWER(name) LIKE $1 ESCAPE '\' OR LOWER(area) LIKE $1 ESCAPE '\')`
	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + instructorColumns + " " + where)).
		WithArgs(`%\_%`).
		WillReturnRows(sqlmock.NewRows(instructorRowColumns))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) " + where)).
		WithArgs(`%\_%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, _, err := repo.List(context.Background(), models.InstructorFilter{Search: "_"})
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + instructorColumns + " " + where)).
		WithArgs(`%50\%\\a%`).
		WillReturnRows(sqlmock.NewRows(instructorRowColumns))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) " + where)).
		WithArgs(`%50\%\\a%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, _, err = repo.List(context.Background(), models.InstructorFilter{Search: `50%\A`})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInstructorRepositoryListWithFilters(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewInstructorRepository(db)

	where := `FROM instructors WHERE 1=1 AND status = $1 AND (LOWER(name) LIKE $2 ESCAPE '\' OR LOWER(area) LIKE $2 ESCAPE '\')`
	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + instructorColumns + " " + where + " ORDER BY weekly_hours DESC, id ASC LIMIT 10 OFFSET 10")).
		WithArgs(models.InstructorActive, "%eletr%").
		WillReturnRows(sqlmock.NewRows(instructorRowColumns))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) " + where)).
		WithArgs(models.InstructorActive, "%eletr%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))

	list, total, err := repo.List(context.Background(), models.InstructorFilter{
		Search:    " Eletr ",
		Status:    models.InstructorActive,
		Page:      2,
		PageSize:  10,
		SortBy:    "weekly_hours",
		SortOrder: "desc",
	})
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, 11, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInstructorRepositoryListAllUsesRegistrationOrder(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewInstructorRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM instructors ORDER BY created_at ASC, id ASC")).
		WillReturnRows(sqlmock.NewRows(instructorRowColumns).
			AddRow("i1", "A", "X", "HORISTA", 10.0, "ATIVO", "NOITE", time.Now(), time.Now()).
			AddRow("i2", "B", "Y", "MENSALISTA", 40.0, "INATIVO", "NOITE", time.Now(), time.Now()))

	list, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInstructorRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewInstructorRepository(db)

	mock.ExpectExec("INSERT INTO instructors").
		WithArgs(sqlmock.AnyArg(), "JOÃO SILVA", "NAO_DEFINIDA", models.ContractSalaried, 40.0, models.InstructorActive, "MATUTINO_VESPERTINO", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	inst := &models.Instructor{
		Name:         "JOÃO SILVA",
		Area:         "NAO_DEFINIDA",
		ContractType: models.ContractSalaried,
		WeeklyHours:  40,
		Status:       models.InstructorActive,
		WorkShift:    "MATUTINO_VESPERTINO",
	}
	require.NoError(t, repo.Create(context.Background(), inst))
	assert.NotEmpty(t, inst.ID)
	assert.False(t, inst.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInstructorRepositoryUpdateCapacities(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewInstructorRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE instructors SET weekly_hours = $1, contract_type = $2")).
		WithArgs(40.0, models.ContractHourly, sqlmock.AnyArg(), "i1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE instructors SET weekly_hours = $1, contract_type = $2")).
		WithArgs(20.0, models.ContractHourly, sqlmock.AnyArg(), "i2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateCapacities(context.Background(), []models.Instructor{
		{ID: "i1", WeeklyHours: 40, ContractType: models.ContractHourly},
		{ID: "i2", WeeklyHours: 20, ContractType: models.ContractHourly},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInstructorRepositoryUpdateCapacitiesRollsBack(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewInstructorRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE instructors SET weekly_hours").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := repo.UpdateCapacities(context.Background(), []models.Instructor{{ID: "i1", WeeklyHours: 40, ContractType: models.ContractHourly}})
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInstructorRepositoryDeleteMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewInstructorRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM instructors WHERE id = $1")).
		WithArgs("nope").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
