package implementation

import (
	"context"
	"testing"

	"sitebuilder-be/internal/repository/contract"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, contract.PageSectionRepository) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return mock, NewPageSectionRepository(db)
}

func TestPageSectionReorder_WritesPositions(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "page_sections"`).
		WithArgs(7, 30, 10, 20).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	for i, id := range []int{30, 10, 20} {
		mock.ExpectExec(`UPDATE "page_sections" SET "sort_order"`).
			WithArgs(i+1, sqlmock.AnyArg(), id, 7).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	err := repo.Reorder(context.Background(), 7, []int{30, 10, 20})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPageSectionReorder_ForeignSectionRollsBack(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "page_sections"`).
		WithArgs(7, 10, 99).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := repo.Reorder(context.Background(), 7, []int{10, 99})

	assert.ErrorIs(t, err, contract.ErrSectionsOutsidePage)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPageSectionReorder_DuplicateIdsNeverTouchTheDatabase(t *testing.T) {
	mock, repo := setupMockDB(t)

	err := repo.Reorder(context.Background(), 7, []int{10, 10})

	assert.ErrorIs(t, err, contract.ErrSectionsOutsidePage)
	require.NoError(t, mock.ExpectationsWereMet())
}
