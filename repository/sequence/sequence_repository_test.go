package sequence

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQL_NextTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	conn := sqlx.NewDb(db, "mysql")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(nextQuery)).
		WithArgs("complaint:202403").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	repo := NewSequenceRepository(conn)
	tx, err := conn.Beginx()
	require.NoError(t, err)

	got, err := repo.NextTx(context.Background(), tx, "complaint:202403")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), got)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
