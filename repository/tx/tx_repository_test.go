package tx

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (TxRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewTxRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestTxRepository_RollbackAfterCommit(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	tx, err := repo.BeginTx(context.Background())
	require.NoError(t, err)
	require.NoError(t, repo.CommitTx(tx))
	assert.NoError(t, repo.RollbackTx(tx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxRepository_RollbackError(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectBegin()
	mock.ExpectRollback().WillReturnError(errors.New("connection reset"))

	tx, err := repo.BeginTx(context.Background())
	require.NoError(t, err)
	assert.EqualError(t, repo.RollbackTx(tx), "connection reset")
}
