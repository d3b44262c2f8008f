package user

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/bhrc-portal/constant"
	"github.com/muhammadheryan/bhrc-portal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUserRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestSQL_Get_NotFound(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(getUserBase + " AND email = ?")).
		WithArgs("nobody@example.org").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := repo.Get(context.Background(), &model.UserFilter{Email: "nobody@example.org"})
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_BulkUpdateStatus(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET status = ? WHERE id IN (?, ?, ?)`)).
		WithArgs(constant.UserStatusSuspended, uint64(4), uint64(5), uint64(6)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.BulkUpdateStatus(context.Background(), []uint64{4, 5, 6}, constant.UserStatusSuspended, false)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_BulkUpdateStatus_MembersOnly(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET status = ? WHERE id IN (?, ?) AND role NOT IN (?, ?)`)).
		WithArgs(constant.UserStatusSuspended, uint64(1), uint64(5), constant.RoleAdmin, constant.RoleModerator).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.BulkUpdateStatus(context.Background(), []uint64{1, 5}, constant.UserStatusSuspended, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_BulkDelete(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id IN (?, ?)`)).
		WithArgs(uint64(8), uint64(9)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.BulkDelete(context.Background(), []uint64{8, 9})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_List(t *testing.T) {
	repo, mock := newMock(t)
	filter := &model.UserListFilter{
		ListQuery: model.ListQuery{Page: 2, PerPage: 5, Search: "asha", SortBy: "name", SortDir: "asc"},
		Role:      "member",
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+userColumns+` FROM users WHERE role = ? AND (name LIKE ? OR email LIKE ? OR phone LIKE ?) ORDER BY name ASC LIMIT ? OFFSET ?`)).
		WithArgs("member", "%asha%", "%asha%", "%asha%", 5, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).AddRow(11, "Asha", "asha@example.org"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM users WHERE role = ? AND (name LIKE ? OR email LIKE ? OR phone LIKE ?)`)).
		WithArgs("member", "%asha%", "%asha%", "%asha%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))

	users, total, err := repo.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)
	require.Len(t, users, 1)
	assert.Equal(t, "Asha", users[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
