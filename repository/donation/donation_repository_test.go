package donation

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/bhrc-portal/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (DonationRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewDonationRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestSQL_UpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "row still in expected status", affected: 1, want: true},
		{name: "status moved or row gone", affected: 0, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMock(t)
			mock.ExpectExec(regexp.QuoteMeta(updateDonationStatusQuery)).
				WithArgs(constant.DonationStatusCompleted, "TXN-1", uint64(7), constant.DonationStatusPending).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			got, err := repo.UpdateStatus(context.Background(), 7, constant.DonationStatusPending, constant.DonationStatusCompleted, "TXN-1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQL_Delete_SkipsCompleted(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM donations WHERE id = ? AND status <> 'completed'`)).
		WithArgs(uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
