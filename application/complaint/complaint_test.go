package complaint

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/bhrc-portal/application/setting"
	"github.com/muhammadheryan/bhrc-portal/cmd/config"
	"github.com/muhammadheryan/bhrc-portal/constant"
	activitymocks "github.com/muhammadheryan/bhrc-portal/mocks/application/activity"
	notificationmocks "github.com/muhammadheryan/bhrc-portal/mocks/application/notification"
	settingmocks "github.com/muhammadheryan/bhrc-portal/mocks/application/setting"
	complaintmocks "github.com/muhammadheryan/bhrc-portal/mocks/repository/complaint"
	sequencemocks "github.com/muhammadheryan/bhrc-portal/mocks/repository/sequence"
	txmocks "github.com/muhammadheryan/bhrc-portal/mocks/repository/tx"
	usermocks "github.com/muhammadheryan/bhrc-portal/mocks/repository/user"
	"github.com/muhammadheryan/bhrc-portal/model"
	"github.com/muhammadheryan/bhrc-portal/thirdparty/mailer"
	cerr "github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	txRepo          *txmocks.TxRepository
	sequenceRepo    *sequencemocks.SequenceRepository
	complaintRepo   *complaintmocks.ComplaintRepository
	userRepo        *usermocks.UserRepository
	settingApp      *settingmocks.SettingApp
	notificationApp *notificationmocks.NotificationApp
	activityApp     *activitymocks.ActivityApp
}

var filedAt = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func newFields(t *testing.T) fields {
	return fields{
		txRepo:          txmocks.NewTxRepository(t),
		sequenceRepo:    sequencemocks.NewSequenceRepository(t),
		complaintRepo:   complaintmocks.NewComplaintRepository(t),
		userRepo:        usermocks.NewUserRepository(t),
		settingApp:      settingmocks.NewSettingApp(t),
		notificationApp: notificationmocks.NewNotificationApp(t),
		activityApp:     activitymocks.NewActivityApp(t),
	}
}

func (f fields) app() *ComplaintAppImpl {
	return &ComplaintAppImpl{
		config:          &config.Config{AppName: "BHRC"},
		txRepo:          f.txRepo,
		sequenceRepo:    f.sequenceRepo,
		complaintRepo:   f.complaintRepo,
		userRepo:        f.userRepo,
		settingApp:      f.settingApp,
		notificationApp: f.notificationApp,
		activityApp:     f.activityApp,
		now:             func() time.Time { return filedAt },
	}
}

func errType(t *testing.T, err error) constant.ErrorType {
	t.Helper()
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce), "error type = %T, want CustomError", err)
	return ce.ErrorType()
}

func fileRequest() *model.FileComplaintRequest {
	return &model.FileComplaintRequest{
		ComplainantName:  "Kavya <b>Rao</b>",
		ComplainantEmail: "Kavya@Example.org",
		ComplainantPhone: "9876543210",
		ComplaintType:    "police_misconduct",
		Subject:          "Unlawful detention",
		Description:      "Detained without cause <script>alert(1)</script> for two days.",
		IncidentDate:     "2024-03-10",
	}
}

func TestComplaintApp_File(t *testing.T) {
	t.Run("first complaint of the month", func(t *testing.T) {
		f := newFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.sequenceRepo.On("NextTx", mock.Anything, tx, "complaint:202403").Return(uint64(1), nil).Once()
		f.complaintRepo.On("CreateTx", mock.Anything, tx, mock.MatchedBy(func(c *model.ComplaintEntity) bool {
			return c.ComplaintNumber == "BHRC2024030001" &&
				c.ComplainantName == "Kavya Rao" &&
				c.ComplainantEmail == "kavya@example.org" &&
				c.Description == "Detained without cause  for two days." &&
				c.Status == constant.ComplaintStatusSubmitted &&
				c.Priority == constant.PriorityMedium &&
				c.IncidentDate != nil
		})).Return(uint64(31), nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()
		f.settingApp.On("Snapshot", mock.Anything).Return(setting.NewSnapshot(nil), nil).Once()
		f.notificationApp.On("Send", mock.Anything, mock.MatchedBy(func(m mailer.Message) bool {
			return m.To == "kavya@example.org"
		})).Return(nil).Once()
		f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()

		got, err := f.app().File(context.Background(), nil, fileRequest(), "10.0.0.9")
		require.NoError(t, err)
		assert.Equal(t, &model.FileComplaintResponse{
			ID:              31,
			ComplaintNumber: "BHRC2024030001",
			Status:          constant.ComplaintStatusSubmitted,
			CreatedAt:       filedAt,
		}, got)
	})

	t.Run("duplicate number is retried with the next sequence", func(t *testing.T) {
		f := newFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Twice()
		f.sequenceRepo.On("NextTx", mock.Anything, tx, "complaint:202403").Return(uint64(7), nil).Once()
		f.sequenceRepo.On("NextTx", mock.Anything, tx, "complaint:202403").Return(uint64(8), nil).Once()
		f.complaintRepo.On("CreateTx", mock.Anything, tx, mock.MatchedBy(func(c *model.ComplaintEntity) bool {
			return c.ComplaintNumber == "BHRC2024030007"
		})).Return(uint64(0), &mysql.MySQLError{Number: 1062}).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()
		f.complaintRepo.On("CreateTx", mock.Anything, tx, mock.MatchedBy(func(c *model.ComplaintEntity) bool {
			return c.ComplaintNumber == "BHRC2024030008"
		})).Return(uint64(40), nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()
		f.settingApp.On("Snapshot", mock.Anything).Return(setting.NewSnapshot(nil), nil).Once()
		f.notificationApp.On("Send", mock.Anything, mock.Anything).Return(errors.New("queue down")).Once()
		f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()

		member := &model.Principal{UserID: 5, Email: "kavya@example.org", Role: constant.RoleMember}
		got, err := f.app().File(context.Background(), member, fileRequest(), "")
		require.NoError(t, err)
		assert.Equal(t, "BHRC2024030008", got.ComplaintNumber)
	})

	t.Run("sequence failure", func(t *testing.T) {
		f := newFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.sequenceRepo.On("NextTx", mock.Anything, tx, "complaint:202403").Return(uint64(0), errors.New("lock wait timeout")).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()

		_, err := f.app().File(context.Background(), nil, fileRequest(), "")
		assert.Equal(t, constant.ErrInternal, errType(t, err))
	})
}

func TestComplaintApp_Track(t *testing.T) {
	stored := func() *model.ComplaintEntity {
		name := "Officer"
		assignee := uint64(2)
		return &model.ComplaintEntity{
			ID: 1, ComplaintNumber: "BHRC2024030001", ComplainantEmail: "kavya@example.org",
			Status: constant.ComplaintStatusUnderReview, AssignedTo: &assignee, AssignedToName: &name,
		}
	}
	tests := []struct {
		name    string
		req     *model.TrackComplaintRequest
		found   *model.ComplaintEntity
		wantErr bool
	}{
		{name: "match is case insensitive on email", req: &model.TrackComplaintRequest{ComplaintNumber: "BHRC2024030001", Email: "KAVYA@example.org"}, found: stored()},
		{name: "wrong email looks like a miss", req: &model.TrackComplaintRequest{ComplaintNumber: "BHRC2024030001", Email: "other@example.org"}, found: stored(), wantErr: true},
		{name: "unknown number", req: &model.TrackComplaintRequest{ComplaintNumber: "BHRC2024030001", Email: "kavya@example.org"}, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.complaintRepo.On("GetByNumber", mock.Anything, "BHRC2024030001").Return(tt.found, nil).Once()

			got, err := f.app().Track(context.Background(), tt.req)
			if tt.wantErr {
				assert.Equal(t, constant.ErrNotFound, errType(t, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, constant.ComplaintStatusUnderReview, got.Status)
			assert.Nil(t, got.AssignedToName)
		})
	}
}

func TestComplaintApp_UpdateStatus(t *testing.T) {
	moderator := &model.Principal{UserID: 2, Role: constant.RoleModerator}
	tests := []struct {
		name    string
		from    constant.ComplaintStatus
		to      string
		wantErr constant.ErrorType
	}{
		{name: "submitted to under_review", from: constant.ComplaintStatusSubmitted, to: "under_review"},
		{name: "investigating to resolved", from: constant.ComplaintStatusInvestigating, to: "resolved"},
		{name: "open to rejected", from: constant.ComplaintStatusUnderReview, to: "rejected"},
		{name: "cannot skip review", from: constant.ComplaintStatusSubmitted, to: "resolved", wantErr: constant.ErrInvalidStatusTransition},
		{name: "terminal stays terminal", from: constant.ComplaintStatusClosed, to: "under_review", wantErr: constant.ErrInvalidStatusTransition},
		{name: "same status", from: constant.ComplaintStatusInvestigating, to: "investigating", wantErr: constant.ErrInvalidStatusTransition},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.complaintRepo.On("GetByID", mock.Anything, uint64(1)).
				Return(&model.ComplaintEntity{ID: 1, ComplaintNumber: "BHRC2024030001", ComplainantEmail: "k@example.org", Status: tt.from}, nil).Once()
			if tt.wantErr == constant.Successful {
				f.complaintRepo.On("UpdateStatus", mock.Anything, uint64(1), constant.ComplaintStatus(tt.to), "Handled").Return(nil).Once()
				f.settingApp.On("Snapshot", mock.Anything).Return(setting.NewSnapshot(nil), nil).Once()
				f.notificationApp.On("Send", mock.Anything, mock.Anything).Return(nil).Once()
				f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()
			}

			got, err := f.app().UpdateStatus(context.Background(), moderator, 1,
				&model.UpdateComplaintStatusRequest{Status: tt.to, ResolutionNotes: "Handled"})
			if tt.wantErr != constant.Successful {
				assert.Equal(t, tt.wantErr, errType(t, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, constant.ComplaintStatus(tt.to), got.Status)
		})
	}
}

func TestComplaintApp_Assign(t *testing.T) {
	admin := &model.Principal{UserID: 1, Role: constant.RoleAdmin}

	t.Run("members cannot be assignees", func(t *testing.T) {
		f := newFields(t)
		f.complaintRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.ComplaintEntity{ID: 1}, nil).Once()
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 9}).
			Return(&model.UserEntity{ID: 9, Role: constant.RoleMember, Status: constant.UserStatusActive}, nil).Once()

		err := f.app().Assign(context.Background(), admin, 1, &model.AssignComplaintRequest{AssignedTo: 9})
		assert.Equal(t, constant.ErrInvalidRequest, errType(t, err))
	})

	t.Run("moderator assigned", func(t *testing.T) {
		f := newFields(t)
		f.complaintRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.ComplaintEntity{ID: 1}, nil).Once()
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 2}).
			Return(&model.UserEntity{ID: 2, Name: "Mod", Role: constant.RoleModerator, Status: constant.UserStatusActive}, nil).Once()
		f.complaintRepo.On("Assign", mock.Anything, uint64(1), uint64(2)).Return(nil).Once()
		f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()

		require.NoError(t, f.app().Assign(context.Background(), admin, 1, &model.AssignComplaintRequest{AssignedTo: 2}))
	})
}

func TestComplaintApp_Get(t *testing.T) {
	f := newFields(t)
	f.complaintRepo.On("GetByID", mock.Anything, uint64(1)).
		Return(&model.ComplaintEntity{ID: 1, ComplainantEmail: "owner@example.org"}, nil).Times(2)

	_, err := f.app().Get(context.Background(), &model.Principal{UserID: 5, Email: "owner@example.org", Role: constant.RoleMember}, 1)
	require.NoError(t, err)

	_, err = f.app().Get(context.Background(), &model.Principal{UserID: 6, Email: "other@example.org", Role: constant.RoleMember}, 1)
	assert.Equal(t, constant.ErrForbidden, errType(t, err))
}
