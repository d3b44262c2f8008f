package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/bhrc-portal/application/setting"
	"github.com/muhammadheryan/bhrc-portal/cmd/config"
	"github.com/muhammadheryan/bhrc-portal/constant"
	activitymocks "github.com/muhammadheryan/bhrc-portal/mocks/application/activity"
	notificationmocks "github.com/muhammadheryan/bhrc-portal/mocks/application/notification"
	settingmocks "github.com/muhammadheryan/bhrc-portal/mocks/application/setting"
	eventmocks "github.com/muhammadheryan/bhrc-portal/mocks/repository/event"
	txmocks "github.com/muhammadheryan/bhrc-portal/mocks/repository/tx"
	"github.com/muhammadheryan/bhrc-portal/model"
	cerr "github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	txRepo          *txmocks.TxRepository
	eventRepo       *eventmocks.EventRepository
	settingApp      *settingmocks.SettingApp
	notificationApp *notificationmocks.NotificationApp
	activityApp     *activitymocks.ActivityApp
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:          txmocks.NewTxRepository(t),
		eventRepo:       eventmocks.NewEventRepository(t),
		settingApp:      settingmocks.NewSettingApp(t),
		notificationApp: notificationmocks.NewNotificationApp(t),
		activityApp:     activitymocks.NewActivityApp(t),
	}
}

func (f fields) app() *EventAppImpl {
	return &EventAppImpl{
		config:          &config.Config{AppName: "BHRC"},
		txRepo:          f.txRepo,
		eventRepo:       f.eventRepo,
		settingApp:      f.settingApp,
		notificationApp: f.notificationApp,
		activityApp:     f.activityApp,
	}
}

func errType(t *testing.T, err error) constant.ErrorType {
	t.Helper()
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce), "error type = %T, want CustomError", err)
	return ce.ErrorType()
}

func intptr(v int) *int { return &v }

func workshop(capacity *int) *model.EventEntity {
	return &model.EventEntity{
		ID: 7, Title: "Rights Workshop", EventDate: time.Date(2030, 1, 10, 10, 0, 0, 0, time.UTC),
		Location: "Patna", Capacity: capacity, RegistrationRequired: true,
		Status: constant.EventStatusUpcoming, IsPublic: true,
	}
}

var seat = &model.EventRegistrationRequest{
	ParticipantName: "Ravi", ParticipantEmail: "Ravi@Example.org", ParticipantPhone: "9876543210",
}

func TestEventApp_Register(t *testing.T) {
	tests := []struct {
		name     string
		event    *model.EventEntity
		existing *model.EventRegistrationEntity
		count    int64
		mockCall func(f fields)
		wantErr  constant.ErrorType
	}{
		{
			name:  "seat booked",
			event: workshop(intptr(2)),
			count: 1,
			mockCall: func(f fields) {
				f.eventRepo.On("CreateRegistrationTx", mock.Anything, mock.Anything, mock.MatchedBy(func(r *model.EventRegistrationEntity) bool {
					return r.ParticipantEmail == "ravi@example.org" && r.AttendanceStatus == constant.AttendancePending
				})).Return(uint64(31), nil).Once()
				f.txRepo.On("CommitTx", mock.Anything).Return(nil).Once()
				f.settingApp.On("Snapshot", mock.Anything).Return(setting.NewSnapshot(nil), nil).Once()
				f.notificationApp.On("Send", mock.Anything, mock.Anything).Return(nil).Once()
				f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()
			},
		},
		{
			name:    "capacity reached",
			event:   workshop(intptr(2)),
			count:   2,
			wantErr: constant.ErrEventFull,
		},
		{
			name:     "already registered",
			event:    workshop(nil),
			existing: &model.EventRegistrationEntity{ID: 5, AttendanceStatus: constant.AttendanceConfirmed},
			wantErr:  constant.ErrDuplicateRegistration,
		},
		{
			name:     "cancelled row is reused",
			event:    workshop(nil),
			existing: &model.EventRegistrationEntity{ID: 5, AttendanceStatus: constant.AttendanceCancelled},
			mockCall: func(f fields) {
				f.eventRepo.On("ReactivateRegistrationTx", mock.Anything, mock.Anything, uint64(5), mock.Anything).Return(nil).Once()
				f.txRepo.On("CommitTx", mock.Anything).Return(nil).Once()
				f.settingApp.On("Snapshot", mock.Anything).Return(setting.NewSnapshot(nil), nil).Once()
				f.notificationApp.On("Send", mock.Anything, mock.Anything).Return(nil).Once()
				f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()
			},
		},
		{
			name: "event no longer upcoming",
			event: func() *model.EventEntity {
				e := workshop(nil)
				e.Status = constant.EventStatusCompleted
				return e
			}(),
			wantErr: constant.ErrRegistrationClosed,
		},
		{
			name: "walk-in event",
			event: func() *model.EventEntity {
				e := workshop(nil)
				e.RegistrationRequired = false
				return e
			}(),
			wantErr: constant.ErrRegistrationClosed,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tx := &sqlx.Tx{}
			f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
			f.txRepo.On("RollbackTx", tx).Return(nil).Maybe()
			f.eventRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(7)).Return(tt.event, nil).Once()
			if tt.event.RegistrationRequired && tt.event.Status == constant.EventStatusUpcoming {
				f.eventRepo.On("GetRegistrationByEmailTx", mock.Anything, tx, uint64(7), "ravi@example.org").Return(tt.existing, nil).Once()
			}
			if tt.event.Capacity != nil {
				f.eventRepo.On("CountActiveRegistrationsTx", mock.Anything, tx, uint64(7)).Return(tt.count, nil).Once()
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().Register(context.Background(), nil, 7, seat)
			if tt.wantErr != constant.Successful {
				assert.Equal(t, tt.wantErr, errType(t, err))
				f.txRepo.AssertNotCalled(t, "CommitTx", mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Rights Workshop", *got.EventTitle)
		})
	}
}

func TestEventApp_CancelRegistration(t *testing.T) {
	owner := uint64(4)

	t.Run("participant cancels own seat", func(t *testing.T) {
		f := newFields(t)
		f.eventRepo.On("GetRegistration", mock.Anything, uint64(9)).Return(&model.EventRegistrationEntity{
			ID: 9, EventID: 7, UserID: &owner, AttendanceStatus: constant.AttendanceConfirmed,
		}, nil).Once()
		f.eventRepo.On("UpdateAttendance", mock.Anything, uint64(9), constant.AttendanceCancelled).Return(nil).Once()
		f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()

		err := f.app().CancelRegistration(context.Background(), &model.Principal{UserID: 4, Role: constant.RoleMember}, 9)
		require.NoError(t, err)
	})

	t.Run("someone else's seat", func(t *testing.T) {
		f := newFields(t)
		f.eventRepo.On("GetRegistration", mock.Anything, uint64(9)).Return(&model.EventRegistrationEntity{
			ID: 9, UserID: &owner, ParticipantEmail: "a@example.org", AttendanceStatus: constant.AttendancePending,
		}, nil).Once()

		err := f.app().CancelRegistration(context.Background(), &model.Principal{UserID: 8, Email: "b@example.org", Role: constant.RoleMember}, 9)
		assert.Equal(t, constant.ErrForbidden, errType(t, err))
	})

	t.Run("attended cannot be cancelled", func(t *testing.T) {
		f := newFields(t)
		f.eventRepo.On("GetRegistration", mock.Anything, uint64(9)).Return(&model.EventRegistrationEntity{
			ID: 9, UserID: &owner, AttendanceStatus: constant.AttendanceAttended,
		}, nil).Once()

		err := f.app().CancelRegistration(context.Background(), &model.Principal{UserID: 4, Role: constant.RoleMember}, 9)
		assert.Equal(t, constant.ErrInvalidStatusTransition, errType(t, err))
	})
}

func TestEventApp_Create(t *testing.T) {
	admin := &model.Principal{UserID: 1, Role: constant.RoleAdmin}

	t.Run("end before start", func(t *testing.T) {
		f := newFields(t)
		_, err := f.app().Create(context.Background(), admin, &model.EventRequest{
			Title: "Camp", EventType: "campaign", EventDate: "2030-01-10T10:00", EndDate: "2030-01-09T10:00",
		})
		assert.Equal(t, constant.ErrValidation, errType(t, err))
	})

	t.Run("defaults to upcoming and public", func(t *testing.T) {
		f := newFields(t)
		f.eventRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.EventEntity) bool {
			return e.Status == constant.EventStatusUpcoming && e.IsPublic && *e.CreatedBy == 1
		})).Return(uint64(3), nil).Once()
		f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()

		got, err := f.app().Create(context.Background(), admin, &model.EventRequest{
			Title: "Camp", Description: "Legal aid camp", EventType: "campaign", EventDate: "2030-01-10T10:00", Location: "Gaya",
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), got.ID)
	})
}

func TestEventApp_Update(t *testing.T) {
	admin := &model.Principal{UserID: 1, Role: constant.RoleAdmin}
	tests := []struct {
		name     string
		capacity *int
		count    int64
		wantErr  constant.ErrorType
	}{
		{name: "capacity raised", capacity: intptr(20), count: 8},
		{name: "capacity equal to live registrations", capacity: intptr(8), count: 8},
		{name: "capacity below live registrations", capacity: intptr(2), count: 8, wantErr: constant.ErrValidation},
		{name: "capacity removed", capacity: nil},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tx := &sqlx.Tx{}
			f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
			f.txRepo.On("RollbackTx", tx).Return(nil).Maybe()
			f.eventRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(7)).Return(workshop(intptr(10)), nil).Once()
			if tt.capacity != nil {
				f.eventRepo.On("CountActiveRegistrationsTx", mock.Anything, tx, uint64(7)).Return(tt.count, nil).Once()
			}
			if tt.wantErr == constant.Successful {
				f.eventRepo.On("UpdateTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()
			}

			got, err := f.app().Update(context.Background(), admin, 7, &model.EventRequest{
				Title: "Rights Workshop", EventType: "workshop", EventDate: "2030-01-10T10:00", Location: "Patna",
				Capacity: tt.capacity, RegistrationRequired: true,
			})
			if tt.wantErr != constant.Successful {
				assert.Equal(t, tt.wantErr, errType(t, err))
				var ce cerr.CustomError
				require.True(t, errors.As(err, &ce))
				require.Len(t, ce.Fields(), 1)
				assert.Equal(t, "capacity", ce.Fields()[0].Field)
				f.eventRepo.AssertNotCalled(t, "UpdateTx", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.capacity, got.Capacity)
		})
	}
}

func TestEventApp_Get(t *testing.T) {
	f := newFields(t)
	private := workshop(nil)
	private.IsPublic = false
	f.eventRepo.On("GetByID", mock.Anything, uint64(7)).Return(private, nil).Twice()

	_, err := f.app().Get(context.Background(), nil, 7)
	assert.Equal(t, constant.ErrNotFound, errType(t, err))

	got, err := f.app().Get(context.Background(), &model.Principal{UserID: 2, Role: constant.RoleModerator}, 7)
	require.NoError(t, err)
	assert.False(t, got.IsPublic)
}
