package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appuser "github.com/muhammadheryan/bhrc-portal/application/user"
	"github.com/muhammadheryan/bhrc-portal/constant"
	activitymocks "github.com/muhammadheryan/bhrc-portal/mocks/application/activity"
	usermocks "github.com/muhammadheryan/bhrc-portal/mocks/repository/user"
	"github.com/muhammadheryan/bhrc-portal/model"
	cerr "github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	userRepo    *usermocks.UserRepository
	activityApp *activitymocks.ActivityApp
}

func newFields(t *testing.T) fields {
	return fields{
		userRepo:    usermocks.NewUserRepository(t),
		activityApp: activitymocks.NewActivityApp(t),
	}
}

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

var (
	admin     = &model.Principal{UserID: 1, Email: "admin@bhrc.org", Role: constant.RoleAdmin}
	moderator = &model.Principal{UserID: 2, Email: "mod@bhrc.org", Role: constant.RoleModerator}
	member    = &model.Principal{UserID: 3, Email: "member@bhrc.org", Role: constant.RoleMember}
)

func TestUserApp_Get(t *testing.T) {
	tests := []struct {
		name      string
		principal *model.Principal
		id        uint64
		mockCall  func(f fields)
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name:      "success: member reads own record",
			principal: member,
			id:        3,
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 3}).Return(&model.UserEntity{ID: 3}, nil).Once()
			},
		},
		{
			name:      "success: moderator reads any record",
			principal: moderator,
			id:        3,
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 3}).Return(&model.UserEntity{ID: 3}, nil).Once()
			},
		},
		{
			name:      "error: member reads someone else",
			principal: member,
			id:        9,
			wantErr:   true,
			errCode:   constant.ErrForbidden,
		},
		{
			name:      "error: not found",
			principal: admin,
			id:        99,
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 99}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appuser.NewUserApp(f.userRepo, f.activityApp)

			got, err := app.Get(context.Background(), tt.principal, tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Get() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			assert.Equal(t, tt.id, got.ID)
		})
	}
}

func TestUserApp_Create(t *testing.T) {
	req := func(role string) *model.CreateUserRequest {
		return &model.CreateUserRequest{Name: "New Person", Email: "New@Example.org", Phone: "9123456780", Password: "Passw0rd!", Role: role}
	}
	tests := []struct {
		name     string
		actor    *model.Principal
		req      *model.CreateUserRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: created active and verified",
			actor: moderator,
			req:   req("volunteer"),
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "new@example.org"}).Return(nil, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "9123456780"}).Return(nil, nil).Once()
				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(u *model.UserEntity) bool {
						return u.Status == constant.UserStatusActive && u.EmailVerified && u.Role == constant.RoleVolunteer
					})).
					Return(&model.UserEntity{ID: 20, Email: "new@example.org", Role: constant.RoleVolunteer}, nil).
					Once()
				f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()
			},
		},
		{
			name:    "error: moderator cannot create admins",
			actor:   moderator,
			req:     req("admin"),
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name:  "error: email taken",
			actor: admin,
			req:   req("admin"),
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "new@example.org"}).Return(&model.UserEntity{ID: 4}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appuser.NewUserApp(f.userRepo, f.activityApp)

			_, err := app.Create(context.Background(), tt.actor, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestUserApp_SelfActions(t *testing.T) {
	f := newFields(t)
	app := appuser.NewUserApp(f.userRepo, f.activityApp)
	ctx := context.Background()

	assertErrCode(t, app.UpdateStatus(ctx, admin, admin.UserID, &model.UpdateUserStatusRequest{Status: "suspended"}), constant.ErrSelfAction)
	assertErrCode(t, app.UpdateRole(ctx, admin, admin.UserID, &model.UpdateUserRoleRequest{Role: "member"}), constant.ErrSelfAction)
	assertErrCode(t, app.Delete(ctx, admin, admin.UserID), constant.ErrSelfAction)

	_, err := app.BulkDelete(ctx, admin, &model.BulkDeleteRequest{IDs: []uint64{5, admin.UserID, 6}})
	assertErrCode(t, err, constant.ErrSelfAction)

	_, err = app.BulkUpdateStatus(ctx, admin, &model.BulkStatusRequest{IDs: []uint64{admin.UserID}, Status: "inactive"})
	assertErrCode(t, err, constant.ErrSelfAction)

	// nothing reached the repository
	f.userRepo.AssertNotCalled(t, "BulkDelete", mock.Anything, mock.Anything)
	f.userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUserApp_BulkDelete(t *testing.T) {
	f := newFields(t)
	f.userRepo.On("BulkDelete", mock.Anything, []uint64{5, 6}).Return(int64(2), nil).Once()
	f.activityApp.On("Log", mock.Anything, mock.MatchedBy(func(e model.ActivityEntry) bool {
		return e.Action == constant.ActionUsersBulkDeleted && *e.ActorID == admin.UserID
	})).Return().Once()

	app := appuser.NewUserApp(f.userRepo, f.activityApp)
	res, err := app.BulkDelete(context.Background(), admin, &model.BulkDeleteRequest{IDs: []uint64{5, 6, 5}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Affected)
}

func TestUserApp_UpdateStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 8}).Return(&model.UserEntity{ID: 8, Status: constant.UserStatusActive}, nil).Once()
		f.userRepo.On("UpdateStatus", mock.Anything, uint64(8), constant.UserStatusSuspended).Return(nil).Once()
		f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()

		app := appuser.NewUserApp(f.userRepo, f.activityApp)
		require.NoError(t, app.UpdateStatus(context.Background(), admin, 8, &model.UpdateUserStatusRequest{Status: "suspended"}))
	})

	t.Run("repository failure", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 8}).Return(&model.UserEntity{ID: 8}, nil).Once()
		f.userRepo.On("UpdateStatus", mock.Anything, uint64(8), constant.UserStatusSuspended).Return(errors.New("db error")).Once()

		app := appuser.NewUserApp(f.userRepo, f.activityApp)
		err := app.UpdateStatus(context.Background(), admin, 8, &model.UpdateUserStatusRequest{Status: "suspended"})
		assertErrCode(t, err, constant.ErrInternal)
	})
}

func TestUserApp_StaffAccounts(t *testing.T) {
	target := &model.UserEntity{ID: 9, Email: "chief@bhrc.org", Role: constant.RoleAdmin, Status: constant.UserStatusActive}

	t.Run("moderator cannot suspend an admin", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 9}).Return(target, nil).Once()

		app := appuser.NewUserApp(f.userRepo, f.activityApp)
		err := app.UpdateStatus(context.Background(), moderator, 9, &model.UpdateUserStatusRequest{Status: "suspended"})
		assertErrCode(t, err, constant.ErrForbidden)
		f.userRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("moderator cannot edit an admin profile", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 9}).Return(target, nil).Once()

		app := appuser.NewUserApp(f.userRepo, f.activityApp)
		_, err := app.AdminUpdate(context.Background(), moderator, 9, &model.UpdateProfileRequest{Name: "X", Phone: "9000000000"})
		assertErrCode(t, err, constant.ErrForbidden)
		f.userRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
	})

	t.Run("admin can suspend another admin", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 9}).Return(target, nil).Once()
		f.userRepo.On("UpdateStatus", mock.Anything, uint64(9), constant.UserStatusSuspended).Return(nil).Once()
		f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()

		app := appuser.NewUserApp(f.userRepo, f.activityApp)
		require.NoError(t, app.UpdateStatus(context.Background(), admin, 9, &model.UpdateUserStatusRequest{Status: "suspended"}))
	})

	tests := []struct {
		name        string
		actor       *model.Principal
		membersOnly bool
	}{
		{name: "bulk by moderator skips staff", actor: moderator, membersOnly: true},
		{name: "bulk by admin covers staff", actor: admin, membersOnly: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.userRepo.On("BulkUpdateStatus", mock.Anything, []uint64{9, 10}, constant.UserStatusSuspended, tt.membersOnly).Return(int64(1), nil).Once()
			f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()

			app := appuser.NewUserApp(f.userRepo, f.activityApp)
			res, err := app.BulkUpdateStatus(context.Background(), tt.actor, &model.BulkStatusRequest{IDs: []uint64{9, 10}, Status: "suspended"})
			require.NoError(t, err)
			assert.Equal(t, int64(1), res.Affected)
		})
	}
}

func TestUserApp_UpdateProfile(t *testing.T) {
	t.Run("phone belongs to someone else", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 3}).Return(&model.UserEntity{ID: 3, Phone: "9000000000"}, nil).Once()
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "9111111111"}).Return(&model.UserEntity{ID: 4}, nil).Once()

		app := appuser.NewUserApp(f.userRepo, f.activityApp)
		_, err := app.UpdateProfile(context.Background(), member, &model.UpdateProfileRequest{Name: "M", Phone: "9111111111"})
		assertErrCode(t, err, constant.ErrCredentialExists)
	})

	t.Run("success", func(t *testing.T) {
		f := newFields(t)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 3}).Return(&model.UserEntity{ID: 3, Phone: "9000000000"}, nil).Once()
		f.userRepo.
			On("UpdateProfile", mock.Anything, mock.MatchedBy(func(u *model.UserEntity) bool {
				return u.ID == 3 && u.City == "Pune" && u.Name == "Meera"
			})).
			Return(nil).
			Once()

		app := appuser.NewUserApp(f.userRepo, f.activityApp)
		got, err := app.UpdateProfile(context.Background(), member, &model.UpdateProfileRequest{Name: " Meera ", Phone: "9000000000", City: "Pune"})
		require.NoError(t, err)
		assert.Equal(t, "Meera", got.Name)
	})
}

func TestUserApp_Export(t *testing.T) {
	f := newFields(t)
	login := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	f.userRepo.On("Export", mock.Anything, mock.Anything).Return([]model.UserEntity{
		{ID: 1, Name: "Asha", Email: "asha@example.org", Role: constant.RoleMember, Status: constant.UserStatusActive, EmailVerified: true, LastLogin: &login, CreatedAt: login},
		{ID: 2, Name: "Ravi", Email: "ravi@example.org", Role: constant.RoleDonor, Status: constant.UserStatusPending},
	}, nil).Once()

	app := appuser.NewUserApp(f.userRepo, f.activityApp)
	rows, err := app.Export(context.Background(), &model.UserListFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Len(t, rows[0], len(appuser.ExportHeader))
	assert.Equal(t, "2024-03-01 09:30:00", rows[0][9])
	assert.Equal(t, "", rows[1][9])
	assert.Equal(t, "false", rows[1][6])
}
