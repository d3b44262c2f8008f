package user

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/muhammadheryan/bhrc-portal/application/activity"
	"github.com/muhammadheryan/bhrc-portal/constant"
	"github.com/muhammadheryan/bhrc-portal/model"
	userrepo "github.com/muhammadheryan/bhrc-portal/repository/user"
	"github.com/muhammadheryan/bhrc-portal/utils/dberr"
	"github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/muhammadheryan/bhrc-portal/utils/logger"
	"github.com/muhammadheryan/bhrc-portal/utils/querybuilder"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ExportHeader = []string{"ID", "Name", "Email", "Phone", "Role", "Status", "Email Verified", "City", "State", "Last Login", "Created At"}

type UserApp interface {
	List(ctx context.Context, filter *model.UserListFilter) (*model.ListResponse[model.UserEntity], error)
	Get(ctx context.Context, principal *model.Principal, id uint64) (*model.UserEntity, error)
	Create(ctx context.Context, actor *model.Principal, req *model.CreateUserRequest) (*model.UserEntity, error)
	UpdateProfile(ctx context.Context, principal *model.Principal, req *model.UpdateProfileRequest) (*model.UserEntity, error)
	AdminUpdate(ctx context.Context, actor *model.Principal, id uint64, req *model.UpdateProfileRequest) (*model.UserEntity, error)
	UpdateStatus(ctx context.Context, actor *model.Principal, id uint64, req *model.UpdateUserStatusRequest) error
	UpdateRole(ctx context.Context, actor *model.Principal, id uint64, req *model.UpdateUserRoleRequest) error
	BulkUpdateStatus(ctx context.Context, actor *model.Principal, req *model.BulkStatusRequest) (*model.BulkResult, error)
	BulkDelete(ctx context.Context, actor *model.Principal, req *model.BulkDeleteRequest) (*model.BulkResult, error)
	Delete(ctx context.Context, actor *model.Principal, id uint64) error
	Export(ctx context.Context, filter *model.UserListFilter) ([][]string, error)
	Stats(ctx context.Context) (*model.UserStats, error)
}

type UserAppImpl struct {
	userRepo    userrepo.UserRepository
	activityApp activity.ActivityApp
}

func NewUserApp(userRepo userrepo.UserRepository, activityApp activity.ActivityApp) UserApp {
	return &UserAppImpl{
		userRepo:    userRepo,
		activityApp: activityApp,
	}
}

func (s *UserAppImpl) List(ctx context.Context, filter *model.UserListFilter) (*model.ListResponse[model.UserEntity], error) {
	users, total, err := s.userRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[List] err userRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.ListResponse[model.UserEntity]{
		Items:      users,
		Pagination: querybuilder.PageOf(filter.ListQuery).Meta(total),
	}, nil
}

func (s *UserAppImpl) find(ctx context.Context, method string, id uint64) (*model.UserEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: id})
	if err != nil {
		logger.Error("["+method+"] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound).WithMessage("user not found")
	}
	return user, nil
}

// Get lets anyone read their own record and staff read any record.
func (s *UserAppImpl) Get(ctx context.Context, principal *model.Principal, id uint64) (*model.UserEntity, error) {
	if principal.UserID != id && !constant.Allowed(principal.Role, constant.CapUserRead) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	return s.find(ctx, "Get", id)
}

func (s *UserAppImpl) Create(ctx context.Context, actor *model.Principal, req *model.CreateUserRequest) (*model.UserEntity, error) {
	role := constant.Role(req.Role)
	// only admins hand out back-office roles
	if role.IsStaff() && !constant.Allowed(actor.Role, constant.CapUserRoleManage) {
		return nil, errors.SetCustomError(constant.ErrForbidden).WithMessage("only admins can create staff accounts")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	for _, filter := range []*model.UserFilter{{Email: email}, {Phone: req.Phone}} {
		existing, err := s.userRepo.Get(ctx, filter)
		if err != nil {
			logger.Error("[Create] err userRepo.Get", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if existing != nil {
			return nil, errors.SetCustomError(constant.ErrCredentialExists)
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Create] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	user, err := s.userRepo.Create(ctx, &model.UserEntity{
		Name:          strings.TrimSpace(req.Name),
		Email:         email,
		Phone:         req.Phone,
		PasswordHash:  string(hashed),
		Role:          role,
		Status:        constant.UserStatusActive,
		EmailVerified: true,
	})
	if err != nil {
		if dberr.IsDuplicate(err) {
			return nil, errors.SetCustomError(constant.ErrCredentialExists)
		}
		logger.Error("[Create] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &actor.UserID,
		Action:      constant.ActionUserCreated,
		Description: "Created user " + user.Email,
		Metadata:    map[string]any{"user_id": user.ID, "role": user.Role},
	})
	return user, nil
}

// guardStaff stops actors without role rights from touching back-office accounts.
func guardStaff(actor *model.Principal, target *model.UserEntity) error {
	if target.Role.IsStaff() && !constant.Allowed(actor.Role, constant.CapUserRoleManage) {
		return errors.SetCustomError(constant.ErrForbidden).WithMessage("only admins can manage staff accounts")
	}
	return nil
}

func (s *UserAppImpl) update(ctx context.Context, method string, user *model.UserEntity, req *model.UpdateProfileRequest) (*model.UserEntity, error) {
	if req.Phone != user.Phone {
		other, err := s.userRepo.Get(ctx, &model.UserFilter{Phone: req.Phone})
		if err != nil {
			logger.Error("["+method+"] err userRepo.Get phone", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if other != nil && other.ID != user.ID {
			return nil, errors.SetCustomError(constant.ErrCredentialExists)
		}
	}

	user.Name = strings.TrimSpace(req.Name)
	user.Phone = req.Phone
	user.Address = req.Address
	user.City = req.City
	user.State = req.State
	user.Occupation = req.Occupation

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		logger.Error("["+method+"] err userRepo.UpdateProfile", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return user, nil
}

func (s *UserAppImpl) UpdateProfile(ctx context.Context, principal *model.Principal, req *model.UpdateProfileRequest) (*model.UserEntity, error) {
	user, err := s.find(ctx, "UpdateProfile", principal.UserID)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, "UpdateProfile", user, req)
}

func (s *UserAppImpl) AdminUpdate(ctx context.Context, actor *model.Principal, id uint64, req *model.UpdateProfileRequest) (*model.UserEntity, error) {
	user, err := s.find(ctx, "AdminUpdate", id)
	if err != nil {
		return nil, err
	}
	if err := guardStaff(actor, user); err != nil {
		return nil, err
	}
	user, err = s.update(ctx, "AdminUpdate", user, req)
	if err != nil {
		return nil, err
	}

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &actor.UserID,
		Action:      constant.ActionUserUpdated,
		Description: "Updated user " + user.Email,
		Metadata:    map[string]any{"user_id": id},
	})
	return user, nil
}

func (s *UserAppImpl) UpdateStatus(ctx context.Context, actor *model.Principal, id uint64, req *model.UpdateUserStatusRequest) error {
	if actor.UserID == id {
		return errors.SetCustomError(constant.ErrSelfAction).WithMessage("you cannot change your own status")
	}
	user, err := s.find(ctx, "UpdateStatus", id)
	if err != nil {
		return err
	}
	if err := guardStaff(actor, user); err != nil {
		return err
	}

	status := constant.UserStatus(req.Status)
	if err := s.userRepo.UpdateStatus(ctx, id, status); err != nil {
		logger.Error("[UpdateStatus] err userRepo.UpdateStatus", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &actor.UserID,
		Action:      constant.ActionUserStatusChanged,
		Description: "Changed status of " + user.Email + " to " + req.Status,
		Metadata:    map[string]any{"user_id": id, "from": user.Status, "to": status},
	})
	return nil
}

func (s *UserAppImpl) UpdateRole(ctx context.Context, actor *model.Principal, id uint64, req *model.UpdateUserRoleRequest) error {
	if actor.UserID == id {
		return errors.SetCustomError(constant.ErrSelfAction).WithMessage("you cannot change your own role")
	}
	user, err := s.find(ctx, "UpdateRole", id)
	if err != nil {
		return err
	}

	role := constant.Role(req.Role)
	if err := s.userRepo.UpdateRole(ctx, id, role); err != nil {
		logger.Error("[UpdateRole] err userRepo.UpdateRole", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &actor.UserID,
		Action:      constant.ActionUserRoleChanged,
		Description: "Changed role of " + user.Email + " to " + req.Role,
		Metadata:    map[string]any{"user_id": id, "from": user.Role, "to": role},
	})
	return nil
}

// uniqueIDs drops duplicates and reports whether self is among ids.
func uniqueIDs(ids []uint64, self uint64) ([]uint64, bool) {
	seen := make(map[uint64]bool, len(ids))
	out := make([]uint64, 0, len(ids))
	hasSelf := false
	for _, id := range ids {
		if id == self {
			hasSelf = true
		}
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out, hasSelf
}

func (s *UserAppImpl) BulkUpdateStatus(ctx context.Context, actor *model.Principal, req *model.BulkStatusRequest) (*model.BulkResult, error) {
	ids, hasSelf := uniqueIDs(req.IDs, actor.UserID)
	if hasSelf {
		return nil, errors.SetCustomError(constant.ErrSelfAction).WithMessage("you cannot change your own status")
	}

	// staff rows are left untouched unless the actor may manage roles
	membersOnly := !constant.Allowed(actor.Role, constant.CapUserRoleManage)
	n, err := s.userRepo.BulkUpdateStatus(ctx, ids, constant.UserStatus(req.Status), membersOnly)
	if err != nil {
		logger.Error("[BulkUpdateStatus] err userRepo.BulkUpdateStatus", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &actor.UserID,
		Action:      constant.ActionUsersBulkStatus,
		Description: "Bulk status change to " + req.Status + " for " + strconv.Itoa(len(ids)) + " users",
		Metadata:    map[string]any{"user_ids": ids, "status": req.Status},
	})
	return &model.BulkResult{Affected: n}, nil
}

// BulkDelete rejects the whole request when it names the caller; nothing is deleted then.
func (s *UserAppImpl) BulkDelete(ctx context.Context, actor *model.Principal, req *model.BulkDeleteRequest) (*model.BulkResult, error) {
	ids, hasSelf := uniqueIDs(req.IDs, actor.UserID)
	if hasSelf {
		return nil, errors.SetCustomError(constant.ErrSelfAction).WithMessage("you cannot delete your own account")
	}

	n, err := s.userRepo.BulkDelete(ctx, ids)
	if err != nil {
		logger.Error("[BulkDelete] err userRepo.BulkDelete", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &actor.UserID,
		Action:      constant.ActionUsersBulkDeleted,
		Description: "Deleted " + strconv.FormatInt(n, 10) + " users",
		Metadata:    map[string]any{"user_ids": ids},
	})
	return &model.BulkResult{Affected: n}, nil
}

func (s *UserAppImpl) Delete(ctx context.Context, actor *model.Principal, id uint64) error {
	if actor.UserID == id {
		return errors.SetCustomError(constant.ErrSelfAction).WithMessage("you cannot delete your own account")
	}
	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[Delete] err userRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound).WithMessage("user not found")
	}

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &actor.UserID,
		Action:      constant.ActionUserDeleted,
		Description: "Deleted user " + strconv.FormatUint(id, 10),
		Metadata:    map[string]any{"user_id": id},
	})
	return nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

func (s *UserAppImpl) Export(ctx context.Context, filter *model.UserListFilter) ([][]string, error) {
	users, err := s.userRepo.Export(ctx, filter)
	if err != nil {
		logger.Error("[Export] err userRepo.Export", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			strconv.FormatUint(u.ID, 10),
			u.Name,
			u.Email,
			u.Phone,
			string(u.Role),
			string(u.Status),
			strconv.FormatBool(u.EmailVerified),
			u.City,
			u.State,
			formatTime(u.LastLogin),
			formatTime(&u.CreatedAt),
		})
	}
	return rows, nil
}

func (s *UserAppImpl) Stats(ctx context.Context) (*model.UserStats, error) {
	stats, err := s.userRepo.Stats(ctx)
	if err != nil {
		logger.Error("[Stats] err userRepo.Stats", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return stats, nil
}
