package setting

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/muhammadheryan/bhrc-portal/application/activity"
	"github.com/muhammadheryan/bhrc-portal/constant"
	"github.com/muhammadheryan/bhrc-portal/model"
	redisrepo "github.com/muhammadheryan/bhrc-portal/repository/redis"
	settingrepo "github.com/muhammadheryan/bhrc-portal/repository/setting"
	txrepo "github.com/muhammadheryan/bhrc-portal/repository/tx"
	"github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/muhammadheryan/bhrc-portal/utils/logger"
	"go.uber.org/zap"
)

const (
	cacheKey = "settings:snapshot"
	cacheTTL = 10 * time.Minute
)

type SettingApp interface {
	// Snapshot returns the current typed settings. Never returns nil on success.
	Snapshot(ctx context.Context) (*Snapshot, error)
	List(ctx context.Context) (map[constant.SettingCategory][]model.SettingEntity, error)
	Get(ctx context.Context, key string) (*model.SettingEntity, error)
	Public(ctx context.Context) (map[constant.SettingCategory]map[string]any, error)
	Update(ctx context.Context, actor *model.Principal, key string, req *model.UpdateSettingRequest) (*model.SettingEntity, error)
	BulkUpdate(ctx context.Context, actor *model.Principal, req *model.BulkSettingsRequest) error
	Backup(ctx context.Context) ([]model.SettingEntity, error)
	Restore(ctx context.Context, actor *model.Principal, req *model.RestoreSettingsRequest) error
}

type SettingAppImpl struct {
	settingRepo settingrepo.SettingRepository
	txRepo      txrepo.TxRepository
	redisRepo   redisrepo.Repository
	activityApp activity.ActivityApp
}

func NewSettingApp(settingRepo settingrepo.SettingRepository, txRepo txrepo.TxRepository, redisRepo redisrepo.Repository, activityApp activity.ActivityApp) SettingApp {
	return &SettingAppImpl{
		settingRepo: settingRepo,
		txRepo:      txRepo,
		redisRepo:   redisRepo,
		activityApp: activityApp,
	}
}

func (s *SettingAppImpl) Snapshot(ctx context.Context) (*Snapshot, error) {
	raw, err := s.redisRepo.Get(ctx, cacheKey)
	if err == nil {
		var rows []model.SettingEntity
		if json.Unmarshal([]byte(raw), &rows) == nil {
			return NewSnapshot(rows), nil
		}
	} else if !redisrepo.IsNil(err) {
		logger.Warn("[Snapshot] err redisRepo.Get", zap.String("error", err.Error()))
	}

	rows, err := s.settingRepo.List(ctx)
	if err != nil {
		logger.Error("[Snapshot] err settingRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if encoded, err := json.Marshal(rows); err == nil {
		if err := s.redisRepo.SetWithTTL(ctx, cacheKey, string(encoded), cacheTTL); err != nil {
			logger.Warn("[Snapshot] err redisRepo.SetWithTTL", zap.String("error", err.Error()))
		}
	}
	return NewSnapshot(rows), nil
}

// invalidate drops the cached snapshot so the next read sees the write.
func (s *SettingAppImpl) invalidate(ctx context.Context) {
	if err := s.redisRepo.Delete(ctx, cacheKey); err != nil {
		logger.Error("[invalidate] err redisRepo.Delete", zap.String("error", err.Error()))
	}
}

func (s *SettingAppImpl) List(ctx context.Context) (map[constant.SettingCategory][]model.SettingEntity, error) {
	rows, err := s.settingRepo.List(ctx)
	if err != nil {
		logger.Error("[List] err settingRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	grouped := map[constant.SettingCategory][]model.SettingEntity{}
	for _, row := range rows {
		grouped[row.Category] = append(grouped[row.Category], row)
	}
	return grouped, nil
}

func (s *SettingAppImpl) Get(ctx context.Context, key string) (*model.SettingEntity, error) {
	row, err := s.settingRepo.GetByKey(ctx, key)
	if err != nil {
		logger.Error("[Get] err settingRepo.GetByKey", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if row == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return row, nil
}

func (s *SettingAppImpl) Public(ctx context.Context) (map[constant.SettingCategory]map[string]any, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Grouped(true), nil
}

func typeError(key string, t constant.SettingType) errors.FieldError {
	return errors.FieldError{Field: key, Message: key + " must be a valid " + string(t) + " value"}
}

func (s *SettingAppImpl) Update(ctx context.Context, actor *model.Principal, key string, req *model.UpdateSettingRequest) (*model.SettingEntity, error) {
	row, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ValidValue(row.Type, req.Value) {
		return nil, errors.ValidationError([]errors.FieldError{typeError("value", row.Type)})
	}

	if _, err := s.settingRepo.UpdateValue(ctx, key, req.Value, actor.UserID); err != nil {
		logger.Error("[Update] err settingRepo.UpdateValue", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	s.invalidate(ctx)

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &actor.UserID,
		Action:      constant.ActionSettingsUpdated,
		Description: "Updated setting " + key,
		Metadata:    map[string]any{"key": key},
	})

	row.Value = req.Value
	row.UpdatedBy = &actor.UserID
	return row, nil
}

func (s *SettingAppImpl) BulkUpdate(ctx context.Context, actor *model.Principal, req *model.BulkSettingsRequest) error {
	rows, err := s.settingRepo.List(ctx)
	if err != nil {
		logger.Error("[BulkUpdate] err settingRepo.List", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	types := make(map[string]constant.SettingType, len(rows))
	for _, row := range rows {
		types[row.Key] = row.Type
	}

	keys := make([]string, 0, len(req.Settings))
	for key := range req.Settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var fields []errors.FieldError
	for _, key := range keys {
		t, ok := types[key]
		switch {
		case !ok:
			fields = append(fields, errors.FieldError{Field: key, Message: "unknown setting " + key})
		case !ValidValue(t, req.Settings[key]):
			fields = append(fields, typeError(key, t))
		}
	}
	if len(fields) > 0 {
		return errors.ValidationError(fields)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[BulkUpdate] err txRepo.BeginTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	for _, key := range keys {
		if _, err := s.settingRepo.UpdateValueTx(ctx, tx, key, req.Settings[key], actor.UserID); err != nil {
			logger.Error("[BulkUpdate] err settingRepo.UpdateValueTx", zap.String("key", key), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[BulkUpdate] err txRepo.CommitTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	s.invalidate(ctx)

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &actor.UserID,
		Action:      constant.ActionSettingsUpdated,
		Description: "Bulk updated settings",
		Metadata:    map[string]any{"keys": keys},
	})
	return nil
}

func (s *SettingAppImpl) Backup(ctx context.Context) ([]model.SettingEntity, error) {
	rows, err := s.settingRepo.List(ctx)
	if err != nil {
		logger.Error("[Backup] err settingRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return rows, nil
}

// Restore writes every supplied setting in one transaction; either all apply or none.
func (s *SettingAppImpl) Restore(ctx context.Context, actor *model.Principal, req *model.RestoreSettingsRequest) error {
	var fields []errors.FieldError
	for _, row := range req.Settings {
		if row.Key == "" {
			fields = append(fields, errors.FieldError{Field: "key", Message: "key is required"})
			continue
		}
		if !ValidValue(row.Type, row.Value) {
			fields = append(fields, typeError(row.Key, row.Type))
		}
	}
	if len(fields) > 0 {
		return errors.ValidationError(fields)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Restore] err txRepo.BeginTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	for i := range req.Settings {
		row := req.Settings[i]
		if row.Category == "" {
			row.Category = constant.SettingGeneral
		}
		row.UpdatedBy = &actor.UserID
		if err := s.settingRepo.UpsertTx(ctx, tx, &row); err != nil {
			logger.Error("[Restore] err settingRepo.UpsertTx", zap.String("key", row.Key), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Restore] err txRepo.CommitTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	s.invalidate(ctx)

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &actor.UserID,
		Action:      constant.ActionSettingsRestored,
		Description: "Restored settings from backup",
		Metadata:    map[string]any{"count": len(req.Settings)},
	})
	return nil
}
