package activity

import (
	"context"
	"encoding/json"
	"time"

	"github.com/muhammadheryan/bhrc-portal/constant"
	"github.com/muhammadheryan/bhrc-portal/model"
	activityrepo "github.com/muhammadheryan/bhrc-portal/repository/activity"
	"github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/muhammadheryan/bhrc-portal/utils/logger"
	"github.com/muhammadheryan/bhrc-portal/utils/querybuilder"
	"go.uber.org/zap"
)

const writeTimeout = 5 * time.Second

type ActivityApp interface {
	// Log records entry in the background. It never fails the caller.
	Log(ctx context.Context, entry model.ActivityEntry)
	List(ctx context.Context, filter *model.ActivityFilter) (*model.ListResponse[model.ActivityEntity], error)
	Recent(ctx context.Context, limit int) ([]model.ActivityEntity, error)
}

type ActivityAppImpl struct {
	activityRepo activityrepo.ActivityRepository
	// done is signalled after each background write; tests use it to wait.
	done func()
}

func NewActivityApp(activityRepo activityrepo.ActivityRepository) ActivityApp {
	return &ActivityAppImpl{activityRepo: activityRepo, done: func() {}}
}

func (s *ActivityAppImpl) Log(ctx context.Context, entry model.ActivityEntry) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("action", entry.Action),
		zap.String("description", entry.Description),
		zap.String("ip", entry.IP),
	}
	if entry.ActorID != nil {
		fields = append(fields, zap.Uint64("actor_id", *entry.ActorID))
	}
	logger.Info("activity", fields...)

	data := &model.ActivityEntity{
		UserID:      entry.ActorID,
		Action:      entry.Action,
		Description: entry.Description,
	}
	if entry.IP != "" {
		ip := entry.IP
		data.IPAddress = &ip
	}
	if len(entry.Metadata) > 0 {
		raw, err := json.Marshal(entry.Metadata)
		if err == nil {
			meta := string(raw)
			data.Metadata = &meta
		}
	}

	// the request context is cancelled once the response is written
	bg := context.WithoutCancel(ctx)
	go func() {
		defer s.done()
		wctx, cancel := context.WithTimeout(bg, writeTimeout)
		defer cancel()
		if err := s.activityRepo.Create(wctx, data); err != nil {
			logger.Error("[Log] err activityRepo.Create", zap.String("action", entry.Action), zap.String("error", err.Error()))
		}
	}()
}

func (s *ActivityAppImpl) List(ctx context.Context, filter *model.ActivityFilter) (*model.ListResponse[model.ActivityEntity], error) {
	items, total, err := s.activityRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[List] err activityRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.ListResponse[model.ActivityEntity]{
		Items:      items,
		Pagination: querybuilder.PageOf(filter.ListQuery).Meta(total),
	}, nil
}

func (s *ActivityAppImpl) Recent(ctx context.Context, limit int) ([]model.ActivityEntity, error) {
	if limit <= 0 || limit > querybuilder.MaxPerPage {
		limit = querybuilder.DefaultPerPage
	}
	items, err := s.activityRepo.Recent(ctx, limit)
	if err != nil {
		logger.Error("[Recent] err activityRepo.Recent", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}
