package contact

import (
	"context"
	"strings"
	"time"

	"github.com/muhammadheryan/bhrc-portal/application/activity"
	"github.com/muhammadheryan/bhrc-portal/application/notification"
	"github.com/muhammadheryan/bhrc-portal/application/setting"
	"github.com/muhammadheryan/bhrc-portal/cmd/config"
	"github.com/muhammadheryan/bhrc-portal/constant"
	"github.com/muhammadheryan/bhrc-portal/model"
	contactrepo "github.com/muhammadheryan/bhrc-portal/repository/contact"
	redisrepo "github.com/muhammadheryan/bhrc-portal/repository/redis"
	"github.com/muhammadheryan/bhrc-portal/thirdparty/mailer"
	"github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/muhammadheryan/bhrc-portal/utils/htmlsanitize"
	"github.com/muhammadheryan/bhrc-portal/utils/logger"
	"github.com/muhammadheryan/bhrc-portal/utils/querybuilder"
	"go.uber.org/zap"
)

type ContactApp interface {
	Submit(ctx context.Context, req *model.ContactRequest, ip string) (*model.ContactEntity, error)
	List(ctx context.Context, q model.ListQuery) (*model.ListResponse[model.ContactEntity], error)
}

type ContactAppImpl struct {
	config          *config.Config
	contactRepo     contactrepo.ContactRepository
	redisRepo       redisrepo.Repository
	settingApp      setting.SettingApp
	notificationApp notification.NotificationApp
	activityApp     activity.ActivityApp
}

func NewContactApp(
	config *config.Config,
	contactRepo contactrepo.ContactRepository,
	redisRepo redisrepo.Repository,
	settingApp setting.SettingApp,
	notificationApp notification.NotificationApp,
	activityApp activity.ActivityApp,
) ContactApp {
	return &ContactAppImpl{
		config:          config,
		contactRepo:     contactRepo,
		redisRepo:       redisRepo,
		settingApp:      settingApp,
		notificationApp: notificationApp,
		activityApp:     activityApp,
	}
}

func rateKey(ip string) string {
	return "ratelimit:contact:" + ip
}

// allow fails open when redis is unreachable.
func (s *ContactAppImpl) allow(ctx context.Context, ip string) error {
	if ip == "" || s.config.Contact.RateLimit <= 0 {
		return nil
	}
	count, left, err := s.redisRepo.IncrWindow(ctx, rateKey(ip), s.config.Contact.RateWindow)
	if err != nil {
		logger.Warn("[Submit] rate limiter unavailable", zap.String("error", err.Error()))
		return nil
	}
	if count > int64(s.config.Contact.RateLimit) {
		seconds := int((left + time.Second - 1) / time.Second)
		return errors.SetCustomError(constant.ErrTooManyRequests).WithMeta("retry_after_seconds", seconds)
	}
	return nil
}

func (s *ContactAppImpl) Submit(ctx context.Context, req *model.ContactRequest, ip string) (*model.ContactEntity, error) {
	if err := s.allow(ctx, ip); err != nil {
		return nil, err
	}

	data := &model.ContactEntity{
		Name:    htmlsanitize.Plain(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:   strings.TrimSpace(req.Phone),
		Subject: htmlsanitize.Plain(req.Subject),
		Message: htmlsanitize.Plain(req.Message),
		IP:      ip,
	}
	id, err := s.contactRepo.Create(ctx, data)
	if err != nil {
		logger.Error("[Submit] err contactRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	data.ID = id
	data.CreatedAt = time.Now()

	s.forward(ctx, data)
	s.activityApp.Log(ctx, model.ActivityEntry{
		Action:      constant.ActionContactReceived,
		Description: "Contact message from " + data.Name,
		Metadata:    map[string]any{"contact_id": id, "subject": data.Subject},
		IP:          ip,
	})
	return data, nil
}

// forward mails the admin inbox from settings, falling back to ADMIN_EMAIL.
func (s *ContactAppImpl) forward(ctx context.Context, c *model.ContactEntity) {
	org, to := s.config.AppName, s.config.Mail.AdminEmail
	if snap, err := s.settingApp.Snapshot(ctx); err == nil {
		org = snap.String(constant.SettingSiteName, org)
		to = snap.String(constant.SettingAdminEmail, to)
	}
	if to == "" {
		logger.Warn("[Submit] no admin email configured, message not forwarded", zap.Uint64("contact_id", c.ID))
		return
	}

	msg := mailer.ContactForwardMessage(org, to, c.Name, c.Email, c.Phone, c.Subject, c.Message)
	if err := s.notificationApp.Send(ctx, msg); err != nil {
		logger.Warn("[Submit] forward not delivered", zap.String("to", to), zap.String("error", err.Error()))
	}
}

func (s *ContactAppImpl) List(ctx context.Context, q model.ListQuery) (*model.ListResponse[model.ContactEntity], error) {
	items, total, err := s.contactRepo.List(ctx, q)
	if err != nil {
		logger.Error("[List] err contactRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.ListResponse[model.ContactEntity]{
		Items:      items,
		Pagination: querybuilder.PageOf(q).Meta(total),
	}, nil
}
