package certificate

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
	certificaterepo "github.com/muhammadheryan/bhrc-portal/repository/certificate"
	userrepo "github.com/muhammadheryan/bhrc-portal/repository/user"
	"github.com/muhammadheryan/bhrc-portal/thirdparty/mailer"
	"github.com/muhammadheryan/bhrc-portal/utils/dberr"
	"github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/muhammadheryan/bhrc-portal/utils/htmlsanitize"
	"github.com/muhammadheryan/bhrc-portal/utils/identifier"
	"github.com/muhammadheryan/bhrc-portal/utils/logger"
	"github.com/muhammadheryan/bhrc-portal/utils/querybuilder"
	"go.uber.org/zap"
)

const (
	maxNumberAttempts = 5
	dateLayout        = "2006-01-02"
)

type CertificateApp interface {
	Issue(ctx context.Context, actor *model.Principal, req *model.IssueCertificateRequest) (*model.CertificateEntity, error)
	List(ctx context.Context, filter *model.CertificateFilter) (*model.ListResponse[model.CertificateEntity], error)
	Mine(ctx context.Context, principal *model.Principal, filter *model.CertificateFilter) (*model.ListResponse[model.CertificateEntity], error)
	Get(ctx context.Context, principal *model.Principal, id uint64) (*model.CertificateEntity, error)
	Verify(ctx context.Context, number string) (*model.CertificateVerification, error)
	Revoke(ctx context.Context, actor *model.Principal, id uint64) error
}

type CertificateAppImpl struct {
	config          *config.Config
	certificateRepo certificaterepo.CertificateRepository
	userRepo        userrepo.UserRepository
	settingApp      setting.SettingApp
	notificationApp notification.NotificationApp
	activityApp     activity.ActivityApp
	now             func() time.Time
}

func NewCertificateApp(
	config *config.Config,
	certificateRepo certificaterepo.CertificateRepository,
	userRepo userrepo.UserRepository,
	settingApp setting.SettingApp,
	notificationApp notification.NotificationApp,
	activityApp activity.ActivityApp,
) CertificateApp {
	return &CertificateAppImpl{
		config:          config,
		certificateRepo: certificateRepo,
		userRepo:        userRepo,
		settingApp:      settingApp,
		notificationApp: notificationApp,
		activityApp:     activityApp,
		now:             time.Now,
	}
}

func (s *CertificateAppImpl) Issue(ctx context.Context, actor *model.Principal, req *model.IssueCertificateRequest) (*model.CertificateEntity, error) {
	recipient, err := s.userRepo.Get(ctx, &model.UserFilter{ID: req.UserID})
	if err != nil {
		logger.Error("[Issue] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if recipient == nil {
		return nil, errors.ValidationError([]errors.FieldError{{Field: "user_id", Message: "user does not exist"}})
	}

	now := s.now()
	data := &model.CertificateEntity{
		UserID:          req.UserID,
		RecipientName:   &recipient.Name,
		CertificateType: req.CertificateType,
		Title:           htmlsanitize.Plain(req.Title),
		Description:     htmlsanitize.Plain(req.Description),
		IssueDate:       now,
		IssuedBy:        &actor.UserID,
	}
	if req.IssueDate != "" {
		if data.IssueDate, err = time.Parse(dateLayout, req.IssueDate); err != nil {
			return nil, errors.ValidationError([]errors.FieldError{{Field: "issue_date", Message: "must be formatted as " + dateLayout}})
		}
	}
	if req.ValidUntil != "" {
		until, err := time.Parse(dateLayout, req.ValidUntil)
		if err != nil || until.Before(data.IssueDate) {
			return nil, errors.ValidationError([]errors.FieldError{{Field: "valid_until", Message: "must be a date on or after issue_date"}})
		}
		data.ValidUntil = &until
	}

	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		data.CertificateNumber, err = identifier.CertificateNumber(now)
		if err != nil {
			break
		}
		data.ID, err = s.certificateRepo.Create(ctx, data)
		if err == nil || !dberr.IsDuplicate(err) {
			break
		}
		logger.Warn("[Issue] certificate number collision, retrying", zap.String("number", data.CertificateNumber), zap.Int("attempt", attempt))
	}
	if err != nil {
		logger.Error("[Issue] err certificateRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	data.CreatedAt = now

	org := s.config.AppName
	if snap, err := s.settingApp.Snapshot(ctx); err == nil {
		org = snap.String(constant.SettingSiteName, org)
	}
	msg := mailer.CertificateIssuedMessage(org, recipient.Email, recipient.Name, data.CertificateNumber, data.Title)
	if err := s.notificationApp.Send(ctx, msg); err != nil {
		logger.Warn("[Issue] email not delivered", zap.String("to", msg.To), zap.String("error", err.Error()))
	}

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &actor.UserID,
		Action:      constant.ActionCertificateIssued,
		Description: "Issued certificate " + data.CertificateNumber + " to " + recipient.Name,
		Metadata:    map[string]any{"certificate_id": data.ID, "user_id": req.UserID},
	})
	return data, nil
}

func (s *CertificateAppImpl) List(ctx context.Context, filter *model.CertificateFilter) (*model.ListResponse[model.CertificateEntity], error) {
	items, total, err := s.certificateRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[List] err certificateRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.ListResponse[model.CertificateEntity]{
		Items:      items,
		Pagination: querybuilder.PageOf(filter.ListQuery).Meta(total),
	}, nil
}

func (s *CertificateAppImpl) Mine(ctx context.Context, principal *model.Principal, filter *model.CertificateFilter) (*model.ListResponse[model.CertificateEntity], error) {
	filter.UserID = principal.UserID
	return s.List(ctx, filter)
}

func (s *CertificateAppImpl) Get(ctx context.Context, principal *model.Principal, id uint64) (*model.CertificateEntity, error) {
	c, err := s.certificateRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[Get] err certificateRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if c == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound).WithMessage("certificate not found")
	}
	if c.UserID != principal.UserID && !constant.Allowed(principal.Role, constant.CapCertificateRead) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	return c, nil
}

// Verify is public: an unknown number is reported as invalid, not as an error.
func (s *CertificateAppImpl) Verify(ctx context.Context, number string) (*model.CertificateVerification, error) {
	number = strings.ToUpper(strings.TrimSpace(number))
	c, err := s.certificateRepo.GetByNumber(ctx, number)
	if err != nil {
		logger.Error("[Verify] err certificateRepo.GetByNumber", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if c == nil {
		return &model.CertificateVerification{CertificateNumber: number}, nil
	}

	res := &model.CertificateVerification{
		Valid:             true,
		CertificateNumber: c.CertificateNumber,
		Title:             c.Title,
		IssueDate:         &c.IssueDate,
	}
	if c.RecipientName != nil {
		res.RecipientName = *c.RecipientName
	}
	if c.ValidUntil != nil && c.ValidUntil.Before(s.now()) {
		res.Valid = false
		res.Expired = true
	}
	return res, nil
}

func (s *CertificateAppImpl) Revoke(ctx context.Context, actor *model.Principal, id uint64) error {
	deleted, err := s.certificateRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[Revoke] err certificateRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound).WithMessage("certificate not found")
	}

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &actor.UserID,
		Action:      constant.ActionCertificateRevoked,
		Description: "Revoked certificate",
		Metadata:    map[string]any{"certificate_id": id},
	})
	return nil
}
