package donation

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/muhammadheryan/bhrc-portal/application/activity"
	"github.com/muhammadheryan/bhrc-portal/application/notification"
	"github.com/muhammadheryan/bhrc-portal/application/setting"
	"github.com/muhammadheryan/bhrc-portal/cmd/config"
	"github.com/muhammadheryan/bhrc-portal/constant"
	"github.com/muhammadheryan/bhrc-portal/model"
	donationrepo "github.com/muhammadheryan/bhrc-portal/repository/donation"
	"github.com/muhammadheryan/bhrc-portal/thirdparty/mailer"
	"github.com/muhammadheryan/bhrc-portal/utils/dberr"
	"github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/muhammadheryan/bhrc-portal/utils/htmlsanitize"
	"github.com/muhammadheryan/bhrc-portal/utils/identifier"
	"github.com/muhammadheryan/bhrc-portal/utils/logger"
	"github.com/muhammadheryan/bhrc-portal/utils/querybuilder"
	"go.uber.org/zap"
)

const maxReferenceAttempts = 5

var ExportHeader = []string{"Reference", "Donor", "Email", "Phone", "PAN", "Amount", "Type", "Category", "Payment Method", "Transaction ID", "Status", "Anonymous", "Date"}

type DonationApp interface {
	Create(ctx context.Context, principal *model.Principal, req *model.CreateDonationRequest, ip string) (*model.DonationEntity, error)
	List(ctx context.Context, filter *model.DonationFilter) (*model.ListResponse[model.DonationEntity], error)
	Mine(ctx context.Context, principal *model.Principal, filter *model.DonationFilter) (*model.ListResponse[model.DonationEntity], error)
	Get(ctx context.Context, principal *model.Principal, id uint64) (*model.DonationEntity, error)
	UpdateStatus(ctx context.Context, actor *model.Principal, id uint64, req *model.UpdateDonationStatusRequest) (*model.DonationEntity, error)
	Delete(ctx context.Context, actor *model.Principal, id uint64) error
	Receipt(ctx context.Context, principal *model.Principal, id uint64) (*model.DonationReceipt, error)
	Export(ctx context.Context, filter *model.DonationFilter) ([][]string, error)
	Stats(ctx context.Context) (*model.DonationStats, error)
}

type DonationAppImpl struct {
	config          *config.Config
	donationRepo    donationrepo.DonationRepository
	settingApp      setting.SettingApp
	notificationApp notification.NotificationApp
	activityApp     activity.ActivityApp
	now             func() time.Time
}

func NewDonationApp(
	config *config.Config,
	donationRepo donationrepo.DonationRepository,
	settingApp setting.SettingApp,
	notificationApp notification.NotificationApp,
	activityApp activity.ActivityApp,
) DonationApp {
	return &DonationAppImpl{
		config:          config,
		donationRepo:    donationRepo,
		settingApp:      settingApp,
		notificationApp: notificationApp,
		activityApp:     activityApp,
		now:             time.Now,
	}
}

func (s *DonationAppImpl) org(ctx context.Context) string {
	snap, err := s.settingApp.Snapshot(ctx)
	if err != nil {
		return s.config.AppName
	}
	return snap.String(constant.SettingSiteName, s.config.AppName)
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func (s *DonationAppImpl) Create(ctx context.Context, principal *model.Principal, req *model.CreateDonationRequest, ip string) (*model.DonationEntity, error) {
	data := &model.DonationEntity{
		Amount:        req.Amount,
		DonationType:  req.DonationType,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
		TransactionID: optional(req.TransactionID),
		Status:        constant.DonationStatusPending,
		IsAnonymous:   req.IsAnonymous,
		Message:       htmlsanitize.Plain(req.Message),
	}
	if principal != nil {
		data.UserID = &principal.UserID
	}
	// anonymous gifts keep no donor contact details
	if !req.IsAnonymous {
		data.DonorName = optional(htmlsanitize.Plain(req.DonorName))
		data.DonorEmail = optional(strings.ToLower(req.DonorEmail))
		data.DonorPhone = optional(req.DonorPhone)
		data.PAN = optional(strings.ToUpper(req.PAN))
	}

	var err error
	for attempt := 1; attempt <= maxReferenceAttempts; attempt++ {
		data.ReferenceNumber, err = identifier.DonationReference(s.now())
		if err != nil {
			break
		}
		data.ID, err = s.donationRepo.Create(ctx, data)
		if err == nil || !dberr.IsDuplicate(err) {
			break
		}
		logger.Warn("[Create] donation reference collision, retrying", zap.String("reference", data.ReferenceNumber), zap.Int("attempt", attempt))
	}
	if err != nil {
		logger.Error("[Create] err donationRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	data.CreatedAt = s.now()

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     data.UserID,
		Action:      constant.ActionDonationCreated,
		Description: "Donation " + data.ReferenceNumber + " recorded",
		Metadata:    map[string]any{"donation_id": data.ID, "amount": data.Amount, "category": data.Category},
		IP:          ip,
	})
	return data, nil
}

func (s *DonationAppImpl) List(ctx context.Context, filter *model.DonationFilter) (*model.ListResponse[model.DonationEntity], error) {
	items, total, err := s.donationRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[List] err donationRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.ListResponse[model.DonationEntity]{
		Items:      items,
		Pagination: querybuilder.PageOf(filter.ListQuery).Meta(total),
	}, nil
}

func (s *DonationAppImpl) Mine(ctx context.Context, principal *model.Principal, filter *model.DonationFilter) (*model.ListResponse[model.DonationEntity], error) {
	filter.UserID = principal.UserID
	return s.List(ctx, filter)
}

func (s *DonationAppImpl) find(ctx context.Context, method string, id uint64) (*model.DonationEntity, error) {
	d, err := s.donationRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("["+method+"] err donationRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if d == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound).WithMessage("donation not found")
	}
	return d, nil
}

func owns(principal *model.Principal, d *model.DonationEntity) bool {
	return d.UserID != nil && *d.UserID == principal.UserID
}

func (s *DonationAppImpl) Get(ctx context.Context, principal *model.Principal, id uint64) (*model.DonationEntity, error) {
	d, err := s.find(ctx, "Get", id)
	if err != nil {
		return nil, err
	}
	if !owns(principal, d) && !constant.Allowed(principal.Role, constant.CapDonationRead) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	return d, nil
}

func (s *DonationAppImpl) UpdateStatus(ctx context.Context, actor *model.Principal, id uint64, req *model.UpdateDonationStatusRequest) (*model.DonationEntity, error) {
	d, err := s.find(ctx, "UpdateStatus", id)
	if err != nil {
		return nil, err
	}

	next := constant.DonationStatus(req.Status)
	if !d.Status.CanTransitionTo(next) {
		return nil, errors.SetCustomError(constant.ErrInvalidStatusTransition).
			WithMessage("cannot move donation from " + string(d.Status) + " to " + req.Status)
	}

	txID := strings.TrimSpace(req.TransactionID)
	updated, err := s.donationRepo.UpdateStatus(ctx, id, d.Status, next, txID)
	if err != nil {
		logger.Error("[UpdateStatus] err donationRepo.UpdateStatus", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !updated {
		// moved or removed by a concurrent request
		if _, err := s.find(ctx, "UpdateStatus", id); err != nil {
			return nil, err
		}
		return nil, errors.SetCustomError(constant.ErrInvalidStatusTransition).
			WithMessage("donation status changed, reload and try again")
	}

	prev := d.Status
	d.Status = next
	if txID != "" {
		d.TransactionID = &txID
	}

	if next == constant.DonationStatusCompleted && d.DonorEmail != nil {
		msg := mailer.DonationReceivedMessage(s.org(ctx), *d.DonorEmail, deref(d.DonorName), d.ReferenceNumber, d.Amount)
		if err := s.notificationApp.Send(ctx, msg); err != nil {
			logger.Warn("[UpdateStatus] email not delivered", zap.String("to", msg.To), zap.String("error", err.Error()))
		}
	}

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &actor.UserID,
		Action:      constant.ActionDonationStatus,
		Description: "Donation " + d.ReferenceNumber + " marked " + req.Status,
		Metadata:    map[string]any{"donation_id": id, "from": prev, "to": next},
	})
	return d, nil
}

// Delete refuses completed donations; they back issued receipts.
func (s *DonationAppImpl) Delete(ctx context.Context, actor *model.Principal, id uint64) error {
	d, err := s.find(ctx, "Delete", id)
	if err != nil {
		return err
	}
	if d.Status == constant.DonationStatusCompleted {
		return errors.SetCustomError(constant.ErrDonationCompleted)
	}

	deleted, err := s.donationRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[Delete] err donationRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		if _, err := s.find(ctx, "Delete", id); err != nil {
			return err
		}
		return errors.SetCustomError(constant.ErrDonationCompleted)
	}

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &actor.UserID,
		Action:      constant.ActionDonationDeleted,
		Description: "Deleted donation " + d.ReferenceNumber,
		Metadata:    map[string]any{"donation_id": id},
	})
	return nil
}

func (s *DonationAppImpl) Receipt(ctx context.Context, principal *model.Principal, id uint64) (*model.DonationReceipt, error) {
	d, err := s.Get(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	if d.Status != constant.DonationStatusCompleted {
		return nil, errors.SetCustomError(constant.ErrReceiptUnavailable)
	}

	name := deref(d.DonorName)
	if d.IsAnonymous || name == "" {
		name = "Anonymous"
	}
	return &model.DonationReceipt{
		ReceiptNumber:   identifier.ReceiptNumber(d.ReferenceNumber),
		ReferenceNumber: d.ReferenceNumber,
		DonorName:       name,
		DonorEmail:      deref(d.DonorEmail),
		PAN:             deref(d.PAN),
		Amount:          d.Amount,
		Category:        d.Category,
		PaymentMethod:   d.PaymentMethod,
		TransactionID:   deref(d.TransactionID),
		DonatedAt:       d.CreatedAt,
		Organization:    s.org(ctx),
	}, nil
}

func (s *DonationAppImpl) Export(ctx context.Context, filter *model.DonationFilter) ([][]string, error) {
	items, err := s.donationRepo.Export(ctx, filter)
	if err != nil {
		logger.Error("[Export] err donationRepo.Export", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	rows := make([][]string, 0, len(items))
	for _, d := range items {
		rows = append(rows, []string{
			d.ReferenceNumber,
			deref(d.DonorName),
			deref(d.DonorEmail),
			deref(d.DonorPhone),
			deref(d.PAN),
			strconv.FormatFloat(d.Amount, 'f', 2, 64),
			d.DonationType,
			d.Category,
			d.PaymentMethod,
			deref(d.TransactionID),
			string(d.Status),
			strconv.FormatBool(d.IsAnonymous),
			d.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return rows, nil
}

func (s *DonationAppImpl) Stats(ctx context.Context) (*model.DonationStats, error) {
	stats, err := s.donationRepo.Stats(ctx)
	if err != nil {
		logger.Error("[Stats] err donationRepo.Stats", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return stats, nil
}
