package event

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/muhammadheryan/bhrc-portal/application/activity"
	"github.com/muhammadheryan/bhrc-portal/application/notification"
	"github.com/muhammadheryan/bhrc-portal/application/setting"
	"github.com/muhammadheryan/bhrc-portal/cmd/config"
	"github.com/muhammadheryan/bhrc-portal/constant"
	"github.com/muhammadheryan/bhrc-portal/model"
	eventrepo "github.com/muhammadheryan/bhrc-portal/repository/event"
	txrepo "github.com/muhammadheryan/bhrc-portal/repository/tx"
	"github.com/muhammadheryan/bhrc-portal/thirdparty/mailer"
	"github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/muhammadheryan/bhrc-portal/utils/htmlsanitize"
	"github.com/muhammadheryan/bhrc-portal/utils/logger"
	"github.com/muhammadheryan/bhrc-portal/utils/querybuilder"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02T15:04"

type EventApp interface {
	Create(ctx context.Context, actor *model.Principal, req *model.EventRequest) (*model.EventEntity, error)
	Update(ctx context.Context, actor *model.Principal, id uint64, req *model.EventRequest) (*model.EventEntity, error)
	Delete(ctx context.Context, actor *model.Principal, id uint64) error
	Get(ctx context.Context, principal *model.Principal, id uint64) (*model.EventEntity, error)
	List(ctx context.Context, principal *model.Principal, filter *model.EventFilter) (*model.ListResponse[model.EventEntity], error)

	Register(ctx context.Context, principal *model.Principal, eventID uint64, req *model.EventRegistrationRequest) (*model.EventRegistrationEntity, error)
	CancelRegistration(ctx context.Context, principal *model.Principal, registrationID uint64) error
	UpdateAttendance(ctx context.Context, actor *model.Principal, registrationID uint64, req *model.UpdateAttendanceRequest) error
	ListRegistrations(ctx context.Context, filter *model.RegistrationFilter) (*model.ListResponse[model.EventRegistrationEntity], error)
	MyRegistrations(ctx context.Context, principal *model.Principal, filter *model.RegistrationFilter) (*model.ListResponse[model.EventRegistrationEntity], error)

	CompletePastEvents(ctx context.Context) (int64, error)
}

type EventAppImpl struct {
	config          *config.Config
	txRepo          txrepo.TxRepository
	eventRepo       eventrepo.EventRepository
	settingApp      setting.SettingApp
	notificationApp notification.NotificationApp
	activityApp     activity.ActivityApp
}

func NewEventApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	eventRepo eventrepo.EventRepository,
	settingApp setting.SettingApp,
	notificationApp notification.NotificationApp,
	activityApp activity.ActivityApp,
) EventApp {
	return &EventAppImpl{
		config:          config,
		txRepo:          txRepo,
		eventRepo:       eventRepo,
		settingApp:      settingApp,
		notificationApp: notificationApp,
		activityApp:     activityApp,
	}
}

func fieldError(field, message string) error {
	return errors.ValidationError([]errors.FieldError{{Field: field, Message: message}})
}

// fill copies the request onto data; status and visibility keep their current
// values when the request leaves them empty.
func fill(data *model.EventEntity, req *model.EventRequest) error {
	start, err := time.Parse(dateLayout, req.EventDate)
	if err != nil {
		return fieldError("event_date", "must be formatted as "+dateLayout)
	}
	var end *time.Time
	if req.EndDate != "" {
		t, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return fieldError("end_date", "must be formatted as "+dateLayout)
		}
		if t.Before(start) {
			return fieldError("end_date", "must not be before event_date")
		}
		end = &t
	}

	data.Title = htmlsanitize.Plain(req.Title)
	data.Description = htmlsanitize.Plain(req.Description)
	data.EventType = req.EventType
	data.EventDate = start
	data.EndDate = end
	data.Location = htmlsanitize.Plain(req.Location)
	data.Capacity = req.Capacity
	data.RegistrationRequired = req.RegistrationRequired
	data.RegistrationFee = req.RegistrationFee
	data.ImageURL = strings.TrimSpace(req.ImageURL)
	if req.Status != "" {
		data.Status = constant.EventStatus(req.Status)
	}
	if req.IsPublic != nil {
		data.IsPublic = *req.IsPublic
	}
	return nil
}

func (s *EventAppImpl) Create(ctx context.Context, actor *model.Principal, req *model.EventRequest) (*model.EventEntity, error) {
	data := &model.EventEntity{Status: constant.EventStatusUpcoming, IsPublic: true, CreatedBy: &actor.UserID}
	if err := fill(data, req); err != nil {
		return nil, err
	}

	id, err := s.eventRepo.Create(ctx, data)
	if err != nil {
		logger.Error("[Create] err eventRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	data.ID = id
	data.CreatedAt = time.Now()

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &actor.UserID,
		Action:      constant.ActionEventCreated,
		Description: "Created event " + data.Title,
		Metadata:    map[string]any{"event_id": id},
	})
	return data, nil
}

func (s *EventAppImpl) find(ctx context.Context, method string, id uint64) (*model.EventEntity, error) {
	e, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("["+method+"] err eventRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if e == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound).WithMessage("event not found")
	}
	return e, nil
}

// Update runs under the event row lock so capacity can't drop below the
// registrations already taken.
func (s *EventAppImpl) Update(ctx context.Context, actor *model.Principal, id uint64, req *model.EventRequest) (*model.EventEntity, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Update] err txRepo.BeginTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	data, err := s.eventRepo.GetForUpdateTx(ctx, tx, id)
	if err != nil {
		logger.Error("[Update] err eventRepo.GetForUpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if data == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound).WithMessage("event not found")
	}
	if err := fill(data, req); err != nil {
		return nil, err
	}

	if data.Capacity != nil {
		count, err := s.eventRepo.CountActiveRegistrationsTx(ctx, tx, id)
		if err != nil {
			logger.Error("[Update] err eventRepo.CountActiveRegistrationsTx", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if int64(*data.Capacity) < count {
			return nil, fieldError("capacity", fmt.Sprintf("must be at least %d, the number of active registrations", count))
		}
	}

	if err := s.eventRepo.UpdateTx(ctx, tx, data); err != nil {
		logger.Error("[Update] err eventRepo.UpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Update] err txRepo.CommitTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &actor.UserID,
		Action:      constant.ActionEventUpdated,
		Description: "Updated event " + data.Title,
		Metadata:    map[string]any{"event_id": id},
	})
	return data, nil
}

func (s *EventAppImpl) Delete(ctx context.Context, actor *model.Principal, id uint64) error {
	deleted, err := s.eventRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[Delete] err eventRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound).WithMessage("event not found")
	}

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &actor.UserID,
		Action:      constant.ActionEventDeleted,
		Description: "Deleted event",
		Metadata:    map[string]any{"event_id": id},
	})
	return nil
}

func isStaff(p *model.Principal) bool {
	return p != nil && constant.Allowed(p.Role, constant.CapEventManage)
}

// Get hides private events from everyone but staff.
func (s *EventAppImpl) Get(ctx context.Context, principal *model.Principal, id uint64) (*model.EventEntity, error) {
	e, err := s.find(ctx, "Get", id)
	if err != nil {
		return nil, err
	}
	if !e.IsPublic && !isStaff(principal) {
		return nil, errors.SetCustomError(constant.ErrNotFound).WithMessage("event not found")
	}
	return e, nil
}

func (s *EventAppImpl) List(ctx context.Context, principal *model.Principal, filter *model.EventFilter) (*model.ListResponse[model.EventEntity], error) {
	if !isStaff(principal) {
		filter.PublicOnly = true
	}
	items, total, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[List] err eventRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.ListResponse[model.EventEntity]{
		Items:      items,
		Pagination: querybuilder.PageOf(filter.ListQuery).Meta(total),
	}, nil
}

// Register books a seat while holding the event row lock so the capacity
// check and the insert see the same count.
func (s *EventAppImpl) Register(ctx context.Context, principal *model.Principal, eventID uint64, req *model.EventRegistrationRequest) (*model.EventRegistrationEntity, error) {
	data := &model.EventRegistrationEntity{
		EventID:          eventID,
		ParticipantName:  htmlsanitize.Plain(req.ParticipantName),
		ParticipantEmail: strings.ToLower(strings.TrimSpace(req.ParticipantEmail)),
		ParticipantPhone: strings.TrimSpace(req.ParticipantPhone),
		AttendanceStatus: constant.AttendancePending,
		PaymentStatus:    constant.PaymentStatusNotRequired,
	}
	if principal != nil {
		data.UserID = &principal.UserID
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Register] err txRepo.BeginTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	ev, err := s.eventRepo.GetForUpdateTx(ctx, tx, eventID)
	if err != nil {
		logger.Error("[Register] err eventRepo.GetForUpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if ev == nil || (!ev.IsPublic && !isStaff(principal)) {
		return nil, errors.SetCustomError(constant.ErrNotFound).WithMessage("event not found")
	}
	if !ev.RegistrationRequired || ev.Status != constant.EventStatusUpcoming {
		return nil, errors.SetCustomError(constant.ErrRegistrationClosed)
	}
	if ev.RegistrationFee > 0 {
		data.PaymentStatus = constant.PaymentStatusPending
	}

	existing, err := s.eventRepo.GetRegistrationByEmailTx(ctx, tx, eventID, data.ParticipantEmail)
	if err != nil {
		logger.Error("[Register] err eventRepo.GetRegistrationByEmailTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil && existing.AttendanceStatus != constant.AttendanceCancelled {
		return nil, errors.SetCustomError(constant.ErrDuplicateRegistration)
	}

	if ev.Capacity != nil {
		count, err := s.eventRepo.CountActiveRegistrationsTx(ctx, tx, eventID)
		if err != nil {
			logger.Error("[Register] err eventRepo.CountActiveRegistrationsTx", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if count >= int64(*ev.Capacity) {
			return nil, errors.SetCustomError(constant.ErrEventFull)
		}
	}

	// a cancelled row is reused so (event, email) stays unique
	if existing != nil {
		data.ID = existing.ID
		err = s.eventRepo.ReactivateRegistrationTx(ctx, tx, existing.ID, data)
	} else {
		data.ID, err = s.eventRepo.CreateRegistrationTx(ctx, tx, data)
	}
	if err != nil {
		logger.Error("[Register] err eventRepo save registration", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Register] err txRepo.CommitTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	data.CreatedAt = time.Now()
	data.EventTitle = &ev.Title
	data.EventDate = &ev.EventDate

	s.confirm(ctx, ev, data)
	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     data.UserID,
		Action:      constant.ActionEventRegistered,
		Description: data.ParticipantName + " registered for " + ev.Title,
		Metadata:    map[string]any{"event_id": eventID, "registration_id": data.ID},
	})
	return data, nil
}

func (s *EventAppImpl) confirm(ctx context.Context, ev *model.EventEntity, reg *model.EventRegistrationEntity) {
	org := s.config.AppName
	if snap, err := s.settingApp.Snapshot(ctx); err == nil {
		org = snap.String(constant.SettingSiteName, org)
	}
	msg := mailer.EventRegistrationMessage(org, reg.ParticipantEmail, reg.ParticipantName, ev.Title, ev.EventDate, ev.Location)
	if err := s.notificationApp.Send(ctx, msg); err != nil {
		logger.Warn("[Register] confirmation not delivered", zap.String("to", msg.To), zap.String("error", err.Error()))
	}
}

func (s *EventAppImpl) registration(ctx context.Context, method string, id uint64) (*model.EventRegistrationEntity, error) {
	r, err := s.eventRepo.GetRegistration(ctx, id)
	if err != nil {
		logger.Error("["+method+"] err eventRepo.GetRegistration", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if r == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound).WithMessage("registration not found")
	}
	return r, nil
}

func (s *EventAppImpl) setAttendance(ctx context.Context, actor *model.Principal, r *model.EventRegistrationEntity, next constant.AttendanceStatus) error {
	if !r.AttendanceStatus.CanTransitionTo(next) {
		return errors.SetCustomError(constant.ErrInvalidStatusTransition).
			WithMessage("cannot move registration from " + string(r.AttendanceStatus) + " to " + string(next))
	}
	if err := s.eventRepo.UpdateAttendance(ctx, r.ID, next); err != nil {
		logger.Error("[UpdateAttendance] err eventRepo.UpdateAttendance", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &actor.UserID,
		Action:      constant.ActionRegistrationStatus,
		Description: "Registration " + string(r.AttendanceStatus) + " -> " + string(next),
		Metadata:    map[string]any{"registration_id": r.ID, "event_id": r.EventID},
	})
	return nil
}

// CancelRegistration lets the participant (by account or email) or staff drop a seat.
func (s *EventAppImpl) CancelRegistration(ctx context.Context, principal *model.Principal, registrationID uint64) error {
	r, err := s.registration(ctx, "CancelRegistration", registrationID)
	if err != nil {
		return err
	}
	own := (r.UserID != nil && *r.UserID == principal.UserID) || strings.EqualFold(r.ParticipantEmail, principal.Email)
	if !own && !isStaff(principal) {
		return errors.SetCustomError(constant.ErrForbidden)
	}
	return s.setAttendance(ctx, principal, r, constant.AttendanceCancelled)
}

func (s *EventAppImpl) UpdateAttendance(ctx context.Context, actor *model.Principal, registrationID uint64, req *model.UpdateAttendanceRequest) error {
	r, err := s.registration(ctx, "UpdateAttendance", registrationID)
	if err != nil {
		return err
	}
	return s.setAttendance(ctx, actor, r, constant.AttendanceStatus(req.AttendanceStatus))
}

func (s *EventAppImpl) ListRegistrations(ctx context.Context, filter *model.RegistrationFilter) (*model.ListResponse[model.EventRegistrationEntity], error) {
	items, total, err := s.eventRepo.ListRegistrations(ctx, filter)
	if err != nil {
		logger.Error("[ListRegistrations] err eventRepo.ListRegistrations", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.ListResponse[model.EventRegistrationEntity]{
		Items:      items,
		Pagination: querybuilder.PageOf(filter.ListQuery).Meta(total),
	}, nil
}

func (s *EventAppImpl) MyRegistrations(ctx context.Context, principal *model.Principal, filter *model.RegistrationFilter) (*model.ListResponse[model.EventRegistrationEntity], error) {
	filter.Email = strings.ToLower(principal.Email)
	return s.ListRegistrations(ctx, filter)
}

func (s *EventAppImpl) CompletePastEvents(ctx context.Context) (int64, error) {
	n, err := s.eventRepo.CompletePastEvents(ctx)
	if err != nil {
		logger.Error("[CompletePastEvents] err eventRepo.CompletePastEvents", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if n > 0 {
		logger.Info("past events marked completed", zap.Int64("count", n))
	}
	return n, nil
}
