package complaint

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
	complaintrepo "github.com/muhammadheryan/bhrc-portal/repository/complaint"
	sequencerepo "github.com/muhammadheryan/bhrc-portal/repository/sequence"
	txrepo "github.com/muhammadheryan/bhrc-portal/repository/tx"
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

const maxNumberAttempts = 5

var ExportHeader = []string{"Complaint Number", "Name", "Email", "Phone", "Type", "Subject", "Priority", "Status", "Assigned To", "Incident Date", "Location", "Filed At"}

type ComplaintApp interface {
	File(ctx context.Context, principal *model.Principal, req *model.FileComplaintRequest, ip string) (*model.FileComplaintResponse, error)
	Track(ctx context.Context, req *model.TrackComplaintRequest) (*model.ComplaintEntity, error)
	List(ctx context.Context, filter *model.ComplaintFilter) (*model.ListResponse[model.ComplaintEntity], error)
	Mine(ctx context.Context, principal *model.Principal, filter *model.ComplaintFilter) (*model.ListResponse[model.ComplaintEntity], error)
	Get(ctx context.Context, principal *model.Principal, id uint64) (*model.ComplaintEntity, error)
	UpdateStatus(ctx context.Context, actor *model.Principal, id uint64, req *model.UpdateComplaintStatusRequest) (*model.ComplaintEntity, error)
	Assign(ctx context.Context, actor *model.Principal, id uint64, req *model.AssignComplaintRequest) error
	UpdatePriority(ctx context.Context, actor *model.Principal, id uint64, req *model.UpdateComplaintPriorityRequest) error
	Delete(ctx context.Context, actor *model.Principal, id uint64) error
	Export(ctx context.Context, filter *model.ComplaintFilter) ([][]string, error)
	Stats(ctx context.Context) (*model.ComplaintStats, error)
}

type ComplaintAppImpl struct {
	config          *config.Config
	txRepo          txrepo.TxRepository
	sequenceRepo    sequencerepo.SequenceRepository
	complaintRepo   complaintrepo.ComplaintRepository
	userRepo        userrepo.UserRepository
	settingApp      setting.SettingApp
	notificationApp notification.NotificationApp
	activityApp     activity.ActivityApp
	now             func() time.Time
}

func NewComplaintApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	sequenceRepo sequencerepo.SequenceRepository,
	complaintRepo complaintrepo.ComplaintRepository,
	userRepo userrepo.UserRepository,
	settingApp setting.SettingApp,
	notificationApp notification.NotificationApp,
	activityApp activity.ActivityApp,
) ComplaintApp {
	return &ComplaintAppImpl{
		config:          config,
		txRepo:          txRepo,
		sequenceRepo:    sequenceRepo,
		complaintRepo:   complaintRepo,
		userRepo:        userRepo,
		settingApp:      settingApp,
		notificationApp: notificationApp,
		activityApp:     activityApp,
		now:             time.Now,
	}
}

func (s *ComplaintAppImpl) settings(ctx context.Context) *setting.Snapshot {
	snap, err := s.settingApp.Snapshot(ctx)
	if err != nil {
		return setting.NewSnapshot(nil)
	}
	return snap
}

func (s *ComplaintAppImpl) notify(ctx context.Context, method string, msg mailer.Message) {
	if err := s.notificationApp.Send(ctx, msg); err != nil {
		logger.Warn("["+method+"] email not delivered", zap.String("to", msg.To), zap.String("error", err.Error()))
	}
}

func (s *ComplaintAppImpl) File(ctx context.Context, principal *model.Principal, req *model.FileComplaintRequest, ip string) (*model.FileComplaintResponse, error) {
	data := &model.ComplaintEntity{
		ComplainantName:  htmlsanitize.Plain(req.ComplainantName),
		ComplainantEmail: strings.ToLower(strings.TrimSpace(req.ComplainantEmail)),
		ComplainantPhone: strings.TrimSpace(req.ComplainantPhone),
		ComplainantAddr:  htmlsanitize.Plain(req.ComplainantAddress),
		ComplaintType:    req.ComplaintType,
		Subject:          htmlsanitize.Plain(req.Subject),
		Description:      htmlsanitize.Plain(req.Description),
		IncidentLocation: htmlsanitize.Plain(req.IncidentLocation),
		Priority:         constant.PriorityMedium,
		Status:           constant.ComplaintStatusSubmitted,
	}
	if req.Priority != "" {
		data.Priority = constant.ComplaintPriority(req.Priority)
	}
	if req.IncidentDate != "" {
		d, err := time.Parse("2006-01-02", req.IncidentDate)
		if err != nil {
			return nil, errors.ValidationError([]errors.FieldError{{Field: "incident_date", Message: "incident_date must be a date (YYYY-MM-DD)"}})
		}
		data.IncidentDate = &d
	}
	if principal != nil {
		data.UserID = &principal.UserID
	}

	var err error
	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		err = s.create(ctx, data)
		if err == nil || !dberr.IsDuplicate(err) {
			break
		}
		logger.Warn("[File] complaint number collision, retrying", zap.String("number", data.ComplaintNumber), zap.Int("attempt", attempt))
	}
	if err != nil {
		logger.Error("[File] err create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	snap := s.settings(ctx)
	org := snap.String(constant.SettingSiteName, s.config.AppName)
	s.notify(ctx, "File", mailer.ComplaintFiledMessage(org, data.ComplainantEmail, data.ComplainantName, data.ComplaintNumber))

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     data.UserID,
		Action:      constant.ActionComplaintFiled,
		Description: "Complaint filed: " + data.ComplaintNumber,
		Metadata:    map[string]any{"complaint_id": data.ID, "type": data.ComplaintType},
		IP:          ip,
	})

	return &model.FileComplaintResponse{
		ID:              data.ID,
		ComplaintNumber: data.ComplaintNumber,
		Status:          data.Status,
		CreatedAt:       data.CreatedAt,
	}, nil
}

// create draws the next number for the month and inserts the complaint in one transaction.
func (s *ComplaintAppImpl) create(ctx context.Context, data *model.ComplaintEntity) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	now := s.now()
	seq, err := s.sequenceRepo.NextTx(ctx, tx, identifier.ComplaintBucket(now))
	if err != nil {
		return err
	}
	data.ComplaintNumber = identifier.ComplaintNumber(now, int64(seq))

	id, err := s.complaintRepo.CreateTx(ctx, tx, data)
	if err != nil {
		return err
	}
	if err := s.txRepo.CommitTx(tx); err != nil {
		return err
	}
	committed = true

	data.ID = id
	data.CreatedAt = now
	return nil
}

// Track answers only when number and email both match; a mismatch looks like a miss.
func (s *ComplaintAppImpl) Track(ctx context.Context, req *model.TrackComplaintRequest) (*model.ComplaintEntity, error) {
	c, err := s.complaintRepo.GetByNumber(ctx, strings.TrimSpace(req.ComplaintNumber))
	if err != nil {
		logger.Error("[Track] err complaintRepo.GetByNumber", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if c == nil || !strings.EqualFold(c.ComplainantEmail, strings.TrimSpace(req.Email)) {
		return nil, errors.SetCustomError(constant.ErrNotFound).WithMessage("complaint not found")
	}
	// internal handling details stay private
	c.AssignedTo = nil
	c.AssignedToName = nil
	return c, nil
}

func (s *ComplaintAppImpl) List(ctx context.Context, filter *model.ComplaintFilter) (*model.ListResponse[model.ComplaintEntity], error) {
	items, total, err := s.complaintRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[List] err complaintRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.ListResponse[model.ComplaintEntity]{
		Items:      items,
		Pagination: querybuilder.PageOf(filter.ListQuery).Meta(total),
	}, nil
}

func (s *ComplaintAppImpl) Mine(ctx context.Context, principal *model.Principal, filter *model.ComplaintFilter) (*model.ListResponse[model.ComplaintEntity], error) {
	filter.Email = principal.Email
	filter.AssignedTo = 0
	return s.List(ctx, filter)
}

func (s *ComplaintAppImpl) find(ctx context.Context, method string, id uint64) (*model.ComplaintEntity, error) {
	c, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("["+method+"] err complaintRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if c == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound).WithMessage("complaint not found")
	}
	return c, nil
}

func (s *ComplaintAppImpl) Get(ctx context.Context, principal *model.Principal, id uint64) (*model.ComplaintEntity, error) {
	c, err := s.find(ctx, "Get", id)
	if err != nil {
		return nil, err
	}
	if !constant.Allowed(principal.Role, constant.CapComplaintRead) && !strings.EqualFold(c.ComplainantEmail, principal.Email) {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	return c, nil
}

func (s *ComplaintAppImpl) UpdateStatus(ctx context.Context, actor *model.Principal, id uint64, req *model.UpdateComplaintStatusRequest) (*model.ComplaintEntity, error) {
	c, err := s.find(ctx, "UpdateStatus", id)
	if err != nil {
		return nil, err
	}

	next := constant.ComplaintStatus(req.Status)
	if !c.Status.CanTransitionTo(next) {
		return nil, errors.SetCustomError(constant.ErrInvalidStatusTransition).
			WithMessage("cannot move complaint from " + string(c.Status) + " to " + req.Status)
	}

	notes := htmlsanitize.Plain(req.ResolutionNotes)
	if err := s.complaintRepo.UpdateStatus(ctx, id, next, notes); err != nil {
		logger.Error("[UpdateStatus] err complaintRepo.UpdateStatus", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	prev := c.Status
	c.Status = next
	if notes != "" {
		c.ResolutionNotes = notes
	}

	snap := s.settings(ctx)
	if snap.Bool(constant.SettingNotifyComplaints, true) {
		org := snap.String(constant.SettingSiteName, s.config.AppName)
		s.notify(ctx, "UpdateStatus", mailer.ComplaintStatusMessage(org, c.ComplainantEmail, c.ComplainantName, c.ComplaintNumber, string(next), c.ResolutionNotes))
	}

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &actor.UserID,
		Action:      constant.ActionComplaintStatus,
		Description: "Complaint " + c.ComplaintNumber + " moved to " + req.Status,
		Metadata:    map[string]any{"complaint_id": id, "from": prev, "to": next},
	})
	return c, nil
}

func (s *ComplaintAppImpl) Assign(ctx context.Context, actor *model.Principal, id uint64, req *model.AssignComplaintRequest) error {
	c, err := s.find(ctx, "Assign", id)
	if err != nil {
		return err
	}

	assignee, err := s.userRepo.Get(ctx, &model.UserFilter{ID: req.AssignedTo})
	if err != nil {
		logger.Error("[Assign] err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if assignee == nil || !assignee.Role.IsStaff() || assignee.Status != constant.UserStatusActive {
		return errors.SetCustomError(constant.ErrInvalidRequest).WithMessage("complaints can only be assigned to active admins or moderators")
	}

	if err := s.complaintRepo.Assign(ctx, id, assignee.ID); err != nil {
		logger.Error("[Assign] err complaintRepo.Assign", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &actor.UserID,
		Action:      constant.ActionComplaintAssigned,
		Description: "Complaint " + c.ComplaintNumber + " assigned to " + assignee.Name,
		Metadata:    map[string]any{"complaint_id": id, "assigned_to": assignee.ID},
	})
	return nil
}

func (s *ComplaintAppImpl) UpdatePriority(ctx context.Context, actor *model.Principal, id uint64, req *model.UpdateComplaintPriorityRequest) error {
	c, err := s.find(ctx, "UpdatePriority", id)
	if err != nil {
		return err
	}
	priority := constant.ComplaintPriority(req.Priority)
	if err := s.complaintRepo.UpdatePriority(ctx, id, priority); err != nil {
		logger.Error("[UpdatePriority] err complaintRepo.UpdatePriority", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &actor.UserID,
		Action:      constant.ActionComplaintPriority,
		Description: "Complaint " + c.ComplaintNumber + " priority set to " + req.Priority,
		Metadata:    map[string]any{"complaint_id": id, "from": c.Priority, "to": priority},
	})
	return nil
}

func (s *ComplaintAppImpl) Delete(ctx context.Context, actor *model.Principal, id uint64) error {
	deleted, err := s.complaintRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[Delete] err complaintRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound).WithMessage("complaint not found")
	}

	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &actor.UserID,
		Action:      constant.ActionComplaintDeleted,
		Description: "Deleted complaint " + strconv.FormatUint(id, 10),
		Metadata:    map[string]any{"complaint_id": id},
	})
	return nil
}

func (s *ComplaintAppImpl) Export(ctx context.Context, filter *model.ComplaintFilter) ([][]string, error) {
	items, err := s.complaintRepo.Export(ctx, filter)
	if err != nil {
		logger.Error("[Export] err complaintRepo.Export", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	rows := make([][]string, 0, len(items))
	for _, c := range items {
		assigned, incident := "", ""
		if c.AssignedToName != nil {
			assigned = *c.AssignedToName
		}
		if c.IncidentDate != nil {
			incident = c.IncidentDate.Format("2006-01-02")
		}
		rows = append(rows, []string{
			c.ComplaintNumber,
			c.ComplainantName,
			c.ComplainantEmail,
			c.ComplainantPhone,
			c.ComplaintType,
			c.Subject,
			string(c.Priority),
			string(c.Status),
			assigned,
			incident,
			c.IncidentLocation,
			c.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return rows, nil
}

func (s *ComplaintAppImpl) Stats(ctx context.Context) (*model.ComplaintStats, error) {
	stats, err := s.complaintRepo.Stats(ctx)
	if err != nil {
		logger.Error("[Stats] err complaintRepo.Stats", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return stats, nil
}
