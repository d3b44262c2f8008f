package event

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/bhrc-portal/constant"
	"github.com/muhammadheryan/bhrc-portal/model"
	"github.com/muhammadheryan/bhrc-portal/utils/querybuilder"
)

type SQL struct {
	conn *sqlx.DB
}

type EventRepository interface {
	Create(ctx context.Context, data *model.EventEntity) (uint64, error)
	Delete(ctx context.Context, id uint64) (bool, error)
	GetByID(ctx context.Context, id uint64) (*model.EventEntity, error)
	List(ctx context.Context, filter *model.EventFilter) ([]model.EventEntity, int64, error)
	CompletePastEvents(ctx context.Context) (int64, error)

	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.EventEntity, error)
	CountActiveRegistrationsTx(ctx context.Context, tx *sqlx.Tx, eventID uint64) (int64, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, data *model.EventEntity) error
	GetRegistrationByEmailTx(ctx context.Context, tx *sqlx.Tx, eventID uint64, email string) (*model.EventRegistrationEntity, error)
	CreateRegistrationTx(ctx context.Context, tx *sqlx.Tx, data *model.EventRegistrationEntity) (uint64, error)
	ReactivateRegistrationTx(ctx context.Context, tx *sqlx.Tx, id uint64, data *model.EventRegistrationEntity) error

	GetRegistration(ctx context.Context, id uint64) (*model.EventRegistrationEntity, error)
	ListRegistrations(ctx context.Context, filter *model.RegistrationFilter) ([]model.EventRegistrationEntity, int64, error)
	UpdateAttendance(ctx context.Context, id uint64, status constant.AttendanceStatus) error
}

func NewEventRepository(conn *sqlx.DB) EventRepository {
	return &SQL{conn: conn}
}

const (
	eventColumns = `e.id, e.title, e.description, e.event_type, e.event_date, e.end_date, e.location, e.capacity,
		e.registration_required, e.registration_fee, e.status, e.is_public, e.image_url, e.created_by,
		(SELECT COUNT(*) FROM event_registrations er WHERE er.event_id = e.id AND er.attendance_status <> 'cancelled') AS registration_count,
		e.created_at, e.updated_at`

	insertEventQuery = `INSERT INTO events (title, description, event_type, event_date, end_date, location, capacity,
		registration_required, registration_fee, status, is_public, image_url, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`
	updateEventQuery = `UPDATE events SET title = ?, description = ?, event_type = ?, event_date = ?, end_date = ?, location = ?,
		capacity = ?, registration_required = ?, registration_fee = ?, status = ?, is_public = ?, image_url = ? WHERE id = ?`
	deleteEventQuery       = `DELETE FROM events WHERE id = ?`
	getEventQuery          = `SELECT ` + eventColumns + ` FROM events e WHERE e.id = ?`
	getEventForUpdateQuery = `SELECT ` + eventColumns + ` FROM events e WHERE e.id = ? FOR UPDATE`
	completePastQuery      = `UPDATE events SET status = 'completed'
		WHERE status IN ('upcoming', 'ongoing') AND COALESCE(end_date, event_date) < NOW()`

	registrationColumns = `r.id, r.event_id, r.user_id, r.participant_name, r.participant_email, r.participant_phone,
		r.attendance_status, r.payment_status, e.title AS event_title, e.event_date AS event_date, r.created_at, r.updated_at`
	registrationFrom = `event_registrations r JOIN events e ON e.id = r.event_id`

	countActiveQuery        = `SELECT COUNT(*) FROM event_registrations WHERE event_id = ? AND attendance_status <> 'cancelled'`
	registrationByEmail     = `SELECT ` + registrationColumns + ` FROM ` + registrationFrom + ` WHERE r.event_id = ? AND r.participant_email = ?`
	registrationByID        = `SELECT ` + registrationColumns + ` FROM ` + registrationFrom + ` WHERE r.id = ?`
	insertRegistrationQuery = `INSERT INTO event_registrations (event_id, user_id, participant_name, participant_email, participant_phone,
		attendance_status, payment_status, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, NOW())`
	reactivateQuery = `UPDATE event_registrations SET user_id = ?, participant_name = ?, participant_phone = ?,
		attendance_status = ?, payment_status = ? WHERE id = ?`
	updateAttendanceQuery = `UPDATE event_registrations SET attendance_status = ? WHERE id = ?`
)

var eventSortable = map[string]string{
	"event_date": "e.event_date",
	"title":      "e.title",
	"created_at": "e.created_at",
	"status":     "e.status",
}

var registrationSortable = map[string]string{
	"created_at":        "r.created_at",
	"participant_name":  "r.participant_name",
	"attendance_status": "r.attendance_status",
}

func (r *SQL) Create(ctx context.Context, data *model.EventEntity) (uint64, error) {
	res, err := r.conn.ExecContext(ctx, insertEventQuery,
		data.Title, data.Description, data.EventType, data.EventDate, data.EndDate, data.Location, data.Capacity,
		data.RegistrationRequired, data.RegistrationFee, data.Status, data.IsPublic, data.ImageURL, data.CreatedBy)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, data *model.EventEntity) error {
	_, err := tx.ExecContext(ctx, updateEventQuery,
		data.Title, data.Description, data.EventType, data.EventDate, data.EndDate, data.Location, data.Capacity,
		data.RegistrationRequired, data.RegistrationFee, data.Status, data.IsPublic, data.ImageURL, data.ID)
	return err
}

func (r *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := r.conn.ExecContext(ctx, deleteEventQuery, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func scanEvent(row *sqlx.Row) (*model.EventEntity, error) {
	var entity model.EventEntity
	if err := row.StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.EventEntity, error) {
	return scanEvent(r.conn.QueryRowxContext(ctx, getEventQuery, id))
}

func (r *SQL) List(ctx context.Context, filter *model.EventFilter) ([]model.EventEntity, int64, error) {
	b := querybuilder.New(eventColumns, "events e").Sortable(eventSortable, "e.event_date DESC")
	if filter.Status != "" {
		b.Where("e.status", filter.Status)
	}
	if filter.EventType != "" {
		b.Where("e.event_type", filter.EventType)
	}
	if filter.PublicOnly {
		b.Where("e.is_public", true)
	}
	if filter.Upcoming {
		b.WhereRaw("e.event_date >= NOW()")
	}
	b.Apply(filter.ListQuery, "e.event_date", "e.title", "e.location")

	items := []model.EventEntity{}
	total, err := querybuilder.Fetch(ctx, r.conn, &items, b)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *SQL) CompletePastEvents(ctx context.Context) (int64, error) {
	res, err := r.conn.ExecContext(ctx, completePastQuery)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// GetForUpdateTx locks the event row until tx ends, serializing registrations for it.
func (r *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.EventEntity, error) {
	return scanEvent(tx.QueryRowxContext(ctx, getEventForUpdateQuery, id))
}

func (r *SQL) CountActiveRegistrationsTx(ctx context.Context, tx *sqlx.Tx, eventID uint64) (int64, error) {
	var count int64
	if err := tx.GetContext(ctx, &count, countActiveQuery, eventID); err != nil {
		return 0, err
	}
	return count, nil
}

func scanRegistration(row *sqlx.Row) (*model.EventRegistrationEntity, error) {
	var entity model.EventRegistrationEntity
	if err := row.StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) GetRegistrationByEmailTx(ctx context.Context, tx *sqlx.Tx, eventID uint64, email string) (*model.EventRegistrationEntity, error) {
	return scanRegistration(tx.QueryRowxContext(ctx, registrationByEmail, eventID, email))
}

func (r *SQL) CreateRegistrationTx(ctx context.Context, tx *sqlx.Tx, data *model.EventRegistrationEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertRegistrationQuery,
		data.EventID, data.UserID, data.ParticipantName, data.ParticipantEmail, data.ParticipantPhone,
		data.AttendanceStatus, data.PaymentStatus)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ReactivateRegistrationTx reuses a cancelled registration row for the same event and email.
func (r *SQL) ReactivateRegistrationTx(ctx context.Context, tx *sqlx.Tx, id uint64, data *model.EventRegistrationEntity) error {
	_, err := tx.ExecContext(ctx, reactivateQuery,
		data.UserID, data.ParticipantName, data.ParticipantPhone, data.AttendanceStatus, data.PaymentStatus, id)
	return err
}

func (r *SQL) GetRegistration(ctx context.Context, id uint64) (*model.EventRegistrationEntity, error) {
	return scanRegistration(r.conn.QueryRowxContext(ctx, registrationByID, id))
}

func (r *SQL) ListRegistrations(ctx context.Context, filter *model.RegistrationFilter) ([]model.EventRegistrationEntity, int64, error) {
	b := querybuilder.New(registrationColumns, registrationFrom).Sortable(registrationSortable, "r.created_at DESC")
	if filter.EventID != 0 {
		b.Where("r.event_id", filter.EventID)
	}
	if filter.Email != "" {
		b.Where("r.participant_email", filter.Email)
	}
	if filter.AttendanceStatus != "" {
		b.Where("r.attendance_status", filter.AttendanceStatus)
	}
	b.Apply(filter.ListQuery, "r.created_at", "r.participant_name", "r.participant_email")

	items := []model.EventRegistrationEntity{}
	total, err := querybuilder.Fetch(ctx, r.conn, &items, b)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *SQL) UpdateAttendance(ctx context.Context, id uint64, status constant.AttendanceStatus) error {
	_, err := r.conn.ExecContext(ctx, updateAttendanceQuery, status, id)
	return err
}
