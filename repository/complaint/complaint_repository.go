package complaint

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

type ComplaintRepository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.ComplaintEntity) (uint64, error)
	GetByID(ctx context.Context, id uint64) (*model.ComplaintEntity, error)
	GetByNumber(ctx context.Context, number string) (*model.ComplaintEntity, error)
	List(ctx context.Context, filter *model.ComplaintFilter) ([]model.ComplaintEntity, int64, error)
	Export(ctx context.Context, filter *model.ComplaintFilter) ([]model.ComplaintEntity, error)
	UpdateStatus(ctx context.Context, id uint64, status constant.ComplaintStatus, notes string) error
	Assign(ctx context.Context, id, assignee uint64) error
	UpdatePriority(ctx context.Context, id uint64, priority constant.ComplaintPriority) error
	Delete(ctx context.Context, id uint64) (bool, error)
	Stats(ctx context.Context) (*model.ComplaintStats, error)
}

func NewComplaintRepository(conn *sqlx.DB) ComplaintRepository {
	return &SQL{conn: conn}
}

const (
	complaintColumns = `c.id, c.complaint_number, c.user_id, c.complainant_name, c.complainant_email, c.complainant_phone,
		c.complainant_address, c.complaint_type, c.subject, c.description, c.incident_date, c.incident_location,
		c.priority, c.status, c.assigned_to, u.name AS assigned_to_name, COALESCE(c.resolution_notes, '') AS resolution_notes,
		c.created_at, c.updated_at`
	complaintFrom = `complaints c LEFT JOIN users u ON u.id = c.assigned_to`

	insertComplaintQuery = `INSERT INTO complaints (complaint_number, user_id, complainant_name, complainant_email, complainant_phone,
		complainant_address, complaint_type, subject, description, incident_date, incident_location, priority, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`
	updateComplaintStatusQuery   = `UPDATE complaints SET status = ?, resolution_notes = IF(? = '', resolution_notes, ?) WHERE id = ?`
	assignComplaintQuery         = `UPDATE complaints SET assigned_to = ? WHERE id = ?`
	updateComplaintPriorityQuery = `UPDATE complaints SET priority = ? WHERE id = ?`
	deleteComplaintQuery         = `DELETE FROM complaints WHERE id = ?`
)

var complaintSortable = map[string]string{
	"created_at":       "c.created_at",
	"complaint_number": "c.complaint_number",
	"priority":         "c.priority",
	"status":           "c.status",
	"subject":          "c.subject",
}

func (r *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.ComplaintEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertComplaintQuery,
		data.ComplaintNumber, data.UserID, data.ComplainantName, data.ComplainantEmail, data.ComplainantPhone,
		data.ComplainantAddr, data.ComplaintType, data.Subject, data.Description, data.IncidentDate,
		data.IncidentLocation, data.Priority, data.Status)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) get(ctx context.Context, column string, value any) (*model.ComplaintEntity, error) {
	query := `SELECT ` + complaintColumns + ` FROM ` + complaintFrom + ` WHERE ` + column + ` = ?`
	var entity model.ComplaintEntity
	if err := r.conn.QueryRowxContext(ctx, query, value).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.ComplaintEntity, error) {
	return r.get(ctx, "c.id", id)
}

func (r *SQL) GetByNumber(ctx context.Context, number string) (*model.ComplaintEntity, error) {
	return r.get(ctx, "c.complaint_number", number)
}

func complaintQuery(filter *model.ComplaintFilter) *querybuilder.Builder {
	b := querybuilder.New(complaintColumns, complaintFrom).Sortable(complaintSortable, "c.created_at DESC")
	if filter.Status != "" {
		b.Where("c.status", filter.Status)
	}
	if filter.Type != "" {
		b.Where("c.complaint_type", filter.Type)
	}
	if filter.Priority != "" {
		b.Where("c.priority", filter.Priority)
	}
	if filter.AssignedTo != 0 {
		b.Where("c.assigned_to", filter.AssignedTo)
	}
	if filter.Email != "" {
		b.Where("c.complainant_email", filter.Email)
	}
	return b.Filter(filter.ListQuery, "c.created_at", "c.complaint_number", "c.subject", "c.complainant_name", "c.complainant_email")
}

func (r *SQL) List(ctx context.Context, filter *model.ComplaintFilter) ([]model.ComplaintEntity, int64, error) {
	b := complaintQuery(filter).Paginate(querybuilder.PageOf(filter.ListQuery))
	items := []model.ComplaintEntity{}
	total, err := querybuilder.Fetch(ctx, r.conn, &items, b)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *SQL) Export(ctx context.Context, filter *model.ComplaintFilter) ([]model.ComplaintEntity, error) {
	query, args := complaintQuery(filter).Build()
	items := []model.ComplaintEntity{}
	if err := r.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStatus keeps the previous resolution notes when notes is empty.
func (r *SQL) UpdateStatus(ctx context.Context, id uint64, status constant.ComplaintStatus, notes string) error {
	_, err := r.conn.ExecContext(ctx, updateComplaintStatusQuery, status, notes, notes, id)
	return err
}

func (r *SQL) Assign(ctx context.Context, id, assignee uint64) error {
	_, err := r.conn.ExecContext(ctx, assignComplaintQuery, assignee, id)
	return err
}

func (r *SQL) UpdatePriority(ctx context.Context, id uint64, priority constant.ComplaintPriority) error {
	_, err := r.conn.ExecContext(ctx, updateComplaintPriorityQuery, priority, id)
	return err
}

func (r *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := r.conn.ExecContext(ctx, deleteComplaintQuery, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SQL) Stats(ctx context.Context) (*model.ComplaintStats, error) {
	stats := &model.ComplaintStats{ByStatus: []model.CountByKey{}, ByType: []model.CountByKey{}, ByPriority: []model.CountByKey{}}
	if err := r.conn.GetContext(ctx, &stats.Total, `SELECT COUNT(*) FROM complaints`); err != nil {
		return nil, err
	}
	groups := []struct {
		column string
		dest   *[]model.CountByKey
	}{
		{"status", &stats.ByStatus},
		{"complaint_type", &stats.ByType},
		{"priority", &stats.ByPriority},
	}
	for _, g := range groups {
		query := `SELECT ` + g.column + ` AS k, COUNT(*) AS c FROM complaints GROUP BY ` + g.column
		if err := r.conn.SelectContext(ctx, g.dest, query); err != nil {
			return nil, err
		}
	}
	return stats, nil
}
