package certificate

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/bhrc-portal/model"
	"github.com/muhammadheryan/bhrc-portal/utils/querybuilder"
)

type SQL struct {
	conn *sqlx.DB
}

type CertificateRepository interface {
	Create(ctx context.Context, data *model.CertificateEntity) (uint64, error)
	GetByID(ctx context.Context, id uint64) (*model.CertificateEntity, error)
	GetByNumber(ctx context.Context, number string) (*model.CertificateEntity, error)
	List(ctx context.Context, filter *model.CertificateFilter) ([]model.CertificateEntity, int64, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

func NewCertificateRepository(conn *sqlx.DB) CertificateRepository {
	return &SQL{conn: conn}
}

const (
	certificateColumns = `c.id, c.certificate_number, c.user_id, u.name AS recipient_name, c.certificate_type, c.title,
		COALESCE(c.description, '') AS description, c.issue_date, c.valid_until, c.issued_by, c.created_at`
	certificateFrom = `certificates c LEFT JOIN users u ON u.id = c.user_id`

	insertCertificateQuery = `INSERT INTO certificates (certificate_number, user_id, certificate_type, title, description,
		issue_date, valid_until, issued_by, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())`
	deleteCertificateQuery = `DELETE FROM certificates WHERE id = ?`
)

var certificateSortable = map[string]string{
	"issue_date":         "c.issue_date",
	"created_at":         "c.created_at",
	"certificate_number": "c.certificate_number",
	"title":              "c.title",
}

func (r *SQL) Create(ctx context.Context, data *model.CertificateEntity) (uint64, error) {
	res, err := r.conn.ExecContext(ctx, insertCertificateQuery,
		data.CertificateNumber, data.UserID, data.CertificateType, data.Title, data.Description,
		data.IssueDate, data.ValidUntil, data.IssuedBy)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) get(ctx context.Context, column string, value any) (*model.CertificateEntity, error) {
	query := `SELECT ` + certificateColumns + ` FROM ` + certificateFrom + ` WHERE ` + column + ` = ?`
	var entity model.CertificateEntity
	if err := r.conn.QueryRowxContext(ctx, query, value).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.CertificateEntity, error) {
	return r.get(ctx, "c.id", id)
}

func (r *SQL) GetByNumber(ctx context.Context, number string) (*model.CertificateEntity, error) {
	return r.get(ctx, "c.certificate_number", number)
}

func (r *SQL) List(ctx context.Context, filter *model.CertificateFilter) ([]model.CertificateEntity, int64, error) {
	b := querybuilder.New(certificateColumns, certificateFrom).Sortable(certificateSortable, "c.issue_date DESC")
	if filter.UserID != 0 {
		b.Where("c.user_id", filter.UserID)
	}
	if filter.Type != "" {
		b.Where("c.certificate_type", filter.Type)
	}
	b.Apply(filter.ListQuery, "c.issue_date", "c.certificate_number", "c.title", "u.name")

	items := []model.CertificateEntity{}
	total, err := querybuilder.Fetch(ctx, r.conn, &items, b)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := r.conn.ExecContext(ctx, deleteCertificateQuery, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
