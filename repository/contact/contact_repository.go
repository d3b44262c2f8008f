package contact

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/bhrc-portal/model"
	"github.com/muhammadheryan/bhrc-portal/utils/querybuilder"
)

type SQL struct {
	conn *sqlx.DB
}

type ContactRepository interface {
	Create(ctx context.Context, data *model.ContactEntity) (uint64, error)
	List(ctx context.Context, q model.ListQuery) ([]model.ContactEntity, int64, error)
}

func NewContactRepository(conn *sqlx.DB) ContactRepository {
	return &SQL{conn: conn}
}

const (
	contactColumns     = `id, name, email, phone, subject, message, ip_address, created_at`
	insertContactQuery = `INSERT INTO contact_messages (name, email, phone, subject, message, ip_address, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())`
)

func (r *SQL) Create(ctx context.Context, data *model.ContactEntity) (uint64, error) {
	res, err := r.conn.ExecContext(ctx, insertContactQuery, data.Name, data.Email, data.Phone, data.Subject, data.Message, data.IP)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) List(ctx context.Context, q model.ListQuery) ([]model.ContactEntity, int64, error) {
	b := querybuilder.New(contactColumns, "contact_messages").
		Sortable(map[string]string{"created_at": "created_at", "name": "name"}, "created_at DESC").
		Apply(q, "created_at", "name", "email", "subject")

	items := []model.ContactEntity{}
	total, err := querybuilder.Fetch(ctx, r.conn, &items, b)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
