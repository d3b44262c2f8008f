package activity

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/bhrc-portal/model"
	"github.com/muhammadheryan/bhrc-portal/utils/querybuilder"
)

type SQL struct {
	conn *sqlx.DB
}

type ActivityRepository interface {
	Create(ctx context.Context, data *model.ActivityEntity) error
	List(ctx context.Context, filter *model.ActivityFilter) ([]model.ActivityEntity, int64, error)
	Recent(ctx context.Context, limit int) ([]model.ActivityEntity, error)
}

func NewActivityRepository(conn *sqlx.DB) ActivityRepository {
	return &SQL{conn: conn}
}

const (
	activityColumns = `a.id, a.user_id, u.name AS user_name, a.action, a.description, a.metadata, a.ip_address, a.created_at`
	activityFrom    = `activity_logs a LEFT JOIN users u ON u.id = a.user_id`

	insertActivityQuery = `INSERT INTO activity_logs (user_id, action, description, metadata, ip_address, created_at) VALUES (?, ?, ?, ?, ?, NOW())`
	recentActivityQuery = `SELECT ` + activityColumns + ` FROM ` + activityFrom + ` ORDER BY a.id DESC LIMIT ?`
)

var activitySortable = map[string]string{
	"created_at": "a.created_at",
	"action":     "a.action",
}

func (r *SQL) Create(ctx context.Context, data *model.ActivityEntity) error {
	_, err := r.conn.ExecContext(ctx, insertActivityQuery, data.UserID, data.Action, data.Description, data.Metadata, data.IPAddress)
	return err
}

func (r *SQL) List(ctx context.Context, filter *model.ActivityFilter) ([]model.ActivityEntity, int64, error) {
	b := querybuilder.New(activityColumns, activityFrom).Sortable(activitySortable, "a.created_at DESC")
	if filter.UserID != 0 {
		b.Where("a.user_id", filter.UserID)
	}
	if filter.Action != "" {
		b.Where("a.action", filter.Action)
	}
	b.Apply(filter.ListQuery, "a.created_at", "a.action", "a.description")

	items := []model.ActivityEntity{}
	total, err := querybuilder.Fetch(ctx, r.conn, &items, b)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *SQL) Recent(ctx context.Context, limit int) ([]model.ActivityEntity, error) {
	items := []model.ActivityEntity{}
	if err := r.conn.SelectContext(ctx, &items, recentActivityQuery, limit); err != nil {
		return nil, err
	}
	return items, nil
}
