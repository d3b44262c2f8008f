package news

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

type NewsRepository interface {
	Create(ctx context.Context, data *model.NewsEntity) (uint64, error)
	Update(ctx context.Context, data *model.NewsEntity) error
	Delete(ctx context.Context, id uint64) (bool, error)
	GetByID(ctx context.Context, id uint64) (*model.NewsEntity, error)
	GetBySlug(ctx context.Context, slug string) (*model.NewsEntity, error)
	List(ctx context.Context, filter *model.NewsFilter) ([]model.NewsEntity, int64, error)
	IncrementViews(ctx context.Context, id uint64) error
}

func NewNewsRepository(conn *sqlx.DB) NewsRepository {
	return &SQL{conn: conn}
}

const (
	newsColumns = `id, title, slug, summary, content, category, image_url, status, views, author_id, published_at, created_at, updated_at`

	insertNewsQuery = `INSERT INTO news (title, slug, summary, content, category, image_url, status, author_id, published_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`
	updateNewsQuery = `UPDATE news SET title = ?, summary = ?, content = ?, category = ?, image_url = ?, status = ?,
		published_at = ? WHERE id = ?`
	deleteNewsQuery    = `DELETE FROM news WHERE id = ?`
	incrementViewQuery = `UPDATE news SET views = views + 1 WHERE id = ?`
)

var newsSortable = map[string]string{
	"created_at":   "created_at",
	"published_at": "published_at",
	"title":        "title",
	"views":        "views",
}

func (r *SQL) Create(ctx context.Context, data *model.NewsEntity) (uint64, error) {
	res, err := r.conn.ExecContext(ctx, insertNewsQuery,
		data.Title, data.Slug, data.Summary, data.Content, data.Category, data.ImageURL, data.Status, data.AuthorID, data.PublishedAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Update leaves the slug untouched so published links stay stable.
func (r *SQL) Update(ctx context.Context, data *model.NewsEntity) error {
	_, err := r.conn.ExecContext(ctx, updateNewsQuery,
		data.Title, data.Summary, data.Content, data.Category, data.ImageURL, data.Status, data.PublishedAt, data.ID)
	return err
}

func (r *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := r.conn.ExecContext(ctx, deleteNewsQuery, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SQL) get(ctx context.Context, column string, value any) (*model.NewsEntity, error) {
	var entity model.NewsEntity
	query := `SELECT ` + newsColumns + ` FROM news WHERE ` + column + ` = ?`
	if err := r.conn.QueryRowxContext(ctx, query, value).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.NewsEntity, error) {
	return r.get(ctx, "id", id)
}

func (r *SQL) GetBySlug(ctx context.Context, slug string) (*model.NewsEntity, error) {
	return r.get(ctx, "slug", slug)
}

func (r *SQL) List(ctx context.Context, filter *model.NewsFilter) ([]model.NewsEntity, int64, error) {
	b := querybuilder.New(newsColumns, "news").Sortable(newsSortable, "created_at DESC")
	if filter.Category != "" {
		b.Where("category", filter.Category)
	}
	if filter.PublishedOnly {
		b.Where("status", "published")
	} else if filter.Status != "" {
		b.Where("status", filter.Status)
	}
	b.Apply(filter.ListQuery, "created_at", "title", "summary")

	items := []model.NewsEntity{}
	total, err := querybuilder.Fetch(ctx, r.conn, &items, b)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *SQL) IncrementViews(ctx context.Context, id uint64) error {
	_, err := r.conn.ExecContext(ctx, incrementViewQuery, id)
	return err
}
