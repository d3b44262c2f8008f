package gallery

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

type GalleryRepository interface {
	Create(ctx context.Context, data *model.GalleryEntity) (uint64, error)
	Update(ctx context.Context, data *model.GalleryEntity) error
	Delete(ctx context.Context, id uint64) (bool, error)
	GetByID(ctx context.Context, id uint64) (*model.GalleryEntity, error)
	List(ctx context.Context, filter *model.GalleryFilter) ([]model.GalleryEntity, int64, error)
}

func NewGalleryRepository(conn *sqlx.DB) GalleryRepository {
	return &SQL{conn: conn}
}

const (
	galleryColumns = `id, title, COALESCE(description, '') AS description, category, image_url, thumbnail_url, event_id,
		is_public, uploaded_by, created_at, updated_at`

	insertGalleryQuery = `INSERT INTO gallery (title, description, category, image_url, thumbnail_url, event_id, is_public,
		uploaded_by, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())`
	updateGalleryQuery = `UPDATE gallery SET title = ?, description = ?, category = ?, image_url = ?, thumbnail_url = ?,
		event_id = ?, is_public = ? WHERE id = ?`
	deleteGalleryQuery = `DELETE FROM gallery WHERE id = ?`
	getGalleryQuery    = `SELECT ` + galleryColumns + ` FROM gallery WHERE id = ?`
)

var gallerySortable = map[string]string{
	"created_at": "created_at",
	"title":      "title",
	"category":   "category",
}

func (r *SQL) Create(ctx context.Context, data *model.GalleryEntity) (uint64, error) {
	res, err := r.conn.ExecContext(ctx, insertGalleryQuery,
		data.Title, data.Description, data.Category, data.ImageURL, data.ThumbnailURL, data.EventID, data.IsPublic, data.UploadedBy)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) Update(ctx context.Context, data *model.GalleryEntity) error {
	_, err := r.conn.ExecContext(ctx, updateGalleryQuery,
		data.Title, data.Description, data.Category, data.ImageURL, data.ThumbnailURL, data.EventID, data.IsPublic, data.ID)
	return err
}

func (r *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := r.conn.ExecContext(ctx, deleteGalleryQuery, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.GalleryEntity, error) {
	var entity model.GalleryEntity
	if err := r.conn.QueryRowxContext(ctx, getGalleryQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) List(ctx context.Context, filter *model.GalleryFilter) ([]model.GalleryEntity, int64, error) {
	b := querybuilder.New(galleryColumns, "gallery").Sortable(gallerySortable, "created_at DESC")
	if filter.Category != "" {
		b.Where("category", filter.Category)
	}
	if filter.EventID != 0 {
		b.Where("event_id", filter.EventID)
	}
	if filter.PublicOnly {
		b.Where("is_public", true)
	}
	b.Apply(filter.ListQuery, "created_at", "title", "description")

	items := []model.GalleryEntity{}
	total, err := querybuilder.Fetch(ctx, r.conn, &items, b)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
