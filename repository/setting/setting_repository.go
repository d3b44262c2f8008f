package setting

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/bhrc-portal/model"
)

type SQL struct {
	conn *sqlx.DB
}

type SettingRepository interface {
	List(ctx context.Context) ([]model.SettingEntity, error)
	GetByKey(ctx context.Context, key string) (*model.SettingEntity, error)
	UpdateValue(ctx context.Context, key, value string, updatedBy uint64) (bool, error)
	UpdateValueTx(ctx context.Context, tx *sqlx.Tx, key, value string, updatedBy uint64) (bool, error)
	UpsertTx(ctx context.Context, tx *sqlx.Tx, data *model.SettingEntity) error
}

func NewSettingRepository(conn *sqlx.DB) SettingRepository {
	return &SQL{conn: conn}
}

const (
	settingColumns = `id, setting_key, setting_value, setting_type, category, description, is_public, updated_by, updated_at`

	listSettingsQuery  = `SELECT ` + settingColumns + ` FROM settings ORDER BY category, setting_key`
	getSettingQuery    = `SELECT ` + settingColumns + ` FROM settings WHERE setting_key = ?`
	updateSettingQuery = `UPDATE settings SET setting_value = ?, updated_by = ?, updated_at = NOW() WHERE setting_key = ?`
	upsertSettingQuery = `INSERT INTO settings (setting_key, setting_value, setting_type, category, description, is_public, updated_by, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW())
		ON DUPLICATE KEY UPDATE setting_value = VALUES(setting_value), setting_type = VALUES(setting_type),
		category = VALUES(category), description = VALUES(description), is_public = VALUES(is_public),
		updated_by = VALUES(updated_by), updated_at = NOW()`
)

func (r *SQL) List(ctx context.Context) ([]model.SettingEntity, error) {
	items := []model.SettingEntity{}
	if err := r.conn.SelectContext(ctx, &items, listSettingsQuery); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) GetByKey(ctx context.Context, key string) (*model.SettingEntity, error) {
	var entity model.SettingEntity
	if err := r.conn.QueryRowxContext(ctx, getSettingQuery, key).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// UpdateValue reports false when no setting has that key.
func (r *SQL) UpdateValue(ctx context.Context, key, value string, updatedBy uint64) (bool, error) {
	return update(ctx, r.conn, key, value, updatedBy)
}

func (r *SQL) UpdateValueTx(ctx context.Context, tx *sqlx.Tx, key, value string, updatedBy uint64) (bool, error) {
	return update(ctx, tx, key, value, updatedBy)
}

func update(ctx context.Context, db sqlx.ExecerContext, key, value string, updatedBy uint64) (bool, error) {
	res, err := db.ExecContext(ctx, updateSettingQuery, value, updatedBy, key)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SQL) UpsertTx(ctx context.Context, tx *sqlx.Tx, data *model.SettingEntity) error {
	_, err := tx.ExecContext(ctx, upsertSettingQuery,
		data.Key, data.Value, data.Type, data.Category, data.Description, data.IsPublic, data.UpdatedBy)
	return err
}
