package user

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

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	List(ctx context.Context, filter *model.UserListFilter) ([]model.UserEntity, int64, error)
	Export(ctx context.Context, filter *model.UserListFilter) ([]model.UserEntity, error)
	UpdateProfile(ctx context.Context, data *model.UserEntity) error
	UpdateStatus(ctx context.Context, id uint64, status constant.UserStatus) error
	UpdateRole(ctx context.Context, id uint64, role constant.Role) error
	UpdatePassword(ctx context.Context, id uint64, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id uint64) error
	MarkEmailVerified(ctx context.Context, id uint64) error
	BulkUpdateStatus(ctx context.Context, ids []uint64, status constant.UserStatus, membersOnly bool) (int64, error)
	BulkDelete(ctx context.Context, ids []uint64) (int64, error)
	Delete(ctx context.Context, id uint64) (bool, error)
	Stats(ctx context.Context) (*model.UserStats, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	userColumns     = `id, name, email, phone, password_hash, role, status, email_verified, phone_verified, address, city, state, occupation, last_login, created_at, updated_at`
	insertUserQuery = `INSERT INTO users (name, email, phone, password_hash, role, status, email_verified, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, NOW())`
	getUserBase     = `SELECT ` + userColumns + ` FROM users WHERE true`

	updateProfileQuery = `UPDATE users SET name = ?, phone = ?, address = ?, city = ?, state = ?, occupation = ? WHERE id = ?`
	updateStatusQuery  = `UPDATE users SET status = ? WHERE id = ?`
	updateRoleQuery    = `UPDATE users SET role = ? WHERE id = ?`
	updatePassQuery    = `UPDATE users SET password_hash = ? WHERE id = ?`
	updateLoginQuery   = `UPDATE users SET last_login = NOW() WHERE id = ?`
	verifyEmailQuery   = `UPDATE users SET email_verified = 1, status = IF(status = 'pending', 'active', status) WHERE id = ?`
	deleteUserQuery    = `DELETE FROM users WHERE id = ?`
)

var userSortable = map[string]string{
	"name":       "name",
	"email":      "email",
	"role":       "role",
	"status":     "status",
	"created_at": "created_at",
	"last_login": "last_login",
}

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery, data.Name, data.Email, data.Phone, data.PasswordHash, data.Role, data.Status, data.EmailVerified)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.Phone != "" {
		query += " AND phone = ?"
		args = append(args, filter.Phone)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func userQuery(filter *model.UserListFilter) *querybuilder.Builder {
	b := querybuilder.New(userColumns, "users").Sortable(userSortable, "created_at DESC")
	if filter.Role != "" {
		b.Where("role", filter.Role)
	}
	if filter.Status != "" {
		b.Where("status", filter.Status)
	}
	return b.Filter(filter.ListQuery, "created_at", "name", "email", "phone")
}

func (s *SQL) List(ctx context.Context, filter *model.UserListFilter) ([]model.UserEntity, int64, error) {
	b := userQuery(filter).Paginate(querybuilder.PageOf(filter.ListQuery))

	users := []model.UserEntity{}
	total, err := querybuilder.Fetch(ctx, s.conn, &users, b)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *SQL) Export(ctx context.Context, filter *model.UserListFilter) ([]model.UserEntity, error) {
	query, args := userQuery(filter).Build()
	users := []model.UserEntity{}
	if err := s.conn.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *SQL) UpdateProfile(ctx context.Context, data *model.UserEntity) error {
	_, err := s.conn.ExecContext(ctx, updateProfileQuery, data.Name, data.Phone, data.Address, data.City, data.State, data.Occupation, data.ID)
	return err
}

func (s *SQL) UpdateStatus(ctx context.Context, id uint64, status constant.UserStatus) error {
	_, err := s.conn.ExecContext(ctx, updateStatusQuery, status, id)
	return err
}

func (s *SQL) UpdateRole(ctx context.Context, id uint64, role constant.Role) error {
	_, err := s.conn.ExecContext(ctx, updateRoleQuery, role, id)
	return err
}

func (s *SQL) UpdatePassword(ctx context.Context, id uint64, passwordHash string) error {
	_, err := s.conn.ExecContext(ctx, updatePassQuery, passwordHash, id)
	return err
}

func (s *SQL) UpdateLastLogin(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, updateLoginQuery, id)
	return err
}

// MarkEmailVerified also activates an account still waiting on verification.
func (s *SQL) MarkEmailVerified(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, verifyEmailQuery, id)
	return err
}

// BulkUpdateStatus changes every listed user in a single statement. With
// membersOnly, admin and moderator rows are skipped.
func (s *SQL) BulkUpdateStatus(ctx context.Context, ids []uint64, status constant.UserStatus, membersOnly bool) (int64, error) {
	stmt, params := `UPDATE users SET status = ? WHERE id IN (?)`, []any{status, ids}
	if membersOnly {
		stmt += ` AND role NOT IN (?)`
		params = append(params, []constant.Role{constant.RoleAdmin, constant.RoleModerator})
	}
	query, args, err := sqlx.In(stmt, params...)
	if err != nil {
		return 0, err
	}
	res, err := s.conn.ExecContext(ctx, s.conn.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQL) BulkDelete(ctx context.Context, ids []uint64) (int64, error) {
	query, args, err := sqlx.In(`DELETE FROM users WHERE id IN (?)`, ids)
	if err != nil {
		return 0, err
	}
	res, err := s.conn.ExecContext(ctx, s.conn.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := s.conn.ExecContext(ctx, deleteUserQuery, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQL) Stats(ctx context.Context) (*model.UserStats, error) {
	stats := &model.UserStats{ByStatus: []model.CountByKey{}, ByRole: []model.CountByKey{}}
	if err := s.conn.GetContext(ctx, &stats.Total, `SELECT COUNT(*) FROM users`); err != nil {
		return nil, err
	}
	if err := s.conn.SelectContext(ctx, &stats.ByStatus, `SELECT status AS k, COUNT(*) AS c FROM users GROUP BY status`); err != nil {
		return nil, err
	}
	if err := s.conn.SelectContext(ctx, &stats.ByRole, `SELECT role AS k, COUNT(*) AS c FROM users GROUP BY role`); err != nil {
		return nil, err
	}
	return stats, nil
}
