package donation

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

type DonationRepository interface {
	Create(ctx context.Context, data *model.DonationEntity) (uint64, error)
	GetByID(ctx context.Context, id uint64) (*model.DonationEntity, error)
	List(ctx context.Context, filter *model.DonationFilter) ([]model.DonationEntity, int64, error)
	Export(ctx context.Context, filter *model.DonationFilter) ([]model.DonationEntity, error)
	UpdateStatus(ctx context.Context, id uint64, from, to constant.DonationStatus, transactionID string) (bool, error)
	Delete(ctx context.Context, id uint64) (bool, error)
	Stats(ctx context.Context) (*model.DonationStats, error)
}

func NewDonationRepository(conn *sqlx.DB) DonationRepository {
	return &SQL{conn: conn}
}

const (
	donationColumns = `id, reference_number, user_id, donor_name, donor_email, donor_phone, pan_number, amount, donation_type,
		category, payment_method, transaction_id, status, is_anonymous, COALESCE(message, '') AS message, created_at, updated_at`

	insertDonationQuery = `INSERT INTO donations (reference_number, user_id, donor_name, donor_email, donor_phone, pan_number, amount,
		donation_type, category, payment_method, transaction_id, status, is_anonymous, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`
	getDonationQuery          = `SELECT ` + donationColumns + ` FROM donations WHERE id = ?`
	updateDonationStatusQuery = `UPDATE donations SET status = ?, transaction_id = COALESCE(NULLIF(?, ''), transaction_id)
		WHERE id = ? AND status = ?`
	deleteDonationQuery = `DELETE FROM donations WHERE id = ? AND status <> 'completed'`
)

var donationSortable = map[string]string{
	"created_at": "created_at",
	"amount":     "amount",
	"status":     "status",
	"category":   "category",
}

func (r *SQL) Create(ctx context.Context, data *model.DonationEntity) (uint64, error) {
	res, err := r.conn.ExecContext(ctx, insertDonationQuery,
		data.ReferenceNumber, data.UserID, data.DonorName, data.DonorEmail, data.DonorPhone, data.PAN, data.Amount,
		data.DonationType, data.Category, data.PaymentMethod, data.TransactionID, data.Status, data.IsAnonymous, data.Message)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.DonationEntity, error) {
	var entity model.DonationEntity
	if err := r.conn.QueryRowxContext(ctx, getDonationQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func donationQuery(filter *model.DonationFilter) *querybuilder.Builder {
	b := querybuilder.New(donationColumns, "donations").Sortable(donationSortable, "created_at DESC")
	if filter.Status != "" {
		b.Where("status", filter.Status)
	}
	if filter.Category != "" {
		b.Where("category", filter.Category)
	}
	if filter.Type != "" {
		b.Where("donation_type", filter.Type)
	}
	if filter.UserID != 0 {
		b.Where("user_id", filter.UserID)
	}
	if filter.MinAmount > 0 {
		b.WhereOp("amount", ">=", filter.MinAmount)
	}
	if filter.MaxAmount > 0 {
		b.WhereOp("amount", "<=", filter.MaxAmount)
	}
	return b.Filter(filter.ListQuery, "created_at", "reference_number", "donor_name", "donor_email")
}

func (r *SQL) List(ctx context.Context, filter *model.DonationFilter) ([]model.DonationEntity, int64, error) {
	b := donationQuery(filter).Paginate(querybuilder.PageOf(filter.ListQuery))
	items := []model.DonationEntity{}
	total, err := querybuilder.Fetch(ctx, r.conn, &items, b)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *SQL) Export(ctx context.Context, filter *model.DonationFilter) ([]model.DonationEntity, error) {
	query, args := donationQuery(filter).Build()
	items := []model.DonationEntity{}
	if err := r.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStatus moves a donation out of status from; it reports false when
// the row is gone or no longer in that status. The stored transaction id is
// kept when transactionID is empty.
func (r *SQL) UpdateStatus(ctx context.Context, id uint64, from, to constant.DonationStatus, transactionID string) (bool, error) {
	res, err := r.conn.ExecContext(ctx, updateDonationStatusQuery, to, transactionID, id, from)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete never removes a completed donation.
func (r *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := r.conn.ExecContext(ctx, deleteDonationQuery, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SQL) Stats(ctx context.Context) (*model.DonationStats, error) {
	stats := &model.DonationStats{ByCategory: []model.CategoryAmount{}, ByMonth: []model.MonthlyAmount{}}
	totals := struct {
		Total     int64   `db:"total"`
		Completed int64   `db:"completed"`
		Amount    float64 `db:"amount"`
	}{}
	if err := r.conn.GetContext(ctx, &totals, `SELECT COUNT(*) AS total,
		COALESCE(SUM(status = 'completed'), 0) AS completed,
		COALESCE(SUM(IF(status = 'completed', amount, 0)), 0) AS amount FROM donations`); err != nil {
		return nil, err
	}
	stats.TotalCount, stats.CompletedCount, stats.TotalAmount = totals.Total, totals.Completed, totals.Amount

	if err := r.conn.SelectContext(ctx, &stats.ByCategory, `SELECT category, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS amount
		FROM donations WHERE status = 'completed' GROUP BY category ORDER BY amount DESC`); err != nil {
		return nil, err
	}
	if err := r.conn.SelectContext(ctx, &stats.ByMonth, `SELECT DATE_FORMAT(created_at, '%Y-%m') AS month, COUNT(*) AS count,
		COALESCE(SUM(amount), 0) AS amount FROM donations
		WHERE status = 'completed' AND created_at >= DATE_SUB(CURDATE(), INTERVAL 12 MONTH)
		GROUP BY month ORDER BY month`); err != nil {
		return nil, err
	}
	return stats, nil
}
