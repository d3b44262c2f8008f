package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/bhrc-portal/model"
)

// Metric names one countable series.
type Metric string

const (
	MetricUsers          Metric = "users"
	MetricDonations      Metric = "donations"
	MetricDonationAmount Metric = "donation_amount"
	MetricComplaints     Metric = "complaints"
	MetricRegistrations  Metric = "registrations"
)

// metricSource maps a metric to its aggregate, table and optional predicate.
var metricSource = map[Metric]struct {
	aggregate string
	table     string
	where     string
}{
	MetricUsers:          {"COUNT(*)", "users", ""},
	MetricDonations:      {"COUNT(*)", "donations", "status = 'completed'"},
	MetricDonationAmount: {"COALESCE(SUM(amount), 0)", "donations", "status = 'completed'"},
	MetricComplaints:     {"COUNT(*)", "complaints", ""},
	MetricRegistrations:  {"COUNT(*)", "event_registrations", "attendance_status <> 'cancelled'"},
}

type SQL struct {
	conn *sqlx.DB
}

type AnalyticsRepository interface {
	Sum(ctx context.Context, metric Metric, from, to time.Time) (float64, error)
	MonthlyTrend(ctx context.Context, metric Metric, since time.Time) ([]model.TrendPoint, error)
	AdminCounts(ctx context.Context) (*model.AdminDashboard, error)
	MemberCounts(ctx context.Context, userID uint64, email string) (*model.MemberDashboard, error)
}

func NewAnalyticsRepository(conn *sqlx.DB) AnalyticsRepository {
	return &SQL{conn: conn}
}

func predicate(where string) string {
	if where == "" {
		return ""
	}
	return " AND " + where
}

// Sum aggregates metric over created_at in [from, to).
func (r *SQL) Sum(ctx context.Context, metric Metric, from, to time.Time) (float64, error) {
	src, ok := metricSource[metric]
	if !ok {
		return 0, fmt.Errorf("unknown metric %q", metric)
	}
	query := `SELECT ` + src.aggregate + ` FROM ` + src.table + ` WHERE created_at >= ? AND created_at < ?` + predicate(src.where)
	var value float64
	if err := r.conn.GetContext(ctx, &value, query, from, to); err != nil {
		return 0, err
	}
	return value, nil
}

func (r *SQL) MonthlyTrend(ctx context.Context, metric Metric, since time.Time) ([]model.TrendPoint, error) {
	src, ok := metricSource[metric]
	if !ok {
		return nil, fmt.Errorf("unknown metric %q", metric)
	}
	query := `SELECT DATE_FORMAT(created_at, '%Y-%m') AS month, ` + src.aggregate + ` AS value FROM ` + src.table +
		` WHERE created_at >= ?` + predicate(src.where) + ` GROUP BY month ORDER BY month`
	points := []model.TrendPoint{}
	if err := r.conn.SelectContext(ctx, &points, query, since); err != nil {
		return nil, err
	}
	return points, nil
}

const adminCountsQuery = `SELECT
	(SELECT COUNT(*) FROM users) AS total_users,
	(SELECT COUNT(*) FROM users WHERE status = 'pending') AS pending_users,
	(SELECT COUNT(*) FROM complaints WHERE status IN ('submitted', 'under_review', 'investigating')) AS open_complaints,
	(SELECT COUNT(*) FROM complaints WHERE priority = 'urgent' AND status IN ('submitted', 'under_review', 'investigating')) AS urgent_complaints,
	(SELECT COUNT(*) FROM events WHERE status = 'upcoming' AND event_date >= NOW()) AS upcoming_events,
	(SELECT COALESCE(SUM(amount), 0) FROM donations WHERE status = 'completed') AS total_donations,
	(SELECT COUNT(*) FROM donations WHERE status = 'pending') AS pending_donations,
	(SELECT COUNT(*) FROM news WHERE status = 'published') AS published_news`

const memberCountsQuery = `SELECT
	(SELECT COUNT(*) FROM donations WHERE user_id = ?) AS donation_count,
	(SELECT COALESCE(SUM(amount), 0) FROM donations WHERE user_id = ? AND status = 'completed') AS donation_total,
	(SELECT COUNT(*) FROM certificates WHERE user_id = ?) AS certificate_count,
	(SELECT COUNT(*) FROM event_registrations WHERE participant_email = ? AND attendance_status <> 'cancelled') AS registration_count,
	(SELECT COUNT(*) FROM complaints WHERE complainant_email = ?) AS complaint_count`

func (r *SQL) AdminCounts(ctx context.Context) (*model.AdminDashboard, error) {
	row := struct {
		TotalUsers       int64   `db:"total_users"`
		PendingUsers     int64   `db:"pending_users"`
		OpenComplaints   int64   `db:"open_complaints"`
		UrgentComplaints int64   `db:"urgent_complaints"`
		UpcomingEvents   int64   `db:"upcoming_events"`
		TotalDonations   float64 `db:"total_donations"`
		PendingDonations int64   `db:"pending_donations"`
		PublishedNews    int64   `db:"published_news"`
	}{}
	if err := r.conn.GetContext(ctx, &row, adminCountsQuery); err != nil {
		return nil, err
	}
	return &model.AdminDashboard{
		TotalUsers:       row.TotalUsers,
		PendingUsers:     row.PendingUsers,
		OpenComplaints:   row.OpenComplaints,
		UrgentComplaints: row.UrgentComplaints,
		UpcomingEvents:   row.UpcomingEvents,
		TotalDonations:   row.TotalDonations,
		PendingDonations: row.PendingDonations,
		PublishedNews:    row.PublishedNews,
	}, nil
}

func (r *SQL) MemberCounts(ctx context.Context, userID uint64, email string) (*model.MemberDashboard, error) {
	row := struct {
		DonationCount     int64   `db:"donation_count"`
		DonationTotal     float64 `db:"donation_total"`
		CertificateCount  int64   `db:"certificate_count"`
		RegistrationCount int64   `db:"registration_count"`
		ComplaintCount    int64   `db:"complaint_count"`
	}{}
	if err := r.conn.GetContext(ctx, &row, memberCountsQuery, userID, userID, userID, email, email); err != nil {
		return nil, err
	}
	return &model.MemberDashboard{
		DonationCount:     row.DonationCount,
		DonationTotal:     row.DonationTotal,
		CertificateCount:  row.CertificateCount,
		RegistrationCount: row.RegistrationCount,
		ComplaintCount:    row.ComplaintCount,
	}, nil
}
