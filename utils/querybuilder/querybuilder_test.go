package querybuilder_test

import (
	"context"
	"net/url"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/bhrc-portal/model"
	qb "github.com/muhammadheryan/bhrc-portal/utils/querybuilder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var complaintSort = map[string]string{
	"created_at": "c.created_at",
	"priority":   "c.priority",
}

func TestBuilder_Build(t *testing.T) {
	tests := []struct {
		name      string
		build     func() *qb.Builder
		wantQuery string
		wantArgs  []any
	}{
		{
			name: "no filters uses default sort",
			build: func() *qb.Builder {
				return qb.New("c.id", "complaints c")
			},
			wantQuery: "SELECT c.id FROM complaints c ORDER BY created_at DESC",
			wantArgs:  []any{},
		},
		{
			name: "equality, like and pagination",
			build: func() *qb.Builder {
				return qb.New("c.id", "complaints c").
					Sortable(complaintSort, "c.created_at DESC").
					Where("c.status", "submitted").
					WhereLike("jane", "c.subject", "c.complainant_name").
					OrderBy("priority", "asc").
					Paginate(qb.NewPage(3, 20))
			},
			wantQuery: "SELECT c.id FROM complaints c WHERE c.status = ? AND (c.subject LIKE ? OR c.complainant_name LIKE ?) ORDER BY c.priority ASC LIMIT ? OFFSET ?",
			wantArgs:  []any{"submitted", "%jane%", "%jane%", 20, 40},
		},
		{
			name: "sort field outside allow-list falls back to default",
			build: func() *qb.Builder {
				return qb.New("c.id", "complaints c").
					Sortable(complaintSort, "c.created_at DESC").
					OrderBy("password_hash; DROP TABLE users", "asc")
			},
			wantQuery: "SELECT c.id FROM complaints c ORDER BY c.created_at DESC",
			wantArgs:  []any{},
		},
		{
			name: "unknown direction becomes DESC",
			build: func() *qb.Builder {
				return qb.New("c.id", "complaints c").
					Sortable(complaintSort, "").
					OrderBy("priority", "sideways")
			},
			wantQuery: "SELECT c.id FROM complaints c ORDER BY c.priority DESC",
			wantArgs:  []any{},
		},
		{
			name: "in, date range and raw",
			build: func() *qb.Builder {
				return qb.New("u.id", "users u").
					WhereIn("u.id", uint64(1), uint64(2), uint64(3)).
					WhereDateRange("u.created_at", "2024-01-01", "2024-01-31").
					WhereRaw("YEAR(u.created_at) = ?", 2024)
			},
			wantQuery: "SELECT u.id FROM users u WHERE u.id IN (?, ?, ?) AND DATE(u.created_at) >= ? AND DATE(u.created_at) <= ? AND (YEAR(u.created_at) = ?) ORDER BY created_at DESC",
			wantArgs:  []any{uint64(1), uint64(2), uint64(3), "2024-01-01", "2024-01-31", 2024},
		},
		{
			name: "empty in matches nothing",
			build: func() *qb.Builder {
				return qb.New("u.id", "users u").WhereIn("u.id")
			},
			wantQuery: "SELECT u.id FROM users u WHERE 1 = 0 ORDER BY created_at DESC",
			wantArgs:  []any{},
		},
		{
			name: "like wildcards in the term are escaped",
			build: func() *qb.Builder {
				return qb.New("n.id", "news n").WhereLike("100%_", "n.title")
			},
			wantQuery: "SELECT n.id FROM news n WHERE (n.title LIKE ?) ORDER BY created_at DESC",
			wantArgs:  []any{`%100\%\_%`},
		},
		{
			name: "unsupported operator degrades to equality",
			build: func() *qb.Builder {
				return qb.New("d.id", "donations d").WhereOp("d.amount", "OR 1=1 --", 10)
			},
			wantQuery: "SELECT d.id FROM donations d WHERE d.amount = ? ORDER BY created_at DESC",
			wantArgs:  []any{10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := tt.build().Build()
			assert.Equal(t, tt.wantQuery, query)
			if len(tt.wantArgs) == 0 {
				assert.Empty(t, args)
				return
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuilder_CountSharesPredicates(t *testing.T) {
	b := qb.New("c.id, c.subject", "complaints c").
		Where("c.status", "resolved").
		Paginate(qb.NewPage(2, 10))

	query, args := b.Count()
	assert.Equal(t, "SELECT COUNT(*) FROM complaints c WHERE c.status = ?", query)
	assert.Equal(t, []any{"resolved"}, args)
}

func TestBuilder_CountGrouped(t *testing.T) {
	b := qb.New("c.complaint_type, COUNT(*) AS total", "complaints c").
		Where("c.status", "resolved").
		GroupBy("c.complaint_type")

	query, args := b.Count()
	assert.Equal(t, "SELECT COUNT(*) FROM (SELECT 1 FROM complaints c WHERE c.status = ? GROUP BY c.complaint_type) grouped", query)
	assert.Equal(t, []any{"resolved"}, args)

	list, _ := b.Build()
	assert.Equal(t, "SELECT c.complaint_type, COUNT(*) AS total FROM complaints c WHERE c.status = ? GROUP BY c.complaint_type ORDER BY created_at DESC", list)
}

func TestBuilder_Apply(t *testing.T) {
	b := qb.New("u.id", "users u").
		Sortable(map[string]string{"name": "u.name"}, "u.created_at DESC").
		Apply(model.ListQuery{Page: 2, PerPage: 5, Search: "ram", SortBy: "name", SortDir: "asc", DateFrom: "2024-03-01"}, "u.created_at", "u.name", "u.email")

	query, args := b.Build()
	assert.Equal(t, "SELECT u.id FROM users u WHERE (u.name LIKE ? OR u.email LIKE ?) AND DATE(u.created_at) >= ? ORDER BY u.name ASC LIMIT ? OFFSET ?", query)
	assert.Equal(t, []any{"%ram%", "%ram%", "2024-03-01", 5, 5}, args)
}

func TestNewPage(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		perPage     int
		wantPage    int
		wantPerPage int
	}{
		{"defaults", 0, 0, 1, qb.DefaultPerPage},
		{"negative page", -4, 25, 1, 25},
		{"clamped per page", 2, 1000, 2, qb.MaxPerPage},
		{"as given", 7, 15, 7, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := qb.NewPage(tt.page, tt.perPage)
			assert.Equal(t, tt.wantPage, p.Number)
			assert.Equal(t, tt.wantPerPage, p.PerPage)
		})
	}
}

func TestPageFromValues(t *testing.T) {
	p := qb.PageFromValues(url.Values{"page": {"abc"}, "limit": {"30"}})
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 30, p.PerPage)

	p = qb.PageFromValues(url.Values{"page": {"4"}, "per_page": {"12"}, "limit": {"50"}})
	assert.Equal(t, 4, p.Number)
	assert.Equal(t, 12, p.PerPage)
}

func TestPage_Meta(t *testing.T) {
	assert.Equal(t, model.PaginationMeta{CurrentPage: 1, PerPage: 10, Total: 0, TotalPages: 0}, qb.NewPage(1, 10).Meta(0))
	assert.Equal(t, model.PaginationMeta{CurrentPage: 3, PerPage: 10, Total: 21, TotalPages: 3}, qb.NewPage(3, 10).Meta(21))
	assert.Equal(t, model.PaginationMeta{CurrentPage: 2, PerPage: 10, Total: 20, TotalPages: 2}, qb.NewPage(2, 10).Meta(20))
	assert.Equal(t, model.PaginationMeta{CurrentPage: 3, PerPage: 10, Total: 21, TotalPages: 3}, qb.NewPage(9, 10).Meta(21))
}

// Every requested page, including ones past the end, starts before the last row.
func TestPage_OffsetWithinTotal(t *testing.T) {
	for total := int64(1); total <= 250; total++ {
		for _, perPage := range []int{1, 7, 10, 100} {
			meta := qb.NewPage(1, perPage).Meta(total)
			for page := 1; page <= meta.TotalPages+3; page++ {
				m := qb.NewPage(page, perPage).Meta(total)
				if int64(m.CurrentPage*m.PerPage-m.PerPage) >= total {
					t.Fatalf("page %d per_page %d total %d starts past the end", page, perPage, total)
				}
			}
		}
	}
}

func TestFetch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	sdb := sqlx.NewDb(db, "sqlmock")

	type row struct {
		ID      uint64 `db:"id"`
		Subject string `db:"subject"`
	}

	b := qb.New("c.id, c.subject", "complaints c").
		Where("c.status", "submitted").
		Paginate(qb.NewPage(1, 2))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT c.id, c.subject FROM complaints c WHERE c.status = ? ORDER BY created_at DESC LIMIT ? OFFSET ?")).
		WithArgs("submitted", 2, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "subject"}).AddRow(1, "a").AddRow(2, "b"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM complaints c WHERE c.status = ?")).
		WithArgs("submitted").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	var rows []row
	total, err := qb.Fetch(context.Background(), sdb, &rows, b)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, rows, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetch_PastLastPage(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	sdb := sqlx.NewDb(db, "sqlmock")

	type row struct {
		ID uint64 `db:"id"`
	}

	b := qb.New("c.id", "complaints c").Paginate(qb.NewPage(9, 2))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT c.id FROM complaints c ORDER BY created_at DESC LIMIT ? OFFSET ?")).
		WithArgs(2, 16).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM complaints c")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT c.id FROM complaints c ORDER BY created_at DESC LIMIT ? OFFSET ?")).
		WithArgs(2, 4).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	var rows []row
	total, err := qb.Fetch(context.Background(), sdb, &rows, b)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, rows, 1)
	assert.Equal(t, 3, qb.NewPage(9, 2).Meta(total).CurrentPage)
	assert.NoError(t, mock.ExpectationsWereMet())
}
