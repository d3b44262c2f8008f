// Package querybuilder assembles filtered, sorted, paginated SELECT statements.
//
// Column names and table expressions always come from code. Request input only
// ever reaches the statement as a bound argument or as a key looked up in a
// sort allow-list.
package querybuilder

import (
	"strings"

	"github.com/muhammadheryan/bhrc-portal/model"
)

type Builder struct {
	columns     string
	from        string
	where       []string
	args        []any
	groupBy     string
	sortable    map[string]string
	defaultSort string
	orderBy     string
	page        *Page
}

// New starts a statement "SELECT <columns> FROM <from>".
func New(columns, from string) *Builder {
	return &Builder{
		columns:     columns,
		from:        from,
		defaultSort: "created_at DESC",
	}
}

// Sortable sets the request-field -> column allow-list and the fallback ORDER BY expression.
func (b *Builder) Sortable(allowed map[string]string, defaultSort string) *Builder {
	b.sortable = allowed
	if defaultSort != "" {
		b.defaultSort = defaultSort
	}
	return b
}

func (b *Builder) Where(column string, value any) *Builder {
	b.where = append(b.where, column+" = ?")
	b.args = append(b.args, value)
	return b
}

// WhereOp adds "column <op> ?" for the comparison operators.
func (b *Builder) WhereOp(column, op string, value any) *Builder {
	switch op {
	case "=", "!=", "<", "<=", ">", ">=":
	default:
		op = "="
	}
	b.where = append(b.where, column+" "+op+" ?")
	b.args = append(b.args, value)
	return b
}

// WhereLike matches term as a substring of any of columns.
func (b *Builder) WhereLike(term string, columns ...string) *Builder {
	if term == "" || len(columns) == 0 {
		return b
	}
	pattern := "%" + escapeLike(term) + "%"
	parts := make([]string, 0, len(columns))
	for _, c := range columns {
		parts = append(parts, c+" LIKE ?")
		b.args = append(b.args, pattern)
	}
	b.where = append(b.where, "("+strings.Join(parts, " OR ")+")")
	return b
}

func (b *Builder) WhereIn(column string, values ...any) *Builder {
	if len(values) == 0 {
		b.where = append(b.where, "1 = 0")
		return b
	}
	b.where = append(b.where, column+" IN ("+placeholders(len(values))+")")
	b.args = append(b.args, values...)
	return b
}

// WhereDateRange bounds DATE(column) by from and to (YYYY-MM-DD); empty bounds are skipped.
func (b *Builder) WhereDateRange(column, from, to string) *Builder {
	if from != "" {
		b.where = append(b.where, "DATE("+column+") >= ?")
		b.args = append(b.args, from)
	}
	if to != "" {
		b.where = append(b.where, "DATE("+column+") <= ?")
		b.args = append(b.args, to)
	}
	return b
}

// WhereRaw adds a developer-written predicate such as "YEAR(c.created_at) = ?".
func (b *Builder) WhereRaw(expr string, args ...any) *Builder {
	b.where = append(b.where, "("+expr+")")
	b.args = append(b.args, args...)
	return b
}

func (b *Builder) GroupBy(expr string) *Builder {
	b.groupBy = expr
	return b
}

// OrderBy resolves field through the allow-list; unknown fields fall back to the default sort.
func (b *Builder) OrderBy(field, direction string) *Builder {
	column, ok := b.sortable[field]
	if !ok || field == "" {
		b.orderBy = ""
		return b
	}
	dir := "DESC"
	if strings.EqualFold(direction, "asc") {
		dir = "ASC"
	}
	b.orderBy = column + " " + dir
	return b
}

func (b *Builder) Paginate(p Page) *Builder {
	b.page = &p
	return b
}

func (b *Builder) whereClause() string {
	if len(b.where) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.where, " AND ")
}

// Build returns the SELECT statement and its bound arguments.
func (b *Builder) Build() (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(b.columns)
	sb.WriteString(" FROM ")
	sb.WriteString(b.from)
	sb.WriteString(b.whereClause())
	if b.groupBy != "" {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(b.groupBy)
	}
	sb.WriteString(" ORDER BY ")
	if b.orderBy != "" {
		sb.WriteString(b.orderBy)
	} else {
		sb.WriteString(b.defaultSort)
	}

	args := append([]any(nil), b.args...)
	if b.page != nil {
		sb.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, b.page.PerPage, b.page.Offset())
	}
	return sb.String(), args
}

// Count returns the COUNT(*) statement sharing the same predicates. A grouped
// query counts its groups, not the underlying rows.
func (b *Builder) Count() (string, []any) {
	args := append([]any(nil), b.args...)
	if b.groupBy != "" {
		return "SELECT COUNT(*) FROM (SELECT 1 FROM " + b.from + b.whereClause() + " GROUP BY " + b.groupBy + ") grouped", args
	}
	return "SELECT COUNT(*) FROM " + b.from + b.whereClause(), args
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// Filter wires the shared list parameters except the page: search across
// searchColumns, the date range on dateColumn and the requested sort.
func (b *Builder) Filter(q model.ListQuery, dateColumn string, searchColumns ...string) *Builder {
	b.WhereLike(q.Search, searchColumns...)
	if dateColumn != "" {
		b.WhereDateRange(dateColumn, q.DateFrom, q.DateTo)
	}
	return b.OrderBy(q.SortBy, q.SortDir)
}

// Apply is Filter plus the requested page.
func (b *Builder) Apply(q model.ListQuery, dateColumn string, searchColumns ...string) *Builder {
	return b.Filter(q, dateColumn, searchColumns...).Paginate(NewPage(q.Page, q.PerPage))
}

// PageOf returns the normalized page of q, matching what Apply used.
func PageOf(q model.ListQuery) Page {
	return NewPage(q.Page, q.PerPage)
}
