package querybuilder

import (
	"context"
	"reflect"

	"github.com/jmoiron/sqlx"
)

// Fetch runs the page query into dest and the matching COUNT(*) query, returning the total.
// A page past the end is re-read as the last page, matching Page.Meta.
func Fetch(ctx context.Context, db sqlx.QueryerContext, dest any, b *Builder) (int64, error) {
	query, args := b.Build()
	if err := sqlx.SelectContext(ctx, db, dest, query, args...); err != nil {
		return 0, err
	}

	countQuery, countArgs := b.Count()
	var total int64
	if err := sqlx.GetContext(ctx, db, &total, countQuery, countArgs...); err != nil {
		return 0, err
	}

	if b.page != nil {
		if clamped := b.page.Clamp(total); clamped != *b.page {
			b.page = &clamped
			if v := reflect.ValueOf(dest); v.Kind() == reflect.Pointer && v.Elem().Kind() == reflect.Slice {
				v.Elem().SetLen(0)
			}
			query, args = b.Build()
			if err := sqlx.SelectContext(ctx, db, dest, query, args...); err != nil {
				return 0, err
			}
		}
	}
	return total, nil
}
