package querybuilder

import (
	"net/url"
	"strconv"

	"github.com/muhammadheryan/bhrc-portal/model"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Page is a normalized page request. Build it with NewPage so the bounds hold.
type Page struct {
	Number  int
	PerPage int
}

// NewPage coerces page < 1 to 1, perPage < 1 to the default and clamps perPage to MaxPerPage.
func NewPage(page, perPage int) Page {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return Page{Number: page, PerPage: perPage}
}

// PageFromValues reads page and per_page (or limit) from query values; anything non-numeric falls back to defaults.
func PageFromValues(q url.Values) Page {
	page, _ := strconv.Atoi(q.Get("page"))
	perPageRaw := q.Get("per_page")
	if perPageRaw == "" {
		perPageRaw = q.Get("limit")
	}
	perPage, _ := strconv.Atoi(perPageRaw)
	return NewPage(page, perPage)
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

func totalPages(total int64, perPage int) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// Clamp pulls a page past the end back to the last page holding rows.
func (p Page) Clamp(total int64) Page {
	if last := totalPages(total, p.PerPage); last > 0 && p.Number > last {
		p.Number = last
	}
	return p
}

// Meta describes p against total; a page past the end reports the last page.
func (p Page) Meta(total int64) model.PaginationMeta {
	p = p.Clamp(total)
	return model.PaginationMeta{
		CurrentPage: p.Number,
		PerPage:     p.PerPage,
		Total:       total,
		TotalPages:  totalPages(total, p.PerPage),
	}
}
