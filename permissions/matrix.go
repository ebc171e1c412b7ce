// Package permissions edits the per-page grants of an account.
package permissions

import (
	"github.com/cccteam/consolesession/pages"
	"github.com/cccteam/consolesession/sessioninfo"
	"github.com/go-playground/errors/v5"
)

// Flag names one boolean of a permission row.
type Flag string

// Row flags, named as in the API payload.
const (
	CanView   Flag = "can_view"
	CanEdit   Flag = "can_edit"
	CanCreate Flag = "can_create"
	CanDelete Flag = "can_delete"
)

// ParseFlag converts s into a Flag
func ParseFlag(s string) (Flag, error) {
	switch f := Flag(s); f {
	case CanView, CanEdit, CanCreate, CanDelete:
		return f, nil
	}

	return "", errors.Newf("unknown permission flag %q", s)
}

// Matrix holds one row per catalog page, in catalog order. Matrix values are
// never modified in place.
type Matrix struct {
	rows []sessioninfo.PagePermission
}

// Initialize returns a matrix granting nothing.
func Initialize() Matrix {
	names := pages.Names()
	rows := make([]sessioninfo.PagePermission, len(names))
	for i, n := range names {
		rows[i] = sessioninfo.PagePermission{Page: n}
	}

	return Matrix{rows: rows}
}

// Normalize lays rows out over the catalog. Pages without a row grant
// nothing; rows for pages outside the catalog are dropped. A row without
// view grants nothing else either.
func Normalize(rows []sessioninfo.PagePermission) Matrix {
	byPage := make(map[string]sessioninfo.PagePermission, len(rows))
	for _, r := range rows {
		byPage[r.Page] = r
	}

	m := Initialize()
	for i, r := range m.rows {
		if got, ok := byPage[r.Page]; ok {
			m.rows[i] = derive(got)
		}
	}

	return m
}

// Toggle returns a copy of m with flag of page set to value. Clearing view
// clears every other flag; setting any other flag sets view. An unknown page
// leaves the matrix unchanged.
func (m Matrix) Toggle(page string, flag Flag, value bool) Matrix {
	rows := make([]sessioninfo.PagePermission, len(m.rows))
	copy(rows, m.rows)

	for i := range rows {
		if rows[i].Page != page {
			continue
		}

		r := &rows[i]
		switch flag {
		case CanView:
			r.CanView = value
		case CanEdit:
			r.CanEdit = value
		case CanCreate:
			r.CanCreate = value
		case CanDelete:
			r.CanDelete = value
		}
		if value && flag != CanView {
			r.CanView = true
		}
		*r = derive(*r)
	}

	return Matrix{rows: rows}
}

// Row returns the row of page.
func (m Matrix) Row(page string) (sessioninfo.PagePermission, bool) {
	for _, r := range m.rows {
		if r.Page == page {
			return r, true
		}
	}

	return sessioninfo.PagePermission{}, false
}

// Permissions returns every row, for a full-replace write.
func (m Matrix) Permissions() []sessioninfo.PagePermission {
	rows := make([]sessioninfo.PagePermission, len(m.rows))
	copy(rows, m.rows)

	return rows
}

// derive enforces that a row without view grants nothing.
func derive(r sessioninfo.PagePermission) sessioninfo.PagePermission {
	if !r.CanView {
		r.CanEdit, r.CanCreate, r.CanDelete = false, false, false
	}

	return r
}
