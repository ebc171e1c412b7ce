package permissions

import (
	"strings"

	"github.com/cccteam/consolesession/sessioninfo"
)

const (
	summaryAdmin    = "ADMIN"
	summaryNoAccess = "No Access"
)

// Summary renders the badge text for the grants of user on one page.
func Summary(user *sessioninfo.User, row *sessioninfo.PagePermission) string {
	if user != nil && user.IsSuperuser {
		return summaryAdmin
	}
	if row == nil || row.None() {
		return summaryNoAccess
	}

	var parts []string
	if row.CanView {
		parts = append(parts, "V")
	}
	if row.CanEdit {
		parts = append(parts, "E")
	}
	if row.CanCreate {
		parts = append(parts, "C")
	}
	if row.CanDelete {
		parts = append(parts, "D")
	}

	return strings.Join(parts, "/")
}

// Badges returns the Summary of every catalog page for user, keyed by page name.
func Badges(user *sessioninfo.User, rows []sessioninfo.PagePermission) map[string]string {
	m := Normalize(rows)

	badges := make(map[string]string, len(m.rows))
	for i := range m.rows {
		badges[m.rows[i].Page] = Summary(user, &m.rows[i])
	}

	return badges
}
