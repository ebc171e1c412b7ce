package consolesession

import (
	"github.com/cccteam/consolesession/pages"
	"github.com/cccteam/consolesession/sessioninfo"
)

// HasPermission reports whether the current session grants p on page.
// Superusers are granted everything; a page without a row grants nothing.
func (m *Manager) HasPermission(page string, p sessioninfo.Permission) bool {
	return m.Session().HasPermission(page, p)
}

// AccessiblePages returns the catalog pages the session may view, in
// catalog order.
func (m *Manager) AccessiblePages() []pages.Page {
	s := m.Session()

	return pages.Filter(func(p pages.Page) bool {
		return s.HasPermission(p.Name, sessioninfo.View)
	})
}
