// Package pages holds the compiled-in catalog of console pages. The catalog is
// the universal set every permission matrix is rendered against.
package pages

import (
	"strconv"
	"strings"
)

// Page is one entry of the catalog.
type Page struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

// Slug returns the final segment of the page path
func (p Page) Slug() string {
	return p.Path[strings.LastIndex(p.Path, "/")+1:]
}

var catalog = []Page{
	{ID: 1, Name: "Products List", Path: "/pages/products"},
	{ID: 2, Name: "Marketing List", Path: "/pages/marketing"},
	{ID: 3, Name: "Order List", Path: "/pages/orders"},
	{ID: 4, Name: "Media Plans", Path: "/pages/media-plans"},
	{ID: 5, Name: "Offer Pricing SKUs", Path: "/pages/pricing-skus"},
	{ID: 6, Name: "Clients", Path: "/pages/clients"},
	{ID: 7, Name: "Suppliers", Path: "/pages/suppliers"},
	{ID: 8, Name: "Customer Support", Path: "/pages/support"},
	{ID: 9, Name: "Sales Reports", Path: "/pages/sales-reports"},
	{ID: 10, Name: "Finance & Accounting", Path: "/pages/finance"},
}

// All returns a copy of the catalog in display order.
func All() []Page {
	c := make([]Page, len(catalog))
	copy(c, catalog)

	return c
}

// Names returns the page names in display order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, p := range catalog {
		names = append(names, p.Name)
	}

	return names
}

// ByName finds a page by its display name.
func ByName(name string) (Page, bool) {
	for _, p := range catalog {
		if p.Name == name {
			return p, true
		}
	}

	return Page{}, false
}

// Lookup resolves a route parameter to a page. The parameter may be the
// page id in its canonical decimal form or the final segment of the page path.
func Lookup(pageID string) (Page, bool) {
	for _, p := range catalog {
		if strconv.Itoa(p.ID) == pageID || p.Slug() == pageID {
			return p, true
		}
	}

	return Page{}, false
}

// Filter returns the pages for which keep returns true, in display order.
func Filter(keep func(Page) bool) []Page {
	list := make([]Page, 0, len(catalog))
	for _, p := range catalog {
		if keep(p) {
			list = append(list, p)
		}
	}

	return list
}
