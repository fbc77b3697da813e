// Package board holds the list-mutation core: the entries and templates a
// board is made of, and the engine that computes the next board state from a
// completed drag gesture. Nothing in this package performs I/O.
package board

// CatalogContainerID is the reserved container id of the template catalog.
// It never names a list.
const CatalogContainerID = "CATALOG"

// Entry is an item placed inside a list.
type Entry struct {
	ID      string
	Content string
}

// Template is a catalog item that can be copied into lists.
type Template struct {
	ID      string
	Content string
}

// IDGenerator produces identifiers unique for the process lifetime.
type IDGenerator interface {
	NewID() string
}

// IDFunc adapts a plain function to IDGenerator.
type IDFunc func() string

func (f IDFunc) NewID() string { return f() }

// Catalog is the immutable, ordered set of templates.
type Catalog struct {
	templates []Template
}

// NewCatalog copies templates into a new catalog.
func NewCatalog(templates ...Template) Catalog {
	return Catalog{templates: append([]Template(nil), templates...)}
}

// Len returns the number of templates.
func (c Catalog) Len() int { return len(c.templates) }

// At returns the template at index i.
func (c Catalog) At(i int) (Template, bool) {
	if i < 0 || i >= len(c.templates) {
		return Template{}, false
	}
	return c.templates[i], true
}

// Templates returns a copy of the catalog contents.
func (c Catalog) Templates() []Template {
	return append([]Template(nil), c.templates...)
}

// Has reports whether any template carries id.
func (c Catalog) Has(id string) bool {
	for _, t := range c.templates {
		if t.ID == id {
			return true
		}
	}
	return false
}
