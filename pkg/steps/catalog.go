package steps

import (
	"sort"

	"github.com/aretw0/stepmention/pkg/domain"
)

// Catalog is an immutable set of StepMeta keyed by step name.
// The zero value and a nil *Catalog are empty.
type Catalog struct {
	byName map[string]domain.StepMeta
	order  []string
}

// NewCatalog builds a catalog. Later entries replace earlier ones with the
// same name. Entries are ordered by traversal index, unnumbered ones last by
// name.
func NewCatalog(metas ...domain.StepMeta) *Catalog {
	c := &Catalog{byName: make(map[string]domain.StepMeta, len(metas))}
	for _, m := range metas {
		if _, ok := c.byName[m.Name]; !ok {
			c.order = append(c.order, m.Name)
		}
		c.byName[m.Name] = m
	}
	sort.SliceStable(c.order, func(i, j int) bool {
		a, b := c.byName[c.order[i]], c.byName[c.order[j]]
		switch {
		case a.HasIndex() && b.HasIndex():
			return a.IndexInTraversal < b.IndexInTraversal
		case a.HasIndex() != b.HasIndex():
			return a.HasIndex()
		default:
			return a.Name < b.Name
		}
	})
	return c
}

// Lookup returns the metadata of the named step.
func (c *Catalog) Lookup(name string) (domain.StepMeta, bool) {
	if c == nil {
		return domain.StepMeta{}, false
	}
	m, ok := c.byName[name]
	return m, ok
}

// All returns every entry in catalog order.
func (c *Catalog) All() []domain.StepMeta {
	if c == nil {
		return nil
	}
	out := make([]domain.StepMeta, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}
