package catalog

import "mixget/internal/domain"

// accumulator builds a Catalog with unique IDs in first-seen order.
type accumulator struct {
	entries domain.Catalog
	index   map[domain.AnimationID]int
}

func newAccumulator(capacity int) *accumulator {
	return &accumulator{
		entries: make(domain.Catalog, 0, capacity),
		index:   make(map[domain.AnimationID]int, capacity),
	}
}

func (a *accumulator) add(e domain.CatalogEntry) {
	if i, ok := a.index[e.ID]; ok {
		a.entries[i].Description = e.Description
		return
	}
	a.index[e.ID] = len(a.entries)
	a.entries = append(a.entries, e)
}

func (a *accumulator) catalog() domain.Catalog { return a.entries }
