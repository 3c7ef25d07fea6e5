package catalog

import (
	"context"
	"fmt"

	"mixget/internal/domain"
)

// DefaultPageSize is the page size the service's own web client uses.
const DefaultPageSize = 96

// Search accumulates every page of a remote product search.
type Search struct {
	API      domain.AnimationAPI
	Query    string
	PageSize int
}

var _ domain.CatalogSource = Search{}

// Load fetches page 1 to learn the page count, then the remaining pages.
func (s Search) Load(ctx context.Context) (domain.Catalog, error) {
	size := s.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	first, err := s.API.SearchProducts(ctx, s.Query, 1, size)
	if err != nil {
		return nil, fmt.Errorf("search %q page 1: %w", s.Query, err)
	}

	acc := newAccumulator(first.Pagination.NumResults)
	for _, e := range first.Results {
		acc.add(e)
	}
	for page := 2; page <= first.Pagination.NumPages; page++ {
		res, err := s.API.SearchProducts(ctx, s.Query, page, size)
		if err != nil {
			return nil, fmt.Errorf("search %q page %d: %w", s.Query, page, err)
		}
		for _, e := range res.Results {
			acc.add(e)
		}
	}
	return acc.catalog(), nil
}
