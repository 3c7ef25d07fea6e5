package interfaces

import (
	"context"

	domaintypes "mixget/internal/domain/types"
)

// CatalogSource resolves the list of animations a run exports.
type CatalogSource interface {
	Load(ctx context.Context) (domaintypes.Catalog, error)
}

// ProgressObserver receives run notifications. Done fires exactly once per run.
type ProgressObserver interface {
	TotalCount(n int)
	TaskCompleted(index int)
	Done()
}
