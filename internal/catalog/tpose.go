package catalog

import (
	"context"

	"mixget/internal/domain"
)

// TPose is the single-entry catalog for a character's T-pose mesh. The
// entry's ID is the character's ID and its description the character's name.
type TPose struct {
	Character domain.Character
}

var _ domain.CatalogSource = TPose{}

// Load returns the synthetic entry.
func (t TPose) Load(context.Context) (domain.Catalog, error) {
	return domain.Catalog{{
		ID:          domain.AnimationID(t.Character.ID),
		Description: t.Character.Name,
	}}, nil
}
