package interfaces

import (
	"context"

	domaintypes "mixget/internal/domain/types"
)

// AnimationAPI is how we talk to the remote animation service.
type AnimationAPI interface {
	PrimaryCharacter(ctx context.Context) (domaintypes.Character, error)
	SearchProducts(
		ctx context.Context,
		query string,
		page int,
		limit int,
	) (domaintypes.SearchPage, error)
	Product(
		ctx context.Context,
		id domaintypes.AnimationID,
		characterID domaintypes.CharacterID,
	) (domaintypes.AnimationDescriptor, error)

	Export(ctx context.Context, payload domaintypes.ExportPayload) error
	Monitor(ctx context.Context, characterID domaintypes.CharacterID) (domaintypes.MonitorStatus, error)
	Download(ctx context.Context, url string) ([]byte, error)
}
