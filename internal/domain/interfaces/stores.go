package interfaces

import domaintypes "mixget/internal/domain/types"

// ModelWriter persists downloaded model files.
type ModelWriter interface {
	WriteModel(dir, name string, data []byte) (domaintypes.DownloadedFile, error)
}
