package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mixget/internal/domain"
)

const (
	dirMode  = 0o755
	fileMode = 0o644
)

// ModelWriter writes model files named <name>.<Ext>.
type ModelWriter struct {
	Ext string
}

// NewModelWriter returns a writer for the service's model extension.
func NewModelWriter() *ModelWriter { return &ModelWriter{Ext: domain.ModelExtension} }

var _ domain.ModelWriter = (*ModelWriter)(nil)

// WriteModel stores data as <dir>/<name>.<ext>, or <name>.<ext> in the
// working directory when dir is empty.
func (w *ModelWriter) WriteModel(dir, name string, data []byte) (domain.DownloadedFile, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return domain.DownloadedFile{}, fmt.Errorf("create output directory: %w", err)
		}
	}
	path := filepath.Join(dir, FileName(name, w.Ext))
	if err := writeFile(path, data, fileMode); err != nil {
		return domain.DownloadedFile{}, fmt.Errorf("write %s: %w", path, err)
	}
	return domain.DownloadedFile{Path: path, Size: int64(len(data))}, nil
}

// FileName builds the on-disk name for a display name. Path separators are
// replaced so a name cannot leave the output directory.
func FileName(name, ext string) string {
	name = strings.NewReplacer("/", "_", `\`, "_").Replace(name)
	if name == "" || name == "." || name == ".." {
		name = "_"
	}
	if ext == "" {
		return name
	}
	return name + "." + ext
}
