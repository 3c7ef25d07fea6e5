package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"mixget/internal/domain"
)

// DefaultManifestPath is read when no manifest path is configured.
const DefaultManifestPath = "mixamo_anims.json"

// Manifest reads a local id→description JSON object.
type Manifest struct {
	Path string
}

var _ domain.CatalogSource = Manifest{}

// Load reads the whole manifest, keeping the file's key order.
func (m Manifest) Load(ctx context.Context) (domain.Catalog, error) {
	path := m.Path
	if path == "" {
		path = DefaultManifestPath
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	cat, err := ParseManifest(b)
	if err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return cat, nil
}

// ParseManifest decodes a JSON object of string ids to string descriptions.
func ParseManifest(b []byte) (domain.Catalog, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("manifest must be a JSON object")
	}

	acc := newAccumulator(0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		id := tok.(string)
		var desc string
		if err := dec.Decode(&desc); err != nil {
			return nil, fmt.Errorf("entry %q: %w", id, err)
		}
		acc.add(domain.CatalogEntry{ID: domain.AnimationID(id), Description: desc})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return acc.catalog(), nil
}
