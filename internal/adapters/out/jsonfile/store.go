// Package jsonfile keeps the snapshot in a single indented JSON document
// of the form {"products": [...], "orders": [...]}.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"quickcart/internal/core/ports"
)

const DefaultPath = "quickcart_data.json"

type Store struct {
	path string
}

var _ ports.SnapshotStore = (*Store)(nil)

func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Save replaces the file. The document is written to a temporary file in the
// same directory first and renamed over the target.
func (s *Store) Save(ctx context.Context, snapshot ports.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(fromSnapshot(snapshot), "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write snapshot file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot file: %w", err)
	}

	return os.Rename(tmp.Name(), s.path)
}

// LoadProducts returns nothing when the file does not exist.
func (s *Store) LoadProducts(ctx context.Context) ([]ports.ProductSeed, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode snapshot file: %w", err)
	}

	seeds := make([]ports.ProductSeed, 0, len(doc.Products))
	for _, dto := range doc.Products {
		seed, err := dto.toSeed()
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, seed)
	}
	return seeds, nil
}
