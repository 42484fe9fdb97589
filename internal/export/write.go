package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/ppiankov/cardiorisk/internal/model"
)

// WriteAll renders each format and writes it into dir under its download
// name. Formats are rendered concurrently; the first error cancels the rest.
// It returns the written paths in format order.
func WriteAll(ctx context.Context, dir string, a *model.Assessment, formats []Format, opts Options) ([]string, error) {
	if a == nil {
		return nil, fmt.Errorf("write exports: no assessment")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	paths := make([]string, len(formats))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range formats {
		g.Go(func() error {
			data, err := Render(ctx, f, a, opts)
			if err != nil {
				return fmt.Errorf("render %s: %w", f, err)
			}
			path := filepath.Join(dir, FileName(f, a.CreatedAt))
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// WriteFile renders one format to an explicit path.
func WriteFile(ctx context.Context, path string, f Format, a *model.Assessment, opts Options) error {
	data, err := Render(ctx, f, a, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
