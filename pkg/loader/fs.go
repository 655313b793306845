package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FSLoader reads assets from an fs.FS, which covers local directories,
// embed.FS, and fstest.MapFS alike.
type FSLoader struct {
	fsys fs.FS
}

// NewFS creates a loader over the given filesystem.
func NewFS(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// NewDir creates a loader over a local directory path.
func NewDir(dir string) *FSLoader {
	return &FSLoader{fsys: os.DirFS(dir)}
}

// Fetch reads the file at path.
func (l *FSLoader) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: reading %q: %v", ErrFetchFailed, path, err)
	}
	return data, nil
}
