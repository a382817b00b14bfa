package assets

import (
	"context"
	"io"
	"mime"
	"os"
	"path/filepath"
)

// Dir serves assets from a local directory.
type Dir struct {
	root string
}

// NewDir creates a directory-backed store rooted at root.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// Open implements Store.
func (d *Dir) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	clean, ok := sanitize(name)
	if !ok {
		return nil, "", ErrNotFound
	}

	full := filepath.Join(d.root, filepath.FromSlash(clean))
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return nil, "", ErrNotFound
	}

	f, err := os.Open(full)
	if err != nil {
		return nil, "", ErrNotFound
	}

	return f, mime.TypeByExtension(filepath.Ext(clean)), nil
}
