// Package storage implements the file store on the local filesystem. Uploads
// land under a single root and are served back by relative path; the rest of
// the system only ever sees the path string.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalStore writes uploads under root with generated, collision-free names.
type LocalStore struct {
	root string
	now  func() time.Time
}

// NewLocalStore creates the uploads root if needed.
func NewLocalStore(root string) (*LocalStore, error) {
	if root == "" {
		return nil, fmt.Errorf("storage: uploads root must not be empty")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create uploads root: %w", err)
	}
	return &LocalStore{root: root, now: time.Now}, nil
}

// Save stores content under <field>-<unix_millis>-<random><ext> and returns
// that filename as the relative path. The extension is taken from the original
// filename; callers validate it before reaching this point.
func (s *LocalStore) Save(ctx context.Context, field, filename string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	name := fmt.Sprintf("%s-%d-%s%s", field, s.now().UnixMilli(), shortRandom(), ext)

	dst, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return "", fmt.Errorf("storage: create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("storage: write file: %w", err)
	}
	return name, nil
}

// Remove deletes a stored file. A missing file is not an error; the record
// pointing at it is already gone or never existed.
func (s *LocalStore) Remove(_ context.Context, path string) error {
	// Reject anything trying to climb out of the uploads root.
	if path != filepath.Base(path) {
		return fmt.Errorf("storage: invalid path %q", path)
	}
	err := os.Remove(filepath.Join(s.root, path))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: remove file: %w", err)
	}
	return nil
}

func shortRandom() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}
