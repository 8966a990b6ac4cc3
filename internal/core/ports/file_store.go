package ports

import (
	"context"
	"io"
)

// FileStore writes validated uploads and returns the relative path under which
// the static host serves them. Past this call the core only handles the path
// string, never the bytes.
type FileStore interface {
	// Save stores the content under a generated name of the form
	// <field>-<timestamp>-<random><ext> and returns its relative path.
	Save(ctx context.Context, field, filename string, content io.Reader) (string, error)
	// Remove deletes a previously saved file; missing files are not an error.
	Remove(ctx context.Context, path string) error
}
