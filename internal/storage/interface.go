package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where uploaded truck images and documents live.
// The local backend keeps files on disk and serves them via the API; a
// cloud backend would return bucket URLs instead.
type FileStorage interface {
	// Save persists the file under key and returns its public URL.
	Save(ctx context.Context, key string, contentType string, reader io.Reader) (string, error)

	// Open returns a reader for the stored file.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists reports whether the file exists and its size.
	Exists(ctx context.Context, key string) (bool, int64, error)

	// Delete removes the file. Deleting a missing file is not an error.
	Delete(ctx context.Context, key string) error
}
