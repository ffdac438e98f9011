// Package media stores uploaded files in an S3-compatible object store and
// hands back the public URLs persisted alongside the owning entities.
package media

import (
	"context"
	"io"
)

// Store abstracts the media hosting service. Implementations must be safe
// for concurrent use.
type Store interface {
	// Upload writes the object under key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	// Delete removes the object under key. Deleting a missing object is not
	// an error.
	Delete(ctx context.Context, key string) error
	// ObjectKey maps a public URL previously returned by Upload back to its
	// object key. The second return value is false for foreign URLs.
	ObjectKey(url string) (string, bool)
}
