package interfaces

import (
	"context"
	"io"
)

// IObjectStorage stores binary objects (logos, exported PDFs) and returns
// their public URL.
type IObjectStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}
