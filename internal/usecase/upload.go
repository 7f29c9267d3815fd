package usecase

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrInvalidUpload        = errors.New("invalid upload")
	ErrStorage              = errors.New("object storage error")
	ErrStorageNotConfigured = errors.New("object storage not configured")
)

// MaxLogoSize bounds uploaded logo files.
const MaxLogoSize = 2 << 20

// Upload is a file received from a multipart form.
type Upload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

var imageExtensions = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/svg+xml": ".svg",
	"image/webp":    ".webp",
	"image/gif":     ".gif",
}

// imageExtension validates the upload as an image and returns the object key
// extension for its content type. The file name is ignored so the key always
// matches the Content-Type it is served with.
func (up Upload) imageExtension() (string, error) {
	if up.Body == nil {
		return "", fmt.Errorf("%w: empty file", ErrInvalidUpload)
	}
	if up.Size > MaxLogoSize {
		return "", fmt.Errorf("%w: file larger than %d bytes", ErrInvalidUpload, MaxLogoSize)
	}
	ct := strings.ToLower(strings.TrimSpace(up.ContentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	ext, ok := imageExtensions[ct]
	if !ok {
		return "", fmt.Errorf("%w: content type %q is not an image", ErrInvalidUpload, up.ContentType)
	}
	return ext, nil
}
