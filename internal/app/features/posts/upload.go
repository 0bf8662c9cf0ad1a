// internal/app/features/posts/upload.go
package posts

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxUploadBytes caps the multipart form size for authoring requests.
const maxUploadBytes = 10 << 20

var imageExtensions = map[string]bool{
	".gif":  true,
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".webp": true,
}

var errNotAnImage = errors.New("unsupported image type")

// saveImage stores an uploaded image under UploadDir and returns the
// path relative to it, e.g. "2026/08/3f2a....png". It returns ("", nil)
// when the form carries no image.
func (h *Handler) saveImage(r *http.Request) (string, error) {
	if h.UploadDir == "" {
		return "", nil
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		// A url-encoded submission has no file part at all.
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !imageExtensions[ext] {
		return "", errNotAnImage
	}

	now := time.Now().UTC()
	relDir := filepath.Join(now.Format("2006"), now.Format("01"))
	if err := os.MkdirAll(filepath.Join(h.UploadDir, relDir), 0o755); err != nil {
		return "", err
	}

	relPath := filepath.Join(relDir, uuid.NewString()+ext)
	dst, err := os.Create(filepath.Join(h.UploadDir, relPath))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}

	return filepath.ToSlash(relPath), nil
}
