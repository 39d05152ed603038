// Package media validates and opens the local video or image the user picked
// before upload.
package media

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/ARPaule28/fynd-app/internal/client/models"
)

var (
	// ErrNoMediaSelected means upload was attempted before any file was
	// chosen. No network call is made.
	ErrNoMediaSelected = errors.New("no media selected")

	// ErrPermissionDenied means the device or OS refused access to the
	// chosen media. The operation is aborted and reported in place.
	ErrPermissionDenied = errors.New("permission denied")
)

// ResolveFile validates a user-supplied path into a MediaRef. An empty path
// means nothing was chosen; an unreadable or missing file never yields a
// usable reference.
func ResolveFile(path string, kind models.MediaKind) (models.MediaRef, error) {
	if path == "" {
		return models.MediaRef{}, ErrNoMediaSelected
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return models.MediaRef{}, ErrPermissionDenied
		}
		return models.MediaRef{}, ErrNoMediaSelected
	}
	if info.IsDir() {
		return models.MediaRef{}, ErrNoMediaSelected
	}

	return models.MediaRef{Path: path, Kind: kind}, nil
}

// Open opens the referenced file for upload.
func Open(ref models.MediaRef) (io.ReadCloser, error) {
	if ref.Path == "" {
		return nil, ErrNoMediaSelected
	}
	f, err := os.Open(ref.Path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, ErrPermissionDenied
		}
		return nil, err
	}
	return f, nil
}
