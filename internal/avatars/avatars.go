// Package avatars stores account avatar images as files under a managed
// upload directory, addressed by their public /uploads path.
package avatars

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	// MaxFileSize is the upload cap for a single avatar image.
	MaxFileSize = 5 * 1024 * 1024

	publicPrefix = "/uploads/"
)

var (
	ErrNotImage = errors.New("only images are allowed")
	ErrTooLarge = errors.New("file exceeds the 5MB limit")
)

// Store writes avatar bytes under dir and hands back public references.
type Store struct {
	dir string
}

// New ensures the upload directory exists.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save validates and persists one uploaded image, returning its public
// reference. File names are generated, so concurrent uploads cannot
// collide.
func (s *Store) Save(file *multipart.FileHeader) (string, error) {
	if file.Size > MaxFileSize {
		return "", ErrTooLarge
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return "", ErrNotImage
	}

	name := "avatar-" + uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create avatar file: %w", err)
	}
	defer dst.Close()

	if _, err := dst.ReadFrom(src); err != nil {
		return "", fmt.Errorf("failed to write avatar file: %w", err)
	}

	return publicPrefix + name, nil
}

// Remove deletes the file behind a stored reference. It is a no-op for
// references outside the managed directory and idempotent when the file
// is already gone.
func (s *Store) Remove(ref string) error {
	if !IsStored(ref) {
		return nil
	}

	name := filepath.Base(strings.TrimPrefix(ref, publicPrefix))
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove avatar file: %w", err)
	}

	return nil
}

// IsStored reports whether a reference points to a server-local file
// rather than the default sentinel.
func IsStored(ref string) bool {
	return strings.HasPrefix(ref, publicPrefix)
}
