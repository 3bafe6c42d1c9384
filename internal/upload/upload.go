// Package upload stores multipart file uploads on disk and validates
// them against per-route profiles.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var (
	// ErrInvalidType is returned when a file's extension or declared
	// MIME type is not on the profile's allow-list.
	ErrInvalidType = errors.New("invalid file type")
	// ErrFileTooLarge is returned when a file exceeds the profile's
	// per-file size limit.
	ErrFileTooLarge = errors.New("file too large")
	// ErrTooManyFiles is returned when a request carries more files
	// than the profile allows.
	ErrTooManyFiles = errors.New("too many files")
)

// Profile describes what a route accepts: allowed type tokens (matched
// against both the file extension and the declared MIME type), a
// per-file size limit, and a file-count limit.
type Profile struct {
	Types    []string
	MaxSize  int64
	MaxFiles int
}

// Images accepts image uploads only, 5MB per file, up to 10 files.
var Images = Profile{
	Types:    []string{"jpeg", "jpg", "png", "webp", "gif", "avif"},
	MaxSize:  5 * 1024 * 1024,
	MaxFiles: 10,
}

// Media accepts images and videos, 50MB per file.
var Media = Profile{
	Types:    []string{"jpeg", "jpg", "png", "webp", "gif", "avif", "mp4", "mov", "avi"},
	MaxSize:  50 * 1024 * 1024,
	MaxFiles: 10,
}

var whitespace = regexp.MustCompile(`\s+`)

// Gateway writes accepted uploads into a directory, creating it on
// demand. Files are written synchronously; a file persisted before a
// later validation failure downstream is not cleaned up.
type Gateway struct {
	dir string
}

// NewGateway creates a gateway rooted at dir.
func NewGateway(dir string) *Gateway {
	return &Gateway{dir: dir}
}

// Dir returns the storage directory.
func (g *Gateway) Dir() string {
	return g.dir
}

// Save validates a single file against the profile and writes it to
// disk. It returns the stored filename.
func (g *Gateway) Save(fh *multipart.FileHeader, p Profile) (string, error) {
	if err := check(fh, p); err != nil {
		return "", err
	}

	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload directory %s: %w", g.dir, err)
	}

	name := Filename(fh.Filename)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("opening upload %s: %w", fh.Filename, err)
	}
	defer func() {
		_ = src.Close()
	}()

	dst, err := os.Create(filepath.Join(g.dir, name))
	if err != nil {
		return "", fmt.Errorf("creating upload file %s: %w", name, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return "", fmt.Errorf("writing upload %s: %w", name, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("closing upload %s: %w", name, err)
	}

	return name, nil
}

// SaveAll validates and stores a batch of files, enforcing the
// profile's file-count limit. It returns the stored filenames in input
// order. Files already written are kept if a later file is rejected.
func (g *Gateway) SaveAll(fhs []*multipart.FileHeader, p Profile) ([]string, error) {
	if p.MaxFiles > 0 && len(fhs) > p.MaxFiles {
		return nil, fmt.Errorf("%w: at most %d files allowed", ErrTooManyFiles, p.MaxFiles)
	}

	var names []string
	for _, fh := range fhs {
		name, err := g.Save(fh, p)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// Filename derives the stored name for an upload: the current time in
// unix milliseconds plus the original name with whitespace collapsed
// to hyphens.
func Filename(original string) string {
	sanitized := whitespace.ReplaceAllString(strings.TrimSpace(original), "-")
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitized)
}

// check validates extension, declared MIME type, and size.
func check(fh *multipart.FileHeader, p Profile) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fh.Filename)), ".")
	mime := strings.ToLower(fh.Header.Get("Content-Type"))

	extOK := false
	mimeOK := false
	for _, t := range p.Types {
		if ext == t {
			extOK = true
		}
		if strings.Contains(mime, t) {
			mimeOK = true
		}
	}
	if !extOK || !mimeOK {
		return fmt.Errorf("%w: only %s are allowed", ErrInvalidType, strings.Join(p.Types, ", "))
	}

	if p.MaxSize > 0 && fh.Size > p.MaxSize {
		return fmt.Errorf("%w: limit is %d bytes", ErrFileTooLarge, p.MaxSize)
	}

	return nil
}
