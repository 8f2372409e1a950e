// internal/app/system/filestore/filestore.go
//
// Package filestore persists uploaded PDFs as flat files in a single uploads
// directory. Each stored file is named "{id}_{originalName}" where id is a
// fresh random identifier, so concurrent uploads never collide and need no
// locking. There is no size limit, virus scanning, or content sniffing; the
// only acceptance policy is the ".pdf" filename suffix.
package filestore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrUnsupportedFileType is returned when the uploaded filename does not
	// end in ".pdf" (case-sensitive suffix check).
	ErrUnsupportedFileType = errors.New("only PDF files are allowed")

	// ErrNotFound is returned when a requested storage name does not exist.
	ErrNotFound = errors.New("file not found")
)

// Store is a filesystem-backed file store rooted at a single directory.
type Store struct {
	dir string
}

// SavedFile describes a stored upload.
type SavedFile struct {
	ID          string
	FileName    string // sanitized original filename
	StorageName string // on-disk name: "{id}_{fileName}"
}

// New creates the uploads directory if absent and returns a Store over it.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("uploads directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the uploads directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Save checks the filename policy, then writes the content under a fresh
// unique storage name. Nothing is written when the policy check fails.
func (s *Store) Save(filename string, r io.Reader) (SavedFile, error) {
	if !strings.HasSuffix(filename, ".pdf") {
		return SavedFile{}, ErrUnsupportedFileType
	}

	name := sanitizeFilename(filename)
	id := uuid.NewString()
	storageName := id + "_" + name

	f, err := os.Create(filepath.Join(s.dir, storageName))
	if err != nil {
		return SavedFile{}, fmt.Errorf("create %s: %w", storageName, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return SavedFile{}, fmt.Errorf("write %s: %w", storageName, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return SavedFile{}, fmt.Errorf("close %s: %w", storageName, err)
	}

	return SavedFile{ID: id, FileName: name, StorageName: storageName}, nil
}

// FullPath resolves a storage name to its on-disk path, or ErrNotFound. Names
// with path components are rejected so a request can never escape the
// uploads directory.
func (s *Store) FullPath(storageName string) (string, error) {
	if storageName == "" || storageName != filepath.Base(storageName) {
		return "", ErrNotFound
	}
	full := filepath.Join(s.dir, storageName)
	if _, err := os.Stat(full); err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", err
	}
	return full, nil
}

// Open returns the stored content for reading. The caller closes it.
func (s *Store) Open(storageName string) (io.ReadCloser, error) {
	full, err := s.FullPath(storageName)
	if err != nil {
		return nil, err
	}
	return os.Open(full)
}

// sanitizeFilename strips path components and replaces bytes that could be
// problematic in filenames.
func sanitizeFilename(filename string) string {
	filename = filepath.Base(filename)

	result := make([]byte, 0, len(filename))
	for i := 0; i < len(filename); i++ {
		c := filename[i]
		if isAllowedFilenameChar(c) {
			result = append(result, c)
		} else {
			result = append(result, '_')
		}
	}

	if len(result) == 0 {
		return "file"
	}
	if len(result) > 100 {
		ext := filepath.Ext(string(result))
		if len(ext) > 0 && len(ext) < 10 {
			result = append(result[:100-len(ext)], ext...)
		} else {
			result = result[:100]
		}
	}
	return string(result)
}

func isAllowedFilenameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '_' || c == '.'
}
