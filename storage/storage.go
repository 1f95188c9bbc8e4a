// storage/storage.go
package storage

import (
    "fmt"
    "io"
    "os"
    "path/filepath"
)

// Store persists fetched files beneath a single site root, mirroring the
// site's URL structure on disk.
type Store struct {
    root string
}

func New(root string) (*Store, error) {
    if err := os.MkdirAll(root, 0755); err != nil {
        return nil, fmt.Errorf("failed to create save directory: %w", err)
    }
    return &Store{root: root}, nil
}

func (s *Store) Root() string {
    return s.root
}

// Abs converts a slash-separated root-relative path to an absolute one.
func (s *Store) Abs(rel string) string {
    return filepath.Join(s.root, filepath.FromSlash(rel))
}

// WriteText writes UTF-8 text to rel, creating intermediate directories,
// and returns the absolute path with the byte size read back from disk.
func (s *Store) WriteText(rel, content string) (string, int64, error) {
    abs := s.Abs(rel)
    if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
        return "", 0, fmt.Errorf("failed to create directory for %s: %w", rel, err)
    }

    if err := os.WriteFile(abs, []byte(content), 0644); err != nil {
        return "", 0, fmt.Errorf("failed to write %s: %w", rel, err)
    }

    size, err := s.sizeOnDisk(abs)
    if err != nil {
        return "", 0, err
    }
    return abs, size, nil
}

// WriteStream copies r to rel without buffering the whole payload,
// creating intermediate directories, and returns the absolute path with
// the byte size read back from disk.
func (s *Store) WriteStream(rel string, r io.Reader) (string, int64, error) {
    abs := s.Abs(rel)
    if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
        return "", 0, fmt.Errorf("failed to create directory for %s: %w", rel, err)
    }

    f, err := os.Create(abs)
    if err != nil {
        return "", 0, fmt.Errorf("failed to create %s: %w", rel, err)
    }

    if _, err := io.Copy(f, r); err != nil {
        f.Close()
        return "", 0, fmt.Errorf("failed to write %s: %w", rel, err)
    }
    if err := f.Close(); err != nil {
        return "", 0, fmt.Errorf("failed to close %s: %w", rel, err)
    }

    size, err := s.sizeOnDisk(abs)
    if err != nil {
        return "", 0, err
    }
    return abs, size, nil
}

func (s *Store) sizeOnDisk(abs string) (int64, error) {
    info, err := os.Stat(abs)
    if err != nil {
        return 0, fmt.Errorf("failed to stat %s: %w", abs, err)
    }
    return info.Size(), nil
}
