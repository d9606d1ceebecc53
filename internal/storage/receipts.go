// Package storage persists uploaded receipt files on the local filesystem.
// Stored names are derived from the owning expense id, never from
// caller-supplied strings, so two uploads can never clobber each other.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type ReceiptStore struct {
	dir string
}

// NewReceiptStore creates the receipts directory if needed.
func NewReceiptStore(dir string) (*ReceiptStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create receipts dir: %w", err)
	}
	return &ReceiptStore{dir: dir}, nil
}

// Save writes the receipt for the given expense id, keeping only the
// extension of the original filename. Returns the stored filename.
func (s *ReceiptStore) Save(expenseID uint, originalName string, r io.Reader) (string, error) {
	name := fmt.Sprintf("expense_%d%s", expenseID, sanitizeExt(originalName))
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create receipt file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write receipt file: %w", err)
	}
	return name, nil
}

// Remove deletes a stored receipt. A missing file is not an error.
func (s *ReceiptStore) Remove(name string) error {
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path returns the absolute location of a stored receipt, or an error if the
// file does not exist.
func (s *ReceiptStore) Path(name string) (string, error) {
	p := filepath.Join(s.dir, name)
	if _, err := os.Stat(p); err != nil {
		return "", err
	}
	return p, nil
}

// Exists reports whether a stored receipt is present on disk.
func (s *ReceiptStore) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.dir, name))
	return err == nil
}

func sanitizeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	for _, r := range ext {
		if r != '.' && (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
