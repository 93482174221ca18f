// Package storage wraps the handful of filesystem operations the commands
// share: writing outputs, checking inputs, and reporting file sizes.
package storage

import (
	"fmt"
	"os"
)

type Storage struct{}

func (s *Storage) SaveFile(filePath string, content []byte) error {
	err := os.WriteFile(filePath, content, 0644)
	if err != nil {
		return fmt.Errorf("error saving file: %s", err)
	}

	return nil
}

func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %s", err)
	}
	return data, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

// HasFile reports whether a path exists, used by the actions to validate
// inputs before an operation starts.
func (s *Storage) HasFile(fn string) bool {
	return fileExists(fn)
}

// FileSize returns the size of a file in bytes. The compression commands use
// the before/after sizes to report the reduction percentage.
func (s *Storage) FileSize(filePath string) (int64, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return 0, fmt.Errorf("error getting file stats: %s", err)
	}
	return info.Size(), nil
}

// EnsureDir creates a directory (and parents) if it does not exist yet.
func (s *Storage) EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0750); err != nil {
		return fmt.Errorf("error creating directory %s: %s", path, err)
	}
	return nil
}

// Remove deletes a file, ignoring the case where it never existed. Used to
// discard partial output after a failed assembly.
func (s *Storage) Remove(filePath string) error {
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing file: %s", err)
	}
	return nil
}
