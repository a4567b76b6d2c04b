package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalFileStorage implements the Storage interface for the local filesystem,
// rooted at a single output directory.
type LocalFileStorage struct {
	outputDir string
}

// NewLocalFileStorage creates a new local file storage instance
func NewLocalFileStorage(outputDir string) (*LocalFileStorage, error) {
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	return &LocalFileStorage{outputDir: outputDir}, nil
}

// GetWriter returns a writer for the specified artifact, creating parent
// directories as needed.
func (s *LocalFileStorage) GetWriter(path string) (io.WriteCloser, error) {
	full := filepath.Join(s.outputDir, path)
	if err := os.MkdirAll(filepath.Dir(full), os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	return os.Create(full)
}

// GetReader returns a reader for the specified artifact
func (s *LocalFileStorage) GetReader(path string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.outputDir, path))
}

// FileExists checks if an artifact exists
func (s *LocalFileStorage) FileExists(path string) bool {
	_, err := os.Stat(filepath.Join(s.outputDir, path))
	return err == nil
}

// ListFiles lists artifacts in a directory matching a name prefix
func (s *LocalFileStorage) ListFiles(dir string, prefix string) ([]string, error) {
	if dir == "" {
		dir = "."
	}

	files, err := os.ReadDir(filepath.Join(s.outputDir, dir))
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var results []string
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		if prefix != "" && !strings.HasPrefix(file.Name(), prefix) {
			continue
		}

		results = append(results, filepath.Join(dir, file.Name()))
	}

	return results, nil
}
