package storage

import (
	"io"
)

// Storage defines the interface for persisting experiment artifacts
// (ROC plots, labeled-split exports, run reports).
type Storage interface {
	GetWriter(path string) (io.WriteCloser, error)

	GetReader(path string) (io.ReadCloser, error)

	FileExists(path string) bool

	ListFiles(dir string, prefix string) ([]string, error)
}
