package storage

import (
	"balpath/internal/config"
	"balpath/internal/domain"
)

// Storage persists and loads the manifest of the last balancing run
type Storage interface {
	Save(manifest *domain.Manifest) error
	Load() (*domain.Manifest, error)
}

// JSONStorage stores the manifest in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
