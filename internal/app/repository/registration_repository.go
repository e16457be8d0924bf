package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/formflow-uk/formflow-backend/internal/app/model"
)

// RegistrationRepository persists submitted registrations
type RegistrationRepository interface {
	Append(record *model.Registration) error
}

// fileRegistrationRepository appends one JSON object per line to a growing
// log file. A single mutex serializes writers so concurrent submissions
// cannot interleave lines; the log has no index, no compaction and no size
// bound, and records are never mutated or deleted after write.
type fileRegistrationRepository struct {
	path string
	mu   sync.Mutex
}

// NewRegistrationRepository creates a file-backed registration log at the
// given path, creating parent directories as needed
func NewRegistrationRepository(path string) (RegistrationRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("registration log path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	return &fileRegistrationRepository{path: path}, nil
}

// Append serializes the record and writes it as a single line. The file is
// opened per call so a crashed process never holds the log hostage.
func (r *fileRegistrationRepository) Append(record *model.Registration) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal registration record: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open registration log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to append registration record: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync registration log: %w", err)
	}
	return nil
}
