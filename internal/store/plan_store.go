package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"gpxplan/internal/domain"
)

// PlanFileStore reads and writes .plan mission files.
type PlanFileStore struct{}

// NewPlanFileStore returns a plan store.
func NewPlanFileStore() *PlanFileStore { return &PlanFileStore{} }

// Save writes the plan as indented JSON, atomically.
func (s *PlanFileStore) Save(path string, p domain.PlanFile) error {
	if err := writeJSON(path, p, 0o644); err != nil {
		return fmt.Errorf("write plan file %s: %w", path, err)
	}
	return nil
}

// Load reads and decodes a .plan file.
func (s *PlanFileStore) Load(path string) (domain.PlanFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.PlanFile{}, fmt.Errorf("read plan file: %w", err)
	}
	var p domain.PlanFile
	if err := json.Unmarshal(b, &p); err != nil {
		return domain.PlanFile{}, fmt.Errorf("decode plan file %s: %w", path, err)
	}
	return p, nil
}

// Fingerprint returns a short hex fingerprint of the plan file bytes.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars).
func (s *PlanFileStore) Fingerprint(path string) (domain.Fingerprint, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read plan file: %w", err)
	}
	sum := sha256.Sum256(b)
	return domain.Fingerprint(hex.EncodeToString(sum[:10])), nil
}

// Compile-time assertion that PlanFileStore implements domain.PlanStore.
var _ domain.PlanStore = (*PlanFileStore)(nil)
