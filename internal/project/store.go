// Package project persists the ProjectConfig record as a markdown file
// with YAML frontmatter. The body below the frontmatter is free-form
// project notes and survives every rewrite.
package project

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/studio-pipeline/workbench/internal/filesystem"
	"github.com/studio-pipeline/workbench/internal/models"
	"github.com/studio-pipeline/workbench/internal/paths"
)

// RecordFileName is the record's filename inside the project root.
const RecordFileName = "workbench.md"

// ErrNoRecord indicates no project record was found.
var ErrNoRecord = errors.New("no workbench project found")

// Store reads and writes project records.
type Store struct {
	fs filesystem.FileSystem
}

// NewStore creates a new Store
func NewStore(fs filesystem.FileSystem) *Store {
	return &Store{fs: fs}
}

// RecordPath returns where the record for a config lives.
func (s *Store) RecordPath(cfg *models.ProjectConfig) string {
	return filepath.Join(paths.ProjectRoot(cfg), RecordFileName)
}

// Read loads a record file, returning the config and the notes body.
func (s *Store) Read(recordPath string) (*models.ProjectConfig, string, error) {
	data, err := s.fs.ReadFile(recordPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read project record: %w", err)
	}

	var cfg models.ProjectConfig
	rest, err := frontmatter.Parse(bytes.NewReader(data), &cfg)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse project record %s: %w", recordPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid project record %s: %w", recordPath, err)
	}

	return &cfg, strings.TrimSpace(string(rest)), nil
}

// Write persists the record with the given notes body, creating the
// project root if needed.
func (s *Store) Write(cfg *models.ProjectConfig, notes string) error {
	root := paths.ProjectRoot(cfg)
	if !s.fs.Exists(root) {
		if err := s.fs.MkdirAll(root, 0755); err != nil {
			return fmt.Errorf("failed to create project root: %w", err)
		}
	}

	matter, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize project record: %w", err)
	}

	var content bytes.Buffer
	content.WriteString("---\n")
	content.Write(matter)
	content.WriteString("---\n")
	if notes != "" {
		content.WriteString("\n")
		content.WriteString(notes)
		content.WriteString("\n")
	}

	if err := s.fs.WriteFile(s.RecordPath(cfg), content.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write project record: %w", err)
	}

	return nil
}

// Save rewrites the record, preserving the existing notes body.
func (s *Store) Save(cfg *models.ProjectConfig) error {
	notes := ""
	recordPath := s.RecordPath(cfg)
	if s.fs.Exists(recordPath) {
		if _, existing, err := s.Read(recordPath); err == nil {
			notes = existing
		}
	}
	return s.Write(cfg, notes)
}

// Locate walks up from startDir looking for a record file, returning
// its path. ErrNoRecord when the walk reaches the filesystem root.
func (s *Store) Locate(startDir string) (string, error) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, RecordFileName)
		if s.fs.Exists(candidate) {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoRecord
		}
		dir = parent
	}
}
