package models

import (
	"fmt"
	"strings"
	"time"
)

// ProjectConfig is the persisted state record for one asset project.
//
// Exactly one record is active per project document. It is created with
// default values on first setup, mutated in place by the workflow
// operations, and never explicitly destroyed.
type ProjectConfig struct {
	// ID is a unique, human-friendly identifier for the record
	ID string `yaml:"id"`

	// RootPath is the directory the project folder is created under
	RootPath string `yaml:"root_path"`

	// AssetType is the short type code (prp, chr, res)
	AssetType AssetType `yaml:"asset_type"`

	// AssetName is the free-text asset name; whitespace is normalized
	// to underscores wherever it appears in a path or filename
	AssetName string `yaml:"asset_name"`

	// Version is the current working version, starting at 1. It is
	// advanced only by the version iterator and never decremented.
	Version int `yaml:"version"`

	// Generated is false until the initial structure and save succeed,
	// then permanently true for the life of the record.
	Generated bool `yaml:"generated"`

	// DocumentPath is the canonical location of the host document,
	// updated by every non-copy save.
	DocumentPath string `yaml:"document,omitempty"`

	CreatedAt time.Time `yaml:"created_at"`
}

// NewProjectConfig creates a record with the default initial state.
func NewProjectConfig(id, rootPath string, assetType AssetType, assetName string) *ProjectConfig {
	return &ProjectConfig{
		ID:        id,
		RootPath:  rootPath,
		AssetType: assetType,
		AssetName: assetName,
		Version:   1,
		CreatedAt: time.Now().UTC(),
	}
}

// SafeName returns the asset name with each space replaced by an
// underscore. No other sanitization is performed; callers are trusted
// to supply reasonable asset names.
func (c *ProjectConfig) SafeName() string {
	return strings.ReplaceAll(c.AssetName, " ", "_")
}

// Validate checks the record is usable by the workflow operations.
func (c *ProjectConfig) Validate() error {
	if strings.TrimSpace(c.AssetName) == "" {
		return fmt.Errorf("asset name is required")
	}
	if strings.TrimSpace(c.RootPath) == "" {
		return fmt.Errorf("root path is required")
	}
	if !c.AssetType.Valid() {
		return fmt.Errorf("invalid asset type: %q", c.AssetType)
	}
	if c.Version < 1 {
		return fmt.Errorf("version must be >= 1, got %d", c.Version)
	}
	return nil
}
