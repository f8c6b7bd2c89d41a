package scaffold

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/studio-pipeline/workbench/internal/manifest"
	"github.com/studio-pipeline/workbench/internal/models"
	"github.com/studio-pipeline/workbench/internal/paths"
)

// ManifestFileName is written into the project root on initialization.
const ManifestFileName = "MANIFEST.md"

const dirPerm fs.FileMode = 0755

// InitReport describes a successful initialization.
type InitReport struct {
	SavedFile  string
	RecordPath string
}

// Initialize creates the initial versioned folder tree, saves the host
// document into it, and persists the project record.
//
// Folder creation is idempotent; re-running against existing folders is
// not an error. Directories created before a failed save are left in
// place.
func (w *Workflow) Initialize(cfg *models.ProjectConfig) (*InitReport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dirs := []string{
		paths.WIPDir(cfg, cfg.Version),
		paths.FinDir(cfg, cfg.Version),
		paths.ArchiveFolder(cfg),
	}
	for _, dir := range dirs {
		if err := w.fs.MkdirAll(dir, dirPerm); err != nil {
			return nil, fmt.Errorf("could not create folders: %w", err)
		}
	}

	target := paths.WIPFilePath(cfg, cfg.Version)
	if err := w.host.SaveDocument(target); err != nil {
		return nil, fmt.Errorf("could not save file: %w", err)
	}

	cfg.Generated = true
	cfg.DocumentPath = target

	content, err := manifest.Render(cfg)
	if err != nil {
		return nil, err
	}
	manifestPath := filepath.Join(paths.ProjectRoot(cfg), ManifestFileName)
	if err := w.fs.WriteFile(manifestPath, []byte(content), 0644); err != nil {
		return nil, fmt.Errorf("could not write manifest: %w", err)
	}

	if err := w.store.Save(cfg); err != nil {
		return nil, err
	}

	return &InitReport{
		SavedFile:  paths.BlendFilename(cfg, cfg.Version, models.StateWIP),
		RecordPath: w.store.RecordPath(cfg),
	}, nil
}
