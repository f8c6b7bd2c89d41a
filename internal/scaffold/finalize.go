package scaffold

import (
	"fmt"

	"github.com/studio-pipeline/workbench/internal/models"
	"github.com/studio-pipeline/workbench/internal/paths"
)

// FinalizeReport describes a successful publish.
type FinalizeReport struct {
	SavedFile string
}

// Finalize saves a copy of the current document into the final-projects
// folder for the current version. The document's canonical location is
// unchanged and the project record is not mutated.
func (w *Workflow) Finalize(cfg *models.ProjectConfig) (*FinalizeReport, error) {
	if !cfg.Generated {
		return nil, ErrNotInitialized
	}

	finDir := paths.FinDir(cfg, cfg.Version)
	if !w.fs.Exists(finDir) {
		if err := w.fs.MkdirAll(finDir, dirPerm); err != nil {
			return nil, fmt.Errorf("could not create folders: %w", err)
		}
	}

	target := paths.FinFilePath(cfg, cfg.Version)
	if err := w.host.SaveDocumentCopy(target); err != nil {
		return nil, fmt.Errorf("could not save final copy: %w", err)
	}

	return &FinalizeReport{
		SavedFile: paths.BlendFilename(cfg, cfg.Version, models.StateFin),
	}, nil
}
