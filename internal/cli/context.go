package cli

import (
	"fmt"

	"github.com/studio-pipeline/workbench/internal/filesystem"
	"github.com/studio-pipeline/workbench/internal/host"
	"github.com/studio-pipeline/workbench/internal/models"
	"github.com/studio-pipeline/workbench/internal/project"
)

// HostFactory builds the host for an operation. When cfg carries a
// canonical document location that exists, the factory opens it.
type HostFactory func(fs filesystem.FileSystem, cfg *models.ProjectConfig) (host.Host, error)

// LockerFactory builds the cross-process lock guarding a record.
type LockerFactory func(recordPath string) project.Locker

func defaultHostFactory(fs filesystem.FileSystem, cfg *models.ProjectConfig) (host.Host, error) {
	h := host.NewFileHost(fs)
	if cfg != nil && cfg.DocumentPath != "" && fs.Exists(cfg.DocumentPath) {
		if err := h.Open(cfg.DocumentPath); err != nil {
			return nil, fmt.Errorf("failed to open current document: %w", err)
		}
	}
	return h, nil
}

func defaultLockerFactory(recordPath string) project.Locker {
	return project.NewFlockLocker(recordPath)
}

// loadProject locates and reads the project record, walking up from
// the current working directory.
func loadProject(fs filesystem.FileSystem) (*models.ProjectConfig, string, error) {
	store := project.NewStore(fs)

	cwd, err := fs.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get working directory: %w", err)
	}

	recordPath, err := store.Locate(cwd)
	if err != nil {
		return nil, "", err
	}

	cfg, _, err := store.Read(recordPath)
	if err != nil {
		return nil, "", err
	}

	return cfg, recordPath, nil
}

// requireProject is loadProject with a friendlier error for commands
// that cannot run without an existing record.
func requireProject(fs filesystem.FileSystem) (*models.ProjectConfig, string, error) {
	cfg, recordPath, err := loadProject(fs)
	if err == project.ErrNoRecord {
		return nil, "", fmt.Errorf("%w: run 'workbench setup' first", project.ErrNoRecord)
	}
	return cfg, recordPath, err
}
