package scaffold

import (
	"fmt"

	"github.com/studio-pipeline/workbench/internal/models"
	"github.com/studio-pipeline/workbench/internal/paths"
)

// IterateOptions controls the version step.
type IterateOptions struct {
	// WipeScene removes all objects and purges unreferenced data from
	// the live document before the new version is saved. Destructive
	// and irreversible.
	WipeScene bool
}

// IterateReport describes the outcome of one version step. Warnings
// are soft failures: the version advanced regardless.
type IterateReport struct {
	PreviousVersion int
	NewVersion      int
	SavedFile       string
	Archived        bool
	ArchiveDest     string
	Warnings        []string
}

func (r *IterateReport) warnf(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Iterate advances the project from version N to N+1: create the next
// version's folders, optionally wipe the live document, save it as the
// new version, then relocate the old version folder into the archive.
//
// The save is unconditional with respect to the wipe: a wipe failure
// is reported as a warning, never aborts. The archive move likewise
// only ever warns, because by that point the new version's file has
// already been saved. The version counter advances even when the
// archive step was skipped or failed.
func (w *Workflow) Iterate(cfg *models.ProjectConfig, opts IterateOptions) (*IterateReport, error) {
	if !cfg.Generated {
		return nil, ErrNotInitialized
	}

	current := cfg.Version
	next := current + 1

	report := &IterateReport{
		PreviousVersion: current,
		NewVersion:      next,
	}

	// 1. Folders for the next version.
	for _, dir := range []string{paths.WIPDir(cfg, next), paths.FinDir(cfg, next)} {
		if err := w.fs.MkdirAll(dir, dirPerm); err != nil {
			return nil, fmt.Errorf("could not create folders: %w", err)
		}
	}

	// 2. Optional wipe of the live document.
	if opts.WipeScene {
		w.wipeScene(report)
	}

	// 3. Save the new version. Not gated on step 2.
	target := paths.WIPFilePath(cfg, next)
	if err := w.host.SaveDocument(target); err != nil {
		return nil, fmt.Errorf("could not save file: %w", err)
	}
	report.SavedFile = paths.BlendFilename(cfg, next, models.StateWIP)

	// 4. Archive the old version folder.
	w.archiveVersion(cfg, current, report)

	// 5. Persist the new version unconditionally.
	cfg.Version = next
	cfg.DocumentPath = target
	if err := w.store.Save(cfg); err != nil {
		return nil, err
	}

	return report, nil
}

func (w *Workflow) wipeScene(report *IterateReport) {
	if err := w.host.SelectAll(); err != nil {
		report.warnf("failed to select objects: %v", err)
	} else if err := w.host.DeleteSelectedObjects(); err != nil {
		report.warnf("failed to delete objects: %v", err)
	}

	if err := w.host.PurgeUnreferencedData(); err != nil {
		report.warnf("failed to purge unreferenced data: %v", err)
	}
}

// archiveVersion relocates the retired version folder into the archive.
// A missing source is skipped silently; an existing destination or a
// failed move leaves the folder in place with a warning.
func (w *Workflow) archiveVersion(cfg *models.ProjectConfig, version int, report *IterateReport) {
	oldFolder := paths.VersionFolder(cfg, version)
	if !w.fs.Exists(oldFolder) {
		return
	}

	dest := paths.ArchiveVersionFolder(cfg, version)
	if w.fs.Exists(dest) {
		report.warnf("archive for %s already exists", paths.VersionTag(version))
		return
	}

	if err := w.fs.Rename(oldFolder, dest); err != nil {
		report.warnf("failed to move %s to archive: %v", paths.VersionTag(version), err)
		return
	}

	report.Archived = true
	report.ArchiveDest = dest
}
