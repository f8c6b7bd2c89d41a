// Package paths derives every folder and file name used by the project
// layout. All functions are pure: the same config and version always
// produce the same path, with no filesystem access.
package paths

import (
	"fmt"
	"path/filepath"

	"github.com/studio-pipeline/workbench/internal/models"
)

const (
	archDirName     = "arch"
	projectsDirName = "projects"
	wipDirName      = "wip"
	finDirName      = "fin"
	blendExt        = ".blend"
)

// ProjectRoot returns <root>/<code>_<safe_name>.
func ProjectRoot(cfg *models.ProjectConfig) string {
	folder := fmt.Sprintf("%s_%s", cfg.AssetType.Code(), cfg.SafeName())
	return filepath.Join(cfg.RootPath, folder)
}

// VersionFolder returns <project_root>/vNN for the given version.
func VersionFolder(cfg *models.ProjectConfig, version int) string {
	return filepath.Join(ProjectRoot(cfg), VersionTag(version))
}

// ArchiveFolder returns <project_root>/arch.
func ArchiveFolder(cfg *models.ProjectConfig) string {
	return filepath.Join(ProjectRoot(cfg), archDirName)
}

// ArchiveVersionFolder returns <project_root>/arch/vNN, the destination
// a retired version folder is relocated to.
func ArchiveVersionFolder(cfg *models.ProjectConfig, version int) string {
	return filepath.Join(ArchiveFolder(cfg), VersionTag(version))
}

// WIPDir returns the working-projects folder <version_folder>/wip/projects.
func WIPDir(cfg *models.ProjectConfig, version int) string {
	return filepath.Join(VersionFolder(cfg, version), wipDirName, projectsDirName)
}

// FinDir returns the final-projects folder <version_folder>/fin/projects.
func FinDir(cfg *models.ProjectConfig, version int) string {
	return filepath.Join(VersionFolder(cfg, version), finDirName, projectsDirName)
}

// BlendFilename returns <code>_<safe_name>_vNN_<state>.blend.
func BlendFilename(cfg *models.ProjectConfig, version int, state models.State) string {
	return fmt.Sprintf("%s_%s_%s_%s%s",
		cfg.AssetType.Code(), cfg.SafeName(), VersionTag(version), state, blendExt)
}

// WIPFilePath returns the full path of the working save for a version.
func WIPFilePath(cfg *models.ProjectConfig, version int) string {
	return filepath.Join(WIPDir(cfg, version), BlendFilename(cfg, version, models.StateWIP))
}

// FinFilePath returns the full path of the final copy for a version.
func FinFilePath(cfg *models.ProjectConfig, version int) string {
	return filepath.Join(FinDir(cfg, version), BlendFilename(cfg, version, models.StateFin))
}

// VersionTag formats a version number as vNN (zero-padded, two digits).
func VersionTag(version int) string {
	return fmt.Sprintf("v%02d", version)
}
