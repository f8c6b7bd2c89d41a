package scaffold_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/studio-pipeline/workbench/internal/filesystem"
	"github.com/studio-pipeline/workbench/internal/host"
	"github.com/studio-pipeline/workbench/internal/models"
	"github.com/studio-pipeline/workbench/internal/project"
	"github.com/studio-pipeline/workbench/internal/scaffold"
)

type fixture struct {
	fs    *filesystem.MockFileSystem
	host  *host.MockHost
	store *project.Store
	wf    *scaffold.Workflow
	cfg   *models.ProjectConfig
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/assets")

	h := host.NewMockHost()
	store := project.NewStore(fs)

	return &fixture{
		fs:    fs,
		host:  h,
		store: store,
		wf:    scaffold.New(fs, h, store),
		cfg:   models.NewProjectConfig("abc123XYZ012", "/assets", models.AssetTypeProp, "My Asset"),
	}
}

func TestInitialize(t *testing.T) {
	f := newFixture(t)

	report, err := f.wf.Initialize(f.cfg)
	require.NoError(t, err)
	require.Equal(t, "prp_My_Asset_v01_wip.blend", report.SavedFile)

	require.True(t, f.cfg.Generated)
	require.True(t, f.fs.Exists("/assets/prp_My_Asset/v01/wip/projects"))
	require.True(t, f.fs.Exists("/assets/prp_My_Asset/v01/fin/projects"))
	require.True(t, f.fs.Exists("/assets/prp_My_Asset/arch"))
	require.Equal(t, []string{"/assets/prp_My_Asset/v01/wip/projects/prp_My_Asset_v01_wip.blend"}, f.host.SavedPaths)

	// Record and manifest land in the project root.
	require.True(t, f.fs.Exists("/assets/prp_My_Asset/workbench.md"))
	require.True(t, f.fs.Exists("/assets/prp_My_Asset/MANIFEST.md"))

	loaded, _, err := f.store.Read(report.RecordPath)
	require.NoError(t, err)
	require.True(t, loaded.Generated)
	require.Equal(t, 1, loaded.Version)
}

func TestInitialize_TwiceIsIdempotent(t *testing.T) {
	f := newFixture(t)

	_, err := f.wf.Initialize(f.cfg)
	require.NoError(t, err)

	// Re-running against existing folders must not fail.
	_, err = f.wf.Initialize(f.cfg)
	require.NoError(t, err)
	require.Equal(t, 1, f.cfg.Version)
}

func TestInitialize_FolderCreationFailure(t *testing.T) {
	f := newFixture(t)
	f.fs.MkdirAllError = errors.New("disk full")

	_, err := f.wf.Initialize(f.cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "could not create folders")

	// No save attempted, flag untouched.
	require.Empty(t, f.host.Calls)
	require.False(t, f.cfg.Generated)
}

func TestInitialize_SaveFailureLeavesDirectories(t *testing.T) {
	f := newFixture(t)
	f.host.SaveDocumentError = errors.New("permission denied")

	_, err := f.wf.Initialize(f.cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "could not save file")

	require.False(t, f.cfg.Generated)

	// Directories are not rolled back.
	require.True(t, f.fs.Exists("/assets/prp_My_Asset/v01/wip/projects"))
	require.True(t, f.fs.Exists("/assets/prp_My_Asset/arch"))
}

func TestIterate_RequiresInitialize(t *testing.T) {
	f := newFixture(t)

	_, err := f.wf.Iterate(f.cfg, scaffold.IterateOptions{})
	require.ErrorIs(t, err, scaffold.ErrNotInitialized)
}

func TestIterate_ArchivesOldVersion(t *testing.T) {
	f := newFixture(t)
	_, err := f.wf.Initialize(f.cfg)
	require.NoError(t, err)

	report, err := f.wf.Iterate(f.cfg, scaffold.IterateOptions{})
	require.NoError(t, err)

	require.Equal(t, 1, report.PreviousVersion)
	require.Equal(t, 2, report.NewVersion)
	require.Equal(t, 2, f.cfg.Version)
	require.Empty(t, report.Warnings)

	require.True(t, report.Archived)
	require.Equal(t, "/assets/prp_My_Asset/arch/v01", report.ArchiveDest)
	require.False(t, f.fs.Exists("/assets/prp_My_Asset/v01"))

	// The archived subtree moved whole, initial save included.
	require.True(t, f.fs.Exists("/assets/prp_My_Asset/arch/v01/wip/projects/prp_My_Asset_v01_wip.blend"))

	// New version folders and save exist.
	require.True(t, f.fs.Exists("/assets/prp_My_Asset/v02/fin/projects"))
	require.Equal(t, "save:/assets/prp_My_Asset/v02/wip/projects/prp_My_Asset_v02_wip.blend",
		f.host.Calls[len(f.host.Calls)-1])
}

func TestIterate_WipeRunsBeforeSave(t *testing.T) {
	f := newFixture(t)
	_, err := f.wf.Initialize(f.cfg)
	require.NoError(t, err)
	f.host.Calls = nil

	_, err = f.wf.Iterate(f.cfg, scaffold.IterateOptions{WipeScene: true})
	require.NoError(t, err)

	require.Equal(t, []string{
		"select-all",
		"delete-selected",
		"purge",
		"save:/assets/prp_My_Asset/v02/wip/projects/prp_My_Asset_v02_wip.blend",
	}, f.host.Calls)
}

func TestIterate_WipeFailureDoesNotHaltSave(t *testing.T) {
	f := newFixture(t)
	_, err := f.wf.Initialize(f.cfg)
	require.NoError(t, err)

	f.host.SelectAllError = errors.New("no active view")
	f.host.PurgeUnreferencedDataError = errors.New("data locked")

	report, err := f.wf.Iterate(f.cfg, scaffold.IterateOptions{WipeScene: true})
	require.NoError(t, err)

	require.Len(t, report.Warnings, 2)
	require.Equal(t, 2, f.cfg.Version)
	require.NotEmpty(t, report.SavedFile)
}

func TestIterate_MissingOldFolderSkipsArchive(t *testing.T) {
	f := newFixture(t)
	_, err := f.wf.Initialize(f.cfg)
	require.NoError(t, err)

	// v01 deleted externally.
	require.NoError(t, f.fs.Rename("/assets/prp_My_Asset/v01", "/elsewhere/v01"))

	report, err := f.wf.Iterate(f.cfg, scaffold.IterateOptions{})
	require.NoError(t, err)

	require.False(t, report.Archived)
	require.Empty(t, report.Warnings)
	require.Equal(t, 2, f.cfg.Version)
}

func TestIterate_ExistingArchiveDestinationWarns(t *testing.T) {
	f := newFixture(t)
	_, err := f.wf.Initialize(f.cfg)
	require.NoError(t, err)

	f.fs.AddDir("/assets/prp_My_Asset/arch/v01")

	report, err := f.wf.Iterate(f.cfg, scaffold.IterateOptions{})
	require.NoError(t, err)

	require.False(t, report.Archived)
	require.Len(t, report.Warnings, 1)
	require.Contains(t, report.Warnings[0], "archive for v01 already exists")

	// Old folder left in place, version still advanced.
	require.True(t, f.fs.Exists("/assets/prp_My_Asset/v01"))
	require.Equal(t, 2, f.cfg.Version)
}

func TestIterate_ArchiveMoveFailureWarns(t *testing.T) {
	f := newFixture(t)
	_, err := f.wf.Initialize(f.cfg)
	require.NoError(t, err)

	f.fs.RenameError = errors.New("cross-device link")

	report, err := f.wf.Iterate(f.cfg, scaffold.IterateOptions{})
	require.NoError(t, err)

	require.False(t, report.Archived)
	require.Len(t, report.Warnings, 1)
	require.True(t, strings.Contains(report.Warnings[0], "failed to move"))
	require.Equal(t, 2, f.cfg.Version)
}

func TestIterate_SaveFailureDoesNotAdvanceVersion(t *testing.T) {
	f := newFixture(t)
	_, err := f.wf.Initialize(f.cfg)
	require.NoError(t, err)

	f.host.SaveDocumentError = errors.New("disk full")

	_, err = f.wf.Iterate(f.cfg, scaffold.IterateOptions{})
	require.Error(t, err)
	require.Equal(t, 1, f.cfg.Version)
}

func TestFinalize(t *testing.T) {
	f := newFixture(t)
	_, err := f.wf.Initialize(f.cfg)
	require.NoError(t, err)

	versionBefore := f.cfg.Version
	report, err := f.wf.Finalize(f.cfg)
	require.NoError(t, err)

	require.Equal(t, "prp_My_Asset_v01_fin.blend", report.SavedFile)
	require.Equal(t, []string{"/assets/prp_My_Asset/v01/fin/projects/prp_My_Asset_v01_fin.blend"}, f.host.CopiedPaths)

	// Copy-save: canonical document location unchanged, record untouched.
	require.Equal(t, "/assets/prp_My_Asset/v01/wip/projects/prp_My_Asset_v01_wip.blend", f.host.DocumentPath())
	require.Equal(t, versionBefore, f.cfg.Version)
}

func TestFinalize_RequiresInitialize(t *testing.T) {
	f := newFixture(t)

	_, err := f.wf.Finalize(f.cfg)
	require.ErrorIs(t, err, scaffold.ErrNotInitialized)
}

func TestFinalize_RecreatesMissingFinDir(t *testing.T) {
	f := newFixture(t)
	_, err := f.wf.Initialize(f.cfg)
	require.NoError(t, err)

	require.NoError(t, f.fs.Rename("/assets/prp_My_Asset/v01/fin", "/elsewhere/fin"))

	_, err = f.wf.Finalize(f.cfg)
	require.NoError(t, err)
	require.True(t, f.fs.Exists("/assets/prp_My_Asset/v01/fin/projects"))
}

func TestStartupAction(t *testing.T) {
	require.Equal(t, scaffold.ActionShowSetup, scaffold.StartupAction(nil))

	cfg := models.NewProjectConfig("abc123XYZ012", "/assets", models.AssetTypeProp, "Crate")
	require.Equal(t, scaffold.ActionShowSetup, scaffold.StartupAction(cfg))

	cfg.Generated = true
	require.Equal(t, scaffold.ActionNone, scaffold.StartupAction(cfg))
}
