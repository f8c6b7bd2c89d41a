package host_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/studio-pipeline/workbench/internal/filesystem"
	"github.com/studio-pipeline/workbench/internal/host"
)

func TestFileHost_SaveRedirectsCanonicalPath(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/work")

	h := host.NewFileHost(fs)
	require.Empty(t, h.DocumentPath())

	require.NoError(t, h.SaveDocument("/work/a.blend"))
	require.Equal(t, "/work/a.blend", h.DocumentPath())

	require.NoError(t, h.SaveDocument("/work/b.blend"))
	require.Equal(t, "/work/b.blend", h.DocumentPath())
	require.True(t, fs.Exists("/work/a.blend"))
	require.True(t, fs.Exists("/work/b.blend"))
}

func TestFileHost_SaveCopyKeepsCanonicalPath(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/work")

	h := host.NewFileHost(fs)
	require.NoError(t, h.SaveDocument("/work/a.blend"))

	require.NoError(t, h.SaveDocumentCopy("/work/copy.blend"))
	require.Equal(t, "/work/a.blend", h.DocumentPath())
	require.True(t, fs.Exists("/work/copy.blend"))
}

func TestFileHost_WipeSequence(t *testing.T) {
	fs := filesystem.NewMockFileSystem()

	h := host.NewFileHost(fs)
	h.AddObject("Cube", "CubeMesh")
	h.AddObject("Lamp", "LampData")

	// Deleting without a selection removes nothing.
	require.NoError(t, h.DeleteSelectedObjects())
	require.Len(t, h.Objects(), 2)

	require.NoError(t, h.SelectAll())
	require.NoError(t, h.DeleteSelectedObjects())
	require.Empty(t, h.Objects())

	// Data blocks survive the delete until purged.
	require.Len(t, h.DataBlocks(), 2)
	require.NoError(t, h.PurgeUnreferencedData())
	require.Empty(t, h.DataBlocks())
}

func TestFileHost_PurgeKeepsReferencedData(t *testing.T) {
	fs := filesystem.NewMockFileSystem()

	h := host.NewFileHost(fs)
	h.AddObject("Cube", "CubeMesh")
	h.AddObject("Ghost", "GhostMesh")

	require.NoError(t, h.SelectAll())
	require.NoError(t, h.DeleteSelectedObjects())
	h.AddObject("Cube2", "CubeMesh")

	require.NoError(t, h.PurgeUnreferencedData())
	require.Equal(t, []string{"CubeMesh"}, h.DataBlocks())
}

func TestFileHost_OpenRoundTrip(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/work")

	h := host.NewFileHost(fs)
	h.AddObject("Cube", "CubeMesh")
	require.NoError(t, h.SaveDocument("/work/a.blend"))

	reopened := host.NewFileHost(fs)
	require.NoError(t, reopened.Open("/work/a.blend"))
	require.Equal(t, "/work/a.blend", reopened.DocumentPath())
	require.Equal(t, []string{"Cube"}, reopened.Objects())
}

func TestFileHost_OpenMissingDocument(t *testing.T) {
	fs := filesystem.NewMockFileSystem()

	h := host.NewFileHost(fs)
	require.Error(t, h.Open("/nowhere/a.blend"))
}
