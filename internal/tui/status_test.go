package tui_test

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
	"github.com/studio-pipeline/workbench/internal/models"
	"github.com/studio-pipeline/workbench/internal/tui"
)

func statusConfig() *models.ProjectConfig {
	cfg := models.NewProjectConfig("abc123XYZ012", "/assets", models.AssetTypeProp, "My Asset")
	cfg.Generated = true
	cfg.DocumentPath = "/assets/prp_My_Asset/v01/wip/projects/prp_My_Asset_v01_wip.blend"
	return cfg
}

func TestRenderStatus(t *testing.T) {
	out := tui.RenderStatus(statusConfig())

	require.Contains(t, out, "My Asset")
	require.Contains(t, out, "v01")
	require.Contains(t, out, "WIP")
	require.Contains(t, out, ".../projects/")

	snaps.MatchSnapshot(t, out)
}

func TestRenderStatus_UnsavedDocument(t *testing.T) {
	cfg := statusConfig()
	cfg.DocumentPath = ""

	out := tui.RenderStatus(cfg)
	require.Contains(t, out, "Unsaved")
}

func TestRenderSetupHint(t *testing.T) {
	out := tui.RenderSetupHint()

	require.True(t, strings.Contains(out, "workbench setup"))
	snaps.MatchSnapshot(t, out)
}
