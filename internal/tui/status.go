package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/studio-pipeline/workbench/internal/models"
	"github.com/studio-pipeline/workbench/internal/paths"
)

// RenderStatus renders the project status panel.
func RenderStatus(cfg *models.ProjectConfig) string {
	var b strings.Builder

	header := fmt.Sprintf("%s  %s", cfg.AssetName, paths.VersionTag(cfg.Version))
	b.WriteString(TitleStyle.Render(header))
	b.WriteString("\n")

	rows := []struct {
		label, value string
	}{
		{"Type", cfg.AssetType.DisplayLabel()},
		{"State", strings.ToUpper(string(models.StateWIP))},
		{"Root", paths.ProjectRoot(cfg)},
		{"Folder", currentFolderHint(cfg)},
	}

	labelStyle := SubtleStyle.Width(8)
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(row.label), row.value))
	}

	return BorderStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderSetupHint is shown when no project structure exists yet.
func RenderSetupHint() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("Workbench"),
		"No project set up for this location.",
		HelpStyle.Render("Run 'workbench setup' to initialize a project."),
	)
}

// currentFolderHint shows a truncated path for a quick sanity check,
// mirroring the panel footer of the host-side UI.
func currentFolderHint(cfg *models.ProjectConfig) string {
	if cfg.DocumentPath == "" {
		return "Unsaved"
	}
	return fmt.Sprintf(".../%s/", filepath.Base(filepath.Dir(cfg.DocumentPath)))
}
