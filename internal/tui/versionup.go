package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
	"github.com/studio-pipeline/workbench/internal/paths"
)

// VersionUpChoice is the confirmed outcome of the version-up dialog.
type VersionUpChoice struct {
	Confirmed bool
	WipeScene bool
}

// ConfirmVersionUp shows the version-up dialog: what will be archived,
// what will be created, and whether to clear the scene for the new
// version. A user abort returns Confirmed false with no error.
func ConfirmVersionUp(currentVersion int, wipeDefault bool) (VersionUpChoice, error) {
	confirmed := false
	wipe := wipeDefault

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Clear Scene").
				Description("Delete all objects for the new version?").
				Value(&wipe),
			huh.NewConfirm().
				Title("Version Up").
				Description(fmt.Sprintf("Archive: %s\nCreate:  %s",
					paths.VersionTag(currentVersion), paths.VersionTag(currentVersion+1))).
				Affirmative("Version Up").
				Negative("Cancel").
				Value(&confirmed),
		),
	).
		WithTheme(NewHuhTheme()).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return VersionUpChoice{}, nil
		}
		return VersionUpChoice{}, err
	}

	return VersionUpChoice{Confirmed: confirmed, WipeScene: wipe}, nil
}
