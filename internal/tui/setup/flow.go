// Package setup implements the interactive project setup dialog.
package setup

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
	"github.com/studio-pipeline/workbench/internal/models"
	"github.com/studio-pipeline/workbench/internal/tui"
)

// Flow orchestrates the setup dialog using huh forms.
type Flow struct {
	theme *huh.Theme

	// DefaultRootPath seeds the root path input, normally the current
	// document directory.
	DefaultRootPath string
}

// Result captures the confirmed setup values.
type Result struct {
	RootPath  string
	AssetType models.AssetType
	AssetName string
}

// NewFlow constructs a Flow with the shared dialog theme.
func NewFlow(defaultRootPath string) *Flow {
	return &Flow{
		theme:           tui.NewHuhTheme(),
		DefaultRootPath: defaultRootPath,
	}
}

// Run executes the dialog; returns nil result on user abort.
func (f *Flow) Run() (*Result, error) {
	rootPath := f.DefaultRootPath
	assetType := string(models.AssetTypeProp)
	assetName := "New_Asset"

	typeOpts := make([]huh.Option[string], 0, len(models.AllAssetTypes()))
	for _, at := range models.AllAssetTypes() {
		typeOpts = append(typeOpts, huh.NewOption(at.DisplayLabel(), at.Code()))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Root Path").
				Description("The directory the project folder will be created under.").
				Value(&rootPath).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return fmt.Errorf("root path cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Asset Type").
				Options(typeOpts...).
				Value(&assetType),
			huh.NewInput().
				Title("Asset Name").
				Description("Spaces are replaced with underscores in folder names.").
				Value(&assetName).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return fmt.Errorf("asset name cannot be empty")
					}
					return nil
				}),
		).
			Title("Workbench Setup").
			Description("Initial version: v01"),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	parsed, err := models.ParseAssetType(assetType)
	if err != nil {
		return nil, err
	}

	return &Result{
		RootPath:  strings.TrimSpace(rootPath),
		AssetType: parsed,
		AssetName: strings.TrimSpace(assetName),
	}, nil
}
