package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studio-pipeline/workbench/internal/filesystem"
	"github.com/studio-pipeline/workbench/internal/models"
	"github.com/studio-pipeline/workbench/internal/project"
	"github.com/studio-pipeline/workbench/internal/scaffold"
	"github.com/studio-pipeline/workbench/internal/tui/setup"
)

// SetupCommand handles the interactive setup dialog
type SetupCommand struct {
	fs      filesystem.FileSystem
	newHost HostFactory
}

// NewSetupCommand creates a new setup command
func NewSetupCommand(fs filesystem.FileSystem, newHost HostFactory) *cobra.Command {
	cmd := &SetupCommand{fs: fs, newHost: newHost}

	cobraCmd := &cobra.Command{
		Use:   "setup",
		Short: "Set up a new asset project interactively",
		Long:  `Collects root path, asset type and asset name, then generates the initial folder structure and saves the first file.`,
		RunE:  cmd.Run,
	}

	return cobraCmd
}

// Run executes the setup command
func (c *SetupCommand) Run(cmd *cobra.Command, args []string) error {
	// Default root: the current document directory.
	cwd, err := c.fs.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	flow := setup.NewFlow(cwd)
	result, err := flow.Run()
	if err != nil {
		return fmt.Errorf("failed to run setup dialog: %w", err)
	}

	if result == nil {
		return nil
	}

	return initializeProject(cmd, c.fs, c.newHost, result.RootPath, result.AssetType, result.AssetName)
}

// initializeProject creates the record and runs the structure
// initializer, shared by setup and init.
func initializeProject(cmd *cobra.Command, fs filesystem.FileSystem, newHost HostFactory, rootPath string, assetType models.AssetType, assetName string) error {
	id, err := project.NewID()
	if err != nil {
		return err
	}

	cfg := models.NewProjectConfig(id, rootPath, assetType, assetName)

	h, err := newHost(fs, nil)
	if err != nil {
		return err
	}

	store := project.NewStore(fs)
	report, err := scaffold.New(fs, h, store).Initialize(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "🎉 Workbench initialized: %s\n", report.SavedFile)
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Project record: %s\n", report.RecordPath)
	return nil
}
