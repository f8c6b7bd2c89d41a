package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/studio-pipeline/workbench/internal/filesystem"
	"github.com/studio-pipeline/workbench/internal/paths"
	"github.com/studio-pipeline/workbench/internal/project"
	"github.com/studio-pipeline/workbench/internal/scaffold"
	"github.com/studio-pipeline/workbench/internal/tui"
)

// VersionUpCommand handles the version-up command
type VersionUpCommand struct {
	fs        filesystem.FileSystem
	newHost   HostFactory
	newLocker LockerFactory
}

// NewVersionUpCommand creates a new version-up command
func NewVersionUpCommand(fs filesystem.FileSystem, newHost HostFactory, newLocker LockerFactory) *cobra.Command {
	cmd := &VersionUpCommand{fs: fs, newHost: newHost, newLocker: newLocker}

	cobraCmd := &cobra.Command{
		Use:   "version-up",
		Short: "Archive the current version and start the next",
		Long:  `Moves the current version folder into the archive and saves a fresh file for the next version.`,
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().Bool("wipe", true, "Delete all objects for the new version")
	cobraCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation dialog")

	return cobraCmd
}

// Run executes the version-up command
func (c *VersionUpCommand) Run(cmd *cobra.Command, args []string) error {
	wipe, _ := cmd.Flags().GetBool("wipe")
	skipDialog, _ := cmd.Flags().GetBool("yes")

	cfg, recordPath, err := requireProject(c.fs)
	if err != nil {
		return err
	}

	if !skipDialog && isatty.IsTerminal(os.Stdout.Fd()) {
		choice, err := tui.ConfirmVersionUp(cfg.Version, wipe)
		if err != nil {
			return fmt.Errorf("failed to run dialog: %w", err)
		}
		if !choice.Confirmed {
			return nil
		}
		wipe = choice.WipeScene
	}

	release, err := c.newLocker(recordPath).Lock()
	if err != nil {
		return err
	}
	defer release()

	h, err := c.newHost(c.fs, cfg)
	if err != nil {
		return err
	}

	store := project.NewStore(c.fs)
	report, err := scaffold.New(c.fs, h, store).Iterate(cfg, scaffold.IterateOptions{WipeScene: wipe})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "📦 Versioned up: %s → %s\n", paths.VersionTag(report.PreviousVersion), paths.VersionTag(report.NewVersion))
	fmt.Fprintf(out, "✓ Saved %s\n", report.SavedFile)
	if report.Archived {
		fmt.Fprintf(out, "✓ %s archived\n", paths.VersionTag(report.PreviousVersion))
	}
	for _, warning := range report.Warnings {
		fmt.Fprintf(out, "⚠️  Warning: %s\n", warning)
	}

	return nil
}
