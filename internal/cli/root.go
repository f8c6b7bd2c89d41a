package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/studio-pipeline/workbench/internal/filesystem"
	"github.com/studio-pipeline/workbench/internal/project"
	"github.com/studio-pipeline/workbench/internal/scaffold"
	"github.com/studio-pipeline/workbench/internal/tui"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, newHost HostFactory, newLocker LockerFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "workbench",
		Short: "Manage versioned asset project folders",
		Long: `Workbench scaffolds per-asset folder hierarchies with versioned
work-in-progress and finalized states, and an archive-on-iterate workflow.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// With no subcommand: offer setup when nothing is
			// generated yet, otherwise show status.
			cfg, _, err := loadProject(fs)
			if err != nil && err != project.ErrNoRecord {
				return err
			}

			if scaffold.StartupAction(cfg) == scaffold.ActionShowSetup {
				// The dialog only makes sense on a terminal, and only
				// after command dispatch has completed its own setup.
				if isatty.IsTerminal(os.Stdout.Fd()) {
					return (&SetupCommand{fs: fs, newHost: newHost}).Run(cmd, args)
				}
				fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSetupHint())
				return nil
			}

			return (&StatusCommand{fs: fs}).Run(cmd, args)
		},
	}

	rootCmd.AddCommand(NewSetupCommand(fs, newHost))
	rootCmd.AddCommand(NewInitCommand(fs, newHost))
	rootCmd.AddCommand(NewVersionUpCommand(fs, newHost, newLocker))
	rootCmd.AddCommand(NewPublishCommand(fs, newHost))
	rootCmd.AddCommand(NewStatusCommand(fs))
	rootCmd.AddCommand(NewVersionsCommand(fs))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()

	rootCmd := NewRootCommand(fs, defaultHostFactory, defaultLockerFactory)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
