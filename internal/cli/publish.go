package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studio-pipeline/workbench/internal/filesystem"
	"github.com/studio-pipeline/workbench/internal/project"
	"github.com/studio-pipeline/workbench/internal/scaffold"
)

// PublishCommand handles the publish command
type PublishCommand struct {
	fs      filesystem.FileSystem
	newHost HostFactory
}

// NewPublishCommand creates a new publish command
func NewPublishCommand(fs filesystem.FileSystem, newHost HostFactory) *cobra.Command {
	cmd := &PublishCommand{fs: fs, newHost: newHost}

	cobraCmd := &cobra.Command{
		Use:   "publish",
		Short: "Save a final copy of the current version",
		Long:  `Saves a copy of the current document into the version's fin folder. The working file stays the active document.`,
		RunE:  cmd.Run,
	}

	return cobraCmd
}

// Run executes the publish command
func (c *PublishCommand) Run(cmd *cobra.Command, args []string) error {
	cfg, _, err := requireProject(c.fs)
	if err != nil {
		return err
	}

	h, err := c.newHost(c.fs, cfg)
	if err != nil {
		return err
	}

	store := project.NewStore(c.fs)
	report, err := scaffold.New(c.fs, h, store).Finalize(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "🎉 Published final: %s\n", report.SavedFile)
	return nil
}
