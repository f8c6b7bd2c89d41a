package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/studio-pipeline/workbench/internal/filesystem"
	"github.com/studio-pipeline/workbench/internal/project"
	"github.com/studio-pipeline/workbench/internal/tui"
)

// StatusCommand handles the status command
type StatusCommand struct {
	fs filesystem.FileSystem
}

// NewStatusCommand creates a new status command
func NewStatusCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &StatusCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current project state",
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().Bool("notes", false, "Render the project notes from the record file")

	return cobraCmd
}

// Run executes the status command
func (c *StatusCommand) Run(cmd *cobra.Command, args []string) error {
	showNotes := false
	if flag := cmd.Flags().Lookup("notes"); flag != nil {
		showNotes, _ = cmd.Flags().GetBool("notes")
	}

	cfg, recordPath, err := loadProject(c.fs)
	if err == project.ErrNoRecord {
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSetupHint())
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderStatus(cfg))

	if showNotes {
		return c.printNotes(cmd, recordPath)
	}

	return nil
}

func (c *StatusCommand) printNotes(cmd *cobra.Command, recordPath string) error {
	store := project.NewStore(c.fs)
	_, notes, err := store.Read(recordPath)
	if err != nil {
		return err
	}

	if notes == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "No project notes.")
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("failed to create notes renderer: %w", err)
	}

	rendered, err := renderer.Render(notes)
	if err != nil {
		return fmt.Errorf("failed to render notes: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return nil
}
