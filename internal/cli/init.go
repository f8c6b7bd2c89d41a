package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studio-pipeline/workbench/internal/filesystem"
	"github.com/studio-pipeline/workbench/internal/models"
)

// InitCommand handles non-interactive project initialization
type InitCommand struct {
	fs      filesystem.FileSystem
	newHost HostFactory
}

// NewInitCommand creates a new init command
func NewInitCommand(fs filesystem.FileSystem, newHost HostFactory) *cobra.Command {
	cmd := &InitCommand{fs: fs, newHost: newHost}

	cobraCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize an asset project from flags",
		Long:  `Generates the initial folder structure and saves the first file without showing the setup dialog.`,
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().StringP("root", "r", "", "Root directory the project folder is created under (default: current directory)")
	cobraCmd.Flags().StringP("type", "t", "", "Asset type: prop, character, or resource (required)")
	cobraCmd.Flags().StringP("name", "n", "", "Asset name (required)")
	_ = cobraCmd.MarkFlagRequired("type")
	_ = cobraCmd.MarkFlagRequired("name")

	return cobraCmd
}

// Run executes the init command
func (c *InitCommand) Run(cmd *cobra.Command, args []string) error {
	rootPath, _ := cmd.Flags().GetString("root")
	typeFlag, _ := cmd.Flags().GetString("type")
	name, _ := cmd.Flags().GetString("name")

	if rootPath == "" {
		cwd, err := c.fs.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		rootPath = cwd
	}

	assetType, err := models.ParseAssetType(typeFlag)
	if err != nil {
		return err
	}

	return initializeProject(cmd, c.fs, c.newHost, rootPath, assetType, name)
}
