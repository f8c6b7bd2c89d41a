package cli

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/studio-pipeline/workbench/internal/filesystem"
	"github.com/studio-pipeline/workbench/internal/paths"
)

// VersionsCommand lists the project's version folders
type VersionsCommand struct {
	fs filesystem.FileSystem
}

// NewVersionsCommand creates a new versions command
func NewVersionsCommand(fsys filesystem.FileSystem) *cobra.Command {
	cmd := &VersionsCommand{fs: fsys}

	cobraCmd := &cobra.Command{
		Use:   "versions",
		Short: "List active and archived versions",
		RunE:  cmd.Run,
	}

	return cobraCmd
}

type versionRow struct {
	tag      string
	location string
	files    int
}

// Run executes the versions command
func (c *VersionsCommand) Run(cmd *cobra.Command, args []string) error {
	cfg, _, err := requireProject(c.fs)
	if err != nil {
		return err
	}

	rows, err := c.collectVersionDirs(paths.ProjectRoot(cfg), "active")
	if err != nil {
		return err
	}

	archRoot := paths.ArchiveFolder(cfg)
	if c.fs.Exists(archRoot) {
		archived, err := c.collectVersionDirs(archRoot, "archive")
		if err != nil {
			return err
		}
		rows = append(rows, archived...)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].tag != rows[j].tag {
			return rows[i].tag < rows[j].tag
		}
		return rows[i].location < rows[j].location
	})

	tableRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		marker := row.tag
		if row.location == "active" && row.tag == paths.VersionTag(cfg.Version) {
			marker += " *"
		}
		tableRows = append(tableRows, []string{marker, row.location, fmt.Sprintf("%d", row.files)})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cfg.AssetName, paths.VersionTag(cfg.Version))
	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Version", "Location", "Files"}, tableRows))
	return nil
}

// collectVersionDirs finds vNN folders directly under root and counts
// the files in each subtree.
func (c *VersionsCommand) collectVersionDirs(root, location string) ([]versionRow, error) {
	entries, err := c.fs.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", root, err)
	}

	var rows []versionRow
	for _, entry := range entries {
		if !entry.IsDir() || !isVersionTag(entry.Name()) {
			continue
		}

		count := 0
		dir := filepath.Join(root, entry.Name())
		err := c.fs.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				count++
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
		}

		rows = append(rows, versionRow{tag: entry.Name(), location: location, files: count})
	}

	return rows, nil
}

func isVersionTag(name string) bool {
	if len(name) != 3 || name[0] != 'v' {
		return false
	}
	for _, r := range name[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
