// Package scaffold implements the project folder workflow: initial
// structure generation, the archive-on-iterate version step, and
// final-copy publishing.
//
// Operations distinguish hard failures (returned as errors, aborting
// the operation) from soft warnings (collected on the report, never
// aborting). Nothing is rolled back on partial failure; the caller
// reports warnings instead.
package scaffold

import (
	"errors"

	"github.com/studio-pipeline/workbench/internal/filesystem"
	"github.com/studio-pipeline/workbench/internal/host"
	"github.com/studio-pipeline/workbench/internal/project"
)

// ErrNotInitialized indicates an operation that requires the generated
// folder structure was invoked before Initialize succeeded.
var ErrNotInitialized = errors.New("project structure has not been generated yet (run setup first)")

// Workflow runs the folder workflow against a filesystem and a host.
type Workflow struct {
	fs    filesystem.FileSystem
	host  host.Host
	store *project.Store
}

// New creates a Workflow.
func New(fs filesystem.FileSystem, h host.Host, store *project.Store) *Workflow {
	return &Workflow{fs: fs, host: h, store: store}
}
