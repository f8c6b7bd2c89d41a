package scaffold

import "github.com/studio-pipeline/workbench/internal/models"

// Action is what the UI layer should do after a document is loaded.
type Action int

const (
	// ActionNone means the project is set up; show normal status.
	ActionNone Action = iota

	// ActionShowSetup means the setup dialog should be offered.
	ActionShowSetup
)

// StartupAction decides what to do when a document is loaded: offer
// setup when no record exists or the structure was never generated.
// The caller is responsible for invoking UI after its own load
// sequence completes.
func StartupAction(cfg *models.ProjectConfig) Action {
	if cfg == nil || !cfg.Generated {
		return ActionShowSetup
	}
	return ActionNone
}
