// Package manifest renders the MANIFEST.md written into a project root
// when the structure is first generated.
package manifest

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/studio-pipeline/workbench/internal/models"
	"github.com/studio-pipeline/workbench/internal/paths"
)

// TemplateData feeds the manifest template.
type TemplateData struct {
	AssetName   string
	SafeName    string
	TypeCode    string
	TypeLabel   string
	Version     string
	ProjectRoot string
	CreatedAt   string
}

const defaultTemplate = `# {{ .AssetName | trim }}

| | |
|---|---|
| Type | {{ .TypeLabel }} |
| Folder prefix | {{ printf "%s_%s" .TypeCode .SafeName }} |
| Initial version | {{ .Version }} |
| Created | {{ .CreatedAt }} |

## Layout

` + "```" + `
{{ .Version }}/wip/projects/   working saves
{{ .Version }}/fin/projects/   published finals
arch/                 archived versions
` + "```" + `

Managed by workbench. Edit notes in workbench.md, not here.
`

// Render produces the manifest content for a project config.
func Render(cfg *models.ProjectConfig) (string, error) {
	tmpl, err := template.New("manifest").Funcs(sprig.FuncMap()).Parse(defaultTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse manifest template: %w", err)
	}

	data := TemplateData{
		AssetName:   cfg.AssetName,
		SafeName:    cfg.SafeName(),
		TypeCode:    cfg.AssetType.Code(),
		TypeLabel:   cfg.AssetType.DisplayLabel(),
		Version:     paths.VersionTag(cfg.Version),
		ProjectRoot: paths.ProjectRoot(cfg),
		CreatedAt:   cfg.CreatedAt.Format("2006-01-02"),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render manifest: %w", err)
	}

	return buf.String(), nil
}
