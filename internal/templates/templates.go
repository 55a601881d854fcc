// Package templates holds the static documents gitstrap writes into a project.
package templates

import (
	_ "embed"
	"fmt"
	"sort"
)

// Target paths, relative to the project root.
const (
	PreCommitConfigPath = ".pre-commit-config.yaml"
	WorkflowDir         = ".github/workflows"
	CIWorkflowPath      = WorkflowDir + "/ci.yml"
)

//go:embed precommit.yaml
var preCommitConfig []byte

//go:embed ci.yml
var ciWorkflow []byte

// Template is a static document and the path it is written to.
type Template struct {
	Name string
	Path string
	body []byte
}

// Bytes returns a copy of the template body.
func (t Template) Bytes() []byte {
	return append([]byte(nil), t.body...)
}

// PreCommitConfig is the pre-commit hook configuration.
func PreCommitConfig() Template {
	return Template{Name: "pre-commit", Path: PreCommitConfigPath, body: preCommitConfig}
}

// CIWorkflow is the GitHub Actions workflow.
func CIWorkflow() Template {
	return Template{Name: "ci", Path: CIWorkflowPath, body: ciWorkflow}
}

// All returns every template in the order they are generated.
func All() []Template {
	return []Template{PreCommitConfig(), CIWorkflow()}
}

// Names returns the sorted template names.
func Names() []string {
	var names []string
	for _, t := range All() {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the template with the given name.
func Lookup(name string) (Template, error) {
	for _, t := range All() {
		if t.Name == name {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("unknown template %q (available: %v)", name, Names())
}
