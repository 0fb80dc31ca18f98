package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// knownActions lists the step actions the runner understands.
var knownActions = map[string]bool{
	ActionOpen:          true,
	ActionChange:        true,
	ActionExpand:        true,
	ActionCollapse:      true,
	ActionExpectValue:   true,
	ActionExpectWarning: true,
	ActionExpectText:    true,
	ActionSubmit:        true,
	ActionExpectStored:  true,
	ActionDeleteDialog:  true,
	ActionDelete:        true,
}

// ParseScenario parses a scenario from YAML bytes.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, &LoadError{Line: yamlErrorLine(err), Message: "failed to parse YAML", Cause: err}
	}

	if sc.ID == "" {
		return nil, &LoadError{Message: "scenario ID is required"}
	}
	if len(sc.Steps) == 0 {
		return nil, &LoadError{Message: "scenario must have at least one step"}
	}
	for i, step := range sc.Steps {
		if !knownActions[step.Action] {
			return nil, &LoadError{Message: fmt.Sprintf("step %d: unknown action %q", i+1, step.Action)}
		}
	}

	return &sc, nil
}

// yamlErrorLine extracts the line number from a yaml.v3 syntax error.
func yamlErrorLine(err error) int {
	var line int
	if _, scanErr := fmt.Sscanf(err.Error(), "yaml: line %d:", &line); scanErr != nil {
		return 0
	}
	return line
}

// LoadScenario loads a scenario from a file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{File: path, Message: "failed to read file", Cause: err}
	}

	sc, err := ParseScenario(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{File: path, Message: err.Error()}
	}

	return sc, nil
}

// LoadDirectory loads all scenarios from a directory, ordered by file name.
// Only files with .yaml or .yml extensions are loaded.
func LoadDirectory(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{File: dir, Message: "failed to read directory", Cause: err}
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	scenarios := make([]*Scenario, 0, len(names))
	seen := make(map[string]string, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		sc, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[sc.ID]; ok {
			return nil, &LoadError{File: path, Message: fmt.Sprintf("duplicate scenario ID %q (also in %s)", sc.ID, prev)}
		}
		seen[sc.ID] = path
		scenarios = append(scenarios, sc)
	}

	return scenarios, nil
}
