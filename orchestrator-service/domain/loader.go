package domain

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadDefinitions reads every *.yaml / *.yml file in dir as a workflow
// definition. The directory is optional deployment configuration; a missing
// dir yields no definitions and no error.
func LoadDefinitions(dir string) ([]*WorkflowDefinition, error) {
	if dir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read workflow dir %s", dir)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext == ".yaml" || ext == ".yml" {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	definitions := make([]*WorkflowDefinition, 0, len(files))
	for _, name := range files {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read workflow file %s", name)
		}

		var definition WorkflowDefinition
		if err := yaml.Unmarshal(raw, &definition); err != nil {
			return nil, errors.Wrapf(err, "failed to parse workflow file %s", name)
		}
		if err := definition.Validate(); err != nil {
			return nil, errors.Wrapf(err, "invalid workflow in %s", name)
		}

		definitions = append(definitions, &definition)
	}

	return definitions, nil
}
