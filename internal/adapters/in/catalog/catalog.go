// Package catalog reads task and workflow templates from YAML files.
//
//	tasks:
//	  - id: 0d5a3e64-4c0e-4a55-9d5c-2f1f3c7f6a01
//	    name: Brake check
//	    description: Pads, discs and fluid
//	    duration: 20
//	workflows:
//	  - id: 6b0f2f9e-53c1-4b7e-8d3c-0a5e4f2d9b10
//	    name: Inspection
//	    tasks:
//	      - 0d5a3e64-4c0e-4a55-9d5c-2f1f3c7f6a01
package catalog

import (
	"errors"
	"fmt"
	"os"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/template"

	"gopkg.in/yaml.v3"
)

// Catalog is a parsed template file.
type Catalog struct {
	Tasks     []*template.Task
	Workflows []*template.Workflow
}

type document struct {
	Tasks []struct {
		ID          string `yaml:"id"`
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Duration    int    `yaml:"duration"`
	} `yaml:"tasks"`
	Workflows []struct {
		ID          string   `yaml:"id"`
		Name        string   `yaml:"name"`
		Description string   `yaml:"description"`
		Tasks       []string `yaml:"tasks"`
	} `yaml:"workflows"`
}

// FromYAML parses a catalog. Every invalid entry is reported.
func FromYAML(data []byte) (Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Catalog{}, fmt.Errorf("invalid catalog yaml: %w", err)
	}

	var (
		catalog  Catalog
		problems []error
	)

	for i, t := range doc.Tasks {
		id, err := kernel.UUIDFromString(t.ID)
		if err != nil {
			problems = append(problems, fmt.Errorf("tasks[%d]: %w", i, err))
			continue
		}
		task, err := template.NewTask(id, t.Name, t.Description, t.Duration)
		if err != nil {
			problems = append(problems, fmt.Errorf("tasks[%d]: %w", i, err))
			continue
		}
		catalog.Tasks = append(catalog.Tasks, task)
	}

	for i, w := range doc.Workflows {
		id, err := kernel.UUIDFromString(w.ID)
		if err != nil {
			problems = append(problems, fmt.Errorf("workflows[%d]: %w", i, err))
			continue
		}
		taskIDs, err := kernel.UUIDsFromStrings(w.Tasks)
		if err != nil {
			problems = append(problems, fmt.Errorf("workflows[%d].tasks: %w", i, err))
			continue
		}
		workflow, err := template.NewWorkflow(id, w.Name, w.Description, taskIDs)
		if err != nil {
			problems = append(problems, fmt.Errorf("workflows[%d]: %w", i, err))
			continue
		}
		catalog.Workflows = append(catalog.Workflows, workflow)
	}

	if err := errors.Join(problems...); err != nil {
		return Catalog{}, err
	}

	return catalog, nil
}

// FromFile reads a catalog from path.
func FromFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, err
	}
	return FromYAML(data)
}
