package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"workshop/internal/adapters/in/catalog"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const valid = `
tasks:
  - id: 0d5a3e64-4c0e-4a55-9d5c-2f1f3c7f6a01
    name: Brake check
    description: Pads, discs and fluid
    duration: 20
  - id: 0d5a3e64-4c0e-4a55-9d5c-2f1f3c7f6a02
    name: Lights
    duration: 5
workflows:
  - id: 6b0f2f9e-53c1-4b7e-8d3c-0a5e4f2d9b10
    name: Inspection
    description: Yearly inspection
    tasks:
      - 0d5a3e64-4c0e-4a55-9d5c-2f1f3c7f6a02
      - 0d5a3e64-4c0e-4a55-9d5c-2f1f3c7f6a01
`

func TestFromYAML(t *testing.T) {
	c, err := catalog.FromYAML([]byte(valid))
	require.NoError(t, err)

	require.Len(t, c.Tasks, 2)
	assert.Equal(t, "Brake check", c.Tasks[0].Name())
	assert.Equal(t, 20, c.Tasks[0].Duration())

	require.Len(t, c.Workflows, 1)
	w := c.Workflows[0]
	assert.Equal(t, "Inspection", w.Name())
	require.Len(t, w.TaskIDs(), 2)
	assert.Equal(t, c.Tasks[1].ID(), w.TaskIDs()[0])
	assert.Equal(t, c.Tasks[0].ID(), w.TaskIDs()[1])
}

func TestFromYAML_ReportsEveryInvalidEntry(t *testing.T) {
	c, err := catalog.FromYAML([]byte(`
tasks:
  - id: nope
    name: Brakes
    duration: 20
  - id: 0d5a3e64-4c0e-4a55-9d5c-2f1f3c7f6a01
    name: Lights
    duration: -1
workflows:
  - id: 6b0f2f9e-53c1-4b7e-8d3c-0a5e4f2d9b10
    name: Inspection
    tasks: [also-nope]
`))

	require.Error(t, err)
	assert.Empty(t, c.Tasks)
	assert.Contains(t, err.Error(), "tasks[0]")
	assert.Contains(t, err.Error(), "tasks[1]")
	assert.Contains(t, err.Error(), "workflows[0].tasks")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestFromYAML_RejectsWorkflowWithoutTasks(t *testing.T) {
	_, err := catalog.FromYAML([]byte(`
workflows:
  - id: 6b0f2f9e-53c1-4b7e-8d3c-0a5e4f2d9b10
    name: Empty
    tasks: []
`))

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "workflows[0]")
	assert.Contains(t, err.Error(), "task ids")
}

func TestFromYAML_Malformed(t *testing.T) {
	_, err := catalog.FromYAML([]byte("tasks: ["))
	require.ErrorContains(t, err, "invalid catalog yaml")
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(valid), 0o600))

	c, err := catalog.FromFile(path)
	require.NoError(t, err)
	assert.Len(t, c.Workflows, 1)

	_, err = catalog.FromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
