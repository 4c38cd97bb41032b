package template_test

import (
	"testing"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/template"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type instance struct {
	name   string
	taskID kernel.UUID
}

func instanceTaskID(i instance) kernel.UUID { return i.taskID }

func TestSortByWorkflow(t *testing.T) {
	first, second, third := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	workflow, err := template.NewWorkflow(kernel.NewUUID(), "Inspection", "", []kernel.UUID{first, second, third})
	require.NoError(t, err)

	t.Run("orders by template position, not input order", func(t *testing.T) {
		items := []instance{{"c", third}, {"a", first}, {"b", second}}

		sorted, err := template.SortByWorkflow(workflow, items, instanceTaskID)

		require.NoError(t, err)
		require.Len(t, sorted, 3)
		assert.Equal(t, "a", sorted[0].name)
		assert.Equal(t, "b", sorted[1].name)
		assert.Equal(t, "c", sorted[2].name)
	})

	t.Run("missing instance breaks the invariant", func(t *testing.T) {
		items := []instance{{"a", first}, {"c", third}}

		_, err := template.SortByWorkflow(workflow, items, instanceTaskID)

		require.ErrorIs(t, err, errs.ErrInvariantIsBroken)
		assert.Contains(t, err.Error(), "has no instance")
	})

	t.Run("foreign task breaks the invariant", func(t *testing.T) {
		items := []instance{{"a", first}, {"b", second}, {"x", kernel.NewUUID()}}

		_, err := template.SortByWorkflow(workflow, items, instanceTaskID)

		require.ErrorIs(t, err, errs.ErrInvariantIsBroken)
		assert.Contains(t, err.Error(), "is not part of workflow")
	})

	t.Run("duplicate instance breaks the invariant", func(t *testing.T) {
		items := []instance{{"a", first}, {"a2", first}, {"b", second}, {"c", third}}

		_, err := template.SortByWorkflow(workflow, items, instanceTaskID)

		require.ErrorIs(t, err, errs.ErrInvariantIsBroken)
		assert.Contains(t, err.Error(), "more than once")
	})

	t.Run("unconstructed workflow is rejected", func(t *testing.T) {
		_, err := template.SortByWorkflow(&template.Workflow{}, []instance{}, instanceTaskID)

		require.ErrorIs(t, err, template.ErrWorkflowIsNotConstructed)
	})
}

func TestTaskIDs(t *testing.T) {
	a, b, c := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	w1, err := template.NewWorkflow(kernel.NewUUID(), "One", "", []kernel.UUID{a, b})
	require.NoError(t, err)
	w2, err := template.NewWorkflow(kernel.NewUUID(), "Two", "", []kernel.UUID{b, c})
	require.NoError(t, err)

	assert.Equal(t, []kernel.UUID{a, b, c}, template.TaskIDs([]*template.Workflow{w1, w2}))
	assert.Empty(t, template.TaskIDs(nil))
}
