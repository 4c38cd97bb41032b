package template

import (
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

// SortByWorkflow arranges task instances in the order of the workflow they were
// instantiated from. taskID extracts the task template id of an item.
//
// The result has exactly one entry per workflow task. An item whose task is not
// part of the workflow, two items for the same task, or a workflow task without
// an item break the one-instance-per-task invariant and are reported as
// errs.InvariantIsBrokenError. The sort runs in O(n).
func SortByWorkflow[T any](workflow *Workflow, items []T, taskID func(T) kernel.UUID) ([]T, error) {
	if err := workflow.Validate(); err != nil {
		return nil, err
	}

	sorted := make([]T, workflow.Len())
	filled := make([]bool, workflow.Len())

	for _, item := range items {
		id := taskID(item)
		pos, ok := workflow.Position(id)
		if !ok {
			return nil, errs.NewInvariantIsBrokenErrorWithCause(
				"task instances",
				fmt.Errorf("task %s is not part of workflow %s", id, workflow.ID()),
			)
		}
		if filled[pos] {
			return nil, errs.NewInvariantIsBrokenErrorWithCause(
				"task instances",
				fmt.Errorf("task %s is instantiated more than once", id),
			)
		}
		sorted[pos] = item
		filled[pos] = true
	}

	for pos, ok := range filled {
		if !ok {
			return nil, errs.NewInvariantIsBrokenErrorWithCause(
				"task instances",
				fmt.Errorf("task %s of workflow %s has no instance", workflow.taskIDs[pos], workflow.ID()),
			)
		}
	}

	return sorted, nil
}

// TaskIDs returns the distinct task template ids referenced by the given
// workflows, in first-seen order.
func TaskIDs(workflows []*Workflow) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{})
	ids := make([]kernel.UUID, 0)
	for _, workflow := range workflows {
		for _, id := range workflow.taskIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
