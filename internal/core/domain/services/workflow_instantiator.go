package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/template"
	"workshop/internal/pkg/errs"
)

// WorkflowInstantiator turns a set of workflow templates into a new order.
//
// Business rules:
//   - every requested workflow template must be supplied
//   - every task template referenced by those workflows must be supplied
//   - one workflow instance is created per requested template, in request order
//   - one task instance is created per template task
//   - the order's total time is the sum of all instantiated task durations
//
// Example usage:
//
//	instantiator := services.NewWorkflowInstantiator()
//	o, err := instantiator.Instantiate(carID, customerID, requestedIDs, workflows, tasks, time.Now())
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // a template is missing
//	}
type WorkflowInstantiator struct{}

// NewWorkflowInstantiator creates a new WorkflowInstantiator instance.
func NewWorkflowInstantiator() WorkflowInstantiator {
	return WorkflowInstantiator{}
}

// Instantiate builds an AWAITING_CUSTOMER order for the requested workflow templates.
//
// workflows and tasks are the templates loaded for the request; they may come
// in any order. Missing templates are reported as errs.ObjectNotFoundError
// naming every missing id.
func (WorkflowInstantiator) Instantiate(
	carID, customerID kernel.UUID,
	requested []kernel.UUID,
	workflows []*template.Workflow,
	tasks []*template.Task,
	at time.Time,
) (*order.Order, error) {
	if len(requested) == 0 {
		return nil, errs.NewValueIsRequiredError("workflow ids")
	}

	workflowByID, err := indexWorkflows(workflows)
	if err != nil {
		return nil, err
	}

	ordered := make([]*template.Workflow, 0, len(requested))
	var missing []kernel.UUID
	for _, id := range requested {
		w, ok := workflowByID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		ordered = append(ordered, w)
	}
	if len(missing) > 0 {
		return nil, errs.NewObjectNotFoundErrorWithCause(
			"workflow template", joinIDs(missing),
			fmt.Errorf("%d of %d requested workflow templates do not exist", len(missing), len(requested)),
		)
	}

	taskByID, err := indexTasks(tasks)
	if err != nil {
		return nil, err
	}
	var missingTasks []kernel.UUID
	for _, id := range template.TaskIDs(ordered) {
		if _, ok := taskByID[id]; !ok {
			missingTasks = append(missingTasks, id)
		}
	}
	if len(missingTasks) > 0 {
		return nil, errs.NewObjectNotFoundErrorWithCause(
			"task template", joinIDs(missingTasks),
			errors.New("referenced by the requested workflow templates"),
		)
	}

	orderID := kernel.NewUUID()
	totalTime := 0
	instances := make([]*order.WorkflowInstance, 0, len(ordered))

	for _, w := range ordered {
		wiID := kernel.NewUUID()
		taskIDs := w.TaskIDs()
		tis := make([]*order.TaskInstance, 0, len(taskIDs))

		for _, taskID := range taskIDs {
			ti, err := order.NewTaskInstance(kernel.NewUUID(), wiID, taskID)
			if err != nil {
				return nil, err
			}
			tis = append(tis, ti)
			totalTime += taskByID[taskID].Duration()
		}

		wi, err := order.NewWorkflowInstance(wiID, orderID, w.ID(), tis)
		if err != nil {
			return nil, err
		}
		instances = append(instances, wi)
	}

	return order.NewOrder(orderID, carID, customerID, totalTime, instances, at)
}

func indexWorkflows(workflows []*template.Workflow) (map[kernel.UUID]*template.Workflow, error) {
	res := make(map[kernel.UUID]*template.Workflow, len(workflows))
	for _, w := range workflows {
		if err := w.Validate(); err != nil {
			return nil, err
		}
		res[w.ID()] = w
	}
	return res, nil
}

func indexTasks(tasks []*template.Task) (map[kernel.UUID]*template.Task, error) {
	res := make(map[kernel.UUID]*template.Task, len(tasks))
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		res[t.ID()] = t
	}
	return res, nil
}

func joinIDs(ids []kernel.UUID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ", ")
}
