// Package order implements the order fulfillment aggregate of the workshop.
//
// An Order is the aggregate root. It owns one WorkflowInstance per selected
// workflow template and every WorkflowInstance owns one TaskInstance per task of
// its template. All status changes of the three levels go through the Order, so
// the aggregate can enforce the fulfillment invariants in one place:
//
//   - a workflow instance has at most one task instance IN_PROGRESS
//   - a workflow instance is COMPLETED exactly when all its task instances are
//   - an order is COMPLETED exactly when all its workflow instances are
//   - the order's total time is fixed when the order is created
//   - no task instance changes while the order is AWAITING_CUSTOMER or COMPLETED
//
// Order lifecycle:
//
//	AWAITING_CUSTOMER ──Approve──> IN_PROGRESS ──(last workflow completes)──> COMPLETED
//
// Task instance lifecycle (workflow instances follow the same states):
//
//	PENDING <──> IN_PROGRESS ──> COMPLETED
//
// Completing a task instance cascades: the next pending task of the same
// workflow instance (in template order) becomes IN_PROGRESS, or, when none is
// left, the workflow instance and possibly the order complete.
//
// Task order is never stored on the instances. Methods that need it take the
// workflow template and resolve positions through template.SortByWorkflow.
package order
