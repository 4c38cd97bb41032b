// Package ports defines repository interfaces for the workshop domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is always loaded and stored together with its workflow instances
// and their task instances.
//
// Inside a transaction every getter locks the order row until commit or
// rollback, so concurrent changes to the same order graph are serialized.
type OrderRepository interface {
	// Add persists a new order aggregate with its whole instance graph.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate and its instances.
	// Returns errs.ObjectNotFoundError if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByWorkflowInstance retrieves the order owning the given workflow instance.
	GetByWorkflowInstance(ctx context.Context, workflowInstanceID kernel.UUID) (*order.Order, error)

	// GetByTaskInstance retrieves the order owning the given task instance.
	GetByTaskInstance(ctx context.Context, taskInstanceID kernel.UUID) (*order.Order, error)

	// Delete removes the order and its instance graph.
	// Returns errs.ObjectNotFoundError if the order does not exist.
	Delete(ctx context.Context, id kernel.UUID) error
}
