// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"workshop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TemplateRepoFactory provides access to template repository within a transaction.
	TemplateRepoFactory interface {
		TemplateRepository() ports.TemplateRepository
	}

	// OrderUoW manages transactions for operations that only touch orders.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// TemplateUoW manages transactions for master data operations.
	TemplateUoW interface {
		TxManager
		TemplateRepoFactory
	}

	// TemplateUoWFactory creates new template unit of work instances.
	TemplateUoWFactory interface {
		Create() TemplateUoW
	}

	// UoW manages transactions that read templates and change orders.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetByTaskInstance(ctx, id)
	//   w, err := uow.TemplateRepository().GetWorkflow(ctx, workflowID)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		TemplateRepoFactory
	}

	// UoWFactory creates new unit of work instances for order processing.
	UoWFactory interface {
		Create() UoW
	}
)
