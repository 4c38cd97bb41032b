// Package postgres provides GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().GetByTaskInstance(ctx, taskInstanceID)
//	if err != nil {
//	    return err
//	}
//	// ... change o ...
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Order getters lock the order row (SELECT ... FOR UPDATE), so two units of work
// touching the same order are serialized by the database until one of them
// commits or rolls back.
package postgres

import (
	"context"

	"workshop/internal/adapters/out/postgres/orderrepo"
	"workshop/internal/adapters/out/postgres/templaterepo"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm is Create without the interface conversion.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction and
// releases the order row locks taken by the repositories.
// Returns gorm.ErrInvalidTransaction if no transaction is active, which makes
// a deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// OrderRepository provides access to order persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// TemplateRepository provides access to template master data within the unit of work.
func (uow *GormUnitOfWork) TemplateRepository() ports.TemplateRepository {
	return templaterepo.NewGormTemplateRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit of work.
// Repositories call it after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedCount returns how many writes the unit of work has recorded since
// creation or the last rollback.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
