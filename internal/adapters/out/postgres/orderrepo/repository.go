package orderrepo

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order together with its workflow and task instances.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the order row and upserts its instance rows.
// Instances are never added or removed after creation.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	// Updates instead of Save: Save inserts when no row matched
	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":     dto.Status,
		"total_time": dto.TotalTime,
		"updated_at": dto.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("order", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	if err := db.Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto.WorkflowInstances).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID and locks its row for the rest of the transaction.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.load(ctx, id.Bytes(), func() error {
		return errs.NewObjectNotFoundErrorWithCause("order", id.String(), gorm.ErrRecordNotFound)
	})
}

// GetByWorkflowInstance retrieves the order owning a workflow instance.
func (r *GormOrderRepository) GetByWorkflowInstance(
	ctx context.Context,
	workflowInstanceID kernel.UUID,
) (*order.Order, error) {
	if err := workflowInstanceID.Validate(); err != nil {
		return nil, err
	}

	var ref struct {
		OrderID uuid.UUID
	}
	result := r.db.WithContext(ctx).
		Table("workflow_instances").
		Select("order_id").
		Where("id = ?", workflowInstanceID.Bytes()).
		Limit(1).
		Scan(&ref)
	if result.Error != nil {
		return nil, result.Error
	}

	notFound := func() error {
		return errs.NewObjectNotFoundErrorWithCause("workflow instance", workflowInstanceID.String(), gorm.ErrRecordNotFound)
	}
	if result.RowsAffected == 0 {
		return nil, notFound()
	}

	return r.load(ctx, ref.OrderID, notFound)
}

// GetByTaskInstance retrieves the order owning a task instance.
func (r *GormOrderRepository) GetByTaskInstance(ctx context.Context, taskInstanceID kernel.UUID) (*order.Order, error) {
	if err := taskInstanceID.Validate(); err != nil {
		return nil, err
	}

	var ref struct {
		OrderID uuid.UUID
	}
	result := r.db.WithContext(ctx).
		Table("task_instances").
		Select("workflow_instances.order_id").
		Joins("JOIN workflow_instances ON workflow_instances.id = task_instances.workflow_instance_id").
		Where("task_instances.id = ?", taskInstanceID.Bytes()).
		Limit(1).
		Scan(&ref)
	if result.Error != nil {
		return nil, result.Error
	}

	notFound := func() error {
		return errs.NewObjectNotFoundErrorWithCause("task instance", taskInstanceID.String(), gorm.ErrRecordNotFound)
	}
	if result.RowsAffected == 0 {
		return nil, notFound()
	}

	return r.load(ctx, ref.OrderID, notFound)
}

// Delete removes an order. Instance rows go with it through ON DELETE CASCADE.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("order", id.String(), gorm.ErrRecordNotFound)
	}

	return nil
}

// load locks the order row, then reads the whole graph.
// The lock is taken first so the graph read afterwards cannot be stale.
func (r *GormOrderRepository) load(ctx context.Context, id uuid.UUID, notFound func() error) (*order.Order, error) {
	db := r.db.WithContext(ctx)

	var locked OrderDTO
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		First(&locked, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound()
		}
		return nil, err
	}

	var dto OrderDTO
	if err := db.
		Preload("WorkflowInstances", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
		Preload("WorkflowInstances.TaskInstances", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
		First(&dto, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}
