package order_test

import (
	"testing"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status order.Status
		want   string
	}{
		{order.Unknown, "UNKNOWN"},
		{order.AwaitingCustomer, "AWAITING_CUSTOMER"},
		{order.InProgress, "IN_PROGRESS"},
		{order.Completed, "COMPLETED"},
		{order.Status(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestParseStatus(t *testing.T) {
	status, err := order.ParseStatus("IN_PROGRESS")
	require.NoError(t, err)
	assert.Equal(t, order.InProgress, status)

	_, err = order.ParseStatus("UNKNOWN")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.ParseStatus("in_progress")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Validate(t *testing.T) {
	assert.NoError(t, order.AwaitingCustomer.Validate())
	assert.NoError(t, order.InProgress.Validate())
	assert.NoError(t, order.Completed.Validate())
	assert.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	assert.ErrorIs(t, order.Status(-1).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_ValidateStart(t *testing.T) {
	assert.NoError(t, order.AwaitingCustomer.ValidateStart())

	err := order.InProgress.ValidateStart()
	require.ErrorIs(t, err, errs.ErrStateIsInvalid)
	assert.Contains(t, err.Error(), "order is already IN_PROGRESS")

	assert.ErrorIs(t, order.Completed.ValidateStart(), errs.ErrStateIsInvalid)
}

func TestStatus_ValidateTaskUpdate(t *testing.T) {
	id := kernel.NewUUID()

	assert.NoError(t, order.InProgress.ValidateTaskUpdate(id))

	err := order.AwaitingCustomer.ValidateTaskUpdate(id)
	require.ErrorIs(t, err, errs.ErrStateIsInvalid)

	err = order.Completed.ValidateTaskUpdate(id)
	require.ErrorIs(t, err, errs.ErrStateIsInvalid)
	assert.Contains(t, err.Error(), "order is COMPLETED - cannot update task instance "+id.String())

	assert.ErrorIs(t, order.Unknown.ValidateTaskUpdate(id), errs.ErrValueIsInvalid)
}

func TestStatus_Approve(t *testing.T) {
	next, err := order.AwaitingCustomer.Approve()
	require.NoError(t, err)
	assert.Equal(t, order.InProgress, next)

	for _, s := range []order.Status{order.Unknown, order.InProgress, order.Completed} {
		_, err := s.Approve()
		assert.ErrorIs(t, err, errs.ErrStateIsInvalid, s.String())
	}
}

func TestStatus_Complete(t *testing.T) {
	next, err := order.InProgress.Complete()
	require.NoError(t, err)
	assert.Equal(t, order.Completed, next)

	for _, s := range []order.Status{order.Unknown, order.AwaitingCustomer, order.Completed} {
		_, err := s.Complete()
		assert.ErrorIs(t, err, errs.ErrStateIsInvalid, s.String())
	}
}
