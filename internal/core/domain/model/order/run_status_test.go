package order_test

import (
	"testing"

	"workshop/internal/core/domain/model/order"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRunStatus(t *testing.T) {
	for _, s := range []order.RunStatus{order.RunPending, order.RunInProgress, order.RunCompleted} {
		parsed, err := order.ParseRunStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := order.ParseRunStatus("DONE")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRunStatus_ValidateStartTarget(t *testing.T) {
	assert.NoError(t, order.RunPending.ValidateStartTarget())
	assert.NoError(t, order.RunInProgress.ValidateStartTarget())
	assert.ErrorIs(t, order.RunCompleted.ValidateStartTarget(), errs.ErrValueIsInvalid)
	assert.ErrorIs(t, order.RunUnknown.ValidateStartTarget(), errs.ErrValueIsInvalid)
}

func TestRunStatus_ValidateTransition(t *testing.T) {
	tests := []struct {
		from    order.RunStatus
		to      order.RunStatus
		wantErr error
	}{
		{order.RunPending, order.RunPending, nil},
		{order.RunPending, order.RunInProgress, nil},
		{order.RunPending, order.RunCompleted, errs.ErrStateIsInvalid},
		{order.RunInProgress, order.RunPending, nil},
		{order.RunInProgress, order.RunInProgress, nil},
		{order.RunInProgress, order.RunCompleted, nil},
		{order.RunCompleted, order.RunPending, errs.ErrStateIsInvalid},
		{order.RunCompleted, order.RunInProgress, errs.ErrStateIsInvalid},
		{order.RunCompleted, order.RunCompleted, errs.ErrStateIsInvalid},
		{order.RunPending, order.RunUnknown, errs.ErrValueIsInvalid},
		{order.RunUnknown, order.RunPending, errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			err := tt.from.ValidateTransition(tt.to)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
