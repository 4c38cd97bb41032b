package commands_test

import (
	"testing"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApproveOrderCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewApproveOrderCommand(id, order.InProgress)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())

	for _, s := range []order.Status{order.Unknown, order.AwaitingCustomer, order.Completed} {
		_, err := commands.NewApproveOrderCommand(id, s)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid, s.String())
	}
}
