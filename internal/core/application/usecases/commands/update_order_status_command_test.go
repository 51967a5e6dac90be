package commands_test

import (
	"testing"

	"cardapio/internal/core/application/notify"
	"cardapio/internal/core/application/usecases/commands"
	"cardapio/internal/core/domain/model/kernel"
	"cardapio/internal/core/domain/model/order"
	"cardapio/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewUpdateOrderStatusCommand(id, order.Ready)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, order.Ready, cmd.Status())
}

func TestNewUpdateOrderStatusCommand_Invalid(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.UUID{}, order.Unknown)

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUpdateOrderStatusCommand_ZeroValue(t *testing.T) {
	var cmd commands.UpdateOrderStatusCommand

	assert.Equal(t, commands.ErrUpdateOrderStatusCommandIsNotConstructed, cmd.Validate())
}

func TestNewOpenStreamCommand(t *testing.T) {
	cmd, err := commands.NewOpenStreamCommand(notify.Waiter)
	require.NoError(t, err)
	assert.Equal(t, notify.Waiter, cmd.Audience())

	_, err = commands.NewOpenStreamCommand(notify.Audience("cashier"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
