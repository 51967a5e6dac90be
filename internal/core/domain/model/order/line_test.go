package order_test

import (
	"strings"
	"testing"

	"cardapio/internal/core/domain/model/kernel"
	"cardapio/internal/core/domain/model/order"
	"cardapio/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewLine(t *testing.T) {
	itemID := kernel.NewUUID()

	t.Run("should create valid line", func(t *testing.T) {
		line, err := order.NewLine(itemID, "Hamburguer", mustMoney(t, "25.90"), 2, "sem cebola")

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.True(t, line.MenuItemID().IsEqual(itemID))
		assert.Equal(t, "Hamburguer", line.Name())
		assert.Equal(t, 2, line.Quantity())
		assert.Equal(t, "sem cebola", line.Notes())
		assert.Equal(t, "51.80", line.Subtotal().String())
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewLine(itemID, "Hamburguer", mustMoney(t, "25.90"), 0, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with zero price", func(t *testing.T) {
		_, err := order.NewLine(itemID, "Agua", kernel.ZeroMoney(), 1, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with long notes", func(t *testing.T) {
		_, err := order.NewLine(itemID, "Hamburguer", mustMoney(t, "1"), 1, strings.Repeat("a", order.MaxLineNotesLength+1))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should count notes in characters", func(t *testing.T) {
		_, err := order.NewLine(itemID, "Pão", mustMoney(t, "1"), 1, strings.Repeat("ã", order.MaxLineNotesLength))

		require.NoError(t, err)
	})

	t.Run("should join all errors", func(t *testing.T) {
		_, err := order.NewLine(kernel.UUID{}, "", kernel.Money{}, -1, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestLine_ChangeQuantity(t *testing.T) {
	line, err := order.NewLine(kernel.NewUUID(), "Suco", mustMoney(t, "7.50"), 1, "")
	require.NoError(t, err)

	require.NoError(t, line.ChangeQuantity(4))
	assert.Equal(t, "30.00", line.Subtotal().String())

	require.Error(t, line.ChangeQuantity(0))
	assert.Equal(t, 4, line.Quantity())
}

func TestLine_Validate(t *testing.T) {
	var line order.Line

	assert.Equal(t, order.ErrLineIsNotConstructed, line.Validate())
}
