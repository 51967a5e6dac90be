package queries

import (
	"errors"

	"cardapio/internal/core/domain/model/order"
	"cardapio/internal/pkg/errs"
	"cardapio/internal/pkg/guard"
)

var (
	ErrGetOrdersByTableQueryIsNotConstructed = errors.New(
		"GetOrdersByTableQuery must be created via NewGetOrdersByTableQuery constructor",
	)
)

// GetOrdersByTableQuery lists every order placed for a table label, newest first.
type GetOrdersByTableQuery struct {
	table string
	guard guard.ConstructorGuard
}

func NewGetOrdersByTableQuery(table string) (GetOrdersByTableQuery, error) {
	normalized, err := order.NormalizeTable(&table)
	if err != nil {
		return GetOrdersByTableQuery{}, err
	}
	if normalized == nil {
		return GetOrdersByTableQuery{}, errs.NewValueIsRequiredError("table")
	}
	return GetOrdersByTableQuery{table: *normalized, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrdersByTableQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByTableQueryIsNotConstructed)
}

func (q GetOrdersByTableQuery) Table() string {
	return q.table
}
