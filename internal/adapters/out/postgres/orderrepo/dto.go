// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"fmt"
	"time"

	"cardapio/internal/core/domain/model/kernel"
	"cardapio/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by status for the kitchen and waiter boards and by table label for table lookups.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TableLabel *string   `gorm:"type:varchar(20);index"`
	Status     string    `gorm:"type:varchar(20);not null;index:idx_orders_status_created,priority:1"`
	Notes      string    `gorm:"type:varchar(500);not null;default:''"`
	Version    int       `gorm:"type:int;not null"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime:false;index:idx_orders_status_created,priority:2"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime:false"`
	Lines      []LineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO stores one order line. Position keeps the preparation order.
type LineDTO struct {
	OrderID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position   int             `gorm:"type:int;primaryKey;autoIncrement:false"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null"`
	Name       string          `gorm:"type:varchar(255);not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Quantity   int             `gorm:"type:int;not null"`
	Notes      string          `gorm:"type:varchar(200);not null;default:''"`
}

// TableName overrides GORM's default naming convention to use "order_lines".
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	id := aggregate.ID().Bytes()
	domainLines := aggregate.Lines()
	lines := make([]LineDTO, 0, len(domainLines))

	for i, line := range domainLines {
		lines = append(lines, LineDTO{
			OrderID:    id,
			Position:   i,
			MenuItemID: line.MenuItemID().Bytes(),
			Name:       line.Name(),
			UnitPrice:  line.UnitPrice().Decimal(),
			Quantity:   line.Quantity(),
			Notes:      line.Notes(),
		})
	}

	return OrderDTO{
		ID:         id,
		TableLabel: aggregate.Table(),
		Status:     aggregate.Status().String(),
		Notes:      aggregate.Notes(),
		Version:    aggregate.Version(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
		Lines:      lines,
	}
}

// toDomain rebuilds the aggregate with RestoreOrder. Lines must already be sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", dto.ID, err)
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, lineErr := lineToDomain(l)
		if lineErr != nil {
			return nil, fmt.Errorf("order %s line %d: %w", dto.ID, l.Position, lineErr)
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, dto.TableLabel, lines, dto.Notes, status,
		dto.CreatedAt.UTC(), dto.UpdatedAt.UTC(), dto.Version)
}

func lineToDomain(dto LineDTO) (order.Line, error) {
	menuItemID, err := kernel.UUIDFromGoogle(dto.MenuItemID)
	if err != nil {
		return order.Line{}, err
	}

	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Line{}, err
	}

	return order.NewLine(menuItemID, dto.Name, price, dto.Quantity, dto.Notes)
}
