// Package menurepo reads menu items for order placement. Menu maintenance belongs
// to another service; Add exists only to seed data.
package menurepo

import (
	"cardapio/internal/core/domain/model/kernel"
	"cardapio/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemDTO represents a row of the menu_items table.
type MenuItemDTO struct {
	ID      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name    string          `gorm:"type:varchar(255);not null"`
	Price   decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Enabled bool            `gorm:"not null"`
}

// TableName overrides GORM's default naming convention to use "menu_items".
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item menu.Item) MenuItemDTO {
	return MenuItemDTO{
		ID:      item.ID().Bytes(),
		Name:    item.Name(),
		Price:   item.Price().Decimal(),
		Enabled: item.IsEnabled(),
	}
}

func toDomain(dto MenuItemDTO) (menu.Item, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return menu.Item{}, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return menu.Item{}, err
	}

	return menu.NewItem(id, dto.Name, price, dto.Enabled)
}
