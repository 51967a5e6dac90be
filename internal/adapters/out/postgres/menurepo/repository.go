package menurepo

import (
	"context"
	"errors"
	"fmt"

	"cardapio/internal/core/domain/model/kernel"
	"cardapio/internal/core/domain/model/menu"
	"cardapio/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuCatalog implements ports.MenuCatalog using GORM.
type GormMenuCatalog struct {
	db *gorm.DB
}

func NewGormMenuCatalog(db *gorm.DB) *GormMenuCatalog {
	return &GormMenuCatalog{db: db}
}

// ResolveItem returns the current state of a menu item, enabled or not.
func (c *GormMenuCatalog) ResolveItem(ctx context.Context, id kernel.UUID) (menu.Item, error) {
	if err := id.Validate(); err != nil {
		return menu.Item{}, err
	}

	var dto MenuItemDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return menu.Item{}, errs.NewObjectNotFoundError("menu item", id.String())
		}
		return menu.Item{}, err
	}

	return toDomain(dto)
}

// Add stores a menu item. Used for seeding and tests.
func (c *GormMenuCatalog) Add(ctx context.Context, item menu.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := c.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return fmt.Errorf("insert menu item %s: %w", dto.ID, err)
	}
	return nil
}
