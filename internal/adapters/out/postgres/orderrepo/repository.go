package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"cardapio/internal/core/domain/model/kernel"
	"cardapio/internal/core/domain/model/order"
	"cardapio/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order together with its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return fmt.Errorf("insert order %s: %w", dto.ID, err)
	}

	return nil
}

// Update saves status, notes, timestamps and line quantities of an existing order.
// The row is only written when its stored version is the one the aggregate was loaded with.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version-1).
		Updates(map[string]any{
			"table_label": dto.TableLabel,
			"status":      dto.Status,
			"notes":       dto.Notes,
			"version":     dto.Version,
			"updated_at":  dto.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("update order %s: %w", dto.ID, result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidErrorWithCause("order",
			fmt.Errorf("%s changed since it was loaded", aggregate.ID().String()))
	}

	for _, line := range dto.Lines {
		err := db.Model(&LineDTO{}).
			Where("order_id = ? AND position = ?", line.OrderID, line.Position).
			Updates(map[string]any{"quantity": line.Quantity, "notes": line.Notes}).Error
		if err != nil {
			return fmt.Errorf("update order %s line %d: %w", dto.ID, line.Position, err)
		}
	}

	return nil
}

// Get retrieves an order by ID with its lines in preparation order.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withLines(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByStatus retrieves orders in the given status, oldest first.
func (r *GormOrderRepository) GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.withLines(ctx).Order("created_at ASC").Find(&dtos, "status = ?", status.String()).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// GetAllByTable retrieves the orders of a table label, newest first.
func (r *GormOrderRepository) GetAllByTable(ctx context.Context, table string) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.withLines(ctx).Order("created_at DESC").Find(&dtos, "table_label = ?", table).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormOrderRepository) withLines(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Lines", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
